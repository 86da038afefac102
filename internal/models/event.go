package models

type LessonStartedEvent struct {
	StudentID  string `json:"student_id"`
	LessonID   string `json:"lesson_id"`
	ProgressID string `json:"progress_id"`
	Timestamp  int64  `json:"timestamp"`
}
