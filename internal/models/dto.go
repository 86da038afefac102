package models

// Data Transfer Objects

type StartLessonRequest struct {
	StudentName string `json:"student_name"`
	ParentEmail string `json:"parent_email,omitempty"`
	LessonID    string `json:"lesson_id"`
}

type StartLessonResponse struct {
	StudentID  string `json:"student_id"`
	ProgressID string `json:"progress_id"`
}

type SeedResult struct {
	AlreadySeeded bool
	Inserted      int
}

// LessonList — ответ каталога. Note заполняется только в деградированном
// режиме, когда вместо базы отдаётся статический набор.
type LessonList struct {
	Items []Lesson `json:"items"`
	Note  string   `json:"note,omitempty"`
}
