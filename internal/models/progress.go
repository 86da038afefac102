package models

type Progress struct {
	ID        string `json:"id,omitempty"`
	StudentID string `json:"student_id"`
	LessonID  string `json:"lesson_id"`
	Score     int    `json:"score"`
	Stars     int    `json:"stars"`
	Notes     string `json:"notes,omitempty"`
}

func (p *Progress) Validate() error {
	if p.StudentID == "" {
		return invalidField("student_id", "must not be empty")
	}
	if p.LessonID == "" {
		return invalidField("lesson_id", "must not be empty")
	}
	if p.Score < 0 || p.Score > 100 {
		return invalidField("score", "must be between 0 and 100")
	}
	if p.Stars < 0 || p.Stars > 3 {
		return invalidField("stars", "must be between 0 and 3")
	}
	return nil
}
