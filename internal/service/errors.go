package service

import "errors"

// Типизированные ошибки для корректного маппинга на HTTP-коды в delivery-слое.
var (
	ErrInvalidLessonID = errors.New("invalid lesson id")
	ErrLessonNotFound  = errors.New("lesson not found")
)

// Имена коллекций документного хранилища.
const (
	studentCollection  = "student"
	lessonCollection   = "lesson"
	progressCollection = "progress"
)

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
