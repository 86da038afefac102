package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pixiegarden/english-backend/internal/docstore"
	"github.com/pixiegarden/english-backend/internal/models"
	"github.com/pixiegarden/english-backend/internal/service/integration"
)

type EnrollmentService interface {
	StartLesson(ctx context.Context, req *models.StartLessonRequest) (*models.StartLessonResponse, error)
}

type enrollmentService struct {
	store  docstore.Gateway
	events integration.EventPublisher
	logger zerolog.Logger
}

func NewEnrollmentService(
	store docstore.Gateway,
	events integration.EventPublisher,
	logger zerolog.Logger,
) EnrollmentService {
	return &enrollmentService{
		store:  store,
		events: events,
		logger: logger,
	}
}

// StartLesson выполняет три шага по порядку: находит или создаёт ученика,
// проверяет ссылку на урок, создаёт черновик прогресса. Отката при частичном
// сбое нет: оставшаяся запись ученика безвредна.
func (s *enrollmentService) StartLesson(ctx context.Context, req *models.StartLessonRequest) (*models.StartLessonResponse, error) {
	studentID, err := s.resolveStudent(ctx, req.StudentName, req.ParentEmail)
	if err != nil {
		return nil, err
	}

	// Без хранилища существование урока проверить нельзя, шаг пропускается.
	if s.store.Available() {
		if !s.store.IsValidReference(req.LessonID) {
			return nil, ErrInvalidLessonID
		}

		lesson, err := s.store.Get(ctx, lessonCollection, req.LessonID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up lesson: %w", err)
		}
		if lesson == nil {
			return nil, ErrLessonNotFound
		}
	}

	progress := models.Progress{
		StudentID: studentID,
		LessonID:  req.LessonID,
		Score:     0,
		Stars:     0,
	}

	progressID, err := s.store.Insert(ctx, progressCollection, progress)
	if err != nil {
		return nil, fmt.Errorf("failed to create progress record: %w", err)
	}

	s.publishLessonStarted(ctx, studentID, req.LessonID, progressID)

	s.logger.Info().
		Str("student_id", studentID).
		Str("lesson_id", req.LessonID).
		Str("progress_id", progressID).
		Msg("Lesson started")

	return &models.StartLessonResponse{
		StudentID:  studentID,
		ProgressID: progressID,
	}, nil
}

// resolveStudent ищет ученика по имени и создаёт его, если записи нет.
// Имя — единственный ключ; одинаковые имена схлопываются в одну запись.
func (s *enrollmentService) resolveStudent(ctx context.Context, name, parentEmail string) (string, error) {
	docs, err := s.store.Query(ctx, studentCollection, docstore.Filter{Field: "name", Value: name}, 1)
	if err != nil {
		return "", fmt.Errorf("failed to resolve student: %w", err)
	}
	if len(docs) > 0 {
		return docs[0].ID, nil
	}

	student := models.Student{
		Name:        name,
		ParentEmail: parentEmail,
	}
	student.ApplyDefaults()

	if err := student.Validate(); err != nil {
		return "", err
	}

	id, err := s.store.Insert(ctx, studentCollection, student)
	if err != nil {
		return "", fmt.Errorf("failed to create student: %w", err)
	}

	s.logger.Info().
		Str("student_id", id).
		Str("name", name).
		Msg("Student created")

	return id, nil
}

func (s *enrollmentService) publishLessonStarted(ctx context.Context, studentID, lessonID, progressID string) {
	if s.events == nil {
		return
	}

	event := &models.LessonStartedEvent{
		StudentID:  studentID,
		LessonID:   lessonID,
		ProgressID: progressID,
		Timestamp:  time.Now().Unix(),
	}

	if err := s.events.PublishLessonStarted(ctx, event); err != nil {
		// Не прерываем выполнение, только логируем ошибку
		s.logger.Error().Err(err).Msg("Failed to publish lesson started event")
	}
}
