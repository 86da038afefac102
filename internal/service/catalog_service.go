package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pixiegarden/english-backend/internal/docstore"
	"github.com/pixiegarden/english-backend/internal/models"
)

const maxListLimit = 100

type CatalogService interface {
	Seed(ctx context.Context) (*models.SeedResult, error)
	List(ctx context.Context, limit int) *models.LessonList
}

type catalogService struct {
	store  docstore.Gateway
	logger zerolog.Logger
}

func NewCatalogService(store docstore.Gateway, logger zerolog.Logger) CatalogService {
	return &catalogService{
		store:  store,
		logger: logger,
	}
}

// Seed идемпотентно наполняет каталог демо-уроками. Запись требует живого
// хранилища, статического фолбэка здесь нет.
func (s *catalogService) Seed(ctx context.Context) (*models.SeedResult, error) {
	existing, err := s.store.Query(ctx, lessonCollection, docstore.Filter{}, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing lessons: %w", err)
	}
	if len(existing) > 0 {
		return &models.SeedResult{AlreadySeeded: true}, nil
	}

	inserted := 0
	for _, lesson := range demoLessons() {
		if _, err := s.store.Insert(ctx, lessonCollection, lesson); err != nil {
			return nil, fmt.Errorf("failed to seed lesson %q: %w", lesson.Title, err)
		}
		inserted++
	}

	s.logger.Info().Int("inserted", inserted).Msg("Demo lessons seeded")

	return &models.SeedResult{Inserted: inserted}, nil
}

// List отдаёт уроки из хранилища, а при любой ошибке — статический каталог
// с пометкой о деградации. Листинг никогда не падает.
func (s *catalogService) List(ctx context.Context, limit int) *models.LessonList {
	if limit > maxListLimit {
		limit = maxListLimit
	}

	docs, err := s.store.Query(ctx, lessonCollection, docstore.Filter{}, limit)
	if err != nil {
		return s.fallback(err)
	}

	items := make([]models.Lesson, 0, len(docs))
	for _, doc := range docs {
		var lesson models.Lesson
		if err := doc.Decode(&lesson); err != nil {
			return s.fallback(err)
		}
		lesson.ID = doc.ID
		items = append(items, lesson)
	}

	return &models.LessonList{Items: items}
}

func (s *catalogService) fallback(cause error) *models.LessonList {
	s.logger.Warn().Err(cause).Msg("Lesson listing degraded to static catalog")

	return &models.LessonList{
		Items: fallbackLessons(),
		Note:  "database not available: " + truncate(cause.Error(), 80),
	}
}

func demoLessons() []models.Lesson {
	return []models.Lesson{
		{
			Title:       "Garden Friends",
			Theme:       "Garden",
			Difficulty:  models.DifficultyEasy,
			Words:       []string{"bee", "tree", "pond", "seed", "sun"},
			Description: "Meet friendly garden words in pixel style!",
			Cover:       "🌻",
		},
		{
			Title:       "Farm Picnic",
			Theme:       "Farm",
			Difficulty:  models.DifficultyEasy,
			Words:       []string{"milk", "egg", "bread", "honey", "jam"},
			Description: "Yummy picnic items from the farm.",
			Cover:       "🧺",
		},
		{
			Title:       "Weather Wizard",
			Theme:       "Nature",
			Difficulty:  models.DifficultyMedium,
			Words:       []string{"rain", "sunny", "wind", "cloud", "storm"},
			Description: "Cast weather words like spells!",
			Cover:       "⛅",
		},
	}
}

func fallbackLessons() []models.Lesson {
	return []models.Lesson{
		{
			ID:          "1",
			Title:       "Garden Friends",
			Theme:       "Garden",
			Difficulty:  models.DifficultyEasy,
			Words:       []string{"bee", "tree", "pond", "seed", "sun"},
			Description: "Meet friendly garden words in pixel style!",
			Cover:       "🌻",
		},
		{
			ID:          "2",
			Title:       "Farm Picnic",
			Theme:       "Farm",
			Difficulty:  models.DifficultyEasy,
			Words:       []string{"milk", "egg", "bread", "honey", "jam"},
			Description: "Yummy picnic items from the farm.",
			Cover:       "🧺",
		},
	}
}
