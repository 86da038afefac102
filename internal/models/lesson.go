package models

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Lesson struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Theme       string     `json:"theme"`
	Difficulty  Difficulty `json:"difficulty"`
	Words       []string   `json:"words"`
	Description string     `json:"description,omitempty"`
	Cover       string     `json:"cover,omitempty"`
}

func (l *Lesson) ApplyDefaults() {
	if l.Difficulty == "" {
		l.Difficulty = DifficultyEasy
	}
	if l.Words == nil {
		l.Words = []string{}
	}
}

func (l *Lesson) Validate() error {
	if l.Title == "" {
		return invalidField("title", "must not be empty")
	}
	if l.Theme == "" {
		return invalidField("theme", "must not be empty")
	}
	switch l.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return invalidField("difficulty", "must be one of easy, medium, hard")
	}
	return nil
}
