package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudent_ApplyDefaults(t *testing.T) {
	student := Student{Name: "Mia"}
	student.ApplyDefaults()

	assert.Equal(t, DefaultParentEmail, student.ParentEmail)
	assert.Equal(t, 1, student.Level)
}

func TestStudent_ApplyDefaults_KeepsProvidedValues(t *testing.T) {
	student := Student{
		Name:        "Mia",
		ParentEmail: "mia.mom@example.org",
		Level:       3,
	}
	student.ApplyDefaults()

	assert.Equal(t, "mia.mom@example.org", student.ParentEmail)
	assert.Equal(t, 3, student.Level)
}

func TestStudent_Validate(t *testing.T) {
	student := Student{Name: "Mia", ParentEmail: "mia.mom@example.org", Level: 1}
	assert.NoError(t, student.Validate())

	tests := []struct {
		name    string
		student Student
		field   string
	}{
		{"empty name", Student{ParentEmail: "a@b.co", Level: 1}, "name"},
		{"bad email", Student{Name: "Mia", ParentEmail: "not-an-email", Level: 1}, "parent_email"},
		{"zero level", Student{Name: "Mia", ParentEmail: "a@b.co", Level: 0}, "level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.student.Validate()
			require.Error(t, err)

			validationErr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestLesson_Validate(t *testing.T) {
	lesson := Lesson{Title: "Garden Friends", Theme: "Garden"}
	lesson.ApplyDefaults()

	assert.Equal(t, DifficultyEasy, lesson.Difficulty)
	assert.NotNil(t, lesson.Words)
	assert.NoError(t, lesson.Validate())

	lesson.Difficulty = "expert"
	err := lesson.Validate()
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "difficulty", validationErr.Field)
}

func TestLesson_Validate_RequiredFields(t *testing.T) {
	lesson := Lesson{Theme: "Garden", Difficulty: DifficultyEasy}
	err := lesson.Validate()
	require.Error(t, err)
	assert.Equal(t, "title", err.(*ValidationError).Field)

	lesson = Lesson{Title: "Garden Friends", Difficulty: DifficultyEasy}
	err = lesson.Validate()
	require.Error(t, err)
	assert.Equal(t, "theme", err.(*ValidationError).Field)
}

func TestProgress_Validate(t *testing.T) {
	progress := Progress{StudentID: "s1", LessonID: "l1", Score: 0, Stars: 0}
	assert.NoError(t, progress.Validate())

	progress.Score = 101
	err := progress.Validate()
	require.Error(t, err)
	assert.Equal(t, "score", err.(*ValidationError).Field)

	progress.Score = 100
	progress.Stars = 4
	err = progress.Validate()
	require.Error(t, err)
	assert.Equal(t, "stars", err.(*ValidationError).Field)
}
