package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuizAnswer_CheckAnswer(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		correct string
		want    bool
	}{
		{"same option", "wane", "wane", true},
		{"other option", "subside", "wane", false},
		{"case differs", "Wane", "wane", false},
		{"padded", " wane", "wane", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewQuizAnswer(1, 0, "abate")
			a.CheckAnswer(tt.answer, tt.correct)

			assert.Equal(t, tt.want, a.IsCorrect)
			assert.Equal(t, tt.answer, a.UserAnswer)
			assert.Equal(t, tt.correct, a.CorrectAnswer)
		})
	}
}

func TestQuizSession_Complete(t *testing.T) {
	s := NewQuizSession(1, QuizTypeSynonym, []int{1, 2}, 10)
	assert.Equal(t, SessionStatusActive, s.SessionStatus)
	assert.Nil(t, s.CompletedAt)

	s.Complete(7)
	assert.Equal(t, SessionStatusCompleted, s.SessionStatus)
	assert.Equal(t, 7, s.CorrectAnswers)
	assert.NotNil(t, s.CompletedAt)
}
