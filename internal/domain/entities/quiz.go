package entities

import "time"

// Quiz session statuses.
const (
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
	SessionStatusAbandoned = "abandoned"
)

// QuizSession represents a single quiz run of a user as stored in history.
type QuizSession struct {
	ID             int64      // unique session ID
	UserID         int64      // user ID who started the quiz
	QuizType       QuizType   // synonym, definition or reverse
	Groups         []int      // groups the words were drawn from
	TotalQuestions int        // number of generated questions
	CorrectAnswers int        // number of correct answers so far
	SessionStatus  string     // "active" or "completed"
	StartedAt      time.Time  // timestamp when the quiz started
	CompletedAt    *time.Time // timestamp when the quiz was completed (nullable)
}

// NewQuizSession creates a new active quiz session.
func NewQuizSession(userID int64, quizType QuizType, groups []int, totalQuestions int) *QuizSession {
	return &QuizSession{
		UserID:         userID,
		QuizType:       quizType,
		Groups:         append([]int(nil), groups...),
		TotalQuestions: totalQuestions,
		SessionStatus:  SessionStatusActive,
		StartedAt:      time.Now(),
	}
}

// Complete marks the quiz session as completed and sets the completion timestamp.
func (qs *QuizSession) Complete(correct int) {
	qs.CorrectAnswers = correct
	qs.SessionStatus = SessionStatusCompleted
	now := time.Now()
	qs.CompletedAt = &now
}

// QuizAnswer represents a user's answer to a quiz question.
type QuizAnswer struct {
	ID            int64
	SessionID     int64
	QuestionOrder int // zero-based position of the question in the session
	Prompt        string
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
	AnsweredAt    time.Time
}

// NewQuizAnswer creates a new quiz answer for a session question.
func NewQuizAnswer(sessionID int64, order int, prompt string) *QuizAnswer {
	return &QuizAnswer{
		SessionID:     sessionID,
		QuestionOrder: order,
		Prompt:        prompt,
		AnsweredAt:    time.Now(),
	}
}

// CheckAnswer sets the user's answer, correct answer, and determines if the answer is correct.
// Answers are picked from the options, so they are compared verbatim.
func (qa *QuizAnswer) CheckAnswer(userAnswer, correctAnswer string) {
	qa.UserAnswer = userAnswer
	qa.CorrectAnswer = correctAnswer
	qa.IsCorrect = userAnswer == correctAnswer
}
