package entities

import "time"

// QuizStats aggregates the quiz history of a user.
type QuizStats struct {
	Sessions     int     // completed quiz sessions
	Questions    int     // questions answered in completed sessions
	Correct      int     // correct answers in completed sessions
	BestScore    float64 // best session score in percent
	AverageScore float64 // average session score in percent
}

// Accuracy returns the share of correct answers in percent.
func (s QuizStats) Accuracy() float64 {
	if s.Questions == 0 {
		return 0
	}
	return float64(s.Correct) * 100 / float64(s.Questions)
}

// MatchStats aggregates the finished matching games of a user.
type MatchStats struct {
	Games           int
	BestStreak      int
	AverageAttempts float64 // attempts per pair, 1.0 is a perfect game
}

// SessionSummary is one finished quiz in the history list.
type SessionSummary struct {
	ID          int64
	QuizType    QuizType
	Total       int
	Correct     int
	CompletedAt time.Time
}

// Percent returns the session score in percent.
func (s SessionSummary) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) * 100 / float64(s.Total)
}

// UserStats is everything shown on the statistics screen.
type UserStats struct {
	Quiz        QuizStats
	Match       MatchStats
	Recent      []SessionSummary
	RecentType  QuizType // filter of Recent, empty for all types
	TopMistakes []PairMistake
}
