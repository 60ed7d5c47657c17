package entities

// DailyWordSubscriber is a user who receives the daily word message.
type DailyWordSubscriber struct {
	UserID int64
	ChatID int64
}

// DailyWordPayload is used to build the daily word message.
type DailyWordPayload struct {
	Word  *Word
	Stats QuizStats
}
