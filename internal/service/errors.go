package service

import "errors"

var (
	ErrNoGroupsSelected     = errors.New("no groups selected")
	ErrNoQuestionsAvailable = errors.New("no questions available")
	ErrNoPairsAvailable     = errors.New("no synonym pairs available for the selected groups")
	ErrNoActiveQuiz         = errors.New("no active quiz")
	ErrNoActiveGame         = errors.New("no active matching game")
	ErrNoActiveDeck         = errors.New("no open flashcard deck")
	ErrStaleQuestion        = errors.New("question is no longer current")
	ErrInvalidWordCount     = errors.New("invalid word count")
)
