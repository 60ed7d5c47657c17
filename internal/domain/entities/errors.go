package entities

import "errors"

var (
	ErrUnknownQuizType  = errors.New("unknown quiz type")
	ErrInvalidGridSize  = errors.New("invalid grid size")
	ErrQuizFinished     = errors.New("quiz is already finished")
	ErrQuizNotFinished  = errors.New("quiz is not finished yet")
	ErrQuestionNotFound = errors.New("question not found")
	ErrEmptyDeck        = errors.New("flashcard deck is empty")
)
