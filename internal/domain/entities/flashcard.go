package entities

// FlashcardDeck is the state of a flashcard session over one group.
type FlashcardDeck struct {
	Group    int
	Words    []*Word
	Index    int
	Flipped  bool
	Shuffled bool
}

// NewFlashcardDeck creates a deck positioned on the first card.
func NewFlashcardDeck(group int, words []*Word, shuffled bool) FlashcardDeck {
	return FlashcardDeck{
		Group:    group,
		Words:    words,
		Shuffled: shuffled,
	}
}

// Card returns the word currently shown.
func (d FlashcardDeck) Card() (*Word, error) {
	if len(d.Words) == 0 {
		return nil, ErrEmptyDeck
	}
	return d.Words[d.Index], nil
}

// Next moves to the following card, wrapping to the first one.
func (d FlashcardDeck) Next() FlashcardDeck {
	if len(d.Words) == 0 {
		return d
	}
	d.Flipped = false
	d.Index = (d.Index + 1) % len(d.Words)
	return d
}

// Prev moves to the previous card, wrapping to the last one.
func (d FlashcardDeck) Prev() FlashcardDeck {
	if len(d.Words) == 0 {
		return d
	}
	d.Flipped = false
	d.Index = (d.Index - 1 + len(d.Words)) % len(d.Words)
	return d
}

// Flip turns the current card over.
func (d FlashcardDeck) Flip() FlashcardDeck {
	d.Flipped = !d.Flipped
	return d
}

// Restart goes back to the first card, front side up.
func (d FlashcardDeck) Restart() FlashcardDeck {
	d.Flipped = false
	d.Index = 0
	return d
}

// Progress returns the one-based position of the current card and the deck size.
func (d FlashcardDeck) Progress() (int, int) {
	if len(d.Words) == 0 {
		return 0, 0
	}
	return d.Index + 1, len(d.Words)
}
