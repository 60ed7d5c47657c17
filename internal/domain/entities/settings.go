package entities

import (
	"sort"
	"time"
)

// UserSettings stores the study preferences of a user.
type UserSettings struct {
	UserID            int64
	SelectedGroups    []int    // groups used by quiz and matching game
	QuizType          QuizType // last chosen quiz type
	WordCount         int      // number of quiz words, 0 means the default for the selected groups
	GridSize          GridSize // matching-game board
	ShuffleFlashcards bool
	DailyWord         bool // subscribed to the daily word message
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewUserSettings creates a new UserSettings instance with default values.
func NewUserSettings(userID int64) *UserSettings {
	now := time.Now()
	return &UserSettings{
		UserID:    userID,
		QuizType:  QuizTypeSynonym,
		GridSize:  DefaultGridSize,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasGroup reports whether group is selected.
func (us *UserSettings) HasGroup(group int) bool {
	for _, g := range us.SelectedGroups {
		if g == group {
			return true
		}
	}
	return false
}

// ToggleGroup selects or deselects a group, keeping the list sorted.
func (us *UserSettings) ToggleGroup(group int) {
	if us.HasGroup(group) {
		out := us.SelectedGroups[:0:0]
		for _, g := range us.SelectedGroups {
			if g != group {
				out = append(out, g)
			}
		}
		us.SelectedGroups = out
		return
	}
	us.SelectedGroups = append(append([]int(nil), us.SelectedGroups...), group)
	sort.Ints(us.SelectedGroups)
}
