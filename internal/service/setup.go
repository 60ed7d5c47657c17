package service

import (
	"strconv"
	"strings"
)

// WordCountLimits bounds the number of quiz words per selected group.
type WordCountLimits struct {
	MaxPerGroup     int
	DefaultPerGroup int
}

// DefaultWordCountLimits are 30 words at most and 10 by default per group.
var DefaultWordCountLimits = WordCountLimits{MaxPerGroup: 30, DefaultPerGroup: 10}

// Max returns the largest word count allowed for the given number of groups.
func (l WordCountLimits) Max(groups int) int {
	return groups * l.MaxPerGroup
}

// Default returns the preset word count for the given number of groups.
func (l WordCountLimits) Default(groups int) int {
	return min(groups*l.DefaultPerGroup, l.Max(groups))
}

// ClampWordCount parses user input as a word count. Non-digits and leading
// zeros are dropped, and the result is clamped to [1, limit]. It reports false
// when nothing numeric is left or limit is below 1.
func ClampWordCount(raw string, limit int) (int, bool) {
	if limit < 1 {
		return 0, false
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	digits = strings.TrimLeftFunc(digits, func(r rune) bool { return r == '0' })
	if digits == "" {
		return 0, false
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		// Too many digits for an int.
		return limit, true
	}

	return min(n, limit), true
}
