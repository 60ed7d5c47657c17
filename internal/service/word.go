package service

import (
	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

// WordPage is one page of a group's word list.
type WordPage struct {
	Group int
	Words []*entities.Word
	Page  int // zero-based
	Pages int
	Total int
}

type WordService struct {
	repository WordRepository
}

func NewWordService(repository WordRepository) *WordService {
	return &WordService{repository: repository}
}

func (s *WordService) GroupNumbers() []int {
	return s.repository.GroupNumbers()
}

func (s *WordService) GetBySlug(slug string) (*entities.Word, error) {
	return s.repository.GetBySlug(slug)
}

func (s *WordService) GetByWord(word string) (*entities.Word, error) {
	return s.repository.GetByWord(word)
}

// GroupPage returns page of the alphabetically sorted words of group.
// Out of range pages are clamped.
func (s *WordService) GroupPage(group, page, perPage int) (WordPage, error) {
	words, err := s.repository.GetByGroup(group)
	if err != nil {
		return WordPage{}, err
	}
	if perPage < 1 {
		perPage = 1
	}

	pages := (len(words) + perPage - 1) / perPage
	page = max(0, min(page, pages-1))

	start := page * perPage
	end := min(start+perPage, len(words))

	return WordPage{
		Group: group,
		Words: words[start:end],
		Page:  page,
		Pages: pages,
		Total: len(words),
	}, nil
}
