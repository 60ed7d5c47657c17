package service

import (
	"github.com/aliskhannn/gre-vocab-bot/internal/search"
)

// SearchPage holds the best matches of a query and the total match count.
type SearchPage struct {
	Query   string
	Results []search.Result
	Total   int
}

type SearchService struct {
	index      *search.Index
	maxResults int
}

func NewSearchService(index *search.Index, maxResults int) *SearchService {
	if maxResults < 1 {
		maxResults = 10
	}
	return &SearchService{index: index, maxResults: maxResults}
}

// Search returns at most maxResults matches, best first.
func (s *SearchService) Search(q string) SearchPage {
	all := s.index.Search(q)
	return SearchPage{
		Query:   q,
		Results: takeFirst(all, s.maxResults),
		Total:   len(all),
	}
}
