// Package search implements TF-IDF scoring and the query engine that ranks
// every indexed document against a free-text query.
package search

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/textsift/textsift/index"
	"github.com/textsift/textsift/internal/tokenizer"
	"github.com/textsift/textsift/services"
)

// Service implements the query engine over one loaded index.
// It fulfills the services.Searcher interface.
type Service struct {
	idx  *index.Index
	calc *Calculator
}

// NewService creates a new search Service.
func NewService(idx *index.Index) (*Service, error) {
	if idx == nil {
		return nil, fmt.Errorf("index cannot be nil")
	}
	return &Service{
		idx:  idx,
		calc: NewCalculator(idx),
	}, nil
}

// Search tokenizes the query, ranks every document in the index against it,
// and returns all (document, score) pairs sorted by score descending. Equal
// scores are ordered by document ID ascending so results are reproducible.
// An empty query ranks every document at 0.0; an empty index returns an
// empty result list.
func (s *Service) Search(query string) (services.SearchResult, error) {
	startTime := time.Now()

	queryTerms := tokenizer.Tokenize(query)

	hits := make([]services.Hit, 0, s.idx.Len())
	for docID, tf := range s.idx.Docs {
		hits = append(hits, services.Hit{
			DocumentID: docID,
			Score:      s.calc.RankDocument(queryTerms, tf),
		})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].DocumentID < hits[j].DocumentID
	})

	return services.SearchResult{
		Hits:    hits,
		Total:   len(hits),
		Took:    time.Since(startTime).Milliseconds(),
		QueryId: uuid.New().String(),
	}, nil
}
