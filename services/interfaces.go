package services

import (
	"context"

	"github.com/textsift/textsift/model"
)

// Hit represents a single document in the ranked results.
type Hit struct {
	DocumentID string  `json:"document_id"`
	Score      float64 `json:"score"`
}

// SearchResult is the full ranked result list for one query. Hits cover the
// whole corpus, ordered by score descending; callers truncate if they only
// want the top K.
type SearchResult struct {
	Hits    []Hit  `json:"hits"`
	Total   int    `json:"total"`
	Took    int64  `json:"took"`     // milliseconds
	QueryId string `json:"query_id"` // unique UUID for this search query
}

// Searcher defines operations for querying a loaded index.
type Searcher interface {
	Search(query string) (SearchResult, error)
}

// DocumentSource supplies (document ID, extracted text) pairs to the index
// builder. Implementations must skip documents they fail to read rather than
// ever substituting empty text.
type DocumentSource interface {
	Documents(ctx context.Context) <-chan model.Document
}

// IndexAccessor is the read-only handle the serving layer injects into its
// handlers: query access plus corpus statistics.
type IndexAccessor interface {
	Searcher
	DocumentCount() int
}
