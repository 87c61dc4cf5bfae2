// Package engine ties the pipeline together: build an index from a document
// source, persist it, load it back, and answer queries. An Engine holds at
// most one index at a time and is the explicit read-only handle the serving
// layer injects into its handlers; nothing here is ambient global state.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/textsift/textsift/index"
	"github.com/textsift/textsift/internal/indexing"
	"github.com/textsift/textsift/internal/persistence"
	"github.com/textsift/textsift/internal/search"
	"github.com/textsift/textsift/services"
)

// Engine orchestrates index building, persistence, and querying.
// It implements the services.IndexAccessor interface once an index is set.
type Engine struct {
	logger   *slog.Logger
	idx      *index.Index
	searcher *search.Service
}

// NewEngine creates an engine with no index loaded.
func NewEngine() *Engine {
	return &Engine{
		logger: slog.Default().With("component", "engine"),
	}
}

// Build constructs a fresh index from the document source on the given
// number of workers and installs it as the engine's current index. Rebuilding
// replaces the previous snapshot wholesale; there is no incremental update.
func (e *Engine) Build(ctx context.Context, source services.DocumentSource, workers int) error {
	idx, err := indexing.NewService(workers).BuildIndex(ctx, source)
	if err != nil {
		return fmt.Errorf("failed to build index: %w", err)
	}
	return e.setIndex(idx)
}

// Save persists the current index to path.
func (e *Engine) Save(path string) error {
	if e.idx == nil {
		return fmt.Errorf("no index to save")
	}
	if err := persistence.SaveIndex(path, e.idx); err != nil {
		return err
	}
	e.logger.Info("index saved", "path", path, "documents", e.idx.Len())
	return nil
}

// Load reads a persisted index from path and installs it. On failure the
// engine keeps its previous index (if any): a half-parsed snapshot is never
// served.
func (e *Engine) Load(path string) error {
	idx, err := persistence.LoadIndex(path)
	if err != nil {
		return err
	}
	if err := e.setIndex(idx); err != nil {
		return err
	}
	e.logger.Info("index loaded", "path", path, "documents", idx.Len())
	return nil
}

func (e *Engine) setIndex(idx *index.Index) error {
	searcher, err := search.NewService(idx)
	if err != nil {
		return fmt.Errorf("failed to create search service: %w", err)
	}
	e.idx = idx
	e.searcher = searcher
	return nil
}

// Search runs a query against the current index.
func (e *Engine) Search(query string) (services.SearchResult, error) {
	if e.searcher == nil {
		return services.SearchResult{}, fmt.Errorf("no index loaded")
	}
	return e.searcher.Search(query)
}

// DocumentCount returns the number of documents in the current index.
func (e *Engine) DocumentCount() int {
	if e.idx == nil {
		return 0
	}
	return e.idx.Len()
}
