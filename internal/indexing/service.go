// Package indexing builds term-frequency tables from document text and
// accumulates them into a corpus index.
package indexing

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/textsift/textsift/index"
	"github.com/textsift/textsift/internal/tokenizer"
	"github.com/textsift/textsift/services"
)

// BuildTermFrequencies tokenizes one document's text and counts each
// resulting term. Tokenization over an in-memory string cannot fail, so this
// step has no error path; a document with no tokens yields an empty table.
func BuildTermFrequencies(text string) index.TermFrequency {
	tf := make(index.TermFrequency)
	lexer := tokenizer.New(text)
	for {
		raw, ok := lexer.Next()
		if !ok {
			break
		}
		tf.Increment(tokenizer.Normalize(raw))
	}
	return tf
}

// Service builds a full index from a document source, tokenizing documents
// on a bounded pool of workers. Each document's table is independent, so the
// only synchronization point is the final merge into the index.
type Service struct {
	workers int
	logger  *slog.Logger
}

// NewService creates an index build service running on the given number of
// workers. Zero or negative means one worker per CPU.
func NewService(workers int) *Service {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Service{
		workers: workers,
		logger:  slog.Default().With("component", "indexing"),
	}
}

type tableEntry struct {
	docID string
	tf    index.TermFrequency
}

// BuildIndex consumes every document the source supplies and returns the
// resulting index. Insertion order does not affect later query results, so
// worker scheduling is free to interleave documents arbitrarily.
func (s *Service) BuildIndex(ctx context.Context, source services.DocumentSource) (*index.Index, error) {
	docs := source.Documents(ctx)
	entries := make(chan tableEntry)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < s.workers; i++ {
		g.Go(func() error {
			for doc := range docs {
				entry := tableEntry{docID: doc.ID, tf: BuildTermFrequencies(doc.Text)}
				select {
				case entries <- entry:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	go func() {
		// Workers are the only senders; close once they are all done.
		_ = g.Wait()
		close(entries)
	}()

	idx := index.New()
	for entry := range entries {
		idx.Add(entry.docID, entry.tf)
		s.logger.Debug("indexed document", "doc_id", entry.docID, "terms", len(entry.tf))
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("index build aborted: %w", err)
	}
	s.logger.Info("index build complete", "documents", idx.Len())
	return idx, nil
}
