// Package corpus supplies documents to the index builder. The engine core
// never touches the filesystem for document text; this package owns the
// directory traversal and text extraction, and skips any document it cannot
// read rather than handing over partial or empty text.
package corpus

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/textsift/textsift/internal/errors"
	"github.com/textsift/textsift/model"
)

// DirectorySource walks a root folder recursively and yields one document
// per readable XML file, using the file path as the document ID. Dot files
// and dot directories are ignored.
type DirectorySource struct {
	root   string
	logger *slog.Logger
}

// NewDirectorySource creates a source over the given root folder.
func NewDirectorySource(root string) *DirectorySource {
	return &DirectorySource{
		root:   root,
		logger: slog.Default().With("component", "corpus"),
	}
}

// Documents implements services.DocumentSource. The returned channel is
// closed once the walk finishes or ctx is cancelled. Files that fail to open
// or parse are logged and skipped; they never appear downstream, so a read
// failure can never produce an index entry.
func (s *DirectorySource) Documents(ctx context.Context) <-chan model.Document {
	out := make(chan model.Document)
	go func() {
		defer close(out)

		err := filepath.WalkDir(s.root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				s.logger.Warn("skipping unreadable path", "path", path, "error", err)
				if entry != nil && entry.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if strings.HasPrefix(entry.Name(), ".") && path != s.root {
				if entry.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if entry.IsDir() {
				return nil
			}

			text, err := s.readFile(path)
			if err != nil {
				s.logger.Warn("skipping document", "error", apperrors.NewReadError(path, err))
				return nil
			}

			select {
			case out <- model.Document{ID: path, Text: text}:
			case <-ctx.Done():
				return ctx.Err()
			}
			return nil
		})
		if err != nil && ctx.Err() == nil {
			s.logger.Error("corpus walk aborted", "root", s.root, "error", err)
		}
	}()
	return out
}

func (s *DirectorySource) readFile(path string) (string, error) {
	file, err := os.Open(path) // #nosec G304 -- path comes from walking the configured corpus root
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			s.logger.Warn("failed to close file", "path", path, "error", closeErr)
		}
	}()

	return ExtractText(file)
}
