// Package persistence owns the physical save/load of the index file. The
// logical schema is a JSON object keyed by document ID whose values map
// terms to counts; encoding happens fully in memory and the bytes are
// written to a temporary file that is renamed into place, so a partial write
// can never be mistaken for a valid index.
package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/textsift/textsift/index"
	apperrors "github.com/textsift/textsift/internal/errors"
)

// SaveIndex serializes idx and writes it to filePath atomically. It creates
// the destination directory if needed. Failures wrap ErrEncodeFailure.
func SaveIndex(filePath string, idx *index.Index) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return apperrors.NewEncodeError(filePath, fmt.Errorf("failed to create directory %s: %w", dir, err))
	}

	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return apperrors.NewEncodeError(filePath, err)
	}

	// Write next to the destination so the rename stays on one filesystem.
	tmp, err := os.CreateTemp(dir, filepath.Base(filePath)+".tmp-*")
	if err != nil {
		return apperrors.NewEncodeError(filePath, fmt.Errorf("failed to create temporary file: %w", err))
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return apperrors.NewEncodeError(filePath, fmt.Errorf("failed to write temporary file %s: %w", tmpPath, err))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return apperrors.NewEncodeError(filePath, fmt.Errorf("failed to close temporary file %s: %w", tmpPath, err))
	}
	if err := os.Rename(tmpPath, filePath); err != nil {
		_ = os.Remove(tmpPath)
		return apperrors.NewEncodeError(filePath, fmt.Errorf("failed to move temporary file into place: %w", err))
	}
	return nil
}

// LoadIndex reads and deserializes the index at filePath. If the file does
// not exist it returns os.ErrNotExist so callers can handle fresh starts;
// any other failure wraps ErrDecodeFailure.
func LoadIndex(filePath string) (*index.Index, error) {
	data, err := os.ReadFile(filePath) // #nosec G304 -- filePath is controlled by application, not user input
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, apperrors.NewDecodeError(filePath, err)
	}

	idx := index.New()
	if err := json.Unmarshal(data, idx); err != nil {
		return nil, apperrors.NewDecodeError(filePath, err)
	}
	if idx.Docs == nil {
		idx.Docs = make(map[string]index.TermFrequency)
	}
	return idx, nil
}
