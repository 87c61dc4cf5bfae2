package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/textsift/textsift/model"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func collect(t *testing.T, source *DirectorySource) map[string]string {
	t.Helper()
	docs := make(map[string]string)
	for doc := range source.Documents(context.Background()) {
		docs[doc.ID] = doc.Text
	}
	return docs
}

func TestDirectorySourceWalksRecursively(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.xml"), "<doc>alpha text</doc>")
	writeFile(t, filepath.Join(root, "sub", "b.xml"), "<doc>beta text</doc>")

	docs := collect(t, NewDirectorySource(root))

	require.Len(t, docs, 2)
	assert.Equal(t, "alpha text ", docs[filepath.Join(root, "a.xml")])
	assert.Equal(t, "beta text ", docs[filepath.Join(root, "sub", "b.xml")])
}

func TestDirectorySourceSkipsDotFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "visible.xml"), "<doc>kept</doc>")
	writeFile(t, filepath.Join(root, ".hidden.xml"), "<doc>ignored</doc>")
	writeFile(t, filepath.Join(root, ".hiddendir", "inner.xml"), "<doc>ignored too</doc>")

	docs := collect(t, NewDirectorySource(root))

	require.Len(t, docs, 1)
	_, ok := docs[filepath.Join(root, "visible.xml")]
	assert.True(t, ok)
}

func TestDirectorySourceSkipsMalformedFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "good.xml"), "<doc>fine</doc>")
	writeFile(t, filepath.Join(root, "bad.xml"), "<doc>never closed")

	docs := collect(t, NewDirectorySource(root))

	// The malformed file is skipped entirely, never yielded with empty text.
	require.Len(t, docs, 1)
	text, ok := docs[filepath.Join(root, "good.xml")]
	require.True(t, ok)
	assert.Equal(t, "fine ", text)
}

func TestDirectorySourceEmptyFolder(t *testing.T) {
	docs := collect(t, NewDirectorySource(t.TempDir()))
	assert.Empty(t, docs)
}

func TestDirectorySourceCancelledContext(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 20; i++ {
		writeFile(t, filepath.Join(root, "doc"+string(rune('a'+i))+".xml"), "<doc>text</doc>")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var received []model.Document
	for doc := range NewDirectorySource(root).Documents(ctx) {
		received = append(received, doc)
	}
	// The channel must close promptly; whatever was in flight is acceptable.
	assert.LessOrEqual(t, len(received), 20)
}
