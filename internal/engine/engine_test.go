package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/textsift/textsift/internal/corpus"
)

func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0600))
	}
	return root
}

func TestBuildSaveLoadSearch(t *testing.T) {
	root := writeCorpus(t, map[string]string{
		"bird.xml": "<doc>the bird flew</doc>",
		"cat.xml":  "<doc>the cat sat</doc>",
		"dog.xml":  "<doc>the dog ran</doc>",
	})
	indexPath := filepath.Join(t.TempDir(), "index.json")

	builder := NewEngine()
	require.NoError(t, builder.Build(context.Background(), corpus.NewDirectorySource(root), 2))
	assert.Equal(t, 3, builder.DocumentCount())
	require.NoError(t, builder.Save(indexPath))

	// A separate engine loads the snapshot, as the serve subcommand does.
	server := NewEngine()
	require.NoError(t, server.Load(indexPath))
	assert.Equal(t, 3, server.DocumentCount())

	result, err := server.Search("cat")
	require.NoError(t, err)
	require.Len(t, result.Hits, 3)
	assert.Equal(t, filepath.Join(root, "cat.xml"), result.Hits[0].DocumentID)
	assert.Greater(t, result.Hits[0].Score, result.Hits[1].Score)
	assert.Equal(t, 0.0, result.Hits[1].Score)
	assert.Equal(t, 0.0, result.Hits[2].Score)
}

func TestSearchWithoutIndex(t *testing.T) {
	_, err := NewEngine().Search("cat")
	assert.Error(t, err)
}

func TestSaveWithoutIndex(t *testing.T) {
	err := NewEngine().Save(filepath.Join(t.TempDir(), "index.json"))
	assert.Error(t, err)
}

func TestLoadFailureKeepsPreviousIndex(t *testing.T) {
	root := writeCorpus(t, map[string]string{"a.xml": "<doc>alpha</doc>"})

	eng := NewEngine()
	require.NoError(t, eng.Build(context.Background(), corpus.NewDirectorySource(root), 1))
	require.Equal(t, 1, eng.DocumentCount())

	badPath := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(badPath, []byte("{not json"), 0600))

	require.Error(t, eng.Load(badPath))
	assert.Equal(t, 1, eng.DocumentCount())

	result, err := eng.Search("alpha")
	require.NoError(t, err)
	assert.Len(t, result.Hits, 1)
}

func TestBuildSkipsUnreadableDocuments(t *testing.T) {
	root := writeCorpus(t, map[string]string{
		"good.xml": "<doc>indexed text</doc>",
		"bad.xml":  "<doc>truncated",
	})

	eng := NewEngine()
	require.NoError(t, eng.Build(context.Background(), corpus.NewDirectorySource(root), 2))
	assert.Equal(t, 1, eng.DocumentCount())
}

func TestDocumentCountWithoutIndex(t *testing.T) {
	assert.Equal(t, 0, NewEngine().DocumentCount())
}
