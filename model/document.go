package model

// Document is one unit of indexable text. ID is an opaque, unique key within
// a corpus (for file-backed corpora it is the file path). It is the join key
// between a persisted index and any later re-index of the same corpus.
type Document struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
