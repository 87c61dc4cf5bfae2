// Package index defines the core data model of the engine: the per-document
// term-frequency table and the corpus-wide index mapping document IDs to
// their tables.
package index

import "encoding/json"

// TermFrequency maps a normalized term to its occurrence count within a
// single document. Every stored count is >= 1; a term that never occurred is
// simply absent. Tables are built once by tokenizing the document and are
// not mutated afterwards.
type TermFrequency map[string]int

// Count returns the occurrence count for term, 0 if the term is absent.
func (tf TermFrequency) Count(term string) int {
	return tf[term]
}

// Total returns the sum of all counts, i.e. the number of tokens the
// document produced. It is recomputed on every call so it can never drift
// from the table contents.
func (tf TermFrequency) Total() int {
	total := 0
	for _, count := range tf {
		total += count
	}
	return total
}

// Increment bumps the count for term by one. Used only while a table is
// being built.
func (tf TermFrequency) Increment(term string) {
	tf[term]++
}

// Index maps a document ID to that document's term-frequency table. It
// represents one full corpus snapshot: built in a single batch, persisted,
// and loaded read-only for querying. Key order carries no meaning.
type Index struct {
	Docs map[string]TermFrequency
}

// New returns an empty Index ready to accept documents.
func New() *Index {
	return &Index{Docs: make(map[string]TermFrequency)}
}

// Len returns the number of indexed documents (N in the IDF formula). It is
// always derived from the live map, never cached separately.
func (idx *Index) Len() int {
	return len(idx.Docs)
}

// Add inserts a document's term-frequency table under docID, replacing any
// previous entry with the same ID.
func (idx *Index) Add(docID string, tf TermFrequency) {
	idx.Docs[docID] = tf
}

// Lookup returns the term-frequency table for docID, if present.
func (idx *Index) Lookup(docID string) (TermFrequency, bool) {
	tf, ok := idx.Docs[docID]
	return tf, ok
}

// DocFrequency returns the number of documents whose table contains term.
func (idx *Index) DocFrequency(term string) int {
	count := 0
	for _, tf := range idx.Docs {
		if _, ok := tf[term]; ok {
			count++
		}
	}
	return count
}

// MarshalJSON implements json.Marshaler. The persisted shape is a single
// object keyed by document ID whose values map terms to counts; there is no
// wrapper object around it.
func (idx *Index) MarshalJSON() ([]byte, error) {
	docs := idx.Docs
	if docs == nil {
		docs = make(map[string]TermFrequency)
	}
	return json.Marshal(docs)
}

// UnmarshalJSON implements json.Unmarshaler for the same flat shape.
func (idx *Index) UnmarshalJSON(data []byte) error {
	docs := make(map[string]TermFrequency)
	if err := json.Unmarshal(data, &docs); err != nil {
		return err
	}
	idx.Docs = docs
	return nil
}
