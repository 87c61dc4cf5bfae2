package search

import (
	"math"

	"github.com/textsift/textsift/index"
)

// Calculator handles TF-IDF score calculations over a loaded index. All of
// its methods are pure: they read the index and never mutate it.
type Calculator struct {
	idx *index.Index
}

// NewCalculator creates a new TF-IDF calculator for idx.
func NewCalculator(idx *index.Index) *Calculator {
	return &Calculator{idx: idx}
}

// TermFrequency returns the relative occurrence rate of term within one
// document: count / total tokens. An empty table scores 0.0 rather than
// dividing by zero.
func (calc *Calculator) TermFrequency(term string, tf index.TermFrequency) float64 {
	total := tf.Total()
	if total == 0 {
		return 0.0
	}
	return float64(tf.Count(term)) / float64(total)
}

// InverseDocumentFrequency returns log10(N / (m + 1)) where N is the corpus
// size and m the number of documents containing term. The +1 keeps the
// denominator positive even for terms no document contains. An empty corpus
// scores 0.0.
func (calc *Calculator) InverseDocumentFrequency(term string) float64 {
	n := calc.idx.Len()
	if n == 0 {
		return 0.0
	}
	m := calc.idx.DocFrequency(term)
	return math.Log10(float64(n) / float64(m+1))
}

// Score returns TF * IDF for one term against one document's table.
func (calc *Calculator) Score(term string, tf index.TermFrequency) float64 {
	return calc.TermFrequency(term, tf) * calc.InverseDocumentFrequency(term)
}

// RankDocument sums Score over the query terms. Terms are taken with
// multiplicity: a term repeated in the query contributes once per repetition.
func (calc *Calculator) RankDocument(queryTerms []string, tf index.TermFrequency) float64 {
	rank := 0.0
	for _, term := range queryTerms {
		rank += calc.Score(term, tf)
	}
	return rank
}
