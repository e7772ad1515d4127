package vectordb

import (
	"strings"
	"unicode"

	"github.com/zeebo/xxh3"
)

// encodeSparse turns free text into a sparse term-frequency vector: each
// distinct lowercased token hashes to a 32-bit dimension id, and its
// value is the raw in-document term count. Qdrant applies the
// collection-wide IDF modifier server-side (spec §4.7's "code_sparse
// (IDF-modified)"), so this adapter only ever emits raw frequencies.
func encodeSparse(text string) ([]uint32, []float32) {
	counts := map[uint32]float32{}
	for _, tok := range tokenize(text) {
		idx := uint32(xxh3.HashString(tok))
		counts[idx]++
	}
	if len(counts) == 0 {
		return nil, nil
	}
	indices := make([]uint32, 0, len(counts))
	values := make([]float32, 0, len(counts))
	for idx, v := range counts {
		indices = append(indices, idx)
		values = append(values, v)
	}
	return indices, values
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}
