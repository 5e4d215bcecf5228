package testdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arwah7/dragonet/internal/model"
)

//go:embed corpus.json
var corpusJSON []byte

// CorpusEntry is a labeled block hash for classifier validation. Digit -1
// marks a hash the classifier must reject.
type CorpusEntry struct {
	Hash        string `json:"hash"`
	Digit       int    `json:"digit"`
	Parity      string `json:"parity"`
	Size        string `json:"size"`
	Description string `json:"description"`
}

// LoadCorpus parses the embedded corpus.json and returns all entries.
func LoadCorpus() ([]CorpusEntry, error) {
	var entries []CorpusEntry
	if err := json.Unmarshal(corpusJSON, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus.json: %w", err)
	}
	return entries, nil
}

var baseTime = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

// Sequence builds one classified outcome per digit, heights ascending from
// start in the given step. Hashes are synthesized to end in the digit so the
// classifier contract holds across the fixture.
func Sequence(start, step int64, digits ...int) []model.Outcome {
	out := make([]model.Outcome, len(digits))
	h := start
	for i, d := range digits {
		out[i] = model.Outcome{
			Height: h,
			Hash:   fmt.Sprintf("%016x%047x%d", uint64(h), uint64(h)*2654435761, d),
			Digit:  d,
			Parity: model.ParityOf(d),
			Size:   model.SizeOf(d),
			Time:   baseTime.Add(time.Duration(i) * 3 * time.Second),
		}
		h += step
	}
	return out
}

// Repeat returns n copies of digit, for feeding Sequence.
func Repeat(digit, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = digit
	}
	return out
}

// Alternate returns n digits alternating a then b, for feeding Sequence.
func Alternate(a, b, n int) []int {
	out := make([]int, n)
	for i := range out {
		if i%2 == 0 {
			out[i] = a
		} else {
			out[i] = b
		}
	}
	return out
}
