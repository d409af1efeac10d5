// core/stats/stats.go
package stats

import (
	"context"
	"io"

	"fastats-core/fasta"
)

// Summary holds the per-input statistics. MinLen, AvgLen and MaxLen are
// only meaningful when NumSeqs > 0; Defined reports that.
type Summary struct {
	NumSeqs    int
	TotalBases int
	MinLen     int
	AvgLen     int
	MaxLen     int
}

// Defined reports whether the min/avg/max fields carry a value.
func (s Summary) Defined() bool { return s.NumSeqs > 0 }

// Accumulator folds record lengths into a Summary, excluding records
// strictly shorter than the minimum length it was built with. The zero
// value is not usable; call New.
type Accumulator struct {
	minLen     int
	numSeqs    int
	totalBases int
	minSeen    int
	maxSeen    int
}

// New returns an Accumulator filtering out lengths below minLen.
func New(minLen int) *Accumulator { return &Accumulator{minLen: minLen} }

// Add folds one record length. Lengths below the threshold contribute to no
// statistic, including the count.
func (a *Accumulator) Add(length int) {
	if length < a.minLen {
		return
	}
	if a.numSeqs == 0 || length < a.minSeen {
		a.minSeen = length
	}
	if a.numSeqs == 0 || length > a.maxSeen {
		a.maxSeen = length
	}
	a.numSeqs++
	a.totalBases += length
}

// Summary returns the folded result. AvgLen is integer division, truncated.
func (a *Accumulator) Summary() Summary {
	if a.numSeqs == 0 {
		return Summary{}
	}
	return Summary{
		NumSeqs:    a.numSeqs,
		TotalBases: a.totalBases,
		MinLen:     a.minSeen,
		AvgLen:     a.totalBases / a.numSeqs,
		MaxLen:     a.maxSeen,
	}
}

// Collect scans FASTA from r into a fresh Accumulator and returns its
// Summary. Parse and context errors come back unchanged.
func Collect(ctx context.Context, r io.Reader, minLen int) (Summary, error) {
	acc := New(minLen)
	err := fasta.ScanCtx(ctx, r, func(rec fasta.Record) error {
		acc.Add(rec.Length)
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	return acc.Summary(), nil
}
