package bm25

import (
	"math"

	"github.com/deanrtaylor1/rankfns"
)

const (
	// DefaultK1 controls how quickly term frequency saturates.
	DefaultK1 = 1.2
	// DefaultB controls how strongly document length is normalized.
	DefaultB = 0.75
)

// Params are the two BM25 tuning knobs.
type Params struct {
	K1 float64
	B  float64
}

// DefaultParams returns k1=1.2, b=0.75.
func DefaultParams() Params {
	return Params{K1: DefaultK1, B: DefaultB}
}

// Validate checks k1 >= 0 and 0 <= b <= 1.
func (p Params) Validate() error {
	if err := rankfns.CheckNonNegative("bm25.Params", "k1", p.K1); err != nil {
		return err
	}
	return rankfns.CheckUnit("bm25.Params", "b", p.B)
}

// IDFPlus1 computes the Robertson-Walker IDF with a +1 inside the log:
//
//	ln(1 + (N - df + 0.5) / (df + 0.5))
//
// The result is finite and non-negative for every input. df greater than
// nDocs is clamped to nDocs rather than rejected.
func IDFPlus1(nDocs, df uint64) float64 {
	n, d := counts(nDocs, df)
	return math.Log1p((n - d + 0.5) / (d + 0.5))
}

// IDF computes the classic Robertson-Sparck Jones weight
//
//	ln((N - df + 0.5) / (df + 0.5))
//
// which goes negative once a term appears in more than half of the corpus.
// Callers that need a weight that is never negative should use IDFPlus1.
// df is clamped to nDocs so the log argument stays positive.
func IDF(nDocs, df uint64) float64 {
	n, d := counts(nDocs, df)
	return math.Log((n - d + 0.5) / (d + 0.5))
}

func counts(nDocs, df uint64) (float64, float64) {
	if df > nDocs {
		df = nDocs
	}
	return float64(nDocs), float64(df)
}

// TF computes the BM25 saturated term frequency
//
//	tf * (k1 + 1) / (tf + k1 * (1 - b + b * docLen/avgDocLen))
//
// tf <= 0 returns exactly 0. avgDocLen must be positive: with avgDocLen == 0
// the length ratio is infinite (or NaN for docLen == 0) and so is the result.
// Parameters are not validated here, see Params.TF.
func TF(tf, docLen, avgDocLen, k1, b float64) float64 {
	if tf <= 0 {
		return 0
	}
	return tf * (k1 + 1) / (tf + k1*LengthNorm(docLen, avgDocLen, b))
}

// LengthRatio returns docLen / avgDocLen.
func LengthRatio(docLen, avgDocLen float64) float64 {
	return docLen / avgDocLen
}

// LengthNorm returns the BM25 length normalization factor
// 1 - b + b * docLen/avgDocLen. It is 1 for an average-length document
// and for b == 0.
func LengthNorm(docLen, avgDocLen, b float64) float64 {
	return 1 - b + b*LengthRatio(docLen, avgDocLen)
}

// TF is the validated form of the package-level TF.
func (p Params) TF(tf, docLen, avgDocLen float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if !(avgDocLen > 0) {
		return 0, rankfns.NewDomainError("bm25.TF", "average document length must be positive")
	}
	return TF(tf, docLen, avgDocLen, p.K1, p.B), nil
}

// Score returns IDFPlus1(nDocs, df) * TF for a single term in a single document.
func (p Params) Score(tf, docLen, avgDocLen float64, nDocs, df uint64) (float64, error) {
	w, err := p.TF(tf, docLen, avgDocLen)
	if err != nil {
		return 0, err
	}
	return IDFPlus1(nDocs, df) * w, nil
}
