// Package bm25 provides the Okapi BM25 scoring kernels.
//
// A BM25 term score is the product of an IDF weight and a saturated
// term-frequency weight:
//
//	score = IDFPlus1(N, df) * TF(tf, docLen, avgDocLen, k1, b)
//
// The package-level functions are unchecked arithmetic. Params.TF and
// Params.Score validate k1, b and the average document length first and
// report failures as rankfns.ErrInvalidParameter or rankfns.ErrDomain.
package bm25
