package retriever

import (
	"errors"
	"math"

	"github.com/deanrtaylor1/rankfns/lm"
)

var _ Retriever = (*QueryLikelihood)(nil)

// QueryLikelihood ranks documents by the smoothed log-likelihood of the
// query under each document's language model. Every document is scored.
// Query terms absent from the collection are ignored. Without smoothing
// (lambda=0 or mu=0) a document missing a query term scores -Inf and ranks
// after every other document.
type QueryLikelihood struct {
	Smoothing lm.Smoothing
	opts      options
}

// NewQueryLikelihood returns a query-likelihood retriever. A nil smoothing
// means lm.DefaultSmoothing.
func NewQueryLikelihood(s lm.Smoothing, opts ...Option) *QueryLikelihood {
	if s == nil {
		s = lm.DefaultSmoothing()
	}
	return &QueryLikelihood{Smoothing: s, opts: newOptions(opts)}
}

func (r *QueryLikelihood) Rank(q QueryStats, c Corpus, k int) ([]Result, error) {
	if err := checkK(k); err != nil {
		return nil, err
	}
	if err := r.Smoothing.Validate(); err != nil {
		return nil, err
	}

	// Terms the collection has never seen carry no evidence for any
	// document and are left out.
	collLen := c.CollectionLen()
	var base []lm.TermEvidence
	var known []string
	for _, t := range q.Terms {
		p := lm.CollectionProb(c.CollectionTF(t.Term), collLen)
		if p <= 0 {
			continue
		}
		base = append(base, lm.TermEvidence{CollectionProb: p, Weight: t.weight()})
		known = append(known, t.Term)
	}

	return r.opts.rank("query-likelihood", c, k, func(d Document) (float64, bool, error) {
		terms := make([]lm.TermEvidence, len(base))
		copy(terms, base)
		for i, term := range known {
			terms[i].TF = d.TF(term)
		}
		score, err := lm.LogLikelihood(terms, d.Len, r.Smoothing)
		if errors.Is(err, lm.ErrZeroProbability) {
			// Unsmoothed (lambda=0 or mu=0) and the document lacks a term.
			return math.Inf(-1), true, nil
		}
		if err != nil {
			return 0, false, err
		}
		return score, true, nil
	})
}
