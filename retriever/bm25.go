package retriever

import (
	"github.com/deanrtaylor1/rankfns/bm25"
)

var _ Retriever = (*BM25)(nil)

// BM25 ranks documents by the sum of IDFPlus1 * TF over the query terms.
// Documents that contain no query term are not returned.
type BM25 struct {
	Params bm25.Params
	opts   options
}

// NewBM25 returns a BM25 retriever with the given parameters.
func NewBM25(p bm25.Params, opts ...Option) *BM25 {
	return &BM25{Params: p, opts: newOptions(opts)}
}

func (r *BM25) Rank(q QueryStats, c Corpus, k int) ([]Result, error) {
	if err := checkK(k); err != nil {
		return nil, err
	}
	if err := r.Params.Validate(); err != nil {
		return nil, err
	}

	n := c.NumDocs()
	avg := c.AvgDocLen()
	idfs := make([]float64, len(q.Terms))
	for i, t := range q.Terms {
		idfs[i] = bm25.IDFPlus1(n, c.DocFreq(t.Term))
	}

	return r.opts.rank("bm25", c, k, func(d Document) (float64, bool, error) {
		var score float64
		matched := false
		for i, t := range q.Terms {
			tf := d.TF(t.Term)
			if tf <= 0 {
				continue
			}
			w, err := r.Params.TF(tf, d.Len, avg)
			if err != nil {
				return 0, false, err
			}
			matched = true
			score += t.weight() * idfs[i] * w
		}
		return score, matched, nil
	})
}
