package retriever

import (
	"github.com/deanrtaylor1/rankfns/tfidf"
)

var _ Retriever = (*TFIDF)(nil)

// TFIDF ranks documents by the sum of a TF-IDF scheme's weights over the
// query terms. Documents that contain no query term are not returned.
type TFIDF struct {
	Scheme tfidf.Scheme
	opts   options
}

// NewTFIDF returns a TF-IDF retriever using scheme.
func NewTFIDF(scheme tfidf.Scheme, opts ...Option) *TFIDF {
	return &TFIDF{Scheme: scheme, opts: newOptions(opts)}
}

func (r *TFIDF) Rank(q QueryStats, c Corpus, k int) ([]Result, error) {
	if err := checkK(k); err != nil {
		return nil, err
	}
	if err := r.Scheme.Validate(); err != nil {
		return nil, err
	}

	// IDF errors only matter for documents that actually contain the term.
	n := c.NumDocs()
	idfs := make([]float64, len(q.Terms))
	idfErrs := make([]error, len(q.Terms))
	for i, t := range q.Terms {
		idfs[i], idfErrs[i] = tfidf.IDF(n, c.DocFreq(t.Term), r.Scheme.IDF)
	}

	return r.opts.rank("tfidf", c, k, func(d Document) (float64, bool, error) {
		var score float64
		matched := false
		maxTF := d.MaxTF()
		for i, t := range q.Terms {
			tf := d.TF(t.Term)
			if tf <= 0 {
				continue
			}
			if idfErrs[i] != nil {
				return 0, false, idfErrs[i]
			}
			w, err := tfidf.TF(tf, maxTF, r.Scheme.TF)
			if err != nil {
				return 0, false, err
			}
			matched = true
			score += t.weight() * w * idfs[i]
		}
		return score, matched, nil
	})
}
