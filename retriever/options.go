package retriever

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/deanrtaylor1/rankfns"
	"github.com/deanrtaylor1/rankfns/logger"
)

// ErrorPolicy decides what a domain error on one document does to the ranking.
type ErrorPolicy int

const (
	// Abort stops ranking and returns the error.
	Abort ErrorPolicy = iota
	// Skip leaves the document out of the results.
	Skip
)

func (p ErrorPolicy) String() string {
	switch p {
	case Abort:
		return "abort"
	case Skip:
		return "skip"
	}
	return fmt.Sprintf("ErrorPolicy(%d)", int(p))
}

type options struct {
	policy ErrorPolicy
	logger *slog.Logger
}

// Option configures a reference retriever.
type Option func(*options)

// WithErrorPolicy sets how per-document domain errors are handled.
func WithErrorPolicy(p ErrorPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithLogger sets the logger used to report skipped documents.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(opts []Option) options {
	o := options{policy: Abort, logger: logger.Default()}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// scoreFunc scores one document. ok is false when the document should not
// appear in the results at all.
type scoreFunc func(d Document) (score float64, ok bool, err error)

func (o options) rank(name string, c Corpus, k int, score scoreFunc) ([]Result, error) {
	top := NewTopK(k)
	err := c.ForEachDocument(func(d Document) error {
		s, ok, err := score(d)
		if err != nil {
			if o.policy == Skip && errors.Is(err, rankfns.ErrDomain) {
				o.logger.Debug("skipping document", "retriever", name, "doc", d.ID, "err", err)
				return nil
			}
			return fmt.Errorf("%s: document %q: %w", name, d.ID, err)
		}
		if ok {
			top.Push(Result{DocID: d.ID, Score: s})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return top.Results(), nil
}

func checkK(k int) error {
	if k <= 0 {
		return rankfns.ErrInvalidK
	}
	return nil
}
