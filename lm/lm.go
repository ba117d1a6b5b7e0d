package lm

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/deanrtaylor1/rankfns"
)

// DefaultMu is a common Dirichlet prior strength for short-to-medium documents.
const DefaultMu = 1000

// Smoothing estimates P(t|D) from a document count and a collection prior.
type Smoothing interface {
	// Prob returns the smoothed probability of a term that occurs tf times
	// in a document of length docLen, given its collection probability.
	Prob(tf, docLen, pCollection float64) (float64, error)
	// Validate reports a smoothing parameter outside its domain.
	Validate() error
	String() string
}

// JelinekMercerSmoothing interpolates linearly between the document and the
// collection estimate. Lambda is the weight of the collection.
type JelinekMercerSmoothing struct {
	Lambda float64
}

func (s JelinekMercerSmoothing) Validate() error {
	return rankfns.CheckUnit("lm.JelinekMercer", "lambda", s.Lambda)
}

func (s JelinekMercerSmoothing) Prob(tf, docLen, pCollection float64) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	// An empty document has no document-level evidence.
	var pDoc float64
	if docLen > 0 {
		pDoc = tf / docLen
	}
	return (1-s.Lambda)*pDoc + s.Lambda*pCollection, nil
}

func (s JelinekMercerSmoothing) String() string {
	return fmt.Sprintf("jelinek-mercer(lambda=%g)", s.Lambda)
}

// DirichletSmoothing adds Mu pseudo-counts distributed like the collection.
type DirichletSmoothing struct {
	Mu float64
}

func (s DirichletSmoothing) Validate() error {
	return rankfns.CheckNonNegative("lm.Dirichlet", "mu", s.Mu)
}

func (s DirichletSmoothing) Prob(tf, docLen, pCollection float64) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	denom := docLen + s.Mu
	if !(denom > 0) {
		return 0, rankfns.NewDomainError("lm.Dirichlet", "document length plus mu is zero")
	}
	return (tf + s.Mu*pCollection) / denom, nil
}

func (s DirichletSmoothing) String() string {
	return fmt.Sprintf("dirichlet(mu=%g)", s.Mu)
}

// DefaultSmoothing is Dirichlet with DefaultMu.
func DefaultSmoothing() Smoothing {
	return DirichletSmoothing{Mu: DefaultMu}
}

// NewSmoothing builds a Smoothing by name: "jm" or "jelinek-mercer" takes
// lambda, "dirichlet" takes mu.
func NewSmoothing(name string, param float64) (Smoothing, error) {
	var s Smoothing
	switch strings.ToLower(name) {
	case "jm", "jelinek-mercer":
		s = JelinekMercerSmoothing{Lambda: param}
	case "dirichlet":
		s = DirichletSmoothing{Mu: param}
	default:
		return nil, fmt.Errorf("unknown smoothing method %q", name)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// CollectionProb returns collectionTF / collectionLen, or 0 for an empty
// collection.
func CollectionProb(collectionTF, collectionLen float64) float64 {
	if collectionLen > 0 {
		return collectionTF / collectionLen
	}
	return 0
}

// JelinekMercer computes
//
//	(1 - lambda) * tf/docLen + lambda * collectionTF/collectionLen
//
// A zero-length document or collection contributes 0 to its own term.
func JelinekMercer(tf, docLen, collectionTF, collectionLen, lambda float64) (float64, error) {
	return JelinekMercerSmoothing{Lambda: lambda}.Prob(tf, docLen, CollectionProb(collectionTF, collectionLen))
}

// Dirichlet computes
//
//	(tf + mu * collectionTF/collectionLen) / (docLen + mu)
//
// and fails with a domain error when docLen + mu is zero.
func Dirichlet(tf, docLen, collectionTF, collectionLen, mu float64) (float64, error) {
	return DirichletSmoothing{Mu: mu}.Prob(tf, docLen, CollectionProb(collectionTF, collectionLen))
}

// ErrZeroProbability is matched by the LogLikelihood error for a term whose
// smoothed probability is zero.
var ErrZeroProbability = errors.New("term has zero probability")

// TermEvidence is what LogLikelihood needs to know about one query term.
type TermEvidence struct {
	TF             float64
	CollectionProb float64
	// Weight is the term's query frequency; zero is treated as 1.
	Weight float64
}

// LogLikelihood returns sum(weight * ln P(t|D)) over the query terms.
// A term with zero probability under the smoothed model makes the log
// undefined; the error matches both ErrZeroProbability and rankfns.ErrDomain.
func LogLikelihood(terms []TermEvidence, docLen float64, s Smoothing) (float64, error) {
	var sum float64
	for _, t := range terms {
		p, err := s.Prob(t.TF, docLen, t.CollectionProb)
		if err != nil {
			return 0, err
		}
		if !(p > 0) {
			return 0, fmt.Errorf("%w: %w", ErrZeroProbability, rankfns.NewDomainError("lm.LogLikelihood", "log of zero"))
		}
		w := t.Weight
		if w == 0 {
			w = 1
		}
		sum += w * math.Log(p)
	}
	return sum, nil
}
