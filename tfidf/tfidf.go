package tfidf

import (
	"fmt"
	"math"
	"strings"

	"github.com/deanrtaylor1/rankfns"
	"github.com/deanrtaylor1/rankfns/bm25"
)

// TFVariant selects a term-frequency transform.
type TFVariant int

const (
	// Raw uses tf as is.
	Raw TFVariant = iota
	// LogScaled uses 1 + ln(tf) for tf > 0.
	LogScaled
	// Boolean is 1 when the term occurs at all.
	Boolean
	// Augmented uses 0.5 + 0.5 * tf/maxTF, damping long documents.
	Augmented
)

var tfNames = map[TFVariant]string{
	Raw:       "raw",
	LogScaled: "log",
	Boolean:   "boolean",
	Augmented: "augmented",
}

func (v TFVariant) String() string {
	if s, ok := tfNames[v]; ok {
		return s
	}
	return fmt.Sprintf("TFVariant(%d)", int(v))
}

// ParseTFVariant is the inverse of TFVariant.String.
func ParseTFVariant(s string) (TFVariant, error) {
	for v, name := range tfNames {
		if strings.EqualFold(s, name) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown tf variant %q", s)
}

// IDFVariant selects an inverse-document-frequency transform.
type IDFVariant int

const (
	// Standard is ln(N/df).
	Standard IDFVariant = iota
	// Smoothed is ln(1 + N/df).
	Smoothed
	// Probabilistic is the BM25 form ln(1 + (N-df+0.5)/(df+0.5)).
	Probabilistic
)

var idfNames = map[IDFVariant]string{
	Standard:      "standard",
	Smoothed:      "smoothed",
	Probabilistic: "probabilistic",
}

func (v IDFVariant) String() string {
	if s, ok := idfNames[v]; ok {
		return s
	}
	return fmt.Sprintf("IDFVariant(%d)", int(v))
}

// ParseIDFVariant is the inverse of IDFVariant.String.
func ParseIDFVariant(s string) (IDFVariant, error) {
	for v, name := range idfNames {
		if strings.EqualFold(s, name) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown idf variant %q", s)
}

// RawTF returns tf, or 0 for negative input.
func RawTF(tf float64) float64 {
	return math.Max(tf, 0)
}

// LogTF returns 1 + ln(tf) for tf > 0 and 0 otherwise.
func LogTF(tf float64) float64 {
	if tf <= 0 {
		return 0
	}
	return 1 + math.Log(tf)
}

// BooleanTF returns 1 for tf > 0 and 0 otherwise.
func BooleanTF(tf float64) float64 {
	if tf > 0 {
		return 1
	}
	return 0
}

// AugmentedTF returns 0.5 + 0.5*tf/maxTF, where maxTF is the largest term
// frequency in the same document. An absent term (tf <= 0) scores 0.
func AugmentedTF(tf, maxTF float64) (float64, error) {
	if tf <= 0 {
		return 0, nil
	}
	if maxTF <= 0 {
		return 0, rankfns.NewDomainError("tfidf.AugmentedTF", "max tf must be positive")
	}
	return 0.5 + 0.5*tf/maxTF, nil
}

// TF applies the transform v. maxTF is only read by Augmented.
func TF(tf, maxTF float64, v TFVariant) (float64, error) {
	switch v {
	case Raw:
		return RawTF(tf), nil
	case LogScaled:
		return LogTF(tf), nil
	case Boolean:
		return BooleanTF(tf), nil
	case Augmented:
		return AugmentedTF(tf, maxTF)
	}
	return 0, fmt.Errorf("tfidf.TF: unknown variant %v", v)
}

// IDF applies the transform v.
//
// Standard and Smoothed divide by df, so df == 0 is a domain error rather
// than +Inf. Standard additionally fails for an empty corpus, where the
// log argument is zero.
func IDF(nDocs, df uint64, v IDFVariant) (float64, error) {
	switch v {
	case Standard:
		if df == 0 {
			return 0, rankfns.NewDomainError("tfidf.IDF", "df is zero")
		}
		if nDocs == 0 {
			return 0, rankfns.NewDomainError("tfidf.IDF", "corpus is empty")
		}
		return math.Log(float64(nDocs) / float64(df)), nil
	case Smoothed:
		if df == 0 {
			return 0, rankfns.NewDomainError("tfidf.IDF", "df is zero")
		}
		return math.Log1p(float64(nDocs) / float64(df)), nil
	case Probabilistic:
		return bm25.IDFPlus1(nDocs, df), nil
	}
	return 0, fmt.Errorf("tfidf.IDF: unknown variant %v", v)
}

// Scheme pairs a TF transform with an IDF transform.
type Scheme struct {
	TF  TFVariant
	IDF IDFVariant
}

// DefaultScheme is log-scaled TF with smoothed IDF.
func DefaultScheme() Scheme {
	return Scheme{TF: LogScaled, IDF: Smoothed}
}

// Validate rejects variants this package does not know.
func (s Scheme) Validate() error {
	if _, ok := tfNames[s.TF]; !ok {
		return &rankfns.ParameterError{Op: "tfidf.Scheme", Name: "tf variant", Value: float64(s.TF), Want: "a known TFVariant"}
	}
	if _, ok := idfNames[s.IDF]; !ok {
		return &rankfns.ParameterError{Op: "tfidf.Scheme", Name: "idf variant", Value: float64(s.IDF), Want: "a known IDFVariant"}
	}
	return nil
}

func (s Scheme) String() string {
	return s.TF.String() + "-" + s.IDF.String()
}

// Weight returns TF(tf) * IDF(nDocs, df) for a single term in a single document.
func (s Scheme) Weight(tf, maxTF float64, nDocs, df uint64) (float64, error) {
	w, err := TF(tf, maxTF, s.TF)
	if err != nil {
		return 0, err
	}
	idf, err := IDF(nDocs, df, s.IDF)
	if err != nil {
		return 0, err
	}
	return w * idf, nil
}
