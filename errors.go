package rankfns

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDomain is matched by every *DomainError.
	ErrDomain = errors.New("domain error")

	// ErrInvalidParameter is matched by every *ParameterError.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")
)

// DomainError reports a computation whose divisor (or log argument) is zero
// and for which no fallback value is defined.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, ErrDomain, e.Reason)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// ParameterError reports a tunable parameter outside its documented range.
type ParameterError struct {
	Op    string
	Name  string
	Value float64
	Want  string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s %s = %v, want %s", e.Op, ErrInvalidParameter, e.Name, e.Value, e.Want)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

// NewDomainError returns a *DomainError for op.
func NewDomainError(op, reason string) error {
	return &DomainError{Op: op, Reason: reason}
}

// CheckUnit returns a *ParameterError unless 0 <= v <= 1.
func CheckUnit(op, name string, v float64) error {
	if !(v >= 0 && v <= 1) {
		return &ParameterError{Op: op, Name: name, Value: v, Want: "in [0, 1]"}
	}
	return nil
}

// CheckNonNegative returns a *ParameterError unless v >= 0 and finite.
func CheckNonNegative(op, name string, v float64) error {
	if !(v >= 0) || math.IsInf(v, 1) {
		return &ParameterError{Op: op, Name: name, Value: v, Want: ">= 0 and finite"}
	}
	return nil
}
