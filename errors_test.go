package rankfns

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError(t *testing.T) {
	err := NewDomainError("tfidf.IDF", "df is zero")

	assert.True(t, errors.Is(err, ErrDomain))
	assert.False(t, errors.Is(err, ErrInvalidParameter))
	assert.Equal(t, "tfidf.IDF: domain error: df is zero", err.Error())

	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "tfidf.IDF", de.Op)
}

func TestCheckUnit(t *testing.T) {
	for _, v := range []float64{0, 0.25, 1} {
		assert.NoError(t, CheckUnit("op", "b", v), "v=%v", v)
	}
	for _, v := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		err := CheckUnit("op", "b", v)
		require.Error(t, err, "v=%v", v)
		assert.True(t, errors.Is(err, ErrInvalidParameter))

		var pe *ParameterError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "b", pe.Name)
	}
}

func TestCheckNonNegative(t *testing.T) {
	assert.NoError(t, CheckNonNegative("op", "mu", 0))
	assert.NoError(t, CheckNonNegative("op", "mu", 2000))
	assert.Error(t, CheckNonNegative("op", "mu", -1))
	assert.Error(t, CheckNonNegative("op", "mu", math.NaN()))
	assert.Error(t, CheckNonNegative("op", "mu", math.Inf(1)))
}
