package tfidf

import (
	"errors"
	"math"
	"testing"

	"github.com/deanrtaylor1/rankfns"
	"github.com/deanrtaylor1/rankfns/bm25"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTF(t *testing.T) {
	tests := []struct {
		name    string
		tf      float64
		maxTF   float64
		variant TFVariant
		want    float64
	}{
		{"raw zero", 0, 0, Raw, 0},
		{"raw", 3, 0, Raw, 3},
		{"log zero", 0, 0, LogScaled, 0},
		{"log one", 1, 0, LogScaled, 1},
		{"log", 3, 0, LogScaled, 1 + math.Log(3)},
		{"boolean zero", 0, 0, Boolean, 0},
		{"boolean", 7, 0, Boolean, 1},
		{"augmented absent", 0, 4, Augmented, 0},
		{"augmented max", 4, 4, Augmented, 1},
		{"augmented half", 2, 4, Augmented, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TF(tt.tf, tt.maxTF, tt.variant)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestAugmentedTF_ZeroMax(t *testing.T) {
	_, err := AugmentedTF(2, 0)
	assert.True(t, errors.Is(err, rankfns.ErrDomain))
}

func TestIDF(t *testing.T) {
	got, err := IDF(1000, 10, Standard)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(100), got, 1e-12)

	got, err = IDF(1000, 10, Smoothed)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(101), got, 1e-12)

	got, err = IDF(1000, 10, Probabilistic)
	require.NoError(t, err)
	assert.Equal(t, bm25.IDFPlus1(1000, 10), got)

	// A term in every document carries no weight under the plain form.
	got, err = IDF(1000, 1000, Standard)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestIDF_ZeroDF(t *testing.T) {
	for _, v := range []IDFVariant{Standard, Smoothed} {
		got, err := IDF(1000, 0, v)
		require.Error(t, err, v.String())
		assert.True(t, errors.Is(err, rankfns.ErrDomain))
		assert.Equal(t, 0.0, got)

		var de *rankfns.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, "tfidf.IDF", de.Op)
	}

	got, err := IDF(1000, 0, Probabilistic)
	require.NoError(t, err)
	assert.False(t, math.IsInf(got, 0))
}

func TestIDF_EmptyCorpus(t *testing.T) {
	_, err := IDF(0, 1, Standard)
	assert.True(t, errors.Is(err, rankfns.ErrDomain))

	got, err := IDF(0, 1, Smoothed)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestUnknownVariant(t *testing.T) {
	_, err := TF(1, 1, TFVariant(42))
	assert.Error(t, err)
	_, err = IDF(1, 1, IDFVariant(42))
	assert.Error(t, err)
	assert.Equal(t, "TFVariant(42)", TFVariant(42).String())
}

func TestParseVariants(t *testing.T) {
	for v := range tfNames {
		got, err := ParseTFVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	for v := range idfNames {
		got, err := ParseIDFVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	got, err := ParseIDFVariant("SMOOTHED")
	require.NoError(t, err)
	assert.Equal(t, Smoothed, got)

	_, err = ParseTFVariant("bogus")
	assert.Error(t, err)
}

func TestScheme_Weight(t *testing.T) {
	s := Scheme{TF: Raw, IDF: Standard}
	got, err := s.Weight(3, 3, 1000, 10)
	require.NoError(t, err)
	assert.InDelta(t, 3*math.Log(100), got, 1e-12)

	_, err = s.Weight(3, 3, 1000, 0)
	assert.True(t, errors.Is(err, rankfns.ErrDomain))

	assert.Equal(t, "log-smoothed", DefaultScheme().String())
}

func TestScheme_Validate(t *testing.T) {
	assert.NoError(t, DefaultScheme().Validate())

	err := Scheme{TF: TFVariant(9), IDF: Standard}.Validate()
	assert.True(t, errors.Is(err, rankfns.ErrInvalidParameter))

	err = Scheme{TF: Raw, IDF: IDFVariant(9)}.Validate()
	assert.True(t, errors.Is(err, rankfns.ErrInvalidParameter))
}
