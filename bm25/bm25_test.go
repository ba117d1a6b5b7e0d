package bm25

import (
	"errors"
	"math"
	"testing"

	"github.com/deanrtaylor1/rankfns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFPlus1(t *testing.T) {
	assert.InDelta(t, math.Log(1+990.5/10.5), IDFPlus1(1000, 10), 1e-12)
	assert.InDelta(t, 4.557, IDFPlus1(1000, 10), 1e-3)

	// df == N stays positive because of the +1.
	assert.Greater(t, IDFPlus1(1000, 1000), 0.0)

	// df == 0 is the maximum for a given N.
	assert.Greater(t, IDFPlus1(1000, 0), IDFPlus1(1000, 1))

	// Empty corpus.
	assert.InDelta(t, math.Ln2, IDFPlus1(0, 0), 1e-12)
}

func TestIDFPlus1_NonNegativeAndNonIncreasing(t *testing.T) {
	for _, n := range []uint64{1, 2, 7, 100, 1000, 1 << 20} {
		prev := math.Inf(1)
		step := n/50 + 1
		for df := uint64(0); df <= n; df += step {
			v := IDFPlus1(n, df)
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "N=%d df=%d", n, df)
			require.GreaterOrEqual(t, v, 0.0, "N=%d df=%d", n, df)
			require.LessOrEqual(t, v, prev, "N=%d df=%d", n, df)
			prev = v
		}
	}
}

func TestIDFPlus1_DFExceedsN(t *testing.T) {
	v := IDFPlus1(10, 100)
	assert.False(t, math.IsNaN(v))
	assert.GreaterOrEqual(t, v, 0.0)
	assert.Equal(t, IDFPlus1(10, 10), v)
}

func TestIDF(t *testing.T) {
	assert.InDelta(t, math.Log(990.5/10.5), IDF(1000, 10), 1e-12)
	assert.Less(t, IDF(1000, 900), 0.0)

	v := IDF(10, 100)
	assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
}

func TestTF(t *testing.T) {
	got := TF(3, 120, 100, 1.2, 0.75)
	assert.InDelta(t, 6.6/4.38, got, 1e-12)
	assert.InDelta(t, 1.507, got, 1e-3)

	assert.Equal(t, 0.0, TF(0, 120, 100, 1.2, 0.75))
	assert.Equal(t, 0.0, TF(0, 0, 100, 0, 0))

	// b == 0 ignores document length entirely.
	assert.Equal(t, TF(3, 10, 100, 1.2, 0), TF(3, 1000, 100, 1.2, 0))

	// k1 == 0 turns TF into a binary indicator.
	assert.InDelta(t, 1.0, TF(5, 50, 100, 0, 0.75), 1e-12)
}

func TestTF_Properties(t *testing.T) {
	k1s := []float64{0, 0.5, 1.2, 2}
	bs := []float64{0, 0.25, 0.75, 1}
	lens := []float64{0, 1, 50, 100, 400}

	for _, k1 := range k1s {
		for _, b := range bs {
			for _, dl := range lens {
				prev := -1.0
				for tf := 0.0; tf <= 40; tf += 0.5 {
					v := TF(tf, dl, 100, k1, b)
					require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
					require.GreaterOrEqual(t, v, 0.0)
					// An empty document with b == 1 has no length penalty
					// at all, so TF is flat at k1+1 for every tf > 0.
					if k1 > 0 && LengthNorm(dl, 100, b) > 0 {
						require.Greater(t, v, prev, "k1=%v b=%v dl=%v tf=%v", k1, b, dl, tf)
					} else {
						require.GreaterOrEqual(t, v, prev)
					}
					require.LessOrEqual(t, v, k1+1+1e-12)
					prev = v
				}
			}
		}
	}
}

func TestTF_Saturates(t *testing.T) {
	assert.InDelta(t, 2.2, TF(1e9, 100, 100, 1.2, 0.75), 1e-6)
}

func TestTF_DecreasesWithLength(t *testing.T) {
	short := TF(3, 50, 100, 1.2, 0.75)
	long := TF(3, 200, 100, 1.2, 0.75)
	assert.Greater(t, short, long)
}

func TestTF_ZeroAverageIsNotFinite(t *testing.T) {
	v := TF(3, 0, 0, 1.2, 0.75)
	assert.True(t, math.IsNaN(v) || math.IsInf(v, 0))
}

func TestLengthNorm(t *testing.T) {
	assert.InDelta(t, 1.2, LengthRatio(120, 100), 1e-12)
	assert.InDelta(t, 0.25+0.75*1.2, LengthNorm(120, 100, 0.75), 1e-12)
	assert.Equal(t, 1.0, LengthNorm(100, 100, 0.75))
	assert.Equal(t, 1.0, LengthNorm(500, 100, 0))
}

func TestParams_Validate(t *testing.T) {
	assert.NoError(t, DefaultParams().Validate())

	for _, p := range []Params{
		{K1: -0.1, B: 0.5},
		{K1: 1.2, B: -0.1},
		{K1: 1.2, B: 1.5},
		{K1: math.NaN(), B: 0.5},
	} {
		err := p.Validate()
		require.Error(t, err, "%+v", p)
		assert.True(t, errors.Is(err, rankfns.ErrInvalidParameter))
	}
}

func TestParams_Score(t *testing.T) {
	got, err := DefaultParams().Score(3, 120, 100, 1000, 10)
	require.NoError(t, err)
	assert.InDelta(t, 6.87, got, 1e-2)

	_, err = DefaultParams().Score(3, 120, 0, 1000, 10)
	assert.True(t, errors.Is(err, rankfns.ErrDomain))

	_, err = Params{K1: 1.2, B: 2}.Score(3, 120, 100, 1000, 10)
	assert.True(t, errors.Is(err, rankfns.ErrInvalidParameter))
}
