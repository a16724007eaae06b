package proximal_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"proximal/internal/geom"
	. "proximal/internal/proximal"
)

func TestClassify(t *testing.T) {
	square := geom.R(0, 0, 10, 10)
	thin := geom.R(5, 0, 5, 10)
	for _, tc := range []struct {
		name string
		p    geom.Point
		r    geom.Rect
		want Outcode
	}{
		{"inside", geom.Pt(5, 5), square, Inside},

		{"on left edge", geom.Pt(0, 5), square, Inside},
		{"on right edge", geom.Pt(10, 5), square, Inside},
		{"on bottom edge", geom.Pt(5, 0), square, Inside},
		{"on top edge", geom.Pt(5, 10), square, Inside},

		{"bottom-left corner", geom.Pt(0, 0), square, Inside},
		{"bottom-right corner", geom.Pt(10, 0), square, Inside},
		{"top-left corner", geom.Pt(0, 10), square, Inside},
		{"top-right corner", geom.Pt(10, 10), square, Inside},

		{"left", geom.Pt(-1, 5), square, Left},
		{"right", geom.Pt(11, 5), square, Right},
		{"below", geom.Pt(5, -1), square, Bottom},
		{"above", geom.Pt(5, 11), square, Top},
		{"below left", geom.Pt(-1, -1), square, Left | Bottom},
		{"below right", geom.Pt(11, -1), square, Right | Bottom},
		{"above left", geom.Pt(-1, 11), square, Left | Top},
		{"above right", geom.Pt(11, 11), square, Right | Top},

		{"zero width, on the line", geom.Pt(5, 5), thin, Inside},
		{"zero width, just left", geom.Pt(4.999, 5), thin, Left},
		{"zero width, just right", geom.Pt(5.001, 5), thin, Right},
		{"zero width, above", geom.Pt(5, 11), thin, Top},
		{"zero width, below right", geom.Pt(6, -2), thin, Right | Bottom},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.p, tc.r))
		})
	}
}

func TestOutcode_Has(t *testing.T) {
	c := Left | Top
	assert.True(t, c.Has(Left))
	assert.True(t, c.Has(Top))
	assert.False(t, c.Has(Right))
	assert.False(t, c.Has(Bottom))
	assert.False(t, Inside.Has(Left|Right|Bottom|Top))
}

func TestOutcode_String(t *testing.T) {
	for code, want := range map[Outcode]string{
		Inside:         "INSIDE",
		Left:           "LEFT",
		Top:            "TOP",
		Left | Top:     "LEFT|TOP",
		Right | Bottom: "RIGHT|BOTTOM",
		Left | Bottom:  "LEFT|BOTTOM",
	} {
		assert.Equal(t, want, code.String())
	}
}

func TestPriority(t *testing.T) {
	assert.Equal(t, []Outcode{Left, Right, Bottom, Top}, Priority())
}

func TestClamp(t *testing.T) {
	for _, tc := range []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"below", -3, 0, 10, 0},
		{"inside", 4, 0, 10, 4},
		{"above", 12, 0, 10, 10},
		{"on lo", 0, 0, 10, 0},
		{"on hi", 10, 0, 10, 10},
		{"lo equals hi, from below", 1, 5, 5, 5},
		{"lo equals hi, from above", 7, 5, 5, 5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Clamp(tc.v, tc.lo, tc.hi))
		})
	}
}

func TestClamp_matchesMinMax(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))
	for range 1000 {
		lo := rng.Float64()*200 - 100
		hi := lo + rng.Float64()*50
		v := rng.Float64()*400 - 200
		assert.Equal(t, math.Max(lo, math.Min(v, hi)), Clamp(v, lo, hi))
	}
}

func TestClampPair(t *testing.T) {
	v0, v1 := ClampPair(-1, 11, 0, 10)
	assert.Equal(t, [2]float64{0, 10}, [2]float64{v0, v1})

	v0, v1 = ClampPair(3, 4, 0, 10)
	assert.Equal(t, [2]float64{3, 4}, [2]float64{v0, v1})

	v0, v1 = ClampPair(3, 20, 5, 5)
	assert.Equal(t, [2]float64{5, 5}, [2]float64{v0, v1})
}
