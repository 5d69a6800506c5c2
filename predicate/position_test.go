package predicate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/goalcheck/internal/testutil"
	"github.com/vk/goalcheck/objstate"
	"github.com/vk/goalcheck/predicate"
)

func num(f float64) cty.Value { return cty.NumberFloatVal(f) }

func TestPositionWithin(t *testing.T) {
	ctx := context.Background()
	obj := &testutil.FakeObject{Pos: [3]float64{0.5, -0.2, 0.8}}

	call := func(x, y, z, tx, ty, tz float64) bool {
		t.Helper()
		got, err := predicate.PositionWithin{}.Call(ctx, []cty.Value{
			objstate.Val(obj), num(x), num(y), num(z), num(tx), num(ty), num(tz),
		})
		require.NoError(t, err)
		return got
	}

	require.True(t, call(0.5, -0.2, 0.8, 0.01, 0.01, 0.01))
	// Per-axis bands are inclusive.
	require.True(t, call(0.25, -0.2, 0.8, 0.25, 0.01, 0.01))
	// One axis out of band fails regardless of the others.
	require.False(t, call(0.5, -0.2, 0.7, 0.01, 0.01, 0.05))
	require.False(t, call(0.4, -0.2, 0.8, 0.05, 0.01, 0.01))
}

func TestAboveUnderBoundary(t *testing.T) {
	ctx := context.Background()

	// Equal heights: Under holds (non-strict), Above does not (strict).
	a := &testutil.FakeObject{Pos: [3]float64{0, 0, 0.5}}
	b := &testutil.FakeObject{Pos: [3]float64{0, 0, 0.5}}

	got, err := predicate.Under{}.Call(ctx, handles(a, b))
	require.NoError(t, err)
	require.True(t, got)

	got, err = predicate.Above{}.Call(ctx, handles(a, b))
	require.NoError(t, err)
	require.False(t, got)

	a.Pos[2] = 0.6
	got, err = predicate.Above{}.Call(ctx, handles(a, b))
	require.NoError(t, err)
	require.True(t, got)

	got, err = predicate.Under{}.Call(ctx, handles(a, b))
	require.NoError(t, err)
	require.False(t, got)

	// Above also needs horizontal alignment within 2 cm.
	a.Pos[0] = 0.03
	got, err = predicate.Above{}.Call(ctx, handles(a, b))
	require.NoError(t, err)
	require.False(t, got)
}

func TestUpAndInAir(t *testing.T) {
	ctx := context.Background()
	obj := &testutil.FakeObject{Pos: [3]float64{0, 0, 1.0}}

	// Up is non-strict at the 1 m threshold.
	got, err := predicate.Up{}.Call(ctx, handles(obj))
	require.NoError(t, err)
	require.True(t, got)

	obj.Pos[2] = 0.99
	got, err = predicate.Up{}.Call(ctx, handles(obj))
	require.NoError(t, err)
	require.False(t, got)

	// InAir is strict at its threshold.
	got, err = predicate.InAir{}.Call(ctx, []cty.Value{objstate.Val(obj), num(0.99)})
	require.NoError(t, err)
	require.False(t, got)

	got, err = predicate.InAir{}.Call(ctx, []cty.Value{objstate.Val(obj), num(0.5)})
	require.NoError(t, err)
	require.True(t, got)
}

func TestPosiGreaterThan(t *testing.T) {
	ctx := context.Background()
	obj := &testutil.FakeObject{Pos: [3]float64{0.3, -0.1, 0.7}}

	cases := []struct {
		axis  string
		value float64
		want  bool
	}{
		{"x", 0.2, true},
		{"x", 0.3, false},
		{"y", -0.5, true},
		{"z", 0.7, false},
	}
	for _, tc := range cases {
		got, err := predicate.PosiGreaterThan{}.Call(ctx, []cty.Value{
			objstate.Val(obj), cty.StringVal(tc.axis), num(tc.value),
		})
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "axis %q > %v", tc.axis, tc.value)
	}

	_, err := predicate.PosiGreaterThan{}.Call(ctx, []cty.Value{
		objstate.Val(obj), cty.StringVal("w"), num(0),
	})
	require.ErrorIs(t, err, predicate.ErrArgValue)
}

func TestMidBetween(t *testing.T) {
	ctx := context.Background()

	left := &testutil.FakeObject{Pos: [3]float64{0.0, 0, 0}}
	mid := &testutil.FakeObject{Pos: [3]float64{0.1, 0, 0}}
	right := &testutil.FakeObject{Pos: [3]float64{0.2, 0, 0}}
	testutil.Touch(left, mid)
	testutil.Touch(mid, right)

	args := func(l, m, r *testutil.FakeObject) []cty.Value {
		return []cty.Value{objstate.Val(l), objstate.Val(m), objstate.Val(r), cty.StringVal("x")}
	}

	got, err := predicate.MidBetween{}.Call(ctx, args(left, mid, right))
	require.NoError(t, err)
	require.True(t, got)

	// Either order of the outer objects is accepted.
	got, err = predicate.MidBetween{}.Call(ctx, args(right, mid, left))
	require.NoError(t, err)
	require.True(t, got)

	// The middle object out of the interval fails.
	got, err = predicate.MidBetween{}.Call(ctx, args(mid, left, right))
	require.NoError(t, err)
	require.False(t, got)

	// Betweenness without contact fails.
	loose := &testutil.FakeObject{Pos: [3]float64{0.1, 0.5, 0}}
	got, err = predicate.MidBetween{}.Call(ctx, []cty.Value{
		objstate.Val(left), objstate.Val(loose), objstate.Val(right), cty.StringVal("x"),
	})
	require.NoError(t, err)
	require.False(t, got)

	_, err = predicate.MidBetween{}.Call(ctx, []cty.Value{
		objstate.Val(left), objstate.Val(mid), objstate.Val(right), cty.StringVal("q"),
	})
	require.ErrorIs(t, err, predicate.ErrArgValue)
}
