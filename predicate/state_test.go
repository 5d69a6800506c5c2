package predicate_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/goalcheck/internal/ctxlog"
	"github.com/vk/goalcheck/internal/testutil"
	"github.com/vk/goalcheck/objstate"
	"github.com/vk/goalcheck/predicate"
)

func TestOpenClose(t *testing.T) {
	ctx := context.Background()

	drawer := &testutil.FakeObject{Open: true}
	got, err := predicate.Open{}.Call(ctx, handles(drawer))
	require.NoError(t, err)
	require.True(t, got)

	got, err = predicate.Close{}.Call(ctx, handles(drawer))
	require.NoError(t, err)
	require.False(t, got)

	drawer.Open = false
	got, err = predicate.Close{}.Call(ctx, handles(drawer))
	require.NoError(t, err)
	require.True(t, got)
}

func TestOpenRatioToleranceBand(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		ratio  float64
		target float64
		want   bool
	}{
		{0.69, 0.5, true},
		{0.71, 0.5, false},
		{0.5, 0.5, true},
		{0.31, 0.5, true},
	}
	for _, tc := range cases {
		drawer := &testutil.FakeObject{Ratio: tc.ratio}
		got, err := predicate.OpenRatio{}.Call(ctx, []cty.Value{
			objstate.Val(drawer), cty.NumberFloatVal(tc.target),
		})
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "ratio %v target %v", tc.ratio, tc.target)
	}
}

func TestTurnOnTurnOff(t *testing.T) {
	ctx := context.Background()
	stove := &testutil.FakeObject{}

	got, err := predicate.TurnOn{}.Call(ctx, handles(stove))
	require.NoError(t, err)
	require.True(t, got)
	require.True(t, stove.Powered)

	got, err = predicate.TurnOff{}.Call(ctx, handles(stove))
	require.NoError(t, err)
	require.True(t, got)
	require.False(t, stove.Powered)
}

func TestPrintJointStateLogsAndHolds(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	drawer := &testutil.FakeObject{Joints: []float64{0.12, -0.3}}
	got, err := predicate.PrintJointState{}.Call(ctx, handles(drawer))
	require.NoError(t, err)
	require.True(t, got)
	require.Contains(t, buf.String(), "joints")
}
