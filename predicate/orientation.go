package predicate

import (
	"context"
	"fmt"
	"math"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/goalcheck/objstate"
)

// axisWorldZ returns the world-frame Z component of the object's body axis
// selected by idx (0 = x, 1 = y, 2 = z), i.e. the bottom row of the rotation
// matrix derived from the scalar-first quaternion. The quaternion is
// normalized first; a degenerate quaternion yields the identity rotation.
func axisWorldZ(q [4]float64, idx int) float64 {
	w, x, y, z := q[0], q[1], q[2], q[3]
	n := w*w + x*x + y*y + z*z
	if n < 1e-12 {
		if idx == 2 {
			return 1
		}
		return 0
	}
	s := 1 / math.Sqrt(n)
	w, x, y, z = w*s, x*s, y*s, z*s
	switch idx {
	case 0:
		return 2 * (x*z - y*w)
	case 1:
		return 2 * (y*z + x*w)
	default:
		return 1 - 2*(x*x+y*y)
	}
}

// UpsideDown holds when the object's local +Z axis points within about 18°
// of straight down.
type UpsideDown struct{}

func (UpsideDown) Call(_ context.Context, args []cty.Value) (bool, error) {
	h, err := oneHandle("upsidedown", args)
	if err != nil {
		return false, err
	}
	return axisWorldZ(h.GeomState().Quat, 2) < -0.95, nil
}

func (UpsideDown) ArgTypes() []cty.Type { return unarySig() }

// Upright holds when the object's local +Z axis points within about 26° of
// straight up.
type Upright struct{}

func (Upright) Call(_ context.Context, args []cty.Value) (bool, error) {
	h, err := oneHandle("upright", args)
	if err != nil {
		return false, err
	}
	return axisWorldZ(h.GeomState().Quat, 2) >= 0.9, nil
}

func (Upright) ArgTypes() []cty.Type { return unarySig() }

// AxisAlignedWithin holds when the angle between the named body axis and
// world +Z lies in [minDeg, maxDeg]. Cosine decreases on [0°, 180°], so the
// band check compares against the swapped cosine bounds.
type AxisAlignedWithin struct{}

func (AxisAlignedWithin) Call(_ context.Context, args []cty.Value) (bool, error) {
	if len(args) != 4 {
		return false, fmt.Errorf("axisalignedwithin: %w: expected 4 arguments (object, axis, min_degree, max_degree), got %d",
			ErrArgValue, len(args))
	}
	h, err := handleArg("axisalignedwithin", args[0])
	if err != nil {
		return false, err
	}
	idx, err := axisArg("axisalignedwithin", args[1])
	if err != nil {
		return false, err
	}
	minDeg, err := floatArg("axisalignedwithin", args[2])
	if err != nil {
		return false, err
	}
	maxDeg, err := floatArg("axisalignedwithin", args[3])
	if err != nil {
		return false, err
	}
	if !(0 <= minDeg && minDeg <= maxDeg && maxDeg <= 180) {
		return false, fmt.Errorf("axisalignedwithin: %w: degrees must satisfy 0 <= min_deg <= max_deg <= 180, got [%v, %v]",
			ErrArgValue, minDeg, maxDeg)
	}
	cosMin := math.Cos(minDeg * math.Pi / 180)
	cosMax := math.Cos(maxDeg * math.Pi / 180)
	c := axisWorldZ(h.GeomState().Quat, idx)
	return cosMax <= c && c <= cosMin, nil
}

func (AxisAlignedWithin) ArgTypes() []cty.Type {
	return []cty.Type{objstate.Type, cty.String, cty.Number, cty.Number}
}
