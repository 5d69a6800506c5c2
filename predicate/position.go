package predicate

import (
	"context"
	"math"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/goalcheck/objstate"
)

// PositionWithin holds when the object's position lies inside independent
// per-axis bands around a target point: |pos - target| <= tol on every axis.
// These are box bounds, not a Euclidean radius.
type PositionWithin struct{}

func (PositionWithin) Call(_ context.Context, args []cty.Value) (bool, error) {
	if err := needArgs("positionwithin", 7, args); err != nil {
		return false, err
	}
	h, err := handleArg("positionwithin", args[0])
	if err != nil {
		return false, err
	}
	var target, tol [3]float64
	for i := 0; i < 3; i++ {
		if target[i], err = floatArg("positionwithin", args[1+i]); err != nil {
			return false, err
		}
		if tol[i], err = floatArg("positionwithin", args[4+i]); err != nil {
			return false, err
		}
	}
	pos := h.GeomState().Pos
	for i := 0; i < 3; i++ {
		if math.Abs(pos[i]-target[i]) > tol[i] {
			return false, nil
		}
	}
	return true, nil
}

func (PositionWithin) ArgTypes() []cty.Type {
	return []cty.Type{objstate.Type, cty.Number, cty.Number, cty.Number, cty.Number, cty.Number, cty.Number}
}

// Under holds when the first object's center is at or below the second's.
// Note the boundary: equal heights count as under.
type Under struct{}

func (Under) Call(_ context.Context, args []cty.Value) (bool, error) {
	a, b, err := twoHandles("under", args)
	if err != nil {
		return false, err
	}
	return a.GeomState().Pos[2] <= b.GeomState().Pos[2], nil
}

func (Under) ArgTypes() []cty.Type { return binarySig() }

// Above holds when the first object sits strictly higher than the second
// with their centers lined up horizontally within 2 cm.
type Above struct{}

func (Above) Call(_ context.Context, args []cty.Value) (bool, error) {
	a, b, err := twoHandles("above", args)
	if err != nil {
		return false, err
	}
	pa := a.GeomState().Pos
	pb := b.GeomState().Pos
	const xyTol = 0.02
	return math.Abs(pa[0]-pb[0]) < xyTol &&
		math.Abs(pa[1]-pb[1]) < xyTol &&
		pa[2] > pb[2], nil
}

func (Above) ArgTypes() []cty.Type { return binarySig() }

// Up holds when the object has been lifted to at least 1 m world height.
type Up struct{}

func (Up) Call(_ context.Context, args []cty.Value) (bool, error) {
	h, err := oneHandle("up", args)
	if err != nil {
		return false, err
	}
	return h.GeomState().Pos[2] >= 1.0, nil
}

func (Up) ArgTypes() []cty.Type { return unarySig() }

// InAir holds when the object's center is strictly above the given height.
type InAir struct{}

func (InAir) Call(_ context.Context, args []cty.Value) (bool, error) {
	if err := needArgs("inair", 2, args); err != nil {
		return false, err
	}
	h, err := handleArg("inair", args[0])
	if err != nil {
		return false, err
	}
	height, err := floatArg("inair", args[1])
	if err != nil {
		return false, err
	}
	return h.GeomState().Pos[2] > height, nil
}

func (InAir) ArgTypes() []cty.Type { return []cty.Type{objstate.Type, cty.Number} }

// PosiGreaterThan holds when the object's coordinate on the named axis
// strictly exceeds the given value.
type PosiGreaterThan struct{}

func (PosiGreaterThan) Call(_ context.Context, args []cty.Value) (bool, error) {
	if err := needArgs("posigreaterthan", 3, args); err != nil {
		return false, err
	}
	h, err := handleArg("posigreaterthan", args[0])
	if err != nil {
		return false, err
	}
	idx, err := axisArg("posigreaterthan", args[1])
	if err != nil {
		return false, err
	}
	value, err := floatArg("posigreaterthan", args[2])
	if err != nil {
		return false, err
	}
	return h.GeomState().Pos[idx] > value, nil
}

func (PosiGreaterThan) ArgTypes() []cty.Type {
	return []cty.Type{objstate.Type, cty.String, cty.Number}
}

// MidBetween holds when the middle object lies strictly between the two
// outer objects on the named axis, in either order, and is in contact with
// both of them.
type MidBetween struct{}

func (MidBetween) Call(_ context.Context, args []cty.Value) (bool, error) {
	if err := needArgs("between", 4, args); err != nil {
		return false, err
	}
	left, err := handleArg("between", args[0])
	if err != nil {
		return false, err
	}
	mid, err := handleArg("between", args[1])
	if err != nil {
		return false, err
	}
	right, err := handleArg("between", args[2])
	if err != nil {
		return false, err
	}
	idx, err := axisArg("between", args[3])
	if err != nil {
		return false, err
	}
	l := left.GeomState().Pos[idx]
	m := mid.GeomState().Pos[idx]
	r := right.GeomState().Pos[idx]
	between := (l < m && m < r) || (r < m && m < l)
	return between && left.CheckContact(mid) && mid.CheckContact(right), nil
}

func (MidBetween) ArgTypes() []cty.Type {
	return []cty.Type{objstate.Type, objstate.Type, objstate.Type, cty.String}
}
