package predicate

import (
	"context"
	"math"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/goalcheck/objstate"
)

// Stack holds when the first object is physically stacked on the second: the
// two are in contact, the second contains the first, and the first sits
// strictly higher.
type Stack struct{}

func (Stack) Call(_ context.Context, args []cty.Value) (bool, error) {
	a, b, err := twoHandles("stack", args)
	if err != nil {
		return false, err
	}
	return a.CheckContact(b) &&
		b.CheckContain(a) &&
		a.GeomState().Pos[2] > b.GeomState().Pos[2], nil
}

func (Stack) ArgTypes() []cty.Type { return binarySig() }

// StackBowl holds when two nesting objects are stacked: in contact,
// horizontally aligned within 2 cm, and vertically separated by a gap
// strictly between 1 mm and 0.5 m. It does not determine which object is on
// top.
type StackBowl struct{}

func (StackBowl) Call(_ context.Context, args []cty.Value) (bool, error) {
	a, b, err := twoHandles("stackbowl", args)
	if err != nil {
		return false, err
	}
	pa := a.GeomState().Pos
	pb := b.GeomState().Pos

	const (
		xyTol   = 0.02
		zMinGap = 0.001
		zMaxGap = 0.5
	)
	aligned := math.Abs(pa[0]-pb[0]) < xyTol && math.Abs(pa[1]-pb[1]) < xyTol
	gap := math.Abs(pa[2] - pb[2])

	return a.CheckContact(b) && aligned && zMinGap < gap && gap < zMaxGap, nil
}

func (StackBowl) ArgTypes() []cty.Type { return binarySig() }

// OnCentre holds when the first object sits on top of the second with their
// centers within 5 mm horizontally. Positions are read from the simulation
// body table (BodyPos) rather than the geom state snapshot, which is a
// different lookup path from the other stacking predicates.
type OnCentre struct{}

func (OnCentre) Call(_ context.Context, args []cty.Value) (bool, error) {
	a, b, err := twoHandles("oncentre", args)
	if err != nil {
		return false, err
	}
	this := b.BodyPos()
	other := a.BodyPos()
	return this[2] <= other[2] &&
		b.CheckContact(a) &&
		math.Hypot(this[0]-other[0], this[1]-other[1]) < 0.005, nil
}

func (OnCentre) ArgTypes() []cty.Type { return binarySig() }

// StairCase holds when three drawers are progressively more open: the first
// past a 0.1 minimum, each strictly more open than the previous.
type StairCase struct{}

func (StairCase) Call(_ context.Context, args []cty.Value) (bool, error) {
	if err := needArgs("staircase", 3, args); err != nil {
		return false, err
	}
	d1, err := handleArg("staircase", args[0])
	if err != nil {
		return false, err
	}
	d2, err := handleArg("staircase", args[1])
	if err != nil {
		return false, err
	}
	d3, err := handleArg("staircase", args[2])
	if err != nil {
		return false, err
	}
	r1, r2, r3 := d1.OpenRatio(), d2.OpenRatio(), d3.OpenRatio()
	return r1 > 0.1 && r1 < r2 && r2 < r3, nil
}

func (StairCase) ArgTypes() []cty.Type {
	return []cty.Type{objstate.Type, objstate.Type, objstate.Type}
}
