package predicate

import (
	"context"
	"math"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/goalcheck/objstate"
)

// InContact holds when the simulation reports mutual contact between the two
// objects.
type InContact struct{}

func (InContact) Call(_ context.Context, args []cty.Value) (bool, error) {
	a, b, err := twoHandles("incontact", args)
	if err != nil {
		return false, err
	}
	return a.CheckContact(b), nil
}

func (InContact) ArgTypes() []cty.Type { return binarySig() }

// In holds when the second object both contains and touches the first.
// Containment alone is not enough.
type In struct{}

func (In) Call(_ context.Context, args []cty.Value) (bool, error) {
	a, b, err := twoHandles("in", args)
	if err != nil {
		return false, err
	}
	return b.CheckContact(a) && b.CheckContain(a), nil
}

func (In) ArgTypes() []cty.Type { return binarySig() }

// On holds when the first object rests on top of the second under the
// simulation's default center-alignment tolerance.
type On struct{}

func (On) Call(_ context.Context, args []cty.Value) (bool, error) {
	a, b, err := twoHandles("on", args)
	if err != nil {
		return false, err
	}
	return b.CheckOnTop(a, objstate.DefaultOnTopTolerance), nil
}

func (On) ArgTypes() []cty.Type { return binarySig() }

// RelaxedOn is On with the horizontal alignment requirement disabled.
type RelaxedOn struct{}

func (RelaxedOn) Call(_ context.Context, args []cty.Value) (bool, error) {
	a, b, err := twoHandles("relaxedon", args)
	if err != nil {
		return false, err
	}
	return b.CheckOnTop(a, math.Inf(1)), nil
}

func (RelaxedOn) ArgTypes() []cty.Type { return binarySig() }
