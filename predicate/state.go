package predicate

import (
	"context"
	"math"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/goalcheck/objstate"
)

// Open holds when the articulated object reports itself open.
type Open struct{}

func (Open) Call(_ context.Context, args []cty.Value) (bool, error) {
	h, err := oneHandle("open", args)
	if err != nil {
		return false, err
	}
	return h.IsOpen(), nil
}

func (Open) ArgTypes() []cty.Type { return unarySig() }

// Close holds when the articulated object reports itself closed.
type Close struct{}

func (Close) Call(_ context.Context, args []cty.Value) (bool, error) {
	h, err := oneHandle("close", args)
	if err != nil {
		return false, err
	}
	return h.IsClose(), nil
}

func (Close) ArgTypes() []cty.Type { return unarySig() }

// OpenRatio holds when the object's open ratio is within 0.2 of the target
// ratio. The band is exclusive at exactly 0.2 difference.
type OpenRatio struct{}

func (OpenRatio) Call(_ context.Context, args []cty.Value) (bool, error) {
	if err := needArgs("openratio", 2, args); err != nil {
		return false, err
	}
	h, err := handleArg("openratio", args[0])
	if err != nil {
		return false, err
	}
	target, err := floatArg("openratio", args[1])
	if err != nil {
		return false, err
	}
	const tol = 0.2
	return math.Abs(h.OpenRatio()-target) < tol, nil
}

func (OpenRatio) ArgTypes() []cty.Type { return []cty.Type{objstate.Type, cty.Number} }

// TurnOn switches the object's powered state on and reports whether the
// switch took effect. Unlike the rest of the library it mutates simulated
// state.
type TurnOn struct{}

func (TurnOn) Call(_ context.Context, args []cty.Value) (bool, error) {
	h, err := oneHandle("turnon", args)
	if err != nil {
		return false, err
	}
	return h.TurnOn(), nil
}

func (TurnOn) ArgTypes() []cty.Type { return unarySig() }

// TurnOff switches the object's powered state off and reports whether the
// switch took effect.
type TurnOff struct{}

func (TurnOff) Call(_ context.Context, args []cty.Value) (bool, error) {
	h, err := oneHandle("turnoff", args)
	if err != nil {
		return false, err
	}
	return h.TurnOff(), nil
}

func (TurnOff) ArgTypes() []cty.Type { return unarySig() }
