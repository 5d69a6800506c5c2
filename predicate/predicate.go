// Package predicate implements the library of goal predicates for simulated
// manipulation scenes.
//
// Each predicate is an independent, stateless boolean operation over one or
// more object-state handles and occasional literal parameters. Arguments
// travel as cty values: objstate.Type capsules for handles, cty.Bool,
// cty.Number and cty.String for literals, and cty tuples of bool for the
// sequence connectives. Every predicate declares its signature through
// ArgTypes so a goal-expression validator can type-check a goal tree before
// the simulation runs.
package predicate

import (
	"context"
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/goalcheck/objstate"
)

// Predicate is a named boolean operation over object-state handles and
// literal parameters. Implementations are pure: the same inputs always yield
// the same result (PrintJointState additionally logs, TurnOn and TurnOff
// mutate the simulated powered state).
type Predicate interface {
	// Call evaluates the predicate against an ordered list of typed
	// arguments. Arity is checked by each predicate itself; argument types
	// are checked as the arguments are unwrapped.
	Call(ctx context.Context, args []cty.Value) (bool, error)

	// ArgTypes returns the expected argument signature, queryable without
	// invocation. A cty.DynamicPseudoType slot accepts any value; its shape
	// is checked at call time instead.
	ArgTypes() []cty.Type
}

var (
	// ErrArgType reports an argument of the wrong kind or shape, including
	// arity mismatches. It signals a malformed goal expression upstream.
	ErrArgType = errors.New("bad argument type")

	// ErrArgValue reports an argument outside its accepted domain, such as
	// an unknown axis letter or out-of-order degree bounds.
	ErrArgValue = errors.New("bad argument value")
)

func needArgs(name string, want int, args []cty.Value) error {
	if len(args) != want {
		return fmt.Errorf("%s: %w: expected %d arguments, got %d", name, ErrArgType, want, len(args))
	}
	return nil
}

func handleArg(name string, v cty.Value) (objstate.Handle, error) {
	h, err := objstate.FromVal(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", name, ErrArgType, err)
	}
	return h, nil
}

func boolArg(name string, v cty.Value) (bool, error) {
	if !v.Type().Equals(cty.Bool) {
		return false, fmt.Errorf("%s: %w: expected bool, got %s", name, ErrArgType, v.Type().FriendlyName())
	}
	return v.True(), nil
}

func floatArg(name string, v cty.Value) (float64, error) {
	if !v.Type().Equals(cty.Number) {
		return 0, fmt.Errorf("%s: %w: expected number, got %s", name, ErrArgType, v.Type().FriendlyName())
	}
	f, _ := v.AsBigFloat().Float64()
	return f, nil
}

func stringArg(name string, v cty.Value) (string, error) {
	if !v.Type().Equals(cty.String) {
		return "", fmt.Errorf("%s: %w: expected string, got %s", name, ErrArgType, v.Type().FriendlyName())
	}
	return v.AsString(), nil
}

var axisIndex = map[string]int{"x": 0, "y": 1, "z": 2}

func axisArg(name string, v cty.Value) (int, error) {
	s, err := stringArg(name, v)
	if err != nil {
		return 0, err
	}
	idx, ok := axisIndex[s]
	if !ok {
		return 0, fmt.Errorf("%s: %w: axis must be one of \"x\", \"y\" or \"z\", got %q", name, ErrArgValue, s)
	}
	return idx, nil
}

func boolTupleArg(name string, v cty.Value) ([]bool, error) {
	if !v.Type().IsTupleType() {
		return nil, fmt.Errorf("%s: %w: expected a tuple of booleans, got %s", name, ErrArgType, v.Type().FriendlyName())
	}
	out := make([]bool, 0, v.LengthInt())
	for _, ev := range v.AsValueSlice() {
		if !ev.Type().Equals(cty.Bool) {
			return nil, fmt.Errorf("%s: %w: tuple element is %s, want bool", name, ErrArgType, ev.Type().FriendlyName())
		}
		out = append(out, ev.True())
	}
	return out, nil
}

func twoHandles(name string, args []cty.Value) (objstate.Handle, objstate.Handle, error) {
	if err := needArgs(name, 2, args); err != nil {
		return nil, nil, err
	}
	a, err := handleArg(name, args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := handleArg(name, args[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func oneHandle(name string, args []cty.Value) (objstate.Handle, error) {
	if err := needArgs(name, 1, args); err != nil {
		return nil, err
	}
	return handleArg(name, args[0])
}

func binarySig() []cty.Type {
	return []cty.Type{objstate.Type, objstate.Type}
}

func unarySig() []cty.Type {
	return []cty.Type{objstate.Type}
}
