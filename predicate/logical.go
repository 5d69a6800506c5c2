package predicate

import (
	"context"

	"github.com/zclconf/go-cty/cty"
)

// True always holds, regardless of arguments.
type True struct{}

func (True) Call(_ context.Context, _ []cty.Value) (bool, error) { return true, nil }

func (True) ArgTypes() []cty.Type { return nil }

// False never holds, regardless of arguments.
type False struct{}

func (False) Call(_ context.Context, _ []cty.Value) (bool, error) { return false, nil }

func (False) ArgTypes() []cty.Type { return nil }

// Not negates its single boolean argument.
type Not struct{}

func (Not) Call(_ context.Context, args []cty.Value) (bool, error) {
	if err := needArgs("not", 1, args); err != nil {
		return false, err
	}
	b, err := boolArg("not", args[0])
	if err != nil {
		return false, err
	}
	return !b, nil
}

func (Not) ArgTypes() []cty.Type { return []cty.Type{cty.Bool} }

// And holds when both boolean arguments hold. The arguments are already
// evaluated, so no short-circuiting applies.
type And struct{}

func (And) Call(_ context.Context, args []cty.Value) (bool, error) {
	p, q, err := twoBools("and", args)
	if err != nil {
		return false, err
	}
	return p && q, nil
}

func (And) ArgTypes() []cty.Type { return []cty.Type{cty.Bool, cty.Bool} }

// Or holds when either boolean argument holds.
type Or struct{}

func (Or) Call(_ context.Context, args []cty.Value) (bool, error) {
	p, q, err := twoBools("or", args)
	if err != nil {
		return false, err
	}
	return p || q, nil
}

func (Or) ArgTypes() []cty.Type { return []cty.Type{cty.Bool, cty.Bool} }

// Any holds when at least one element of a tuple of booleans holds. The
// argument must be a tuple; anything else is rejected rather than coerced.
type Any struct{}

func (Any) Call(_ context.Context, args []cty.Value) (bool, error) {
	if err := needArgs("any", 1, args); err != nil {
		return false, err
	}
	elems, err := boolTupleArg("any", args[0])
	if err != nil {
		return false, err
	}
	for _, b := range elems {
		if b {
			return true, nil
		}
	}
	return false, nil
}

func (Any) ArgTypes() []cty.Type { return []cty.Type{cty.DynamicPseudoType} }

// All holds when every element of a tuple of booleans holds, including the
// empty tuple. The same tuple guard as Any applies.
type All struct{}

func (All) Call(_ context.Context, args []cty.Value) (bool, error) {
	if err := needArgs("all", 1, args); err != nil {
		return false, err
	}
	elems, err := boolTupleArg("all", args[0])
	if err != nil {
		return false, err
	}
	for _, b := range elems {
		if !b {
			return false, nil
		}
	}
	return true, nil
}

func (All) ArgTypes() []cty.Type { return []cty.Type{cty.DynamicPseudoType} }

func twoBools(name string, args []cty.Value) (bool, bool, error) {
	if err := needArgs(name, 2, args); err != nil {
		return false, false, err
	}
	p, err := boolArg(name, args[0])
	if err != nil {
		return false, false, err
	}
	q, err := boolArg(name, args[1])
	if err != nil {
		return false, false, err
	}
	return p, q, nil
}
