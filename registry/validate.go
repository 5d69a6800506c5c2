package registry

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// ValidateCall performs a strict pre-flight check of a call against the
// predicate's declared signature: argument count first, then per-slot cty
// type equality. Evaluate never runs this; goal-expression validators run it
// over a whole goal tree before the simulation starts.
func (r *Registry) ValidateCall(name string, args []cty.Value) error {
	p, err := r.Get(name)
	if err != nil {
		return err
	}
	key := strings.ToLower(name)

	want := p.ArgTypes()
	if len(args) != len(want) {
		return fmt.Errorf("predicate %q: expected %d arguments, got %d", key, len(want), len(args))
	}

	var errs []string
	for i, wt := range want {
		if wt.Equals(cty.DynamicPseudoType) {
			// Shape is checked at call time (the Any/All tuple guard).
			continue
		}
		got := args[i].Type()
		if !got.Equals(wt) {
			errs = append(errs, fmt.Sprintf("argument %d: expected %s, got %s", i, wt.FriendlyName(), got.FriendlyName()))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("predicate %q: signature mismatch:\n- %s", key, strings.Join(errs, "\n- "))
	}
	return nil
}
