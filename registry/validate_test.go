package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/goalcheck/internal/testutil"
	"github.com/vk/goalcheck/objstate"
	"github.com/vk/goalcheck/registry"
)

func TestValidateCall(t *testing.T) {
	r := registry.New()
	obj := objstate.Val(&testutil.FakeObject{})

	require.NoError(t, r.ValidateCall("on", []cty.Value{obj, obj}))
	require.NoError(t, r.ValidateCall("inair", []cty.Value{obj, cty.NumberFloatVal(0.5)}))
	require.NoError(t, r.ValidateCall("posigreaterthan", []cty.Value{obj, cty.StringVal("x"), cty.Zero}))

	err := r.ValidateCall("on", []cty.Value{obj})
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected 2 arguments")

	err = r.ValidateCall("on", []cty.Value{obj, cty.NumberIntVal(1)})
	require.Error(t, err)
	require.Contains(t, err.Error(), "argument 1")

	err = r.ValidateCall("nonexistent", nil)
	require.ErrorIs(t, err, registry.ErrUnknownPredicate)
}

func TestValidateCallDynamicSlots(t *testing.T) {
	r := registry.New()

	// Any/All declare a dynamic slot; validation defers the tuple shape
	// check to call time, so both of these pass validation.
	require.NoError(t, r.ValidateCall("any", []cty.Value{cty.TupleVal([]cty.Value{cty.True})}))
	require.NoError(t, r.ValidateCall("all", []cty.Value{cty.True}))
}

func TestValidateCallZeroArity(t *testing.T) {
	r := registry.New()

	require.NoError(t, r.ValidateCall("true", nil))
	err := r.ValidateCall("true", []cty.Value{cty.True})
	require.Error(t, err)
}
