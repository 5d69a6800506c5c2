package predicate

import (
	"context"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/goalcheck/internal/ctxlog"
)

// PrintJointState logs the object's joint state through the context logger
// and always holds. It is a debugging aid for goal authors, registered under
// its own name so it is never invoked implicitly by goal evaluation.
type PrintJointState struct{}

func (PrintJointState) Call(ctx context.Context, args []cty.Value) (bool, error) {
	h, err := oneHandle("printjointstate", args)
	if err != nil {
		return false, err
	}
	ctxlog.FromContext(ctx).Info("Joint state.", "joints", h.JointState())
	return true, nil
}

func (PrintJointState) ArgTypes() []cty.Type { return unarySig() }
