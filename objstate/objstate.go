// Package objstate defines the capability contract between the predicate
// library and the external physics simulation.
//
// The library never constructs or owns object state; it only receives
// Handle values and queries them. Any simulation layer that can answer the
// queries below can drive goal evaluation, which also keeps every predicate
// testable against lightweight fakes.
package objstate

import (
	"fmt"
	"reflect"

	"github.com/zclconf/go-cty/cty"
)

// GeomState is a snapshot of an object's pose in the world frame.
type GeomState struct {
	// Pos is the world-frame position (x, y, z).
	Pos [3]float64
	// Quat is the orientation quaternion in scalar-first order (w, x, y, z).
	Quat [4]float64
}

// DefaultOnTopTolerance selects the simulation's own center-alignment
// threshold (typically a few centimeters) when passed to CheckOnTop. Any
// negative tolerance means "use the default".
const DefaultOnTopTolerance = -1.0

// Handle is an opaque reference to one simulated object. All spatial
// quantities are in the world frame.
type Handle interface {
	// GeomState returns the current pose of the object's root geom.
	GeomState() GeomState

	// BodyPos returns the object's position from the simulation body table.
	// This is a distinct lookup path from GeomState and the two are not
	// guaranteed to agree for multi-geom bodies.
	BodyPos() [3]float64

	// JointState returns the raw joint positions of an articulated object.
	JointState() []float64

	// CheckContact reports whether the simulation sees mutual contact
	// between the two objects.
	CheckContact(other Handle) bool

	// CheckContain reports whether the receiver contains other.
	CheckContain(other Handle) bool

	// CheckOnTop reports whether other rests on top of the receiver, with
	// tolerance bounding the horizontal offset between the two centers.
	CheckOnTop(other Handle, tolerance float64) bool

	// IsOpen and IsClose report the binary state of an articulated object.
	IsOpen() bool
	IsClose() bool

	// OpenRatio reports how open an articulated object is, in [0, 1].
	OpenRatio() float64

	// TurnOn and TurnOff switch the object's powered state and report
	// whether the switch took effect.
	TurnOn() bool
	TurnOff() bool
}

// Type is the cty capsule type that carries handles through the registry's
// typed argument channel alongside literal values.
var Type = cty.Capsule("object_state", reflect.TypeOf((*Handle)(nil)).Elem())

// Val wraps a handle in a cty value of Type.
func Val(h Handle) cty.Value {
	return cty.CapsuleVal(Type, &h)
}

// FromVal unwraps a handle previously wrapped with Val.
func FromVal(v cty.Value) (Handle, error) {
	if !v.Type().Equals(Type) {
		return nil, fmt.Errorf("expected an object state handle, got %s", v.Type().FriendlyName())
	}
	return *(v.EncapsulatedValue().(*Handle)), nil
}
