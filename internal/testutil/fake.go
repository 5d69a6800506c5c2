// Package testutil provides test doubles for the simulation-facing
// interfaces.
package testutil

import (
	"math"

	"github.com/vk/goalcheck/objstate"
)

// FakeObject is a scriptable objstate.Handle. The zero value is an object at
// the origin with identity orientation, no contacts, closed, unpowered.
type FakeObject struct {
	Pos  [3]float64
	Quat [4]float64 // scalar-first; the zero value reads as identity

	// Body overrides the body-table position returned by BodyPos. When nil,
	// BodyPos falls back to Pos.
	Body *[3]float64

	Joints  []float64
	Open    bool
	Ratio   float64
	Powered bool

	Contacts []*FakeObject
	Contains []*FakeObject

	// OnTopFn overrides CheckOnTop entirely when set.
	OnTopFn func(other objstate.Handle, tolerance float64) bool
}

// Touch records mutual contact between two fakes.
func Touch(a, b *FakeObject) {
	a.Contacts = append(a.Contacts, b)
	b.Contacts = append(b.Contacts, a)
}

// Contain records that outer contains inner.
func Contain(outer, inner *FakeObject) {
	outer.Contains = append(outer.Contains, inner)
}

func (f *FakeObject) GeomState() objstate.GeomState {
	q := f.Quat
	if q == ([4]float64{}) {
		q = [4]float64{1, 0, 0, 0}
	}
	return objstate.GeomState{Pos: f.Pos, Quat: q}
}

func (f *FakeObject) BodyPos() [3]float64 {
	if f.Body != nil {
		return *f.Body
	}
	return f.Pos
}

func (f *FakeObject) JointState() []float64 { return f.Joints }

func (f *FakeObject) CheckContact(other objstate.Handle) bool {
	for _, o := range f.Contacts {
		if objstate.Handle(o) == other {
			return true
		}
	}
	return false
}

func (f *FakeObject) CheckContain(other objstate.Handle) bool {
	for _, o := range f.Contains {
		if objstate.Handle(o) == other {
			return true
		}
	}
	return false
}

// CheckOnTop mirrors a typical simulation on-top test: the other object must
// be at or above the receiver, in contact with it, and horizontally aligned
// within the tolerance. A negative tolerance selects the 3 cm default.
func (f *FakeObject) CheckOnTop(other objstate.Handle, tolerance float64) bool {
	if f.OnTopFn != nil {
		return f.OnTopFn(other, tolerance)
	}
	if tolerance < 0 {
		tolerance = 0.03
	}
	op := other.GeomState().Pos
	if f.Pos[2] > op[2] {
		return false
	}
	if !f.CheckContact(other) {
		return false
	}
	return math.Hypot(f.Pos[0]-op[0], f.Pos[1]-op[1]) <= tolerance
}

func (f *FakeObject) IsOpen() bool  { return f.Open }
func (f *FakeObject) IsClose() bool { return !f.Open }

func (f *FakeObject) OpenRatio() float64 { return f.Ratio }

func (f *FakeObject) TurnOn() bool {
	f.Powered = true
	return true
}

func (f *FakeObject) TurnOff() bool {
	f.Powered = false
	return true
}
