package registry

import "github.com/vk/goalcheck/predicate"

// constructors is the closed set of predicate types RegisterAlias can
// instantiate. Extending the registry means adding a constructor here, not
// evaluating a type name at runtime.
var constructors = map[string]func() predicate.Predicate{
	"True":              func() predicate.Predicate { return predicate.True{} },
	"False":             func() predicate.Predicate { return predicate.False{} },
	"Not":               func() predicate.Predicate { return predicate.Not{} },
	"And":               func() predicate.Predicate { return predicate.And{} },
	"Or":                func() predicate.Predicate { return predicate.Or{} },
	"Any":               func() predicate.Predicate { return predicate.Any{} },
	"All":               func() predicate.Predicate { return predicate.All{} },
	"InContact":         func() predicate.Predicate { return predicate.InContact{} },
	"In":                func() predicate.Predicate { return predicate.In{} },
	"On":                func() predicate.Predicate { return predicate.On{} },
	"RelaxedOn":         func() predicate.Predicate { return predicate.RelaxedOn{} },
	"PositionWithin":    func() predicate.Predicate { return predicate.PositionWithin{} },
	"Under":             func() predicate.Predicate { return predicate.Under{} },
	"Above":             func() predicate.Predicate { return predicate.Above{} },
	"Up":                func() predicate.Predicate { return predicate.Up{} },
	"InAir":             func() predicate.Predicate { return predicate.InAir{} },
	"PosiGreaterThan":   func() predicate.Predicate { return predicate.PosiGreaterThan{} },
	"MidBetween":        func() predicate.Predicate { return predicate.MidBetween{} },
	"UpsideDown":        func() predicate.Predicate { return predicate.UpsideDown{} },
	"Upright":           func() predicate.Predicate { return predicate.Upright{} },
	"AxisAlignedWithin": func() predicate.Predicate { return predicate.AxisAlignedWithin{} },
	"Stack":             func() predicate.Predicate { return predicate.Stack{} },
	"StackBowl":         func() predicate.Predicate { return predicate.StackBowl{} },
	"OnCentre":          func() predicate.Predicate { return predicate.OnCentre{} },
	"StairCase":         func() predicate.Predicate { return predicate.StairCase{} },
	"Open":              func() predicate.Predicate { return predicate.Open{} },
	"Close":             func() predicate.Predicate { return predicate.Close{} },
	"OpenRatio":         func() predicate.Predicate { return predicate.OpenRatio{} },
	"TurnOn":            func() predicate.Predicate { return predicate.TurnOn{} },
	"TurnOff":           func() predicate.Predicate { return predicate.TurnOff{} },
	"PrintJointState":   func() predicate.Predicate { return predicate.PrintJointState{} },
}

// defaultTable maps the built-in registry keys to their predicate types.
// "Stack" has no default key; bind it with RegisterAlias or a manifest when
// a task needs it.
var defaultTable = map[string]string{
	"true":              "True",
	"false":             "False",
	"not":               "Not",
	"and":               "And",
	"or":                "Or",
	"any":               "Any",
	"all":               "All",
	"in":                "In",
	"incontact":         "InContact",
	"on":                "On",
	"relaxedon":         "RelaxedOn",
	"up":                "Up",
	"stackbowl":         "StackBowl",
	"printjointstate":   "PrintJointState",
	"open":              "Open",
	"close":             "Close",
	"openratio":         "OpenRatio",
	"staircase":         "StairCase",
	"inair":             "InAir",
	"turnon":            "TurnOn",
	"turnoff":           "TurnOff",
	"upsidedown":        "UpsideDown",
	"upright":           "Upright",
	"axisalignedwithin": "AxisAlignedWithin",
	"under":             "Under",
	"posigreaterthan":   "PosiGreaterThan",
	"positionwithin":    "PositionWithin",
	"oncentre":          "OnCentre",
	"above":             "Above",
	"between":           "MidBetween",
}
