package registry

import (
	"context"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/goalcheck/predicate"
)

// defaultRegistry backs the package-level convenience functions. Goal
// orchestration layers that need isolation construct their own Registry
// instead.
var defaultRegistry = New()

// Default returns the shared default registry.
func Default() *Registry { return defaultRegistry }

// Evaluate invokes a predicate from the shared default registry.
func Evaluate(ctx context.Context, name string, args ...cty.Value) (bool, error) {
	return defaultRegistry.Evaluate(ctx, name, args...)
}

// Get looks up a predicate in the shared default registry.
func Get(name string) (predicate.Predicate, error) {
	return defaultRegistry.Get(name)
}

// RegisterAlias extends the shared default registry.
func RegisterAlias(key, typeName string) error {
	return defaultRegistry.RegisterAlias(key, typeName)
}

// Dump returns a copy of the shared default registry's table.
func Dump() map[string]predicate.Predicate {
	return defaultRegistry.Dump()
}
