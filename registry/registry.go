package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/goalcheck/predicate"
)

var (
	// ErrUnknownPredicate reports a lookup or evaluation against a name
	// with no registry entry. Callers decide whether to abort goal checking
	// or treat the predicate as vacuously failed.
	ErrUnknownPredicate = errors.New("unknown predicate")

	// ErrUnknownType reports a RegisterAlias type name with no registered
	// constructor.
	ErrUnknownType = errors.New("unknown predicate type")
)

// Registry holds the name→predicate table for one consumer.
type Registry struct {
	preds map[string]predicate.Predicate
}

// New creates a registry populated with the default predicate table.
func New() *Registry {
	r := &Registry{preds: make(map[string]predicate.Predicate, len(defaultTable))}
	for key, typeName := range defaultTable {
		r.preds[key] = constructors[typeName]()
	}
	return r
}

// Get returns the predicate registered under name. Lookup is
// case-insensitive.
func (r *Registry) Get(name string) (predicate.Predicate, error) {
	p, ok := r.preds[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPredicate, name)
	}
	return p, nil
}

// Evaluate resolves name and invokes the predicate with the given arguments.
// It performs no arity or type validation of its own; run ValidateCall for a
// pre-flight check.
func (r *Registry) Evaluate(ctx context.Context, name string, args ...cty.Value) (bool, error) {
	p, err := r.Get(name)
	if err != nil {
		return false, err
	}
	return p.Call(ctx, args)
}

// RegisterAlias binds a new key to a freshly constructed instance of the
// named predicate type. It is the extension point for external
// configuration; type names are restricted to the known constructor set.
func (r *Registry) RegisterAlias(key, typeName string) error {
	build, ok := constructors[typeName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownType, typeName)
	}
	k := strings.ToLower(key)
	if _, exists := r.preds[k]; exists {
		return fmt.Errorf("predicate %q already registered", k)
	}
	slog.Debug("Registering predicate alias.", "key", k, "type", typeName)
	r.preds[k] = build()
	return nil
}

// Dump returns a copy of the current name→predicate table for introspection
// and tooling.
func (r *Registry) Dump() map[string]predicate.Predicate {
	out := make(map[string]predicate.Predicate, len(r.preds))
	for k, p := range r.preds {
		out[k] = p
	}
	return out
}
