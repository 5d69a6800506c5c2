// Package registry resolves goal-expression predicate names to predicate
// instances.
//
// The Registry stores mappings between the lowercase string identifiers used
// in goal descriptions (e.g. "on", "incontact") and the predicate
// implementations behind them. The table is populated once at construction
// and optionally extended with aliases, either programmatically through
// RegisterAlias or from HCL manifests. Alias registration goes through a
// closed constructor table over the known predicate types; type names are
// never evaluated dynamically.
package registry
