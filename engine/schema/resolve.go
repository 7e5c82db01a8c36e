package schema

import (
	"errors"
	"fmt"
)

// ErrUnresolvableType indicates a declared type expression the resolver
// cannot reconstruct. Resolution failure aborts schema construction for the
// whole pipeline.
var ErrUnresolvableType = errors.New("unresolvable type expression")

// genericObjectType is the structured-data fallback every unsupported rich
// type resolves to.
var genericObjectType = TypeRef{Name: "object"}

// unsupportedTypes maps rich types with no direct schema representation to
// the generic structured-data type. Populated at process start by independent
// registrations (see qdrant.go) and read-only afterwards.
var unsupportedTypes = map[string]TypeRef{
	"dataframe": genericObjectType,
}

// RegisterUnsupportedType marks a declared type name as having no direct
// schema representation. Must only be called during process initialization;
// the table is read concurrently without locking afterwards.
func RegisterUnsupportedType(name string) {
	if name == "" {
		return
	}
	unsupportedTypes[name] = genericObjectType
}

// ResolveType returns the declared type unchanged unless it is a known
// unsupported type, in which case the generic substitute is returned.
// Parameterized expressions are reconstructed with resolved arguments, so
// the result is structurally isomorphic to the input except for substituted
// leaves.
func ResolveType(t TypeRef) (TypeRef, error) {
	if t.Name == "" {
		return TypeRef{}, fmt.Errorf("%w: %v", ErrUnresolvableType, t)
	}
	if substitute, ok := unsupportedTypes[t.Name]; ok {
		return substitute, nil
	}
	if len(t.Args) == 0 {
		return t, nil
	}
	resolved := TypeRef{Name: t.Name, Args: make([]TypeRef, len(t.Args))}
	for i := range t.Args {
		arg, err := ResolveType(t.Args[i])
		if err != nil {
			return TypeRef{}, fmt.Errorf("argument %d of %q: %w", i, t.Name, err)
		}
		resolved.Args[i] = arg
	}
	return resolved, nil
}
