package schema

import (
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------
// Type expressions
// -----------------------------------------------------------------------------

// TypeRef is a declared-type expression supplied by pipeline introspection.
// Leaves carry a bare name ("int", "str", "dataframe"); parameterized types
// carry the generic name plus its arguments ("optional[int]", "list[document]").
type TypeRef struct {
	Name string    `json:"name"           yaml:"name"`
	Args []TypeRef `json:"args,omitempty" yaml:"args,omitempty"`
}

func (t TypeRef) String() string {
	if len(t.Args) == 0 {
		return t.Name
	}
	args := make([]string, len(t.Args))
	for i := range t.Args {
		args[i] = t.Args[i].String()
	}
	return fmt.Sprintf("%s[%s]", t.Name, strings.Join(args, ", "))
}

// ParseTypeRef builds a TypeRef from the loosely-typed form introspection
// descriptors arrive in: either a bare type name or a mapping with "name" and
// optional "args".
func ParseTypeRef(value any) (TypeRef, error) {
	switch v := value.(type) {
	case string:
		return TypeRef{Name: v}, nil
	case TypeRef:
		return v, nil
	case map[string]any:
		name, _ := v["name"].(string)
		if name == "" {
			return TypeRef{}, fmt.Errorf("type expression is missing a name: %v", value)
		}
		ref := TypeRef{Name: name}
		if rawArgs, ok := v["args"]; ok {
			args, ok := rawArgs.([]any)
			if !ok {
				return TypeRef{}, fmt.Errorf("type arguments of %q must be a sequence, got %T", name, rawArgs)
			}
			for _, rawArg := range args {
				arg, err := ParseTypeRef(rawArg)
				if err != nil {
					return TypeRef{}, err
				}
				ref.Args = append(ref.Args, arg)
			}
		}
		return ref, nil
	default:
		return TypeRef{}, fmt.Errorf("unsupported type expression form %T: %v", value, value)
	}
}

// -----------------------------------------------------------------------------
// Pipeline I/O descriptors
// -----------------------------------------------------------------------------

// InputSpec describes a single component input. HasDefault distinguishes an
// explicit nil default from an absent one; optionality at the schema level is
// driven by default presence alone, Mandatory is carried for callers but not
// consulted by the request schema builder.
type InputSpec struct {
	Type       TypeRef
	Mandatory  bool
	Default    any
	HasDefault bool
}

// OutputSpec describes a single component output.
type OutputSpec struct {
	Type TypeRef
}

// InputDescriptor maps component name -> input name -> input metadata.
type InputDescriptor map[string]map[string]InputSpec

// OutputDescriptor maps component name -> output name -> output metadata.
type OutputDescriptor map[string]map[string]OutputSpec
