package schema

// typeSchema renders a resolved type expression as a JSON-schema fragment.
// Unknown leaf names render as the unconstrained schema so that rich
// component types survive schema generation without being modeled field by
// field.
func typeSchema(t TypeRef) map[string]any {
	switch t.Name {
	case "str", "string":
		return map[string]any{"type": "string"}
	case "int", "integer":
		return map[string]any{"type": "integer"}
	case "float", "number":
		return map[string]any{"type": "number"}
	case "bool", "boolean":
		return map[string]any{"type": "boolean"}
	case "object", "dict", "map":
		return objectSchema(t)
	case "list", "array", "sequence":
		return arraySchema(t)
	case "optional":
		return optionalSchema(t)
	case "any":
		return map[string]any{}
	default:
		return map[string]any{}
	}
}

func objectSchema(t TypeRef) map[string]any {
	s := map[string]any{"type": "object"}
	// dict[K, V] constrains values; bare object/dict stays open.
	if len(t.Args) == 2 {
		s["additionalProperties"] = typeSchema(t.Args[1])
	} else {
		s["additionalProperties"] = true
	}
	return s
}

func arraySchema(t TypeRef) map[string]any {
	s := map[string]any{"type": "array"}
	if len(t.Args) == 1 {
		s["items"] = typeSchema(t.Args[0])
	}
	return s
}

func optionalSchema(t TypeRef) map[string]any {
	if len(t.Args) != 1 {
		return map[string]any{}
	}
	return map[string]any{
		"anyOf": []any{
			typeSchema(t.Args[0]),
			map[string]any{"type": "null"},
		},
	}
}
