package schema

import (
	"sort"
	"strings"
	"unicode"
)

const (
	requestSchemaSuffix  = "RunRequest"
	responseSchemaSuffix = "RunResponse"
	componentSchemaTitle = "ComponentParams"
)

// pipelineSchema assembles the top-level composite type: one required field
// per component, each holding that component's sub-schema.
func pipelineSchema(pipelineName, suffix string, components map[string]any) Schema {
	return Schema{
		"title":                capitalize(pipelineName) + suffix,
		"type":                 "object",
		"properties":           components,
		"required":             sortedKeys(components),
		"additionalProperties": false,
	}
}

func componentSchema(fields map[string]any, required []string) map[string]any {
	sort.Strings(required)
	return map[string]any{
		"title":                componentSchemaTitle,
		"type":                 "object",
		"properties":           fields,
		"required":             required,
		"additionalProperties": false,
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// capitalize uppercases the first rune and lowercases the rest, matching the
// naming of generated pipeline schema types.
func capitalize(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(strings.ToLower(name))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
