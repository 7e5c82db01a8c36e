package pipeline

import "reflect"

// initParametersKey wraps the semantic payload of components whose natural
// dict form nests it under their construction parameters.
const initParametersKey = "init_parameters"

// DictConvertible is the capability of a component output value to produce a
// plain key-value mapping representation of itself.
type DictConvertible interface {
	ToDict() map[string]any
}

// ConvertComponentOutput converts heterogeneous component outputs into plain
// nested mapping form so they can be validated against a generated response
// schema. Convertible values are converted (unwrapping init_parameters when
// present), plain values pass through unchanged, and ordered sequences are
// mapped element-wise preserving order and length.
func ConvertComponentOutput(componentOutput map[string]any) map[string]any {
	result := make(map[string]any, len(componentOutput))
	for outputName, data := range componentOutput {
		if items, ok := toAnySlice(data); ok {
			converted := make([]any, len(items))
			for i := range items {
				converted[i] = convertValue(items[i])
			}
			result[outputName] = converted
			continue
		}
		result[outputName] = convertValue(data)
	}
	return result
}

func convertValue(data any) any {
	convertible, ok := data.(DictConvertible)
	if !ok {
		return data
	}
	dict := convertible.ToDict()
	if params, ok := dict[initParametersKey]; ok {
		return params
	}
	return dict
}

// toAnySlice reports whether the value is an ordered sequence and flattens it
// to []any. Byte slices count as plain values.
func toAnySlice(value any) ([]any, bool) {
	if items, ok := value.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.Slice {
		return nil, false
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}
