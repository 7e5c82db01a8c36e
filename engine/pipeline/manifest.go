package pipeline

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/pipeserve/pipeserve/engine/schema"
)

// Introspector supplies the typed input/output description of a pipeline.
type Introspector interface {
	Introspect(def *Definition) (schema.InputDescriptor, schema.OutputDescriptor, error)
}

// ManifestIntrospector reads the description out of a YAML manifest embedded
// in the definition's source text:
//
//	components:
//	  first_addition:
//	    inputs:
//	      value: {type: int, mandatory: true}
//	      add:   {type: {name: optional, args: [int]}, default: null}
//	    outputs:
//	      result: {type: int}
type ManifestIntrospector struct{}

type manifest struct {
	Components map[string]manifestComponent `yaml:"components"`
}

type manifestComponent struct {
	Inputs  map[string]map[string]any `yaml:"inputs"`
	Outputs map[string]map[string]any `yaml:"outputs"`
}

func NewManifestIntrospector() *ManifestIntrospector {
	return &ManifestIntrospector{}
}

func (m *ManifestIntrospector) Introspect(
	def *Definition,
) (schema.InputDescriptor, schema.OutputDescriptor, error) {
	var parsed manifest
	if err := yaml.Unmarshal([]byte(def.SourceCode), &parsed); err != nil {
		return nil, nil, fmt.Errorf("failed to parse manifest of pipeline %q: %w", def.Name, err)
	}
	if len(parsed.Components) == 0 {
		return nil, nil, fmt.Errorf("pipeline %q declares no components", def.Name)
	}

	inputs := make(schema.InputDescriptor, len(parsed.Components))
	outputs := make(schema.OutputDescriptor, len(parsed.Components))
	for componentName, component := range parsed.Components {
		componentInputs, err := parseInputs(component.Inputs)
		if err != nil {
			return nil, nil, fmt.Errorf("component %q of pipeline %q: %w", componentName, def.Name, err)
		}
		if len(componentInputs) > 0 {
			inputs[componentName] = componentInputs
		}
		componentOutputs, err := parseOutputs(component.Outputs)
		if err != nil {
			return nil, nil, fmt.Errorf("component %q of pipeline %q: %w", componentName, def.Name, err)
		}
		if len(componentOutputs) > 0 {
			outputs[componentName] = componentOutputs
		}
	}
	return inputs, outputs, nil
}

func parseInputs(raw map[string]map[string]any) (map[string]schema.InputSpec, error) {
	parsed := make(map[string]schema.InputSpec, len(raw))
	for name, entry := range raw {
		typeRef, err := schema.ParseTypeRef(entry["type"])
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", name, err)
		}
		spec := schema.InputSpec{Type: typeRef}
		if mandatory, ok := entry["mandatory"].(bool); ok {
			spec.Mandatory = mandatory
		}
		// Key presence matters: an explicit null default still makes the
		// input optional.
		if value, ok := entry["default"]; ok {
			spec.Default = value
			spec.HasDefault = true
		}
		parsed[name] = spec
	}
	return parsed, nil
}

func parseOutputs(raw map[string]map[string]any) (map[string]schema.OutputSpec, error) {
	parsed := make(map[string]schema.OutputSpec, len(raw))
	for name, entry := range raw {
		typeRef, err := schema.ParseTypeRef(entry["type"])
		if err != nil {
			return nil, fmt.Errorf("output %q: %w", name, err)
		}
		parsed[name] = schema.OutputSpec{Type: typeRef}
	}
	return parsed, nil
}
