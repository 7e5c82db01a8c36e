package schema

import (
	"context"
	"fmt"

	"github.com/pipeserve/pipeserve/pkg/logger"
)

// BuildResponseSchema produces the composite response type for a pipeline.
// Outputs carry no optionality: every output field is required.
func BuildResponseSchema(ctx context.Context, pipelineName string, outputs OutputDescriptor) (Schema, error) {
	log := logger.FromContext(ctx)
	components := make(map[string]any, len(outputs))
	for componentName, componentOutputs := range outputs {
		fields := make(map[string]any, len(componentOutputs))
		required := make([]string, 0, len(componentOutputs))
		for name, spec := range componentOutputs {
			resolved, err := ResolveType(spec.Type)
			if err != nil {
				log.Error("Failed to resolve output type",
					"component", componentName,
					"output", name,
					"type", spec.Type.String(),
				)
				return nil, fmt.Errorf("output %q of component %q: %w", name, componentName, err)
			}
			fields[name] = typeSchema(resolved)
			required = append(required, name)
		}
		components[componentName] = componentSchema(fields, required)
	}
	recordBuild(ctx, "response")
	return pipelineSchema(pipelineName, responseSchemaSuffix, components), nil
}
