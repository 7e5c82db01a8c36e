package schema

import (
	"context"
	"fmt"

	"github.com/pipeserve/pipeserve/pkg/logger"
)

// BuildRequestSchema produces the composite request type for a pipeline: one
// required field per component, each a sub-schema over that component's
// inputs. An input with an explicit default is optional and carries that
// default; an input without one is required. The mandatory flag on the
// descriptor plays no part here.
func BuildRequestSchema(ctx context.Context, pipelineName string, inputs InputDescriptor) (Schema, error) {
	log := logger.FromContext(ctx)
	components := make(map[string]any, len(inputs))
	for componentName, componentInputs := range inputs {
		fields := make(map[string]any, len(componentInputs))
		required := make([]string, 0, len(componentInputs))
		for name, spec := range componentInputs {
			resolved, err := ResolveType(spec.Type)
			if err != nil {
				log.Error("Failed to resolve input type",
					"component", componentName,
					"input", name,
					"type", spec.Type.String(),
				)
				return nil, fmt.Errorf("input %q of component %q: %w", name, componentName, err)
			}
			field := typeSchema(resolved)
			if spec.HasDefault {
				field["default"] = spec.Default
			} else {
				required = append(required, name)
			}
			fields[name] = field
		}
		components[componentName] = componentSchema(fields, required)
	}
	recordBuild(ctx, "request")
	return pipelineSchema(pipelineName, requestSchemaSuffix, components), nil
}
