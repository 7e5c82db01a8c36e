package schema

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonschema"
)

// -----------------------------------------------------------------------------
// Schema
// -----------------------------------------------------------------------------

type Schema map[string]any
type Result = jsonschema.EvaluationResult

func (s *Schema) String() string {
	bytes, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	return string(bytes)
}

func (s *Schema) Compile() (*jsonschema.Schema, error) {
	if s == nil {
		return nil, nil
	}
	bytes, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	compiled, err := compiler.Compile(bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	recordCompile(context.Background())
	return compiled, nil
}

func (s *Schema) Validate(ctx context.Context, value any) (*Result, error) {
	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	if compiled == nil {
		return nil, nil
	}
	return ValidateCompiled(ctx, compiled, value)
}

// ValidateCompiled validates a value against an already compiled schema. The
// serving layer compiles request/response schemas once per pipeline and reuses
// them across requests.
func ValidateCompiled(ctx context.Context, compiled *jsonschema.Schema, value any) (*Result, error) {
	result := compiled.Validate(value)
	recordValidation(ctx, result.Valid)
	if result.Valid {
		return result, nil
	}
	return nil, fmt.Errorf("schema validation failed: %v", result.Errors)
}
