package schema

import (
	"context"

	"github.com/go-playground/validator/v10"
)

// -----------------------------------------------------------------------------
// Validator interface
// -----------------------------------------------------------------------------

type Validator interface {
	Validate(ctx context.Context) error
}

// -----------------------------------------------------------------------------
// StructValidator
// -----------------------------------------------------------------------------

// StructValidator validates a struct against its `validate` tags. Used by the
// serving layer to check transport records before acting on them.
type StructValidator struct {
	validate *validator.Validate
	value    any
}

func NewStructValidator(value any) *StructValidator {
	return &StructValidator{
		validate: validator.New(),
		value:    value,
	}
}

func (v *StructValidator) Validate(_ context.Context) error {
	return v.validate.Struct(v.value)
}
