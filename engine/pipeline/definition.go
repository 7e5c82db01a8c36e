package pipeline

import (
	"context"

	"github.com/pipeserve/pipeserve/engine/schema"
)

// Definition is the transport record for a named pipeline and its source
// text. It carries no behavior; the server layer moves it between clients and
// the registry.
type Definition struct {
	Name       string `json:"name"        yaml:"name"        validate:"required"`
	SourceCode string `json:"source_code" yaml:"source_code" validate:"required"`
}

func (d *Definition) Validate(ctx context.Context) error {
	return schema.NewStructValidator(d).Validate(ctx)
}
