package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/kaptinlin/jsonschema"

	"github.com/pipeserve/pipeserve/engine/schema"
	"github.com/pipeserve/pipeserve/pkg/logger"
)

var (
	ErrAlreadyDeployed = errors.New("pipeline already deployed")
	ErrNotFound        = errors.New("pipeline not found")
)

// Deployed holds everything the serving layer needs per pipeline. Schemas are
// built and compiled once at deploy time and reused across requests; nothing
// is mutated afterwards.
type Deployed struct {
	Definition     Definition
	Inputs         schema.InputDescriptor
	Outputs        schema.OutputDescriptor
	RequestSchema  schema.Schema
	ResponseSchema schema.Schema
	Runner         Runner

	requestCompiled  *jsonschema.Schema
	responseCompiled *jsonschema.Schema
}

func (d *Deployed) ValidateRequest(ctx context.Context, body map[string]any) error {
	_, err := schema.ValidateCompiled(ctx, d.requestCompiled, body)
	if err != nil {
		return fmt.Errorf("request for pipeline %q: %w", d.Definition.Name, err)
	}
	return nil
}

func (d *Deployed) ValidateResponse(ctx context.Context, body map[string]any) error {
	_, err := schema.ValidateCompiled(ctx, d.responseCompiled, body)
	if err != nil {
		return fmt.Errorf("response of pipeline %q: %w", d.Definition.Name, err)
	}
	return nil
}

// Registry tracks deployed pipelines. Safe for concurrent use by the request
// handlers.
type Registry struct {
	mu           sync.RWMutex
	introspector Introspector
	runners      RunnerFactory
	pipelines    map[string]*Deployed
}

func NewRegistry(introspector Introspector, runners RunnerFactory) *Registry {
	return &Registry{
		introspector: introspector,
		runners:      runners,
		pipelines:    make(map[string]*Deployed),
	}
}

// Deploy introspects the definition, builds and compiles both schema types,
// and registers the pipeline. A resolution failure aborts the whole
// deployment.
func (r *Registry) Deploy(ctx context.Context, def *Definition) (*Deployed, error) {
	log := logger.FromContext(ctx)
	if err := def.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid pipeline definition: %w", err)
	}

	inputs, outputs, err := r.introspector.Introspect(def)
	if err != nil {
		return nil, err
	}
	requestSchema, err := schema.BuildRequestSchema(ctx, def.Name, inputs)
	if err != nil {
		return nil, fmt.Errorf("pipeline %q: %w", def.Name, err)
	}
	responseSchema, err := schema.BuildResponseSchema(ctx, def.Name, outputs)
	if err != nil {
		return nil, fmt.Errorf("pipeline %q: %w", def.Name, err)
	}
	requestCompiled, err := requestSchema.Compile()
	if err != nil {
		return nil, fmt.Errorf("pipeline %q: %w", def.Name, err)
	}
	responseCompiled, err := responseSchema.Compile()
	if err != nil {
		return nil, fmt.Errorf("pipeline %q: %w", def.Name, err)
	}

	var runner Runner
	if r.runners != nil {
		runner, err = r.runners(def)
		if err != nil {
			return nil, fmt.Errorf("pipeline %q: %w", def.Name, err)
		}
	}

	deployed := &Deployed{
		Definition:       *def,
		Inputs:           inputs,
		Outputs:          outputs,
		RequestSchema:    requestSchema,
		ResponseSchema:   responseSchema,
		Runner:           runner,
		requestCompiled:  requestCompiled,
		responseCompiled: responseCompiled,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.pipelines[def.Name]; exists {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyDeployed, def.Name)
	}
	r.pipelines[def.Name] = deployed
	log.Info("Pipeline deployed", "name", def.Name, "components", len(inputs))
	return deployed, nil
}

func (r *Registry) Undeploy(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.pipelines[name]; !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	delete(r.pipelines, name)
	return nil
}

func (r *Registry) Get(name string) (*Deployed, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	deployed, ok := r.pipelines[name]
	return deployed, ok
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.pipelines))
	for name := range r.pipelines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
