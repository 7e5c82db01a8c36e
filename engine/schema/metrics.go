package schema

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/pipeserve/pipeserve/pkg/logger"
)

var (
	schemaMetricsOnce       sync.Once
	schemaBuildCounter      metric.Int64Counter
	schemaCompileCounter    metric.Int64Counter
	schemaValidationCounter metric.Int64Counter
)

func ensureSchemaMetrics() {
	schemaMetricsOnce.Do(func() {
		meter := otel.GetMeterProvider().Meter("pipeserve.schema")
		var err error
		schemaBuildCounter, err = meter.Int64Counter(
			"pipeserve_schema_builds_total",
			metric.WithDescription("Total pipeline schema builds"),
			metric.WithUnit("1"),
		)
		if err != nil {
			logger.Warn("Failed to register schema build counter", "error", err)
		}
		schemaCompileCounter, err = meter.Int64Counter(
			"pipeserve_schema_compiles_total",
			metric.WithDescription("Total schema compilation attempts"),
			metric.WithUnit("1"),
		)
		if err != nil {
			logger.Warn("Failed to register schema compile counter", "error", err)
		}
		schemaValidationCounter, err = meter.Int64Counter(
			"pipeserve_schema_validations_total",
			metric.WithDescription("Total schema validations"),
			metric.WithUnit("1"),
		)
		if err != nil {
			logger.Warn("Failed to register schema validation counter", "error", err)
		}
	})
}

func recordBuild(ctx context.Context, kind string) {
	ensureSchemaMetrics()
	if schemaBuildCounter == nil {
		return
	}
	schemaBuildCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func recordCompile(ctx context.Context) {
	ensureSchemaMetrics()
	if schemaCompileCounter == nil {
		return
	}
	schemaCompileCounter.Add(ctx, 1)
}

func recordValidation(ctx context.Context, valid bool) {
	ensureSchemaMetrics()
	if schemaValidationCounter == nil {
		return
	}
	schemaValidationCounter.Add(ctx, 1, metric.WithAttributes(attribute.Bool("valid", valid)))
}
