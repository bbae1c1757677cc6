// Package transform chains the schema synthesis passes into one pipeline:
// raw document, where pass, order-by pass, finishing pass, final document.
package transform

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"query-schema-gen/internal/document"
	"query-schema-gen/internal/finisher"
	"query-schema-gen/internal/ordergen"
	"query-schema-gen/internal/wheregen"
)

var tracer = otel.Tracer("query-schema-gen/transform")

// Report summarizes one pipeline run for logging and tests.
type Report struct {
	RunID        string
	WhereResults []wheregen.Result
	OrderResults []ordergen.Result
	InputTypes   int
	OutputTypes  int
	Enums        int
}

// Passthroughs returns the where-input types that could not be resolved
// against the datamodel and were carried through unmodified.
func (r Report) Passthroughs() []string {
	var names []string
	for _, res := range r.WhereResults {
		if res.Outcome == wheregen.OutcomePassthrough {
			names = append(names, res.TypeName)
		}
	}
	return names
}

// Pipeline runs the transform passes. A Pipeline is safe for concurrent use:
// each run carries its own filter cache and shares no state with other runs.
type Pipeline struct {
	logger *slog.Logger
}

// New creates a Pipeline.
func New(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger}
}

// Run transforms one document. The supported contract is single-invocation:
// re-running the pipeline on its own output would reprocess already
// synthesized where types against the original field lists.
func (p *Pipeline) Run(ctx context.Context, doc document.Document) (document.Document, Report) {
	runID := uuid.NewString()
	logger := p.logger.With(slog.String("run_id", runID))

	ctx, span := tracer.Start(ctx, "transform.run", trace.WithAttributes(
		attribute.String("run.id", runID),
		attribute.Int("datamodel.models", len(doc.Datamodel.Models)),
		attribute.Int("schema.input_types", len(doc.Schema.InputTypes)),
	))
	defer span.End()

	schema, whereResults := p.runWherePass(ctx, doc)
	schema, orderResults := p.runOrderPass(ctx, schema)
	schema = p.runFinishPass(ctx, schema)

	out := doc
	out.Schema = schema

	report := Report{
		RunID:        runID,
		WhereResults: whereResults,
		OrderResults: orderResults,
		InputTypes:   len(schema.InputTypes),
		OutputTypes:  len(schema.OutputTypes),
		Enums:        len(schema.Enums),
	}
	logger.Info("transform complete",
		slog.Int("where_types", len(whereResults)),
		slog.Int("order_types", len(orderResults)),
		slog.Int("passthrough_types", len(report.Passthroughs())),
		slog.Int("input_types", report.InputTypes),
		slog.Int("output_types", report.OutputTypes),
	)
	return out, report
}

func (p *Pipeline) runWherePass(ctx context.Context, doc document.Document) (document.Schema, []wheregen.Result) {
	_, span := tracer.Start(ctx, "transform.where")
	defer span.End()

	schema, results := wheregen.New(doc.Datamodel, p.logger).Apply(doc.Schema)

	transformed := 0
	for _, r := range results {
		if r.Outcome == wheregen.OutcomeTransformed {
			transformed++
		}
	}
	span.SetAttributes(
		attribute.Int("where.candidates", len(results)),
		attribute.Int("where.transformed", transformed),
	)
	return schema, results
}

func (p *Pipeline) runOrderPass(ctx context.Context, schema document.Schema) (document.Schema, []ordergen.Result) {
	_, span := tracer.Start(ctx, "transform.orderby")
	defer span.End()

	schema, results := ordergen.Apply(schema, p.logger)
	span.SetAttributes(attribute.Int("orderby.transformed", len(results)))
	return schema, results
}

func (p *Pipeline) runFinishPass(ctx context.Context, schema document.Schema) document.Schema {
	_, span := tracer.Start(ctx, "transform.finish")
	defer span.End()

	before := len(schema.InputTypes) + len(schema.OutputTypes)
	schema = finisher.Apply(schema)
	after := len(schema.InputTypes) + len(schema.OutputTypes)
	span.SetAttributes(attribute.Int("finish.removed", before-after))
	return schema
}
