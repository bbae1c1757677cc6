// Package config loads and validates generator configuration from flags,
// environment variables, and an optional YAML file.
package config

import (
	"fmt"
	"strings"

	"query-schema-gen/internal/modelfilter"
	"query-schema-gen/internal/observability"
)

// Config holds the application configuration.
type Config struct {
	// Input is the path of the document JSON produced by introspection.
	// Empty means read from stdin (refused on an interactive terminal).
	Input string `mapstructure:"input"`
	// Output is the path for the transformed document JSON. Empty means
	// stdout.
	Output string `mapstructure:"output"`
	// Pretty enables indented JSON output.
	Pretty bool `mapstructure:"pretty"`
	// CheckSchema materializes the transformed document into a GraphQL
	// schema as a structural sanity check before writing output.
	CheckSchema bool `mapstructure:"check_schema"`

	Logging          LoggingConfig        `mapstructure:"logging"`
	DatamodelFilters modelfilter.Config   `mapstructure:"datamodel_filters"`
	Observability    observability.Config `mapstructure:"observability"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	Field   string
	Message string
	Hint    string
}

func (e ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s (hint: %s)", e.Field, e.Message, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationResult contains the results of configuration validation.
type ValidationResult struct {
	Errors []ValidationError
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Error returns a combined error message if there are validation errors.
func (r *ValidationResult) Error() string {
	if !r.HasErrors() {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration for errors.
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level %q", c.Logging.Level),
			Hint:    "use debug, info, warn, or error",
		})
	}

	switch c.Logging.Format {
	case "", "json", "text":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid format %q", c.Logging.Format),
			Hint:    "use json or text",
		})
	}

	switch strings.ToLower(strings.TrimSpace(c.Observability.OTLP.Protocol)) {
	case "", "grpc", "http", "http/protobuf":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "observability.otlp.protocol",
			Message: fmt.Sprintf("invalid protocol %q", c.Observability.OTLP.Protocol),
			Hint:    "use grpc or http/protobuf",
		})
	}

	if ratio := c.Observability.TraceSampleRatio; ratio < 0 || ratio > 1 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "observability.trace_sample_ratio",
			Message: fmt.Sprintf("ratio %v out of range", ratio),
			Hint:    "use a value between 0 and 1",
		})
	}

	return result
}
