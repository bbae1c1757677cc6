package config

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Defaults(t *testing.T) {
	cfg := Config{}
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "text"
	cfg.Observability.TraceSampleRatio = 1.0

	result := cfg.Validate()
	assert.False(t, result.HasErrors())
	assert.Empty(t, result.Error())
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := Config{}
	cfg.Logging.Level = "verbose"

	result := cfg.Validate()
	require.True(t, result.HasErrors())
	assert.Equal(t, "logging.level", result.Errors[0].Field)
	assert.Contains(t, result.Error(), "verbose")
}

func TestValidate_InvalidLogFormat(t *testing.T) {
	cfg := Config{}
	cfg.Logging.Format = "xml"

	result := cfg.Validate()
	require.True(t, result.HasErrors())
	assert.Equal(t, "logging.format", result.Errors[0].Field)
}

func TestValidate_OTLPProtocol(t *testing.T) {
	cfg := Config{}
	cfg.Observability.OTLP.Protocol = "HTTP/Protobuf"
	assert.False(t, cfg.Validate().HasErrors())

	cfg.Observability.OTLP.Protocol = "thrift"
	result := cfg.Validate()
	require.True(t, result.HasErrors())
	assert.Equal(t, "observability.otlp.protocol", result.Errors[0].Field)
}

func TestValidate_SampleRatioRange(t *testing.T) {
	cfg := Config{}
	cfg.Observability.TraceSampleRatio = 1.5

	result := cfg.Validate()
	require.True(t, result.HasErrors())
	assert.Equal(t, "observability.trace_sample_ratio", result.Errors[0].Field)
}

func TestValidate_CollectsMultipleErrors(t *testing.T) {
	cfg := Config{}
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "xml"
	cfg.Observability.TraceSampleRatio = -0.1

	result := cfg.Validate()
	assert.Len(t, result.Errors, 3)
}

func TestValidationError_Hint(t *testing.T) {
	err := ValidationError{Field: "logging.level", Message: "invalid", Hint: "use info"}
	assert.Equal(t, "logging.level: invalid (hint: use info)", err.Error())

	err.Hint = ""
	assert.Equal(t, "logging.level: invalid", err.Error())
}

func TestFlagToKey(t *testing.T) {
	assert.Equal(t, "logging.level", flagToKey("log-level"))
	assert.Equal(t, "logging.format", flagToKey("log-format"))
	assert.Equal(t, "check_schema", flagToKey("check-schema"))
}

func TestStringToStringSliceHook(t *testing.T) {
	fn, ok := stringToStringSliceHookFunc(",").(func(reflect.Type, reflect.Type, interface{}) (interface{}, error))
	require.True(t, ok)

	stringType := reflect.TypeOf("")
	sliceType := reflect.TypeOf([]string{})

	out, err := fn(stringType, sliceType, "User, Post ,Tag")
	require.NoError(t, err)
	assert.Equal(t, []string{"User", "Post", "Tag"}, out)

	out, err = fn(stringType, sliceType, "")
	require.NoError(t, err)
	assert.Equal(t, []string{}, out)

	// Non-matching types pass through untouched.
	out, err = fn(stringType, stringType, "unchanged")
	require.NoError(t, err)
	assert.Equal(t, "unchanged", out)
}
