package report

import (
	"encoding/json"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentlint/internal/validator"
)

func compileReportSchema(t *testing.T) *jsonschema.Schema {
	t.Helper()
	data, err := JSONSchema()
	require.NoError(t, err)

	schema, err := jsonschema.CompileString("report.schema.json", string(data))
	require.NoError(t, err)
	return schema
}

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestJSONSchema_AcceptsReports(t *testing.T) {
	schema := compileReportSchema(t)

	tests := []struct {
		name   string
		result validator.Result
		meta   Meta
	}{
		{"invalid with metadata", sampleResult(), Meta{Source: "agent.json", Fingerprint: "sha256:abc"}},
		{"empty run", validator.Result{}, Meta{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := FormatJSON(tt.result, tt.meta)
			require.NoError(t, err)
			assert.NoError(t, schema.Validate(decode(t, out)))
		})
	}
}

func TestJSONSchema_RejectsIncompleteReport(t *testing.T) {
	schema := compileReportSchema(t)

	assert.Error(t, schema.Validate(decode(t, `{"valid": true}`)))
}

func TestJSONSchema_Stable(t *testing.T) {
	first, err := JSONSchema()
	require.NoError(t, err)
	second, err := JSONSchema()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, string(first), `"errorCount"`)
}
