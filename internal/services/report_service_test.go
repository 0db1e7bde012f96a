package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorpicker/pkg/colortypes"
)

func sampleResults() []BatchResult {
	return []BatchResult{
		{
			Entry:     BatchEntry{Name: "Background", Mode: colortypes.ModeRGB, Value: `{"R":" 1","G":"2","B":"3"}`},
			Outcome:   colortypes.Valid(),
			Canonical: `{"R":"1","G":"2","B":"3"}`,
			Changed:   true,
		},
		{
			Entry:     BatchEntry{Name: "Accent", Mode: colortypes.ModeHEX, Value: "#ABC"},
			Outcome:   colortypes.Invalid(colortypes.InvalidHexValue, "Accent"),
			Message:   "Please enter a valid hex color value.",
			Canonical: "#ABC",
		},
		{
			Entry:     BatchEntry{Name: "Border|Top", Mode: colortypes.ModeRGB, Value: `{"R":"300","G":"","B":""}`},
			Outcome:   colortypes.Invalid(colortypes.InvalidChannelValue, "Border|Top").WithChannel("R"),
			Canonical: `{"R":"300","G":"","B":""}`,
		},
	}
}

func TestReportService_Markdown(t *testing.T) {
	markdown := NewReportService().Markdown(sampleResults())

	assert.Contains(t, markdown, "| Field | Mode | Stored value | Result | Canonical |")
	assert.Contains(t, markdown, "| Background | rgb |")
	assert.Contains(t, markdown, "`{\"R\":\"1\",\"G\":\"2\",\"B\":\"3\"}`")
	assert.Contains(t, markdown, "| Accent | hex | `#ABC` | InvalidHexValue | unchanged |")
	assert.Contains(t, markdown, "InvalidChannelValue (R)")
	assert.Contains(t, markdown, `Border\|Top`)
	assert.Contains(t, markdown, "3 fields, 2 invalid, 1 not canonical.")
	assert.Contains(t, markdown, "- **Accent**: Please enter a valid hex color value.")
}

func TestReportService_RenderPlain(t *testing.T) {
	service := NewReportService()
	_, err := service.Render(nil)
	assert.Error(t, err)

	require.NoError(t, service.Initialize())
	plain, err := service.RenderPlain(sampleResults())
	require.NoError(t, err)
	assert.NotContains(t, plain, "\x1b[")
	assert.Contains(t, plain, "Background")
	assert.Contains(t, plain, "2 invalid")
}

func TestCodeSpan(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "#4A808C", "`#4A808C`"},
		{"empty", "", "*empty*"},
		{"pipe", "a|b", "`a\\|b`"},
		{"single backtick", "#4A`80", "`` #4A`80 ``"},
		{"backtick run", "x```y`", "```` x```y` ````"},
		{"leading backtick", "`R`", "`` `R` ``"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, codeSpan(tt.input))
		})
	}
}

func TestReportService_MarkdownStoredValueWithBacktick(t *testing.T) {
	results := []BatchResult{
		{
			Entry:     BatchEntry{Name: "Accent", Mode: colortypes.ModeHEX, Value: "#4A`80"},
			Outcome:   colortypes.Invalid(colortypes.InvalidHexValue, "Accent"),
			Canonical: "#4A`80",
		},
		{
			Entry:     BatchEntry{Name: "Unset", Mode: colortypes.ModeHEX, Value: ""},
			Outcome:   colortypes.Valid(),
			Canonical: "",
		},
	}

	markdown := NewReportService().Markdown(results)
	assert.Contains(t, markdown, "| Accent | hex | `` #4A`80 `` | InvalidHexValue | unchanged |")
	assert.Contains(t, markdown, "| Unset | hex | *empty* | valid | unchanged |")
}
