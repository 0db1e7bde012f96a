package field

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorpicker/internal/services"
	"colorpicker/internal/testutils"
	"colorpicker/pkg/colortypes"
)

func newTestField(t *testing.T, name string) (*ColorPickerField, *testutils.MockTranslator) {
	t.Helper()
	codec := services.NewColorCodecService()
	require.NoError(t, codec.Initialize())
	payloads := services.NewPayloadService()
	require.NoError(t, payloads.Initialize())
	translator := testutils.NewMockTranslator(map[string]string{
		"ADD_RGB_VALUES":        "Add RGB color values",
		"ERR_INVALID_RGB_VALUE": "Invalid RGB value",
		"ERR_INVALID_HEX_VALUE": "Invalid hex value",
	})
	return New(name, codec, payloads, translator), translator
}

func TestNew_Defaults(t *testing.T) {
	f, _ := newTestField(t, "Background")

	assert.Equal(t, "Background", f.Name())
	assert.Equal(t, colortypes.ModeRGB, f.Mode())
	assert.True(t, f.ShowCheckbox())
	assert.Equal(t, "", f.Value())
	assert.True(t, strings.HasPrefix(f.ID(), "colorpicker-"))

	other, _ := newTestField(t, "Background")
	assert.NotEqual(t, f.ID(), other.ID())
}

func TestColorPickerField_Setters(t *testing.T) {
	f, _ := newTestField(t, "Accent")

	f.SetID("accent").SetMode(colortypes.ModeHEX).DisableCheckbox().SetValue("#4A808C")

	assert.Equal(t, "accent", f.ID())
	assert.Equal(t, colortypes.ModeHEX, f.Mode())
	assert.False(t, f.ShowCheckbox())
	assert.Equal(t, "#4A808C", f.Value())
}

func TestColorPickerField_SubmitDecodeValidate(t *testing.T) {
	f, _ := newTestField(t, "Background")

	err := f.SetSubmittedValue(colortypes.RGBSubmission(colortypes.TripleFromForm(map[string]string{
		"R": " 73 ",
		"G": "128",
		"B": "140",
	})))
	require.NoError(t, err)
	assert.Equal(t, `{"R":"73","G":"128","B":"140"}`, f.Value())

	decoded := f.Decoded()
	require.NotNil(t, decoded)
	assert.Equal(t, colortypes.RawChannelTriple{R: "73", G: "128", B: "140"}, decoded.Channels)

	collector := NewValidationCollector()
	assert.True(t, f.Validate(collector))
	assert.True(t, collector.IsValid())
}

func TestColorPickerField_EmptySubmissionKeepsValue(t *testing.T) {
	f, _ := newTestField(t, "Background")
	f.SetValue(`{"R":"1","G":"2","B":"3"}`)

	require.NoError(t, f.SetSubmittedValue(colortypes.RGBSubmission(nil)))
	assert.Equal(t, `{"R":"1","G":"2","B":"3"}`, f.Value())
}

func TestColorPickerField_ValidateReportsToSink(t *testing.T) {
	f, translator := newTestField(t, "Border")
	f.SetValue(`{"R":"300","G":"0","B":"0"}`)

	collector := NewValidationCollector()
	assert.False(t, f.Validate(collector))
	require.Len(t, collector.Errors(), 1)
	assert.Equal(t, ValidationError{
		FieldName:   "Border",
		Message:     "Invalid RGB value",
		MessageType: "validation",
	}, collector.Errors()[0])
	assert.Contains(t, translator.Calls, "ERR_INVALID_RGB_VALUE")
	assert.Equal(t, `{"R":"300","G":"0","B":"0"}`, f.Value())
}

func TestColorPickerField_ValidateHex(t *testing.T) {
	f, _ := newTestField(t, "Accent")
	f.SetMode(colortypes.ModeHEX)

	require.NoError(t, f.SetSubmittedValue(colortypes.HexSubmission("#ABCDE")))
	collector := NewValidationCollector()
	assert.False(t, f.Validate(collector))
	require.Len(t, collector.Errors(), 1)
	assert.Equal(t, "Invalid hex value", collector.Errors()[0].Message)

	require.NoError(t, f.SetSubmittedValue(colortypes.HexSubmission("#ABCDEF")))
	assert.True(t, f.Validate(NewValidationCollector()))

	assert.False(t, f.SetValue("#1").Validate(nil))
}

func TestColorPickerField_LenientDecode(t *testing.T) {
	f, _ := newTestField(t, "Background")
	f.SetValue("not-json")

	assert.Nil(t, f.Decoded())
	assert.True(t, f.Validate(NewValidationCollector()))
}

func TestColorPickerField_Payload(t *testing.T) {
	f, _ := newTestField(t, "Background")
	f.SetID("bg").SetValue(`{"R":"73","G":"128","B":"140"}`)

	payload := f.Payload()
	assert.Equal(t, "bg", payload.ID)
	assert.Equal(t, "Background", payload.Name)
	require.NotNil(t, payload.Value)
	assert.Equal(t, f.Value(), *payload.Value)
	assert.Equal(t, "Add RGB color values", payload.I18N["ADD_RGB_VALUES"])
	assert.True(t, payload.ShowCheckbox)

	data, err := f.DisableCheckbox().PayloadJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(data), &decoded))
	assert.Equal(t, "rgb", decoded["mode"])
	assert.Equal(t, false, decoded["showCheckbox"])
	assert.Equal(t, `{"R":"73","G":"128","B":"140"}`, decoded["value"])
}

type recordingPayloads struct {
	*services.PayloadService
	jsonCalls int
	err       error
}

func (r *recordingPayloads) BuildJSON(fieldID, fieldName, storedValue string, mode colortypes.ColorMode, showCheckbox bool, translator colortypes.Translator) (string, error) {
	r.jsonCalls++
	if r.err != nil {
		return "", r.err
	}
	return r.PayloadService.BuildJSON(fieldID, fieldName, storedValue, mode, showCheckbox, translator)
}

func TestColorPickerField_PayloadJSONDelegatesToBuilder(t *testing.T) {
	codec := services.NewColorCodecService()
	require.NoError(t, codec.Initialize())
	payloads := &recordingPayloads{PayloadService: services.NewPayloadService()}
	require.NoError(t, payloads.Initialize())

	f := New("Accent", codec, payloads, nil).SetMode(colortypes.ModeHEX).SetID("accent").SetValue("#4A808C")

	data, err := f.PayloadJSON()
	require.NoError(t, err)
	assert.Equal(t, 1, payloads.jsonCalls)

	expected, err := payloads.PayloadService.BuildJSON("accent", "Accent", "#4A808C", colortypes.ModeHEX, true, nil)
	require.NoError(t, err)
	assert.JSONEq(t, expected, data)

	payloads.err = errors.New("encoder unavailable")
	_, err = f.PayloadJSON()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payload for Accent")
	assert.ErrorIs(t, err, payloads.err)
}
