// Package field provides the color picker form field.
//
// ColorPickerField is a free-standing adapter between a host form abstraction and the
// color codec: it owns the field configuration and the stored string, and delegates
// encoding, decoding, validation and payload assembly to its collaborators.
//
// In RGB mode the stored value is a JSON string such as {"R":"73","G":"128","B":"140"}.
// In HEX mode it is a bare string such as #4A808C.
package field

import (
	"fmt"

	"github.com/google/uuid"

	"colorpicker/internal/logger"
	"colorpicker/pkg/colortypes"
)

// Codec decodes, encodes and validates stored values.
type Codec interface {
	Decode(stored string, mode colortypes.ColorMode) *colortypes.ColorValue
	EncodeSubmission(submission colortypes.Submission, existing string, mode colortypes.ColorMode) (string, error)
	Validate(stored string, mode colortypes.ColorMode, fieldName string) colortypes.ValidationOutcome
}

// PayloadBuilder assembles the frontend payload.
type PayloadBuilder interface {
	Build(fieldID, fieldName, storedValue string, mode colortypes.ColorMode, showCheckbox bool, translator colortypes.Translator) colortypes.Payload
	BuildJSON(fieldID, fieldName, storedValue string, mode colortypes.ColorMode, showCheckbox bool, translator colortypes.Translator) (string, error)
}

// ColorPickerField is a form field holding a single stored color value.
type ColorPickerField struct {
	id           string
	name         string
	mode         colortypes.ColorMode
	showCheckbox bool
	value        string

	codec      Codec
	payloads   PayloadBuilder
	translator colortypes.Translator
}

// New creates a field named name in RGB mode with the opt-in checkbox shown.
func New(name string, codec Codec, payloads PayloadBuilder, translator colortypes.Translator) *ColorPickerField {
	return &ColorPickerField{
		id:           "colorpicker-" + uuid.New().String(),
		name:         name,
		mode:         colortypes.ModeRGB,
		showCheckbox: true,
		codec:        codec,
		payloads:     payloads,
		translator:   translator,
	}
}

// ID returns the field's element id.
func (f *ColorPickerField) ID() string {
	return f.id
}

// SetID overrides the generated element id.
func (f *ColorPickerField) SetID(id string) *ColorPickerField {
	f.id = id
	return f
}

// Name returns the form field name.
func (f *ColorPickerField) Name() string {
	return f.name
}

// Mode returns the color picker mode.
func (f *ColorPickerField) Mode() colortypes.ColorMode {
	return f.mode
}

// SetMode changes the color picker mode.
func (f *ColorPickerField) SetMode(mode colortypes.ColorMode) *ColorPickerField {
	f.mode = mode
	return f
}

// ShowCheckbox reports whether the picker is hidden behind an "Add RGB color values" checkbox.
func (f *ColorPickerField) ShowCheckbox() bool {
	return f.showCheckbox
}

// DisableCheckbox shows the color picker instantly, without the opt-in checkbox.
func (f *ColorPickerField) DisableCheckbox() *ColorPickerField {
	f.showCheckbox = false
	return f
}

// Value returns the stored string.
func (f *ColorPickerField) Value() string {
	return f.value
}

// SetValue replaces the stored string, e.g. when loading persisted data.
func (f *ColorPickerField) SetValue(value string) *ColorPickerField {
	f.value = value
	return f
}

// SetSubmittedValue encodes submitted input into the stored string.
func (f *ColorPickerField) SetSubmittedValue(submission colortypes.Submission) error {
	stored, err := f.codec.EncodeSubmission(submission, f.value, f.mode)
	if err != nil {
		return fmt.Errorf("field %s: %w", f.name, err)
	}
	f.value = stored
	return nil
}

// Decoded returns the structured form of the stored value, or nil when nothing usable is stored.
func (f *ColorPickerField) Decoded() *colortypes.ColorValue {
	return f.codec.Decode(f.value, f.mode)
}

// Validate checks the stored value and reports a failure to validator.
// It returns whether the value is valid.
func (f *ColorPickerField) Validate(validator colortypes.Validator) bool {
	outcome := f.codec.Validate(f.value, f.mode, f.name)
	if outcome.IsValid {
		return true
	}

	message := outcome.Kind.MessageKey()
	if f.translator != nil {
		message = f.translator.Translate(message)
	}
	logger.Debug("Field failed validation", "field", f.name, "mode", f.mode, "error", outcome.Kind)
	if validator != nil {
		validator.ValidationError(outcome.Field, message, colortypes.ValidationMessageType)
	}
	return false
}

// Payload returns the data handed to the rendering frontend.
func (f *ColorPickerField) Payload() colortypes.Payload {
	return f.payloads.Build(f.id, f.name, f.value, f.mode, f.showCheckbox, f.translator)
}

// PayloadJSON returns the frontend payload serialized as JSON.
func (f *ColorPickerField) PayloadJSON() (string, error) {
	data, err := f.payloads.BuildJSON(f.id, f.name, f.value, f.mode, f.showCheckbox, f.translator)
	if err != nil {
		return "", fmt.Errorf("payload for %s: %w", f.name, err)
	}
	return data, nil
}
