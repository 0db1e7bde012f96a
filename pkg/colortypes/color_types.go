// Package colortypes defines the shared data structures of the color picker field.
// This file contains the color mode, the channel triple and the decoded/submitted value shapes.
package colortypes

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ColorMode selects which stored representation and which validation rules a field uses.
// It is set once per field at configuration time.
type ColorMode int

const (
	// ModeRGB stores the color as a JSON object with R, G and B channel strings.
	ModeRGB ColorMode = iota
	// ModeHEX stores the color as a bare 7-character string, e.g. "#4A808C".
	ModeHEX
)

// String returns the wire name of the mode ("rgb" or "hex").
func (m ColorMode) String() string {
	switch m {
	case ModeRGB:
		return "rgb"
	case ModeHEX:
		return "hex"
	default:
		return fmt.Sprintf("ColorMode(%d)", int(m))
	}
}

// ParseColorMode converts a mode name into a ColorMode. Matching is case-insensitive.
func ParseColorMode(name string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rgb":
		return ModeRGB, nil
	case "hex":
		return ModeHEX, nil
	default:
		return ModeRGB, fmt.Errorf("unknown color mode '%s' (expected rgb or hex)", name)
	}
}

// MarshalJSON encodes the mode as its wire name.
func (m ColorMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes a mode from its wire name.
func (m *ColorMode) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	mode, err := ParseColorMode(name)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// MarshalYAML encodes the mode as its wire name.
func (m ColorMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// UnmarshalYAML decodes a mode from a YAML scalar.
func (m *ColorMode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	mode, err := ParseColorMode(name)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Channel keys, in storage order.
const (
	ChannelR = "R"
	ChannelG = "G"
	ChannelB = "B"
)

// ChannelKeys lists the channel keys in R, G, B order.
var ChannelKeys = []string{ChannelR, ChannelG, ChannelB}

// RawChannelTriple holds the three channel strings of an RGB value.
// Values may be empty and are not validated. Field order keeps the JSON key order R, G, B.
type RawChannelTriple struct {
	R string `json:"R"`
	G string `json:"G"`
	B string `json:"B"`
}

// ChannelEntry is a single (key, value) pair of a triple.
type ChannelEntry struct {
	Key   string
	Value string
}

// Channels returns the entries of the triple in R, G, B order.
func (t RawChannelTriple) Channels() []ChannelEntry {
	return []ChannelEntry{
		{Key: ChannelR, Value: t.R},
		{Key: ChannelG, Value: t.G},
		{Key: ChannelB, Value: t.B},
	}
}

// Map applies fn to every channel value and returns the resulting triple.
func (t RawChannelTriple) Map(fn func(string) string) RawChannelTriple {
	return RawChannelTriple{R: fn(t.R), G: fn(t.G), B: fn(t.B)}
}

// TripleFromForm builds a triple from submitted form values keyed R, G and B.
// An empty submission yields nil. Missing keys default to the empty string.
func TripleFromForm(values map[string]string) *RawChannelTriple {
	if len(values) == 0 {
		return nil
	}
	return &RawChannelTriple{
		R: values[ChannelR],
		G: values[ChannelG],
		B: values[ChannelB],
	}
}

// ColorValue is the decoded form of a stored value.
// Channels is set in RGB mode, Hex in HEX mode.
type ColorValue struct {
	Mode     ColorMode
	Channels RawChannelTriple
	Hex      string
}

// Submission is the raw input of a form submission.
// RGB submissions carry Channels (nil means nothing was submitted), HEX submissions carry Hex.
type Submission struct {
	Channels *RawChannelTriple
	Hex      string
}

// RGBSubmission wraps a channel triple as a submission.
func RGBSubmission(triple *RawChannelTriple) Submission {
	return Submission{Channels: triple}
}

// HexSubmission wraps a hex string as a submission.
func HexSubmission(hex string) Submission {
	return Submission{Hex: hex}
}
