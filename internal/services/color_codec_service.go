package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"colorpicker/internal/logger"
	"colorpicker/pkg/colortypes"
)

const (
	minChannelValue = -1
	maxChannelValue = 255
	hexValueLength  = 7
)

// numericPrefix matches the leading number of a channel string the way lenient integer
// conversion reads it: optional sign, digits with optional fraction, optional exponent.
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ColorCodecService decodes, encodes and validates stored color values.
// It is stateless: every operation is a pure function of its inputs and the mode.
type ColorCodecService struct {
	initialized bool
	log         *log.Logger
}

// NewColorCodecService creates a new ColorCodecService instance.
func NewColorCodecService() *ColorCodecService {
	return &ColorCodecService{
		initialized: false,
		log:         logger.NewStyledLogger("Codec"),
	}
}

// Name returns the service name "color_codec" for registration.
func (c *ColorCodecService) Name() string {
	return "color_codec"
}

// Initialize marks the service ready for use.
func (c *ColorCodecService) Initialize() error {
	c.initialized = true
	return nil
}

// Decode turns a stored string into a structured value. It returns nil when nothing
// usable is stored. Malformed RGB data degrades to nil instead of failing.
func (c *ColorCodecService) Decode(stored string, mode colortypes.ColorMode) *colortypes.ColorValue {
	switch mode {
	case colortypes.ModeRGB:
		triple := decodeRGB(stored)
		if triple == nil {
			return nil
		}
		return &colortypes.ColorValue{Mode: mode, Channels: *triple}
	case colortypes.ModeHEX:
		if stored == "" {
			return nil
		}
		return &colortypes.ColorValue{Mode: mode, Hex: stored}
	default:
		return nil
	}
}

// EncodeSubmission turns submitted input into the canonical stored string.
// An empty RGB submission leaves the existing stored value untouched.
func (c *ColorCodecService) EncodeSubmission(submission colortypes.Submission, existing string, mode colortypes.ColorMode) (string, error) {
	switch mode {
	case colortypes.ModeRGB:
		if submission.Channels == nil {
			c.log.Debug("Empty RGB submission, keeping stored value", "mode", mode)
			return existing, nil
		}
		trimmed := submission.Channels.Map(strings.TrimSpace)
		encoded, err := json.Marshal(trimmed)
		if err != nil {
			return existing, fmt.Errorf("failed to encode rgb value: %w", err)
		}
		c.log.Debug("Encoded submission", "mode", mode, "stored", string(encoded))
		return string(encoded), nil
	case colortypes.ModeHEX:
		return submission.Hex, nil
	default:
		return existing, fmt.Errorf("unsupported color mode %s", mode)
	}
}

// Validate checks a stored value against the rules of mode. Failures are attributed to
// fieldName. Absence of a value is always valid.
func (c *ColorCodecService) Validate(stored string, mode colortypes.ColorMode, fieldName string) colortypes.ValidationOutcome {
	switch mode {
	case colortypes.ModeRGB:
		return c.validateRGB(stored, fieldName)
	case colortypes.ModeHEX:
		return c.validateHex(stored, fieldName)
	default:
		return colortypes.Valid()
	}
}

func (c *ColorCodecService) validateRGB(stored string, fieldName string) colortypes.ValidationOutcome {
	for _, channel := range decodeRawChannels(stored) {
		if !isValidChannel(channel.value) {
			c.log.Debug("Invalid channel value", "field", fieldName, "channel", channel.key, "value", channel.value)
			return colortypes.Invalid(colortypes.InvalidChannelValue, fieldName).WithChannel(channel.key)
		}
	}

	return colortypes.Valid()
}

func (c *ColorCodecService) validateHex(stored string, fieldName string) colortypes.ValidationOutcome {
	if stored == "" {
		return colortypes.Valid()
	}
	if len(stored) != hexValueLength {
		c.log.Debug("Invalid hex value", "field", fieldName, "value", stored)
		return colortypes.Invalid(colortypes.InvalidHexValue, fieldName)
	}
	return colortypes.Valid()
}

// isValidChannel applies the channel rule to a raw decoded JSON value. Empty strings are
// skipped. A lenient conversion to 0 is only accepted for the literal string "0", so
// numeric 0, null, false and empty containers fail. The number must lie in [-1, 255];
// -1 is the "unset" sentinel.
func isValidChannel(value interface{}) bool {
	if value == "" {
		return true
	}
	number := channelNumber(value)
	if number == 0 && value != "0" {
		return false
	}
	return number >= minChannelValue && number <= maxChannelValue
}

// channelNumber converts a raw decoded JSON value to an integer the way a lenient
// conversion does: strings and numbers by their leading number, true as 1, non-empty
// containers as 1, everything else as 0.
func channelNumber(value interface{}) int64 {
	switch v := value.(type) {
	case string:
		return lenientInt(v)
	case json.Number:
		return lenientInt(v.String())
	case bool:
		if v {
			return 1
		}
		return 0
	case map[string]interface{}:
		if len(v) > 0 {
			return 1
		}
		return 0
	case []interface{}:
		if len(v) > 0 {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// lenientInt reads the leading number of s and truncates it toward zero.
// Leading whitespace is skipped; strings without a leading number yield 0.
func lenientInt(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	prefix := numericPrefix.FindString(s)
	if prefix == "" {
		return 0
	}

	if !strings.ContainsAny(prefix, ".eE") {
		n, err := strconv.ParseInt(prefix, 10, 64)
		if err == nil {
			return n
		}
		if !isRangeError(err) {
			return 0
		}
		if strings.HasPrefix(prefix, "-") {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !isRangeError(err) {
		return 0
	}
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

// rawChannel is one decoded channel before conversion to text.
type rawChannel struct {
	key   string
	value interface{}
}

// decodeStored parses stored JSON keeping numbers as json.Number. Empty input, invalid
// UTF-8, malformed JSON and trailing data all yield ok == false.
func decodeStored(stored string) (interface{}, bool) {
	if strings.TrimSpace(stored) == "" || !utf8.ValidString(stored) {
		return nil, false
	}

	decoder := json.NewDecoder(bytes.NewReader([]byte(stored)))
	decoder.UseNumber()

	var raw interface{}
	if err := decoder.Decode(&raw); err != nil {
		return nil, false
	}
	if decoder.More() {
		return nil, false
	}
	return raw, true
}

// decodeRawChannels returns the channels subject to validation. Objects contribute their
// R, G and B entries that are present; lists contribute every element by position.
// Scalars and empty documents contribute nothing.
func decodeRawChannels(stored string) []rawChannel {
	raw, ok := decodeStored(stored)
	if !ok {
		return nil
	}

	switch doc := raw.(type) {
	case map[string]interface{}:
		channels := make([]rawChannel, 0, len(colortypes.ChannelKeys))
		for _, key := range colortypes.ChannelKeys {
			if value, present := doc[key]; present {
				channels = append(channels, rawChannel{key: key, value: value})
			}
		}
		return channels
	case []interface{}:
		channels := make([]rawChannel, 0, len(doc))
		for i, value := range doc {
			key := strconv.Itoa(i)
			if i < len(colortypes.ChannelKeys) {
				key = colortypes.ChannelKeys[i]
			}
			channels = append(channels, rawChannel{key: key, value: value})
		}
		return channels
	default:
		return nil
	}
}

// decodeRGB parses a stored RGB JSON object for display. Anything that is not a JSON
// object yields nil.
func decodeRGB(stored string) *colortypes.RawChannelTriple {
	raw, ok := decodeStored(stored)
	if !ok {
		return nil
	}
	doc, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}

	return &colortypes.RawChannelTriple{
		R: channelText(doc[colortypes.ChannelR]),
		G: channelText(doc[colortypes.ChannelG]),
		B: channelText(doc[colortypes.ChannelB]),
	}
}

// channelText converts a decoded JSON channel to its string form. Numbers keep their
// literal text; other non-string values become empty.
func channelText(v interface{}) string {
	switch value := v.(type) {
	case string:
		return value
	case json.Number:
		return value.String()
	default:
		return ""
	}
}
