package colortypes

// ErrorKind identifies why a stored value failed validation.
type ErrorKind int

const (
	// NoError is the kind of a valid outcome.
	NoError ErrorKind = iota
	// InvalidChannelValue marks a non-empty RGB channel that is non-numeric or outside [-1, 255].
	InvalidChannelValue
	// InvalidHexValue marks a present hex value that is not exactly 7 characters long.
	InvalidHexValue
)

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case InvalidChannelValue:
		return "InvalidChannelValue"
	case InvalidHexValue:
		return "InvalidHexValue"
	default:
		return "NoError"
	}
}

// MessageKey returns the translation key of the user-facing error message.
func (k ErrorKind) MessageKey() string {
	switch k {
	case InvalidChannelValue:
		return "ERR_INVALID_RGB_VALUE"
	case InvalidHexValue:
		return "ERR_INVALID_HEX_VALUE"
	default:
		return ""
	}
}

// ValidationMessageType is the severity tag reported to a Validator for every failure.
const ValidationMessageType = "validation"

// ValidationOutcome is the result of validating a stored value.
type ValidationOutcome struct {
	IsValid bool
	Kind    ErrorKind
	// Field is the form field name the failure is attributed to.
	Field string
	// Channel is the offending channel key (RGB mode only).
	Channel string
}

// Valid returns a successful outcome.
func Valid() ValidationOutcome {
	return ValidationOutcome{IsValid: true, Kind: NoError}
}

// Invalid returns a failed outcome attributed to field.
func Invalid(kind ErrorKind, field string) ValidationOutcome {
	return ValidationOutcome{IsValid: false, Kind: kind, Field: field}
}

// WithChannel records the offending channel on a failed outcome.
func (o ValidationOutcome) WithChannel(channel string) ValidationOutcome {
	o.Channel = channel
	return o
}
