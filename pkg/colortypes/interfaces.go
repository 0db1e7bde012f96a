// Package colortypes defines the collaborator interfaces the color picker core talks to.
// Form abstractions, validators and translation catalogs are supplied by the host environment.
package colortypes

// Service defines the interface for color picker services.
// Services are registered by name and initialized once at startup.
type Service interface {
	Name() string
	Initialize() error
}

// Validator is the sink that receives validation failures from a form field.
type Validator interface {
	ValidationError(fieldName string, message string, messageType string)
}

// Translator resolves translation keys to user-facing strings.
// Unknown keys resolve to whatever the implementation returns for them.
type Translator interface {
	Translate(key string) string
}

// Payload is the data handed to the rendering frontend, serialized as JSON.
type Payload struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Value        *string           `json:"value"`
	I18N         map[string]string `json:"i18n"`
	Mode         ColorMode         `json:"mode"`
	ShowCheckbox bool              `json:"showCheckbox"`
}
