package services

import (
	"encoding/json"
	"fmt"

	"colorpicker/pkg/colortypes"
)

// FrontendLabelKeys lists the label keys shipped to the frontend with every payload.
var FrontendLabelKeys = []string{
	"ADD_RGB_VALUES",
}

// PayloadService assembles the data handed to the rendering frontend.
// It performs no validation or encoding; the stored value is passed through raw.
type PayloadService struct {
	initialized bool
}

// NewPayloadService creates a new PayloadService instance.
func NewPayloadService() *PayloadService {
	return &PayloadService{
		initialized: false,
	}
}

// Name returns the service name "payload" for registration.
func (p *PayloadService) Name() string {
	return "payload"
}

// Initialize marks the service ready for use.
func (p *PayloadService) Initialize() error {
	p.initialized = true
	return nil
}

// Build assembles the frontend payload. An empty stored value becomes a null value.
func (p *PayloadService) Build(fieldID, fieldName, storedValue string, mode colortypes.ColorMode, showCheckbox bool, translator colortypes.Translator) colortypes.Payload {
	payload := colortypes.Payload{
		ID:           fieldID,
		Name:         fieldName,
		I18N:         p.Labels(translator),
		Mode:         mode,
		ShowCheckbox: showCheckbox,
	}
	if storedValue != "" {
		value := storedValue
		payload.Value = &value
	}
	return payload
}

// BuildJSON assembles the payload and serializes it for the frontend.
func (p *PayloadService) BuildJSON(fieldID, fieldName, storedValue string, mode colortypes.ColorMode, showCheckbox bool, translator colortypes.Translator) (string, error) {
	payload := p.Build(fieldID, fieldName, storedValue, mode, showCheckbox, translator)
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}
	return string(data), nil
}

// Labels resolves every frontend label key through translator.
func (p *PayloadService) Labels(translator colortypes.Translator) map[string]string {
	labels := make(map[string]string, len(FrontendLabelKeys))
	for _, key := range FrontendLabelKeys {
		if translator == nil {
			labels[key] = key
			continue
		}
		labels[key] = translator.Translate(key)
	}
	return labels
}
