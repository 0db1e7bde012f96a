package field

// ValidationError is a failure reported by a field.
type ValidationError struct {
	FieldName   string
	Message     string
	MessageType string
}

// ValidationCollector is a validator sink that records every reported failure in order.
type ValidationCollector struct {
	errors []ValidationError
}

// NewValidationCollector creates an empty collector.
func NewValidationCollector() *ValidationCollector {
	return &ValidationCollector{}
}

// ValidationError records a failure.
func (c *ValidationCollector) ValidationError(fieldName string, message string, messageType string) {
	c.errors = append(c.errors, ValidationError{
		FieldName:   fieldName,
		Message:     message,
		MessageType: messageType,
	})
}

// Errors returns the recorded failures.
func (c *ValidationCollector) Errors() []ValidationError {
	return c.errors
}

// IsValid reports whether no failure was recorded.
func (c *ValidationCollector) IsValid() bool {
	return len(c.errors) == 0
}
