package services

import (
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"colorpicker/internal/data/embedded"
	"colorpicker/internal/logger"
)

// DefaultLocale is the locale used when a key is missing from the active one.
const DefaultLocale = "en"

// translationNamespace groups the field's labels inside a language table.
const translationNamespace = "ColorPickerField"

// I18nService resolves label and error message keys from embedded YAML language tables.
type I18nService struct {
	mu           sync.RWMutex
	initialized  bool
	locale       string
	translations map[string]map[string]string
}

// NewI18nService creates a new I18nService using the given locale.
func NewI18nService(locale string) *I18nService {
	if locale == "" {
		locale = DefaultLocale
	}
	return &I18nService{
		initialized:  false,
		locale:       locale,
		translations: make(map[string]map[string]string),
	}
}

// Name returns the service name "i18n" for registration.
func (s *I18nService) Name() string {
	return "i18n"
}

// Initialize loads every embedded language table.
func (s *I18nService) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	for _, locale := range embedded.Locales() {
		table, err := loadLanguageTable(locale)
		if err != nil {
			return err
		}
		s.translations[locale] = table
	}

	if _, ok := s.translations[s.locale]; !ok {
		return fmt.Errorf("unsupported locale '%s'", s.locale)
	}

	s.initialized = true
	logger.Debug("I18nService initialized", "locale", s.locale, "locales", len(s.translations))
	return nil
}

// SetLocale switches the active locale. Unknown locales are rejected.
func (s *I18nService) SetLocale(locale string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return fmt.Errorf("i18n service not initialized")
	}
	if _, ok := s.translations[locale]; !ok {
		return fmt.Errorf("unsupported locale '%s'", locale)
	}
	s.locale = locale
	return nil
}

// Locale returns the active locale.
func (s *I18nService) Locale() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale
}

// Translate resolves key in the active locale, then the default locale.
// Keys found in neither are returned as-is.
func (s *I18nService) Translate(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if value, ok := s.translations[s.locale][key]; ok {
		return value
	}
	if value, ok := s.translations[DefaultLocale][key]; ok {
		return value
	}
	return key
}

// loadLanguageTable parses a table of the form `<locale>: {ColorPickerField: {KEY: text}}`.
func loadLanguageTable(locale string) (map[string]string, error) {
	data, err := embedded.LanguageData(locale)
	if err != nil {
		return nil, err
	}

	var document map[string]map[string]map[string]string
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("failed to parse translations for '%s': %w", locale, err)
	}

	table, ok := document[locale][translationNamespace]
	if !ok {
		return nil, fmt.Errorf("translations for '%s' have no %s section", locale, translationNamespace)
	}
	return table, nil
}
