package services

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/sergi/go-diff/diffmatchpatch"
	"gopkg.in/yaml.v3"

	"colorpicker/internal/logger"
	"colorpicker/pkg/colortypes"
)

// BatchDocument is a YAML document of stored field values.
type BatchDocument struct {
	Fields []BatchEntry `yaml:"fields"`
}

// BatchEntry is one stored field value. Mode defaults to rgb.
type BatchEntry struct {
	Name  string               `yaml:"name"`
	Mode  colortypes.ColorMode `yaml:"mode"`
	Value string               `yaml:"value"`
}

// BatchResult is the outcome of checking and normalizing one entry.
type BatchResult struct {
	Entry   BatchEntry
	Outcome colortypes.ValidationOutcome
	// Message is the translated failure message, empty when valid.
	Message string
	// Canonical is the stored value re-encoded through the submission path.
	Canonical string
	Changed   bool
	// Diff renders the change from Value to Canonical, empty when unchanged.
	Diff string
}

// BatchService validates and normalizes many stored values at once.
type BatchService struct {
	initialized bool
	codec       *ColorCodecService
	differ      *diffmatchpatch.DiffMatchPatch
	log         *log.Logger
}

// NewBatchService creates a BatchService over codec.
func NewBatchService(codec *ColorCodecService) *BatchService {
	return &BatchService{
		initialized: false,
		codec:       codec,
		differ:      diffmatchpatch.New(),
		log:         logger.NewStyledLogger("Batch"),
	}
}

// Name returns the service name "batch" for registration.
func (b *BatchService) Name() string {
	return "batch"
}

// Initialize prepares the service.
func (b *BatchService) Initialize() error {
	if b.codec == nil {
		return fmt.Errorf("batch service requires a color codec")
	}
	b.initialized = true
	return nil
}

// ParseDocument parses a YAML batch document.
func (b *BatchService) ParseDocument(data []byte) (*BatchDocument, error) {
	var doc BatchDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse batch document: %w", err)
	}
	for i, entry := range doc.Fields {
		if entry.Name == "" {
			return nil, fmt.Errorf("field %d has no name", i+1)
		}
	}
	return &doc, nil
}

// LoadDocument reads and parses a YAML batch document from path.
func (b *BatchService) LoadDocument(path string) (*BatchDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch document %s: %w", path, err)
	}
	return b.ParseDocument(data)
}

// Process validates and normalizes every entry of doc. Failure messages are resolved
// through translator.
func (b *BatchService) Process(doc *BatchDocument, translator colortypes.Translator) ([]BatchResult, error) {
	if !b.initialized {
		return nil, fmt.Errorf("batch service not initialized")
	}

	results := make([]BatchResult, 0, len(doc.Fields))
	for _, entry := range doc.Fields {
		result, err := b.processEntry(entry, translator)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", entry.Name, err)
		}
		results = append(results, result)
	}

	b.log.Debug("Batch processed", "fields", len(results))
	return results, nil
}

func (b *BatchService) processEntry(entry BatchEntry, translator colortypes.Translator) (BatchResult, error) {
	result := BatchResult{
		Entry:     entry,
		Outcome:   b.codec.Validate(entry.Value, entry.Mode, entry.Name),
		Canonical: entry.Value,
	}
	if !result.Outcome.IsValid && translator != nil {
		result.Message = translator.Translate(result.Outcome.Kind.MessageKey())
	}

	// Invalid values are reported, never rewritten.
	if entry.Mode != colortypes.ModeRGB || !result.Outcome.IsValid {
		return result, nil
	}

	decoded := b.codec.Decode(entry.Value, entry.Mode)
	if decoded == nil {
		return result, nil
	}

	canonical, err := b.codec.EncodeSubmission(colortypes.RGBSubmission(&decoded.Channels), entry.Value, entry.Mode)
	if err != nil {
		return result, err
	}
	result.Canonical = canonical
	if canonical != entry.Value {
		result.Changed = true
		result.Diff = b.differ.DiffPrettyText(b.differ.DiffMain(entry.Value, canonical, false))
		b.log.Debug("Value not canonical", "field", entry.Name)
	}
	return result, nil
}

// Normalized returns a copy of doc with every value replaced by its canonical form.
func (b *BatchService) Normalized(doc *BatchDocument, results []BatchResult) *BatchDocument {
	normalized := &BatchDocument{Fields: make([]BatchEntry, len(doc.Fields))}
	copy(normalized.Fields, doc.Fields)
	for i := range normalized.Fields {
		if i < len(results) {
			normalized.Fields[i].Value = results[i].Canonical
		}
	}
	return normalized
}

// MarshalDocument serializes doc back to YAML.
func (b *BatchService) MarshalDocument(doc *BatchDocument) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode batch document: %w", err)
	}
	return data, nil
}
