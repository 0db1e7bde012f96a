// Package testutils provides shared test data and helpers for the color picker packages.
package testutils

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"colorpicker/pkg/colortypes"
)

// TestDataGenerator provides common test data
type TestDataGenerator struct{}

// NewTestDataGenerator creates a new test data generator
func NewTestDataGenerator() *TestDataGenerator {
	return &TestDataGenerator{}
}

// ValidTriples returns triples whose channels are empty or integers in [-1, 255].
func (g *TestDataGenerator) ValidTriples() []colortypes.RawChannelTriple {
	return []colortypes.RawChannelTriple{
		{R: "73", G: "128", B: "140"},
		{R: "0", G: "0", B: "0"},
		{R: "255", G: "255", B: "255"},
		{R: "-1", G: "-1", B: "-1"},
		{R: "", G: "", B: ""},
		{R: "12", G: "", B: "200"},
		{R: "", G: "-1", B: "0"},
	}
}

// OutOfRangeValues returns integer strings outside [-1, 255].
func (g *TestDataGenerator) OutOfRangeValues() []string {
	return []string{"256", "300", "1000", "-2", "-255", strconv.Itoa(1 << 20)}
}

// WithChannel returns a valid triple with channel key set to value.
func (g *TestDataGenerator) WithChannel(key, value string) colortypes.RawChannelTriple {
	triple := colortypes.RawChannelTriple{R: "10", G: "20", B: "30"}
	switch key {
	case colortypes.ChannelR:
		triple.R = value
	case colortypes.ChannelG:
		triple.G = value
	case colortypes.ChannelB:
		triple.B = value
	}
	return triple
}

// MockTranslator resolves keys from a fixed map and echoes unknown keys.
type MockTranslator struct {
	Labels map[string]string
	Calls  []string
}

// NewMockTranslator creates a translator over labels.
func NewMockTranslator(labels map[string]string) *MockTranslator {
	return &MockTranslator{Labels: labels}
}

// Translate records the lookup and resolves key.
func (m *MockTranslator) Translate(key string) string {
	m.Calls = append(m.Calls, key)
	if value, ok := m.Labels[key]; ok {
		return value
	}
	return key
}

// FileHelpers provides utilities for working with test files
type FileHelpers struct{}

// NewFileHelpers creates a new file helpers instance
func NewFileHelpers() *FileHelpers {
	return &FileHelpers{}
}

// CreateTempFile creates a temporary file with given content
func (f *FileHelpers) CreateTempFile(t *testing.T, filename, content string) string {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, filename)

	err := os.WriteFile(filePath, []byte(content), 0644)
	require.NoError(t, err, "Should create temp file successfully")

	return filePath
}

// CreateTempDir creates a temporary directory holding files
func (f *FileHelpers) CreateTempDir(t *testing.T, files map[string]string) string {
	tmpDir := t.TempDir()

	for filename, content := range files {
		filePath := filepath.Join(tmpDir, filename)

		if dir := filepath.Dir(filePath); dir != tmpDir {
			require.NoError(t, os.MkdirAll(dir, 0755), "Should create directory %s", dir)
		}

		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644), "Should create file %s", filename)
	}

	return tmpDir
}
