package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorpicker/internal/testutils"
	"colorpicker/pkg/colortypes"
)

const batchDocument = `fields:
  - name: Background
    value: '{"R":" 73 ","G":"128","B":"140"}'
  - name: Border
    mode: rgb
    value: '{"R":"300","G":"0","B":"0"}'
  - name: Legacy
    value: '{"R":12,"G":34,"B":56}'
  - name: Accent
    mode: hex
    value: '#ABCDE'
  - name: Broken
    value: not-json
`

func newTestBatch(t *testing.T) *BatchService {
	t.Helper()
	service := NewBatchService(newTestCodec(t))
	require.NoError(t, service.Initialize())
	return service
}

func TestBatchService_Initialize(t *testing.T) {
	assert.Error(t, NewBatchService(nil).Initialize())
	assert.Equal(t, "batch", NewBatchService(nil).Name())
}

func TestBatchService_ParseDocument(t *testing.T) {
	service := newTestBatch(t)

	doc, err := service.ParseDocument([]byte(batchDocument))
	require.NoError(t, err)
	require.Len(t, doc.Fields, 5)
	assert.Equal(t, colortypes.ModeRGB, doc.Fields[0].Mode)
	assert.Equal(t, colortypes.ModeHEX, doc.Fields[3].Mode)

	_, err = service.ParseDocument([]byte("fields:\n  - mode: rgb\n"))
	assert.Error(t, err)

	_, err = service.ParseDocument([]byte("fields:\n  - name: X\n    mode: cmyk\n"))
	assert.Error(t, err)
}

func TestBatchService_Process(t *testing.T) {
	service := newTestBatch(t)
	translator := testutils.NewMockTranslator(map[string]string{
		"ERR_INVALID_RGB_VALUE": "bad rgb",
		"ERR_INVALID_HEX_VALUE": "bad hex",
	})

	doc, err := service.ParseDocument([]byte(batchDocument))
	require.NoError(t, err)

	results, err := service.Process(doc, translator)
	require.NoError(t, err)
	require.Len(t, results, 5)

	background := results[0]
	assert.True(t, background.Outcome.IsValid)
	assert.True(t, background.Changed)
	assert.Equal(t, `{"R":"73","G":"128","B":"140"}`, background.Canonical)
	assert.NotEmpty(t, background.Diff)

	border := results[1]
	assert.False(t, border.Outcome.IsValid)
	assert.Equal(t, "R", border.Outcome.Channel)
	assert.Equal(t, "bad rgb", border.Message)
	assert.False(t, border.Changed)

	legacy := results[2]
	assert.True(t, legacy.Outcome.IsValid)
	assert.Equal(t, `{"R":"12","G":"34","B":"56"}`, legacy.Canonical)

	accent := results[3]
	assert.Equal(t, colortypes.InvalidHexValue, accent.Outcome.Kind)
	assert.Equal(t, "bad hex", accent.Message)
	assert.Equal(t, "#ABCDE", accent.Canonical)

	broken := results[4]
	assert.True(t, broken.Outcome.IsValid)
	assert.False(t, broken.Changed)
	assert.Equal(t, "not-json", broken.Canonical)
}

func TestBatchService_NotInitialized(t *testing.T) {
	_, err := NewBatchService(NewColorCodecService()).Process(&BatchDocument{}, nil)
	assert.Error(t, err)
}

func TestBatchService_NormalizedRoundTrip(t *testing.T) {
	service := newTestBatch(t)

	doc, err := service.ParseDocument([]byte(batchDocument))
	require.NoError(t, err)
	results, err := service.Process(doc, nil)
	require.NoError(t, err)

	normalized := service.Normalized(doc, results)
	assert.Equal(t, `{"R":" 73 ","G":"128","B":"140"}`, doc.Fields[0].Value, "original document is untouched")

	data, err := service.MarshalDocument(normalized)
	require.NoError(t, err)

	reparsed, err := service.ParseDocument(data)
	require.NoError(t, err)
	require.Len(t, reparsed.Fields, 5)
	assert.Equal(t, `{"R":"73","G":"128","B":"140"}`, reparsed.Fields[0].Value)
	assert.Equal(t, colortypes.ModeHEX, reparsed.Fields[3].Mode)

	again, err := service.Process(reparsed, nil)
	require.NoError(t, err)
	for _, result := range again {
		assert.False(t, result.Changed, "field %s", result.Entry.Name)
	}
}

func TestBatchService_LoadDocument(t *testing.T) {
	service := newTestBatch(t)
	path := testutils.NewFileHelpers().CreateTempFile(t, "fields.yaml", batchDocument)

	doc, err := service.LoadDocument(path)
	require.NoError(t, err)
	assert.Len(t, doc.Fields, 5)

	_, err = service.LoadDocument(path + ".missing")
	assert.Error(t, err)
}

func TestBatchService_InvalidValuesAreNotRewritten(t *testing.T) {
	service := newTestBatch(t)

	doc, err := service.ParseDocument([]byte(`fields:
  - name: Nulled
    value: '{"R":null,"G":" 1","B":"2"}'
`))
	require.NoError(t, err)

	results, err := service.Process(doc, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Outcome.IsValid)
	assert.Equal(t, "R", results[0].Outcome.Channel)
	assert.False(t, results[0].Changed)
	assert.Equal(t, `{"R":null,"G":" 1","B":"2"}`, results[0].Canonical)
}
