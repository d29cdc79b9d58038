package adapters

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/data-explain/pkg/models/api"
	"github.com/de-tools/data-explain/pkg/models/domain"
	"github.com/de-tools/data-explain/pkg/services/chunk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `owner: ops-team
language: de
country: DE
title: Weekly
chunks:
  - type: text
    text: Sales were stable.
  - type: image
    context: POSITIVE
    group: charts
    image:
      url: chart.png
      caption: Monthly chart
  - type: data
    context: -20
    group: g1
    rule: r1
    tags: [tag1, tag2]
    data:
      kind: single
      dimensions:
        - name: money
          unit: EUR
      value: 1700.0
  - type: data
    context: 7
    data:
      kind: two_dim
      dimensions:
        - name: day
          type: date
        - name: temp
          unit: C
      values:
        - ["2024-01-02", 10.5]
        - ["2024-01-03", 11.0]
`

func requireKind(t *testing.T, err error, kind domain.ErrorKind) {
	t.Helper()
	var explErr *domain.ExplanationError
	require.True(t, errors.As(err, &explErr), "expected ExplanationError, got %v", err)
	assert.Equal(t, kind, explErr.Kind)
}

func TestLoadExplanationDoc_YAML(t *testing.T) {
	// Given
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	// When
	doc, err := LoadExplanationDoc(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "ops-team", doc.Owner)
	assert.Equal(t, "de", doc.Language)
	require.Len(t, doc.Chunks, 4)
	assert.Equal(t, "-20", doc.Chunks[2].Context)
	assert.Equal(t, []string{"tag1", "tag2"}, doc.Chunks[2].Tags)
	require.NotNil(t, doc.Chunks[1].Image)
	assert.Equal(t, "chart.png", doc.Chunks[1].Image.URL)
	assert.Equal(t, api.DataTwoDim, doc.Chunks[3].Data.Kind)
	assert.Equal(t, "date", doc.Chunks[3].Data.Dimensions[0].Type)
}

func TestLoadExplanationDoc_MissingFile(t *testing.T) {
	_, err := LoadExplanationDoc(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestDecodeExplanationDoc_JSON(t *testing.T) {
	body := `{"owner":"api","language":"en","chunks":[{"type":"data","context":"WARNING",
"data":{"kind":"one_dim","dimensions":[{"name":"height","unit":"cm"}],"values":[180,175]}}]}`

	doc, err := DecodeExplanationDoc(strings.NewReader(body), "json")

	require.NoError(t, err)
	assert.Equal(t, "api", doc.Owner)
	require.Len(t, doc.Chunks, 1)
	assert.Equal(t, "WARNING", doc.Chunks[0].Context)
	assert.Len(t, doc.Chunks[0].Data.Values, 2)
}

func TestDecodeExplanationDoc_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		format string
	}{
		{name: "unsupported format", body: `{}`, format: "ini"},
		{name: "malformed json", body: `{"owner":`, format: "json"},
		{name: "unknown chunk type", body: `{"chunks":[{"type":"video"}]}`, format: "json"},
		{name: "image without url", body: `{"chunks":[{"type":"image","image":{"caption":"c"}}]}`, format: "json"},
		{name: "data without section", body: `{"chunks":[{"type":"data"}]}`, format: "json"},
		{name: "text with args", body: `{"chunks":[{"type":"text","text":"x","args":[1]}]}`, format: "json"},
		{name: "too many dimensions", body: `{"chunks":[{"type":"data","data":{"kind":"single","dimensions":[{"name":"a"},{"name":"b"},{"name":"c"},{"name":"d"}]}}]}`, format: "json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeExplanationDoc(strings.NewReader(tt.body), tt.format)

			assert.Error(t, err)
		})
	}
}

func TestMapExplanationDocToDomain(t *testing.T) {
	// Given
	doc, err := DecodeExplanationDoc(strings.NewReader(sampleYAML), "yaml")
	require.NoError(t, err)

	// When
	e, err := MapExplanationDocToDomain(doc, chunk.NewFactory(nil))

	// Then
	require.NoError(t, err)
	assert.Equal(t, "Weekly", e.Title())
	assert.Equal(t, "de-DE", e.Locale().String())
	chunks := e.Chunks()
	require.Len(t, chunks, 4)

	assert.Equal(t, domain.ContextNeutral, chunks[0].Context())
	assert.Equal(t, domain.Text("Sales were stable."), chunks[0].Content())

	assert.Equal(t, domain.ContextPositive, chunks[1].Context())
	assert.Equal(t, &domain.ImageData{URL: "chart.png", Caption: "Monthly chart"}, chunks[1].Content())

	assert.Equal(t, domain.ContextError, chunks[2].Context())
	single, ok := chunks[2].Content().(*domain.SingleData)
	require.True(t, ok)
	assert.Equal(t, "money [EUR]", single.Dimension().Header())
	assert.Equal(t, 1700.0, single.Value())

	assert.Equal(t, domain.Context(7), chunks[3].Context())
	two, ok := chunks[3].Content().(*domain.TwoDimData)
	require.True(t, ok)
	require.Len(t, two.Values(), 2)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), two.Values()[0].Value1())
	assert.Equal(t, 10.5, two.Values()[0].Value2())
}

func TestMapExplanationDocToDomain_Errors(t *testing.T) {
	dim := []api.DimensionDoc{{Name: "v"}}
	tests := []struct {
		name  string
		chunk api.ChunkDoc
		kind  domain.ErrorKind
	}{
		{
			name:  "unknown context",
			chunk: api.ChunkDoc{Type: "text", Context: "LOUD", Text: "x"},
			kind:  domain.ErrUnknownSelector,
		},
		{
			name:  "text without content",
			chunk: api.ChunkDoc{Type: "text"},
			kind:  domain.ErrMissingArgument,
		},
		{
			name: "mixed value types",
			chunk: api.ChunkDoc{Type: "data", Data: &api.DataDoc{
				Kind: api.DataOneDim, Dimensions: dim, Values: []any{1, "two"},
			}},
			kind: domain.ErrHomogeneity,
		},
		{
			name: "dimension count",
			chunk: api.ChunkDoc{Type: "data", Data: &api.DataDoc{
				Kind: api.DataTwoDim, Dimensions: dim, Values: []any{[]any{1, 2}},
			}},
			kind: domain.ErrMissingArgument,
		},
		{
			name: "short row",
			chunk: api.ChunkDoc{Type: "data", Data: &api.DataDoc{
				Kind: api.DataTwoDim, Dimensions: []api.DimensionDoc{{Name: "a"}, {Name: "b"}}, Values: []any{[]any{1}},
			}},
			kind: domain.ErrWrongVariant,
		},
		{
			name: "bad date",
			chunk: api.ChunkDoc{Type: "data", Data: &api.DataDoc{
				Kind: api.DataSingle, Dimensions: []api.DimensionDoc{{Name: "day", Type: "date"}}, Value: "yesterday",
			}},
			kind: domain.ErrWrongVariant,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := api.ExplanationDoc{Owner: "o", Chunks: []api.ChunkDoc{tt.chunk}}

			_, err := MapExplanationDocToDomain(doc, chunk.NewFactory(nil))

			requireKind(t, err, tt.kind)
			assert.Contains(t, err.Error(), "chunk 0")
		})
	}
}
