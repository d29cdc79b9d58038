package render

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/data-explain/pkg/models/api"
	"github.com/de-tools/data-explain/pkg/models/domain"
	"github.com/de-tools/data-explain/pkg/services/i18n"
	"github.com/de-tools/data-explain/pkg/services/report"
	"github.com/de-tools/data-explain/pkg/services/report/formats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moneyDoc(language string) api.ExplanationDoc {
	return api.ExplanationDoc{
		Owner:    "ops-team",
		Language: language,
		Chunks: []api.ChunkDoc{
			{
				Type:    "data",
				Context: "ERROR",
				Group:   "g1",
				Rule:    "r1",
				Data: &api.DataDoc{
					Kind:       api.DataSingle,
					Dimensions: []api.DimensionDoc{{Name: "money", Unit: "EUR"}},
					Value:      1700.0,
				},
			},
		},
	}
}

func TestService_Render(t *testing.T) {
	// Given
	svc := NewService(formats.NewRegistry(), nil, report.DefaultOptions())
	var buf bytes.Buffer

	// When
	err := svc.Render(context.Background(), Request{Doc: moneyDoc("en"), Format: formats.Text, InsertHeaders: true}, &buf)

	// Then
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Owner: ops-team")
	assert.Contains(t, buf.String(), "Context: ERROR")
	assert.Contains(t, buf.String(), "money [EUR]")
	assert.Contains(t, buf.String(), "1700.0")
}

func TestService_RenderWithoutHeaders(t *testing.T) {
	svc := NewService(formats.NewRegistry(), nil, report.DefaultOptions())
	var buf bytes.Buffer

	err := svc.Render(context.Background(), Request{Doc: moneyDoc("en"), Format: formats.Text}, &buf)

	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "Context: ERROR")
	assert.Contains(t, buf.String(), "1700.0")
}

func TestService_LocalizesForDocumentLanguage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "explanation_de.ini"),
		[]byte("[dimension]\nmoney = Geld\n\n[unit]\nEUR = Euro\n"), 0o644))
	bundle, err := i18n.LoadBundle(dir, "")
	require.NoError(t, err)
	svc := NewService(formats.NewRegistry(), bundle, report.DefaultOptions())

	de, err := svc.Explanation(moneyDoc("de"))
	require.NoError(t, err)
	en, err := svc.Explanation(moneyDoc("en"))
	require.NoError(t, err)

	assert.Equal(t, "Geld [Euro]", de.Chunks()[0].Content().(*domain.SingleData).Dimension().Header())
	assert.Equal(t, "money [EUR]", en.Chunks()[0].Content().(*domain.SingleData).Dimension().Header())
}

func TestService_MixesLiteralAndLocalizedText(t *testing.T) {
	// Given
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "explanation_de.ini"),
		[]byte("[text]\nsales.drop = Umsatz fiel um {0} Prozent\n\n[dimension]\nmoney = Geld\n"), 0o644))
	bundle, err := i18n.LoadBundle(dir, "")
	require.NoError(t, err)
	svc := NewService(formats.NewRegistry(), bundle, report.DefaultOptions())
	doc := moneyDoc("de")
	doc.Chunks = append(doc.Chunks,
		api.ChunkDoc{Type: "text", Text: "Sales were stable."},
		api.ChunkDoc{Type: "text", Group: "sales", Rule: "drop", Args: []any{12}},
	)

	// When
	e, err := svc.Explanation(doc)

	// Then
	require.NoError(t, err)
	chunks := e.Chunks()
	require.Len(t, chunks, 3)
	assert.Equal(t, domain.Text("Sales were stable."), chunks[1].Content())
	assert.Equal(t, domain.Text("Umsatz fiel um 12 Prozent"), chunks[2].Content())
}

func TestService_LiteralTextWithoutTextTranslations(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "explanation_de.ini"),
		[]byte("[dimension]\nmoney = Geld\n"), 0o644))
	bundle, err := i18n.LoadBundle(dir, "")
	require.NoError(t, err)
	svc := NewService(formats.NewRegistry(), bundle, report.DefaultOptions())
	doc := api.ExplanationDoc{Language: "de", Chunks: []api.ChunkDoc{{Type: "text", Text: "Sales were stable."}}}
	var buf bytes.Buffer

	err = svc.Render(context.Background(), Request{Doc: doc, Format: formats.Text}, &buf)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Sales were stable.")
}

func TestService_RenderFile(t *testing.T) {
	svc := NewService(formats.NewRegistry(), nil, report.DefaultOptions())
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, svc.RenderFile(context.Background(), Request{Doc: moneyDoc("en"), Format: formats.JSON}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"1700.0"`)
}

func TestService_Errors(t *testing.T) {
	svc := NewService(formats.NewRegistry(), nil, report.DefaultOptions())
	bad := moneyDoc("en")
	bad.Chunks[0].Context = "LOUD"

	err := svc.Render(context.Background(), Request{Doc: moneyDoc("en"), Format: "docx"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, `format "docx" is not registered`)

	err = svc.Render(context.Background(), Request{Doc: bad, Format: formats.Text}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown context")
}
