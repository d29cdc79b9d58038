package text

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/de-tools/data-explain/pkg/models/domain"
	"github.com/de-tools/data-explain/pkg/services/report"
	"github.com/de-tools/data-explain/pkg/services/report/reporttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, opts report.Options, e *domain.Explanation) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewReportBuilder(opts).BuildReport(context.Background(), e, &buf))
	return buf.String()
}

func assertInOrder(t *testing.T, out string, parts ...string) {
	t.Helper()
	pos := 0
	for _, p := range parts {
		idx := strings.Index(out[pos:], p)
		require.GreaterOrEqual(t, idx, 0, "%q not found after offset %d in:\n%s", p, pos, out)
		pos += idx + len(p)
	}
}

func TestBuildReport_SingleDataScenario(t *testing.T) {
	// Given
	e := reporttest.Explanation(t, reporttest.MoneyChunk(t))

	// When
	out := render(t, report.DefaultOptions(), e)

	// Then
	assertInOrder(t, out,
		"Date created: Mar 5, 2024 14:30:00\n",
		"Owner: ops-team\n",
		"Language: en\n",
		"Country: US\n",
		"Title: Quarterly review\n",
		"\n",
		"Context: ERROR\n",
		"Group: g1\n",
		"Rule: r1\n",
		"Tags: tag1 tag2\n",
		"money [EUR]",
		"1700.0",
	)
}

func TestBuildReport_OmitsAbsentChunkHeaderFields(t *testing.T) {
	data, err := domain.NewSingleData(domain.MustDimension("money", "EUR"), 1700.0)
	require.NoError(t, err)
	c, err := domain.NewChunk(domain.ContextError, "", "r1", []string{"tag1"}, data)
	require.NoError(t, err)

	out := render(t, report.DefaultOptions(), reporttest.Explanation(t, c))

	assert.NotContains(t, out, "Group:")
	assertInOrder(t, out, "Context: ERROR\n", "Rule: r1\n", "Tags: tag1\n", "money [EUR]")
}

func TestBuildReport_HeadersDisabled(t *testing.T) {
	opts := report.DefaultOptions()
	opts.InsertHeaders = false

	out := render(t, opts, reporttest.Explanation(t, reporttest.MoneyChunk(t)))

	assert.NotContains(t, out, "Context:")
	assert.NotContains(t, out, "Tags:")
	assertInOrder(t, out, "Owner: ops-team\n", "money [EUR]", "1700.0")
}

func TestBuildReport_AllVariants(t *testing.T) {
	dir := t.TempDir()
	reporttest.WritePNG(t, filepath.Join(dir, "chart.png"))
	opts := report.DefaultOptions()
	opts.Images = report.NewImageResolver(dir)

	out := render(t, opts, reporttest.Mixed(t, "chart.png"))

	assert.NotContains(t, out, "Language: en")
	assert.NotContains(t, out, "Country:")
	assert.NotContains(t, out, "Title:")
	assertInOrder(t, out,
		"Date created: 05.03.2024 14:30:00\n",
		"Context: NEUTRAL\n", "Sales were stable.\n",
		"Context: POSITIVE\n", "Group: charts\n", "Image: chart.png\n", "Caption: Monthly chart\n",
		"Context: WARNING\n", "Rule: r2\n", "Tags: people\n", "height [cm]", "180", "175", "190",
		"Context: 7\n", "day", "temp [C]", "02.01.2024", "10.5", "03.01.2024", "11.0",
		"Context: VERY_POSITIVE\n", "region", "sales [pcs]", "target met", "north", "3", "true",
		"Context: ERROR\n", "money [EUR]", "1700.0",
	)
}

func TestBuildReport_UnresolvedImage(t *testing.T) {
	opts := report.DefaultOptions()
	opts.Images = report.NewImageResolver(t.TempDir())

	err := NewReportBuilder(opts).BuildReport(context.Background(), reporttest.Mixed(t, "missing.png"), &bytes.Buffer{})

	explErr := reporttest.RequireKind(t, err, domain.ErrResource)
	assert.Contains(t, explErr.Error(), "missing.png")
}

func TestBuildReport_SinkFailure(t *testing.T) {
	err := NewReportBuilder(report.DefaultOptions()).
		BuildReport(context.Background(), reporttest.Explanation(t, reporttest.MoneyChunk(t)), reporttest.FailingWriter{})

	reporttest.RequireKind(t, err, domain.ErrRender)
	assert.True(t, errors.Is(err, reporttest.ErrWrite))
}

func TestBuildReport_RequiresArguments(t *testing.T) {
	b := NewReportBuilder(report.DefaultOptions())

	err := b.BuildReport(context.Background(), nil, &bytes.Buffer{})
	reporttest.RequireKind(t, err, domain.ErrMissingArgument)

	err = b.BuildReport(context.Background(), reporttest.Explanation(t), nil)
	reporttest.RequireKind(t, err, domain.ErrMissingArgument)
}

func TestBuildReportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content that should disappear"), 0o644))

	err := NewReportBuilder(report.DefaultOptions()).
		BuildReportFile(context.Background(), reporttest.Explanation(t, reporttest.MoneyChunk(t)), path)

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Date created:"))
	assert.NotContains(t, string(data), "stale content")
}

func TestChunkBuilderFactory_CachesPerVariant(t *testing.T) {
	f := NewChunkBuilderFactory()
	money := reporttest.MoneyChunk(t)
	other := reporttest.MoneyChunk(t)
	text, err := domain.NewChunk(domain.ContextNeutral, "", "", nil, domain.Text("x"))
	require.NoError(t, err)

	first, err := f.ReportChunkBuilder(money)
	require.NoError(t, err)
	second, err := f.ReportChunkBuilder(other)
	require.NoError(t, err)
	textBuilder, err := f.ReportChunkBuilder(text)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.IsType(t, &DataChunkBuilder{}, first)
	assert.IsType(t, &TextChunkBuilder{}, textBuilder)

	_, err = f.ReportChunkBuilder(&domain.Chunk{})
	reporttest.RequireKind(t, err, domain.ErrUnknownSelector)
}

func TestReportBuilder_FactoryIsReusedAcrossRuns(t *testing.T) {
	b := NewReportBuilder(report.DefaultOptions())
	e := reporttest.Explanation(t, reporttest.MoneyChunk(t))

	var first, second bytes.Buffer
	require.NoError(t, b.BuildReport(context.Background(), e, &first))
	require.NoError(t, b.BuildReport(context.Background(), e, &second))

	assert.Equal(t, first.String(), second.String())
}
