// Package reporttest holds explanation fixtures shared by the report format tests.
package reporttest

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"
	"time"

	"github.com/de-tools/data-explain/pkg/models/domain"
	"github.com/de-tools/data-explain/pkg/services/chunk"
	"github.com/stretchr/testify/require"
)

// Created is the fixed creation time of every fixture explanation.
var Created = time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

// MoneyChunk is the single-data chunk used by the header scenario:
// money [EUR] = 1700.0, context ERROR, group g1, rule r1, tags tag1 tag2.
func MoneyChunk(t *testing.T) *domain.Chunk {
	t.Helper()
	data, err := domain.NewSingleData(domain.MustDimension("money", "EUR"), 1700.0)
	require.NoError(t, err)
	c, err := domain.NewChunk(domain.ContextError, "g1", "r1", []string{"tag1", "tag2"}, data)
	require.NoError(t, err)
	return c
}

// Explanation builds an explanation with the given chunks and fixed metadata.
func Explanation(t *testing.T, chunks ...*domain.Chunk) *domain.Explanation {
	t.Helper()
	e := domain.NewExplanation("ops-team", "en", "US", "Quarterly review")
	e.SetCreated(Created)
	for _, c := range chunks {
		require.NoError(t, e.AddChunk(c))
	}
	return e
}

// Mixed builds an explanation with one chunk of every content variant.
// imageURL is used for the image chunk.
func Mixed(t *testing.T, imageURL string) *domain.Explanation {
	t.Helper()
	e := domain.NewExplanation("ops-team", "de", "", "")
	e.SetCreated(Created)
	b, err := chunk.NewExplanationBuilder(e, chunk.NewFactory(nil))
	require.NoError(t, err)

	one, err := domain.NewOneDimData(domain.MustDimension("height", "cm"), []any{180, 175, 190})
	require.NoError(t, err)
	tp1, _ := domain.NewTuple(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), 10.5)
	tp2, _ := domain.NewTuple(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), 11.0)
	two, err := domain.NewTwoDimData(domain.MustDimension("day", ""), domain.MustDimension("temp", "C"), []domain.Tuple{tp1, tp2})
	require.NoError(t, err)
	tr, _ := domain.NewTriple("north", 3, true)
	three, err := domain.NewThreeDimData(
		domain.MustDimension("region", ""), domain.MustDimension("sales", "pcs"), domain.MustDimension("target met", ""),
		[]domain.Triple{tr})
	require.NoError(t, err)
	single, err := domain.NewSingleData(domain.MustDimension("money", "EUR"), 1700.0)
	require.NoError(t, err)

	require.NoError(t, b.AddChunk(chunk.Text, domain.ContextNeutral, "", "", nil, "Sales were stable."))
	require.NoError(t, b.AddChunk(chunk.Image, domain.ContextPositive, "charts", "", nil,
		domain.ImageData{URL: imageURL, Caption: "Monthly chart"}))
	require.NoError(t, b.AddChunk(chunk.Data, domain.ContextWarning, "", "r2", []string{"people"}, one))
	require.NoError(t, b.AddChunk(chunk.Data, domain.Context(7), "", "", nil, two))
	require.NoError(t, b.AddChunk(chunk.Data, domain.ContextVeryPositive, "", "", nil, three))
	require.NoError(t, b.AddChunk(chunk.Data, domain.ContextError, "g1", "r1", []string{"tag1", "tag2"}, single))
	return e
}

// WritePNG writes a small valid PNG to path.
func WritePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		img.Set(x, x, color.RGBA{B: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

// FailingWriter rejects every write.
type FailingWriter struct{}

var ErrWrite = errors.New("sink closed")

func (FailingWriter) Write([]byte) (int, error) { return 0, ErrWrite }

// RequireKind asserts err is an ExplanationError of the given kind.
func RequireKind(t *testing.T, err error, kind domain.ErrorKind) *domain.ExplanationError {
	t.Helper()
	var explErr *domain.ExplanationError
	require.True(t, errors.As(err, &explErr), "expected ExplanationError, got %v", err)
	require.Equal(t, kind, explErr.Kind)
	return explErr
}
