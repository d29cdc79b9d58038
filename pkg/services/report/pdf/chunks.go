package pdf

import (
	"bytes"

	"github.com/de-tools/data-explain/pkg/models/domain"
	"github.com/de-tools/data-explain/pkg/services/report"
	"github.com/jung-kurt/gofpdf"
)

// ChunkBuilder draws one chunk onto the document.
type ChunkBuilder interface {
	BuildReportChunk(s report.Scope, c *domain.Chunk, doc *document) error
}

// ChunkBuilderFactory maps a chunk's content variant to its cached pdf renderer.
// It is not safe for concurrent use.
type ChunkBuilderFactory struct {
	cache *report.RendererCache[ChunkBuilder]
}

func NewChunkBuilderFactory() *ChunkBuilderFactory {
	return &ChunkBuilderFactory{cache: report.NewRendererCache[ChunkBuilder]()}
}

func (f *ChunkBuilderFactory) ReportChunkBuilder(c *domain.Chunk) (ChunkBuilder, error) {
	if c == nil || c.Content() == nil {
		return nil, report.UnknownVariant(c)
	}
	return f.cache.Get(c.Kind(), func() (ChunkBuilder, error) {
		switch c.Content().(type) {
		case domain.Text:
			return &TextChunkBuilder{}, nil
		case *domain.ImageData:
			return &ImageChunkBuilder{}, nil
		case *domain.SingleData, *domain.OneDimData, *domain.TwoDimData, *domain.ThreeDimData:
			return &DataChunkBuilder{kind: c.Kind()}, nil
		default:
			return nil, report.UnknownVariant(c)
		}
	})
}

func drawChunkHeader(s report.Scope, c *domain.Chunk, doc *document) {
	if !s.InsertHeaders {
		return
	}
	for _, f := range report.ChunkHeader(c, s.Labels) {
		doc.line(f.Label+": "+f.Value, "B")
	}
}

type TextChunkBuilder struct{}

func (b *TextChunkBuilder) BuildReportChunk(s report.Scope, c *domain.Chunk, doc *document) error {
	text, ok := c.Content().(domain.Text)
	if !ok {
		return report.UnknownVariant(c)
	}
	drawChunkHeader(s, c, doc)
	doc.line(string(text), "")
	return nil
}

var imageTypes = map[string]string{
	"image/png":  "PNG",
	"image/jpeg": "JPG",
	"image/gif":  "GIF",
}

// ImageChunkBuilder embeds the referenced image, scaled down to the content width.
type ImageChunkBuilder struct{}

func (b *ImageChunkBuilder) BuildReportChunk(s report.Scope, c *domain.Chunk, doc *document) error {
	img, ok := c.Content().(*domain.ImageData)
	if !ok {
		return report.UnknownVariant(c)
	}
	loaded, err := s.Images.Load(s.Ctx, img.URL)
	if err != nil {
		return err
	}
	imageType, ok := imageTypes[loaded.MIME]
	if !ok {
		return domain.NewError(domain.ErrResource, "image %q has content type %s which cannot be embedded", img.URL, loaded.MIME)
	}

	drawChunkHeader(s, c, doc)
	opts := gofpdf.ImageOptions{ImageType: imageType, ReadDpi: true}
	info := doc.pdf.RegisterImageOptionsReader(img.URL, opts, bytes.NewReader(loaded.Data))
	if info == nil || !doc.pdf.Ok() {
		return domain.WrapError(domain.ErrResource, doc.pdf.Error(), "image %q could not be embedded", img.URL)
	}
	width := info.Width()
	if limit := doc.contentWidth(); width > limit {
		width = limit
	}
	doc.pdf.ImageOptions(img.URL, -1, 0, width, 0, true, opts, 0, "")
	if img.Caption != "" {
		doc.setFont("I")
		doc.pdf.MultiCell(0, lineHeight, doc.tr(img.Caption), "", "C", false)
		doc.setFont("")
	}
	return nil
}

// DataChunkBuilder draws a container as a bordered table with equal-width columns.
type DataChunkBuilder struct {
	kind domain.ContentKind
}

func (b *DataChunkBuilder) BuildReportChunk(s report.Scope, c *domain.Chunk, doc *document) error {
	data, ok := c.Content().(domain.DataContent)
	if !ok || data.Kind() != b.kind {
		return report.UnknownVariant(c)
	}
	drawChunkHeader(s, c, doc)

	t := report.DataTable(data, s.Locale)
	colWidth := doc.contentWidth() / float64(len(t.Headers))
	doc.setFont("B")
	doc.pdf.SetFillColor(230, 230, 230)
	drawRow(doc, t.Headers, colWidth, true)
	doc.setFont("")
	for _, row := range t.Rows {
		drawRow(doc, row, colWidth, false)
	}
	return nil
}

func drawRow(doc *document, cells []string, width float64, fill bool) {
	for i, cell := range cells {
		ln := 0
		if i == len(cells)-1 {
			ln = 1
		}
		doc.pdf.CellFormat(width, lineHeight+1, doc.tr(cell), "1", ln, "L", fill, 0, "")
	}
}
