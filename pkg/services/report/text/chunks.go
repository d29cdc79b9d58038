package text

import (
	"fmt"
	"io"

	"github.com/de-tools/data-explain/pkg/models/domain"
	"github.com/de-tools/data-explain/pkg/services/report"
	"github.com/olekukonko/tablewriter"
)

// ChunkBuilder writes one chunk into a text report.
type ChunkBuilder interface {
	BuildReportChunk(s report.Scope, c *domain.Chunk, out io.Writer) error
}

// ChunkBuilderFactory maps a chunk's content variant to its cached text renderer.
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

func writeChunkHeader(s report.Scope, c *domain.Chunk, out io.Writer) {
	if !s.InsertHeaders {
		return
	}
	for _, f := range report.ChunkHeader(c, s.Labels) {
		fmt.Fprintf(out, "%s: %s\n", f.Label, f.Value)
	}
}

type TextChunkBuilder struct{}

func (b *TextChunkBuilder) BuildReportChunk(s report.Scope, c *domain.Chunk, out io.Writer) error {
	text, ok := c.Content().(domain.Text)
	if !ok {
		return report.UnknownVariant(c)
	}
	writeChunkHeader(s, c, out)
	fmt.Fprintln(out, string(text))
	return nil
}

type ImageChunkBuilder struct{}

func (b *ImageChunkBuilder) BuildReportChunk(s report.Scope, c *domain.Chunk, out io.Writer) error {
	img, ok := c.Content().(*domain.ImageData)
	if !ok {
		return report.UnknownVariant(c)
	}
	if err := s.Images.Resolve(img.URL); err != nil {
		return err
	}
	writeChunkHeader(s, c, out)
	fmt.Fprintf(out, "%s: %s\n", s.Labels.Image, img.URL)
	if img.Caption != "" {
		fmt.Fprintf(out, "%s: %s\n", s.Labels.Caption, img.Caption)
	}
	return nil
}

// DataChunkBuilder renders any typed container as a table: one column per dimension.
type DataChunkBuilder struct {
	kind domain.ContentKind
}

func (b *DataChunkBuilder) BuildReportChunk(s report.Scope, c *domain.Chunk, out io.Writer) error {
	data, ok := c.Content().(domain.DataContent)
	if !ok || data.Kind() != b.kind {
		return report.UnknownVariant(c)
	}
	writeChunkHeader(s, c, out)

	t := report.DataTable(data, s.Locale)
	table := tablewriter.NewWriter(out)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader(t.Headers)
	table.AppendBulk(t.Rows)
	table.Render()
	return nil
}
