package xml

import (
	"github.com/de-tools/data-explain/pkg/models/domain"
	"github.com/de-tools/data-explain/pkg/services/report"
)

// ChunkBuilder fills the <chunk> element of one chunk.
type ChunkBuilder interface {
	BuildReportChunk(s report.Scope, c *domain.Chunk, node *element) error
}

// ChunkBuilderFactory maps a chunk's content variant to its cached xml renderer.
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
		case *domain.SingleData:
			return &SingleDataChunkBuilder{}, nil
		case *domain.OneDimData:
			return &OneDimDataChunkBuilder{}, nil
		case *domain.TwoDimData, *domain.ThreeDimData:
			return &TableDataChunkBuilder{}, nil
		default:
			return nil, report.UnknownVariant(c)
		}
	})
}

func addChunkHeader(s report.Scope, c *domain.Chunk, node *element) {
	if !s.InsertHeaders {
		return
	}
	for _, f := range report.ChunkHeader(c, s.Labels) {
		if f.Values == nil {
			node.addText(f.Key, f.Value)
			continue
		}
		list := node.add(f.Key)
		for _, v := range f.Values {
			list.addText("tag", v)
		}
	}
}

func addDimensions(node *element, dims []domain.Dimension) {
	for _, d := range dims {
		dim := node.addText("dimension", d.Header()).attr("name", d.Name())
		if d.Unit() != "" {
			dim.attr("unit", d.Unit())
		}
	}
}

type TextChunkBuilder struct{}

func (b *TextChunkBuilder) BuildReportChunk(s report.Scope, c *domain.Chunk, node *element) error {
	text, ok := c.Content().(domain.Text)
	if !ok {
		return report.UnknownVariant(c)
	}
	addChunkHeader(s, c, node)
	node.addText("text", string(text))
	return nil
}

type ImageChunkBuilder struct{}

func (b *ImageChunkBuilder) BuildReportChunk(s report.Scope, c *domain.Chunk, node *element) error {
	img, ok := c.Content().(*domain.ImageData)
	if !ok {
		return report.UnknownVariant(c)
	}
	if err := s.Images.Resolve(img.URL); err != nil {
		return err
	}
	addChunkHeader(s, c, node)
	image := node.add("image")
	image.addText("url", img.URL)
	if img.Caption != "" {
		image.addText("caption", img.Caption)
	}
	return nil
}

type SingleDataChunkBuilder struct{}

func (b *SingleDataChunkBuilder) BuildReportChunk(s report.Scope, c *domain.Chunk, node *element) error {
	data, ok := c.Content().(*domain.SingleData)
	if !ok {
		return report.UnknownVariant(c)
	}
	addChunkHeader(s, c, node)
	d := node.add("data")
	addDimensions(d, data.Dimensions())
	d.addText("value", report.FormatValue(data.Value(), s.Locale))
	return nil
}

type OneDimDataChunkBuilder struct{}

func (b *OneDimDataChunkBuilder) BuildReportChunk(s report.Scope, c *domain.Chunk, node *element) error {
	data, ok := c.Content().(*domain.OneDimData)
	if !ok {
		return report.UnknownVariant(c)
	}
	addChunkHeader(s, c, node)
	d := node.add("data")
	addDimensions(d, data.Dimensions())
	values := d.add("values")
	for _, v := range data.Values() {
		values.addText("value", report.FormatValue(v, s.Locale))
	}
	return nil
}

// TableDataChunkBuilder renders tuples and triples as rows of values in column order.
type TableDataChunkBuilder struct{}

func (b *TableDataChunkBuilder) BuildReportChunk(s report.Scope, c *domain.Chunk, node *element) error {
	data, ok := c.Content().(domain.DataContent)
	if !ok {
		return report.UnknownVariant(c)
	}
	addChunkHeader(s, c, node)
	t := report.DataTable(data, s.Locale)
	d := node.add("data")
	addDimensions(d, t.Dimensions)
	rows := d.add("rows")
	for _, r := range t.Rows {
		row := rows.add("row")
		for _, v := range r {
			row.addText("value", v)
		}
	}
	return nil
}
