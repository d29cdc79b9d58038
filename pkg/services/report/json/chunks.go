package json

import (
	"github.com/de-tools/data-explain/pkg/models/domain"
	"github.com/de-tools/data-explain/pkg/services/report"
)

// ChunkBuilder fills the JSON object of one chunk.
type ChunkBuilder interface {
	BuildReportChunk(s report.Scope, c *domain.Chunk, obj *object) error
}

// ChunkBuilderFactory maps a chunk's content variant to its cached json renderer.
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

func setChunkHeader(s report.Scope, c *domain.Chunk, obj *object) {
	if !s.InsertHeaders {
		return
	}
	for _, f := range report.ChunkHeader(c, s.Labels) {
		if f.Values != nil {
			obj.set(f.Key, f.Values)
			continue
		}
		obj.set(f.Key, f.Value)
	}
}

func setDimensions(obj *object, dims []domain.Dimension) {
	obj.setRaw("data.dimensions", []byte("[]"))
	for _, d := range dims {
		dim := newObject()
		dim.set("name", d.Name())
		if d.Unit() != "" {
			dim.set("unit", d.Unit())
		}
		dim.set("header", d.Header())
		if dim.err != nil {
			obj.err = dim.err
			return
		}
		obj.setRaw("data.dimensions.-1", dim.data)
	}
}

type TextChunkBuilder struct{}

func (b *TextChunkBuilder) BuildReportChunk(s report.Scope, c *domain.Chunk, obj *object) error {
	text, ok := c.Content().(domain.Text)
	if !ok {
		return report.UnknownVariant(c)
	}
	setChunkHeader(s, c, obj)
	obj.set("text", string(text))
	return nil
}

type ImageChunkBuilder struct{}

func (b *ImageChunkBuilder) BuildReportChunk(s report.Scope, c *domain.Chunk, obj *object) error {
	img, ok := c.Content().(*domain.ImageData)
	if !ok {
		return report.UnknownVariant(c)
	}
	if err := s.Images.Resolve(img.URL); err != nil {
		return err
	}
	setChunkHeader(s, c, obj)
	obj.set("image.url", img.URL)
	if img.Caption != "" {
		obj.set("image.caption", img.Caption)
	}
	return nil
}

type SingleDataChunkBuilder struct{}

func (b *SingleDataChunkBuilder) BuildReportChunk(s report.Scope, c *domain.Chunk, obj *object) error {
	data, ok := c.Content().(*domain.SingleData)
	if !ok {
		return report.UnknownVariant(c)
	}
	setChunkHeader(s, c, obj)
	setDimensions(obj, data.Dimensions())
	obj.set("data.value", report.FormatValue(data.Value(), s.Locale))
	return nil
}

type OneDimDataChunkBuilder struct{}

func (b *OneDimDataChunkBuilder) BuildReportChunk(s report.Scope, c *domain.Chunk, obj *object) error {
	data, ok := c.Content().(*domain.OneDimData)
	if !ok {
		return report.UnknownVariant(c)
	}
	setChunkHeader(s, c, obj)
	setDimensions(obj, data.Dimensions())
	values := make([]string, 0, len(data.Values()))
	for _, v := range data.Values() {
		values = append(values, report.FormatValue(v, s.Locale))
	}
	obj.set("data.values", values)
	return nil
}

// TableDataChunkBuilder renders tuples and triples as arrays of values in column order.
type TableDataChunkBuilder struct{}

func (b *TableDataChunkBuilder) BuildReportChunk(s report.Scope, c *domain.Chunk, obj *object) error {
	data, ok := c.Content().(domain.DataContent)
	if !ok {
		return report.UnknownVariant(c)
	}
	setChunkHeader(s, c, obj)
	t := report.DataTable(data, s.Locale)
	setDimensions(obj, t.Dimensions)
	obj.set("data.rows", t.Rows)
	return nil
}
