package adapters

import (
	"fmt"
	"io"
	"time"

	"github.com/de-tools/data-explain/pkg/models/api"
	"github.com/de-tools/data-explain/pkg/models/domain"
	"github.com/de-tools/data-explain/pkg/services/chunk"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var validate = validator.New()

// DocumentFormats are the encodings accepted for explanation documents.
var DocumentFormats = []string{"yaml", "yml", "json", "toml"}

// LoadExplanationDoc reads an explanation document; the extension selects the format.
func LoadExplanationDoc(path string) (api.ExplanationDoc, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return api.ExplanationDoc{}, fmt.Errorf("failed to read explanation document: %w", err)
	}
	return decodeExplanationDoc(v)
}

// DecodeExplanationDoc reads an explanation document in the given format from r.
func DecodeExplanationDoc(r io.Reader, format string) (api.ExplanationDoc, error) {
	if !lo.Contains(DocumentFormats, format) {
		return api.ExplanationDoc{}, fmt.Errorf("unsupported document format %q", format)
	}
	v := viper.New()
	v.SetConfigType(format)

	if err := v.ReadConfig(r); err != nil {
		return api.ExplanationDoc{}, fmt.Errorf("failed to read explanation document: %w", err)
	}
	return decodeExplanationDoc(v)
}

func decodeExplanationDoc(v *viper.Viper) (api.ExplanationDoc, error) {
	var doc api.ExplanationDoc
	if err := v.Unmarshal(&doc); err != nil {
		return api.ExplanationDoc{}, fmt.Errorf("failed to parse explanation document: %w", err)
	}
	if err := validate.Struct(doc); err != nil {
		return api.ExplanationDoc{}, fmt.Errorf("invalid explanation document: %w", err)
	}
	return doc, nil
}

// MapExplanationDocToDomain builds the explanation described by doc, running
// every chunk through the factory's builders. Chunks carrying literal text
// bypass localization.
func MapExplanationDocToDomain(doc api.ExplanationDoc, factory *chunk.Factory) (*domain.Explanation, error) {
	e := domain.NewExplanation(doc.Owner, doc.Language, doc.Country, doc.Title)
	b, err := chunk.NewExplanationBuilder(e, factory)
	if err != nil {
		return nil, err
	}
	literal, err := chunk.NewExplanationBuilder(e, chunk.NewFactory(nil))
	if err != nil {
		return nil, err
	}
	for i, c := range doc.Chunks {
		target := b
		if c.Text != "" {
			target = literal
		}
		if err := addChunkDoc(target, c); err != nil {
			return nil, fmt.Errorf("chunk %d: %w", i, err)
		}
	}
	return e, nil
}

func addChunkDoc(b *chunk.ExplanationBuilder, c api.ChunkDoc) error {
	t, err := chunk.ParseType(c.Type)
	if err != nil {
		return err
	}
	ctx := domain.ContextNeutral
	if c.Context != "" {
		if ctx, err = domain.ParseContext(c.Context); err != nil {
			return err
		}
	}
	content, err := chunkContent(t, c)
	if err != nil {
		return err
	}
	return b.AddChunk(t, ctx, c.Group, c.Rule, c.Tags, content)
}

func chunkContent(t chunk.Type, c api.ChunkDoc) (any, error) {
	switch t {
	case chunk.Text:
		if c.Text != "" {
			return c.Text, nil
		}
		if len(c.Args) == 0 {
			return nil, nil
		}
		return c.Args, nil
	case chunk.Image:
		if c.Image == nil {
			return nil, domain.NewError(domain.ErrMissingArgument, "image is required")
		}
		return domain.ImageData{URL: c.Image.URL, Caption: c.Image.Caption}, nil
	case chunk.Data:
		if c.Data == nil {
			return nil, domain.NewError(domain.ErrMissingArgument, "data is required")
		}
		return MapDataDocToDomain(*c.Data)
	default:
		return nil, domain.NewError(domain.ErrUnknownSelector, "unknown chunk type: %d", int(t))
	}
}

var dataDimensions = map[api.DataKind]int{
	api.DataSingle:   1,
	api.DataOneDim:   1,
	api.DataTwoDim:   2,
	api.DataThreeDim: 3,
}

// MapDataDocToDomain converts a data description into its typed container.
func MapDataDocToDomain(d api.DataDoc) (domain.DataContent, error) {
	want, ok := dataDimensions[d.Kind]
	if !ok {
		return nil, domain.NewError(domain.ErrUnknownSelector, "unknown data kind: %q", d.Kind)
	}
	if len(d.Dimensions) != want {
		return nil, domain.NewError(domain.ErrMissingArgument, "expected %d dimensions, got %d", want, len(d.Dimensions))
	}
	dims := make([]domain.Dimension, 0, len(d.Dimensions))
	for _, dd := range d.Dimensions {
		dim, err := domain.NewDimension(dd.Name, dd.Unit)
		if err != nil {
			return nil, err
		}
		dims = append(dims, dim)
	}

	switch d.Kind {
	case api.DataSingle:
		v, err := dimensionValue(d.Dimensions[0], d.Value)
		if err != nil {
			return nil, err
		}
		return domain.NewSingleData(dims[0], v)
	case api.DataOneDim:
		values, err := rowValues(d.Dimensions, d.Values)
		if err != nil {
			return nil, err
		}
		return domain.NewOneDimData(dims[0], values)
	case api.DataTwoDim:
		tuples := make([]domain.Tuple, 0, len(d.Values))
		for i, raw := range d.Values {
			row, err := rowMembers(d.Dimensions, raw, i)
			if err != nil {
				return nil, err
			}
			tp, err := domain.NewTuple(row[0], row[1])
			if err != nil {
				return nil, err
			}
			tuples = append(tuples, tp)
		}
		return domain.NewTwoDimData(dims[0], dims[1], tuples)
	default:
		triples := make([]domain.Triple, 0, len(d.Values))
		for i, raw := range d.Values {
			row, err := rowMembers(d.Dimensions, raw, i)
			if err != nil {
				return nil, err
			}
			tr, err := domain.NewTriple(row[0], row[1], row[2])
			if err != nil {
				return nil, err
			}
			triples = append(triples, tr)
		}
		return domain.NewThreeDimData(dims[0], dims[1], dims[2], triples)
	}
}

// rowValues converts the scalar values of a one-dimensional container.
func rowValues(dims []api.DimensionDoc, raw []any) ([]any, error) {
	values := make([]any, 0, len(raw))
	for _, v := range raw {
		converted, err := dimensionValue(dims[0], v)
		if err != nil {
			return nil, err
		}
		values = append(values, converted)
	}
	return values, nil
}

// rowMembers converts one tuple or triple, given as a list with one member per dimension.
func rowMembers(dims []api.DimensionDoc, raw any, index int) ([]any, error) {
	members, ok := raw.([]any)
	if !ok || len(members) != len(dims) {
		return nil, domain.NewError(domain.ErrWrongVariant, "row %d must be a list of %d values", index, len(dims))
	}
	row := make([]any, len(members))
	for i, m := range members {
		v, err := dimensionValue(dims[i], m)
		if err != nil {
			return nil, err
		}
		row[i] = v
	}
	return row, nil
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

func dimensionValue(dim api.DimensionDoc, v any) (any, error) {
	if dim.Type != api.DimensionTypeDate || v == nil {
		return v, nil
	}
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, x); err == nil {
				return t, nil
			}
		}
	}
	return nil, domain.NewError(domain.ErrWrongVariant, "value %v of dimension %q is not a date", v, dim.Name)
}
