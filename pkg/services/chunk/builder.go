package chunk

import (
	"fmt"

	"github.com/de-tools/data-explain/pkg/models/domain"
	"github.com/de-tools/data-explain/pkg/services/i18n"
)

// Builder turns raw input into a validated chunk.
type Builder interface {
	BuildChunk(ctx domain.Context, group, rule string, tags []string, content any) (*domain.Chunk, error)
}

// TextBuilder builds text chunks. With a Localizer, content is the list of
// substitution arguments and the text itself comes from the (group, rule) translation.
type TextBuilder struct {
	localizer i18n.Localizer
}

func NewTextBuilder(localizer i18n.Localizer) *TextBuilder {
	return &TextBuilder{localizer: localizer}
}

func (b *TextBuilder) BuildChunk(ctx domain.Context, group, rule string, tags []string, content any) (*domain.Chunk, error) {
	var text domain.Text
	if b.localizer != nil {
		args, err := textArgs(content)
		if err != nil {
			return nil, err
		}
		translated, ok := b.localizer.TranslateText(group, rule, args)
		if !ok {
			return nil, domain.NewError(domain.ErrLocalization,
				"no translation for group %q and rule %q", group, rule)
		}
		text = domain.Text(translated)
	} else {
		switch c := content.(type) {
		case string:
			text = domain.Text(c)
		case domain.Text:
			text = c
		case fmt.Stringer:
			text = domain.Text(c.String())
		case nil:
			return nil, domain.NewError(domain.ErrMissingArgument, "text content is required")
		default:
			return nil, domain.NewError(domain.ErrWrongVariant, "text content must be a string, got %T", content)
		}
	}
	return domain.NewChunk(ctx, group, rule, tags, text)
}

func textArgs(content any) ([]any, error) {
	switch c := content.(type) {
	case nil:
		return nil, nil
	case []any:
		return c, nil
	case []string:
		args := make([]any, len(c))
		for i, s := range c {
			args[i] = s
		}
		return args, nil
	default:
		return nil, domain.NewError(domain.ErrWrongVariant,
			"localized text content must be a list of arguments, got %T", content)
	}
}

// ImageBuilder builds image chunks; a present caption is translated when a translation exists.
type ImageBuilder struct {
	localizer i18n.Localizer
}

func NewImageBuilder(localizer i18n.Localizer) *ImageBuilder {
	return &ImageBuilder{localizer: localizer}
}

func (b *ImageBuilder) BuildChunk(ctx domain.Context, group, rule string, tags []string, content any) (*domain.Chunk, error) {
	var src domain.ImageData
	switch c := content.(type) {
	case *domain.ImageData:
		if c == nil {
			return nil, domain.NewError(domain.ErrMissingArgument, "image content is required")
		}
		src = *c
	case domain.ImageData:
		src = c
	case nil:
		return nil, domain.NewError(domain.ErrMissingArgument, "image content is required")
	default:
		return nil, domain.NewError(domain.ErrWrongVariant, "image content must be an ImageData, got %T", content)
	}

	img, err := domain.NewImageData(src.URL, src.Caption)
	if err != nil {
		return nil, err
	}
	if b.localizer != nil && img.Caption != "" {
		if caption, ok := b.localizer.TranslateImageCaption(img.Caption); ok {
			img.Caption = caption
		}
	}
	return domain.NewChunk(ctx, group, rule, tags, img)
}

// DataBuilder builds data chunks from a copy of one of the four typed containers.
// Dimension names and units are translated independently when translations exist.
type DataBuilder struct {
	localizer i18n.Localizer
}

func NewDataBuilder(localizer i18n.Localizer) *DataBuilder {
	return &DataBuilder{localizer: localizer}
}

func (b *DataBuilder) BuildChunk(ctx domain.Context, group, rule string, tags []string, content any) (*domain.Chunk, error) {
	data, ok := content.(domain.DataContent)
	if !ok {
		if content == nil {
			return nil, domain.NewError(domain.ErrMissingArgument, "data content is required")
		}
		return nil, domain.NewError(domain.ErrWrongVariant, "data content must be a typed data container, got %T", content)
	}
	if err := domain.ValidateData(data); err != nil {
		return nil, err
	}
	translated := data.CloneData()
	if b.localizer == nil {
		return domain.NewChunk(ctx, group, rule, tags, translated)
	}

	dims := translated.Dimensions()
	for i := range dims {
		if name, ok := b.localizer.TranslateDimensionName(dims[i].Name()); ok {
			if err := dims[i].SetName(name); err != nil {
				return nil, err
			}
		}
		if dims[i].Unit() == "" {
			continue
		}
		if unit, ok := b.localizer.TranslateUnit(dims[i].Unit()); ok {
			dims[i].SetUnit(unit)
		}
	}
	if err := translated.SetDimensions(dims...); err != nil {
		return nil, err
	}
	return domain.NewChunk(ctx, group, rule, tags, translated)
}
