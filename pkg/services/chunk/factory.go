package chunk

import (
	"github.com/de-tools/data-explain/pkg/models/domain"
	"github.com/de-tools/data-explain/pkg/services/i18n"
)

// Type selects the builder family. It stays a plain int because callers may pass
// codes read from external input.
type Type int

const (
	Text Type = iota
	Image
	Data
)

var typeNames = map[Type]string{
	Text:  "text",
	Image: "image",
	Data:  "data",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseType maps "text", "image" and "data" to their Type.
func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, domain.NewError(domain.ErrUnknownSelector, "unknown chunk type: %q", s)
}

// Factory hands out one builder per Type, constructed on first use.
// It is not safe for concurrent use.
type Factory struct {
	localizer i18n.Localizer
	builders  map[Type]Builder
}

// NewFactory creates a factory. A nil localizer disables localization.
func NewFactory(localizer i18n.Localizer) *Factory {
	return &Factory{
		localizer: localizer,
		builders:  make(map[Type]Builder),
	}
}

// Builder returns the cached builder for t, creating it if needed.
func (f *Factory) Builder(t Type) (Builder, error) {
	if b, ok := f.builders[t]; ok {
		return b, nil
	}

	var b Builder
	switch t {
	case Text:
		b = NewTextBuilder(f.localizer)
	case Image:
		b = NewImageBuilder(f.localizer)
	case Data:
		b = NewDataBuilder(f.localizer)
	default:
		return nil, domain.NewError(domain.ErrUnknownSelector, "unknown chunk type: %d", int(t))
	}

	f.builders[t] = b
	return b, nil
}
