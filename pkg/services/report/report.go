package report

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/data-explain/pkg/models/domain"
	"golang.org/x/text/language"
)

// Builder renders an explanation into one output format.
type Builder interface {
	// BuildReport writes the whole report to w. A failure may leave w partially written.
	BuildReport(ctx context.Context, e *domain.Explanation, w io.Writer) error
	// BuildReportFile creates or truncates path and renders into it.
	BuildReportFile(ctx context.Context, e *domain.Explanation, path string) error
}

// Options configure a format's report builder.
type Options struct {
	// InsertHeaders emits context, group, rule and tags before each chunk's content.
	InsertHeaders bool
	Labels        Labels
	Images        *ImageResolver
	// FontFile is a TrueType font for paginated formats. Without it the pdf
	// format uses a core font limited to the cp1252 character set.
	FontFile string
}

// DefaultOptions turns chunk headers on and uses the English labels.
func DefaultOptions() Options {
	return Options{
		InsertHeaders: true,
		Labels:        DefaultLabels(),
		Images:        NewImageResolver(""),
	}
}

// Normalize fills zero fields with their defaults.
func (o Options) Normalize() Options {
	if o.Labels == (Labels{}) {
		o.Labels = DefaultLabels()
	}
	if o.Images == nil {
		o.Images = NewImageResolver("")
	}
	return o
}

// Scope is what a chunk renderer needs to know about the current run.
type Scope struct {
	Ctx           context.Context
	Locale        language.Tag
	InsertHeaders bool
	Labels        Labels
	Images        *ImageResolver
	// FontFile is a TrueType font for paginated formats. Without it the pdf
	// format uses a core font limited to the cp1252 character set.
	FontFile string
}

// NewScope derives the per-run scope from the options and the explanation.
func NewScope(ctx context.Context, opts Options, e *domain.Explanation) Scope {
	return Scope{
		Ctx:           ctx,
		Locale:        e.Locale(),
		InsertHeaders: opts.InsertHeaders,
		Labels:        opts.Labels,
		Images:        opts.Images,
	}
}

// CheckArgs validates the common BuildReport arguments.
func CheckArgs(e *domain.Explanation, w io.Writer) error {
	if e == nil {
		return domain.NewError(domain.ErrMissingArgument, "explanation is required")
	}
	if w == nil {
		return domain.NewError(domain.ErrMissingArgument, "output writer is required")
	}
	return nil
}

// WriteFile creates path, hands it to render and always closes it.
// The render error wins over the close error.
func WriteFile(path string, render func(io.Writer) error) (err error) {
	if path == "" {
		return domain.NewError(domain.ErrMissingArgument, "output path is required")
	}
	f, err := os.Create(path)
	if err != nil {
		return domain.WrapError(domain.ErrRender, err, "create report file %q", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = domain.WrapError(domain.ErrRender, cerr, "close report file %q", path)
		}
	}()
	return render(f)
}

// UnknownVariant is returned by renderer factories for content they cannot handle.
func UnknownVariant(c *domain.Chunk) error {
	if c == nil || c.Content() == nil {
		return domain.NewError(domain.ErrUnknownSelector, "chunk has no content")
	}
	return domain.NewError(domain.ErrUnknownSelector, "no renderer for chunk content %T", c.Content())
}
