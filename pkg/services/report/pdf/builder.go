// Package pdf renders explanations as paginated A4 documents.
package pdf

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/de-tools/data-explain/pkg/models/domain"
	"github.com/de-tools/data-explain/pkg/services/report"
	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog"
)

const (
	ContentType = "application/pdf"
	Extension   = ".pdf"

	coreFont    = "Helvetica"
	unicodeFont = "explain-unicode"
	fontSize    = 10
	lineHeight = 5
)

// Option tweaks a ReportBuilder.
type Option func(*ReportBuilder)

// WithCompression toggles stream compression. It is on by default; tests turn it
// off to search the page content.
func WithCompression(on bool) Option {
	return func(b *ReportBuilder) {
		b.compress = on
	}
}

type ReportBuilder struct {
	opts     report.Options
	factory  *ChunkBuilderFactory
	compress bool
	font     []byte
}

func NewReportBuilder(opts report.Options, options ...Option) *ReportBuilder {
	b := &ReportBuilder{
		opts:     opts.Normalize(),
		factory:  NewChunkBuilderFactory(),
		compress: true,
	}
	for _, o := range options {
		o(b)
	}
	return b
}

func (b *ReportBuilder) Factory() *ChunkBuilderFactory {
	return b.factory
}

func (b *ReportBuilder) BuildReport(ctx context.Context, e *domain.Explanation, w io.Writer) error {
	if err := report.CheckArgs(e, w); err != nil {
		return err
	}
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("format", "pdf").Int("chunks", e.Len()).Msg("building report")

	font, err := b.loadFont()
	if err != nil {
		return err
	}
	doc := newDocument(e, b.compress, font)
	if err := doc.failure(); err != nil {
		return err
	}
	for _, f := range report.ExplanationHeader(e, b.opts.Labels) {
		doc.line(f.Label+": "+f.Value, "")
	}
	doc.pdf.Ln(lineHeight)

	scope := report.NewScope(ctx, b.opts, e)
	for i, c := range e.Chunks() {
		cb, err := b.factory.ReportChunkBuilder(c)
		if err != nil {
			return err
		}
		if i > 0 {
			doc.pdf.Ln(lineHeight)
		}
		if err := cb.BuildReportChunk(scope, c, doc); err != nil {
			return err
		}
		if err := doc.failure(); err != nil {
			return err
		}
	}

	if err := doc.pdf.Output(w); err != nil {
		return domain.WrapError(domain.ErrRender, err, "failed to write pdf report")
	}
	logger.Debug().Str("format", "pdf").Msg("report finished")
	return nil
}

// loadFont reads the configured TrueType font once per builder.
func (b *ReportBuilder) loadFont() ([]byte, error) {
	if b.opts.FontFile == "" || b.font != nil {
		return b.font, nil
	}
	data, err := os.ReadFile(b.opts.FontFile)
	if err != nil {
		return nil, domain.WrapError(domain.ErrResource, err, "font %q could not be loaded", b.opts.FontFile)
	}
	if !isTrueType(data) {
		return nil, domain.NewError(domain.ErrResource, "font %q is not a TrueType font", b.opts.FontFile)
	}
	b.font = data
	return data, nil
}

// isTrueType checks the sfnt version tag; gofpdf only parses TrueType outlines.
func isTrueType(data []byte) bool {
	return len(data) > 12 && (bytes.HasPrefix(data, []byte{0, 1, 0, 0}) || bytes.HasPrefix(data, []byte("true")))
}

func (b *ReportBuilder) BuildReportFile(ctx context.Context, e *domain.Explanation, path string) error {
	return report.WriteFile(path, func(w io.Writer) error {
		return b.BuildReport(ctx, e, w)
	})
}

// document is the gofpdf page state shared by the chunk renderers of one run.
type document struct {
	pdf    *gofpdf.Fpdf
	family string
	tr     func(string) string
}

// newDocument starts an A4 page. With a TrueType font all text is embedded
// as UTF-8; otherwise it is mapped to cp1252 for the core font and characters
// outside that set are lost.
func newDocument(e *domain.Explanation, compress bool, font []byte) *document {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.SetCreator("data-explain", false)
	pdf.SetCreationDate(e.Created())
	if e.Title() != "" {
		pdf.SetTitle(e.Title(), true)
	}
	if e.Owner() != "" {
		pdf.SetAuthor(e.Owner(), true)
	}
	pdf.SetAutoPageBreak(true, 15)

	d := &document{pdf: pdf, family: coreFont}
	if font != nil {
		for _, style := range []string{"", "B", "I"} {
			pdf.AddUTF8FontFromBytes(unicodeFont, style, font)
		}
		d.family = unicodeFont
		d.tr = func(s string) string { return s }
	} else {
		d.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	pdf.AddPage()
	d.setFont("")
	return d
}

func (d *document) setFont(style string) {
	d.pdf.SetFont(d.family, style, fontSize)
}

// line writes a full-width paragraph in the given font style.
func (d *document) line(s, style string) {
	d.setFont(style)
	d.pdf.MultiCell(0, lineHeight, d.tr(s), "", "L", false)
	d.setFont("")
}

func (d *document) contentWidth() float64 {
	pageWidth, _ := d.pdf.GetPageSize()
	left, _, right, _ := d.pdf.GetMargins()
	return pageWidth - left - right
}

func (d *document) failure() error {
	if d.pdf.Ok() {
		return nil
	}
	return domain.WrapError(domain.ErrRender, d.pdf.Error(), "failed to build pdf report")
}
