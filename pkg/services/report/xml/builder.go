// Package xml renders explanations as an XML document tree.
package xml

import (
	"context"
	"encoding/xml"
	"io"

	"github.com/de-tools/data-explain/pkg/models/domain"
	"github.com/de-tools/data-explain/pkg/services/report"
	"github.com/rs/zerolog"
)

const (
	ContentType = "application/xml; charset=utf-8"
	Extension   = ".xml"
)

type ReportBuilder struct {
	opts    report.Options
	factory *ChunkBuilderFactory
}

func NewReportBuilder(opts report.Options) *ReportBuilder {
	return &ReportBuilder{
		opts:    opts.Normalize(),
		factory: NewChunkBuilderFactory(),
	}
}

func (b *ReportBuilder) Factory() *ChunkBuilderFactory {
	return b.factory
}

func (b *ReportBuilder) BuildReport(ctx context.Context, e *domain.Explanation, w io.Writer) error {
	if err := report.CheckArgs(e, w); err != nil {
		return err
	}
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("format", "xml").Int("chunks", e.Len()).Msg("building report")

	root := newElement("explanation")
	header := root.add("header")
	for _, f := range report.ExplanationHeader(e, b.opts.Labels) {
		header.addText(f.Key, f.Value)
	}

	scope := report.NewScope(ctx, b.opts, e)
	chunks := root.add("chunks")
	for _, c := range e.Chunks() {
		cb, err := b.factory.ReportChunkBuilder(c)
		if err != nil {
			return err
		}
		node := chunks.add("chunk").attr("kind", c.Kind().String())
		if err := cb.BuildReportChunk(scope, c, node); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return domain.WrapError(domain.ErrRender, err, "failed to write xml declaration")
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(root); err != nil {
		return domain.WrapError(domain.ErrRender, err, "failed to encode xml report")
	}
	if err := enc.Close(); err != nil {
		return domain.WrapError(domain.ErrRender, err, "failed to flush xml report")
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return domain.WrapError(domain.ErrRender, err, "failed to write xml report")
	}

	logger.Debug().Str("format", "xml").Msg("report finished")
	return nil
}

func (b *ReportBuilder) BuildReportFile(ctx context.Context, e *domain.Explanation, path string) error {
	return report.WriteFile(path, func(w io.Writer) error {
		return b.BuildReport(ctx, e, w)
	})
}
