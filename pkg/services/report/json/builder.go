// Package json renders explanations as a JSON object document.
package json

import (
	"context"
	"io"

	"github.com/de-tools/data-explain/pkg/models/domain"
	"github.com/de-tools/data-explain/pkg/services/report"
	"github.com/rs/zerolog"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

const (
	ContentType = "application/json"
	Extension   = ".json"
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
	logger.Debug().Str("format", "json").Int("chunks", e.Len()).Msg("building report")

	doc := newObject()
	for _, f := range report.ExplanationHeader(e, b.opts.Labels) {
		doc.set("header."+f.Key, f.Value)
	}
	doc.setRaw("chunks", []byte("[]"))

	scope := report.NewScope(ctx, b.opts, e)
	for _, c := range e.Chunks() {
		cb, err := b.factory.ReportChunkBuilder(c)
		if err != nil {
			return err
		}
		obj := newObject()
		obj.set("kind", c.Kind().String())
		if err := cb.BuildReportChunk(scope, c, obj); err != nil {
			return err
		}
		if obj.err != nil {
			return obj.failure()
		}
		doc.setRaw("chunks.-1", obj.data)
	}
	if doc.err != nil {
		return doc.failure()
	}

	if _, err := w.Write(pretty.Pretty(doc.data)); err != nil {
		return domain.WrapError(domain.ErrRender, err, "failed to write json report")
	}
	logger.Debug().Str("format", "json").Msg("report finished")
	return nil
}

func (b *ReportBuilder) BuildReportFile(ctx context.Context, e *domain.Explanation, path string) error {
	return report.WriteFile(path, func(w io.Writer) error {
		return b.BuildReport(ctx, e, w)
	})
}

// object accumulates a JSON document through sjson paths, keeping the first error.
type object struct {
	data []byte
	err  error
}

func newObject() *object {
	return &object{data: []byte("{}")}
}

func (o *object) set(path string, value any) {
	if o.err != nil {
		return
	}
	o.data, o.err = sjson.SetBytes(o.data, path, value)
}

func (o *object) setRaw(path string, raw []byte) {
	if o.err != nil {
		return
	}
	o.data, o.err = sjson.SetRawBytes(o.data, path, raw)
}

func (o *object) failure() error {
	return domain.WrapError(domain.ErrRender, o.err, "failed to build json report")
}
