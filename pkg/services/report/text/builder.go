package text

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"text/template"

	"github.com/de-tools/data-explain/pkg/models/domain"
	"github.com/de-tools/data-explain/pkg/services/report"
	"github.com/rs/zerolog"
)

const (
	ContentType = "text/plain; charset=utf-8"
	Extension   = ".txt"
)

var headerTemplate = template.Must(template.New("header").Parse(
	`{{range .}}{{.Label}}: {{.Value}}
{{end}}
`))

// ReportBuilder renders explanations as plain text.
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

// Factory exposes the chunk renderer factory used by this builder.
func (b *ReportBuilder) Factory() *ChunkBuilderFactory {
	return b.factory
}

func (b *ReportBuilder) BuildReport(ctx context.Context, e *domain.Explanation, w io.Writer) error {
	if err := report.CheckArgs(e, w); err != nil {
		return err
	}
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("format", "txt").Int("chunks", e.Len()).Msg("building report")

	out := &stickyWriter{w: bufio.NewWriter(w)}
	if err := headerTemplate.Execute(out, report.ExplanationHeader(e, b.opts.Labels)); err != nil {
		return domain.WrapError(domain.ErrRender, err, "failed to write report header")
	}

	scope := report.NewScope(ctx, b.opts, e)
	for i, c := range e.Chunks() {
		cb, err := b.factory.ReportChunkBuilder(c)
		if err != nil {
			return err
		}
		if i > 0 {
			out.println()
		}
		if err := cb.BuildReportChunk(scope, c, out); err != nil {
			return err
		}
	}

	if err := out.flush(); err != nil {
		return domain.WrapError(domain.ErrRender, err, "failed to write text report")
	}
	logger.Debug().Str("format", "txt").Msg("report finished")
	return nil
}

func (b *ReportBuilder) BuildReportFile(ctx context.Context, e *domain.Explanation, path string) error {
	return report.WriteFile(path, func(w io.Writer) error {
		return b.BuildReport(ctx, e, w)
	})
}

// stickyWriter keeps the first write error so renderers can write freely and check once.
type stickyWriter struct {
	w   *bufio.Writer
	err error
}

func (s *stickyWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	s.err = err
	return n, err
}

func (s *stickyWriter) println(args ...any) {
	_, _ = fmt.Fprintln(s, args...)
}

func (s *stickyWriter) flush() error {
	if s.err != nil {
		return s.err
	}
	s.err = s.w.Flush()
	return s.err
}
