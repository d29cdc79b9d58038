// Package render turns explanation documents into reports.
package render

import (
	"context"
	"io"

	"github.com/de-tools/data-explain/pkg/adapters"
	"github.com/de-tools/data-explain/pkg/models/api"
	"github.com/de-tools/data-explain/pkg/models/domain"
	"github.com/de-tools/data-explain/pkg/services/chunk"
	"github.com/de-tools/data-explain/pkg/services/i18n"
	"github.com/de-tools/data-explain/pkg/services/report"
	"github.com/rs/zerolog"
)

// Request selects the format and header switch for one rendering.
type Request struct {
	Doc           api.ExplanationDoc
	Format        string
	InsertHeaders bool
}

type Service struct {
	registry report.Registry
	bundle   *i18n.Bundle
	options  report.Options
}

// NewService creates a render service. bundle may be nil to disable localization.
func NewService(registry report.Registry, bundle *i18n.Bundle, options report.Options) *Service {
	return &Service{
		registry: registry,
		bundle:   bundle,
		options:  options.Normalize(),
	}
}

func (s *Service) Registry() report.Registry {
	return s.registry
}

// Explanation builds the explanation described by doc, localized for the
// document's own language and country when a bundle is configured.
func (s *Service) Explanation(doc api.ExplanationDoc) (*domain.Explanation, error) {
	var localizer i18n.Localizer
	if s.bundle != nil {
		localizer = s.bundle.Localizer(domain.LocaleTag(doc.Language, doc.Country))
	}
	return adapters.MapExplanationDocToDomain(doc, chunk.NewFactory(localizer))
}

func (s *Service) builder(req Request) (report.Builder, error) {
	opts := s.options
	opts.InsertHeaders = req.InsertHeaders
	return s.registry.Create(req.Format, opts)
}

// Render writes the report for req to w.
func (s *Service) Render(ctx context.Context, req Request, w io.Writer) error {
	b, err := s.builder(req)
	if err != nil {
		return err
	}
	e, err := s.Explanation(req.Doc)
	if err != nil {
		return err
	}
	zerolog.Ctx(ctx).Debug().Str("format", req.Format).Int("chunks", e.Len()).Msg("rendering explanation")
	return b.BuildReport(ctx, e, w)
}

// RenderFile writes the report for req to path.
func (s *Service) RenderFile(ctx context.Context, req Request, path string) error {
	b, err := s.builder(req)
	if err != nil {
		return err
	}
	e, err := s.Explanation(req.Doc)
	if err != nil {
		return err
	}
	zerolog.Ctx(ctx).Debug().Str("format", req.Format).Str("path", path).Msg("rendering explanation")
	return b.BuildReportFile(ctx, e, path)
}
