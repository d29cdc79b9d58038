package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/de-tools/data-explain/pkg/adapters"
	"github.com/de-tools/data-explain/pkg/models/api"
	"github.com/de-tools/data-explain/pkg/services/render"
	"github.com/de-tools/data-explain/pkg/services/report"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type RenderCmd struct {
	env         *Env
	input       string
	inputFormat string
	format      string
	output      string
	noHeaders   bool
	localeDir   string
	imageDir    string
}

func NewRenderCmd(env *Env) *cobra.Command {
	rc := &RenderCmd{env: env}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an explanation document as a report",
		Args:  cobra.NoArgs,
		RunE:  rc.run,
	}

	cmd.Flags().StringVarP(&rc.input, "input", "i", "", "Explanation document (yaml, json or toml); - reads stdin")
	cmd.Flags().StringVar(&rc.inputFormat, "input-format", "yaml", "Document format when reading stdin")
	cmd.Flags().StringVarP(&rc.format, "format", "f", "", "Report format (default from report.format)")
	cmd.Flags().StringVarP(&rc.output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&rc.noHeaders, "no-headers", false, "Omit chunk headers")
	cmd.Flags().StringVar(&rc.localeDir, "locale-dir", "", "Directory of translation files (default from i18n.dir)")
	cmd.Flags().StringVar(&rc.imageDir, "image-dir", "", "Base directory of relative image references (default: the document's directory)")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (rc *RenderCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := rc.env.Config
	logger := zerolog.Ctx(ctx)

	doc, err := rc.loadDoc()
	if err != nil {
		return err
	}

	i18nCfg := cfg.I18n
	if rc.localeDir != "" {
		i18nCfg.Dir = rc.localeDir
	}
	bundle, err := i18nCfg.Bundle()
	if err != nil {
		return fmt.Errorf("failed to load translations: %w", err)
	}

	opts := cfg.Report.Options()
	opts.Images = report.NewImageResolver(rc.imageBaseDir(cfg.Report.ImageDir), report.WithRemoteImages())

	req := render.Request{
		Doc:           doc,
		Format:        rc.format,
		InsertHeaders: cfg.Report.InsertHeaders && !rc.noHeaders,
	}
	if req.Format == "" {
		req.Format = cfg.Report.Format
	}

	svc := render.NewService(rc.env.Registry, bundle, opts)
	logger.Debug().Str("input", rc.input).Str("format", req.Format).Bool("localized", bundle != nil).Msg("render requested")
	if rc.output == "" {
		return svc.Render(ctx, req, rc.env.Output)
	}
	if err := svc.RenderFile(ctx, req, rc.output); err != nil {
		return err
	}
	logger.Info().Str("output", rc.output).Msg("report written")
	return nil
}

func (rc *RenderCmd) loadDoc() (api.ExplanationDoc, error) {
	if rc.input == "-" {
		return adapters.DecodeExplanationDoc(os.Stdin, strings.ToLower(rc.inputFormat))
	}
	return adapters.LoadExplanationDoc(rc.input)
}

// imageBaseDir picks --image-dir, then report.image_dir, then the document's directory.
func (rc *RenderCmd) imageBaseDir(configured string) string {
	switch {
	case rc.imageDir != "":
		return rc.imageDir
	case configured != "":
		return configured
	case rc.input != "-":
		return filepath.Dir(rc.input)
	default:
		return ""
	}
}
