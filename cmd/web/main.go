package main

import (
	"fmt"
	"os"

	"github.com/de-tools/data-explain/pkg/server"
	"github.com/de-tools/data-explain/pkg/services/config"
	"github.com/de-tools/data-explain/pkg/services/render"
	"github.com/de-tools/data-explain/pkg/services/report/formats"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the report rendering web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the config file (default ./data-explain.yaml if present)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	logger := cfg.Log.Logger(os.Stdout)

	bundle, err := cfg.I18n.Bundle()
	if err != nil {
		return fmt.Errorf("failed to load translations: %w", err)
	}
	if bundle != nil {
		logger.Info().Strs("locales", bundle.Locales()).Msgf("Translations found at `%s` successfully loaded.", cfg.I18n.Dir)
	}

	svc := render.NewService(formats.NewRegistry(), bundle, cfg.Report.Options())
	api := server.NewWebAPI(server.Config{
		Addr:          cfg.Server.Addr(),
		InsertHeaders: cfg.Report.InsertHeaders,
		Dependencies: server.Dependencies{
			Renderer: svc,
			Logger:   logger,
		},
	})

	return api.Start()
}
