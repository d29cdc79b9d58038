package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	// When
	cfg, err := Load("")

	// Then
	require.NoError(t, err)
	assert.True(t, cfg.Report.InsertHeaders)
	assert.Equal(t, "txt", cfg.Report.Format)
	assert.Equal(t, "explanation", cfg.I18n.Basename)
	assert.Empty(t, cfg.I18n.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "localhost:8080", cfg.Server.Addr())
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	// Given
	path := writeConfig(t, "data-explain.yaml", `report:
  insert_headers: false
  format: xml
i18n:
  dir: /srv/locales
log:
  level: debug
server:
  port: 9000
`)
	t.Setenv("EXPLAIN_REPORT_FORMAT", "pdf")
	t.Setenv("EXPLAIN_SERVER_HOST", "0.0.0.0")

	// When
	cfg, err := Load(path)

	// Then
	require.NoError(t, err)
	assert.False(t, cfg.Report.InsertHeaders)
	assert.Equal(t, "pdf", cfg.Report.Format)
	assert.Equal(t, "/srv/locales", cfg.I18n.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown format", content: "report:\n  format: docx\n"},
		{name: "unknown log level", content: "log:\n  level: loud\n"},
		{name: "port out of range", content: "server:\n  port: 70000\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, "c.yaml", tt.content))

			assert.ErrorContains(t, err, "invalid config")
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.ErrorContains(t, err, "failed to read config file")
}

func TestReportConfig_Options(t *testing.T) {
	opts := ReportConfig{InsertHeaders: false, ImageDir: "/img", PDFFont: "/fonts/sans.ttf"}.Options()

	assert.False(t, opts.InsertHeaders)
	assert.Equal(t, "/img", opts.Images.BaseDir)
	assert.False(t, opts.Images.AllowRemote)
	assert.Equal(t, "/fonts/sans.ttf", opts.FontFile)
	assert.Equal(t, "Context", opts.Labels.Context)
}

func TestI18nConfig_Bundle(t *testing.T) {
	bundle, err := I18nConfig{Basename: "explanation"}.Bundle()
	require.NoError(t, err)
	assert.Nil(t, bundle)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "explanation_de.ini"), []byte("[text]\ng.r = Hallo\n"), 0o644))
	bundle, err = I18nConfig{Dir: dir, Basename: "explanation"}.Bundle()
	require.NoError(t, err)
	assert.Equal(t, []string{"de"}, bundle.Locales())
}

func TestLogConfig_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := LogConfig{Level: "warn"}.Logger(&buf)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
