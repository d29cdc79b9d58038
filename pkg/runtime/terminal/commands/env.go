package commands

import (
	"io"

	"github.com/de-tools/data-explain/pkg/runtime/terminal/export"
	"github.com/de-tools/data-explain/pkg/services/config"
	"github.com/de-tools/data-explain/pkg/services/report"
)

// Env is shared by all commands. Config is loaded by the root command
// before any sub-command runs.
type Env struct {
	Registry report.Registry
	Reporter *export.Reporter
	Output   io.Writer
	Config   *config.Config
}
