package terminal

import (
	"io"
	"os"

	"github.com/de-tools/data-explain/pkg/runtime/terminal/commands"
	"github.com/de-tools/data-explain/pkg/runtime/terminal/export"
	"github.com/de-tools/data-explain/pkg/services/config"
	"github.com/de-tools/data-explain/pkg/services/report"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	env        *commands.Env
	logOutput  io.Writer
	configPath string
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry report.Registry
	Output   io.Writer
	// LogOutput receives the structured log, stderr by default.
	LogOutput io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}

	cli := &CLI{
		env: &commands.Env{
			Registry: opts.Registry,
			Reporter: export.NewReporter(opts.Output),
			Output:   opts.Output,
		},
		logOutput: opts.LogOutput,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "data-explain",
		Short:             "Render explanations as text, xml, json or pdf reports",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.setup,
	}

	cmd.PersistentFlags().StringVarP(&cli.configPath, "config", "c", "",
		"Path to the config file (default ./data-explain.yaml if present)")

	cmd.AddCommand(commands.NewRenderCmd(cli.env))
	cmd.AddCommand(commands.NewFormatsCmd(cli.env))

	return cmd
}

// setup loads the configuration and attaches the logger to the command context.
func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cli.configPath)
	if err != nil {
		return err
	}
	cli.env.Config = cfg

	logger := cfg.Log.Logger(cli.logOutput)
	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}
