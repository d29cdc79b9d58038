package commands

import (
	"github.com/de-tools/data-explain/pkg/services/report"
	"github.com/spf13/cobra"
)

type FormatsCmd struct {
	env *Env
}

func NewFormatsCmd(env *Env) *cobra.Command {
	fc := &FormatsCmd{env: env}
	return &cobra.Command{
		Use:   "formats",
		Short: "List the available report formats",
		Args:  cobra.NoArgs,
		RunE:  fc.run,
	}
}

func (fc *FormatsCmd) run(_ *cobra.Command, _ []string) error {
	names := fc.env.Registry.Formats()
	formats := make([]report.Format, 0, len(names))
	for _, name := range names {
		f, err := fc.env.Registry.Lookup(name)
		if err != nil {
			return err
		}
		formats = append(formats, f)
	}
	return fc.env.Reporter.HandleFormats(formats)
}
