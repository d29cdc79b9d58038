package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/data-explain/pkg/services/report"
)

type TableConfig struct {
	NameWidth        int
	ContentTypeWidth int
	ExtensionWidth   int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:        8,
		ContentTypeWidth: 32,
		ExtensionWidth:   10,
	}
}

// Reporter prints CLI listings as fixed-width tables.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// HandleFormats prints one row per output format.
func (c *Reporter) HandleFormats(formats []report.Format) error {
	funcMap := template.FuncMap{
		"formatRow": func(name, contentType, extension string) string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s |",
				c.config.NameWidth, name,
				c.config.ContentTypeWidth, contentType,
				c.config.ExtensionWidth, extension)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.ContentTypeWidth+2),
				strings.Repeat("-", c.config.ExtensionWidth+2))
		},
	}

	tmpl := `{{separator}}
{{formatRow "Format" "Content type" "Extension"}}
{{separator}}
{{range .}}{{formatRow .Name .ContentType .Extension}}
{{end}}{{separator}}
`

	t, err := template.New("formats").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, formats)
}
