// Package formats wires every output format into a report registry.
package formats

import (
	"github.com/de-tools/data-explain/pkg/services/report"
	"github.com/de-tools/data-explain/pkg/services/report/json"
	"github.com/de-tools/data-explain/pkg/services/report/pdf"
	"github.com/de-tools/data-explain/pkg/services/report/text"
	"github.com/de-tools/data-explain/pkg/services/report/xml"
)

const (
	Text = "txt"
	XML  = "xml"
	JSON = "json"
	PDF  = "pdf"
)

// Builtin lists the formats shipped with data-explain.
func Builtin() []report.Format {
	return []report.Format{
		{
			Name:        Text,
			ContentType: text.ContentType,
			Extension:   text.Extension,
			New:         func(opts report.Options) report.Builder { return text.NewReportBuilder(opts) },
		},
		{
			Name:        XML,
			ContentType: xml.ContentType,
			Extension:   xml.Extension,
			New:         func(opts report.Options) report.Builder { return xml.NewReportBuilder(opts) },
		},
		{
			Name:        JSON,
			ContentType: json.ContentType,
			Extension:   json.Extension,
			New:         func(opts report.Options) report.Builder { return json.NewReportBuilder(opts) },
		},
		{
			Name:        PDF,
			ContentType: pdf.ContentType,
			Extension:   pdf.Extension,
			New:         func(opts report.Options) report.Builder { return pdf.NewReportBuilder(opts) },
		},
	}
}

// NewRegistry returns a registry holding the builtin formats.
func NewRegistry() report.Registry {
	r := report.NewRegistry()
	for _, f := range Builtin() {
		if err := r.Register(f); err != nil {
			panic(err)
		}
	}
	return r
}
