package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/data-explain/pkg/models/domain"
	"github.com/samber/lo"
	"golang.org/x/text/language"
)

type dateStyle struct {
	tag    language.Tag
	medium string
}

// Medium date layouts. The first entry is the fallback.
var dateStyles = []dateStyle{
	{language.AmericanEnglish, "Jan 2, 2006"},
	{language.BritishEnglish, "2 Jan 2006"},
	{language.German, "02.01.2006"},
	{language.French, "02/01/2006"},
	{language.Spanish, "02/01/2006"},
	{language.Italian, "02/01/2006"},
	{language.Portuguese, "02/01/2006"},
	{language.Dutch, "02-01-2006"},
	{language.Russian, "02.01.2006"},
	{language.Serbian, "02.01.2006."},
	{language.Japanese, "2006/01/02"},
	{language.Chinese, "2006-1-2"},
}

var dateMatcher = language.NewMatcher(lo.Map(dateStyles, func(s dateStyle, _ int) language.Tag { return s.tag }))

func mediumLayout(tag language.Tag) string {
	_, idx, conf := dateMatcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	return dateStyles[idx].medium
}

// MediumDate formats t in the medium date style of tag.
func MediumDate(t time.Time, tag language.Tag) string {
	return t.Format(mediumLayout(tag))
}

// DateTime formats t as a medium date followed by the time of day.
func DateTime(t time.Time, tag language.Tag) string {
	return t.Format(mediumLayout(tag) + " 15:04:05")
}

// FormatValue renders a container value. Dates use the medium style; integral
// floats keep a trailing ".0" so 1700.0 does not print as 1700.
func FormatValue(v any, tag language.Tag) string {
	switch x := v.(type) {
	case time.Time:
		return MediumDate(x, tag)
	case *time.Time:
		return MediumDate(*x, tag)
	case float64:
		return formatFloat(x, 64)
	case float32:
		return formatFloat(float64(x), 32)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(f, 'f', -1, bits)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Table is a data container flattened to a header row and value rows.
type Table struct {
	Dimensions []domain.Dimension
	Headers    []string
	Rows       [][]string
}

// DataTable flattens a container: one header per dimension, one row per value,
// tuple or triple with members in column order.
func DataTable(d domain.DataContent, tag language.Tag) Table {
	dims := d.Dimensions()
	t := Table{
		Dimensions: dims,
		Headers:    lo.Map(dims, func(dim domain.Dimension, _ int) string { return dim.Header() }),
	}
	row := func(values ...any) []string {
		return lo.Map(values, func(v any, _ int) string { return FormatValue(v, tag) })
	}
	switch data := d.(type) {
	case *domain.SingleData:
		t.Rows = [][]string{row(data.Value())}
	case *domain.OneDimData:
		for _, v := range data.Values() {
			t.Rows = append(t.Rows, row(v))
		}
	case *domain.TwoDimData:
		for _, tp := range data.Values() {
			t.Rows = append(t.Rows, row(tp.Values()...))
		}
	case *domain.ThreeDimData:
		for _, tr := range data.Values() {
			t.Rows = append(t.Rows, row(tr.Values()...))
		}
	}
	return t
}
