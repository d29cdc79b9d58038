package i18n

import (
	"fmt"
	"regexp"
	"strconv"
)

// Localizer supplies translated strings to the chunk builders.
// Every lookup reports whether a translation was found.
type Localizer interface {
	// TranslateText returns the message keyed by group and rule with positional
	// placeholders ({0}, {1}, ...) replaced by args.
	TranslateText(group, rule string, args []any) (string, bool)
	TranslateImageCaption(caption string) (string, bool)
	TranslateDimensionName(name string) (string, bool)
	TranslateUnit(unit string) (string, bool)
}

var placeholder = regexp.MustCompile(`\{(\d+)\}`)

// Format substitutes {n} placeholders with fmt.Sprint(args[n]).
// Placeholders without a matching argument are kept verbatim.
func Format(pattern string, args []any) string {
	if len(args) == 0 {
		return pattern
	}
	return placeholder.ReplaceAllStringFunc(pattern, func(m string) string {
		idx, err := strconv.Atoi(m[1 : len(m)-1])
		if err != nil || idx >= len(args) {
			return m
		}
		return fmt.Sprint(args[idx])
	})
}
