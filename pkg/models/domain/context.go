package domain

import (
	"strconv"
	"strings"
)

// Context is the severity/polarity code attached to every chunk.
// Values outside the named set are valid and render as their decimal form.
type Context int

const (
	ContextVeryNegative Context = -2
	ContextNegative     Context = -1
	ContextNeutral      Context = 0
	ContextPositive     Context = 1
	ContextVeryPositive Context = 2
	ContextWarning      Context = -10
	ContextError        Context = -20
)

var contextNames = map[Context]string{
	ContextVeryNegative: "VERY_NEGATIVE",
	ContextNegative:     "NEGATIVE",
	ContextNeutral:      "NEUTRAL",
	ContextPositive:     "POSITIVE",
	ContextVeryPositive: "VERY_POSITIVE",
	ContextWarning:      "WARNING",
	ContextError:        "ERROR",
}

func (c Context) String() string {
	if name, ok := contextNames[c]; ok {
		return name
	}
	return strconv.Itoa(int(c))
}

// Known reports whether the code has a symbolic name.
func (c Context) Known() bool {
	_, ok := contextNames[c]
	return ok
}

// ParseContext accepts a symbolic name (case-insensitive) or a decimal code.
func ParseContext(s string) (Context, error) {
	s = strings.TrimSpace(s)
	for code, name := range contextNames {
		if strings.EqualFold(name, s) {
			return code, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, NewError(ErrUnknownSelector, "unknown context: %q", s)
	}
	return Context(n), nil
}
