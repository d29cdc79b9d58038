package report

import (
	"strings"

	"github.com/de-tools/data-explain/pkg/models/domain"
	"github.com/samber/lo"
)

// Labels are the captions used by formats that print field names.
type Labels struct {
	Created  string
	Owner    string
	Language string
	Country  string
	Title    string
	Context  string
	Group    string
	Rule     string
	Tags     string
	Image    string
	Caption  string
}

func DefaultLabels() Labels {
	return Labels{
		Created:  "Date created",
		Owner:    "Owner",
		Language: "Language",
		Country:  "Country",
		Title:    "Title",
		Context:  "Context",
		Group:    "Group",
		Rule:     "Rule",
		Tags:     "Tags",
		Image:    "Image",
		Caption:  "Caption",
	}
}

// Field is one labeled unit of a header. Key is the machine name used by
// markup and object formats; Values is set for list fields (tags).
type Field struct {
	Key    string
	Label  string
	Value  string
	Values []string
}

// ExplanationHeader returns created and owner, then language, country and title when present.
func ExplanationHeader(e *domain.Explanation, labels Labels) []Field {
	fields := []Field{
		{Key: "created", Label: labels.Created, Value: DateTime(e.Created(), e.Locale())},
		{Key: "owner", Label: labels.Owner, Value: e.Owner()},
	}
	optional := []Field{
		{Key: "language", Label: labels.Language, Value: e.Language()},
		{Key: "country", Label: labels.Country, Value: e.Country()},
		{Key: "title", Label: labels.Title, Value: e.Title()},
	}
	return append(fields, lo.Filter(optional, func(f Field, _ int) bool { return f.Value != "" })...)
}

// ChunkHeader returns context, then group, rule and tags when present, in that order.
func ChunkHeader(c *domain.Chunk, labels Labels) []Field {
	fields := []Field{{Key: "context", Label: labels.Context, Value: c.Context().String()}}
	if c.Group() != "" {
		fields = append(fields, Field{Key: "group", Label: labels.Group, Value: c.Group()})
	}
	if c.Rule() != "" {
		fields = append(fields, Field{Key: "rule", Label: labels.Rule, Value: c.Rule()})
	}
	if tags := c.Tags(); len(tags) > 0 {
		fields = append(fields, Field{
			Key:    "tags",
			Label:  labels.Tags,
			Value:  strings.Join(tags, " "),
			Values: tags,
		})
	}
	return fields
}
