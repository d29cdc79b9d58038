package domain

import "slices"

// Chunk is one fact of an explanation together with its provenance metadata.
// Empty group or rule and nil tags mean the field is absent.
type Chunk struct {
	context Context
	group   string
	rule    string
	tags    []string
	content Content
}

func NewChunk(context Context, group, rule string, tags []string, content Content) (*Chunk, error) {
	if isNil(content) {
		return nil, NewError(ErrMissingArgument, "chunk content is required")
	}
	if data, ok := content.(DataContent); ok {
		if err := data.validate(); err != nil {
			return nil, err
		}
	}
	return &Chunk{
		context: context,
		group:   group,
		rule:    rule,
		tags:    slices.Clone(tags),
		content: content,
	}, nil
}

func (c *Chunk) Context() Context { return c.context }

func (c *Chunk) Group() string { return c.group }

func (c *Chunk) Rule() string { return c.rule }

// Tags returns a copy of the tag list; nil when no tags were given.
func (c *Chunk) Tags() []string { return slices.Clone(c.tags) }

func (c *Chunk) Content() Content { return c.content }

func (c *Chunk) Kind() ContentKind { return c.content.Kind() }

func (c *Chunk) Clone() *Chunk {
	return &Chunk{
		context: c.context,
		group:   c.group,
		rule:    c.rule,
		tags:    slices.Clone(c.tags),
		content: c.content.cloneContent(),
	}
}
