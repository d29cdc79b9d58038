package domain

import (
	"slices"
	"time"

	"golang.org/x/text/language"
)

// Explanation is an ordered, append-only sequence of chunks plus report metadata.
// Empty owner, language, country or title mean the field is absent.
type Explanation struct {
	owner    string
	language string
	country  string
	title    string
	created  time.Time
	chunks   []*Chunk
}

func NewExplanation(owner, language, country, title string) *Explanation {
	return &Explanation{
		owner:    owner,
		language: language,
		country:  country,
		title:    title,
		created:  time.Now(),
	}
}

func (e *Explanation) Owner() string { return e.owner }

func (e *Explanation) Language() string { return e.language }

func (e *Explanation) Country() string { return e.country }

func (e *Explanation) Title() string { return e.title }

func (e *Explanation) Created() time.Time { return e.created }

// SetCreated overrides the creation timestamp, mostly for reproducible output.
func (e *Explanation) SetCreated(t time.Time) { e.created = t }

// Locale returns the language tag built from language and country.
// It is language.Und when the language is absent or malformed.
func (e *Explanation) Locale() language.Tag {
	return LocaleTag(e.language, e.country)
}

// LocaleTag builds a tag from a language and an optional country code. A
// malformed country falls back to the bare language.
func LocaleTag(lang, country string) language.Tag {
	if lang == "" {
		return language.Und
	}
	s := lang
	if country != "" {
		s += "-" + country
	}
	tag, err := language.Parse(s)
	if err != nil {
		if base, err := language.Parse(lang); err == nil {
			return base
		}
		return language.Und
	}
	return tag
}

// AddChunk appends a chunk. Explanations are grown through chunk.ExplanationBuilder.
func (e *Explanation) AddChunk(c *Chunk) error {
	if c == nil {
		return NewError(ErrMissingArgument, "chunk is required")
	}
	e.chunks = append(e.chunks, c)
	return nil
}

// Chunks returns the chunks in insertion order.
func (e *Explanation) Chunks() []*Chunk { return slices.Clone(e.chunks) }

func (e *Explanation) Len() int { return len(e.chunks) }

func (e *Explanation) Clone() *Explanation {
	chunks := make([]*Chunk, len(e.chunks))
	for i, c := range e.chunks {
		chunks[i] = c.Clone()
	}
	return &Explanation{
		owner:    e.owner,
		language: e.language,
		country:  e.country,
		title:    e.title,
		created:  e.created,
		chunks:   chunks,
	}
}
