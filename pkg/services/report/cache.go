package report

import "github.com/de-tools/data-explain/pkg/models/domain"

// RendererCache memoizes one renderer per content kind. Entries are added on
// first use and never evicted. It is not safe for concurrent use.
type RendererCache[R any] struct {
	renderers map[domain.ContentKind]R
}

func NewRendererCache[R any]() *RendererCache[R] {
	return &RendererCache[R]{renderers: make(map[domain.ContentKind]R)}
}

// Get returns the cached renderer for kind or stores the one built by create.
func (c *RendererCache[R]) Get(kind domain.ContentKind, create func() (R, error)) (R, error) {
	if r, ok := c.renderers[kind]; ok {
		return r, nil
	}
	r, err := create()
	if err != nil {
		return r, err
	}
	c.renderers[kind] = r
	return r, nil
}

func (c *RendererCache[R]) Len() int {
	return len(c.renderers)
}
