package chunk

import "github.com/de-tools/data-explain/pkg/models/domain"

// ExplanationBuilder appends builder-made chunks to one explanation.
type ExplanationBuilder struct {
	explanation *domain.Explanation
	factory     *Factory
}

func NewExplanationBuilder(explanation *domain.Explanation, factory *Factory) (*ExplanationBuilder, error) {
	if explanation == nil {
		return nil, domain.NewError(domain.ErrMissingArgument, "explanation is required")
	}
	if factory == nil {
		return nil, domain.NewError(domain.ErrMissingArgument, "chunk builder factory is required")
	}
	return &ExplanationBuilder{explanation: explanation, factory: factory}, nil
}

// AddChunk builds a chunk of type t and appends it to the explanation.
// Nothing is appended when building fails.
func (b *ExplanationBuilder) AddChunk(t Type, ctx domain.Context, group, rule string, tags []string, content any) error {
	builder, err := b.factory.Builder(t)
	if err != nil {
		return err
	}
	c, err := builder.BuildChunk(ctx, group, rule, tags, content)
	if err != nil {
		return err
	}
	return b.explanation.AddChunk(c)
}

func (b *ExplanationBuilder) Explanation() *domain.Explanation {
	return b.explanation
}
