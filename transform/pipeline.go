package transform

import (
	"tabprof/domain/core"
	"tabprof/domain/frame"
)

// Pipeline composes transformers in order. Fit fits each step on the output
// of the previous step's transform; Transform chains the transforms.
type Pipeline struct {
	steps  []Transformer
	fitted bool
}

// NewPipeline creates a pipeline over the given steps. An empty pipeline is
// the identity.
func NewPipeline(steps ...Transformer) *Pipeline {
	return &Pipeline{steps: steps}
}

// Fit fits every step sequentially, feeding each step the previous step's
// transformed output.
func (p *Pipeline) Fit(df *frame.DataFrame, labels *frame.Series) error {
	current := df
	for _, step := range p.steps {
		if err := step.Fit(current, labels); err != nil {
			return err
		}
		next, err := step.Transform(current)
		if err != nil {
			return err
		}
		current = next
	}
	p.fitted = true
	return nil
}

// Transform applies every step's transform in order.
func (p *Pipeline) Transform(df *frame.DataFrame) (*frame.DataFrame, error) {
	if !p.fitted {
		return nil, core.NewNotFittedError("Pipeline")
	}
	current := df
	for _, step := range p.steps {
		next, err := step.Transform(current)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// Steps returns the pipeline's transformers in order.
func (p *Pipeline) Steps() []Transformer {
	return p.steps
}
