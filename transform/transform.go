// Package transform provides column-selection transformers following a
// two-phase fit/transform contract: Fit derives state from a reference
// frame, Transform applies that state to a possibly different frame and
// fails if the transformer was never fit.
//
// Transformers are not safe for concurrent use; callers needing concurrency
// use independent instances.
package transform

import (
	"tabprof/domain/core"
	"tabprof/domain/frame"
)

// Transformer is the capability interface shared by all transformers.
// labels is ignored by every transformer in this package; it exists so
// transformers slot into supervised pipelines unchanged.
type Transformer interface {
	Fit(df *frame.DataFrame, labels *frame.Series) error
	Transform(df *frame.DataFrame) (*frame.DataFrame, error)
}

// checkFrame validates that df is a usable tabular input.
func checkFrame(df *frame.DataFrame) error {
	if df == nil || df.Ncol() == 0 {
		return core.ErrWrongInputType
	}
	if df.Nrow() == 0 {
		return core.ErrEmptyInput
	}
	return nil
}

// missingColumns returns the requested names absent from df, in request order.
func missingColumns(df *frame.DataFrame, names []string) []string {
	var missing []string
	for _, name := range names {
		if !df.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
