package transform

import (
	"fmt"
	"math"

	"tabprof/domain/core"
	"tabprof/domain/frame"
)

// IdentityTransformer returns its input unchanged. It exists so pipelines
// can carry an explicit no-op branch, optionally validating the input as a
// finite, non-empty, all-numeric frame.
type IdentityTransformer struct {
	checkValues bool

	nSamples  int
	nFeatures int
	fitted    bool
}

// NewIdentityTransformer creates an identity transformer. When checkValues
// is true, Fit and Transform validate that every column is numeric and
// every value is present and finite.
func NewIdentityTransformer(checkValues bool) *IdentityTransformer {
	return &IdentityTransformer{checkValues: checkValues}
}

// Fit records the input's row and column counts.
func (t *IdentityTransformer) Fit(df *frame.DataFrame, labels *frame.Series) error {
	if err := checkFrame(df); err != nil {
		return err
	}
	if t.checkValues {
		if err := checkNumericValues(df); err != nil {
			return err
		}
	}
	t.nSamples = df.Nrow()
	t.nFeatures = df.Ncol()
	t.fitted = true
	return nil
}

// Transform returns df unchanged after re-validating its shape against fit
// time.
func (t *IdentityTransformer) Transform(df *frame.DataFrame) (*frame.DataFrame, error) {
	if !t.fitted {
		return nil, core.NewNotFittedError("IdentityTransformer")
	}
	if err := checkFrame(df); err != nil {
		return nil, err
	}
	if t.checkValues {
		if err := checkNumericValues(df); err != nil {
			return nil, err
		}
	}
	if df.Ncol() != t.nFeatures {
		return nil, core.NewShapeMismatchError(t.nFeatures, df.Ncol())
	}
	return df, nil
}

// Shape returns the row and column counts seen at fit time.
func (t *IdentityTransformer) Shape() (rows, cols int) {
	return t.nSamples, t.nFeatures
}

func checkNumericValues(df *frame.DataFrame) error {
	for _, col := range df.Columns() {
		if !col.Kind().Numeric() {
			return fmt.Errorf("%w: column %q has non-numeric kind %s",
				core.ErrWrongInputType, col.Name(), col.Kind())
		}
		for i := 0; i < col.Len(); i++ {
			v, ok := col.Float(i)
			if !ok {
				return fmt.Errorf("%w: column %q has a missing value at row %d",
					core.ErrWrongInputType, col.Name(), i)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: column %q has a non-finite value at row %d",
					core.ErrWrongInputType, col.Name(), i)
			}
		}
	}
	return nil
}
