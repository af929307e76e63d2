package transform

import (
	"tabprof/domain/core"
	"tabprof/domain/frame"
)

// ColumnSelector keeps exactly the requested columns, in request order.
type ColumnSelector struct {
	columns []string
	fitted  bool
}

// NewColumnSelector creates a selector for the given column names. A single
// name is simply a one-element list.
func NewColumnSelector(columns ...string) *ColumnSelector {
	return &ColumnSelector{columns: columns}
}

// Fit validates the requested column list against df.
func (t *ColumnSelector) Fit(df *frame.DataFrame, labels *frame.Series) error {
	if len(t.columns) == 0 {
		return core.ErrEmptyColumnList
	}
	if err := checkFrame(df); err != nil {
		return err
	}
	if missing := missingColumns(df, t.columns); len(missing) > 0 {
		return core.NewMissingColumnError(missing)
	}
	t.fitted = true
	return nil
}

// Transform returns a frame with exactly the stored columns in stored order.
func (t *ColumnSelector) Transform(df *frame.DataFrame) (*frame.DataFrame, error) {
	if !t.fitted {
		return nil, core.NewNotFittedError("ColumnSelector")
	}
	if err := checkFrame(df); err != nil {
		return nil, err
	}
	return df.Select(t.columns)
}

// FeatureNames returns the selected column names.
func (t *ColumnSelector) FeatureNames() []string {
	return t.columns
}
