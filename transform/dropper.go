package transform

import (
	"tabprof/domain/core"
	"tabprof/domain/frame"
)

// ColumnDropper removes specific columns by name.
type ColumnDropper struct {
	columns []string

	featureNames []string
	fitted       bool
}

// NewColumnDropper creates a dropper for the given column names. A single
// name is simply a one-element list.
func NewColumnDropper(columns ...string) *ColumnDropper {
	return &ColumnDropper{columns: columns}
}

// Fit resolves the drop-list against df and records the retained feature
// names. Fails when a requested column is absent or when dropping would
// remove every column.
func (t *ColumnDropper) Fit(df *frame.DataFrame, labels *frame.Series) error {
	if err := checkFrame(df); err != nil {
		return err
	}
	if missing := missingColumns(df, t.columns); len(missing) > 0 {
		return core.NewMissingColumnError(missing)
	}
	dropped, err := df.Drop(t.columns)
	if err != nil {
		return err
	}
	if dropped.Ncol() == 0 {
		return core.NewEmptyResultError("dropping all requested columns would leave an empty frame")
	}
	t.featureNames = dropped.Names()
	t.fitted = true
	return nil
}

// Transform removes the stored drop-list columns from df.
func (t *ColumnDropper) Transform(df *frame.DataFrame) (*frame.DataFrame, error) {
	if !t.fitted {
		return nil, core.NewNotFittedError("ColumnDropper")
	}
	if err := checkFrame(df); err != nil {
		return nil, err
	}
	if len(t.columns) == 0 {
		return df, nil
	}
	return df.Drop(t.columns)
}

// FeatureNames returns the column names retained at fit time.
func (t *ColumnDropper) FeatureNames() []string {
	return t.featureNames
}
