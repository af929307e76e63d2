package transform

import (
	"fmt"
	"sort"
	"strings"

	"tabprof/domain/core"
	"tabprof/domain/frame"
)

// TypeSelector keeps columns matching an include/exclude storage-kind
// filter. An empty include list admits every kind not excluded.
type TypeSelector struct {
	include []frame.Kind
	exclude []frame.Kind

	kinds        map[string]frame.Kind
	featureNames []string
	fitted       bool
}

// NewTypeSelector creates a selector filtering on storage kinds.
func NewTypeSelector(include, exclude []frame.Kind) *TypeSelector {
	return &TypeSelector{include: include, exclude: exclude}
}

// Fit records each column's storage kind and the filtered selection.
// Fails when the filter matches nothing.
func (t *TypeSelector) Fit(df *frame.DataFrame, labels *frame.Series) error {
	if err := checkFrame(df); err != nil {
		return err
	}
	selected := df.SelectKinds(t.include, t.exclude)
	if selected.Ncol() == 0 {
		return core.NewEmptyResultError("provided kind filter matches no columns")
	}
	t.kinds = df.Kinds()
	t.featureNames = selected.Names()
	t.fitted = true
	return nil
}

// Transform recomputes the filtered selection on df, failing when any
// column recorded at fit time now carries a different storage kind.
func (t *TypeSelector) Transform(df *frame.DataFrame) (*frame.DataFrame, error) {
	if !t.fitted {
		return nil, core.NewNotFittedError("TypeSelector")
	}
	if err := checkFrame(df); err != nil {
		return nil, err
	}
	current := df.Kinds()
	for name, kind := range current {
		recorded, ok := t.kinds[name]
		if ok && recorded != kind {
			return nil, core.NewSchemaMismatchError(renderKinds(t.kinds), renderKinds(current))
		}
	}
	return df.SelectKinds(t.include, t.exclude), nil
}

// FeatureNames returns the column names selected at fit time.
func (t *TypeSelector) FeatureNames() []string {
	return t.featureNames
}

func renderKinds(kinds map[string]frame.Kind) string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s:%s", name, kinds[name])
	}
	return strings.Join(parts, " ")
}
