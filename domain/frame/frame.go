// Package frame provides a small labeled, typed, null-aware tabular
// structure. Columns keep their source order and duplicate names are
// representable, which dataset profiling needs for duplicate-column
// detection.
package frame

import (
	"fmt"

	"tabprof/domain/core"
)

// DataFrame is an ordered collection of equal-length columns.
type DataFrame struct {
	cols []Series
}

// New builds a frame from columns, validating that all lengths agree.
func New(cols ...Series) (*DataFrame, error) {
	if len(cols) > 0 {
		n := cols[0].Len()
		for _, c := range cols[1:] {
			if c.Len() != n {
				return nil, fmt.Errorf("frame: column %q has %d rows, want %d", c.Name(), c.Len(), n)
			}
		}
	}
	copied := make([]Series, len(cols))
	copy(copied, cols)
	return &DataFrame{cols: copied}, nil
}

// MustNew is New for statically known-good columns, typically tests.
func MustNew(cols ...Series) *DataFrame {
	df, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return df
}

// Nrow returns the number of rows.
func (df *DataFrame) Nrow() int {
	if len(df.cols) == 0 {
		return 0
	}
	return df.cols[0].Len()
}

// Ncol returns the number of columns.
func (df *DataFrame) Ncol() int { return len(df.cols) }

// Names returns column names in source order, duplicates included.
func (df *DataFrame) Names() []string {
	names := make([]string, len(df.cols))
	for i, c := range df.cols {
		names[i] = c.Name()
	}
	return names
}

// Columns returns the columns in source order.
func (df *DataFrame) Columns() []Series {
	cols := make([]Series, len(df.cols))
	copy(cols, df.cols)
	return cols
}

// Column returns the first column with the given name.
func (df *DataFrame) Column(name string) (Series, bool) {
	for _, c := range df.cols {
		if c.Name() == name {
			return c, true
		}
	}
	return Series{}, false
}

// HasColumn reports whether a column with the given name exists.
func (df *DataFrame) HasColumn(name string) bool {
	_, ok := df.Column(name)
	return ok
}

// Kinds returns the storage kind of each column keyed by name. For duplicate
// names the first occurrence wins.
func (df *DataFrame) Kinds() map[string]Kind {
	kinds := make(map[string]Kind, len(df.cols))
	for _, c := range df.cols {
		if _, seen := kinds[c.Name()]; !seen {
			kinds[c.Name()] = c.Kind()
		}
	}
	return kinds
}

// Select returns a new frame holding exactly the requested columns, in the
// requested order. The first occurrence of each name is used.
func (df *DataFrame) Select(names []string) (*DataFrame, error) {
	var missing []string
	cols := make([]Series, 0, len(names))
	for _, name := range names {
		c, ok := df.Column(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		cols = append(cols, c)
	}
	if len(missing) > 0 {
		return nil, core.NewMissingColumnError(missing)
	}
	return &DataFrame{cols: cols}, nil
}

// Drop returns a new frame without any column whose name is in names.
func (df *DataFrame) Drop(names []string) (*DataFrame, error) {
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		drop[name] = true
	}
	var missing []string
	for _, name := range names {
		if !df.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, core.NewMissingColumnError(missing)
	}
	kept := make([]Series, 0, len(df.cols))
	for _, c := range df.cols {
		if !drop[c.Name()] {
			kept = append(kept, c)
		}
	}
	return &DataFrame{cols: kept}, nil
}

// SelectKinds returns the columns passing an include/exclude kind filter.
// An empty include list admits every kind not excluded.
func (df *DataFrame) SelectKinds(include, exclude []Kind) *DataFrame {
	in := make(map[Kind]bool, len(include))
	for _, k := range include {
		in[k] = true
	}
	out := make(map[Kind]bool, len(exclude))
	for _, k := range exclude {
		out[k] = true
	}
	kept := make([]Series, 0, len(df.cols))
	for _, c := range df.cols {
		if out[c.Kind()] {
			continue
		}
		if len(in) > 0 && !in[c.Kind()] {
			continue
		}
		kept = append(kept, c)
	}
	return &DataFrame{cols: kept}
}

// DuplicateRows returns the indices of rows that exactly repeat an earlier
// row. The first occurrence is not reported.
func (df *DataFrame) DuplicateRows() []int {
	dups := []int{}
	seen := make(map[core.RowFingerprint]bool)
	for i := 0; i < df.Nrow(); i++ {
		fp := df.rowFingerprint(i)
		if seen[fp] {
			dups = append(dups, i)
			continue
		}
		seen[fp] = true
	}
	return dups
}

// DuplicateColumns returns the names of columns repeating an earlier
// column's name. Detection is name-based, not value-based; each repeat
// occurrence contributes one entry.
func (df *DataFrame) DuplicateColumns() []string {
	dups := []string{}
	seen := make(map[string]bool)
	for _, c := range df.cols {
		if seen[c.Name()] {
			dups = append(dups, c.Name())
			continue
		}
		seen[c.Name()] = true
	}
	return dups
}

func (df *DataFrame) rowFingerprint(i int) core.RowFingerprint {
	cells := make([]string, len(df.cols))
	for j, c := range df.cols {
		cells[j] = c.cell(i)
	}
	return core.ComputeRowFingerprint(cells)
}
