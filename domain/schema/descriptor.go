package schema

import (
	"strings"

	"github.com/montanaflynn/stats"

	"tabprof/domain/core"
	"tabprof/domain/frame"
)

// ColumnDescriptor is the point-in-time statistical profile of one column.
// It is a value object: constructed once by BuildColumnDescriptor, never
// mutated afterward except through explicit reconstruction (WithImputation).
type ColumnDescriptor struct {
	Name        string      `json:"name"`
	ColType     ColumnType  `json:"col_type"`
	Dtype       Dtypes      `json:"dtype"`
	FeatureType FeatureType `json:"feature_type"`

	Count        int         `json:"count"`
	Mean         *float64    `json:"mean"`
	Median       *float64    `json:"median"`
	Mode         interface{} `json:"mode"`
	NullCount    int         `json:"null_count"`
	UniqueValues int         `json:"unique_values"`

	ImputationScheme ImputationScheme `json:"imputation_scheme,omitempty"`
	ImputationValue  interface{}      `json:"imputation_value,omitempty"`

	IsSelected bool `json:"is_selected"`
}

// BuildColumnDescriptor profiles the first column named colname.
// targetColumns assigns the target role by membership.
func BuildColumnDescriptor(df *frame.DataFrame, colname string, targetColumns []string) (ColumnDescriptor, error) {
	col, ok := df.Column(colname)
	if !ok {
		return ColumnDescriptor{}, core.NewMissingColumnError([]string{colname})
	}
	return buildFromSeries(col, targetSet(targetColumns))
}

func targetSet(targetColumns []string) map[string]bool {
	set := make(map[string]bool, len(targetColumns))
	for _, name := range targetColumns {
		set[name] = true
	}
	return set
}

func buildFromSeries(col frame.Series, targets map[string]bool) (ColumnDescriptor, error) {
	count := col.NonNullCount()

	var (
		mean, median *float64
		mode         interface{}
		featureType  FeatureType
		dtype        Dtypes
		err          error
	)

	switch kind := col.Kind(); {
	case kind.Numeric():
		featureType = FeatureContinuous
		// An all-null column carries no statistics; absence is encoded as
		// nil rather than a fabricated sentinel.
		if count > 0 {
			values := col.Floats()
			m, statErr := stats.Mean(values)
			if statErr != nil {
				return ColumnDescriptor{}, statErr
			}
			md, statErr := stats.Median(values)
			if statErr != nil {
				return ColumnDescriptor{}, statErr
			}
			mean, median = &m, &md
			mode, _ = col.Mode()
		}
		if dtype, err = DtypeOf(kind); err != nil {
			return ColumnDescriptor{}, err
		}
	case kind == frame.KindString || kind == frame.KindCategorical || kind == frame.KindBool:
		featureType = FeatureOrdinal
		if count > 0 {
			mode, _ = col.Mode()
		}
		if kind == frame.KindCategorical {
			dtype = DtypeCategorical
		} else if dtype, err = DtypeOf(kind); err != nil {
			return ColumnDescriptor{}, err
		}
	case kind == frame.KindTime:
		featureType = FeatureNominal
		if dtype, err = DtypeOf(kind); err != nil {
			return ColumnDescriptor{}, err
		}
	default:
		return ColumnDescriptor{}, core.NewUnsupportedDtypeError(col.Kind().String())
	}

	colType := ColumnFeatures
	if targets[col.Name()] {
		colType = ColumnTarget
	}

	unique := col.UniqueValues()
	if unique == 1 {
		if colType == ColumnTarget {
			return ColumnDescriptor{}, core.NewInvalidTargetError(col.Name())
		}
		featureType = FeatureConstant
	}

	d := ColumnDescriptor{
		Name:         col.Name(),
		ColType:      colType,
		Dtype:        dtype,
		FeatureType:  featureType,
		Count:        count,
		Mean:         mean,
		Median:       median,
		Mode:         mode,
		NullCount:    col.NullCount(),
		UniqueValues: unique,
		IsSelected:   true,
	}
	if err := d.Validate(); err != nil {
		return ColumnDescriptor{}, err
	}
	return d, nil
}

// WithImputation returns a copy of the descriptor carrying an imputation
// decision, after cross-validating scheme and value against the dtype. The
// receiver is unchanged; an invalid combination never becomes a value.
func (d ColumnDescriptor) WithImputation(scheme ImputationScheme, value interface{}) (ColumnDescriptor, error) {
	out := d
	out.ImputationScheme = scheme
	out.ImputationValue = value
	if err := out.Validate(); err != nil {
		return ColumnDescriptor{}, err
	}
	return out, nil
}

// Validate runs the cross-field imputation checks. An unset scheme is valid.
func (d ColumnDescriptor) Validate() error {
	if d.ImputationScheme == "" {
		return nil
	}
	switch {
	case d.Dtype.Numeric():
		if d.ImputationScheme == ImputeMode {
			return core.NewInvalidImputationError(string(d.ImputationScheme), string(d.Dtype))
		}
		if d.ImputationScheme == ImputeValue && !isNumericValue(d.ImputationValue) {
			return core.NewInvalidImputationValueError(d.ImputationValue, string(d.Dtype))
		}
	case d.Dtype == DtypeCategorical:
		if d.ImputationScheme == ImputeMean || d.ImputationScheme == ImputeMedian {
			return core.NewInvalidImputationError(string(d.ImputationScheme), string(d.Dtype))
		}
		if d.ImputationScheme == ImputeValue {
			if _, ok := d.ImputationValue.(string); !ok {
				return core.NewInvalidImputationValueError(d.ImputationValue, string(d.Dtype))
			}
		}
	case d.Dtype == DtypeBoolean || d.Dtype == DtypeDate:
		if d.ImputationScheme == ImputeMean || d.ImputationScheme == ImputeMedian {
			return core.NewInvalidImputationError(string(d.ImputationScheme), string(d.Dtype))
		}
		if d.ImputationScheme == ImputeValue {
			if _, ok := d.ImputationValue.(bool); !ok {
				return core.NewInvalidImputationValueError(d.ImputationValue, string(d.Dtype))
			}
		}
	}
	return nil
}

func isNumericValue(v interface{}) bool {
	switch v.(type) {
	case int, int32, int64, float32, float64:
		return true
	}
	return false
}

// DatasetDescriptor is the point-in-time profile of a whole dataset.
type DatasetDescriptor struct {
	RowCount         int                `json:"row_count"`
	Columns          []ColumnDescriptor `json:"columns"`
	DuplicateRows    []int              `json:"duplicate_rows"`
	DuplicateColumns []string           `json:"duplicate_columns"`
}

// BuildDatasetDescriptor profiles every column of df in source order.
// Any column failure aborts the build; there is no partial success.
func BuildDatasetDescriptor(df *frame.DataFrame, targetColumns []string) (DatasetDescriptor, error) {
	if df == nil || df.Ncol() == 0 {
		return DatasetDescriptor{}, core.ErrWrongInputType
	}
	if df.Nrow() == 0 {
		return DatasetDescriptor{}, core.ErrEmptyInput
	}

	targets := targetSet(targetColumns)
	columns := make([]ColumnDescriptor, 0, df.Ncol())
	for _, col := range df.Columns() {
		desc, err := buildFromSeries(col, targets)
		if err != nil {
			return DatasetDescriptor{}, err
		}
		columns = append(columns, desc)
	}

	return DatasetDescriptor{
		RowCount:         df.Nrow(),
		Columns:          columns,
		DuplicateRows:    df.DuplicateRows(),
		DuplicateColumns: df.DuplicateColumns(),
	}, nil
}

// TargetColumns returns the descriptors holding the target role.
func (d DatasetDescriptor) TargetColumns() []ColumnDescriptor {
	var out []ColumnDescriptor
	for _, c := range d.Columns {
		if c.ColType == ColumnTarget {
			out = append(out, c)
		}
	}
	return out
}

// ColumnNames returns the profiled column names in source order.
func (d DatasetDescriptor) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

func (d DatasetDescriptor) String() string {
	return "dataset profile: " + strings.Join(d.ColumnNames(), ", ")
}

// OutlierCount is a declared extension point. The detection schemes exist
// (see OutlierScheme) but the dataset-level contract is not yet defined.
func (d DatasetDescriptor) OutlierCount(scheme OutlierScheme) (int, error) {
	return 0, core.ErrNotImplemented
}

// IsImbalance is a declared extension point for target class balance.
func (d DatasetDescriptor) IsImbalance() (bool, error) {
	return false, core.ErrNotImplemented
}

// TargetStatistics is a declared extension point for target distributions.
func (d DatasetDescriptor) TargetStatistics() (TargetStat, error) {
	return TargetStat{}, core.ErrNotImplemented
}
