// Package schema holds the dataset profiling data model: semantic type
// enums, per-column and per-dataset descriptors, and the construction
// functions that build them from a frame.
package schema

import (
	"tabprof/domain/core"
	"tabprof/domain/frame"
)

// Dtypes is the semantic type of a column. Serializes as its string tag.
type Dtypes string

const (
	DtypeInteger     Dtypes = "integer"
	DtypeFloat       Dtypes = "float"
	DtypeBoolean     Dtypes = "bool"
	DtypeCategorical Dtypes = "categorical"
	DtypeDate        Dtypes = "date"
)

// Valid reports whether d is one of the declared tags.
func (d Dtypes) Valid() bool {
	switch d {
	case DtypeInteger, DtypeFloat, DtypeBoolean, DtypeCategorical, DtypeDate:
		return true
	}
	return false
}

// Numeric reports whether d belongs to the numeric dtype family.
func (d Dtypes) Numeric() bool {
	return d == DtypeInteger || d == DtypeFloat
}

// DtypeOf maps a column's native storage kind to its semantic dtype.
// Checks run in order; the first match wins.
func DtypeOf(k frame.Kind) (Dtypes, error) {
	switch {
	case k == frame.KindCategorical:
		return DtypeCategorical, nil
	case k == frame.KindInt:
		return DtypeInteger, nil
	case k == frame.KindFloat:
		return DtypeFloat, nil
	case k == frame.KindBool:
		return DtypeBoolean, nil
	case k == frame.KindTime:
		return DtypeDate, nil
	case k == frame.KindString:
		return DtypeCategorical, nil
	default:
		return "", core.NewUnsupportedDtypeError(k.String())
	}
}

// ColumnType is a column's role in the dataset.
type ColumnType string

const (
	ColumnFeatures ColumnType = "features"
	ColumnTarget   ColumnType = "target"
	ColumnIndex    ColumnType = "index"
	ColumnUniqueID ColumnType = "unique-id"
)

// FeatureType is the statistical shape of a column's values.
type FeatureType string

const (
	FeatureOrdinal    FeatureType = "Ordinal"
	FeatureNominal    FeatureType = "Nominal"
	FeatureContinuous FeatureType = "Continuous"
	FeatureConstant   FeatureType = "constant"
)

// ImputationScheme declares how missing values in a column would be filled.
type ImputationScheme string

const (
	ImputeMean   ImputationScheme = "mean"
	ImputeMedian ImputationScheme = "median"
	ImputeMode   ImputationScheme = "mode"
	ImputeValue  ImputationScheme = "value"
)

// OutlierScheme selects an outlier detection method.
type OutlierScheme string

const (
	OutlierZScore OutlierScheme = "Z_Score"
	OutlierIQR    OutlierScheme = "IQR"
)
