package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabprof/domain/core"
	"tabprof/domain/frame"
)

func mixedFrame() *frame.DataFrame {
	return frame.MustNew(
		frame.Ints("id", []int64{1, 2, 3, 4, 5}, nil),
		frame.Floats("val", []float64{1.0, 2.0, 2.0, 4.0, 5.0}, nil),
		frame.Strings("cat", []string{"a", "b", "a", "c", "a"}, nil),
	)
}

func TestBuildDatasetDescriptorMixedFrame(t *testing.T) {
	d, err := BuildDatasetDescriptor(mixedFrame(), []string{"val"})
	require.NoError(t, err)

	assert.Equal(t, 5, d.RowCount)
	assert.Equal(t, []string{"id", "val", "cat"}, d.ColumnNames())
	assert.Empty(t, d.DuplicateRows)
	assert.Empty(t, d.DuplicateColumns)

	val := d.Columns[1]
	assert.Equal(t, ColumnTarget, val.ColType)
	assert.Equal(t, FeatureContinuous, val.FeatureType)
	assert.Equal(t, DtypeFloat, val.Dtype)
	require.NotNil(t, val.Mean)
	require.NotNil(t, val.Median)
	assert.InDelta(t, 2.8, *val.Mean, 1e-9)
	assert.InDelta(t, 2.0, *val.Median, 1e-9)
	assert.Equal(t, 2.0, val.Mode)

	id := d.Columns[0]
	assert.Equal(t, ColumnFeatures, id.ColType)
	assert.Equal(t, DtypeInteger, id.Dtype)
	assert.Equal(t, 5, id.UniqueValues)

	cat := d.Columns[2]
	assert.Equal(t, FeatureOrdinal, cat.FeatureType)
	assert.Equal(t, DtypeCategorical, cat.Dtype)
	assert.Nil(t, cat.Mean)
	assert.Nil(t, cat.Median)
	assert.Equal(t, "a", cat.Mode)
	assert.True(t, cat.IsSelected)
}

func TestBuildColumnDescriptorBoolAndTime(t *testing.T) {
	df := frame.MustNew(
		frame.Bools("flag", []bool{true, true, false}, nil),
		frame.Times("ts", []time.Time{
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		}, nil),
	)

	flag, err := BuildColumnDescriptor(df, "flag", nil)
	require.NoError(t, err)
	assert.Equal(t, DtypeBoolean, flag.Dtype)
	assert.Equal(t, FeatureOrdinal, flag.FeatureType)
	assert.Equal(t, true, flag.Mode)
	assert.Nil(t, flag.Mean)

	ts, err := BuildColumnDescriptor(df, "ts", nil)
	require.NoError(t, err)
	assert.Equal(t, DtypeDate, ts.Dtype)
	assert.Equal(t, FeatureNominal, ts.FeatureType)
	assert.Nil(t, ts.Mode)
	assert.Nil(t, ts.Mean)
	assert.Nil(t, ts.Median)
}

func TestCategoricalStorageOverridesInference(t *testing.T) {
	df := frame.MustNew(frame.Categories("grade", []string{"A", "B", "A"}, nil))
	d, err := BuildColumnDescriptor(df, "grade", nil)
	require.NoError(t, err)
	assert.Equal(t, DtypeCategorical, d.Dtype)
	assert.Equal(t, FeatureOrdinal, d.FeatureType)
}

func TestConstantColumn(t *testing.T) {
	df := frame.MustNew(
		frame.Floats("flat", []float64{3, 3, 3}, nil),
		frame.Ints("id", []int64{1, 2, 3}, nil),
	)

	// As a feature the column degrades to constant.
	d, err := BuildColumnDescriptor(df, "flat", nil)
	require.NoError(t, err)
	assert.Equal(t, FeatureConstant, d.FeatureType)

	// As a target the same column is not learnable.
	_, err = BuildColumnDescriptor(df, "flat", []string{"flat"})
	assert.ErrorIs(t, err, core.ErrInvalidTarget)
}

func TestAllNullColumn(t *testing.T) {
	df := frame.MustNew(
		frame.Floats("void", []float64{0, 0, 0}, []bool{false, false, false}),
		frame.Ints("id", []int64{1, 2, 3}, nil),
	)

	d, err := BuildColumnDescriptor(df, "void", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Count)
	assert.Equal(t, 3, d.NullCount)
	assert.Equal(t, 0, d.UniqueValues)
	// No data means no statistics: nil, never a fabricated sentinel.
	assert.Nil(t, d.Mean)
	assert.Nil(t, d.Median)
	assert.Nil(t, d.Mode)
	// unique_values == 0 bypasses the constant branch.
	assert.Equal(t, FeatureContinuous, d.FeatureType)
}

func TestMissingColumn(t *testing.T) {
	_, err := BuildColumnDescriptor(mixedFrame(), "ghost", nil)
	assert.ErrorIs(t, err, core.ErrMissingColumn)
}

func TestBuildDatasetDescriptorInputChecks(t *testing.T) {
	_, err := BuildDatasetDescriptor(nil, nil)
	assert.ErrorIs(t, err, core.ErrWrongInputType)

	empty := frame.MustNew(frame.Ints("id", nil, nil))
	_, err = BuildDatasetDescriptor(empty, nil)
	assert.ErrorIs(t, err, core.ErrEmptyInput)
}

func TestBuildDatasetDescriptorDuplicates(t *testing.T) {
	df := frame.MustNew(
		frame.Ints("x", []int64{7, 1, 7, 2, 7}, nil),
		frame.Ints("x", []int64{9, 1, 9, 2, 9}, nil),
	)
	d, err := BuildDatasetDescriptor(df, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, d.DuplicateRows)
	assert.Equal(t, []string{"x"}, d.DuplicateColumns)
	assert.Len(t, d.Columns, 2)
}

func TestBuildIsIdempotent(t *testing.T) {
	df := mixedFrame()
	first, err := BuildDatasetDescriptor(df, []string{"val"})
	require.NoError(t, err)
	second, err := BuildDatasetDescriptor(df, []string{"val"})
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}

func TestDescriptorSerialization(t *testing.T) {
	d, err := BuildDatasetDescriptor(mixedFrame(), []string{"val"})
	require.NoError(t, err)

	raw, err := json.Marshal(d.Columns[1])
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "target", doc["col_type"])
	assert.Equal(t, "float", doc["dtype"])
	assert.Equal(t, "Continuous", doc["feature_type"])
	assert.Equal(t, float64(5), doc["count"])
	assert.Contains(t, doc, "unique_values")
	assert.Contains(t, doc, "null_count")
	assert.NotContains(t, doc, "imputation_scheme")
}

func TestWithImputation(t *testing.T) {
	df := mixedFrame()
	numeric, err := BuildColumnDescriptor(df, "val", nil)
	require.NoError(t, err)
	categorical, err := BuildColumnDescriptor(df, "cat", nil)
	require.NoError(t, err)

	tests := []struct {
		name   string
		base   ColumnDescriptor
		scheme ImputationScheme
		value  interface{}
		ok     bool
	}{
		{"numeric mean", numeric, ImputeMean, nil, true},
		{"numeric median", numeric, ImputeMedian, nil, true},
		{"numeric mode forbidden", numeric, ImputeMode, nil, false},
		{"numeric value", numeric, ImputeValue, 1.5, true},
		{"numeric value wrong type", numeric, ImputeValue, "high", false},
		{"categorical mode", categorical, ImputeMode, nil, true},
		{"categorical mean forbidden", categorical, ImputeMean, nil, false},
		{"categorical median forbidden", categorical, ImputeMedian, nil, false},
		{"categorical value", categorical, ImputeValue, "missing", true},
		{"categorical value wrong type", categorical, ImputeValue, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.base.WithImputation(tt.scheme, tt.value)
			if !tt.ok {
				assert.ErrorIs(t, err, core.ErrInvalidImputation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.scheme, out.ImputationScheme)
			// The receiver is never mutated.
			assert.Empty(t, tt.base.ImputationScheme)
		})
	}
}

func TestBooleanImputation(t *testing.T) {
	df := frame.MustNew(frame.Bools("flag", []bool{true, false, true}, nil))
	d, err := BuildColumnDescriptor(df, "flag", nil)
	require.NoError(t, err)

	_, err = d.WithImputation(ImputeMean, nil)
	assert.ErrorIs(t, err, core.ErrInvalidImputation)

	_, err = d.WithImputation(ImputeValue, "yes")
	assert.ErrorIs(t, err, core.ErrInvalidImputation)

	out, err := d.WithImputation(ImputeValue, true)
	require.NoError(t, err)
	assert.Equal(t, true, out.ImputationValue)
}

func TestExtensionPointsNotImplemented(t *testing.T) {
	d, err := BuildDatasetDescriptor(mixedFrame(), []string{"val"})
	require.NoError(t, err)

	_, err = d.OutlierCount(OutlierIQR)
	assert.ErrorIs(t, err, core.ErrNotImplemented)
	_, err = d.IsImbalance()
	assert.ErrorIs(t, err, core.ErrNotImplemented)
	_, err = d.TargetStatistics()
	assert.ErrorIs(t, err, core.ErrNotImplemented)
}

func TestTargetColumns(t *testing.T) {
	d, err := BuildDatasetDescriptor(mixedFrame(), []string{"val"})
	require.NoError(t, err)
	targets := d.TargetColumns()
	require.Len(t, targets, 1)
	assert.Equal(t, "val", targets[0].Name)
}
