// Package analysis computes extended distribution summaries for numeric
// columns. These enrich a dataset profile but are not part of the
// ColumnDescriptor contract.
package analysis

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"tabprof/domain/core"
	"tabprof/domain/frame"
)

// NumericSummary describes the distribution of one numeric column.
type NumericSummary struct {
	Name       string `json:"name"`
	SampleSize int    `json:"sample_size"`

	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`

	Skewness     float64 `json:"skewness"`
	Kurtosis     float64 `json:"kurtosis"` // total kurtosis, 3 is normal
	NormalPValue float64 `json:"normal_p_value"`
	IsNormal     bool    `json:"is_normal"`

	OutlierCount int `json:"outlier_count"` // IQR fence method
}

// Summarize computes a NumericSummary for a numeric series with at least
// one present value.
func Summarize(col frame.Series) (*NumericSummary, error) {
	if !col.Kind().Numeric() {
		return nil, core.NewUnsupportedDtypeError(col.Kind().String())
	}
	data := col.Floats()
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: column %q has no present values", core.ErrEmptyInput, col.Name())
	}

	mean, _ := stats.Mean(data)
	stdDev, _ := stats.StandardDeviation(data)
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)
	median, _ := stats.Median(data)
	q25, _ := stats.Percentile(data, 25)
	q75, _ := stats.Percentile(data, 75)

	skewness := sampleSkewness(data, mean, stdDev)
	kurtosis := sampleKurtosis(data, mean, stdDev)
	isNormal, pValue := jarqueBera(len(data), skewness, kurtosis-3)

	return &NumericSummary{
		Name:         col.Name(),
		SampleSize:   len(data),
		Mean:         mean,
		StdDev:       stdDev,
		Min:          min,
		Max:          max,
		Median:       median,
		Q25:          q25,
		Q75:          q75,
		Skewness:     skewness,
		Kurtosis:     kurtosis,
		NormalPValue: pValue,
		IsNormal:     isNormal,
		OutlierCount: countOutliersIQR(data, q25, q75),
	}, nil
}

// SummarizeFrame summarizes every numeric column of df, keyed by name.
// Non-numeric and all-null columns are skipped.
func SummarizeFrame(df *frame.DataFrame) map[string]*NumericSummary {
	out := make(map[string]*NumericSummary)
	for _, col := range df.Columns() {
		if !col.Kind().Numeric() || col.NonNullCount() == 0 {
			continue
		}
		if s, err := Summarize(col); err == nil {
			out[col.Name()] = s
		}
	}
	return out
}

func sampleSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 || stdDev == 0 {
		return 0
	}
	n := float64(len(data))
	sum := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sum += d * d * d
	}
	// Adjusted Fisher-Pearson coefficient
	return sum / n * math.Sqrt(n*(n-1)) / (n - 2)
}

func sampleKurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 || stdDev == 0 {
		return 3.0 // normal kurtosis
	}
	n := float64(len(data))
	sum := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sum += d * d * d * d
	}
	kurtosis := sum / n
	correction := (n - 1) / ((n - 2) * (n - 3))
	return kurtosis*correction + 6/(n+1) + 3
}

// jarqueBera tests normality from skewness and excess kurtosis. The test
// statistic follows a chi-squared distribution with two degrees of freedom.
func jarqueBera(n int, skewness, excessKurtosis float64) (isNormal bool, pValue float64) {
	if n < 3 {
		return false, 1.0
	}
	jb := float64(n) / 6.0 * (skewness*skewness + excessKurtosis*excessKurtosis/4.0)
	chi := distuv.ChiSquared{K: 2}
	pValue = 1 - chi.CDF(jb)
	return pValue > 0.05, pValue
}

func countOutliersIQR(data []float64, q25, q75 float64) int {
	iqr := q75 - q25
	lower := q25 - 1.5*iqr
	upper := q75 + 1.5*iqr
	count := 0
	for _, x := range data {
		if x < lower || x > upper {
			count++
		}
	}
	return count
}
