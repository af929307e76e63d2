// Package testkit generates deterministic synthetic frames for tests.
package testkit

import (
	"fmt"
	"math/rand"
	"time"

	"tabprof/domain/frame"
)

// Generator produces reproducible synthetic columns and frames.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded for reproducibility.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// FloatColumn generates a normal-ish float column. nullEvery > 0 nulls every
// n-th entry.
func (g *Generator) FloatColumn(name string, n, nullEvery int) frame.Series {
	values := make([]float64, n)
	valid := make([]bool, n)
	for i := range values {
		values[i] = g.rng.NormFloat64()*10 + 50
		valid[i] = nullEvery == 0 || (i+1)%nullEvery != 0
	}
	return frame.Floats(name, values, valid)
}

// IntColumn generates a sequential integer column starting at 1.
func (g *Generator) IntColumn(name string, n int) frame.Series {
	values := make([]int64, n)
	for i := range values {
		values[i] = int64(i + 1)
	}
	return frame.Ints(name, values, nil)
}

// CategoryColumn cycles through the given labels.
func (g *Generator) CategoryColumn(name string, n int, labels ...string) frame.Series {
	if len(labels) == 0 {
		labels = []string{"a", "b", "c"}
	}
	values := make([]string, n)
	for i := range values {
		values[i] = labels[i%len(labels)]
	}
	return frame.Strings(name, values, nil)
}

// TimeColumn generates daily timestamps from a fixed epoch.
func (g *Generator) TimeColumn(name string, n int) frame.Series {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	values := make([]time.Time, n)
	for i := range values {
		values[i] = base.AddDate(0, 0, i)
	}
	return frame.Times(name, values, nil)
}

// MixedFrame builds an id/val/cat frame, the common profiling fixture.
func (g *Generator) MixedFrame(rows int) *frame.DataFrame {
	return frame.MustNew(
		g.IntColumn("id", rows),
		g.FloatColumn("val", rows, 0),
		g.CategoryColumn("cat", rows, "red", "green", "blue"),
	)
}

// FrameWithDuplicateRows repeats row 0 at each of the given indices.
func (g *Generator) FrameWithDuplicateRows(rows int, dupAt ...int) *frame.DataFrame {
	ints := make([]int64, rows)
	strs := make([]string, rows)
	for i := range ints {
		ints[i] = int64(i + 1)
		strs[i] = fmt.Sprintf("row-%d", i+1)
	}
	for _, i := range dupAt {
		ints[i] = ints[0]
		strs[i] = strs[0]
	}
	return frame.MustNew(
		frame.Ints("num", ints, nil),
		frame.Strings("label", strs, nil),
	)
}
