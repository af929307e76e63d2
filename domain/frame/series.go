package frame

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Kind identifies the native storage type of a column.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindBool
	KindString
	KindCategorical
	KindTime
)

// String returns the storage type name
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindCategorical:
		return "categorical"
	case KindTime:
		return "time"
	default:
		return "invalid"
	}
}

// Numeric reports whether the kind stores numeric values.
func (k Kind) Numeric() bool {
	return k == KindInt || k == KindFloat
}

// Series is a single named, typed, null-aware column. Values are immutable
// after construction.
type Series struct {
	name string
	kind Kind

	ints   []int64
	floats []float64
	bools  []bool
	strs   []string
	times  []time.Time

	valid []bool // valid[i] == false marks a missing entry
}

func normalizeMask(n int, valid []bool) []bool {
	if valid == nil {
		mask := make([]bool, n)
		for i := range mask {
			mask[i] = true
		}
		return mask
	}
	if len(valid) != n {
		panic(fmt.Sprintf("frame: validity mask length %d does not match %d values", len(valid), n))
	}
	mask := make([]bool, n)
	copy(mask, valid)
	return mask
}

// Ints constructs an integer series. A nil mask marks every entry valid.
func Ints(name string, values []int64, valid []bool) Series {
	vals := make([]int64, len(values))
	copy(vals, values)
	return Series{name: name, kind: KindInt, ints: vals, valid: normalizeMask(len(values), valid)}
}

// Floats constructs a floating-point series.
func Floats(name string, values []float64, valid []bool) Series {
	vals := make([]float64, len(values))
	copy(vals, values)
	return Series{name: name, kind: KindFloat, floats: vals, valid: normalizeMask(len(values), valid)}
}

// Bools constructs a boolean series.
func Bools(name string, values []bool, valid []bool) Series {
	vals := make([]bool, len(values))
	copy(vals, values)
	return Series{name: name, kind: KindBool, bools: vals, valid: normalizeMask(len(values), valid)}
}

// Strings constructs a free-text series.
func Strings(name string, values []string, valid []bool) Series {
	vals := make([]string, len(values))
	copy(vals, values)
	return Series{name: name, kind: KindString, strs: vals, valid: normalizeMask(len(values), valid)}
}

// Categories constructs a categorical-typed series. Storage matches Strings;
// only the declared kind differs.
func Categories(name string, values []string, valid []bool) Series {
	s := Strings(name, values, valid)
	s.kind = KindCategorical
	return s
}

// Times constructs a datetime series.
func Times(name string, values []time.Time, valid []bool) Series {
	vals := make([]time.Time, len(values))
	copy(vals, values)
	return Series{name: name, kind: KindTime, times: vals, valid: normalizeMask(len(values), valid)}
}

// Name returns the column name.
func (s Series) Name() string { return s.name }

// Kind returns the native storage type.
func (s Series) Kind() Kind { return s.kind }

// Len returns the number of entries including missing ones.
func (s Series) Len() int { return len(s.valid) }

// IsNull reports whether entry i is missing.
func (s Series) IsNull(i int) bool { return !s.valid[i] }

// Value returns entry i as its native Go type, or nil when missing.
func (s Series) Value(i int) interface{} {
	if !s.valid[i] {
		return nil
	}
	switch s.kind {
	case KindInt:
		return s.ints[i]
	case KindFloat:
		return s.floats[i]
	case KindBool:
		return s.bools[i]
	case KindString, KindCategorical:
		return s.strs[i]
	case KindTime:
		return s.times[i]
	default:
		return nil
	}
}

// Float returns entry i as a float64 for numeric kinds. The second return is
// false for missing entries or non-numeric kinds.
func (s Series) Float(i int) (float64, bool) {
	if !s.valid[i] {
		return 0, false
	}
	switch s.kind {
	case KindInt:
		return float64(s.ints[i]), true
	case KindFloat:
		return s.floats[i], true
	default:
		return 0, false
	}
}

// NonNullCount returns the number of present entries.
func (s Series) NonNullCount() int {
	n := 0
	for _, ok := range s.valid {
		if ok {
			n++
		}
	}
	return n
}

// NullCount returns the number of missing entries.
func (s Series) NullCount() int {
	return s.Len() - s.NonNullCount()
}

// Floats returns the present numeric values in row order. Nil for
// non-numeric kinds.
func (s Series) Floats() []float64 {
	if !s.kind.Numeric() {
		return nil
	}
	out := make([]float64, 0, s.NonNullCount())
	for i := range s.valid {
		if v, ok := s.Float(i); ok {
			out = append(out, v)
		}
	}
	return out
}

// UniqueValues returns the number of distinct present values.
func (s Series) UniqueValues() int {
	seen := make(map[interface{}]struct{})
	for i := range s.valid {
		if v := s.Value(i); v != nil {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}

// Mode returns the most frequent present value. Ties resolve to the first
// value in ascending order, matching sorted-mode semantics. The second
// return is false when the series has no present values.
func (s Series) Mode() (interface{}, bool) {
	counts := make(map[interface{}]int)
	for i := range s.valid {
		if v := s.Value(i); v != nil {
			counts[v]++
		}
	}
	if len(counts) == 0 {
		return nil, false
	}

	best := 0
	for _, c := range counts {
		if c > best {
			best = c
		}
	}
	candidates := make([]interface{}, 0, len(counts))
	for v, c := range counts {
		if c == best {
			candidates = append(candidates, v)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return lessValue(s.kind, candidates[i], candidates[j])
	})
	return candidates[0], true
}

func lessValue(kind Kind, a, b interface{}) bool {
	switch kind {
	case KindInt:
		return a.(int64) < b.(int64)
	case KindFloat:
		return a.(float64) < b.(float64)
	case KindBool:
		return !a.(bool) && b.(bool)
	case KindString, KindCategorical:
		return a.(string) < b.(string)
	case KindTime:
		return a.(time.Time).Before(b.(time.Time))
	default:
		return false
	}
}

// cell renders entry i for row fingerprinting. Missing entries render as a
// distinguished marker so null and empty string never collide.
func (s Series) cell(i int) string {
	if !s.valid[i] {
		return "\x00null"
	}
	switch s.kind {
	case KindInt:
		return strconv.FormatInt(s.ints[i], 10)
	case KindFloat:
		return strconv.FormatFloat(s.floats[i], 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(s.bools[i])
	case KindString, KindCategorical:
		return s.strs[i]
	case KindTime:
		return s.times[i].Format(time.RFC3339Nano)
	default:
		return ""
	}
}
