package frame

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"tabprof/domain/core"
)

func TestSeriesCounts(t *testing.T) {
	s := Floats("val", []float64{1.5, 2.5, 0, 4.5}, []bool{true, true, false, true})

	if got := s.Len(); got != 4 {
		t.Errorf("Len() = %d, want 4", got)
	}
	if got := s.NonNullCount(); got != 3 {
		t.Errorf("NonNullCount() = %d, want 3", got)
	}
	if got := s.NullCount(); got != 1 {
		t.Errorf("NullCount() = %d, want 1", got)
	}
	if got := s.UniqueValues(); got != 3 {
		t.Errorf("UniqueValues() = %d, want 3", got)
	}
	if !s.IsNull(2) {
		t.Error("expected row 2 to be null")
	}
	if v := s.Value(2); v != nil {
		t.Errorf("Value(2) = %v, want nil", v)
	}
}

func TestSeriesMode(t *testing.T) {
	tests := []struct {
		name string
		s    Series
		want interface{}
	}{
		{
			name: "numeric tie resolves to smallest",
			s:    Ints("n", []int64{2, 2, 1, 1}, nil),
			want: int64(1),
		},
		{
			name: "clear numeric winner",
			s:    Floats("f", []float64{3.5, 3.5, 1.0}, nil),
			want: 3.5,
		},
		{
			name: "string tie resolves lexicographically",
			s:    Strings("s", []string{"b", "a", "b", "a"}, nil),
			want: "a",
		},
		{
			name: "bool tie resolves to false",
			s:    Bools("b", []bool{true, false}, nil),
			want: false,
		},
		{
			name: "nulls excluded from counting",
			s:    Strings("s", []string{"x", "y", "y", "x"}, []bool{false, true, true, false}),
			want: "y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.s.Mode()
			if !ok {
				t.Fatal("expected a mode")
			}
			if got != tt.want {
				t.Errorf("Mode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeriesModeAllNull(t *testing.T) {
	s := Floats("empty", []float64{0, 0}, []bool{false, false})
	if _, ok := s.Mode(); ok {
		t.Error("expected no mode for an all-null series")
	}
}

func TestNewRejectsRaggedColumns(t *testing.T) {
	_, err := New(
		Ints("a", []int64{1, 2}, nil),
		Ints("b", []int64{1, 2, 3}, nil),
	)
	if err == nil {
		t.Fatal("expected error for mismatched column lengths")
	}
}

func TestSelectAndDrop(t *testing.T) {
	df := MustNew(
		Ints("id", []int64{1, 2, 3}, nil),
		Floats("val", []float64{0.1, 0.2, 0.3}, nil),
		Strings("cat", []string{"a", "b", "c"}, nil),
	)

	selected, err := df.Select([]string{"cat", "id"})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if got := selected.Names(); !reflect.DeepEqual(got, []string{"cat", "id"}) {
		t.Errorf("Select order = %v, want [cat id]", got)
	}

	dropped, err := df.Drop([]string{"val"})
	if err != nil {
		t.Fatalf("Drop failed: %v", err)
	}
	if got := dropped.Names(); !reflect.DeepEqual(got, []string{"id", "cat"}) {
		t.Errorf("Drop result = %v, want [id cat]", got)
	}

	if _, err := df.Select([]string{"nope"}); !errors.Is(err, core.ErrMissingColumn) {
		t.Errorf("Select missing column error = %v, want ErrMissingColumn", err)
	}
	if _, err := df.Drop([]string{"nope"}); !errors.Is(err, core.ErrMissingColumn) {
		t.Errorf("Drop missing column error = %v, want ErrMissingColumn", err)
	}
}

func TestSelectKinds(t *testing.T) {
	df := MustNew(
		Ints("id", []int64{1, 2}, nil),
		Floats("val", []float64{0.1, 0.2}, nil),
		Strings("cat", []string{"a", "b"}, nil),
		Times("ts", []time.Time{time.Now(), time.Now()}, nil),
	)

	numeric := df.SelectKinds([]Kind{KindInt, KindFloat}, nil)
	if got := numeric.Names(); !reflect.DeepEqual(got, []string{"id", "val"}) {
		t.Errorf("include filter = %v, want [id val]", got)
	}

	noTime := df.SelectKinds(nil, []Kind{KindTime})
	if got := noTime.Names(); !reflect.DeepEqual(got, []string{"id", "val", "cat"}) {
		t.Errorf("exclude filter = %v, want [id val cat]", got)
	}
}

func TestDuplicateRows(t *testing.T) {
	// Rows 2 and 4 repeat row 0 exactly.
	df := MustNew(
		Ints("num", []int64{7, 1, 7, 2, 7}, nil),
		Strings("label", []string{"x", "a", "x", "b", "x"}, nil),
	)
	if got := df.DuplicateRows(); !reflect.DeepEqual(got, []int{2, 4}) {
		t.Errorf("DuplicateRows() = %v, want [2 4]", got)
	}
}

func TestDuplicateRowsDistinguishesNullFromEmpty(t *testing.T) {
	df := MustNew(
		Strings("s", []string{"", ""}, []bool{true, false}),
	)
	if got := df.DuplicateRows(); len(got) != 0 {
		t.Errorf("DuplicateRows() = %v, want none", got)
	}
}

func TestDuplicateColumns(t *testing.T) {
	df := MustNew(
		Ints("x", []int64{1}, nil),
		Ints("y", []int64{2}, nil),
		Floats("x", []float64{3}, nil),
	)
	if got := df.DuplicateColumns(); !reflect.DeepEqual(got, []string{"x"}) {
		t.Errorf("DuplicateColumns() = %v, want [x]", got)
	}
}

func TestKindsFirstOccurrenceWins(t *testing.T) {
	df := MustNew(
		Ints("x", []int64{1}, nil),
		Floats("x", []float64{2}, nil),
	)
	kinds := df.Kinds()
	if kinds["x"] != KindInt {
		t.Errorf("Kinds()[x] = %v, want int", kinds["x"])
	}
}
