package mathutil

import (
	"errors"
	"math"
	"testing"
)

func TestMapToRangeEndpoints(t *testing.T) {
	testCases := []struct {
		srcLo, srcHi, dstLo, dstHi float64
	}{
		{0, 1, 0, 100},
		{-5, 5, 10, 20},
		{10, 2, -1, 1}, // descending source
		{0.25, 0.75, 3, -3},
	}

	for _, tc := range testCases {
		lo, err := MapToRange(tc.srcLo, tc.srcLo, tc.srcHi, tc.dstLo, tc.dstHi)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		hi, err := MapToRange(tc.srcHi, tc.srcLo, tc.srcHi, tc.dstLo, tc.dstHi)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lo != tc.dstLo || hi != tc.dstHi {
			t.Errorf("endpoints of %+v mapped to (%g, %g)", tc, lo, hi)
		}
	}
}

func TestMapToRangeInverse(t *testing.T) {
	values := []float64{-3, 0, 0.5, 1.75, 42}
	for _, v := range values {
		mapped, err := MapToRange(v, -2, 6, 100, 300)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		back, err := MapToRange(mapped, 100, 300, -2, 6)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(back-v) > 1e-9 {
			t.Errorf("roundtrip failed: %g -> %g -> %g", v, mapped, back)
		}
	}
}

func TestMapToRangeDoesNotClamp(t *testing.T) {
	got, err := MapToRange(2, 0, 1, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 20 {
		t.Errorf("expected 20, got %g", got)
	}
}

func TestMapToRangeDegenerate(t *testing.T) {
	if _, err := MapToRange(1, 3, 3, 0, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for empty source range, got %v", err)
	}
	if _, err := MapToRange(1, 0, 1, 5, 5+1e-12); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for empty target range, got %v", err)
	}
}

func TestDiscretizeToRange(t *testing.T) {
	testCases := []struct {
		value, want float64
	}{
		{1, 1},
		{9.9, 9},
		{-5, 0},
		{15, 10},
		{0, 1},
		{2, 3},
		{10, 9}, // top edge belongs to last bin
	}

	for _, tc := range testCases {
		got, err := DiscretizeToRange(tc.value, 0, 10, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("DiscretizeToRange(%g, 0, 10, 5) = %g, want %g", tc.value, got, tc.want)
		}
	}
}

func TestDiscretizeToRangeInvalid(t *testing.T) {
	testCases := []struct {
		name      string
		low, high float64
		bins      int
	}{
		{"zero bins", 0, 10, 0},
		{"negative bins", 0, 10, -3},
		{"equal bounds", 4, 4, 2},
		{"inverted bounds", 10, 0, 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DiscretizeToRange(1, tc.low, tc.high, tc.bins); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}
