package dertree

import (
	"errors"
	"testing"
)

func TestGeneralizedTimeLeapYearBoundary(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		wantErr bool
	}{
		{"divisible-by-400-leap", 2000, false},
		{"divisible-by-100-not-400-not-leap", 1900, true},
		{"divisible-by-4-leap", 2020, false},
		{"not-divisible-by-4-not-leap", 2021, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGeneralizedTime(tt.year, 2, 29, 0, 0, 0, 0, false)
			if tt.wantErr && err == nil {
				t.Fatalf("year %d: expected Feb 29 to be rejected", tt.year)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("year %d: unexpected error: %v", tt.year, err)
			}
		})
	}
}

func TestGeneralizedTimeFieldRanges(t *testing.T) {
	base := func(mutate func(*[7]int)) error {
		f := [7]int{2024, 1, 1, 0, 0, 0, 0}
		mutate(&f)
		_, err := NewGeneralizedTime(f[0], f[1], f[2], f[3], f[4], f[5], 0, false)
		return err
	}

	if err := base(func(f *[7]int) { f[1] = 13 }); err == nil {
		t.Fatalf("month 13: expected error")
	}
	if err := base(func(f *[7]int) { f[1] = 0 }); err == nil {
		t.Fatalf("month 0: expected error")
	}
	if err := base(func(f *[7]int) { f[2] = 32 }); err == nil {
		t.Fatalf("day 32: expected error")
	}
	if err := base(func(f *[7]int) { f[3] = 24 }); err == nil {
		t.Fatalf("hour 24: expected error")
	}
	if err := base(func(f *[7]int) { f[4] = 60 }); err == nil {
		t.Fatalf("minute 60: expected error")
	}
	if err := base(func(f *[7]int) { f[5] = 62 }); err == nil {
		t.Fatalf("second 62: expected error")
	}
	// Leap-second tolerant: 61 is accepted.
	if err := base(func(f *[7]int) { f[5] = 61 }); err != nil {
		t.Fatalf("second 61: unexpected error: %v", err)
	}
}

func TestGeneralizedTimeStringRoundTrip(t *testing.T) {
	gt, err := NewGeneralizedTime(2024, 3, 15, 13, 45, 30, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "20240315134530Z"
	if got := gt.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	parsed, err := parseGeneralizedTimeText([]byte(want))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != gt {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", parsed, gt)
	}
}

func TestGeneralizedTimeStringWithFraction(t *testing.T) {
	gt, err := NewGeneralizedTime(2024, 3, 15, 13, 45, 30, 0.25, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "20240315134530.25Z"
	if got := gt.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGeneralizedTimeParseRequiresTrailingZ(t *testing.T) {
	if _, err := parseGeneralizedTimeText([]byte("20240315134530")); !errors.Is(err, ErrInvalidObject) {
		t.Fatalf("got %v, want ErrInvalidObject", err)
	}
}

func TestGeneralizedTimeParseRejectsNonDigits(t *testing.T) {
	if _, err := parseGeneralizedTimeText([]byte("2024031513453XZ")); !errors.Is(err, ErrInvalidObject) {
		t.Fatalf("got %v, want ErrInvalidObject", err)
	}
}

func TestGeneralizedTimeSerializeParseFromNode(t *testing.T) {
	gt, err := NewGeneralizedTime(1999, 12, 31, 23, 59, 59, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := NewSerializer()
	if err := gt.Serialize(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := Parse(s.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got GeneralizedTime
	if err := got.ParseFromNode(res.Root()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != gt {
		t.Fatalf("got %+v, want %+v", got, gt)
	}
}

func TestGeneralizedTimeFractionalSecondsRange(t *testing.T) {
	if _, err := NewGeneralizedTime(2024, 1, 1, 0, 0, 0, 1.0, true); err == nil {
		t.Fatalf("fractional seconds == 1.0: expected error")
	}
	if _, err := NewGeneralizedTime(2024, 1, 1, 0, 0, 0, -0.1, true); err == nil {
		t.Fatalf("negative fractional seconds: expected error")
	}
}
