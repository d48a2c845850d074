package util

import (
	"strconv"
	"testing"
	"time"
)

func TestParseTimeRFC3339(t *testing.T) {
	s := "2024-10-10T10:10:10Z"
	got, ok := ParseTime(s)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.UTC().Format(time.RFC3339) != s {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeISODate(t *testing.T) {
	got, ok := ParseTime("2024-01-02")
	if !ok {
		t.Fatalf("expected ok")
	}
	want := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeUnix(t *testing.T) {
	ts := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC).Unix()
	got, ok := ParseTime(strconv.FormatInt(ts, 10))
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Unix() != ts {
		t.Fatalf("unexpected unix %v", got.Unix())
	}
}

func TestParseTimeDefault(t *testing.T) {
	def := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC)
	got := ParseTimeDefault("", def)
	if !got.Equal(def) {
		t.Fatalf("expected default")
	}
}

func TestParseDateLabelDayFirst(t *testing.T) {
	got, ok := ParseDateLabel("25-12-2023")
	if !ok {
		t.Fatalf("expected ok")
	}
	want := time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseDateLabelTwoDigitYear(t *testing.T) {
	got, ok := ParseDateLabel("05-03-24")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Year() != 2024 {
		t.Fatalf("two-digit year must resolve to 2000s, got %d", got.Year())
	}

	// Years past the stdlib 69/99 pivot still land in the 2000s.
	got, ok = ParseDateLabel("01-01-70")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Year() != 2070 {
		t.Fatalf("expected 2070, got %d", got.Year())
	}
}

func TestParseDateLabelInvalid(t *testing.T) {
	if _, ok := ParseDateLabel("bad-date"); ok {
		t.Fatalf("expected parse failure")
	}
	if _, ok := ParseDateLabel(""); ok {
		t.Fatalf("expected parse failure for empty label")
	}
}

func TestFormatDayFirst(t *testing.T) {
	got := FormatDayFirst(time.Date(2024, 3, 5, 13, 0, 0, 0, time.UTC))
	if got != "05-03-2024" {
		t.Fatalf("unexpected format %q", got)
	}
}
