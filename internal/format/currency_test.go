package format

import (
	"strings"
	"testing"
)

func TestChangeSignAlwaysShown(t *testing.T) {
	cases := []struct {
		diff, pct float64
		want      string
	}{
		{1, 0.5, "+1.00 (+0.50%)"},
		{-2, -1, "-2.00 (-1.00%)"},
		{0, 0, "+0.00 (+0.00%)"}, // zero is non-negative
	}
	for _, c := range cases {
		if got := Change(c.diff, c.pct); got != c.want {
			t.Errorf("Change(%v, %v) = %q, want %q", c.diff, c.pct, got, c.want)
		}
	}
}

func TestChangeBetween(t *testing.T) {
	diff, pct := ChangeBetween(200, 210)
	if diff != 10 || pct != 5 {
		t.Fatalf("expected +10 (+5%%), got %v %v", diff, pct)
	}

	diff, pct = ChangeBetween(0, 50)
	if diff != 50 || pct != 0 {
		t.Fatalf("zero base must not divide, got %v %v", diff, pct)
	}
}

func TestCurrencyUSD(t *testing.T) {
	got := Currency(12.5, "USD", "en")
	if got == "" || !strings.Contains(got, "12.50") {
		t.Fatalf("unexpected formatting %q", got)
	}
	if !strings.Contains(got, "$") {
		t.Fatalf("expected dollar symbol in %q", got)
	}
}

func TestCurrencyTHB(t *testing.T) {
	got := Currency(34000, "THB", "th")
	if got == "" {
		t.Fatalf("expected non-empty THB formatting")
	}
}

func TestCurrencyFallbacks(t *testing.T) {
	// Unknown locale and unknown code still render something sensible.
	got := Currency(10, "XXX-bogus", "xx")
	if got == "" || !strings.Contains(got, "10.00") {
		t.Fatalf("unexpected fallback formatting %q", got)
	}
}
