package repository

import (
	"testing"
	"time"
)

func TestNormalizeFrame(t *testing.T) {
	if got := NormalizeFrame("3m"); got != Frame3m {
		t.Fatalf("expected 3m, got %s", got)
	}
	if got := NormalizeFrame(""); got != DefaultFrame() {
		t.Fatalf("expected default, got %s", got)
	}
	if got := NormalizeFrame("2w"); got != DefaultFrame() {
		t.Fatalf("expected default for unknown code, got %s", got)
	}
}

func TestNormalizeGranularity(t *testing.T) {
	if got := NormalizeGranularity("quarter"); got != GranQuarter {
		t.Fatalf("expected quarter, got %s", got)
	}
	if got := NormalizeGranularity("hourly"); got != GranDay {
		t.Fatalf("expected day for unknown granularity, got %s", got)
	}
}

func TestFrameWindow(t *testing.T) {
	if got := FrameWindow(Frame7d); got != 7*24*time.Hour {
		t.Fatalf("unexpected window %v", got)
	}
	if got := FrameWindow(FrameAll); got != 0 {
		t.Fatalf("expected zero window for all, got %v", got)
	}
}
