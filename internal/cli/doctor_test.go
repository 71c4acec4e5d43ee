package cli

import "testing"

func TestCheckClock(t *testing.T) {
	if err := checkClock(); err != nil {
		t.Errorf("system clock should be sane in tests, got %v", err)
	}
}

func TestCheckMark(t *testing.T) {
	if got := checkMark(true); got != "✓" {
		t.Errorf("checkMark(true) = %q", got)
	}
	if got := checkMark(false); got != "○" {
		t.Errorf("checkMark(false) = %q", got)
	}
}
