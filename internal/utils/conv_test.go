package utils

import "testing"

func TestStringToInt(t *testing.T) {
	if got := StringToInt("42"); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if got := StringToInt("not-a-number"); got != 0 {
		t.Errorf("expected 0 for garbage, got %d", got)
	}
}

func TestStringToUint(t *testing.T) {
	if got := StringToUint("7"); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
	if got := StringToUint("-7"); got != 0 {
		t.Errorf("expected 0 for negative, got %d", got)
	}
	if got := StringToUint("abc"); got != 0 {
		t.Errorf("expected 0 for garbage, got %d", got)
	}
}
