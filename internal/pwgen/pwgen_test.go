package pwgen

import (
	"strings"
	"testing"
)

func TestGenerateLength(t *testing.T) {
	for _, length := range []int{1, 8, 20, 64} {
		opts := DefaultOptions()
		opts.Length = length
		pw, err := Generate(opts)
		if err != nil {
			t.Fatalf("Failed to generate: %v", err)
		}
		if len(pw) != length {
			t.Errorf("Length %d: got %d chars", length, len(pw))
		}
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	for _, length := range []int{0, -1} {
		opts := DefaultOptions()
		opts.Length = length
		if _, err := Generate(opts); err == nil {
			t.Errorf("Expected error for length %d", length)
		}
	}
}

func TestGenerateClassRestriction(t *testing.T) {
	opts := Options{Length: 100, Digits: true}
	pw, err := Generate(opts)
	if err != nil {
		t.Fatalf("Failed to generate: %v", err)
	}
	for _, ch := range pw {
		if !strings.ContainsRune(digitChars, ch) {
			t.Fatalf("Digits-only password contains %q", ch)
		}
	}
}

func TestGenerateExclude(t *testing.T) {
	opts := Options{Length: 200, Upper: true, Lower: true, Digits: true, Exclude: "Il1O0o"}
	pw, err := Generate(opts)
	if err != nil {
		t.Fatalf("Failed to generate: %v", err)
	}
	if strings.ContainsAny(pw, opts.Exclude) {
		t.Errorf("Password contains excluded characters: %q", pw)
	}
}

func TestGenerateNoClasses(t *testing.T) {
	if _, err := Generate(Options{Length: 10}); err == nil {
		t.Error("Expected error with no character classes")
	}
}

func TestGenerateExcludeEverything(t *testing.T) {
	opts := Options{Length: 10, Digits: true, Exclude: digitChars}
	if _, err := Generate(opts); err == nil {
		t.Error("Expected error when exclusions empty the charset")
	}
}

func TestGenerateVaries(t *testing.T) {
	a, err := Generate(DefaultOptions())
	if err != nil {
		t.Fatalf("Failed to generate: %v", err)
	}
	b, err := Generate(DefaultOptions())
	if err != nil {
		t.Fatalf("Failed to generate: %v", err)
	}
	if a == b {
		t.Error("Consecutive passwords should differ")
	}
}
