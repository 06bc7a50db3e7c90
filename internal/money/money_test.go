package money

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/text/language"
)

func TestFormat_DefaultPrecision(t *testing.T) {
	f := NewFormatter(language.English)
	got, err := f.Format(1250000.4, "RWF")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "1,250,000 RWF" {
		t.Fatalf("got %q, want %q", got, "1,250,000 RWF")
	}
}

func TestFormatPrecision(t *testing.T) {
	f := NewFormatter(language.English)
	got, err := f.FormatPrecision(1234.5, "USD", 2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "1,234.50 USD" {
		t.Fatalf("got %q, want %q", got, "1,234.50 USD")
	}
}

func TestFormat_NegativeAmount(t *testing.T) {
	f := NewFormatter(language.English)
	got, err := f.Format(-5000, "RWF")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "-5,000 RWF" {
		t.Fatalf("got %q, want %q", got, "-5,000 RWF")
	}
}

func TestFormat_RejectsNonFiniteAmounts(t *testing.T) {
	f := NewFormatter(language.English)
	for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := f.Format(amount, "RWF"); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount for %v, got %v", amount, err)
		}
	}
}
