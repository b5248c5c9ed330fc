package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatFixedTwoPlaces(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"29.99", "$29.99"},
		{"29.9", "$29.90"},
		{"0", "$0.00"},
		{"59.988", "$59.99"},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		if err != nil {
			t.Fatalf("bad case %q: %v", tc.in, err)
		}
		if got := Format(d); got != tc.want {
			t.Errorf("Format(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatRawFallsBackVerbatim(t *testing.T) {
	if got := FormatRaw("29.99"); got != "$29.99" {
		t.Fatalf("numeric input: got %q", got)
	}
	if got := FormatRaw("contact us"); got != "$contact us" {
		t.Fatalf("expected verbatim fallback, got %q", got)
	}
}

func TestFormatWithCustomPrefix(t *testing.T) {
	if got := FormatRawWith("€", "10"); got != "€10.00" {
		t.Fatalf("got %q", got)
	}
}

func TestParseMalformedIsZero(t *testing.T) {
	if !Parse("not a number").IsZero() {
		t.Fatalf("expected zero for malformed input")
	}
	if Parse(" 12.50 ").String() != "12.5" {
		t.Fatalf("expected trimmed parse")
	}
}
