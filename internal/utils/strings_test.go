package utils

import (
	"strings"
	"testing"
)

func TestNormalizeSpace(t *testing.T) {
	if got := NormalizeSpace("  Central   Station \t"); got != "Central Station" {
		t.Fatalf("NormalizeSpace = %q", got)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := SafeFilenamePart(""); got != "NA" {
		t.Fatalf("empty input should give NA, got %q", got)
	}
	if got := SafeFilenamePart("CUST-1/a b"); got != "CUST-1_a_b" {
		t.Fatalf("unexpected %q", got)
	}
	if got := SafeFilenamePart(strings.Repeat("x", 60)); len(got) != 40 {
		t.Fatalf("expected truncation to 40, got %d", len(got))
	}
}

func TestFormatMoneyAndDistance(t *testing.T) {
	if got := FormatMoney(120); got != "$120.00" {
		t.Fatalf("FormatMoney = %q", got)
	}
	if got := FormatDistance(12); got != "12.0 km" {
		t.Fatalf("FormatDistance = %q", got)
	}
}

func TestNewCustomerID(t *testing.T) {
	a, b := NewCustomerID(), NewCustomerID()
	if !strings.HasPrefix(a, "CUST-") {
		t.Fatalf("missing prefix: %q", a)
	}
	if a == b {
		t.Fatalf("expected distinct ids, got %q twice", a)
	}
}
