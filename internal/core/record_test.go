package core

import (
	"strings"
	"testing"
	"time"
)

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
	if err := (Money{Cents: -50}).Validate(); err == nil {
		t.Fatalf("expected error for negative")
	}
}

func TestRecordFieldsValidate(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	good := RecordFields{
		Description: "coffee",
		Amount:      Money{Cents: 450},
		Date:        day,
		Category:    CategoryFood,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []RecordFields{
		{Description: "", Amount: Money{Cents: 1}, Date: day},
		{Description: "   ", Amount: Money{Cents: 1}, Date: day},
		{Description: strings.Repeat("x", 201), Amount: Money{Cents: 1}, Date: day},
		{Description: "a", Amount: Money{Cents: 0}, Date: day},
		{Description: "a", Amount: Money{Cents: 1}}, // zero date
	}
	for i, f := range bads {
		if err := f.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestRecordValidateRequiresID(t *testing.T) {
	r := Record{
		Description: "coffee",
		Amount:      Money{Cents: 450},
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Category:    CategoryFood,
	}
	if err := r.Validate(); err != ErrEmptyID {
		t.Fatalf("expected ErrEmptyID, got %v", err)
	}
	r.ID = "abc"
	if err := r.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
}

func TestSumAmounts(t *testing.T) {
	if got := SumAmounts(nil); got.Cents != 0 {
		t.Fatalf("empty sum expected 0, got %d", got.Cents)
	}
	records := []Record{
		{Amount: Money{Cents: 1050}},
		{Amount: Money{Cents: 525}},
	}
	if got := SumAmounts(records); got.Cents != 1575 {
		t.Fatalf("expected 1575, got %d", got.Cents)
	}
}
