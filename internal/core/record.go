package core

import (
	"errors"
	"strings"
	"time"
)

const (
	CategoryFood      = "Food"
	CategoryTransport = "Transport"
	CategoryUtilities = "Utilities"
	CategoryOther     = "Other"
)

// DefaultCategories is the default category list offered to the
// presentation layer. The store does not enforce it as a closed set.
var DefaultCategories = []string{
	CategoryFood,
	CategoryTransport,
	CategoryUtilities,
	CategoryOther,
}

type (
	Money struct {
		Cents int64
	}

	// Record is a single expense entry. ID is assigned once at creation
	// and never changes; updates replace the whole record.
	Record struct {
		ID          string
		Description string
		Amount      Money
		Date        time.Time
		Category    string
	}

	// RecordFields carries the caller-supplied fields of a new record,
	// before an ID has been assigned.
	RecordFields struct {
		Description string
		Amount      Money
		Date        time.Time
		Category    string
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyID          = errors.New("empty record id")
	ErrInvalidDate      = errors.New("invalid date")
)

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Validate checks the conventions the UI promises but the store never
// enforces: non-empty description, strictly positive amount, a real date.
func (f RecordFields) Validate() error {
	if len(strings.TrimSpace(f.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(f.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if err := f.Amount.Validate(); err != nil {
		return err
	}
	if f.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (r Record) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return ErrEmptyID
	}
	return r.Fields().Validate()
}

// Fields returns the record's caller-supplied fields without the ID.
func (r Record) Fields() RecordFields {
	return RecordFields{
		Description: r.Description,
		Amount:      r.Amount,
		Date:        r.Date,
		Category:    r.Category,
	}
}

// SumAmounts totals the amounts of the given records in cents.
func SumAmounts(records []Record) Money {
	var cents int64
	for _, r := range records {
		cents += r.Amount.Cents
	}
	return Money{Cents: cents}
}
