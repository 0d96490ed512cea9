package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	Income     TransactionType = "income"
	Expense    TransactionType = "expense"
	Investment TransactionType = "investment"
)

type (
	TransactionType string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Transaction is the sole persisted entity. IDs are assigned by the
	// store at creation; zero means "not yet stored".
	Transaction struct {
		ID       int64
		Title    string
		Amount   Money
		Date     Date
		Category string
		Type     TransactionType
		IsFixed  bool
		IsPaid   bool
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrEmptyTitle    = errors.New("empty title")
	ErrEmptyCategory = errors.New("empty category")
)

// FieldError ties a validation failure to the attribute that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// ValidationErrors collects every failure found in a record so batch
// callers can report all of them at once instead of stopping at the first.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports whether any collected failure matches target, so callers can
// keep using errors.Is with the sentinel errors above.
func (v ValidationErrors) Is(target error) bool {
	for _, e := range v {
		if errors.Is(e.Err, target) {
			return true
		}
	}
	return false
}

func (t TransactionType) IsValid() bool {
	switch t {
	case Income, Expense, Investment:
		return true
	default:
		return false
	}
}

func (t TransactionType) String() string {
	return string(t)
}

// NewDate creates a Date from year, month, day at UTC midnight.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month as an int.
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year.
func (d Date) Year() int {
	return d.Time.Year()
}

// ISO returns the date formatted as YYYY-MM-DD.
func (d Date) ISO() string {
	return d.Format("2006-01-02")
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Validate checks the record at the save boundary. It returns a
// ValidationErrors value listing every problem, or nil when the record is
// well formed. Amounts must be strictly positive: a negative or zero
// amount would silently poison every downstream sum.
func (t Transaction) Validate() error {
	var errs ValidationErrors

	if strings.TrimSpace(t.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Err: ErrEmptyTitle})
	}
	if len(t.Title) > 200 {
		errs = append(errs, FieldError{Field: "title", Err: errors.New("title too long (max 200 characters)")})
	}
	if err := t.Amount.Validate(); err != nil {
		errs = append(errs, FieldError{Field: "amount", Err: err})
	}
	if err := t.Date.Validate(); err != nil {
		errs = append(errs, FieldError{Field: "date", Err: err})
	}
	if strings.TrimSpace(t.Category) == "" {
		errs = append(errs, FieldError{Field: "category", Err: ErrEmptyCategory})
	}
	if !t.Type.IsValid() {
		errs = append(errs, FieldError{Field: "type", Err: ErrInvalidType})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Normalized returns a copy with the investment invariant applied:
// contributions settle immediately and never recur, regardless of what the
// caller supplied. Income and expense records pass through untouched.
func (t Transaction) Normalized() Transaction {
	if t.Type == Investment {
		t.IsFixed = false
		t.IsPaid = true
	}
	return t
}
