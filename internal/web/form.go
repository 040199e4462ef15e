package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Mode is the form state: creating a new record or editing an existing one.
// The mode is derived per request — from the hidden id on submits, from the
// edit query parameter on renders — and never stored between requests.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// ValidationError is a client-side coercion failure. It is caught at the form
// boundary and never reaches the network layer.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// DonationForm is the validated donation submission.
type DonationForm struct {
	ID        int64
	Coins     int64
	IncomeEUR float64
}

// Mode reports whether the submission addresses an existing record.
func (f *DonationForm) Mode() Mode {
	if f.ID > 0 {
		return ModeEdit
	}
	return ModeCreate
}

// ParseDonationForm coerces and validates the donation form fields.
func ParseDonationForm(r *http.Request) (*DonationForm, error) {
	id, err := parseOptionalID(r.FormValue("id"))
	if err != nil {
		return nil, err
	}
	coins, err := strconv.ParseInt(strings.TrimSpace(r.FormValue("coins")), 10, 64)
	if err != nil {
		return nil, &ValidationError{Field: "coins", Reason: "must be a whole number"}
	}
	if coins < 0 {
		return nil, &ValidationError{Field: "coins", Reason: "must not be negative"}
	}
	income, err := parseIncome(r.FormValue("income_eur"))
	if err != nil {
		return nil, err
	}
	return &DonationForm{ID: id, Coins: coins, IncomeEUR: income}, nil
}

// SupporterForm is the validated supporter submission. Income is only part of
// a create: it belongs to the backing donation and is not editable here.
type SupporterForm struct {
	ID        int64
	Name      string
	IncomeEUR float64
}

// Mode reports whether the submission addresses an existing record.
func (f *SupporterForm) Mode() Mode {
	if f.ID > 0 {
		return ModeEdit
	}
	return ModeCreate
}

// ParseSupporterForm coerces and validates the supporter form fields.
func ParseSupporterForm(r *http.Request) (*SupporterForm, error) {
	id, err := parseOptionalID(r.FormValue("id"))
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	form := &SupporterForm{ID: id, Name: name}
	if form.Mode() == ModeCreate {
		income, err := parseIncome(r.FormValue("income_eur"))
		if err != nil {
			return nil, err
		}
		form.IncomeEUR = income
	}
	return form, nil
}

func parseOptionalID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &ValidationError{Field: "id", Reason: "is not a valid record id"}
	}
	return id, nil
}

func parseIncome(raw string) (float64, error) {
	income, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &ValidationError{Field: "income_eur", Reason: "must be a number"}
	}
	if income < 0 {
		return 0, &ValidationError{Field: "income_eur", Reason: "must not be negative"}
	}
	return income, nil
}
