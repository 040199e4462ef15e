package web

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func formRequest(t *testing.T, values url.Values) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestParseDonationFormCreateMode(t *testing.T) {
	form, err := ParseDonationForm(formRequest(t, url.Values{
		"coins":      {"5"},
		"income_eur": {"12.50"},
	}))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if form.Mode() != ModeCreate {
		t.Fatalf("mode = %v, want create", form.Mode())
	}
	if form.Coins != 5 || form.IncomeEUR != 12.5 {
		t.Fatalf("unexpected values: %+v", form)
	}
}

func TestParseDonationFormEditMode(t *testing.T) {
	form, err := ParseDonationForm(formRequest(t, url.Values{
		"id":         {"7"},
		"coins":      {"0"},
		"income_eur": {"3"},
	}))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if form.Mode() != ModeEdit || form.ID != 7 {
		t.Fatalf("expected edit mode for id 7, got %+v", form)
	}
}

func TestParseDonationFormRejectsBadCoins(t *testing.T) {
	for _, coins := range []string{"", "abc", "1.5", "-2"} {
		_, err := ParseDonationForm(formRequest(t, url.Values{
			"coins":      {coins},
			"income_eur": {"1"},
		}))
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("coins=%q: expected *ValidationError, got %v", coins, err)
		}
		if ve.Field != "coins" {
			t.Fatalf("coins=%q: field = %q", coins, ve.Field)
		}
	}
}

func TestParseDonationFormRejectsNegativeIncome(t *testing.T) {
	_, err := ParseDonationForm(formRequest(t, url.Values{
		"coins":      {"1"},
		"income_eur": {"-0.5"},
	}))
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "income_eur" {
		t.Fatalf("expected income_eur validation error, got %v", err)
	}
}

func TestParseSupporterFormRequiresName(t *testing.T) {
	_, err := ParseSupporterForm(formRequest(t, url.Values{
		"name":       {"   "},
		"income_eur": {"20"},
	}))
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "name" {
		t.Fatalf("expected name validation error, got %v", err)
	}
}

func TestParseSupporterFormCreateNeedsIncome(t *testing.T) {
	_, err := ParseSupporterForm(formRequest(t, url.Values{
		"name": {"Ana"},
	}))
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "income_eur" {
		t.Fatalf("expected income_eur validation error, got %v", err)
	}
}

func TestParseSupporterFormEditIgnoresIncome(t *testing.T) {
	form, err := ParseSupporterForm(formRequest(t, url.Values{
		"id":   {"3"},
		"name": {"Ana"},
	}))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if form.Mode() != ModeEdit {
		t.Fatalf("mode = %v, want edit", form.Mode())
	}
	if form.IncomeEUR != 0 {
		t.Fatalf("income must not be read in edit mode, got %v", form.IncomeEUR)
	}
}
