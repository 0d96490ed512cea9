package http

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"financas/internal/core"
)

func TestParseTransactionRequest_JSON(t *testing.T) {
	body := `{"title":"Rent","amount":"850.00","date":"2024-03-01","category":"Housing","type":"expense","isFixed":true}`
	r := httptest.NewRequest("POST", "/api/transactions", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	tx, err := ParseTransactionRequest(r)
	if err != nil {
		t.Fatalf("ParseTransactionRequest() error = %v", err)
	}

	if tx.Title != "Rent" {
		t.Errorf("Title = %q, want %q", tx.Title, "Rent")
	}
	if tx.Amount.Cents != 85000 {
		t.Errorf("Amount.Cents = %d, want 85000", tx.Amount.Cents)
	}
	if tx.Date.ISO() != "2024-03-01" {
		t.Errorf("Date = %q, want 2024-03-01", tx.Date.ISO())
	}
	if tx.Type != core.Expense {
		t.Errorf("Type = %q, want expense", tx.Type)
	}
	if !tx.IsFixed {
		t.Error("IsFixed = false, want true")
	}
}

func TestParseTransactionRequest_JSONNumericAmount(t *testing.T) {
	body := `{"title":"Salary","amount":2500.50,"date":"2024-03-05","category":"Work","type":"income","isPaid":true}`
	r := httptest.NewRequest("POST", "/api/transactions", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	tx, err := ParseTransactionRequest(r)
	if err != nil {
		t.Fatalf("ParseTransactionRequest() error = %v", err)
	}

	if tx.Amount.Cents != 250050 {
		t.Errorf("Amount.Cents = %d, want 250050", tx.Amount.Cents)
	}
}

func TestParseTransactionRequest_Form(t *testing.T) {
	body := "title=Groceries&amount=45%2C50&date=2024-03-10&category=Food&type=expense&isPaid=on"
	r := httptest.NewRequest("POST", "/api/transactions", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	tx, err := ParseTransactionRequest(r)
	if err != nil {
		t.Fatalf("ParseTransactionRequest() error = %v", err)
	}

	if tx.Amount.Cents != 4550 {
		t.Errorf("Amount.Cents = %d, want 4550", tx.Amount.Cents)
	}
	if !tx.IsPaid {
		t.Error("IsPaid = false, want true")
	}
}

func TestParseTransactionRequest_CollectsFieldErrors(t *testing.T) {
	body := `{"title":"","amount":"-10","date":"not-a-date","category":"","type":"junk"}`
	r := httptest.NewRequest("POST", "/api/transactions", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	_, err := ParseTransactionRequest(r)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verrs core.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("error type = %T, want core.ValidationErrors", err)
	}

	want := map[string]bool{"title": true, "amount": true, "date": true, "category": true, "type": true}
	got := map[string]bool{}
	for _, fe := range verrs {
		got[fe.Field] = true
	}
	for field := range want {
		if !got[field] {
			t.Errorf("missing field error for %q, got %v", field, verrs)
		}
	}
	if len(verrs) != len(want) {
		t.Errorf("got %d field errors, want %d: %v", len(verrs), len(want), verrs)
	}
}

func TestParseTransactionRequest_SanitizesInput(t *testing.T) {
	body := "{\"title\":\"  Dinner\x00 out  \",\"amount\":\"30\",\"date\":\"2024-03-12\",\"category\":\" Food \",\"type\":\"expense\"}"
	r := httptest.NewRequest("POST", "/api/transactions", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	tx, err := ParseTransactionRequest(r)
	if err != nil {
		t.Fatalf("ParseTransactionRequest() error = %v", err)
	}

	if tx.Title != "Dinner out" {
		t.Errorf("Title = %q, want %q", tx.Title, "Dinner out")
	}
	if tx.Category != "Food" {
		t.Errorf("Category = %q, want %q", tx.Category, "Food")
	}
}

func TestParseIDRequest(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantID      int64
		wantErr     bool
	}{
		{"json", "application/json", `{"id":12}`, 12, false},
		{"form", "application/x-www-form-urlencoded", "id=7", 7, false},
		{"json missing", "application/json", `{}`, 0, true},
		{"json zero", "application/json", `{"id":0}`, 0, true},
		{"form garbage", "application/x-www-form-urlencoded", "id=abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/transactions/delete", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", tt.contentType)

			id, err := ParseIDRequest(r)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIDRequest() error = %v", err)
			}
			if id != tt.wantID {
				t.Errorf("id = %d, want %d", id, tt.wantID)
			}
		})
	}
}
