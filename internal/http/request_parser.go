// This file implements parsing and validation of mutation request
// bodies. Both JSON and form-encoded payloads are accepted.

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"financas/internal/core"
)

// transactionPayload is the raw mutation body before validation.
type transactionPayload struct {
	ID       int64           `json:"id"`
	Title    string          `json:"title"`
	Amount   json.RawMessage `json:"amount"`
	Date     string          `json:"date"`
	Category string          `json:"category"`
	Type     string          `json:"type"`
	IsFixed  bool            `json:"isFixed"`
	IsPaid   bool            `json:"isPaid"`
}

// idPayload carries just a record id.
type idPayload struct {
	ID int64 `json:"id"`
}

// ParseTransactionRequest decodes and validates a transaction mutation
// body. Validation failures come back as core.ValidationErrors so the
// handler can answer with per-field messages.
func ParseTransactionRequest(r *http.Request) (core.Transaction, error) {
	payload, err := decodeTransactionPayload(r)
	if err != nil {
		return core.Transaction{}, err
	}

	var verrs core.ValidationErrors

	amountCents, amountErr := parseAmountField(payload.Amount)
	if amountErr != nil {
		verrs = append(verrs, core.FieldError{Field: "amount", Err: core.ErrInvalidAmount})
	}

	date, dateErr := core.ParseDate(strings.TrimSpace(payload.Date))
	if dateErr != nil {
		verrs = append(verrs, core.FieldError{Field: "date", Err: core.ErrInvalidDate})
	}

	t := core.Transaction{
		ID:       payload.ID,
		Title:    sanitizeInput(payload.Title),
		Amount:   core.Money{Cents: amountCents},
		Date:     date,
		Category: sanitizeInput(payload.Category),
		Type:     core.TransactionType(strings.TrimSpace(payload.Type)),
		IsFixed:  payload.IsFixed,
		IsPaid:   payload.IsPaid,
	}

	if err := t.Validate(); err != nil {
		var all core.ValidationErrors
		if errors.As(err, &all) {
			for _, fe := range all {
				if hasField(verrs, fe.Field) {
					continue
				}
				verrs = append(verrs, fe)
			}
		}
	}

	if len(verrs) > 0 {
		return core.Transaction{}, verrs
	}
	return t, nil
}

// ParseIDRequest decodes a body that carries only a record id.
func ParseIDRequest(r *http.Request) (int64, error) {
	body, contentType, err := readBody(r)
	if err != nil {
		return 0, err
	}

	if strings.Contains(contentType, "application/json") {
		var p idPayload
		if err := json.Unmarshal(body, &p); err != nil {
			return 0, fmt.Errorf("invalid JSON body: %w", err)
		}
		if p.ID <= 0 {
			return 0, fmt.Errorf("missing or invalid id")
		}
		return p.ID, nil
	}

	form, err := url.ParseQuery(string(body))
	if err != nil {
		return 0, fmt.Errorf("invalid form body: %w", err)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(form.Get("id")), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("missing or invalid id")
	}
	return id, nil
}

func decodeTransactionPayload(r *http.Request) (transactionPayload, error) {
	body, contentType, err := readBody(r)
	if err != nil {
		return transactionPayload{}, err
	}

	if strings.Contains(contentType, "application/json") {
		var p transactionPayload
		if err := json.Unmarshal(body, &p); err != nil {
			return transactionPayload{}, fmt.Errorf("invalid JSON body: %w", err)
		}
		return p, nil
	}

	form, err := url.ParseQuery(string(body))
	if err != nil {
		return transactionPayload{}, fmt.Errorf("invalid form body: %w", err)
	}

	p := transactionPayload{
		Title:    form.Get("title"),
		Date:     form.Get("date"),
		Category: form.Get("category"),
		Type:     form.Get("type"),
		IsFixed:  parseCheckbox(form.Get("isFixed")),
		IsPaid:   parseCheckbox(form.Get("isPaid")),
	}
	if v := strings.TrimSpace(form.Get("id")); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			p.ID = id
		}
	}
	if v := strings.TrimSpace(form.Get("amount")); v != "" {
		quoted, _ := json.Marshal(v)
		p.Amount = quoted
	}
	return p, nil
}

func readBody(r *http.Request) ([]byte, string, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read request body: %w", err)
	}
	return body, r.Header.Get("Content-Type"), nil
}

// parseAmountField accepts the amount as a decimal string or a bare
// JSON number.
func parseAmountField(raw json.RawMessage) (int64, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0, fmt.Errorf("missing amount")
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	return core.ParseAmountToCents(strings.TrimSpace(s))
}

func parseCheckbox(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

func hasField(verrs core.ValidationErrors, field string) bool {
	for _, fe := range verrs {
		if fe.Field == field {
			return true
		}
	}
	return false
}
