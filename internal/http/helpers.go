package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"financas/internal/core"
)

// parseYearMonth extracts year and month from query parameters.
// Returns current year/month as defaults if not provided or invalid.
func parseYearMonth(r *http.Request) (year, month int) {
	now := time.Now()
	year = now.Year()
	month = int(now.Month())

	if v := strings.TrimSpace(r.URL.Query().Get("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			year = y
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("month")); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m >= 1 && m <= 12 {
			month = m
		}
	}

	return year, month
}

// parseYear extracts a single year query parameter under the given key,
// defaulting to the current year.
func parseYear(r *http.Request, key string) int {
	if v := strings.TrimSpace(r.URL.Query().Get(key)); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			return y
		}
	}
	return time.Now().Year()
}

// writeJSON serializes v as the response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError emits a JSON error body with a single message.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeValidationError emits a 422 with per-field messages.
func writeValidationError(w http.ResponseWriter, verrs core.ValidationErrors) {
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field] = fe.Err.Error()
	}
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  "validation failed",
		"fields": fields,
	})
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// transactionJSON is the wire shape of a transaction.
type transactionJSON struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	AmountCents int64  `json:"amountCents"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	IsFixed     bool   `json:"isFixed"`
	IsPaid      bool   `json:"isPaid"`
}

func toTransactionJSON(t core.Transaction) transactionJSON {
	return transactionJSON{
		ID:          t.ID,
		Title:       t.Title,
		AmountCents: t.Amount.Cents,
		Date:        t.Date.ISO(),
		Category:    t.Category,
		Type:        t.Type.String(),
		IsFixed:     t.IsFixed,
		IsPaid:      t.IsPaid,
	}
}

func toTransactionList(set []core.Transaction) []transactionJSON {
	out := make([]transactionJSON, 0, len(set))
	for _, t := range set {
		out = append(out, toTransactionJSON(t))
	}
	return out
}

func categoryTotalsJSON(totals map[string]core.Money) map[string]int64 {
	out := make(map[string]int64, len(totals))
	for cat, m := range totals {
		out[cat] = m.Cents
	}
	return out
}
