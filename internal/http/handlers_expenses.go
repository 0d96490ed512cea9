package http

import (
	"net/http"

	"financas/internal/core"
	"financas/internal/engine"
	"financas/internal/log"
)

type settlementResponse struct {
	Year         int               `json:"year"`
	Month        int               `json:"month"`
	TotalCents   int64             `json:"totalCents"`
	SettledCents int64             `json:"settledCents"`
	PendingCents int64             `json:"pendingCents"`
	Transactions []transactionJSON `json:"transactions"`
}

// handleExpenses answers the expense screen. Unpaid expenses from
// earlier months carry forward into the current view until settled.
func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ctx := r.Context()
	year, month := parseYearMonth(r)
	period := core.Period{Year: year, Month: month}

	all, err := s.store.GetAll(ctx)
	if err != nil {
		log.FromContext(ctx).ErrorContext(ctx, "Failed to load transactions", log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to load transactions")
		return
	}

	set := engine.Resolve(all, period, engine.ResolveOptions{
		Types:        []core.TransactionType{core.Expense},
		CarryOverdue: true,
	})
	split := engine.Settlement(set)

	writeJSON(w, http.StatusOK, settlementResponse{
		Year:         year,
		Month:        month,
		TotalCents:   split.Total.Cents,
		SettledCents: split.Settled.Cents,
		PendingCents: split.Pending.Cents,
		Transactions: toTransactionList(engine.SortByDate(set)),
	})
}
