package http

import (
	"net/http"

	"financas/internal/core"
	"financas/internal/engine"
	"financas/internal/log"
)

// handleIncomes answers the income screen. Incomes never carry forward
// between months.
func (s *Server) handleIncomes(w http.ResponseWriter, r *http.Request) {
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
		Types: []core.TransactionType{core.Income},
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
