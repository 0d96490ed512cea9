package http

import (
	"encoding/json"
	"net/http"

	"financas/internal/core"
	"financas/internal/engine"
	"financas/internal/log"
)

type investmentsResponse struct {
	Contributions       []transactionJSON `json:"contributions"`
	TotalInvestedCents  int64             `json:"totalInvestedCents"`
	PortfolioValueCents int64             `json:"portfolioValueCents"`
	ProfitCents         int64             `json:"profitCents"`
	ProfitabilityPct    float64           `json:"profitabilityPct"`
}

// handleInvestments answers the investment screen. Contributions span
// the full history rather than a single month.
func (s *Server) handleInvestments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ctx := r.Context()

	all, err := s.store.GetAll(ctx)
	if err != nil {
		log.FromContext(ctx).ErrorContext(ctx, "Failed to load transactions", log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to load transactions")
		return
	}

	portfolio, err := s.store.PortfolioValue(ctx)
	if err != nil {
		log.FromContext(ctx).ErrorContext(ctx, "Failed to load portfolio value", log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to load portfolio value")
		return
	}

	contributions := engine.AllInvestments(all)
	invested := engine.SumByType(contributions, core.Investment)
	profit, pct := engine.Profitability(invested, portfolio)

	writeJSON(w, http.StatusOK, investmentsResponse{
		Contributions:       toTransactionList(engine.SortByDateDesc(contributions)),
		TotalInvestedCents:  invested.Cents,
		PortfolioValueCents: portfolio.Cents,
		ProfitCents:         profit.Cents,
		ProfitabilityPct:    pct,
	})
}

type portfolioPayload struct {
	ValueCents *int64 `json:"valueCents"`
}

// handlePortfolio reads or updates the portfolio snapshot value.
func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		v, err := s.store.PortfolioValue(ctx)
		if err != nil {
			log.FromContext(ctx).ErrorContext(ctx, "Failed to load portfolio value", log.FieldError, err)
			writeError(w, http.StatusInternalServerError, "failed to load portfolio value")
			return
		}
		writeJSON(w, http.StatusOK, map[string]int64{"valueCents": v.Cents})

	case http.MethodPost:
		var p portfolioPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if p.ValueCents == nil || *p.ValueCents < 0 {
			writeError(w, http.StatusUnprocessableEntity, "valueCents must be a non-negative number")
			return
		}

		if err := s.store.SetPortfolioValue(ctx, core.Money{Cents: *p.ValueCents}); err != nil {
			log.FromContext(ctx).ErrorContext(ctx, "Failed to update portfolio value", log.FieldError, err)
			writeError(w, http.StatusInternalServerError, "failed to update portfolio value")
			return
		}
		writeJSON(w, http.StatusOK, map[string]int64{"valueCents": *p.ValueCents})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
