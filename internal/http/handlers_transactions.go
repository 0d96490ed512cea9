package http

import (
	"errors"
	"net/http"

	"financas/internal/core"
	"financas/internal/engine"
	"financas/internal/log"
)

// handleTransactions lists the full history or upserts a record.
func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listTransactions(w, r)
	case http.MethodPost:
		s.saveTransaction(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	all, err := s.store.GetAll(ctx)
	if err != nil {
		log.FromContext(ctx).ErrorContext(ctx, "Failed to load transactions", log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to load transactions")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"transactions": toTransactionList(engine.SortByDateDesc(all)),
	})
}

func (s *Server) saveTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	t, err := ParseTransactionRequest(r)
	if err != nil {
		var verrs core.ValidationErrors
		if errors.As(err, &verrs) {
			log.FromContext(ctx).WarnContext(ctx, "Rejected invalid transaction",
				log.FieldOperation, log.OpValidate,
				log.FieldError, err)
			writeValidationError(w, verrs)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := s.store.Save(ctx, t)
	if err != nil {
		var verrs core.ValidationErrors
		if errors.As(err, &verrs) {
			writeValidationError(w, verrs)
			return
		}
		log.FromContext(ctx).ErrorContext(ctx, "Failed to save transaction",
			log.FieldTxTitle, t.Title,
			log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to save transaction")
		return
	}

	log.FromContext(ctx).InfoContext(ctx, "Transaction saved",
		log.FieldOperation, log.OpSave,
		log.FieldTxID, saved.ID,
		log.FieldTxType, saved.Type.String(),
		log.FieldAmountCents, saved.Amount.Cents)

	writeJSON(w, http.StatusOK, toTransactionJSON(saved))
}

// handleDeleteTransaction removes a record. Deleting an id that is not
// present succeeds without effect.
func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ctx := r.Context()

	id, err := ParseIDRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.Delete(ctx, id); err != nil {
		log.FromContext(ctx).ErrorContext(ctx, "Failed to delete transaction",
			log.FieldTxID, id,
			log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to delete transaction")
		return
	}

	log.FromContext(ctx).InfoContext(ctx, "Transaction deleted",
		log.FieldOperation, log.OpDelete,
		log.FieldTxID, id)
	writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
}

// handleToggleTransaction flips a record's paid flag. Toggling an
// absent id succeeds without effect.
func (s *Server) handleToggleTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ctx := r.Context()

	id, err := ParseIDRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.ToggleStatus(ctx, id); err != nil {
		log.FromContext(ctx).ErrorContext(ctx, "Failed to toggle transaction status",
			log.FieldTxID, id,
			log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to toggle transaction status")
		return
	}

	log.FromContext(ctx).InfoContext(ctx, "Transaction status toggled",
		log.FieldOperation, log.OpToggle,
		log.FieldTxID, id)
	writeJSON(w, http.StatusOK, map[string]any{"toggled": id})
}
