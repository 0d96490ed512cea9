// Package engine is the temporal resolution and aggregation engine: it
// decides which transactions are active for a calendar period and reduces
// the resolved set into the figures every screen consumes. Every function
// is a pure computation over the snapshot it is handed; nothing is cached
// between calls and inputs are never mutated.
package engine

import (
	"sort"

	"financas/internal/core"
)

// ResolveOptions controls period membership.
type ResolveOptions struct {
	// Types restricts membership to the listed transaction types.
	// Empty means no type restriction.
	Types []core.TransactionType

	// CarryOverdue additionally admits non-fixed unpaid expenses dated
	// before the period, so they resurface every month until settled.
	// Only the expense view opts in; dashboard and income views never do.
	CarryOverdue bool
}

// Resolve returns the subset of transactions active in the given period.
//
// A fixed transaction is a member of its creation period and of every
// later period, forever: there is no recurrence end date in the data
// model. A non-fixed transaction belongs only to the exact year and month
// of its date. The returned slice is freshly allocated.
func Resolve(transactions []core.Transaction, p core.Period, opts ResolveOptions) []core.Transaction {
	out := make([]core.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if !typeAllowed(t.Type, opts.Types) {
			continue
		}
		if member(t, p, opts.CarryOverdue) {
			out = append(out, t)
		}
	}
	return out
}

func member(t core.Transaction, p core.Period, carryOverdue bool) bool {
	if t.IsFixed {
		// Active from its own period onward. Periods before the date
		// fail this check automatically: their last day precedes it.
		return !t.Date.After(p.LastDay().Time)
	}
	if p.Contains(t.Date) {
		return true
	}
	if carryOverdue {
		return t.Type == core.Expense && !t.IsPaid && t.Date.Before(p.FirstDay().Time)
	}
	return false
}

func typeAllowed(tt core.TransactionType, allowed []core.TransactionType) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if tt == a {
			return true
		}
	}
	return false
}

// AllInvestments returns every investment contribution in the collection,
// regardless of date or period. The investments screen aggregates full
// history, outside period membership entirely.
func AllInvestments(transactions []core.Transaction) []core.Transaction {
	out := make([]core.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Type == core.Investment {
			out = append(out, t)
		}
	}
	return out
}

// SortByDate returns a date-ascending copy of the set. The input is left
// untouched: resolved sets are treated as immutable once produced.
func SortByDate(transactions []core.Transaction) []core.Transaction {
	out := append([]core.Transaction(nil), transactions...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date.Time)
	})
	return out
}

// SortByDateDesc returns a date-descending copy, newest first.
func SortByDateDesc(transactions []core.Transaction) []core.Transaction {
	out := append([]core.Transaction(nil), transactions...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].Date.Before(out[i].Date.Time)
	})
	return out
}
