package engine

import (
	"sort"

	"financas/internal/core"
)

// CategoryDelta is one category's year-over-year expense change.
type CategoryDelta struct {
	Category string
	Diff     core.Money
}

// Comparison is the year-over-year report: top category movers plus the
// full monthly series for both years.
type Comparison struct {
	Increases []CategoryDelta
	Decreases []CategoryDelta
	SeriesY1  AnnualSeries
	SeriesY2  AnnualSeries
}

const topMovers = 5

// Compare computes the year-over-year report between year1 and year2.
//
// Category deltas use literal occurrence year only: expenses whose date
// falls in the year, with no fixed-transaction forward-projection. That is
// a deliberately different rule from the monthly views. Categories whose
// diff is zero are dropped; increases are the five largest positive
// diffs, decreases the five most negative, both stably sorted.
func Compare(transactions []core.Transaction, year1, year2 int) Comparison {
	catsY1 := categoryTotalsStrict(transactions, year1)
	catsY2 := categoryTotalsStrict(transactions, year2)

	union := make([]string, 0, len(catsY1)+len(catsY2))
	seen := make(map[string]bool)
	for _, t := range transactions {
		if t.Type != core.Expense || seen[t.Category] {
			continue
		}
		if _, ok := catsY1[t.Category]; ok {
			seen[t.Category] = true
			union = append(union, t.Category)
			continue
		}
		if _, ok := catsY2[t.Category]; ok {
			seen[t.Category] = true
			union = append(union, t.Category)
		}
	}

	var diffs []CategoryDelta
	for _, cat := range union {
		diff := catsY2[cat].Sub(catsY1[cat])
		if diff.IsZero() {
			continue
		}
		diffs = append(diffs, CategoryDelta{Category: cat, Diff: diff})
	}

	var increases, decreases []CategoryDelta
	for _, d := range diffs {
		if d.Diff.Cents > 0 {
			increases = append(increases, d)
		} else {
			decreases = append(decreases, d)
		}
	}
	sort.SliceStable(increases, func(i, j int) bool {
		return increases[i].Diff.Cents > increases[j].Diff.Cents
	})
	sort.SliceStable(decreases, func(i, j int) bool {
		return decreases[i].Diff.Cents < decreases[j].Diff.Cents
	})
	if len(increases) > topMovers {
		increases = increases[:topMovers]
	}
	if len(decreases) > topMovers {
		decreases = decreases[:topMovers]
	}

	return Comparison{
		Increases: increases,
		Decreases: decreases,
		SeriesY1:  ComputeAnnualSeries(transactions, year1),
		SeriesY2:  ComputeAnnualSeries(transactions, year2),
	}
}

// categoryTotalsStrict sums expenses by category for the exact calendar
// year of each transaction's date.
func categoryTotalsStrict(transactions []core.Transaction, year int) map[string]core.Money {
	totals := make(map[string]core.Money)
	for _, t := range transactions {
		if t.Type == core.Expense && t.Date.Year() == year {
			totals[t.Category] = totals[t.Category].Add(t.Amount)
		}
	}
	return totals
}

// Variation derives the percentage change between two scalars. A zero
// base with a nonzero new value reads as 100% rather than infinity; two
// zeros read as no change. The result is always finite. Whether growth is
// good or bad depends on what the scalar measures, which is the caller's
// concern, not the number's.
func Variation(v1, v2 core.Money) float64 {
	switch {
	case v1.Cents != 0:
		base := v1.Cents
		if base < 0 {
			base = -base
		}
		return float64(v2.Cents-v1.Cents) / float64(base) * 100
	case v2.Cents != 0:
		return 100
	default:
		return 0
	}
}

// Profitability compares total invested against the portfolio snapshot.
// Percent is zero when nothing was invested; it never divides by zero.
func Profitability(invested, current core.Money) (diff core.Money, percent float64) {
	diff = current.Sub(invested)
	if invested.Cents > 0 {
		percent = float64(diff.Cents) / float64(invested.Cents) * 100
	}
	return diff, percent
}
