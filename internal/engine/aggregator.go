package engine

import "financas/internal/core"

// SettlementSplit breaks a resolved set's total down by settlement status.
type SettlementSplit struct {
	Total   core.Money
	Settled core.Money
	Pending core.Money
}

// AnnualSeries holds per-month income and expense totals for one year.
type AnnualSeries struct {
	Income  [12]core.Money
	Expense [12]core.Money
}

// SumByType sums the amounts of members matching the given type.
// An empty set sums to zero.
func SumByType(set []core.Transaction, tt core.TransactionType) core.Money {
	var sum core.Money
	for _, t := range set {
		if t.Type == tt {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// Settlement computes total, settled, and pending sums over the set.
// Pending is always total minus settled.
func Settlement(set []core.Transaction) SettlementSplit {
	var s SettlementSplit
	for _, t := range set {
		s.Total = s.Total.Add(t.Amount)
		if t.IsPaid {
			s.Settled = s.Settled.Add(t.Amount)
		}
	}
	s.Pending = s.Total.Sub(s.Settled)
	return s
}

// NetBalance is income minus expense minus investment for the resolved
// set. Contributions reduce available cash even though they are not shown
// as an expense.
func NetBalance(set []core.Transaction) core.Money {
	return SumByType(set, core.Income).
		Sub(SumByType(set, core.Expense)).
		Sub(SumByType(set, core.Investment))
}

// CategoryTotals groups amounts by category for members of the given
// type. Only categories with a contributing transaction appear; iteration
// order of the result is unspecified.
func CategoryTotals(set []core.Transaction, tt core.TransactionType) map[string]core.Money {
	totals := make(map[string]core.Money)
	for _, t := range set {
		if t.Type == tt {
			totals[t.Category] = totals[t.Category].Add(t.Amount)
		}
	}
	return totals
}

// DailyCumulativeBalance produces one running-balance entry per day of
// the period's month. Transactions are bucketed by day-of-month, not
// absolute date, so a fixed transaction lands on the same day every month
// once Resolve has already decided membership. A day number past the
// month's end matches nothing and the transaction drops out of the
// series. Income adds, expense subtracts, and the balance accumulates
// left to right.
func DailyCumulativeBalance(p core.Period, monthSet []core.Transaction) []core.Money {
	days := p.Days()
	balance := make([]core.Money, days)

	var accum core.Money
	for day := 1; day <= days; day++ {
		for _, t := range monthSet {
			if t.Date.Day() != day {
				continue
			}
			switch t.Type {
			case core.Income:
				accum = accum.Add(t.Amount)
			case core.Expense:
				accum = accum.Sub(t.Amount)
			}
		}
		balance[day-1] = accum
	}
	return balance
}

// ComputeAnnualSeries resolves each month of the year independently and
// sums income and expense per month. Twelve separate Resolve calls are
// deliberate: fixed-transaction eligibility depends on the specific month
// being evaluated, so a single pass would get it wrong.
func ComputeAnnualSeries(transactions []core.Transaction, year int) AnnualSeries {
	var series AnnualSeries
	for m := 1; m <= 12; m++ {
		set := Resolve(transactions, core.Period{Year: year, Month: m}, ResolveOptions{
			Types: []core.TransactionType{core.Income, core.Expense},
		})
		series.Income[m-1] = SumByType(set, core.Income)
		series.Expense[m-1] = SumByType(set, core.Expense)
	}
	return series
}

// Totals sums a 12-month series.
func (s AnnualSeries) Totals() (income, expense core.Money) {
	for m := 0; m < 12; m++ {
		income = income.Add(s.Income[m])
		expense = expense.Add(s.Expense[m])
	}
	return income, expense
}
