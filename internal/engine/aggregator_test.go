package engine

import (
	"reflect"
	"testing"

	"financas/internal/core"
)

func TestSumByType(t *testing.T) {
	set := []core.Transaction{
		tx(1, "Salary", 500000, core.NewDate(2024, 3, 1), "Work", core.Income, false, true),
		tx(2, "Rent", 120000, core.NewDate(2024, 3, 5), "Housing", core.Expense, true, false),
		tx(3, "Groceries", 40000, core.NewDate(2024, 3, 10), "Food", core.Expense, false, true),
		tx(4, "Index fund", 100000, core.NewDate(2024, 3, 15), "Stocks", core.Investment, false, true),
	}

	tests := []struct {
		name string
		tt   core.TransactionType
		want int64
	}{
		{"income", core.Income, 500000},
		{"expense", core.Expense, 160000},
		{"investment", core.Investment, 100000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SumByType(set, tc.tt); got.Cents != tc.want {
				t.Errorf("SumByType(%s) = %d, want %d", tc.tt, got.Cents, tc.want)
			}
		})
	}

	if got := SumByType(nil, core.Income); got.Cents != 0 {
		t.Errorf("SumByType(empty) = %d, want 0", got.Cents)
	}
}

func TestSettlement(t *testing.T) {
	set := []core.Transaction{
		tx(1, "Rent", 120000, core.NewDate(2024, 3, 5), "Housing", core.Expense, true, true),
		tx(2, "Groceries", 40000, core.NewDate(2024, 3, 10), "Food", core.Expense, false, false),
		tx(3, "Internet", 8000, core.NewDate(2024, 3, 12), "Housing", core.Expense, true, false),
	}

	got := Settlement(set)
	if got.Total.Cents != 168000 {
		t.Errorf("Total = %d, want 168000", got.Total.Cents)
	}
	if got.Settled.Cents != 120000 {
		t.Errorf("Settled = %d, want 120000", got.Settled.Cents)
	}
	if got.Pending.Cents != 48000 {
		t.Errorf("Pending = %d, want 48000", got.Pending.Cents)
	}

	empty := Settlement(nil)
	if empty.Total.Cents != 0 || empty.Settled.Cents != 0 || empty.Pending.Cents != 0 {
		t.Errorf("Settlement(empty) = %+v, want all zero", empty)
	}
}

func TestNetBalance_Identity(t *testing.T) {
	set := []core.Transaction{
		tx(1, "Salary", 500000, core.NewDate(2024, 3, 1), "Work", core.Income, false, true),
		tx(2, "Rent", 120000, core.NewDate(2024, 3, 5), "Housing", core.Expense, true, false),
		tx(3, "Index fund", 100000, core.NewDate(2024, 3, 15), "Stocks", core.Investment, false, true),
	}

	want := SumByType(set, core.Income).
		Sub(SumByType(set, core.Expense)).
		Sub(SumByType(set, core.Investment))

	if got := NetBalance(set); got != want {
		t.Errorf("NetBalance = %d, want %d", got.Cents, want.Cents)
	}
	if got := NetBalance(set); got.Cents != 280000 {
		t.Errorf("NetBalance = %d, want 280000", got.Cents)
	}
}

func TestCategoryTotals(t *testing.T) {
	set := []core.Transaction{
		tx(1, "Rent", 120000, core.NewDate(2024, 3, 5), "Housing", core.Expense, true, false),
		tx(2, "Internet", 8000, core.NewDate(2024, 3, 12), "Housing", core.Expense, true, false),
		tx(3, "Groceries", 40000, core.NewDate(2024, 3, 10), "Food", core.Expense, false, true),
		tx(4, "Salary", 500000, core.NewDate(2024, 3, 1), "Work", core.Income, false, true),
	}

	got := CategoryTotals(set, core.Expense)
	want := map[string]core.Money{
		"Housing": {Cents: 128000},
		"Food":    {Cents: 40000},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CategoryTotals = %v, want %v", got, want)
	}

	if got := CategoryTotals(nil, core.Expense); len(got) != 0 {
		t.Errorf("CategoryTotals(empty) has %d entries, want 0", len(got))
	}
}

func TestDailyCumulativeBalance(t *testing.T) {
	// +100 on day 1, -30 on day 1, +50 on day 15.
	march := core.Period{Year: 2024, Month: 3}
	set := []core.Transaction{
		tx(1, "Pay", 10000, core.NewDate(2024, 3, 1), "Work", core.Income, false, true),
		tx(2, "Lunch", 3000, core.NewDate(2024, 3, 1), "Food", core.Expense, false, true),
		tx(3, "Bonus", 5000, core.NewDate(2024, 3, 15), "Work", core.Income, false, true),
	}

	got := DailyCumulativeBalance(march, set)
	if len(got) != 31 {
		t.Fatalf("series length = %d, want 31", len(got))
	}
	for day := 1; day <= 31; day++ {
		want := int64(7000)
		if day >= 15 {
			want = 12000
		}
		if got[day-1].Cents != want {
			t.Errorf("day %d balance = %d, want %d", day, got[day-1].Cents, want)
		}
	}
}

func TestDailyCumulativeBalance_DropsDaysPastMonthEnd(t *testing.T) {
	// A fixed bill dated the 31st has no matching day in February, so
	// the series ignores it entirely.
	february := core.Period{Year: 2024, Month: 2}
	set := []core.Transaction{
		tx(1, "Subscription", 10000, core.NewDate(2024, 1, 31), "Media", core.Expense, true, true),
	}

	got := DailyCumulativeBalance(february, set)
	if len(got) != 29 {
		t.Fatalf("series length = %d, want 29", len(got))
	}
	for i, v := range got {
		if v.Cents != 0 {
			t.Errorf("day %d balance = %d, want 0", i+1, v.Cents)
		}
	}
}

func TestDailyCumulativeBalance_LengthFollowsMonth(t *testing.T) {
	tests := []struct {
		name   string
		period core.Period
		want   int
	}{
		{"february leap year", core.Period{Year: 2024, Month: 2}, 29},
		{"february common year", core.Period{Year: 2023, Month: 2}, 28},
		{"april", core.Period{Year: 2024, Month: 4}, 30},
		{"december", core.Period{Year: 2024, Month: 12}, 31},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DailyCumulativeBalance(tc.period, nil)
			if len(got) != tc.want {
				t.Errorf("length = %d, want %d", len(got), tc.want)
			}
			for i, v := range got {
				if v.Cents != 0 {
					t.Errorf("empty set day %d = %d, want 0", i+1, v.Cents)
				}
			}
		})
	}
}

func TestComputeAnnualSeries(t *testing.T) {
	all := []core.Transaction{
		// Fixed expense from March onward.
		tx(1, "Rent", 120000, core.NewDate(2023, 3, 1), "Housing", core.Expense, true, true),
		// One-off income in June only.
		tx(2, "Bonus", 50000, core.NewDate(2023, 6, 15), "Work", core.Income, false, true),
		// Investments never enter the series.
		tx(3, "Index fund", 999999, core.NewDate(2023, 1, 1), "Stocks", core.Investment, false, true),
	}

	series := ComputeAnnualSeries(all, 2023)

	for m := 1; m <= 12; m++ {
		wantExpense := int64(0)
		if m >= 3 {
			wantExpense = 120000
		}
		if series.Expense[m-1].Cents != wantExpense {
			t.Errorf("expense[%d] = %d, want %d", m, series.Expense[m-1].Cents, wantExpense)
		}

		wantIncome := int64(0)
		if m == 6 {
			wantIncome = 50000
		}
		if series.Income[m-1].Cents != wantIncome {
			t.Errorf("income[%d] = %d, want %d", m, series.Income[m-1].Cents, wantIncome)
		}
	}

	income, expense := series.Totals()
	if income.Cents != 50000 {
		t.Errorf("total income = %d, want 50000", income.Cents)
	}
	if expense.Cents != 1200000 {
		t.Errorf("total expense = %d, want 1200000", expense.Cents)
	}
}

func TestComputeAnnualSeries_Idempotent(t *testing.T) {
	all := []core.Transaction{
		tx(1, "Rent", 120000, core.NewDate(2023, 3, 1), "Housing", core.Expense, true, true),
		tx(2, "Salary", 500000, core.NewDate(2023, 1, 5), "Work", core.Income, true, true),
	}

	first := ComputeAnnualSeries(all, 2023)
	second := ComputeAnnualSeries(all, 2023)
	if !reflect.DeepEqual(first, second) {
		t.Error("ComputeAnnualSeries is not pure: repeated calls differ")
	}
}
