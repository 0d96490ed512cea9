package engine

import (
	"testing"

	"financas/internal/core"
)

func tx(id int64, title string, cents int64, date core.Date, category string, tt core.TransactionType, fixed, paid bool) core.Transaction {
	return core.Transaction{
		ID:       id,
		Title:    title,
		Amount:   core.Money{Cents: cents},
		Date:     date,
		Category: category,
		Type:     tt,
		IsFixed:  fixed,
		IsPaid:   paid,
	}
}

func TestResolve_FixedPerpetuity(t *testing.T) {
	fixed := tx(1, "Rent", 120000, core.NewDate(2024, 1, 15), "Housing", core.Expense, true, false)
	all := []core.Transaction{fixed}

	tests := []struct {
		name   string
		period core.Period
		want   bool
	}{
		{"period before creation", core.Period{Year: 2023, Month: 12}, false},
		{"creation period", core.Period{Year: 2024, Month: 1}, true},
		{"next month", core.Period{Year: 2024, Month: 2}, true},
		{"years later", core.Period{Year: 2030, Month: 6}, true},
		{"far future", core.Period{Year: 2099, Month: 12}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(all, tt.period, ResolveOptions{})
			if member := len(got) == 1; member != tt.want {
				t.Errorf("Resolve(%v) membership = %v, want %v", tt.period, member, tt.want)
			}
		})
	}
}

func TestResolve_NonFixedExactMonth(t *testing.T) {
	salary := tx(1, "Salary", 500000, core.NewDate(2024, 3, 10), "Work", core.Income, false, true)
	all := []core.Transaction{salary}

	tests := []struct {
		name   string
		period core.Period
		want   bool
	}{
		{"month before", core.Period{Year: 2024, Month: 2}, false},
		{"exact month", core.Period{Year: 2024, Month: 3}, true},
		{"month after", core.Period{Year: 2024, Month: 4}, false},
		{"same month other year", core.Period{Year: 2025, Month: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(all, tt.period, ResolveOptions{})
			if member := len(got) == 1; member != tt.want {
				t.Errorf("Resolve(%v) membership = %v, want %v", tt.period, member, tt.want)
			}
		})
	}
}

func TestResolve_OverdueCarryForward(t *testing.T) {
	unpaid := tx(1, "Dentist", 30000, core.NewDate(2024, 2, 5), "Health", core.Expense, false, false)
	march := core.Period{Year: 2024, Month: 3}

	got := Resolve([]core.Transaction{unpaid}, march, ResolveOptions{
		Types:        []core.TransactionType{core.Expense},
		CarryOverdue: true,
	})
	if len(got) != 1 {
		t.Fatalf("unpaid past expense should carry into %v, got %d members", march, len(got))
	}

	// Without the policy the same expense stays in February only.
	got = Resolve([]core.Transaction{unpaid}, march, ResolveOptions{
		Types: []core.TransactionType{core.Expense},
	})
	if len(got) != 0 {
		t.Fatalf("carry-forward must be opt-in, got %d members", len(got))
	}

	// Once paid it stops carrying.
	paid := unpaid
	paid.IsPaid = true
	got = Resolve([]core.Transaction{paid}, core.Period{Year: 2024, Month: 4}, ResolveOptions{
		Types:        []core.TransactionType{core.Expense},
		CarryOverdue: true,
	})
	if len(got) != 0 {
		t.Fatalf("paid expense must not carry forward, got %d members", len(got))
	}
}

func TestResolve_OverdueNeverAppliesToIncome(t *testing.T) {
	unpaidIncome := tx(1, "Invoice", 80000, core.NewDate(2024, 2, 5), "Freelance", core.Income, false, false)

	got := Resolve([]core.Transaction{unpaidIncome}, core.Period{Year: 2024, Month: 3}, ResolveOptions{
		CarryOverdue: true,
	})
	if len(got) != 0 {
		t.Fatalf("overdue policy applies to expenses only, got %d members", len(got))
	}
}

func TestResolve_TypeFilterExcludesInvestment(t *testing.T) {
	contribution := tx(1, "Index fund", 100000, core.NewDate(2024, 3, 1), "Stocks", core.Investment, false, true)
	all := []core.Transaction{contribution}
	period := core.Period{Year: 2024, Month: 3}

	views := []struct {
		name string
		opts ResolveOptions
	}{
		{"income and expense view", ResolveOptions{Types: []core.TransactionType{core.Income, core.Expense}}},
		{"expense view with overdue", ResolveOptions{Types: []core.TransactionType{core.Expense}, CarryOverdue: true}},
		{"income view", ResolveOptions{Types: []core.TransactionType{core.Income}}},
	}

	for _, v := range views {
		t.Run(v.name, func(t *testing.T) {
			if got := Resolve(all, period, v.opts); len(got) != 0 {
				t.Errorf("investment leaked into %s: %d members", v.name, len(got))
			}
		})
	}

	// The dashboard resolves without a type filter and does include it.
	if got := Resolve(all, period, ResolveOptions{}); len(got) != 1 {
		t.Errorf("unfiltered resolution should include investments, got %d members", len(got))
	}
}

func TestAllInvestments(t *testing.T) {
	all := []core.Transaction{
		tx(1, "Index fund", 100000, core.NewDate(2020, 1, 1), "Stocks", core.Investment, false, true),
		tx(2, "Groceries", 20000, core.NewDate(2024, 3, 2), "Food", core.Expense, false, true),
		tx(3, "Bonds", 50000, core.NewDate(2099, 12, 31), "Bonds", core.Investment, false, true),
	}

	got := AllInvestments(all)
	if len(got) != 2 {
		t.Fatalf("AllInvestments() = %d items, want 2", len(got))
	}
	for _, g := range got {
		if g.Type != core.Investment {
			t.Errorf("AllInvestments() returned %s transaction", g.Type)
		}
	}
}

func TestSortByDate_DoesNotMutateInput(t *testing.T) {
	original := []core.Transaction{
		tx(1, "b", 100, core.NewDate(2024, 3, 20), "X", core.Expense, false, true),
		tx(2, "a", 100, core.NewDate(2024, 3, 1), "X", core.Expense, false, true),
	}

	sorted := SortByDate(original)

	if original[0].ID != 1 || original[1].ID != 2 {
		t.Fatal("SortByDate mutated its input")
	}
	if sorted[0].ID != 2 || sorted[1].ID != 1 {
		t.Fatalf("SortByDate order = [%d %d], want [2 1]", sorted[0].ID, sorted[1].ID)
	}

	desc := SortByDateDesc(original)
	if desc[0].ID != 1 || desc[1].ID != 2 {
		t.Fatalf("SortByDateDesc order = [%d %d], want [1 2]", desc[0].ID, desc[1].ID)
	}
}
