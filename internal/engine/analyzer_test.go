package engine

import (
	"testing"

	"financas/internal/core"
)

func TestCompare_RankingDeterminism(t *testing.T) {
	// Food 200 -> 500, Rent 1000 -> 1000, Leisure 300 -> 100.
	all := []core.Transaction{
		tx(1, "Food y1", 20000, core.NewDate(2022, 5, 1), "Food", core.Expense, false, true),
		tx(2, "Rent y1", 100000, core.NewDate(2022, 6, 1), "Rent", core.Expense, false, true),
		tx(3, "Leisure y1", 30000, core.NewDate(2022, 7, 1), "Leisure", core.Expense, false, true),
		tx(4, "Food y2", 50000, core.NewDate(2023, 5, 1), "Food", core.Expense, false, true),
		tx(5, "Rent y2", 100000, core.NewDate(2023, 6, 1), "Rent", core.Expense, false, true),
		tx(6, "Leisure y2", 10000, core.NewDate(2023, 7, 1), "Leisure", core.Expense, false, true),
	}

	got := Compare(all, 2022, 2023)

	if len(got.Increases) != 1 || got.Increases[0].Category != "Food" || got.Increases[0].Diff.Cents != 30000 {
		t.Errorf("Increases = %+v, want [{Food +30000}]", got.Increases)
	}
	if len(got.Decreases) != 1 || got.Decreases[0].Category != "Leisure" || got.Decreases[0].Diff.Cents != -20000 {
		t.Errorf("Decreases = %+v, want [{Leisure -20000}]", got.Decreases)
	}
	// Rent is unchanged and must be dropped entirely.
	for _, d := range append(got.Increases, got.Decreases...) {
		if d.Category == "Rent" {
			t.Error("zero-diff category Rent must be excluded")
		}
	}
}

func TestCompare_TopFiveTruncation(t *testing.T) {
	var all []core.Transaction
	categories := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, cat := range categories {
		// Year 2 spends (i+1)*100 more than year 1 per category.
		all = append(all,
			tx(int64(i*2+1), cat+" y1", 10000, core.NewDate(2022, 3, 1), cat, core.Expense, false, true),
			tx(int64(i*2+2), cat+" y2", 10000+int64(i+1)*10000, core.NewDate(2023, 3, 1), cat, core.Expense, false, true),
		)
	}

	got := Compare(all, 2022, 2023)
	if len(got.Increases) != 5 {
		t.Fatalf("Increases length = %d, want 5", len(got.Increases))
	}
	// Largest increase first: G, F, E, D, C.
	want := []string{"G", "F", "E", "D", "C"}
	for i, w := range want {
		if got.Increases[i].Category != w {
			t.Errorf("Increases[%d] = %s, want %s", i, got.Increases[i].Category, w)
		}
	}
}

func TestCompare_StrictYearIgnoresFixedProjection(t *testing.T) {
	// A fixed expense created in 2022 projects into 2023 on monthly
	// views, but the year-over-year comparison counts occurrence year
	// only, so 2023 sees nothing from it.
	all := []core.Transaction{
		tx(1, "Rent", 100000, core.NewDate(2022, 1, 1), "Housing", core.Expense, true, true),
	}

	got := Compare(all, 2022, 2023)
	if len(got.Decreases) != 1 || got.Decreases[0].Diff.Cents != -100000 {
		t.Errorf("Decreases = %+v, want [{Housing -100000}]", got.Decreases)
	}

	// The monthly series for 2023 still carries the fixed expense.
	if got.SeriesY2.Expense[0].Cents != 100000 {
		t.Errorf("SeriesY2 January expense = %d, want 100000", got.SeriesY2.Expense[0].Cents)
	}
}

func TestVariation(t *testing.T) {
	tests := []struct {
		name   string
		v1, v2 int64
		want   float64
	}{
		{"zero base nonzero value", 0, 25000, 100},
		{"both zero", 0, 0, 0},
		{"unchanged", 50000, 50000, 0},
		{"doubled", 10000, 20000, 100},
		{"halved", 20000, 10000, -50},
		{"growth", 40000, 50000, 25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Variation(core.Money{Cents: tc.v1}, core.Money{Cents: tc.v2})
			if got != tc.want {
				t.Errorf("Variation(%d, %d) = %v, want %v", tc.v1, tc.v2, got, tc.want)
			}
		})
	}
}

func TestProfitability(t *testing.T) {
	tests := []struct {
		name        string
		invested    int64
		current     int64
		wantDiff    int64
		wantPercent float64
	}{
		{"gain", 100000, 125000, 25000, 25},
		{"loss", 100000, 80000, -20000, -20},
		{"nothing invested", 0, 50000, 50000, 0},
		{"nothing anywhere", 0, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			diff, percent := Profitability(core.Money{Cents: tc.invested}, core.Money{Cents: tc.current})
			if diff.Cents != tc.wantDiff || percent != tc.wantPercent {
				t.Errorf("Profitability(%d, %d) = (%d, %v), want (%d, %v)",
					tc.invested, tc.current, diff.Cents, percent, tc.wantDiff, tc.wantPercent)
			}
		})
	}
}
