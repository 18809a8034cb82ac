// Package ledger contains the month/category/entry ledger use cases.
package ledger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/allocation"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/persistence"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/persistence/model"
)

func newTestRepo(t *testing.T) (adapter.ProfileRepository, *entity.Profile) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := persistence.NewProfileStore(persistence.NewMemorySnapshotStore(), model.NewCodec(), logger)

	p := entity.NewProfile("Test", "USD", decimal.NewFromInt(500))
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
	return repo, p
}

func decEq(t *testing.T, got decimal.Decimal, want string, label string) {
	t.Helper()
	expected, _ := decimal.NewFromString(want)
	if !got.Equal(expected) {
		t.Errorf("%s: expected %s, got %s", label, want, got)
	}
}

func mustRecord(t *testing.T, repo adapter.ProfileRepository, profileID uuid.UUID, kind entity.EntryKind, category, description, amount string, date time.Time) *EntryOutput {
	t.Helper()
	amt, _ := decimal.NewFromString(amount)
	output, err := NewRecordEntryUseCase(repo).Execute(context.Background(), RecordEntryInput{
		ProfileID:   profileID,
		Kind:        kind,
		Category:    category,
		Description: description,
		Amount:      amt,
		Date:        date,
	})
	if err != nil {
		t.Fatalf("failed to record %s %q: %v", kind, description, err)
	}
	return output.Entry
}

// checkTotals verifies the nested total invariant: every category's totals
// equal the sum over its entries, every month's totals equal the sum over its
// categories.
func checkTotals(t *testing.T, repo adapter.ProfileRepository, profileID uuid.UUID) {
	t.Helper()
	err := repo.View(context.Background(), profileID, func(p *entity.Profile) error {
		for _, m := range p.Months {
			monthIncome := decimal.Zero
			monthExpenses := decimal.Zero
			for _, c := range m.Categories {
				catIncome := decimal.Zero
				catExpenses := decimal.Zero
				for _, e := range c.Entries {
					if e.Kind == entity.EntryKindIncome {
						catIncome = catIncome.Add(e.Amount)
					} else {
						catExpenses = catExpenses.Add(e.Amount)
					}
				}
				if !c.TotalIncome.Equal(catIncome) || !c.TotalExpenses.Equal(catExpenses) {
					t.Errorf("category %s/%s totals drifted: income %s vs %s, expenses %s vs %s",
						m.Label, c.Name, c.TotalIncome, catIncome, c.TotalExpenses, catExpenses)
				}
				monthIncome = monthIncome.Add(catIncome)
				monthExpenses = monthExpenses.Add(catExpenses)
			}
			if !m.TotalIncome.Equal(monthIncome) || !m.TotalExpenses.Equal(monthExpenses) {
				t.Errorf("month %s totals drifted: income %s vs %s, expenses %s vs %s",
					m.Label, m.TotalIncome, monthIncome, m.TotalExpenses, monthExpenses)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
}

func TestRecordEntryUseCase(t *testing.T) {
	date := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	t.Run("income lands in the reserved category regardless of input", func(t *testing.T) {
		repo, p := newTestRepo(t)
		entry := mustRecord(t, repo, p.ID, entity.EntryKindIncome, "Whatever", "Salary", "1000", date)

		if entry.CategoryName != entity.GeneralIncomeCategory {
			t.Errorf("expected category %q, got %q", entity.GeneralIncomeCategory, entry.CategoryName)
		}
		if entry.MonthLabel != "2025-04" {
			t.Errorf("expected month 2025-04, got %s", entry.MonthLabel)
		}
		checkTotals(t, repo, p.ID)
	})

	t.Run("expense requires a category", func(t *testing.T) {
		repo, p := newTestRepo(t)
		amt, _ := decimal.NewFromString("50")
		_, err := NewRecordEntryUseCase(repo).Execute(context.Background(), RecordEntryInput{
			ProfileID:   p.ID,
			Kind:        entity.EntryKindExpense,
			Description: "Groceries",
			Amount:      amt,
			Date:        date,
		})
		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeEmptyCategoryName {
			t.Fatalf("expected empty category error, got %v", err)
		}
	})

	t.Run("non-positive amounts and empty descriptions are rejected", func(t *testing.T) {
		repo, p := newTestRepo(t)

		zero := decimal.Zero
		_, err := NewRecordEntryUseCase(repo).Execute(context.Background(), RecordEntryInput{
			ProfileID:   p.ID,
			Kind:        entity.EntryKindIncome,
			Description: "Salary",
			Amount:      zero,
			Date:        date,
		})
		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeInvalidEntryAmount {
			t.Fatalf("expected invalid amount error, got %v", err)
		}

		amt, _ := decimal.NewFromString("10")
		_, err = NewRecordEntryUseCase(repo).Execute(context.Background(), RecordEntryInput{
			ProfileID:   p.ID,
			Kind:        entity.EntryKindIncome,
			Description: "   ",
			Amount:      amt,
			Date:        date,
		})
		if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeEmptyEntryDescription {
			t.Fatalf("expected empty description error, got %v", err)
		}
	})

	t.Run("months stay sorted ascending by label", func(t *testing.T) {
		repo, p := newTestRepo(t)
		mustRecord(t, repo, p.ID, entity.EntryKindIncome, "", "Late", "10", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
		mustRecord(t, repo, p.ID, entity.EntryKindIncome, "", "Early", "10", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
		mustRecord(t, repo, p.ID, entity.EntryKindIncome, "", "Middle", "10", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))

		output, err := NewListMonthsUseCase(repo).Execute(context.Background(), ListMonthsInput{ProfileID: p.ID})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		labels := make([]string, len(output.Months))
		for i, m := range output.Months {
			labels[i] = m.Label
		}
		if strings.Join(labels, ",") != "2025-02,2025-04,2025-06" {
			t.Errorf("expected sorted month labels, got %v", labels)
		}
	})
}

func TestEditEntryUseCase(t *testing.T) {
	date := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	t.Run("identity edit leaves the aggregate unchanged", func(t *testing.T) {
		repo, p := newTestRepo(t)
		entry := mustRecord(t, repo, p.ID, entity.EntryKindIncome, "", "Salary", "1000", date)

		output, err := NewEditEntryUseCase(repo).Execute(context.Background(), EditEntryInput{
			ProfileID:   p.ID,
			EntryID:     entry.ID,
			Amount:      &entry.Amount,
			Description: &entry.Description,
			Date:        &entry.Date,
		})
		if err != nil {
			t.Fatalf("edit failed: %v", err)
		}
		decEq(t, output.Entry.Amount, "1000", "amount after identity edit")
		checkTotals(t, repo, p.ID)
	})

	t.Run("amount edit shifts totals by the diff", func(t *testing.T) {
		repo, p := newTestRepo(t)
		entry := mustRecord(t, repo, p.ID, entity.EntryKindExpense, "Groceries", "Weekly shop", "80", date)

		newAmount, _ := decimal.NewFromString("60")
		if _, err := NewEditEntryUseCase(repo).Execute(context.Background(), EditEntryInput{
			ProfileID: p.ID,
			EntryID:   entry.ID,
			Amount:    &newAmount,
		}); err != nil {
			t.Fatalf("edit failed: %v", err)
		}

		err := repo.View(context.Background(), p.ID, func(p *entity.Profile) error {
			decEq(t, p.Months[0].TotalExpenses, "60", "month expenses after edit")
			return nil
		})
		if err != nil {
			t.Fatalf("view failed: %v", err)
		}
		checkTotals(t, repo, p.ID)
	})

	t.Run("date edit into another month relocates the entry", func(t *testing.T) {
		repo, p := newTestRepo(t)
		entry := mustRecord(t, repo, p.ID, entity.EntryKindIncome, "", "Salary", "1000", date)

		newDate := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
		output, err := NewEditEntryUseCase(repo).Execute(context.Background(), EditEntryInput{
			ProfileID: p.ID,
			EntryID:   entry.ID,
			Date:      &newDate,
		})
		if err != nil {
			t.Fatalf("edit failed: %v", err)
		}
		if output.Entry.MonthLabel != "2025-05" {
			t.Errorf("expected relocation to 2025-05, got %s", output.Entry.MonthLabel)
		}

		err = repo.View(context.Background(), p.ID, func(p *entity.Profile) error {
			old := p.Month("2025-04")
			if old == nil {
				t.Fatal("expected the old month bucket to remain")
			}
			decEq(t, old.TotalIncome, "0", "old month income after relocation")
			decEq(t, p.Month("2025-05").TotalIncome, "1000", "new month income after relocation")
			return nil
		})
		if err != nil {
			t.Fatalf("view failed: %v", err)
		}
		checkTotals(t, repo, p.ID)
	})

	t.Run("edit retargets derived transactions", func(t *testing.T) {
		repo, p := newTestRepo(t)
		pct, _ := decimal.NewFromString("30")
		if _, err := allocation.NewAddEnvelopeUseCase(repo).Execute(context.Background(), allocation.AddEnvelopeInput{
			ProfileID:  p.ID,
			Name:       "Savings",
			Percentage: pct,
		}); err != nil {
			t.Fatalf("failed to add envelope: %v", err)
		}

		entry := mustRecord(t, repo, p.ID, entity.EntryKindIncome, "", "Salary", "1000", date)

		newAmount, _ := decimal.NewFromString("2000")
		if _, err := NewEditEntryUseCase(repo).Execute(context.Background(), EditEntryInput{
			ProfileID: p.ID,
			EntryID:   entry.ID,
			Amount:    &newAmount,
		}); err != nil {
			t.Fatalf("edit failed: %v", err)
		}

		err := repo.View(context.Background(), p.ID, func(p *entity.Profile) error {
			decEq(t, p.EnvelopeByName("Savings").Balance, "600", "envelope after retarget")
			decEq(t, p.Pool.Balance, "2000", "pool after retarget")
			return nil
		})
		if err != nil {
			t.Fatalf("view failed: %v", err)
		}
	})

	t.Run("unknown entry fails", func(t *testing.T) {
		repo, p := newTestRepo(t)
		amt, _ := decimal.NewFromString("10")
		_, err := NewEditEntryUseCase(repo).Execute(context.Background(), EditEntryInput{
			ProfileID: p.ID,
			EntryID:   uuid.New(),
			Amount:    &amt,
		})
		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeEntryNotFound {
			t.Fatalf("expected entry not found error, got %v", err)
		}
	})
}

func TestDuplicateEntryUseCase(t *testing.T) {
	repo, p := newTestRepo(t)
	date := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	entry := mustRecord(t, repo, p.ID, entity.EntryKindExpense, "Groceries", "Weekly shop", "80", date)

	output, err := NewDuplicateEntryUseCase(repo).Execute(context.Background(), DuplicateEntryInput{
		ProfileID: p.ID,
		EntryID:   entry.ID,
	})
	if err != nil {
		t.Fatalf("duplicate failed: %v", err)
	}

	if output.Entry.Description != "Weekly shop (copy)" {
		t.Errorf("expected suffixed description, got %q", output.Entry.Description)
	}
	decEq(t, output.Entry.Amount, "80", "duplicated amount")
	if output.Entry.ID == entry.ID {
		t.Error("expected the copy to get a fresh ID")
	}
	if !output.Entry.Date.After(date) {
		t.Errorf("expected today's date on the copy, got %v", output.Entry.Date)
	}
	checkTotals(t, repo, p.ID)
}

func TestDeleteEntryUseCase(t *testing.T) {
	repo, p := newTestRepo(t)
	date := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	pct, _ := decimal.NewFromString("20")
	if _, err := allocation.NewAddEnvelopeUseCase(repo).Execute(context.Background(), allocation.AddEnvelopeInput{
		ProfileID:  p.ID,
		Name:       "Savings",
		Percentage: pct,
	}); err != nil {
		t.Fatalf("failed to add envelope: %v", err)
	}

	entry := mustRecord(t, repo, p.ID, entity.EntryKindIncome, "", "Salary", "1000", date)
	mustRecord(t, repo, p.ID, entity.EntryKindExpense, "Groceries", "Weekly shop", "80", date)

	if err := NewDeleteEntryUseCase(repo).Execute(context.Background(), DeleteEntryInput{
		ProfileID: p.ID,
		EntryID:   entry.ID,
	}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	err := repo.View(context.Background(), p.ID, func(p *entity.Profile) error {
		decEq(t, p.Months[0].TotalIncome, "0", "month income after delete")
		decEq(t, p.Months[0].TotalExpenses, "80", "month expenses untouched")
		decEq(t, p.EnvelopeByName("Savings").Balance, "0", "envelope after delete")
		decEq(t, p.Pool.Balance, "-80", "pool after delete")

		// The emptied category stays in place.
		if p.Months[0].Category(entity.GeneralIncomeCategory) == nil {
			t.Error("expected the emptied category to remain")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
	checkTotals(t, repo, p.ID)
}

func TestAveragesUseCase(t *testing.T) {
	t.Run("empty ledger yields zero averages", func(t *testing.T) {
		repo, p := newTestRepo(t)
		output, err := NewAveragesUseCase(repo).Execute(context.Background(), AveragesInput{ProfileID: p.ID})
		if err != nil {
			t.Fatalf("averages failed: %v", err)
		}
		decEq(t, output.AvgIncome, "0", "avg income")
		decEq(t, output.AvgCashflow, "0", "avg cashflow")
		if output.MonthCount != 0 {
			t.Errorf("expected 0 months, got %d", output.MonthCount)
		}
	})

	t.Run("averages span all recorded months", func(t *testing.T) {
		repo, p := newTestRepo(t)
		mustRecord(t, repo, p.ID, entity.EntryKindIncome, "", "Salary", "1000", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
		mustRecord(t, repo, p.ID, entity.EntryKindIncome, "", "Salary", "2000", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))
		mustRecord(t, repo, p.ID, entity.EntryKindExpense, "Rent", "Rent", "600", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))

		output, err := NewAveragesUseCase(repo).Execute(context.Background(), AveragesInput{ProfileID: p.ID})
		if err != nil {
			t.Fatalf("averages failed: %v", err)
		}
		decEq(t, output.AvgIncome, "1500", "avg income")
		decEq(t, output.AvgExpenses, "300", "avg expenses")
		decEq(t, output.AvgCashflow, "1200", "avg cashflow")
		if output.MonthCount != 2 {
			t.Errorf("expected 2 months, got %d", output.MonthCount)
		}
	})
}

func TestBalanceSheetUseCases(t *testing.T) {
	repo, p := newTestRepo(t)
	date := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	record := func(kind entity.BalanceSheetKind, description, amount string) *BalanceSheetEntryOutput {
		t.Helper()
		amt, _ := decimal.NewFromString(amount)
		output, err := NewRecordBalanceSheetEntryUseCase(repo).Execute(context.Background(), RecordBalanceSheetEntryInput{
			ProfileID:   p.ID,
			Kind:        kind,
			Description: description,
			Amount:      amt,
			Date:        date,
		})
		if err != nil {
			t.Fatalf("failed to record %s: %v", description, err)
		}
		return output.Entry
	}

	house := record(entity.BalanceSheetKindAsset, "House", "250000")
	record(entity.BalanceSheetKindAsset, "Savings account", "10000")
	record(entity.BalanceSheetKindLiability, "Mortgage", "180000")

	t.Run("list computes per-kind totals and net worth", func(t *testing.T) {
		output, err := NewListBalanceSheetUseCase(repo).Execute(context.Background(), ListBalanceSheetInput{ProfileID: p.ID})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		decEq(t, output.TotalAssets, "260000", "total assets")
		decEq(t, output.TotalLiabilities, "180000", "total liabilities")
		decEq(t, output.NetWorth, "80000", "net worth")
	})

	t.Run("edit mutates in place", func(t *testing.T) {
		newAmount, _ := decimal.NewFromString("240000")
		output, err := NewEditBalanceSheetEntryUseCase(repo).Execute(context.Background(), EditBalanceSheetEntryInput{
			ProfileID: p.ID,
			EntryID:   house.ID,
			Amount:    &newAmount,
		})
		if err != nil {
			t.Fatalf("edit failed: %v", err)
		}
		decEq(t, output.Entry.Amount, "240000", "edited amount")
	})

	t.Run("delete removes the line", func(t *testing.T) {
		if err := NewDeleteBalanceSheetEntryUseCase(repo).Execute(context.Background(), DeleteBalanceSheetEntryInput{
			ProfileID: p.ID,
			EntryID:   house.ID,
		}); err != nil {
			t.Fatalf("delete failed: %v", err)
		}

		output, err := NewListBalanceSheetUseCase(repo).Execute(context.Background(), ListBalanceSheetInput{ProfileID: p.ID})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(output.Entries) != 2 {
			t.Errorf("expected 2 entries after delete, got %d", len(output.Entries))
		}
		decEq(t, output.NetWorth, "-170000", "net worth after delete")
	})

	t.Run("balance sheet never touches the allocation aggregates", func(t *testing.T) {
		err := repo.View(context.Background(), p.ID, func(p *entity.Profile) error {
			decEq(t, p.Pool.Balance, "0", "pool untouched by balance sheet")
			return nil
		})
		if err != nil {
			t.Fatalf("view failed: %v", err)
		}
	})
}
