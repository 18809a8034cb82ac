// Package allocation contains the envelope allocation engine and the
// allocation plan use cases.
package allocation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
)

func newTestProfile(percentages map[string]string) *entity.Profile {
	p := entity.NewProfile("Test", "USD", decimal.NewFromInt(500))
	for name, pct := range percentages {
		percentage, _ := decimal.NewFromString(pct)
		p.Envelopes = append(p.Envelopes, entity.NewEnvelope(name, percentage))
	}
	return p
}

func decEq(t *testing.T, got decimal.Decimal, want string, label string) {
	t.Helper()
	expected, _ := decimal.NewFromString(want)
	if !got.Equal(expected) {
		t.Errorf("%s: expected %s, got %s", label, want, got)
	}
}

func TestShare(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		percentage string
		want       string
	}{
		{"thirty percent", "1000", "30", "300"},
		{"twenty percent", "1000", "20", "200"},
		{"fractional percentage", "1000", "12.5", "125"},
		{"fractional result", "10", "33", "3.3"},
		{"full amount", "250", "100", "250"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, _ := decimal.NewFromString(tt.amount)
			percentage, _ := decimal.NewFromString(tt.percentage)
			decEq(t, Share(amount, percentage), tt.want, "share")
		})
	}
}

func TestApplyIncome(t *testing.T) {
	p := newTestProfile(map[string]string{"Savings": "30", "Fun": "70"})
	entry := entity.NewEntry(entity.EntryKindIncome, "Salary", decimal.NewFromInt(1000), time.Now().UTC())

	ApplyIncome(p, entry)

	decEq(t, p.EnvelopeByName("Savings").Balance, "300", "savings balance")
	decEq(t, p.EnvelopeByName("Fun").Balance, "700", "fun balance")
	decEq(t, p.Pool.Balance, "1000", "pool balance")

	t.Run("derived transactions link back to the entry", func(t *testing.T) {
		for _, env := range p.Envelopes {
			if len(env.Transactions) != 1 {
				t.Fatalf("expected 1 transaction in %s, got %d", env.Name, len(env.Transactions))
			}
			tx := env.Transactions[0]
			if tx.SourceEntryID == nil || *tx.SourceEntryID != entry.ID {
				t.Errorf("envelope %s transaction not linked to source entry", env.Name)
			}
		}
		if len(p.Pool.Transactions) != 1 {
			t.Fatalf("expected 1 pool transaction, got %d", len(p.Pool.Transactions))
		}
	})
}

func TestApplyExpense(t *testing.T) {
	t.Run("matching envelope is debited with the pool", func(t *testing.T) {
		p := newTestProfile(map[string]string{"Groceries": "50"})
		entry := entity.NewEntry(entity.EntryKindExpense, "Weekly shop", decimal.NewFromInt(80), time.Now().UTC())

		ApplyExpense(p, entry, "Groceries")

		decEq(t, p.EnvelopeByName("Groceries").Balance, "-80", "groceries balance")
		decEq(t, p.Pool.Balance, "-80", "pool balance")
	})

	t.Run("unmatched category only debits the pool", func(t *testing.T) {
		p := newTestProfile(map[string]string{"Groceries": "50"})
		entry := entity.NewEntry(entity.EntryKindExpense, "Cinema", decimal.NewFromInt(25), time.Now().UTC())

		ApplyExpense(p, entry, "Leisure")

		decEq(t, p.EnvelopeByName("Groceries").Balance, "0", "groceries balance")
		if len(p.EnvelopeByName("Groceries").Transactions) != 0 {
			t.Error("expected no envelope transaction for unmatched category")
		}
		decEq(t, p.Pool.Balance, "-25", "pool balance")
	})
}

func TestReverseEntry(t *testing.T) {
	p := newTestProfile(map[string]string{"Savings": "20", "Fun": "10"})
	income := entity.NewEntry(entity.EntryKindIncome, "Salary", decimal.NewFromInt(1000), time.Now().UTC())
	expense := entity.NewEntry(entity.EntryKindExpense, "Treat", decimal.NewFromInt(50), time.Now().UTC())

	ApplyIncome(p, income)
	ApplyExpense(p, expense, "Fun")

	decEq(t, p.EnvelopeByName("Savings").Balance, "200", "savings after apply")
	decEq(t, p.EnvelopeByName("Fun").Balance, "50", "fun after apply")
	decEq(t, p.Pool.Balance, "950", "pool after apply")

	t.Run("reversing the expense restores the pre-expense state", func(t *testing.T) {
		ReverseEntry(p, expense.ID)

		decEq(t, p.EnvelopeByName("Fun").Balance, "100", "fun after reverse")
		decEq(t, p.Pool.Balance, "1000", "pool after reverse")
		if len(p.EnvelopeByName("Fun").Transactions) != 1 {
			t.Errorf("expected only the income transaction to remain")
		}
	})

	t.Run("reversing the income returns everything to zero", func(t *testing.T) {
		ReverseEntry(p, income.ID)

		decEq(t, p.EnvelopeByName("Savings").Balance, "0", "savings after full reverse")
		decEq(t, p.EnvelopeByName("Fun").Balance, "0", "fun after full reverse")
		decEq(t, p.Pool.Balance, "0", "pool after full reverse")
		if len(p.Pool.Transactions) != 0 {
			t.Errorf("expected no pool transactions, got %d", len(p.Pool.Transactions))
		}
	})

	t.Run("unlinked transactions survive a reversal", func(t *testing.T) {
		legacy := &entity.Transaction{
			ID:          uuid.New(),
			Kind:        entity.EntryKindIncome,
			Amount:      decimal.NewFromInt(10),
			Description: "legacy import",
			Date:        time.Now().UTC(),
		}
		p.Pool.Credit(legacy)

		ReverseEntry(p, income.ID)

		decEq(t, p.Pool.Balance, "10", "pool keeps unlinked amount")
		if len(p.Pool.Transactions) != 1 {
			t.Errorf("expected the unlinked transaction to remain")
		}
	})
}

func TestRetarget(t *testing.T) {
	t.Run("income retarget rewrites every linked transaction", func(t *testing.T) {
		p := newTestProfile(map[string]string{"Savings": "30", "Fun": "70"})
		entry := entity.NewEntry(entity.EntryKindIncome, "Salary", decimal.NewFromInt(1000), time.Now().UTC())
		ApplyIncome(p, entry)

		newDate := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
		Retarget(p, entry.ID, entity.EntryKindIncome, decimal.NewFromInt(2000), "Raise", newDate)

		decEq(t, p.EnvelopeByName("Savings").Balance, "600", "savings after retarget")
		decEq(t, p.EnvelopeByName("Fun").Balance, "1400", "fun after retarget")
		decEq(t, p.Pool.Balance, "2000", "pool after retarget")

		tx := p.EnvelopeByName("Savings").Transactions[0]
		if tx.Description != "Raise" {
			t.Errorf("expected rewritten description, got %q", tx.Description)
		}
		if !tx.Date.Equal(newDate) {
			t.Errorf("expected rewritten date, got %v", tx.Date)
		}
	})

	t.Run("expense retarget shifts balances by the diff", func(t *testing.T) {
		p := newTestProfile(map[string]string{"Groceries": "50"})
		entry := entity.NewEntry(entity.EntryKindExpense, "Weekly shop", decimal.NewFromInt(80), time.Now().UTC())
		ApplyExpense(p, entry, "Groceries")

		Retarget(p, entry.ID, entity.EntryKindExpense, decimal.NewFromInt(60), "Weekly shop", entry.Date)

		decEq(t, p.EnvelopeByName("Groceries").Balance, "-60", "groceries after retarget")
		decEq(t, p.Pool.Balance, "-60", "pool after retarget")
	})

	t.Run("identity retarget changes nothing", func(t *testing.T) {
		p := newTestProfile(map[string]string{"Savings": "30"})
		entry := entity.NewEntry(entity.EntryKindIncome, "Salary", decimal.NewFromInt(1000), time.Now().UTC())
		ApplyIncome(p, entry)

		Retarget(p, entry.ID, entity.EntryKindIncome, entry.Amount, entry.Description, entry.Date)

		decEq(t, p.EnvelopeByName("Savings").Balance, "300", "savings unchanged")
		decEq(t, p.Pool.Balance, "1000", "pool unchanged")
	})
}
