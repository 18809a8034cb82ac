// Package wellness derives the financial wellness score and its narrative
// tips from average cashflow versus the profile target.
package wellness

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/ledger"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/persistence"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/persistence/model"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func TestScore(t *testing.T) {
	tests := []struct {
		name          string
		cashflow      string
		target        string
		display       int
		raw           int
		exceedsTarget bool
	}{
		{"half of target", "250", "500", 50, 50, false},
		{"exactly on target", "500", "500", 100, 100, true},
		{"raw is kept when display clamps", "750", "500", 100, 150, true},
		{"negative cashflow goes negative", "-100", "500", -20, -20, false},
		{"ratio is rounded", "333", "1000", 33, 33, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Score(dec(t, tt.cashflow), dec(t, tt.target))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Display != tt.display {
				t.Errorf("display: expected %d, got %d", tt.display, result.Display)
			}
			if result.Raw != tt.raw {
				t.Errorf("raw: expected %d, got %d", tt.raw, result.Raw)
			}
			if result.ExceedsTarget != tt.exceedsTarget {
				t.Errorf("exceedsTarget: expected %v, got %v", tt.exceedsTarget, result.ExceedsTarget)
			}
		})
	}

	t.Run("non-positive target fails", func(t *testing.T) {
		for _, target := range []string{"0", "-500"} {
			_, err := Score(dec(t, "100"), dec(t, target))
			var wellnessErr *domainerror.WellnessError
			if !errors.As(err, &wellnessErr) || wellnessErr.Code != domainerror.ErrCodeInvalidWellnessTarget {
				t.Errorf("target %s: expected invalid target error, got %v", target, err)
			}
		}
	})
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		score int
		band  Band
	}{
		{-20, BandLow},
		{0, BandLow},
		{39, BandLow},
		{40, BandModerate},
		{59, BandModerate},
		{60, BandGood},
		{79, BandGood},
		{80, BandExcellent},
		{100, BandExcellent},
	}
	for _, tt := range tests {
		if got := BandFor(tt.score); got != tt.band {
			t.Errorf("score %d: expected band %s, got %s", tt.score, tt.band, got)
		}
	}
}

func TestTipFor(t *testing.T) {
	contains := func(pool []string, s string) bool {
		for _, candidate := range pool {
			if candidate == s {
				return true
			}
		}
		return false
	}

	t.Run("primary comes from the band pool", func(t *testing.T) {
		result, err := Score(dec(t, "450"), dec(t, "500"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := 0; i < 20; i++ {
			primary, _ := TipFor(result, dec(t, "450"), dec(t, "500"))
			if !contains(bandTips[BandExcellent], primary) {
				t.Fatalf("primary tip %q not in the excellent pool", primary)
			}
		}
	})

	t.Run("supplementary routes on target comparison", func(t *testing.T) {
		result, err := Score(dec(t, "250"), dec(t, "500"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, under := TipFor(result, dec(t, "250"), dec(t, "500"))
		if !contains(belowTargetTips, under) {
			t.Errorf("supplementary tip %q not in the below-target pool", under)
		}
		_, over := TipFor(result, dec(t, "600"), dec(t, "500"))
		if !contains(meetsTargetTips, over) {
			t.Errorf("supplementary tip %q not in the meets-target pool", over)
		}
	})
}

func TestComputeWellnessUseCase(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := persistence.NewProfileStore(persistence.NewMemorySnapshotStore(), model.NewCodec(), logger)

	p := entity.NewProfile("Test", "USD", dec(t, "500"))
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}

	record := func(kind entity.EntryKind, category, description, amount string, date time.Time) {
		t.Helper()
		if _, err := ledger.NewRecordEntryUseCase(repo).Execute(context.Background(), ledger.RecordEntryInput{
			ProfileID:   p.ID,
			Kind:        kind,
			Category:    category,
			Description: description,
			Amount:      dec(t, amount),
			Date:        date,
		}); err != nil {
			t.Fatalf("failed to record %s: %v", description, err)
		}
	}

	record(entity.EntryKindIncome, "", "Salary", "1000", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	record(entity.EntryKindExpense, "Rent", "Rent", "600", time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC))
	record(entity.EntryKindIncome, "", "Salary", "1000", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))
	record(entity.EntryKindExpense, "Rent", "Rent", "800", time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC))

	// Average cashflow (1000-600 + 1000-800) / 2 = 300 against a target of 500.
	output, err := NewComputeWellnessUseCase(repo).Execute(context.Background(), ComputeWellnessInput{ProfileID: p.ID})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	if output.Score.Display != 60 || output.Score.Raw != 60 {
		t.Errorf("expected score 60/60, got %d/%d", output.Score.Display, output.Score.Raw)
	}
	if output.Score.ExceedsTarget {
		t.Error("expected cashflow below target")
	}
	if output.Band != BandGood {
		t.Errorf("expected good band, got %s", output.Band)
	}
	if !output.AvgCashflow.Equal(dec(t, "300")) {
		t.Errorf("expected avg cashflow 300, got %s", output.AvgCashflow)
	}
	if output.PrimaryTip == "" || output.SupplementaryTip == "" {
		t.Error("expected both tips to be populated")
	}
}
