// Package model defines the persistence representations of the domain
// entities.
package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/allocation"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
)

// buildProfile assembles an aggregate exercising every document section:
// months with categories and entries, balance sheet lines, envelopes with
// derived transactions and the general pool.
func buildProfile(t *testing.T) *entity.Profile {
	t.Helper()

	target, _ := decimal.NewFromString("500")
	p := entity.NewProfile("Jordan", "EUR", target)

	pct, _ := decimal.NewFromString("30")
	p.Envelopes = append(p.Envelopes, entity.NewEnvelope("Savings", pct))

	record := func(kind entity.EntryKind, category, description, amount string, date time.Time) {
		t.Helper()
		amt, _ := decimal.NewFromString(amount)
		entry := entity.NewEntry(kind, description, amt, date)
		month := p.EnsureMonth(date)
		cat := month.EnsureCategory(category)
		cat.Entries = append(cat.Entries, entry)
		cat.AdjustTotals(kind, amt)
		month.AdjustTotals(kind, amt)
		if kind == entity.EntryKindIncome {
			allocation.ApplyIncome(p, entry)
		} else {
			allocation.ApplyExpense(p, entry, category)
		}
	}

	record(entity.EntryKindIncome, entity.GeneralIncomeCategory, "Salary", "1000", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	record(entity.EntryKindExpense, "Savings", "Transfer", "80", time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC))
	record(entity.EntryKindIncome, entity.GeneralIncomeCategory, "Bonus", "200", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))

	amount, _ := decimal.NewFromString("250000")
	line := entity.NewBalanceSheetEntry(entity.BalanceSheetKindAsset, "House", amount, time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC))
	p.BalanceSheet = append(p.BalanceSheet, line)

	return p
}

func TestCodecRoundTrip(t *testing.T) {
	codec := NewCodec()
	p := buildProfile(t)

	first, err := codec.Encode(p)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := codec.Decode(first)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	second, err := codec.Encode(decoded)
	if err != nil {
		t.Fatalf("re-encode failed: %v", err)
	}

	// Export, import, export again must be byte-identical.
	if !bytes.Equal(first, second) {
		t.Errorf("round trip is not stable:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestCodecRoundTripPreservesState(t *testing.T) {
	codec := NewCodec()
	p := buildProfile(t)
	p.Revision = 7

	payload, err := codec.Encode(p)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	decoded, err := codec.Decode(payload)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if decoded.ID != p.ID || decoded.Name != p.Name || decoded.CurrencyCode != p.CurrencyCode {
		t.Error("identity fields drifted through the round trip")
	}
	if decoded.PlanState != p.PlanState {
		t.Errorf("expected plan state %s, got %s", p.PlanState, decoded.PlanState)
	}
	if len(decoded.Months) != 2 || len(decoded.BalanceSheet) != 1 || len(decoded.Envelopes) != 1 {
		t.Fatalf("aggregate shape drifted: %d months, %d balance sheet lines, %d envelopes",
			len(decoded.Months), len(decoded.BalanceSheet), len(decoded.Envelopes))
	}
	if !decoded.Pool.Balance.Equal(p.Pool.Balance) {
		t.Errorf("pool balance drifted: %s vs %s", decoded.Pool.Balance, p.Pool.Balance)
	}
	if !decoded.EnvelopeByName("Savings").Balance.Equal(p.EnvelopeByName("Savings").Balance) {
		t.Error("envelope balance drifted")
	}
	if got := decoded.Envelopes[0].Transactions; len(got) == 0 || got[0].SourceEntryID == nil {
		t.Error("transaction entry linkage was lost")
	}

	// The revision counter is process-local and must not survive.
	if decoded.Revision != 0 {
		t.Errorf("expected revision to reset on load, got %d", decoded.Revision)
	}
}

func TestCodecDecodeRejectsCorruptDocuments(t *testing.T) {
	codec := NewCodec()

	expectCorrupt := func(t *testing.T, payload []byte) {
		t.Helper()
		_, err := codec.Decode(payload)
		var profileErr *domainerror.ProfileError
		if !errors.As(err, &profileErr) || profileErr.Code != domainerror.ErrCodeCorruptDocument {
			t.Fatalf("expected corrupt document error, got %v", err)
		}
	}

	t.Run("invalid json", func(t *testing.T) {
		expectCorrupt(t, []byte("{not json"))
	})

	t.Run("tampered month totals", func(t *testing.T) {
		doc := ProfileDocumentFromEntity(buildProfile(t))
		doc.Months[0].TotalIncome = doc.Months[0].TotalIncome.Add(decimal.NewFromInt(1))
		payload := mustMarshal(t, doc)
		expectCorrupt(t, payload)
	})

	t.Run("tampered category totals", func(t *testing.T) {
		doc := ProfileDocumentFromEntity(buildProfile(t))
		doc.Months[0].Categories[0].TotalExpenses = decimal.NewFromInt(999)
		expectCorrupt(t, mustMarshal(t, doc))
	})

	t.Run("non-positive entry amount", func(t *testing.T) {
		doc := ProfileDocumentFromEntity(buildProfile(t))
		doc.Months[0].Categories[0].Entries[0].Amount = decimal.Zero
		expectCorrupt(t, mustMarshal(t, doc))
	})

	t.Run("unknown entry kind", func(t *testing.T) {
		doc := ProfileDocumentFromEntity(buildProfile(t))
		doc.Months[0].Categories[0].Entries[0].Kind = "transfer"
		expectCorrupt(t, mustMarshal(t, doc))
	})

	t.Run("unknown plan state", func(t *testing.T) {
		doc := ProfileDocumentFromEntity(buildProfile(t))
		doc.PlanState = "tentative"
		expectCorrupt(t, mustMarshal(t, doc))
	})

	t.Run("non-positive balance sheet amount", func(t *testing.T) {
		doc := ProfileDocumentFromEntity(buildProfile(t))
		doc.BalanceSheet[0].Amount = decimal.NewFromInt(-1)
		expectCorrupt(t, mustMarshal(t, doc))
	})

	t.Run("over-allocated envelope percentages", func(t *testing.T) {
		doc := ProfileDocumentFromEntity(buildProfile(t))
		doc.Envelopes[0].Percentage = decimal.NewFromInt(170)
		expectCorrupt(t, mustMarshal(t, doc))
	})
}

// mustMarshal serializes a tampered document directly; Encode would rebuild
// it from the entity and undo the tampering.
func mustMarshal(t *testing.T, doc *ProfileDocument) []byte {
	t.Helper()
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	return raw
}
