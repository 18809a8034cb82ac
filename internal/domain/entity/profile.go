// Package entity defines the core business entities for the domain layer.
package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Profile is the aggregate root: one person's (or business's) complete ledger
// tree. It exclusively owns all nested collections; nothing is shared across
// profiles.
type Profile struct {
	ID           uuid.UUID
	Name         string
	CurrencyCode string          // ISO 4217, display currency for all amounts
	Target       decimal.Decimal // Monthly cashflow target for the wellness score
	Months       []*Month        // Sorted ascending by label
	BalanceSheet []*BalanceSheetEntry
	Envelopes    []*Envelope
	Pool         GeneralPool
	PlanState    PlanState
	Revision     uint64 // Incremented on every applied mutation
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewProfile creates an empty profile aggregate.
func NewProfile(name, currencyCode string, target decimal.Decimal) *Profile {
	now := time.Now().UTC()

	return &Profile{
		ID:           uuid.New(),
		Name:         name,
		CurrencyCode: currencyCode,
		Target:       target,
		Pool:         GeneralPool{Balance: decimal.Zero},
		PlanState:    PlanStateDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Month returns the month bucket with the given label, or nil.
func (p *Profile) Month(label string) *Month {
	for _, m := range p.Months {
		if m.Label == label {
			return m
		}
	}
	return nil
}

// EnsureMonth returns the month bucket for the given date, creating it lazily
// the first time an entry lands in that calendar month. Months stay sorted by
// label; they are never deleted automatically.
func (p *Profile) EnsureMonth(date time.Time) *Month {
	label := MonthLabelFor(date)
	if m := p.Month(label); m != nil {
		return m
	}
	m := NewMonth(label)
	p.Months = append(p.Months, m)
	sort.Slice(p.Months, func(i, j int) bool { return p.Months[i].Label < p.Months[j].Label })
	return m
}

// EntryLocation identifies an entry's position inside the month/category
// hierarchy. Valid only until the next structural mutation; the entry ID is
// the durable handle.
type EntryLocation struct {
	MonthIndex    int
	CategoryIndex int
	EntryIndex    int
}

// FindEntry locates an entry by ID anywhere in the hierarchy. Returns the
// containing month and category along with the entry, or ok=false.
func (p *Profile) FindEntry(entryID uuid.UUID) (month *Month, category *Category, entry *Entry, loc EntryLocation, ok bool) {
	for mi, m := range p.Months {
		for ci, c := range m.Categories {
			for ei, e := range c.Entries {
				if e.ID == entryID {
					return m, c, e, EntryLocation{MonthIndex: mi, CategoryIndex: ci, EntryIndex: ei}, true
				}
			}
		}
	}
	return nil, nil, nil, EntryLocation{}, false
}

// FindBalanceSheetEntry locates a balance sheet entry by ID. Returns its
// position, or -1.
func (p *Profile) FindBalanceSheetEntry(entryID uuid.UUID) (*BalanceSheetEntry, int) {
	for i, b := range p.BalanceSheet {
		if b.ID == entryID {
			return b, i
		}
	}
	return nil, -1
}

// Envelope returns the envelope with the given ID, or nil.
func (p *Profile) Envelope(envelopeID uuid.UUID) *Envelope {
	for _, e := range p.Envelopes {
		if e.ID == envelopeID {
			return e
		}
	}
	return nil
}

// EnvelopeByName returns the envelope with the given name, or nil.
func (p *Profile) EnvelopeByName(name string) *Envelope {
	for _, e := range p.Envelopes {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// PercentageSum is the sum of all envelope percentages.
func (p *Profile) PercentageSum() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range p.Envelopes {
		sum = sum.Add(e.Percentage)
	}
	return sum
}

// Clear empties every collection while preserving the profile identity
// (name, currency, target). Used by the full reset operation.
func (p *Profile) Clear() {
	p.Months = nil
	p.BalanceSheet = nil
	p.Envelopes = nil
	p.Pool = GeneralPool{Balance: decimal.Zero}
	p.PlanState = PlanStateDraft
}

// Touch records that a mutation was applied.
func (p *Profile) Touch() {
	p.Revision++
	p.UpdatedAt = time.Now().UTC()
}
