// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryKind represents the kind of ledger entry (income or expense).
type EntryKind string

const (
	EntryKindIncome  EntryKind = "income"
	EntryKindExpense EntryKind = "expense"
)

// GeneralIncomeCategory is the reserved category name every income entry is
// recorded under.
const GeneralIncomeCategory = "General Income"

// MonthLabelLayout is the time layout for month labels ("YYYY-MM").
const MonthLabelLayout = "2006-01"

// Entry represents a single income or expense record inside a Category.
type Entry struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal // Always positive; Kind carries the sign
	Kind        EntryKind
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewEntry creates a new Entry entity with a stable identifier.
func NewEntry(kind EntryKind, description string, amount decimal.Decimal, date time.Time) *Entry {
	now := time.Now().UTC()

	return &Entry{
		ID:          uuid.New(),
		Date:        date,
		Description: description,
		Amount:      amount,
		Kind:        kind,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Category groups the entries of one month under a user-defined name and
// maintains the per-kind running totals.
type Category struct {
	Name          string
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Entries       []*Entry
}

// NewCategory creates an empty category with zeroed totals.
func NewCategory(name string) *Category {
	return &Category{
		Name:          name,
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
}

// AdjustTotals shifts the category total for the given kind by delta.
// Delta may be negative (edit diff, deletion).
func (c *Category) AdjustTotals(kind EntryKind, delta decimal.Decimal) {
	if kind == EntryKindIncome {
		c.TotalIncome = c.TotalIncome.Add(delta)
		return
	}
	c.TotalExpenses = c.TotalExpenses.Add(delta)
}

// EntryIndex returns the position of the entry with the given ID, or -1.
func (c *Category) EntryIndex(entryID uuid.UUID) int {
	for i, e := range c.Entries {
		if e.ID == entryID {
			return i
		}
	}
	return -1
}

// RemoveEntry deletes the entry at index i, preserving order.
func (c *Category) RemoveEntry(i int) {
	c.Entries = append(c.Entries[:i], c.Entries[i+1:]...)
}

// Month buckets the categories of one calendar month and maintains the
// month-level totals over them.
type Month struct {
	Label         string // "YYYY-MM"
	Categories    []*Category
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
}

// NewMonth creates an empty month bucket for the given label.
func NewMonth(label string) *Month {
	return &Month{
		Label:         label,
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
}

// MonthLabelFor derives the month label of a calendar date.
func MonthLabelFor(date time.Time) string {
	return date.Format(MonthLabelLayout)
}

// AdjustTotals shifts the month total for the given kind by delta.
func (m *Month) AdjustTotals(kind EntryKind, delta decimal.Decimal) {
	if kind == EntryKindIncome {
		m.TotalIncome = m.TotalIncome.Add(delta)
		return
	}
	m.TotalExpenses = m.TotalExpenses.Add(delta)
}

// Category returns the category with the given name, or nil.
func (m *Month) Category(name string) *Category {
	for _, c := range m.Categories {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// EnsureCategory returns the category with the given name, creating it when
// it does not exist yet.
func (m *Month) EnsureCategory(name string) *Category {
	if c := m.Category(name); c != nil {
		return c
	}
	c := NewCategory(name)
	m.Categories = append(m.Categories, c)
	return c
}
