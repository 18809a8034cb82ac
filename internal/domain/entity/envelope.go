// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlanState represents the state of the envelope allocation plan.
type PlanState string

const (
	// PlanStateDraft means percentages may not sum to 100 and the plan is
	// still editable.
	PlanStateDraft PlanState = "draft"
	// PlanStateCommitted means the percentages summed to exactly 100 when
	// the plan was last saved. Any add or edit moves the plan back to draft.
	PlanStateCommitted PlanState = "committed"
)

// Envelope is a named, percentage-weighted budget bucket that mirrors a share
// of every income event.
type Envelope struct {
	ID           uuid.UUID
	Name         string
	Percentage   decimal.Decimal // 0-100
	Balance      decimal.Decimal // Signed
	Transactions []*Transaction
}

// NewEnvelope creates an envelope with a zero balance and no history.
func NewEnvelope(name string, percentage decimal.Decimal) *Envelope {
	return &Envelope{
		ID:         uuid.New(),
		Name:       name,
		Percentage: percentage,
		Balance:    decimal.Zero,
	}
}

// Transaction is a derived ledger movement inside an Envelope or the general
// pool. SourceEntryID links it to the Entry that caused it; transactions
// decoded from older export documents may lack the link.
type Transaction struct {
	ID            uuid.UUID
	SourceEntryID *uuid.UUID
	Date          time.Time
	Amount        decimal.Decimal // Positive for income-derived credits, negative for expense-derived debits
	Kind          EntryKind
	Description   string
}

// NewTransaction creates a derived transaction linked to its source entry.
func NewTransaction(sourceEntryID uuid.UUID, kind EntryKind, amount decimal.Decimal, description string, date time.Time) *Transaction {
	src := sourceEntryID
	return &Transaction{
		ID:            uuid.New(),
		SourceEntryID: &src,
		Date:          date,
		Amount:        amount,
		Kind:          kind,
		Description:   description,
	}
}

// GeneralPool is the always-100%-funded aggregate balance, independent of the
// envelope structure. It mirrors every income in full and every expense in
// full.
type GeneralPool struct {
	Balance      decimal.Decimal
	Transactions []*Transaction
}

// Credit appends a transaction and shifts the pool balance by its amount.
func (g *GeneralPool) Credit(tx *Transaction) {
	g.Balance = g.Balance.Add(tx.Amount)
	g.Transactions = append(g.Transactions, tx)
}

// Credit appends a transaction and shifts the envelope balance by its amount.
func (e *Envelope) Credit(tx *Transaction) {
	e.Balance = e.Balance.Add(tx.Amount)
	e.Transactions = append(e.Transactions, tx)
}

// TransactionsBySource returns the indices of transactions linked to the given
// source entry, in history order.
func TransactionsBySource(txs []*Transaction, sourceEntryID uuid.UUID) []int {
	var idxs []int
	for i, tx := range txs {
		if tx.SourceEntryID != nil && *tx.SourceEntryID == sourceEntryID {
			idxs = append(idxs, i)
		}
	}
	return idxs
}
