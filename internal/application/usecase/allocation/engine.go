// Package allocation contains the envelope allocation engine and the
// allocation plan use cases.
package allocation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// Share computes the envelope's cut of an income amount: amount * percentage / 100.
func Share(amount, percentage decimal.Decimal) decimal.Decimal {
	return amount.Mul(percentage).Div(oneHundred)
}

// ApplyIncome distributes an income entry across every envelope by its
// percentage and credits the general pool with the full amount. Each credited
// balance gets a derived transaction linked to the source entry.
func ApplyIncome(p *entity.Profile, entry *entity.Entry) {
	for _, env := range p.Envelopes {
		cut := Share(entry.Amount, env.Percentage)
		env.Credit(entity.NewTransaction(entry.ID, entity.EntryKindIncome, cut, entry.Description, entry.Date))
	}
	p.Pool.Credit(entity.NewTransaction(entry.ID, entity.EntryKindIncome, entry.Amount, entry.Description, entry.Date))
}

// ApplyExpense debits the envelope whose name matches the expense's category
// and the general pool. When no envelope carries the category name the
// envelope-side effect is skipped silently; the pool is debited regardless.
func ApplyExpense(p *entity.Profile, entry *entity.Entry, categoryName string) {
	if env := p.EnvelopeByName(categoryName); env != nil {
		env.Credit(entity.NewTransaction(entry.ID, entity.EntryKindExpense, entry.Amount.Neg(), entry.Description, entry.Date))
	}
	p.Pool.Credit(entity.NewTransaction(entry.ID, entity.EntryKindExpense, entry.Amount.Neg(), entry.Description, entry.Date))
}

// ReverseEntry undoes every envelope and pool effect of the given source
// entry: linked transactions are removed and their amounts backed out of the
// balances. Transactions without a source link (older import documents) are
// left untouched, mirroring the legacy soft-fail.
func ReverseEntry(p *entity.Profile, entryID uuid.UUID) {
	for _, env := range p.Envelopes {
		env.Balance = env.Balance.Sub(removeBySource(&env.Transactions, entryID))
	}
	p.Pool.Balance = p.Pool.Balance.Sub(removeBySource(&p.Pool.Transactions, entryID))
}

// Retarget re-propagates an edited entry into its derived transactions. Every
// transaction linked to the entry is rewritten in place to the new amount,
// description and date, and the owning balance is shifted by the amount diff.
// Entries without linked transactions are skipped silently.
func Retarget(p *entity.Profile, entryID uuid.UUID, kind entity.EntryKind, newAmount decimal.Decimal, newDescription string, newDate time.Time) {
	for _, env := range p.Envelopes {
		target := newAmount.Neg()
		if kind == entity.EntryKindIncome {
			target = Share(newAmount, env.Percentage)
		}
		env.Balance = env.Balance.Add(rewriteBySource(env.Transactions, entryID, target, newDescription, newDate))
	}

	poolTarget := newAmount.Neg()
	if kind == entity.EntryKindIncome {
		poolTarget = newAmount
	}
	p.Pool.Balance = p.Pool.Balance.Add(rewriteBySource(p.Pool.Transactions, entryID, poolTarget, newDescription, newDate))
}

// removeBySource drops every transaction linked to the source entry and
// returns the sum of the removed amounts.
func removeBySource(txs *[]*entity.Transaction, sourceEntryID uuid.UUID) decimal.Decimal {
	removed := decimal.Zero
	kept := (*txs)[:0]
	for _, tx := range *txs {
		if tx.SourceEntryID != nil && *tx.SourceEntryID == sourceEntryID {
			removed = removed.Add(tx.Amount)
			continue
		}
		kept = append(kept, tx)
	}
	*txs = kept
	return removed
}

// rewriteBySource rewrites every transaction linked to the source entry to the
// target amount, description and date, returning the total balance diff.
func rewriteBySource(txs []*entity.Transaction, sourceEntryID uuid.UUID, target decimal.Decimal, description string, date time.Time) decimal.Decimal {
	diff := decimal.Zero
	for _, tx := range txs {
		if tx.SourceEntryID == nil || *tx.SourceEntryID != sourceEntryID {
			continue
		}
		diff = diff.Add(target.Sub(tx.Amount))
		tx.Amount = target
		tx.Description = description
		tx.Date = date
	}
	return diff
}
