// Package model defines the persistence representations of the domain
// entities.
package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
)

// ProfileDocument is the canonical JSON layout of one profile aggregate. The
// export file, the local snapshot table and the cloud document all carry this
// exact layout, so any of them can be imported back.
//
// The in-memory revision counter is deliberately not serialized: it counts
// mutations within one process and restarts on load.
type ProfileDocument struct {
	ID           uuid.UUID              `json:"id"`
	Name         string                 `json:"name"`
	CurrencyCode string                 `json:"currency_code"`
	Target       decimal.Decimal        `json:"target"`
	Months       []MonthDocument        `json:"months"`
	BalanceSheet []BalanceSheetDocument `json:"balance_sheet"`
	Envelopes    []EnvelopeDocument     `json:"envelopes"`
	GeneralPool  PoolDocument           `json:"general_pool"`
	PlanState    string                 `json:"plan_state"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// MonthDocument is one month bucket in the document.
type MonthDocument struct {
	Label         string             `json:"label"`
	TotalIncome   decimal.Decimal    `json:"total_income"`
	TotalExpenses decimal.Decimal    `json:"total_expenses"`
	Categories    []CategoryDocument `json:"categories"`
}

// CategoryDocument is one category in the document.
type CategoryDocument struct {
	Name          string          `json:"name"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Entries       []EntryDocument `json:"entries"`
}

// EntryDocument is one ledger entry in the document.
type EntryDocument struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BalanceSheetDocument is one asset/liability line in the document.
type BalanceSheetDocument struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// EnvelopeDocument is one envelope in the document.
type EnvelopeDocument struct {
	ID           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	Percentage   decimal.Decimal       `json:"percentage"`
	Balance      decimal.Decimal       `json:"balance"`
	Transactions []TransactionDocument `json:"transactions"`
}

// TransactionDocument is one derived transaction in the document.
// SourceEntryID is optional: documents exported before entry linking carry
// none, and their transactions are skipped by retarget/reverse.
type TransactionDocument struct {
	ID            uuid.UUID       `json:"id"`
	SourceEntryID *uuid.UUID      `json:"source_entry_id,omitempty"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Kind          string          `json:"kind"`
	Description   string          `json:"description"`
}

// PoolDocument is the general pool in the document.
type PoolDocument struct {
	Balance      decimal.Decimal       `json:"balance"`
	Transactions []TransactionDocument `json:"transactions"`
}

// ProfileDocumentFromEntity maps the aggregate to its document form.
func ProfileDocumentFromEntity(p *entity.Profile) *ProfileDocument {
	doc := &ProfileDocument{
		ID:           p.ID,
		Name:         p.Name,
		CurrencyCode: p.CurrencyCode,
		Target:       p.Target,
		Months:       make([]MonthDocument, len(p.Months)),
		BalanceSheet: make([]BalanceSheetDocument, len(p.BalanceSheet)),
		Envelopes:    make([]EnvelopeDocument, len(p.Envelopes)),
		GeneralPool: PoolDocument{
			Balance:      p.Pool.Balance,
			Transactions: transactionDocs(p.Pool.Transactions),
		},
		PlanState: string(p.PlanState),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	for i, m := range p.Months {
		md := MonthDocument{
			Label:         m.Label,
			TotalIncome:   m.TotalIncome,
			TotalExpenses: m.TotalExpenses,
			Categories:    make([]CategoryDocument, len(m.Categories)),
		}
		for j, c := range m.Categories {
			cd := CategoryDocument{
				Name:          c.Name,
				TotalIncome:   c.TotalIncome,
				TotalExpenses: c.TotalExpenses,
				Entries:       make([]EntryDocument, len(c.Entries)),
			}
			for k, e := range c.Entries {
				cd.Entries[k] = EntryDocument{
					ID:          e.ID,
					Date:        e.Date,
					Description: e.Description,
					Amount:      e.Amount,
					Kind:        string(e.Kind),
					CreatedAt:   e.CreatedAt,
					UpdatedAt:   e.UpdatedAt,
				}
			}
			md.Categories[j] = cd
		}
		doc.Months[i] = md
	}

	for i, b := range p.BalanceSheet {
		doc.BalanceSheet[i] = BalanceSheetDocument{
			ID:          b.ID,
			Date:        b.Date,
			Description: b.Description,
			Kind:        string(b.Kind),
			Amount:      b.Amount,
			CreatedAt:   b.CreatedAt,
			UpdatedAt:   b.UpdatedAt,
		}
	}

	for i, env := range p.Envelopes {
		doc.Envelopes[i] = EnvelopeDocument{
			ID:           env.ID,
			Name:         env.Name,
			Percentage:   env.Percentage,
			Balance:      env.Balance,
			Transactions: transactionDocs(env.Transactions),
		}
	}

	return doc
}

// ToEntity maps the document back to the aggregate.
func (doc *ProfileDocument) ToEntity() *entity.Profile {
	p := &entity.Profile{
		ID:           doc.ID,
		Name:         doc.Name,
		CurrencyCode: doc.CurrencyCode,
		Target:       doc.Target,
		Months:       make([]*entity.Month, len(doc.Months)),
		BalanceSheet: make([]*entity.BalanceSheetEntry, len(doc.BalanceSheet)),
		Envelopes:    make([]*entity.Envelope, len(doc.Envelopes)),
		Pool: entity.GeneralPool{
			Balance:      doc.GeneralPool.Balance,
			Transactions: transactionEntities(doc.GeneralPool.Transactions),
		},
		PlanState: entity.PlanState(doc.PlanState),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}

	for i, md := range doc.Months {
		m := &entity.Month{
			Label:         md.Label,
			TotalIncome:   md.TotalIncome,
			TotalExpenses: md.TotalExpenses,
			Categories:    make([]*entity.Category, len(md.Categories)),
		}
		for j, cd := range md.Categories {
			c := &entity.Category{
				Name:          cd.Name,
				TotalIncome:   cd.TotalIncome,
				TotalExpenses: cd.TotalExpenses,
				Entries:       make([]*entity.Entry, len(cd.Entries)),
			}
			for k, ed := range cd.Entries {
				c.Entries[k] = &entity.Entry{
					ID:          ed.ID,
					Date:        ed.Date,
					Description: ed.Description,
					Amount:      ed.Amount,
					Kind:        entity.EntryKind(ed.Kind),
					CreatedAt:   ed.CreatedAt,
					UpdatedAt:   ed.UpdatedAt,
				}
			}
			m.Categories[j] = c
		}
		p.Months[i] = m
	}

	for i, bd := range doc.BalanceSheet {
		p.BalanceSheet[i] = &entity.BalanceSheetEntry{
			ID:          bd.ID,
			Date:        bd.Date,
			Description: bd.Description,
			Kind:        entity.BalanceSheetKind(bd.Kind),
			Amount:      bd.Amount,
			CreatedAt:   bd.CreatedAt,
			UpdatedAt:   bd.UpdatedAt,
		}
	}

	for i, ed := range doc.Envelopes {
		p.Envelopes[i] = &entity.Envelope{
			ID:           ed.ID,
			Name:         ed.Name,
			Percentage:   ed.Percentage,
			Balance:      ed.Balance,
			Transactions: transactionEntities(ed.Transactions),
		}
	}

	return p
}

func transactionDocs(txs []*entity.Transaction) []TransactionDocument {
	docs := make([]TransactionDocument, len(txs))
	for i, tx := range txs {
		docs[i] = TransactionDocument{
			ID:            tx.ID,
			SourceEntryID: tx.SourceEntryID,
			Date:          tx.Date,
			Amount:        tx.Amount,
			Kind:          string(tx.Kind),
			Description:   tx.Description,
		}
	}
	return docs
}

func transactionEntities(docs []TransactionDocument) []*entity.Transaction {
	txs := make([]*entity.Transaction, len(docs))
	for i, d := range docs {
		txs[i] = &entity.Transaction{
			ID:            d.ID,
			SourceEntryID: d.SourceEntryID,
			Date:          d.Date,
			Amount:        d.Amount,
			Kind:          entity.EntryKind(d.Kind),
			Description:   d.Description,
		}
	}
	return txs
}

// Codec implements adapter.ProfileCodec over the canonical JSON document.
type Codec struct{}

// NewCodec creates a new Codec instance.
func NewCodec() *Codec {
	return &Codec{}
}

// Encode serializes the aggregate. Struct-driven marshalling keeps the output
// deterministic: encoding the same aggregate twice is byte-identical.
func (c *Codec) Encode(p *entity.Profile) ([]byte, error) {
	payload, err := json.MarshalIndent(ProfileDocumentFromEntity(p), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile document: %w", err)
	}
	return payload, nil
}

// Decode parses a document and validates its invariants before handing the
// aggregate back.
func (c *Codec) Decode(payload []byte) (*entity.Profile, error) {
	var doc ProfileDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeCorruptDocument,
			"document is not valid JSON",
			err,
		)
	}

	if err := validateDocument(&doc); err != nil {
		return nil, err
	}

	return doc.ToEntity(), nil
}

// validateDocument enforces the totals invariants of the ledger hierarchy so
// a hand-edited or truncated file cannot poison the in-memory state.
func validateDocument(doc *ProfileDocument) error {
	corrupt := func(format string, args ...any) error {
		return domainerror.NewProfileError(
			domainerror.ErrCodeCorruptDocument,
			fmt.Sprintf(format, args...),
			domainerror.ErrCorruptDocument,
		)
	}

	switch entity.PlanState(doc.PlanState) {
	case entity.PlanStateDraft, entity.PlanStateCommitted:
	default:
		return corrupt("unknown plan state %q", doc.PlanState)
	}

	for _, md := range doc.Months {
		monthIncome := decimal.Zero
		monthExpenses := decimal.Zero
		for _, cd := range md.Categories {
			catIncome := decimal.Zero
			catExpenses := decimal.Zero
			for _, ed := range cd.Entries {
				if ed.Amount.LessThanOrEqual(decimal.Zero) {
					return corrupt("entry %s has non-positive amount", ed.ID)
				}
				switch entity.EntryKind(ed.Kind) {
				case entity.EntryKindIncome:
					catIncome = catIncome.Add(ed.Amount)
				case entity.EntryKindExpense:
					catExpenses = catExpenses.Add(ed.Amount)
				default:
					return corrupt("entry %s has unknown kind %q", ed.ID, ed.Kind)
				}
			}
			if !cd.TotalIncome.Equal(catIncome) || !cd.TotalExpenses.Equal(catExpenses) {
				return corrupt("category %q in month %s has inconsistent totals", cd.Name, md.Label)
			}
			monthIncome = monthIncome.Add(catIncome)
			monthExpenses = monthExpenses.Add(catExpenses)
		}
		if !md.TotalIncome.Equal(monthIncome) || !md.TotalExpenses.Equal(monthExpenses) {
			return corrupt("month %s has inconsistent totals", md.Label)
		}
	}

	for _, bd := range doc.BalanceSheet {
		if bd.Amount.LessThanOrEqual(decimal.Zero) {
			return corrupt("balance sheet entry %s has non-positive amount", bd.ID)
		}
	}

	sum := decimal.Zero
	for _, ed := range doc.Envelopes {
		if ed.Percentage.LessThanOrEqual(decimal.Zero) {
			return corrupt("envelope %q has non-positive percentage", ed.Name)
		}
		sum = sum.Add(ed.Percentage)
	}
	if sum.GreaterThan(decimal.NewFromInt(100)) {
		return corrupt("envelope percentages sum to %s, above 100", sum.String())
	}

	return nil
}
