// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/domain/entity"
	"github.com/mycash/backend/internal/domain/valueobject"
)

// TransactionOutput represents a single ledger row with its references resolved.
type TransactionOutput struct {
	ID                 uuid.UUID
	Type               entity.TransactionType
	Description        string
	Amount             decimal.Decimal
	CategoryID         uuid.UUID
	CategoryName       string
	CategoryColor      string
	Account            entity.AccountRef
	AccountName        string
	MemberID           *uuid.UUID
	MemberName         string
	Date               time.Time
	DueDate            *time.Time
	Installments       int
	CurrentInstallment *int
	InstallmentValue   decimal.Decimal
	Status             entity.TransactionStatus
	IsRecurring        bool
	IsPaid             bool
	CreatedAt          time.Time
}

// ledgerIndex resolves transaction references against one read of the store.
type ledgerIndex struct {
	categories map[uuid.UUID]entity.Category
	members    map[uuid.UUID]entity.FamilyMember
	accounts   map[entity.AccountRef]string
}

func newLedgerIndex(store adapter.FinanceStore) *ledgerIndex {
	return indexRecords(store.Categories(), store.FamilyMembers(), store.BankAccounts(), store.CreditCards())
}

// newSnapshotIndex indexes the reference collections of a snapshot, so the
// names match the state its transactions were read from.
func newSnapshotIndex(snap entity.Snapshot) *ledgerIndex {
	return indexRecords(snap.Categories, snap.FamilyMembers, snap.BankAccounts, snap.CreditCards)
}

func indexRecords(
	categories []entity.Category,
	members []entity.FamilyMember,
	accounts []entity.BankAccount,
	cards []entity.CreditCard,
) *ledgerIndex {
	idx := &ledgerIndex{
		categories: make(map[uuid.UUID]entity.Category, len(categories)),
		members:    make(map[uuid.UUID]entity.FamilyMember, len(members)),
		accounts:   make(map[entity.AccountRef]string, len(accounts)+len(cards)),
	}
	for _, c := range categories {
		idx.categories[c.ID] = c
	}
	for _, m := range members {
		idx.members[m.ID] = m
	}
	for _, a := range accounts {
		idx.accounts[a.Ref()] = a.Name
	}
	for _, c := range cards {
		idx.accounts[c.Ref()] = c.Name
	}
	return idx
}

func (idx *ledgerIndex) categoryName(id uuid.UUID) string {
	return idx.categories[id].Name
}

func (idx *ledgerIndex) output(t entity.Transaction) *TransactionOutput {
	out := &TransactionOutput{
		ID:                 t.ID,
		Type:               t.Type,
		Description:        t.Description,
		Amount:             t.Amount,
		CategoryID:         t.CategoryID,
		CategoryName:       entity.UncategorizedName,
		Account:            t.Account,
		AccountName:        entity.UnknownName,
		MemberID:           t.MemberID,
		MemberName:         entity.FamilyName,
		Date:               t.Date,
		DueDate:            t.DueDate,
		Installments:       t.Installments,
		CurrentInstallment: t.CurrentInstallment,
		InstallmentValue:   valueobject.InstallmentValue(t.Amount, t.Installments),
		Status:             t.Status,
		IsRecurring:        t.IsRecurring,
		IsPaid:             t.IsPaid,
		CreatedAt:          t.CreatedAt,
	}

	if c, ok := idx.categories[t.CategoryID]; ok {
		out.CategoryName = c.Name
		out.CategoryColor = c.Color
	}
	if name, ok := idx.accounts[t.Account]; ok {
		out.AccountName = name
	}
	if t.MemberID != nil {
		out.MemberName = entity.UnknownName
		if m, ok := idx.members[*t.MemberID]; ok {
			out.MemberName = m.Name
		}
	}
	return out
}

func (idx *ledgerIndex) outputs(transactions []entity.Transaction) []*TransactionOutput {
	out := make([]*TransactionOutput, len(transactions))
	for i, t := range transactions {
		out[i] = idx.output(t)
	}
	return out
}

// NewTransactionOutput resolves the references of a single transaction.
func NewTransactionOutput(store adapter.FinanceStore, t entity.Transaction) *TransactionOutput {
	return newLedgerIndex(store).output(t)
}

// NewTransactionOutputs resolves the references of several transactions at once.
func NewTransactionOutputs(store adapter.FinanceStore, transactions []entity.Transaction) []*TransactionOutput {
	return newLedgerIndex(store).outputs(transactions)
}
