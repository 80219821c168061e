// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// TransactionStatus represents the settlement status of a transaction.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
)

// IsValid reports whether s is a known transaction status.
func (s TransactionStatus) IsValid() bool {
	return s == TransactionStatusCompleted || s == TransactionStatusPending
}

// Transaction represents a financial transaction of the household.
type Transaction struct {
	ID                 uuid.UUID
	Type               TransactionType
	Description        string
	Amount             decimal.Decimal // Always positive, the sign is implied by Type
	CategoryID         uuid.UUID
	Account            AccountRef
	MemberID           *uuid.UUID // nil means the whole family
	Date               time.Time
	DueDate            *time.Time // Only meaningful for expenses
	Installments       int
	CurrentInstallment *int
	Status             TransactionStatus
	IsRecurring        bool
	IsPaid             bool
	CreatedAt          time.Time
}

// IsExpense reports whether the transaction is an expense.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// IsIncome reports whether the transaction is an income.
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsPendingExpense reports whether the transaction is an unpaid expense with a known due date.
func (t *Transaction) IsPendingExpense() bool {
	return t.IsExpense() && !t.IsPaid && t.DueDate != nil
}

// BelongsToMember reports whether the transaction is attributed to the given member.
func (t *Transaction) BelongsToMember(memberID uuid.UUID) bool {
	return t.MemberID != nil && *t.MemberID == memberID
}

// MarkAsPaid settles the transaction.
func (t *Transaction) MarkAsPaid() {
	t.IsPaid = true
	t.Status = TransactionStatusCompleted
}

// Clone returns a deep copy of the transaction.
func (t Transaction) Clone() Transaction {
	t.MemberID = cloneUUID(t.MemberID)
	t.DueDate = cloneTime(t.DueDate)
	if t.CurrentInstallment != nil {
		v := *t.CurrentInstallment
		t.CurrentInstallment = &v
	}
	return t
}

// TransactionPatch carries the fields to change on a transaction. Nil fields are left untouched.
type TransactionPatch struct {
	Type               *TransactionType
	Description        *string
	Amount             *decimal.Decimal
	CategoryID         *uuid.UUID
	Account            *AccountRef
	MemberID           *uuid.UUID
	ClearMember        bool
	Date               *time.Time
	DueDate            *time.Time
	ClearDueDate       bool
	Installments       *int
	CurrentInstallment *int
	Status             *TransactionStatus
	IsRecurring        *bool
	IsPaid             *bool
}

// Apply writes the patch onto t.
func (p TransactionPatch) Apply(t *Transaction) {
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.CategoryID != nil {
		t.CategoryID = *p.CategoryID
	}
	if p.Account != nil {
		t.Account = *p.Account
	}
	if p.ClearMember {
		t.MemberID = nil
	} else if p.MemberID != nil {
		t.MemberID = cloneUUID(p.MemberID)
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.ClearDueDate {
		t.DueDate = nil
	} else if p.DueDate != nil {
		t.DueDate = cloneTime(p.DueDate)
	}
	if p.Installments != nil {
		t.Installments = *p.Installments
	}
	if p.CurrentInstallment != nil {
		v := *p.CurrentInstallment
		t.CurrentInstallment = &v
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.IsRecurring != nil {
		t.IsRecurring = *p.IsRecurring
	}
	if p.IsPaid != nil {
		t.IsPaid = *p.IsPaid
	}
}

func cloneUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
