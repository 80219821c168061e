package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankAccount represents a checking or savings account.
type BankAccount struct {
	ID        uuid.UUID
	Name      string
	HolderID  uuid.UUID // Informational, not enforced
	Balance   decimal.Decimal
	CreatedAt time.Time
}

// Ref returns the tagged reference to this account.
func (a *BankAccount) Ref() AccountRef {
	return BankAccountRef(a.ID)
}

// BankAccountPatch carries the fields to change on a bank account.
type BankAccountPatch struct {
	Name     *string
	HolderID *uuid.UUID
	Balance  *decimal.Decimal
}

// Apply writes the patch onto a.
func (p BankAccountPatch) Apply(a *BankAccount) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.HolderID != nil {
		a.HolderID = *p.HolderID
	}
	if p.Balance != nil {
		a.Balance = *p.Balance
	}
}
