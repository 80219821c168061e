package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// AccountKind discriminates which collection an AccountRef points into.
type AccountKind string

const (
	AccountKindBankAccount AccountKind = "bank_account"
	AccountKindCreditCard  AccountKind = "credit_card"
)

// IsValid reports whether k is a known account kind.
func (k AccountKind) IsValid() bool {
	return k == AccountKindBankAccount || k == AccountKindCreditCard
}

// AccountRef is a tagged reference to either a bank account or a credit card.
type AccountRef struct {
	Kind AccountKind
	ID   uuid.UUID
}

// BankAccountRef builds a reference to a bank account.
func BankAccountRef(id uuid.UUID) AccountRef {
	return AccountRef{Kind: AccountKindBankAccount, ID: id}
}

// CreditCardRef builds a reference to a credit card.
func CreditCardRef(id uuid.UUID) AccountRef {
	return AccountRef{Kind: AccountKindCreditCard, ID: id}
}

// IsZero reports whether the reference is unset.
func (r AccountRef) IsZero() bool {
	return r.Kind == "" && r.ID == uuid.Nil
}

// IsCreditCard reports whether the reference points to a credit card.
func (r AccountRef) IsCreditCard() bool {
	return r.Kind == AccountKindCreditCard
}

// String renders the reference as "kind:id".
func (r AccountRef) String() string {
	return fmt.Sprintf("%s:%s", r.Kind, r.ID)
}

// ResolvedAccount is the result of resolving an AccountRef. Exactly one of
// BankAccount or CreditCard is set.
type ResolvedAccount struct {
	Ref         AccountRef
	BankAccount *BankAccount
	CreditCard  *CreditCard
}

// Name returns the display name of the resolved account.
func (a ResolvedAccount) Name() string {
	if a.BankAccount != nil {
		return a.BankAccount.Name
	}
	if a.CreditCard != nil {
		return a.CreditCard.Name
	}
	return ""
}
