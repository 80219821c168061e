// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mycash/backend/internal/domain/entity"
)

// TransactionStore defines the transaction operations of the finance store.
type TransactionStore interface {
	// AddTransaction stores a new transaction at the head of the ledger.
	AddTransaction(draft entity.Transaction) entity.Transaction

	// UpdateTransaction applies a partial update to a transaction.
	UpdateTransaction(id uuid.UUID, patch entity.TransactionPatch) (entity.Transaction, error)

	// DeleteTransaction removes a transaction.
	DeleteTransaction(id uuid.UUID) error

	// MarkTransactionAsPaid settles a transaction. Calling it twice is harmless.
	MarkTransactionAsPaid(id uuid.UUID) (entity.Transaction, error)

	// TransactionByID retrieves a transaction by its ID.
	TransactionByID(id uuid.UUID) (entity.Transaction, bool)

	// Transactions returns every transaction in ledger order.
	Transactions() []entity.Transaction
}

// GoalStore defines the goal operations of the finance store.
type GoalStore interface {
	AddGoal(draft entity.Goal) entity.Goal
	UpdateGoal(id uuid.UUID, patch entity.GoalPatch) (entity.Goal, error)
	DeleteGoal(id uuid.UUID) error
	GoalByID(id uuid.UUID) (entity.Goal, bool)
	Goals() []entity.Goal
}

// CreditCardStore defines the credit card operations of the finance store.
type CreditCardStore interface {
	AddCreditCard(draft entity.CreditCard) entity.CreditCard
	UpdateCreditCard(id uuid.UUID, patch entity.CreditCardPatch) (entity.CreditCard, error)
	DeleteCreditCard(id uuid.UUID) error
	CreditCardByID(id uuid.UUID) (entity.CreditCard, bool)
	CreditCards() []entity.CreditCard
}

// BankAccountStore defines the bank account operations of the finance store.
type BankAccountStore interface {
	AddBankAccount(draft entity.BankAccount) entity.BankAccount
	UpdateBankAccount(id uuid.UUID, patch entity.BankAccountPatch) (entity.BankAccount, error)
	DeleteBankAccount(id uuid.UUID) error
	BankAccountByID(id uuid.UUID) (entity.BankAccount, bool)
	BankAccounts() []entity.BankAccount
}

// FamilyMemberStore defines the family member operations of the finance store.
type FamilyMemberStore interface {
	AddFamilyMember(draft entity.FamilyMember) entity.FamilyMember
	UpdateFamilyMember(id uuid.UUID, patch entity.FamilyMemberPatch) (entity.FamilyMember, error)
	DeleteFamilyMember(id uuid.UUID) error
	MemberByID(id uuid.UUID) (entity.FamilyMember, bool)
	FamilyMembers() []entity.FamilyMember
}

// CategoryStore defines the category operations of the finance store.
type CategoryStore interface {
	AddCategory(draft entity.Category) entity.Category
	UpdateCategory(id uuid.UUID, patch entity.CategoryPatch) (entity.Category, error)
	DeleteCategory(id uuid.UUID) error
	CategoryByID(id uuid.UUID) (entity.Category, bool)
	Categories() []entity.Category
}

// FilterStore holds the session-wide filter selection.
type FilterStore interface {
	Filters() entity.GlobalFilters
	SetFilters(update entity.FiltersUpdate) entity.GlobalFilters
	ResetFilters() entity.GlobalFilters
}

// FinanceQueries defines the derived, recomputed-on-read views over the store.
type FinanceQueries interface {
	// FilteredTransactions returns the transactions passing the current filters, in ledger order.
	FilteredTransactions() []entity.Transaction

	// TotalBalance returns the sum of bank balances minus the sum of card bills.
	TotalBalance() decimal.Decimal

	// IncomeForPeriod sums the filtered incomes.
	IncomeForPeriod() decimal.Decimal

	// ExpensesForPeriod sums the filtered expenses.
	ExpensesForPeriod() decimal.Decimal

	// ExpensesByCategory groups the filtered expenses by category, largest first.
	ExpensesByCategory() []entity.CategoryExpense

	// CategoryPercentage returns total as a percentage of the period income.
	CategoryPercentage(total decimal.Decimal) decimal.Decimal

	// SavingsRate returns the share of the period income that was not spent.
	SavingsRate() decimal.Decimal

	// PeriodSummary returns the dashboard totals read from one consistent state.
	PeriodSummary() entity.PeriodSummary

	// FilteredSnapshot returns the filtered transactions with the records they reference.
	FilteredSnapshot() entity.Snapshot

	// FlowChartSeries returns monthly income and expense totals over all transactions.
	FlowChartSeries() []entity.FlowPoint

	// PendingExpenses returns unpaid expenses with a due date, soonest first.
	PendingExpenses() []entity.Transaction

	// AccountByID looks the id up among bank accounts, then credit cards.
	AccountByID(id uuid.UUID) (entity.ResolvedAccount, bool)

	// ResolveAccount looks a tagged reference up in the collection it names.
	ResolveAccount(ref entity.AccountRef) (entity.ResolvedAccount, bool)

	// Now returns the store clock's current time in the store location.
	Now() time.Time
}

// DataStore defines whole-store lifecycle operations.
type DataStore interface {
	Snapshot() entity.Snapshot
	Reset(snapshot entity.Snapshot)
	Clear()
}

// FinanceStore is the complete in-memory store of the household finances.
type FinanceStore interface {
	TransactionStore
	GoalStore
	CreditCardStore
	BankAccountStore
	FamilyMemberStore
	CategoryStore
	FilterStore
	FinanceQueries
	DataStore
}
