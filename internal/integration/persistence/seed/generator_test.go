package seed

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mycash/backend/internal/domain/entity"
)

var now = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestGenerator_Defaults(t *testing.T) {
	snap := NewGenerator(42).Generate(now)

	assert.Len(t, snap.Categories, 12)
	assert.Len(t, snap.FamilyMembers, 3)
	assert.Len(t, snap.BankAccounts, 2)
	assert.Len(t, snap.CreditCards, 3)
	assert.Len(t, snap.Goals, 4)
	assert.Len(t, snap.Transactions, 35)

	assert.Equal(t, ID("cat-2"), snap.Categories[1].ID)
	assert.Equal(t, "Alimentação", snap.Categories[1].Name)
	assert.Equal(t, "Picpay", snap.CreditCards[2].Name)
	assert.True(t, snap.CreditCards[2].CurrentBill.GreaterThan(snap.CreditCards[2].Limit))
	require.NotNil(t, snap.Goals[3].MemberID)
	assert.Equal(t, ID("member-3"), *snap.Goals[3].MemberID)
	assert.Nil(t, snap.Goals[2].Deadline)
}

func TestGenerator_IsDeterministicForSeed(t *testing.T) {
	a := NewGenerator(7).Generate(now)
	b := NewGenerator(7).Generate(now)
	c := NewGenerator(8).Generate(now)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a.Transactions, c.Transactions)
}

func TestGenerator_TransactionShape(t *testing.T) {
	snap := NewGenerator(99).Generate(now)

	categories := make(map[string]entity.Category)
	for _, c := range snap.Categories {
		categories[c.ID.String()] = c
	}
	oldest := now.AddDate(0, 0, -historyDays)

	pending := 0
	for i, tx := range snap.Transactions {
		if i > 0 {
			assert.False(t, tx.Date.After(snap.Transactions[i-1].Date), "ledger must be sorted newest first")
		}
		assert.Equal(t, 1, tx.Installments)
		assert.True(t, tx.Date.After(oldest))
		assert.False(t, tx.Date.After(now))

		cat, ok := categories[tx.CategoryID.String()]
		require.True(t, ok)
		assert.Equal(t, tx.Type, cat.Type)

		if tx.Status == entity.TransactionStatusPending {
			pending++
			assert.Equal(t, ID("cat-7"), tx.CategoryID)
			assert.True(t, tx.Account.IsCreditCard())
			assert.True(t, tx.IsRecurring)
			assert.False(t, tx.IsPaid)
			require.NotNil(t, tx.DueDate)
			assert.True(t, tx.DueDate.After(now))
			assert.False(t, tx.DueDate.After(now.AddDate(0, 0, 14)))
			continue
		}

		if tx.IsExpense() {
			assert.True(t, tx.Amount.GreaterThanOrEqual(decimal.NewFromInt(50)))
			assert.True(t, tx.Amount.LessThan(decimal.NewFromInt(550)))
			require.NotNil(t, tx.DueDate)
			assert.Equal(t, tx.Date.AddDate(0, 0, 7), *tx.DueDate)
		} else {
			assert.True(t, tx.Amount.GreaterThanOrEqual(decimal.NewFromInt(1000)))
			assert.True(t, tx.Amount.LessThan(decimal.NewFromInt(6000)))
			assert.Nil(t, tx.DueDate)
			assert.False(t, tx.Account.IsCreditCard())
		}
	}
	assert.Equal(t, 5, pending)
}

func TestID_IsStable(t *testing.T) {
	assert.Equal(t, ID("cat-1"), ID("cat-1"))
	assert.NotEqual(t, ID("cat-1"), ID("cat-2"))
}
