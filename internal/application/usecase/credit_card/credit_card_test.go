package creditcard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mycash/backend/internal/domain/entity"
	domainerror "github.com/mycash/backend/internal/domain/error"
	"github.com/mycash/backend/internal/integration/persistence"
)

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, opts ...persistence.Option) (*persistence.FinanceStore, entity.FamilyMember) {
	t.Helper()
	opts = append([]persistence.Option{persistence.WithClock(func() time.Time { return fixedNow })}, opts...)
	store := persistence.NewFinanceStore(opts...)
	member := store.AddFamilyMember(entity.FamilyMember{Name: "Ana", Role: "Mãe"})
	return store, member
}

func validInput(holder uuid.UUID) CreateCreditCardInput {
	return CreateCreditCardInput{
		Name:        "Nubank",
		HolderID:    holder,
		Limit:       decimal.NewFromInt(5000),
		CurrentBill: decimal.NewFromInt(1250),
		ClosingDay:  5,
		DueDay:      12,
		Theme:       entity.CardThemeLime,
		LastDigits:  "1234",
	}
}

func TestCreateCreditCardUseCase(t *testing.T) {
	store, member := newTestStore(t)
	uc := NewCreateCreditCardUseCase(store)

	out, err := uc.Execute(context.Background(), validInput(member.ID))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(3750).Equal(out.CreditCard.AvailableLimit))
	assert.Equal(t, 25, out.CreditCard.UsagePercentage)
	assert.Equal(t, "Ana", out.CreditCard.HolderName)

	tests := []struct {
		name     string
		mutate   func(in *CreateCreditCardInput)
		expected error
	}{
		{"blank name", func(in *CreateCreditCardInput) { in.Name = "" }, domainerror.ErrAccountNameRequired},
		{"unknown holder", func(in *CreateCreditCardInput) { in.HolderID = uuid.New() }, domainerror.ErrAccountHolderNotFound},
		{"zero limit", func(in *CreateCreditCardInput) { in.Limit = decimal.Zero }, domainerror.ErrInvalidCardLimit},
		{"negative bill", func(in *CreateCreditCardInput) { in.CurrentBill = decimal.NewFromInt(-1) }, domainerror.ErrInvalidCardBill},
		{"closing day 0", func(in *CreateCreditCardInput) { in.ClosingDay = 0 }, domainerror.ErrInvalidClosingDay},
		{"due day 32", func(in *CreateCreditCardInput) { in.DueDay = 32 }, domainerror.ErrInvalidDueDay},
		{"unknown theme", func(in *CreateCreditCardInput) { in.Theme = "gold" }, domainerror.ErrInvalidCardTheme},
		{"short digits", func(in *CreateCreditCardInput) { in.LastDigits = "12" }, domainerror.ErrInvalidLastDigits},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput(member.ID)
			tt.mutate(&in)
			_, err := uc.Execute(context.Background(), in)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
	assert.Len(t, store.CreditCards(), 1)
}

func TestCreateCreditCardBillOverLimit(t *testing.T) {
	store, member := newTestStore(t)
	in := validInput(member.ID)
	in.CurrentBill = decimal.NewFromInt(6000)

	out, err := NewCreateCreditCardUseCase(store).Execute(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(-1000).Equal(out.CreditCard.AvailableLimit))
	assert.Equal(t, 120, out.CreditCard.UsagePercentage)
}

func TestUpdateCreditCardUseCase(t *testing.T) {
	store, member := newTestStore(t)
	created, err := NewCreateCreditCardUseCase(store).Execute(context.Background(), validInput(member.ID))
	require.NoError(t, err)
	uc := NewUpdateCreditCardUseCase(store)

	bill := decimal.NewFromInt(2500)
	out, err := uc.Execute(context.Background(), UpdateCreditCardInput{CardID: created.CreditCard.ID, CurrentBill: &bill})
	require.NoError(t, err)
	assert.Equal(t, 50, out.CreditCard.UsagePercentage)

	day := 40
	_, err = uc.Execute(context.Background(), UpdateCreditCardInput{CardID: created.CreditCard.ID, DueDay: &day})
	assert.ErrorIs(t, err, domainerror.ErrInvalidDueDay)
	stored, _ := store.CreditCardByID(created.CreditCard.ID)
	assert.Equal(t, 12, stored.DueDay)

	_, err = uc.Execute(context.Background(), UpdateCreditCardInput{CardID: uuid.New(), CurrentBill: &bill})
	assert.ErrorIs(t, err, domainerror.ErrCreditCardNotFound)
}

func TestUpdateCreditCardWithDeletedHolder(t *testing.T) {
	store, member := newTestStore(t)
	created, err := NewCreateCreditCardUseCase(store).Execute(context.Background(), validInput(member.ID))
	require.NoError(t, err)
	require.NoError(t, store.DeleteFamilyMember(member.ID))
	uc := NewUpdateCreditCardUseCase(store)

	bill := decimal.NewFromInt(100)
	out, err := uc.Execute(context.Background(), UpdateCreditCardInput{CardID: created.CreditCard.ID, CurrentBill: &bill})
	require.NoError(t, err)
	assert.True(t, bill.Equal(out.CreditCard.CurrentBill))
	assert.Equal(t, entity.UnknownName, out.CreditCard.HolderName)

	_, err = uc.Execute(context.Background(), UpdateCreditCardInput{CardID: created.CreditCard.ID, HolderID: &member.ID})
	assert.ErrorIs(t, err, domainerror.ErrAccountHolderNotFound)
}

func TestDeleteCreditCardUseCase(t *testing.T) {
	store, member := newTestStore(t, persistence.WithReferencePolicy(persistence.ReferencePolicyRestrict))
	card := store.AddCreditCard(entity.CreditCard{Name: "Inter", HolderID: member.ID, Limit: decimal.NewFromInt(1)})
	unused := store.AddCreditCard(entity.CreditCard{Name: "XP", HolderID: member.ID, Limit: decimal.NewFromInt(1)})
	store.AddTransaction(entity.Transaction{Type: entity.TransactionTypeExpense, Account: card.Ref()})
	uc := NewDeleteCreditCardUseCase(store)

	err := uc.Execute(context.Background(), DeleteCreditCardInput{CardID: card.ID})
	var accErr *domainerror.AccountError
	require.ErrorAs(t, err, &accErr)
	assert.Equal(t, domainerror.ErrCodeAccountInUse, accErr.Code)

	require.NoError(t, uc.Execute(context.Background(), DeleteCreditCardInput{CardID: unused.ID}))
	assert.ErrorIs(t, uc.Execute(context.Background(), DeleteCreditCardInput{CardID: unused.ID}), domainerror.ErrCreditCardNotFound)
}

func TestGetCardDetailsUseCase(t *testing.T) {
	store, member := newTestStore(t)
	card := store.AddCreditCard(entity.CreditCard{
		Name: "Nubank", HolderID: member.ID, Limit: decimal.NewFromInt(1000), CurrentBill: decimal.NewFromInt(333),
		ClosingDay: 1, DueDay: 10, Theme: entity.CardThemeBlack,
	})
	other := store.AddCreditCard(entity.CreditCard{Name: "Inter", HolderID: member.ID, Limit: decimal.NewFromInt(1)})

	for i := range 12 {
		store.AddTransaction(entity.Transaction{
			Type:        entity.TransactionTypeExpense,
			Description: fmt.Sprintf("compra %d", i),
			Amount:      decimal.NewFromInt(int64(10 + i)),
			Account:     card.Ref(),
			Date:        fixedNow.AddDate(-1, 0, 0),
		})
	}
	store.AddTransaction(entity.Transaction{Type: entity.TransactionTypeIncome, Description: "estorno", Account: card.Ref()})
	store.AddTransaction(entity.Transaction{Type: entity.TransactionTypeExpense, Description: "outro", Account: other.Ref()})

	out, err := NewGetCardDetailsUseCase(store).Execute(context.Background(), GetCardDetailsInput{CardID: card.ID})
	require.NoError(t, err)
	assert.Equal(t, 33, out.CreditCard.UsagePercentage)
	require.Len(t, out.RecentExpenses, RecentExpensesLimit)
	assert.Equal(t, "compra 11", out.RecentExpenses[0].Description)
	assert.Equal(t, "compra 2", out.RecentExpenses[9].Description)

	_, err = NewGetCardDetailsUseCase(store).Execute(context.Background(), GetCardDetailsInput{CardID: uuid.New()})
	assert.ErrorIs(t, err, domainerror.ErrCreditCardNotFound)
}

func TestCardHolderFallback(t *testing.T) {
	store, member := newTestStore(t)
	card := store.AddCreditCard(entity.CreditCard{Name: "Nubank", HolderID: member.ID, Limit: decimal.NewFromInt(1)})
	require.NoError(t, store.DeleteFamilyMember(member.ID))

	list, err := NewListCreditCardsUseCase(store).Execute(context.Background(), ListCreditCardsInput{})
	require.NoError(t, err)
	require.Len(t, list.CreditCards, 1)
	assert.Equal(t, card.ID, list.CreditCards[0].ID)
	assert.Equal(t, entity.UnknownName, list.CreditCards[0].HolderName)
}
