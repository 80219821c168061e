package transaction

import (
	"context"
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

var now = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store   *persistence.FinanceStore
	food    entity.Category
	salary  entity.Category
	account entity.BankAccount
	card    entity.CreditCard
	member  entity.FamilyMember
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := persistence.NewFinanceStore(persistence.WithClock(func() time.Time { return now }))
	f := &fixture{store: store}
	f.food = store.AddCategory(entity.Category{Name: "Alimentação", Type: entity.CategoryTypeExpense, Color: "#080B12"})
	f.salary = store.AddCategory(entity.Category{Name: "Salário", Type: entity.CategoryTypeIncome})
	f.member = store.AddFamilyMember(entity.FamilyMember{Name: "Maria Albrecht", Role: "Mãe"})
	f.account = store.AddBankAccount(entity.BankAccount{Name: "Nubank Conta", HolderID: f.member.ID, Balance: decimal.NewFromInt(5000)})
	f.card = store.AddCreditCard(entity.CreditCard{Name: "Nubank", HolderID: f.member.ID, Limit: decimal.NewFromInt(15000)})
	return f
}

func (f *fixture) expenseInput(amount int64) CreateTransactionInput {
	return CreateTransactionInput{
		Type:        entity.TransactionTypeExpense,
		Description: "Supermercado",
		Amount:      decimal.NewFromInt(amount),
		CategoryID:  f.food.ID,
		Account:     f.account.Ref(),
		Date:        now,
	}
}

func codeOf(t *testing.T, err error) string {
	t.Helper()
	var coded interface{ ErrorCode() string }
	require.ErrorAs(t, err, &coded)
	return coded.ErrorCode()
}

func TestCreateTransactionUseCase_Success(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateTransactionUseCase(f.store)

	input := f.expenseInput(300)
	input.MemberID = &f.member.ID
	input.Installments = 3

	out, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)

	tx := out.Transaction
	assert.NotEqual(t, uuid.Nil, tx.ID)
	assert.Equal(t, "Alimentação", tx.CategoryName)
	assert.Equal(t, "#080B12", tx.CategoryColor)
	assert.Equal(t, "Nubank Conta", tx.AccountName)
	assert.Equal(t, "Maria Albrecht", tx.MemberName)
	assert.Equal(t, entity.TransactionStatusCompleted, tx.Status)
	assert.True(t, decimal.NewFromInt(100).Equal(tx.InstallmentValue))
	assert.Equal(t, now, tx.CreatedAt)
	assert.Len(t, f.store.Transactions(), 1)
}

func TestCreateTransactionUseCase_DefaultsToSingleInstallment(t *testing.T) {
	f := newFixture(t)

	out, err := NewCreateTransactionUseCase(f.store).Execute(context.Background(), f.expenseInput(50))
	require.NoError(t, err)

	assert.Equal(t, 1, out.Transaction.Installments)
	assert.Equal(t, entity.FamilyName, out.Transaction.MemberName)
}

func TestCreateTransactionUseCase_Validation(t *testing.T) {
	f := newFixture(t)
	missing := uuid.New()
	three := 3

	tests := []struct {
		name   string
		modify func(*CreateTransactionInput)
		code   domainerror.TransactionErrorCode
	}{
		{"invalid type", func(in *CreateTransactionInput) { in.Type = "transfer" }, domainerror.ErrCodeInvalidTransactionType},
		{"invalid status", func(in *CreateTransactionInput) { in.Status = "done" }, domainerror.ErrCodeInvalidTransactionStatus},
		{"blank description", func(in *CreateTransactionInput) { in.Description = "   " }, domainerror.ErrCodeDescriptionRequired},
		{"zero amount", func(in *CreateTransactionInput) { in.Amount = decimal.Zero }, domainerror.ErrCodeInvalidTransactionAmount},
		{"negative amount", func(in *CreateTransactionInput) { in.Amount = decimal.NewFromInt(-5) }, domainerror.ErrCodeInvalidTransactionAmount},
		{"missing date", func(in *CreateTransactionInput) { in.Date = time.Time{} }, domainerror.ErrCodeInvalidTransactionDate},
		{"negative installments", func(in *CreateTransactionInput) { in.Installments = -1 }, domainerror.ErrCodeInvalidInstallments},
		{"current installment above total", func(in *CreateTransactionInput) {
			in.Installments = 2
			in.CurrentInstallment = &three
		}, domainerror.ErrCodeInvalidCurrentInstallment},
		{"unknown category", func(in *CreateTransactionInput) { in.CategoryID = missing }, domainerror.ErrCodeTxnCategoryNotFound},
		{"category of other type", func(in *CreateTransactionInput) { in.CategoryID = f.salary.ID }, domainerror.ErrCodeTxnCategoryTypeMismatch},
		{"account under wrong kind", func(in *CreateTransactionInput) { in.Account = entity.BankAccountRef(f.card.ID) }, domainerror.ErrCodeTxnAccountNotFound},
		{"unknown member", func(in *CreateTransactionInput) { in.MemberID = &missing }, domainerror.ErrCodeTxnMemberNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := f.expenseInput(10)
			tt.modify(&input)

			_, err := NewCreateTransactionUseCase(f.store).Execute(context.Background(), input)
			require.Error(t, err)
			assert.Equal(t, string(tt.code), codeOf(t, err))
			assert.Empty(t, f.store.Transactions())
		})
	}
}

func TestCreateTransactionUseCase_DescriptionTooLong(t *testing.T) {
	f := newFixture(t)
	input := f.expenseInput(10)
	long := make([]rune, 256)
	for i := range long {
		long[i] = 'á'
	}
	input.Description = string(long)

	_, err := NewCreateTransactionUseCase(f.store).Execute(context.Background(), input)
	assert.ErrorIs(t, err, domainerror.ErrDescriptionTooLong)
}

func TestUpdateTransactionUseCase(t *testing.T) {
	f := newFixture(t)
	created, err := NewCreateTransactionUseCase(f.store).Execute(context.Background(), f.expenseInput(10))
	require.NoError(t, err)
	uc := NewUpdateTransactionUseCase(f.store)

	t.Run("applies only supplied fields", func(t *testing.T) {
		amount := decimal.NewFromInt(99)
		out, err := uc.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: created.Transaction.ID,
			Amount:        &amount,
			Account:       ptr(f.card.Ref()),
		})
		require.NoError(t, err)
		assert.True(t, amount.Equal(out.Transaction.Amount))
		assert.Equal(t, "Nubank", out.Transaction.AccountName)
		assert.Equal(t, "Supermercado", out.Transaction.Description)
	})

	t.Run("rejects a patch that breaks the transaction", func(t *testing.T) {
		income := entity.TransactionTypeIncome
		_, err := uc.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: created.Transaction.ID,
			Type:          &income,
		})
		assert.ErrorIs(t, err, domainerror.ErrCategoryTypeMismatch)

		stored, ok := f.store.TransactionByID(created.Transaction.ID)
		require.True(t, ok)
		assert.Equal(t, entity.TransactionTypeExpense, stored.Type)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), UpdateTransactionInput{TransactionID: uuid.New()})
		assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
		assert.Equal(t, string(domainerror.ErrCodeTransactionNotFound), codeOf(t, err))
	})
}

func TestUpdateTransactionUseCase_DanglingReferences(t *testing.T) {
	f := newFixture(t)
	input := f.expenseInput(80)
	input.MemberID = &f.member.ID
	created, err := NewCreateTransactionUseCase(f.store).Execute(context.Background(), input)
	require.NoError(t, err)

	require.NoError(t, f.store.DeleteCategory(f.food.ID))
	require.NoError(t, f.store.DeleteBankAccount(f.account.ID))
	require.NoError(t, f.store.DeleteFamilyMember(f.member.ID))
	uc := NewUpdateTransactionUseCase(f.store)

	t.Run("untouched references are not resolved", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: created.Transaction.ID,
			Description:   ptr("Feira"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Feira", out.Transaction.Description)
		assert.Equal(t, entity.UncategorizedName, out.Transaction.CategoryName)
		assert.Equal(t, entity.UnknownName, out.Transaction.AccountName)
		assert.Equal(t, entity.UnknownName, out.Transaction.MemberName)
	})

	t.Run("supplied references must resolve", func(t *testing.T) {
		tests := []struct {
			name  string
			input UpdateTransactionInput
			code  domainerror.TransactionErrorCode
		}{
			{"category", UpdateTransactionInput{CategoryID: &f.food.ID}, domainerror.ErrCodeTxnCategoryNotFound},
			{"account", UpdateTransactionInput{Account: ptr(f.account.Ref())}, domainerror.ErrCodeTxnAccountNotFound},
			{"member", UpdateTransactionInput{MemberID: &f.member.ID}, domainerror.ErrCodeTxnMemberNotFound},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				tt.input.TransactionID = created.Transaction.ID
				_, err := uc.Execute(context.Background(), tt.input)
				assert.Equal(t, string(tt.code), codeOf(t, err))
			})
		}
	})

	t.Run("moving to a live category checks its type", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: created.Transaction.ID,
			CategoryID:    &f.salary.ID,
		})
		assert.ErrorIs(t, err, domainerror.ErrCategoryTypeMismatch)
	})
}

func TestDeleteAndMarkPaidUseCases(t *testing.T) {
	f := newFixture(t)
	input := f.expenseInput(10)
	due := now.AddDate(0, 0, 3)
	input.DueDate = &due
	input.Status = entity.TransactionStatusPending
	created, err := NewCreateTransactionUseCase(f.store).Execute(context.Background(), input)
	require.NoError(t, err)
	id := created.Transaction.ID

	paid, err := NewMarkPaidUseCase(f.store).Execute(context.Background(), MarkPaidInput{TransactionID: id})
	require.NoError(t, err)
	assert.True(t, paid.Transaction.IsPaid)
	assert.Equal(t, entity.TransactionStatusCompleted, paid.Transaction.Status)

	_, err = NewMarkPaidUseCase(f.store).Execute(context.Background(), MarkPaidInput{TransactionID: id})
	require.NoError(t, err)

	require.NoError(t, NewDeleteTransactionUseCase(f.store).Execute(context.Background(), DeleteTransactionInput{TransactionID: id}))
	err = NewDeleteTransactionUseCase(f.store).Execute(context.Background(), DeleteTransactionInput{TransactionID: id})
	assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)

	_, err = NewMarkPaidUseCase(f.store).Execute(context.Background(), MarkPaidInput{TransactionID: id})
	assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
}

func TestListTransactionsUseCase_PaginationAndTotals(t *testing.T) {
	f := newFixture(t)
	create := NewCreateTransactionUseCase(f.store)
	for i := 1; i <= 12; i++ {
		_, err := create.Execute(context.Background(), f.expenseInput(int64(i)))
		require.NoError(t, err)
	}
	_, err := create.Execute(context.Background(), CreateTransactionInput{
		Type:        entity.TransactionTypeIncome,
		Description: "Salário",
		Amount:      decimal.NewFromInt(1000),
		CategoryID:  f.salary.ID,
		Account:     f.account.Ref(),
		Date:        now,
	})
	require.NoError(t, err)

	uc := NewListTransactionsUseCase(f.store, 0)

	first, err := uc.Execute(context.Background(), ListTransactionsInput{})
	require.NoError(t, err)
	assert.Len(t, first.Transactions, 10)
	assert.Equal(t, PaginationOutput{Page: 1, PageSize: 10, Total: 13, TotalPages: 2}, first.Pagination)
	assert.Equal(t, "Salário", first.Transactions[0].Description)
	assert.True(t, decimal.NewFromInt(1000).Equal(first.Totals.IncomeTotal))
	assert.True(t, decimal.NewFromInt(78).Equal(first.Totals.ExpenseTotal))
	assert.True(t, decimal.NewFromInt(922).Equal(first.Totals.Difference))

	second, err := uc.Execute(context.Background(), ListTransactionsInput{Page: 2})
	require.NoError(t, err)
	assert.Len(t, second.Transactions, 3)

	beyond, err := uc.Execute(context.Background(), ListTransactionsInput{Page: 9})
	require.NoError(t, err)
	assert.Empty(t, beyond.Transactions)
	assert.Equal(t, 13, beyond.Pagination.Total)
}

func TestListTransactionsUseCase_LocalFilters(t *testing.T) {
	f := newFixture(t)
	create := NewCreateTransactionUseCase(f.store)

	onCard := f.expenseInput(40)
	onCard.Account = f.card.Ref()
	onCard.Description = "Restaurante"
	onCard.MemberID = &f.member.ID
	_, err := create.Execute(context.Background(), onCard)
	require.NoError(t, err)
	_, err = create.Execute(context.Background(), f.expenseInput(60))
	require.NoError(t, err)

	uc := NewListTransactionsUseCase(f.store, 10)

	out, err := uc.Execute(context.Background(), ListTransactionsInput{Account: ptr(f.card.Ref())})
	require.NoError(t, err)
	require.Len(t, out.Transactions, 1)
	assert.Equal(t, "Restaurante", out.Transactions[0].Description)

	out, err = uc.Execute(context.Background(), ListTransactionsInput{MemberID: &f.member.ID})
	require.NoError(t, err)
	assert.Len(t, out.Transactions, 1)

	out, err = uc.Execute(context.Background(), ListTransactionsInput{Search: "aliment"})
	require.NoError(t, err)
	assert.Len(t, out.Transactions, 2)

	out, err = uc.Execute(context.Background(), ListTransactionsInput{Type: entity.TransactionTypeFilterIncome})
	require.NoError(t, err)
	assert.Empty(t, out.Transactions)
	assert.Equal(t, 1, out.Pagination.TotalPages)

	_, err = uc.Execute(context.Background(), ListTransactionsInput{Type: "transfer"})
	assert.ErrorIs(t, err, domainerror.ErrInvalidTransactionType)
}

func TestListTransactionsUseCase_DanglingReferences(t *testing.T) {
	f := newFixture(t)
	input := f.expenseInput(10)
	input.MemberID = &f.member.ID
	_, err := NewCreateTransactionUseCase(f.store).Execute(context.Background(), input)
	require.NoError(t, err)

	require.NoError(t, f.store.DeleteCategory(f.food.ID))
	require.NoError(t, f.store.DeleteBankAccount(f.account.ID))
	require.NoError(t, f.store.DeleteFamilyMember(f.member.ID))

	out, err := NewListTransactionsUseCase(f.store, 10).Execute(context.Background(), ListTransactionsInput{})
	require.NoError(t, err)
	require.Len(t, out.Transactions, 1)
	assert.Equal(t, entity.UncategorizedName, out.Transactions[0].CategoryName)
	assert.Equal(t, entity.UnknownName, out.Transactions[0].AccountName)
	assert.Equal(t, entity.UnknownName, out.Transactions[0].MemberName)
}

func TestListPendingUseCase(t *testing.T) {
	f := newFixture(t)
	create := NewCreateTransactionUseCase(f.store)
	for _, days := range []int{9, 2, 5} {
		input := f.expenseInput(int64(days))
		due := now.AddDate(0, 0, days)
		input.DueDate = &due
		_, err := create.Execute(context.Background(), input)
		require.NoError(t, err)
	}

	uc := NewListPendingUseCase(f.store)

	all, err := uc.Execute(context.Background(), ListPendingInput{})
	require.NoError(t, err)
	require.Len(t, all.Transactions, 3)
	assert.Equal(t, "2", all.Transactions[0].Amount.String())
	assert.Equal(t, "9", all.Transactions[2].Amount.String())

	limited, err := uc.Execute(context.Background(), ListPendingInput{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited.Transactions, 2)
	assert.Equal(t, 3, limited.Total)

	_, err = uc.Execute(context.Background(), ListPendingInput{Limit: -1})
	assert.ErrorIs(t, err, domainerror.ErrInvalidPagination)
}

func ptr[T any](v T) *T {
	return &v
}
