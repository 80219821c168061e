package persistence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mycash/backend/internal/domain/entity"
)

func TestFinanceStore_ExampleScenario(t *testing.T) {
	s := newTestStore()
	salary := s.AddCategory(entity.Category{Name: "Salário", Type: entity.CategoryTypeIncome})
	food := s.AddCategory(entity.Category{Name: "Alimentação", Type: entity.CategoryTypeExpense, Color: "#080B12"})
	s.AddBankAccount(entity.BankAccount{Name: "Nubank Conta", Balance: dec("5000")})
	s.AddCreditCard(entity.CreditCard{Name: "Nubank", Limit: dec("15000"), CurrentBill: dec("120")})
	s.AddTransaction(income("1000", salary.ID, fixedNow))
	s.AddTransaction(expense("400", food.ID, fixedNow))

	assert.True(t, dec("4880").Equal(s.TotalBalance()))
	assert.True(t, dec("1000").Equal(s.IncomeForPeriod()))
	assert.True(t, dec("400").Equal(s.ExpensesForPeriod()))
	assert.True(t, dec("60").Equal(s.SavingsRate()))

	breakdown := s.ExpensesByCategory()
	require.Len(t, breakdown, 1)
	assert.Equal(t, food.ID, breakdown[0].CategoryID)
	assert.Equal(t, "Alimentação", breakdown[0].CategoryName)
	assert.Equal(t, "#080B12", breakdown[0].Color)
	assert.True(t, dec("400").Equal(breakdown[0].Total))
	assert.True(t, dec("40").Equal(breakdown[0].Percentage))
	assert.True(t, dec("25").Equal(s.CategoryPercentage(dec("250"))))
}

func TestFinanceStore_TotalBalanceLaw(t *testing.T) {
	s := newTestStore()
	s.AddBankAccount(entity.BankAccount{Balance: dec("1000.50")})
	s.AddBankAccount(entity.BankAccount{Balance: dec("-200")})
	s.AddCreditCard(entity.CreditCard{CurrentBill: dec("300")})
	s.AddCreditCard(entity.CreditCard{CurrentBill: dec("17000")})

	assert.True(t, dec("-16499.50").Equal(s.TotalBalance()))
}

func TestFinanceStore_ZeroIncome_YieldsZeroRates(t *testing.T) {
	s := newTestStore()
	cat := s.AddCategory(entity.Category{Name: "Lazer", Type: entity.CategoryTypeExpense})
	s.AddTransaction(expense("300", cat.ID, fixedNow))

	assert.True(t, s.IncomeForPeriod().IsZero())
	assert.True(t, s.SavingsRate().IsZero())
	assert.True(t, s.CategoryPercentage(dec("300")).IsZero())
	for _, group := range s.ExpensesByCategory() {
		assert.True(t, group.Percentage.IsZero())
	}
}

func TestFinanceStore_FilteredTransactions_MembershipLaw(t *testing.T) {
	s := newTestStore()
	maria := uuid.New()
	food := s.AddCategory(entity.Category{Name: "Alimentação", Type: entity.CategoryTypeExpense})
	salary := s.AddCategory(entity.Category{Name: "Salário", Type: entity.CategoryTypeIncome})

	mine := expense("10", food.ID, fixedNow)
	mine.MemberID = &maria
	mine.Description = "Supermercado"
	s.AddTransaction(mine)
	s.AddTransaction(expense("20", food.ID, fixedNow))
	s.AddTransaction(income("30", salary.ID, fixedNow))
	s.AddTransaction(expense("40", food.ID, fixedNow.AddDate(0, -2, 0)))

	typ := entity.TransactionTypeFilterExpense
	search := "ALIMENT"
	s.SetFilters(entity.FiltersUpdate{SelectedMemberID: &maria, TransactionType: &typ, SearchText: &search})
	filters := s.Filters()

	all := s.Transactions()
	filtered := s.FilteredTransactions()
	require.Len(t, filtered, 1)
	for _, tx := range filtered {
		assert.Contains(t, all, tx)
		assert.True(t, tx.BelongsToMember(maria))
		assert.True(t, filters.DateRange.Contains(tx.Date))
		assert.Equal(t, entity.TransactionTypeExpense, tx.Type)
	}
	for _, tx := range all {
		if !assert.ObjectsAreEqual(tx, filtered[0]) {
			name := ""
			if c, ok := s.CategoryByID(tx.CategoryID); ok {
				name = c.Name
			}
			assert.False(t, filters.Matches(&tx, name))
		}
	}
}

func TestFinanceStore_FilteredTransactions_DateRangeIsInclusive(t *testing.T) {
	s := newTestStore()
	cat := uuid.New()
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	s.AddTransaction(expense("1", cat, start))
	s.AddTransaction(expense("2", cat, time.Date(2024, time.March, 10, 23, 59, 0, 0, time.UTC)))
	s.AddTransaction(expense("4", cat, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)))
	s.AddTransaction(expense("8", cat, time.Date(2024, time.February, 29, 23, 59, 0, 0, time.UTC)))

	s.SetFilters(entity.FiltersUpdate{DateRange: &entity.DateRange{StartDate: start, EndDate: end}})

	assert.Len(t, s.FilteredTransactions(), 2)
	assert.True(t, dec("3").Equal(s.ExpensesForPeriod()))
}

func TestFinanceStore_Search_MatchesDescriptionOrCategory(t *testing.T) {
	s := newTestStore()
	health := s.AddCategory(entity.Category{Name: "Saúde", Type: entity.CategoryTypeExpense})
	other := uuid.New()

	pharmacy := expense("10", health.ID, fixedNow)
	pharmacy.Description = "Farmácia"
	gas := expense("20", other, fixedNow)
	gas.Description = "Gasolina"
	s.AddTransaction(pharmacy)
	s.AddTransaction(gas)

	search := "saú"
	s.SetFilters(entity.FiltersUpdate{SearchText: &search})
	filtered := s.FilteredTransactions()
	require.Len(t, filtered, 1)
	assert.Equal(t, "Farmácia", filtered[0].Description)

	search = "GASO"
	s.SetFilters(entity.FiltersUpdate{SearchText: &search})
	filtered = s.FilteredTransactions()
	require.Len(t, filtered, 1)
	assert.Equal(t, "Gasolina", filtered[0].Description)
}

func TestFinanceStore_ExpensesByCategory_OrderingAndTotals(t *testing.T) {
	s := newTestStore()
	a := s.AddCategory(entity.Category{Name: "A", Type: entity.CategoryTypeExpense})
	b := s.AddCategory(entity.Category{Name: "B", Type: entity.CategoryTypeExpense})
	c := s.AddCategory(entity.Category{Name: "C", Type: entity.CategoryTypeExpense})
	gone := s.AddCategory(entity.Category{Name: "Removida", Type: entity.CategoryTypeExpense})
	salary := s.AddCategory(entity.Category{Name: "Salário", Type: entity.CategoryTypeIncome})

	// Ledger order is newest-first, so the last added is seen first.
	s.AddTransaction(expense("100", a.ID, fixedNow))
	s.AddTransaction(expense("50", gone.ID, fixedNow))
	s.AddTransaction(expense("100", b.ID, fixedNow))
	s.AddTransaction(expense("300", c.ID, fixedNow))
	s.AddTransaction(income("2000", salary.ID, fixedNow))
	require.NoError(t, s.DeleteCategory(gone.ID))

	groups := s.ExpensesByCategory()
	require.Len(t, groups, 4)

	names := []string{groups[0].CategoryName, groups[1].CategoryName, groups[2].CategoryName, groups[3].CategoryName}
	assert.Equal(t, []string{"C", "B", "A", entity.BreakdownFallbackCategoryName}, names)
	assert.Equal(t, gone.ID, groups[3].CategoryID)
	assert.Equal(t, "", groups[3].Color)

	sum := groups[0].Total
	for _, g := range groups[1:] {
		sum = sum.Add(g.Total)
	}
	assert.True(t, s.ExpensesForPeriod().Equal(sum))
	assert.True(t, dec("15").Equal(groups[0].Percentage))
}

func TestFinanceStore_FlowChartSeries(t *testing.T) {
	s := newTestStore()
	cat := uuid.New()
	s.AddTransaction(income("1000", cat, fixedNow))
	s.AddTransaction(expense("200", cat, fixedNow))
	s.AddTransaction(expense("50", cat, time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC)))
	s.AddTransaction(expense("999", cat, time.Date(2023, time.August, 31, 23, 0, 0, 0, time.UTC)))

	typ := entity.TransactionTypeFilterIncome
	s.SetFilters(entity.FiltersUpdate{TransactionType: &typ})

	points := s.FlowChartSeries()
	require.Len(t, points, 7)
	assert.Equal(t, "Set", points[0].Month)
	assert.Equal(t, "Mar", points[6].Month)
	assert.True(t, dec("50").Equal(points[0].Expense))
	assert.True(t, dec("1000").Equal(points[6].Income))
	assert.True(t, dec("200").Equal(points[6].Expense))
	for _, p := range points[1:6] {
		assert.True(t, p.Income.IsZero())
		assert.True(t, p.Expense.IsZero())
	}
}

func TestFinanceStore_PendingExpenses(t *testing.T) {
	s := newTestStore()
	cat := uuid.New()
	due := func(days int) *time.Time {
		d := fixedNow.AddDate(0, 0, days)
		return &d
	}

	late := expense("1", cat, fixedNow)
	late.DueDate = due(10)
	soon := expense("2", cat, fixedNow)
	soon.DueDate = due(2)
	tieA := expense("3", cat, fixedNow)
	tieA.DueDate = due(5)
	tieB := expense("4", cat, fixedNow)
	tieB.DueDate = due(5)
	paid := expense("5", cat, fixedNow)
	paid.DueDate = due(1)
	paid.IsPaid = true
	noDue := expense("6", cat, fixedNow)
	inc := income("7", cat, fixedNow)
	inc.DueDate = due(1)

	for _, tx := range []entity.Transaction{late, soon, tieA, tieB, paid, noDue, inc} {
		s.AddTransaction(tx)
	}

	pending := s.PendingExpenses()
	require.Len(t, pending, 4)
	amounts := make([]string, len(pending))
	for i, p := range pending {
		amounts[i] = p.Amount.String()
		assert.False(t, p.IsPaid)
		assert.Equal(t, entity.TransactionTypeExpense, p.Type)
	}
	// tieB was added after tieA, so it precedes it in ledger order.
	assert.Equal(t, []string{"2", "4", "3", "1"}, amounts)
}

func TestFinanceStore_AccountLookups(t *testing.T) {
	s := newTestStore()
	account := s.AddBankAccount(entity.BankAccount{Name: "Conta"})
	card := s.AddCreditCard(entity.CreditCard{Name: "Cartão"})

	got, ok := s.AccountByID(account.ID)
	require.True(t, ok)
	assert.Equal(t, "Conta", got.Name())
	assert.NotNil(t, got.BankAccount)

	got, ok = s.AccountByID(card.ID)
	require.True(t, ok)
	assert.Equal(t, "Cartão", got.Name())
	assert.NotNil(t, got.CreditCard)

	_, ok = s.ResolveAccount(entity.BankAccountRef(card.ID))
	assert.False(t, ok)
	got, ok = s.ResolveAccount(entity.CreditCardRef(card.ID))
	require.True(t, ok)
	assert.Equal(t, card.ID, got.CreditCard.ID)

	_, ok = s.AccountByID(uuid.New())
	assert.False(t, ok)
}

func TestFinanceStore_WithLocation_DefaultsToLocalMonth(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	clock := time.Date(2024, time.April, 1, 1, 0, 0, 0, time.UTC)
	s := NewFinanceStore(WithClock(func() time.Time { return clock }), WithLocation(loc))

	f := s.Filters()
	assert.Equal(t, time.March, f.DateRange.StartDate.Month())
	assert.Equal(t, 31, f.DateRange.EndDate.Day())
	assert.Equal(t, loc, s.Location())
}

func TestFinanceStore_PeriodSummary(t *testing.T) {
	s := newTestStore()
	salary := s.AddCategory(entity.Category{Name: "Salário", Type: entity.CategoryTypeIncome})
	food := s.AddCategory(entity.Category{Name: "Alimentação", Type: entity.CategoryTypeExpense})
	s.AddFamilyMember(entity.FamilyMember{Name: "Ana"})
	s.AddBankAccount(entity.BankAccount{Name: "Conta", Balance: dec("5000")})
	s.AddCreditCard(entity.CreditCard{Name: "Cartão", CurrentBill: dec("120")})
	s.AddTransaction(income("1000", salary.ID, fixedNow))
	s.AddTransaction(expense("400", food.ID, fixedNow))
	s.AddTransaction(income("500", salary.ID, fixedNow.AddDate(0, -1, 0)))

	t.Run("matches the individual queries", func(t *testing.T) {
		summary := s.PeriodSummary()
		assert.True(t, s.TotalBalance().Equal(summary.TotalBalance))
		assert.True(t, s.IncomeForPeriod().Equal(summary.Income))
		assert.True(t, s.ExpensesForPeriod().Equal(summary.Expenses))
		assert.True(t, s.SavingsRate().Equal(summary.SavingsRate))
		assert.Equal(t, 1, summary.MemberCount)
		assert.True(t, dec("500").Equal(summary.PreviousIncome))
		assert.True(t, summary.PreviousExpenses.IsZero())
	})

	t.Run("previous span of a custom range", func(t *testing.T) {
		s.SetFilters(entity.FiltersUpdate{DateRange: &entity.DateRange{
			StartDate: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC),
		}})
		defer s.ResetFilters()
		s.AddTransaction(income("100", salary.ID, time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)))
		s.AddTransaction(income("900", salary.ID, time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)))
		s.AddTransaction(income("300", salary.ID, time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC)))

		summary := s.PeriodSummary()
		assert.True(t, dec("300").Equal(summary.Income))
		assert.True(t, dec("100").Equal(summary.PreviousIncome))
	})
}

func TestFinanceStore_FilteredSnapshot(t *testing.T) {
	s := newTestStore()
	food := s.AddCategory(entity.Category{Name: "Alimentação", Type: entity.CategoryTypeExpense})
	member := s.AddFamilyMember(entity.FamilyMember{Name: "Ana"})
	s.AddBankAccount(entity.BankAccount{Name: "Conta"})
	s.AddCreditCard(entity.CreditCard{Name: "Cartão"})
	s.AddGoal(entity.Goal{Name: "Viagem"})
	inRange := s.AddTransaction(expense("50", food.ID, fixedNow))
	s.AddTransaction(expense("70", food.ID, fixedNow.AddDate(0, -2, 0)))

	snap := s.FilteredSnapshot()
	require.Len(t, snap.Transactions, 1)
	assert.Equal(t, inRange.ID, snap.Transactions[0].ID)
	assert.Len(t, snap.Categories, 1)
	assert.Equal(t, member.ID, snap.FamilyMembers[0].ID)
	assert.Len(t, snap.BankAccounts, 1)
	assert.Len(t, snap.CreditCards, 1)
	assert.Empty(t, snap.Goals)
}
