package persistence

import (
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mycash/backend/internal/domain/entity"
	"github.com/mycash/backend/internal/domain/valueobject"
)

// flowChartMonths is the number of calendar months in the flow chart.
const flowChartMonths = 7

// FilteredTransactions returns the transactions passing the current filters, in ledger order.
func (s *FinanceStore) FilteredTransactions() []entity.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filteredLocked()
}

// TotalBalance returns the sum of bank balances minus the sum of card bills.
func (s *FinanceStore) TotalBalance() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.totalBalanceLocked()
}

func (s *FinanceStore) totalBalanceLocked() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.bankAccounts {
		total = total.Add(a.Balance)
	}
	for _, c := range s.creditCards {
		total = total.Sub(c.CurrentBill)
	}
	return total
}

// IncomeForPeriod sums the incomes passing the current filters.
func (s *FinanceStore) IncomeForPeriod() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	income, _ := periodTotals(s.filteredLocked())
	return income
}

// ExpensesForPeriod sums the expenses passing the current filters.
func (s *FinanceStore) ExpensesForPeriod() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, expenses := periodTotals(s.filteredLocked())
	return expenses
}

// ExpensesByCategory groups the filtered expenses by category, largest total first.
// Groups with equal totals keep the order in which they were first seen.
func (s *FinanceStore) ExpensesByCategory() []entity.CategoryExpense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := s.filteredLocked()
	income, _ := periodTotals(filtered)
	categories := s.categoryIndexLocked()

	var groups []entity.CategoryExpense
	position := make(map[uuid.UUID]int)
	for _, t := range filtered {
		if !t.IsExpense() {
			continue
		}
		i, ok := position[t.CategoryID]
		if !ok {
			group := entity.CategoryExpense{
				CategoryID:   t.CategoryID,
				CategoryName: entity.BreakdownFallbackCategoryName,
				Total:        decimal.Zero,
			}
			if c, found := categories[t.CategoryID]; found {
				group.CategoryName = c.Name
				group.Color = c.Color
			}
			i = len(groups)
			position[t.CategoryID] = i
			groups = append(groups, group)
		}
		groups[i].Total = groups[i].Total.Add(t.Amount)
	}

	for i := range groups {
		groups[i].Percentage = valueobject.Ratio(groups[i].Total, income)
	}
	slices.SortStableFunc(groups, func(a, b entity.CategoryExpense) int {
		return b.Total.Cmp(a.Total)
	})
	return groups
}

// CategoryPercentage returns total as a percentage of the period income, 0 without income.
func (s *FinanceStore) CategoryPercentage(total decimal.Decimal) decimal.Decimal {
	return valueobject.Ratio(total, s.IncomeForPeriod())
}

// SavingsRate returns 100 * (income - expenses) / income, 0 without income.
func (s *FinanceStore) SavingsRate() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	income, expenses := periodTotals(s.filteredLocked())
	return valueobject.Ratio(income.Sub(expenses), income)
}

// PeriodSummary computes the dashboard totals under a single read lock, together
// with the totals of the preceding period under the same filters.
func (s *FinanceStore) PeriodSummary() entity.PeriodSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	income, expenses := periodTotals(s.filteredLocked())

	previous := s.filters.Clone()
	previous.DateRange = s.filters.DateRange.Previous()
	previousIncome, previousExpenses := periodTotals(s.filterLocked(previous))

	return entity.PeriodSummary{
		TotalBalance:     s.totalBalanceLocked(),
		Income:           income,
		Expenses:         expenses,
		SavingsRate:      valueobject.Ratio(income.Sub(expenses), income),
		PreviousIncome:   previousIncome,
		PreviousExpenses: previousExpenses,
		MemberCount:      len(s.familyMembers),
		Filters:          s.filters.Clone(),
	}
}

// FilteredSnapshot returns the filtered transactions together with the
// categories, members, accounts and cards they reference, all read under one
// lock. Goals are left out.
func (s *FinanceStore) FilteredSnapshot() entity.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members := make([]entity.FamilyMember, len(s.familyMembers))
	for i, m := range s.familyMembers {
		members[i] = m.Clone()
	}
	return entity.Snapshot{
		Transactions:  s.filteredLocked(),
		CreditCards:   slices.Clone(s.creditCards),
		BankAccounts:  slices.Clone(s.bankAccounts),
		FamilyMembers: members,
		Categories:    slices.Clone(s.categories),
	}
}

// FlowChartSeries returns income and expense totals for the last seven calendar
// months, oldest first. Filters are ignored.
func (s *FinanceStore) FlowChartSeries() []entity.FlowPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	periods := valueobject.TrailingMonths(s.clock(), flowChartMonths, s.loc)
	points := make([]entity.FlowPoint, len(periods))
	for i, p := range periods {
		points[i] = entity.FlowPoint{
			Month:       p.Label,
			PeriodStart: p.PeriodStart,
			Income:      decimal.Zero,
			Expense:     decimal.Zero,
		}
	}

	for _, t := range s.transactions {
		for i, p := range periods {
			if !p.Contains(t.Date) {
				continue
			}
			if t.IsIncome() {
				points[i].Income = points[i].Income.Add(t.Amount)
			} else {
				points[i].Expense = points[i].Expense.Add(t.Amount)
			}
			break
		}
	}
	return points
}

// PendingExpenses returns unpaid expenses with a due date, earliest due date first.
func (s *FinanceStore) PendingExpenses() []entity.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var pending []entity.Transaction
	for _, t := range s.transactions {
		if t.IsPendingExpense() {
			pending = append(pending, t.Clone())
		}
	}
	slices.SortStableFunc(pending, func(a, b entity.Transaction) int {
		return a.DueDate.Compare(*b.DueDate)
	})
	return pending
}

// AccountByID looks the id up among bank accounts first, then credit cards.
func (s *FinanceStore) AccountByID(id uuid.UUID) (entity.ResolvedAccount, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if acc, ok := s.resolveLocked(entity.BankAccountRef(id)); ok {
		return acc, true
	}
	return s.resolveLocked(entity.CreditCardRef(id))
}

// ResolveAccount looks a tagged reference up in the collection it names.
func (s *FinanceStore) ResolveAccount(ref entity.AccountRef) (entity.ResolvedAccount, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.resolveLocked(ref)
}

func (s *FinanceStore) resolveLocked(ref entity.AccountRef) (entity.ResolvedAccount, bool) {
	switch ref.Kind {
	case entity.AccountKindBankAccount:
		if i := indexByID(s.bankAccounts, ref.ID, bankAccountID); i >= 0 {
			a := s.bankAccounts[i]
			return entity.ResolvedAccount{Ref: ref, BankAccount: &a}, true
		}
	case entity.AccountKindCreditCard:
		if i := indexByID(s.creditCards, ref.ID, creditCardID); i >= 0 {
			c := s.creditCards[i]
			return entity.ResolvedAccount{Ref: ref, CreditCard: &c}, true
		}
	}
	return entity.ResolvedAccount{}, false
}

func (s *FinanceStore) filteredLocked() []entity.Transaction {
	return s.filterLocked(s.filters)
}

func (s *FinanceStore) filterLocked(filters entity.GlobalFilters) []entity.Transaction {
	categories := s.categoryIndexLocked()
	out := make([]entity.Transaction, 0, len(s.transactions))
	for i := range s.transactions {
		t := &s.transactions[i]
		if filters.Matches(t, categories[t.CategoryID].Name) {
			out = append(out, t.Clone())
		}
	}
	return out
}

func periodTotals(transactions []entity.Transaction) (income, expenses decimal.Decimal) {
	income, expenses = decimal.Zero, decimal.Zero
	for _, t := range transactions {
		if t.IsIncome() {
			income = income.Add(t.Amount)
		} else if t.IsExpense() {
			expenses = expenses.Add(t.Amount)
		}
	}
	return income, expenses
}
