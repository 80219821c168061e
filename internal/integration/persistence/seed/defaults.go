package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mycash/backend/internal/domain/entity"
)

var seedCreatedAt = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// Categories returns the default expense and income categories.
func Categories() []entity.Category {
	expense, income := entity.CategoryTypeExpense, entity.CategoryTypeIncome
	return []entity.Category{
		{ID: ID("cat-1"), Name: "Moradia", Type: expense, Color: "#D7FF00"},
		{ID: ID("cat-2"), Name: "Alimentação", Type: expense, Color: "#080B12"},
		{ID: ID("cat-3"), Name: "Transporte", Type: expense, Color: "#9CA3AF"},
		{ID: ID("cat-4"), Name: "Saúde", Type: expense, Color: "#2A89EF"},
		{ID: ID("cat-5"), Name: "Educação", Type: expense, Color: "#15BE78"},
		{ID: ID("cat-6"), Name: "Lazer", Type: expense, Color: "#E61E32"},
		{ID: ID("cat-7"), Name: "Manutenção", Type: expense, Color: "#C4E703"},
		{ID: ID("cat-8"), Name: "Vestuário", Type: expense, Color: "#E7E8EA"},
		{ID: ID("cat-9"), Name: "Salário", Type: income, Color: "#15BE78"},
		{ID: ID("cat-10"), Name: "Freelance", Type: income, Color: "#2A89EF"},
		{ID: ID("cat-11"), Name: "Investimentos", Type: income, Color: "#D7FF00"},
		{ID: ID("cat-12"), Name: "Outros", Type: income, Color: "#9CA3AF"},
	}
}

// FamilyMembers returns the default household.
func FamilyMembers() []entity.FamilyMember {
	return []entity.FamilyMember{
		{
			ID:            ID("member-1"),
			Name:          "Eduardo G Albrecht",
			Role:          "Pai",
			AvatarURL:     "https://api.dicebear.com/7.x/avataaars/svg?seed=Eduardo",
			Email:         "eduardogalbrecht@gmail.com",
			MonthlyIncome: amount(12000),
			CreatedAt:     seedCreatedAt,
		},
		{
			ID:            ID("member-2"),
			Name:          "Maria Albrecht",
			Role:          "Mãe",
			AvatarURL:     "https://api.dicebear.com/7.x/avataaars/svg?seed=Maria",
			Email:         "maria@gmail.com",
			MonthlyIncome: amount(8000),
			CreatedAt:     seedCreatedAt,
		},
		{
			ID:            ID("member-3"),
			Name:          "Lucas Albrecht",
			Role:          "Filho",
			AvatarURL:     "https://api.dicebear.com/7.x/avataaars/svg?seed=Lucas",
			Email:         "lucas@gmail.com",
			MonthlyIncome: amount(0),
			CreatedAt:     seedCreatedAt,
		},
	}
}

// BankAccounts returns the default bank accounts.
func BankAccounts() []entity.BankAccount {
	return []entity.BankAccount{
		{ID: ID("account-1"), Name: "Nubank Conta", HolderID: ID("member-1"), Balance: decimal.NewFromInt(5000), CreatedAt: seedCreatedAt},
		{ID: ID("account-2"), Name: "Inter Conta", HolderID: ID("member-2"), Balance: decimal.NewFromInt(3500), CreatedAt: seedCreatedAt},
	}
}

// CreditCards returns the default credit cards. The Picpay bill is above its limit on purpose.
func CreditCards() []entity.CreditCard {
	return []entity.CreditCard{
		{
			ID: ID("card-1"), Name: "Nubank", HolderID: ID("member-1"),
			Limit: decimal.NewFromInt(15000), CurrentBill: decimal.NewFromInt(120),
			ClosingDay: 10, DueDay: 17, Theme: entity.CardThemeBlack, LastDigits: "5897",
			CreatedAt: seedCreatedAt,
		},
		{
			ID: ID("card-2"), Name: "Inter", HolderID: ID("member-1"),
			Limit: decimal.NewFromInt(10000), CurrentBill: decimal.NewFromInt(2300),
			ClosingDay: 21, DueDay: 28, Theme: entity.CardThemeLime, LastDigits: "1234",
			CreatedAt: seedCreatedAt,
		},
		{
			ID: ID("card-3"), Name: "Picpay", HolderID: ID("member-2"),
			Limit: decimal.NewFromInt(8000), CurrentBill: decimal.NewFromInt(17000),
			ClosingDay: 12, DueDay: 19, Theme: entity.CardThemeWhite, LastDigits: "9876",
			CreatedAt: seedCreatedAt,
		},
	}
}

// Goals returns the default savings goals.
func Goals() []entity.Goal {
	lucas := ID("member-3")
	return []entity.Goal{
		{
			ID: ID("goal-1"), Name: "Viagem para Europa", Description: "Férias em família",
			TargetAmount: decimal.NewFromInt(30000), CurrentAmount: decimal.NewFromInt(12000),
			Deadline: date(2025, time.June, 1), IconName: "plane", Color: "#2A89EF",
			CreatedAt: seedCreatedAt,
		},
		{
			ID: ID("goal-2"), Name: "Carro Novo", Description: "Trocar o carro da família",
			TargetAmount: decimal.NewFromInt(80000), CurrentAmount: decimal.NewFromInt(25000),
			Deadline: date(2025, time.December, 1), IconName: "car", Color: "#15BE78",
			CreatedAt: seedCreatedAt,
		},
		{
			ID: ID("goal-3"), Name: "Reserva de Emergência", Description: "6 meses de despesas",
			TargetAmount: decimal.NewFromInt(50000), CurrentAmount: decimal.NewFromInt(35000),
			IconName: "shield", Color: "#D7FF00",
			CreatedAt: seedCreatedAt,
		},
		{
			ID: ID("goal-4"), Name: "Faculdade Lucas", Description: "Fundo para educação",
			TargetAmount: decimal.NewFromInt(100000), CurrentAmount: decimal.NewFromInt(15000),
			Deadline: date(2030, time.January, 1), MemberID: &lucas, IconName: "graduation", Color: "#E61E32",
			CreatedAt: seedCreatedAt,
		},
	}
}
