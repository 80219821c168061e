// Package seed builds the demo household the finance store starts with.
package seed

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/domain/entity"
)

const (
	randomTransactions  = 30
	historyDays         = 90
	expenseShare        = 0.7
	cardShare           = 0.5
	memberShare         = 0.7
	recurringShare      = 0.2
	paidShare           = 0.8
	expenseDueAfterDays = 7
)

// namespace scopes the deterministic ids of the seed records.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://mycash.app/seed"))

var (
	expenseDescriptions = []string{
		"Supermercado", "Conta de Luz", "Conta de Água", "Internet", "Gasolina",
		"Restaurante", "Farmácia", "Academia", "Streaming", "Passeio no parque",
	}
	incomeDescriptions = []string{"Salário", "Freelance", "Dividendos", "Venda", "Reembolso"}
	pendingBills       = []string{"Conta de Luz", "Conta de Água", "Internet", "Aluguel", "Condomínio"}
)

// ID returns the stable id of a seed record label such as "cat-1" or "member-2".
func ID(label string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(label))
}

// Generator produces the demo snapshot. With the same seed and clock it
// always produces the same data.
type Generator struct {
	source *rand.ChaCha8
	rng    *rand.Rand
}

var _ adapter.SeedGenerator = (*Generator)(nil)

// NewGenerator creates a generator. A zero seed draws a random one.
func NewGenerator(seed int64) *Generator {
	var key [32]byte
	if seed == 0 {
		binary.LittleEndian.PutUint64(key[:8], rand.Uint64())
		binary.LittleEndian.PutUint64(key[8:16], rand.Uint64())
	} else {
		binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	}
	source := rand.NewChaCha8(key)
	return &Generator{source: source, rng: rand.New(source)}
}

// Generate builds the default categories, members, accounts, cards and goals
// plus a ledger of random transactions around now.
func (g *Generator) Generate(now time.Time) entity.Snapshot {
	categories := Categories()
	cards := CreditCards()
	accounts := BankAccounts()
	members := FamilyMembers()

	return entity.Snapshot{
		Transactions:  g.transactions(now, categories, accounts, cards, members),
		Goals:         Goals(),
		CreditCards:   cards,
		BankAccounts:  accounts,
		FamilyMembers: members,
		Categories:    categories,
	}
}

func (g *Generator) transactions(
	now time.Time,
	categories []entity.Category,
	accounts []entity.BankAccount,
	cards []entity.CreditCard,
	members []entity.FamilyMember,
) []entity.Transaction {
	var expenseCats, incomeCats []entity.Category
	for _, c := range categories {
		if c.Type == entity.CategoryTypeExpense {
			expenseCats = append(expenseCats, c)
		} else {
			incomeCats = append(incomeCats, c)
		}
	}

	out := make([]entity.Transaction, 0, randomTransactions+len(pendingBills))
	for i := 0; i < randomTransactions; i++ {
		date := now.AddDate(0, 0, -g.rng.IntN(historyDays))
		isExpense := g.rng.Float64() < expenseShare

		t := entity.Transaction{
			ID:           g.newID(),
			Date:         date,
			Installments: 1,
			Status:       entity.TransactionStatusCompleted,
			CreatedAt:    date,
		}
		if isExpense {
			t.Type = entity.TransactionTypeExpense
			t.CategoryID = pick(g.rng, expenseCats).ID
			t.Description = pick(g.rng, expenseDescriptions)
			t.Amount = decimal.NewFromInt(int64(g.rng.IntN(500) + 50))
			due := date.AddDate(0, 0, expenseDueAfterDays)
			t.DueDate = &due
		} else {
			t.Type = entity.TransactionTypeIncome
			t.CategoryID = pick(g.rng, incomeCats).ID
			t.Description = pick(g.rng, incomeDescriptions)
			t.Amount = decimal.NewFromInt(int64(g.rng.IntN(5000) + 1000))
		}

		if isExpense && g.rng.Float64() < cardShare {
			t.Account = entity.CreditCardRef(pick(g.rng, cards).ID)
		} else {
			t.Account = entity.BankAccountRef(pick(g.rng, accounts).ID)
		}
		if g.rng.Float64() < memberShare {
			id := pick(g.rng, members).ID
			t.MemberID = &id
		}
		t.IsRecurring = g.rng.Float64() < recurringShare
		t.IsPaid = g.rng.Float64() < paidShare

		out = append(out, t)
	}

	maintenance := ID("cat-7")
	for _, description := range pendingBills {
		due := now.AddDate(0, 0, g.rng.IntN(14)+1)
		out = append(out, entity.Transaction{
			ID:           g.newID(),
			Type:         entity.TransactionTypeExpense,
			Description:  description,
			Amount:       decimal.NewFromInt(int64(g.rng.IntN(300) + 100)),
			CategoryID:   maintenance,
			Account:      entity.CreditCardRef(pick(g.rng, cards).ID),
			Date:         now,
			DueDate:      &due,
			Installments: 1,
			Status:       entity.TransactionStatusPending,
			IsRecurring:  true,
			CreatedAt:    now,
		})
	}

	slices.SortStableFunc(out, func(a, b entity.Transaction) int {
		return b.Date.Compare(a.Date)
	})
	return out
}

func (g *Generator) newID() uuid.UUID {
	id, err := uuid.NewRandomFromReader(g.source)
	if err != nil {
		// ChaCha8 never fails to read.
		panic(fmt.Sprintf("seed: reading random id: %v", err))
	}
	return id
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}
