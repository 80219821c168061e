// Package export encodes finance store snapshots as downloadable documents.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/domain/entity"
)

// JSONExporter writes the snapshot as a single indented JSON document.
type JSONExporter struct {
	now func() time.Time
}

var _ adapter.SnapshotExporter = (*JSONExporter)(nil)

// NewJSONExporter creates a JSON exporter stamping documents with now().
func NewJSONExporter(now func() time.Time) *JSONExporter {
	return &JSONExporter{now: now}
}

// ContentType implements adapter.SnapshotExporter.
func (e *JSONExporter) ContentType() string { return "application/json" }

// Extension implements adapter.SnapshotExporter.
func (e *JSONExporter) Extension() string { return "json" }

// Write implements adapter.SnapshotExporter.
func (e *JSONExporter) Write(w io.Writer, snapshot entity.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newDocument(e.now(), snapshot)); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

type document struct {
	ExportedAt    time.Time        `json:"exported_at"`
	Transactions  []transactionDoc `json:"transactions"`
	Goals         []goalDoc        `json:"goals"`
	CreditCards   []creditCardDoc  `json:"credit_cards"`
	BankAccounts  []bankAccountDoc `json:"bank_accounts"`
	FamilyMembers []memberDoc      `json:"family_members"`
	Categories    []categoryDoc    `json:"categories"`
}

type accountRefDoc struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

type transactionDoc struct {
	ID                 string          `json:"id"`
	Type               string          `json:"type"`
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount"`
	CategoryID         string          `json:"category_id"`
	Account            accountRefDoc   `json:"account"`
	MemberID           *string         `json:"member_id"`
	Date               time.Time       `json:"date"`
	DueDate            *time.Time      `json:"due_date,omitempty"`
	Installments       int             `json:"installments"`
	CurrentInstallment *int            `json:"current_installment,omitempty"`
	Status             string          `json:"status"`
	IsRecurring        bool            `json:"is_recurring"`
	IsPaid             bool            `json:"is_paid"`
	CreatedAt          time.Time       `json:"created_at"`
}

type goalDoc struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	MemberID      *string         `json:"member_id"`
	IconName      string          `json:"icon_name,omitempty"`
	Color         string          `json:"color,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type creditCardDoc struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	HolderID    string          `json:"holder_id"`
	Limit       decimal.Decimal `json:"limit"`
	CurrentBill decimal.Decimal `json:"current_bill"`
	ClosingDay  int             `json:"closing_day"`
	DueDay      int             `json:"due_day"`
	Theme       string          `json:"theme"`
	LastDigits  string          `json:"last_digits,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type bankAccountDoc struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	HolderID  string          `json:"holder_id"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

type memberDoc struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Role          string           `json:"role"`
	AvatarURL     string           `json:"avatar_url,omitempty"`
	Email         string           `json:"email,omitempty"`
	MonthlyIncome *decimal.Decimal `json:"monthly_income,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

type categoryDoc struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color,omitempty"`
}

func newDocument(now time.Time, s entity.Snapshot) document {
	doc := document{
		ExportedAt:    now,
		Transactions:  make([]transactionDoc, 0, len(s.Transactions)),
		Goals:         make([]goalDoc, 0, len(s.Goals)),
		CreditCards:   make([]creditCardDoc, 0, len(s.CreditCards)),
		BankAccounts:  make([]bankAccountDoc, 0, len(s.BankAccounts)),
		FamilyMembers: make([]memberDoc, 0, len(s.FamilyMembers)),
		Categories:    make([]categoryDoc, 0, len(s.Categories)),
	}
	for _, t := range s.Transactions {
		doc.Transactions = append(doc.Transactions, transactionDoc{
			ID:                 t.ID.String(),
			Type:               string(t.Type),
			Description:        t.Description,
			Amount:             t.Amount,
			CategoryID:         t.CategoryID.String(),
			Account:            accountRefDoc{Kind: string(t.Account.Kind), ID: t.Account.ID.String()},
			MemberID:           idString(t.MemberID),
			Date:               t.Date,
			DueDate:            t.DueDate,
			Installments:       t.Installments,
			CurrentInstallment: t.CurrentInstallment,
			Status:             string(t.Status),
			IsRecurring:        t.IsRecurring,
			IsPaid:             t.IsPaid,
			CreatedAt:          t.CreatedAt,
		})
	}
	for _, g := range s.Goals {
		doc.Goals = append(doc.Goals, goalDoc{
			ID:            g.ID.String(),
			Name:          g.Name,
			Description:   g.Description,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
			Deadline:      g.Deadline,
			MemberID:      idString(g.MemberID),
			IconName:      g.IconName,
			Color:         g.Color,
			CreatedAt:     g.CreatedAt,
		})
	}
	for _, c := range s.CreditCards {
		doc.CreditCards = append(doc.CreditCards, creditCardDoc{
			ID:          c.ID.String(),
			Name:        c.Name,
			HolderID:    c.HolderID.String(),
			Limit:       c.Limit,
			CurrentBill: c.CurrentBill,
			ClosingDay:  c.ClosingDay,
			DueDay:      c.DueDay,
			Theme:       string(c.Theme),
			LastDigits:  c.LastDigits,
			CreatedAt:   c.CreatedAt,
		})
	}
	for _, a := range s.BankAccounts {
		doc.BankAccounts = append(doc.BankAccounts, bankAccountDoc{
			ID:        a.ID.String(),
			Name:      a.Name,
			HolderID:  a.HolderID.String(),
			Balance:   a.Balance,
			CreatedAt: a.CreatedAt,
		})
	}
	for _, m := range s.FamilyMembers {
		doc.FamilyMembers = append(doc.FamilyMembers, memberDoc{
			ID:            m.ID.String(),
			Name:          m.Name,
			Role:          m.Role,
			AvatarURL:     m.AvatarURL,
			Email:         m.Email,
			MonthlyIncome: m.MonthlyIncome,
			CreatedAt:     m.CreatedAt,
		})
	}
	for _, c := range s.Categories {
		doc.Categories = append(doc.Categories, categoryDoc{
			ID:    c.ID.String(),
			Name:  c.Name,
			Type:  string(c.Type),
			Color: c.Color,
		})
	}
	return doc
}

func idString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
