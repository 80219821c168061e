package export

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/domain/entity"
)

// Sheet names, one per collection.
const (
	SheetTransactions = "Transações"
	SheetGoals        = "Metas"
	SheetCreditCards  = "Cartões"
	SheetBankAccounts = "Contas"
	SheetMembers      = "Membros"
	SheetCategories   = "Categorias"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
	defaultSheet   = "Sheet1"
)

// XLSXExporter writes the snapshot as an Excel workbook with one sheet per collection.
type XLSXExporter struct{}

var _ adapter.SnapshotExporter = (*XLSXExporter)(nil)

// NewXLSXExporter creates a new XLSXExporter.
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// ContentType implements adapter.SnapshotExporter.
func (e *XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Extension implements adapter.SnapshotExporter.
func (e *XLSXExporter) Extension() string { return "xlsx" }

type sheet struct {
	name    string
	headers []string
	rows    [][]any
}

// Write implements adapter.SnapshotExporter.
func (e *XLSXExporter) Write(w io.Writer, snapshot entity.Snapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "080B12"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"D7FF00"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	sheets := buildSheets(snapshot)
	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, s.name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", s.name, err)
		}
		if err := writeSheet(f, s, headerStyle); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, s sheet, headerStyle int) error {
	if err := f.SetSheetRow(s.name, "A1", &s.headers); err != nil {
		return fmt.Errorf("failed to write %s header: %w", s.name, err)
	}
	last, err := excelize.CoordinatesToCellName(len(s.headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(s.name, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", s.name, err)
	}
	lastCol, _, err := excelize.SplitCellName(last)
	if err != nil {
		return err
	}
	if err := f.SetColWidth(s.name, "A", lastCol, 18); err != nil {
		return err
	}

	for i, row := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", s.name, i+1, err)
		}
	}
	return nil
}

func buildSheets(s entity.Snapshot) []sheet {
	transactions := sheet{
		name: SheetTransactions,
		headers: []string{
			"ID", "Tipo", "Descrição", "Valor", "Categoria", "Tipo de Conta", "Conta",
			"Membro", "Data", "Vencimento", "Parcelas", "Parcela Atual", "Status",
			"Recorrente", "Pago", "Criado em",
		},
	}
	for _, t := range s.Transactions {
		transactions.rows = append(transactions.rows, []any{
			t.ID.String(), string(t.Type), t.Description, money(t.Amount), t.CategoryID.String(),
			string(t.Account.Kind), t.Account.ID.String(), optionalID(t.MemberID),
			t.Date.Format(dateLayout), optionalDate(t.DueDate), t.Installments, optionalInt(t.CurrentInstallment),
			string(t.Status), t.IsRecurring, t.IsPaid, t.CreatedAt.Format(dateTimeLayout),
		})
	}

	goals := sheet{
		name: SheetGoals,
		headers: []string{
			"ID", "Nome", "Descrição", "Valor Alvo", "Valor Atual", "Prazo", "Membro",
			"Ícone", "Cor", "Criado em",
		},
	}
	for _, g := range s.Goals {
		goals.rows = append(goals.rows, []any{
			g.ID.String(), g.Name, g.Description, money(g.TargetAmount), money(g.CurrentAmount),
			optionalDate(g.Deadline), optionalID(g.MemberID), g.IconName, g.Color,
			g.CreatedAt.Format(dateTimeLayout),
		})
	}

	cards := sheet{
		name: SheetCreditCards,
		headers: []string{
			"ID", "Nome", "Titular", "Limite", "Fatura Atual", "Fechamento", "Vencimento",
			"Tema", "Final", "Criado em",
		},
	}
	for _, c := range s.CreditCards {
		cards.rows = append(cards.rows, []any{
			c.ID.String(), c.Name, c.HolderID.String(), money(c.Limit), money(c.CurrentBill),
			c.ClosingDay, c.DueDay, string(c.Theme), c.LastDigits, c.CreatedAt.Format(dateTimeLayout),
		})
	}

	accounts := sheet{
		name:    SheetBankAccounts,
		headers: []string{"ID", "Nome", "Titular", "Saldo", "Criado em"},
	}
	for _, a := range s.BankAccounts {
		accounts.rows = append(accounts.rows, []any{
			a.ID.String(), a.Name, a.HolderID.String(), money(a.Balance), a.CreatedAt.Format(dateTimeLayout),
		})
	}

	members := sheet{
		name:    SheetMembers,
		headers: []string{"ID", "Nome", "Papel", "Avatar", "Email", "Renda Mensal", "Criado em"},
	}
	for _, m := range s.FamilyMembers {
		var income any = ""
		if m.MonthlyIncome != nil {
			income = money(*m.MonthlyIncome)
		}
		members.rows = append(members.rows, []any{
			m.ID.String(), m.Name, m.Role, m.AvatarURL, m.Email, income, m.CreatedAt.Format(dateTimeLayout),
		})
	}

	categories := sheet{
		name:    SheetCategories,
		headers: []string{"ID", "Nome", "Tipo", "Cor"},
	}
	for _, c := range s.Categories {
		categories.rows = append(categories.rows, []any{c.ID.String(), c.Name, string(c.Type), c.Color})
	}

	return []sheet{transactions, goals, cards, accounts, members, categories}
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func optionalID(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func optionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func optionalInt(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}
