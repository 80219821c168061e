package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TransactionTypeFilter selects which transaction types a view shows.
type TransactionTypeFilter string

const (
	TransactionTypeFilterAll     TransactionTypeFilter = "all"
	TransactionTypeFilterIncome  TransactionTypeFilter = "income"
	TransactionTypeFilterExpense TransactionTypeFilter = "expense"
)

// IsValid reports whether f is a known type filter.
func (f TransactionTypeFilter) IsValid() bool {
	switch f {
	case TransactionTypeFilterAll, TransactionTypeFilterIncome, TransactionTypeFilterExpense:
		return true
	}
	return false
}

// Matches reports whether a transaction of type t passes the filter.
func (f TransactionTypeFilter) Matches(t TransactionType) bool {
	if f == TransactionTypeFilterAll || f == "" {
		return true
	}
	return string(f) == string(t)
}

// DateRange is a span of calendar days, inclusive of both endpoints.
type DateRange struct {
	StartDate time.Time
	EndDate   time.Time
}

// CurrentMonthRange returns the first and last day of the month containing now,
// in now's location.
func CurrentMonthRange(now time.Time) DateRange {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)
	return DateRange{StartDate: first, EndDate: last}
}

// Contains reports whether t falls on any day between StartDate and EndDate.
func (r DateRange) Contains(t time.Time) bool {
	start := startOfDay(r.StartDate)
	endExclusive := startOfDay(r.EndDate).AddDate(0, 0, 1)
	return !t.Before(start) && t.Before(endExclusive)
}

// IsValid reports whether the range does not end before it starts.
func (r DateRange) IsValid() bool {
	return !startOfDay(r.EndDate).Before(startOfDay(r.StartDate))
}

// Previous returns the span of equal length that ends the day before r starts.
// A range of whole calendar months steps back by months, so March compares
// with February.
func (r DateRange) Previous() DateRange {
	start := startOfDay(r.StartDate)
	end := startOfDay(r.EndDate)
	if start.Day() == 1 && end.AddDate(0, 0, 1).Day() == 1 {
		months := (end.Year()-start.Year())*12 + int(end.Month()-start.Month()) + 1
		return DateRange{StartDate: start.AddDate(0, -months, 0), EndDate: start.AddDate(0, 0, -1)}
	}
	days := calendarDays(start, end)
	return DateRange{StartDate: start.AddDate(0, 0, -days), EndDate: start.AddDate(0, 0, -1)}
}

// calendarDays counts the days from start to end, both included.
func calendarDays(start, end time.Time) int {
	a := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours()/24) + 1
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// GlobalFilters is the session-wide filter selection applied to the ledger.
type GlobalFilters struct {
	SelectedMemberID *uuid.UUID
	DateRange        DateRange
	TransactionType  TransactionTypeFilter
	SearchText       string
}

// DefaultFilters returns the filters a fresh session starts with.
func DefaultFilters(now time.Time) GlobalFilters {
	return GlobalFilters{
		DateRange:       CurrentMonthRange(now),
		TransactionType: TransactionTypeFilterAll,
	}
}

// Clone returns a deep copy of the filters.
func (f GlobalFilters) Clone() GlobalFilters {
	f.SelectedMemberID = cloneUUID(f.SelectedMemberID)
	return f
}

// Matches reports whether t passes every filter. categoryName is the resolved
// name of t's category, empty when the category no longer exists.
func (f GlobalFilters) Matches(t *Transaction, categoryName string) bool {
	if f.SelectedMemberID != nil && !t.BelongsToMember(*f.SelectedMemberID) {
		return false
	}
	if !f.DateRange.Contains(t.Date) {
		return false
	}
	if !f.TransactionType.Matches(t.Type) {
		return false
	}
	return SearchMatches(f.SearchText, t.Description, categoryName)
}

// SearchMatches reports whether search is empty or occurs, ignoring case, in the
// description or the category name.
func SearchMatches(search, description, categoryName string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(description), needle) {
		return true
	}
	return categoryName != "" && strings.Contains(strings.ToLower(categoryName), needle)
}

// FiltersUpdate carries a partial change to the global filters.
type FiltersUpdate struct {
	SelectedMemberID *uuid.UUID
	ClearMember      bool
	DateRange        *DateRange
	TransactionType  *TransactionTypeFilter
	SearchText       *string
}

// Apply merges the update into f.
func (u FiltersUpdate) Apply(f *GlobalFilters) {
	if u.ClearMember {
		f.SelectedMemberID = nil
	} else if u.SelectedMemberID != nil {
		f.SelectedMemberID = cloneUUID(u.SelectedMemberID)
	}
	if u.DateRange != nil {
		f.DateRange = *u.DateRange
	}
	if u.TransactionType != nil {
		f.TransactionType = *u.TransactionType
	}
	if u.SearchText != nil {
		f.SearchText = *u.SearchText
	}
}
