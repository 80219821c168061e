package entity

// Snapshot is a full copy of every collection held by the finance store.
type Snapshot struct {
	Transactions  []Transaction
	Goals         []Goal
	CreditCards   []CreditCard
	BankAccounts  []BankAccount
	FamilyMembers []FamilyMember
	Categories    []Category
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Transactions:  make([]Transaction, len(s.Transactions)),
		Goals:         make([]Goal, len(s.Goals)),
		CreditCards:   append([]CreditCard(nil), s.CreditCards...),
		BankAccounts:  append([]BankAccount(nil), s.BankAccounts...),
		FamilyMembers: make([]FamilyMember, len(s.FamilyMembers)),
		Categories:    append([]Category(nil), s.Categories...),
	}
	for i, t := range s.Transactions {
		out.Transactions[i] = t.Clone()
	}
	for i, g := range s.Goals {
		out.Goals[i] = g.Clone()
	}
	for i, m := range s.FamilyMembers {
		out.FamilyMembers[i] = m.Clone()
	}
	return out
}

// Counts returns the number of records per collection, keyed by collection name.
func (s Snapshot) Counts() map[string]int {
	return map[string]int{
		"transactions":   len(s.Transactions),
		"goals":          len(s.Goals),
		"credit_cards":   len(s.CreditCards),
		"bank_accounts":  len(s.BankAccounts),
		"family_members": len(s.FamilyMembers),
		"categories":     len(s.Categories),
	}
}
