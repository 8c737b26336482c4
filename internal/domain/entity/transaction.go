package entity

import "time"

// TransactionKind labels a ledger entry
type TransactionKind string

const (
	KindDebit    TransactionKind = "debit"
	KindCredit   TransactionKind = "credit"
	KindBonus    TransactionKind = "bonus"
	KindAdReward TransactionKind = "ad_reward"
)

// Valid reports whether the kind is one of the ledger's allowed values
func (k TransactionKind) Valid() bool {
	switch k {
	case KindDebit, KindCredit, KindBonus, KindAdReward:
		return true
	}
	return false
}

// Transaction is an append-only ledger entry. Entries are written exclusively
// by the server-side procedures; this client reads them for history display
// and never writes one directly.
type Transaction struct {
	ID          string
	UserID      string
	PromptID    *string
	Amount      int // signed: negative for debits
	Kind        TransactionKind
	Description string
	CreatedAt   time.Time
}

// IsDebit reports whether the entry took credits from the user
func (t *Transaction) IsDebit() bool {
	return t.Amount < 0
}
