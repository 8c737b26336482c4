package model

import (
	"time"

	"github.com/prompter-labs/prompter/internal/domain/entity"
)

// Transaction is the gorm model for the append-only transactions ledger
type Transaction struct {
	ID          string  `gorm:"primaryKey;type:uuid"`
	UserID      string  `gorm:"column:user_id;index;not null"`
	PromptID    *string `gorm:"column:prompt_id;type:uuid"`
	Amount      int     `gorm:"not null"`
	Kind        string  `gorm:"column:type;not null"`
	Description string
	CreatedAt   time.Time
}

// TableName specifies the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// ToEntity converts the row into a domain ledger entry
func (m *Transaction) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		PromptID:    m.PromptID,
		Amount:      m.Amount,
		Kind:        entity.TransactionKind(m.Kind),
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}
