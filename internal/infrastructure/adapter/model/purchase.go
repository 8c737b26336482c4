package model

import "time"

// Purchase is the gorm model for the purchases join table. Rows are written
// only by the unlock procedure; the client reads them for ownership checks.
type Purchase struct {
	UserID    string `gorm:"column:user_id;primaryKey;type:uuid"`
	PromptID  string `gorm:"column:prompt_id;primaryKey;type:uuid"`
	CreatedAt time.Time
}

// TableName specifies the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}
