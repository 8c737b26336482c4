package model

import (
	"time"

	"github.com/prompter-labs/prompter/internal/domain/entity"
)

// Profile is the gorm model for the platform's profiles table, keyed by the
// identity provider's user id
type Profile struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Email     string
	Username  string
	Credits   int    `gorm:"not null;default:0"`
	Role      string `gorm:"not null;default:user"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}

// ToEntity converts the row into a domain profile
func (m *Profile) ToEntity() *entity.Profile {
	return &entity.Profile{
		ID:        m.ID,
		Email:     m.Email,
		Username:  m.Username,
		Credits:   m.Credits,
		Role:      entity.Role(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
