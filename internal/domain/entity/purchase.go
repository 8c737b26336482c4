package entity

import "time"

// Purchase records that a user has permanently unlocked a prompt. Created
// exactly once per (user, prompt) pair by the unlock procedure; never updated
// or deleted by client code. Its presence is the sole source of truth for
// "already owned".
type Purchase struct {
	UserID    string
	PromptID  string
	CreatedAt time.Time
}
