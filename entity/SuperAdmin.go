package entity

// SuperAdmin owns no restaurant; it scopes itself per-session via the
// context-switch operation.
type SuperAdmin struct {
	Base
	Email        string `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string `json:"-"`
}
