package domain

import "time"

type UserRole string

const (
	RoleAuthor UserRole = "author"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile holds the author-facing identity, kept 1-to-1 with a user account.
type Profile struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"uniqueIndex"`
	FullName    string    `json:"full_name"`
	Institution string    `json:"institution,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
