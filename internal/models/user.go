package models

import "time"

type User struct {
	UserID       int       `json:"user_id" db:"user_id"`
	UniqueID     string    `json:"unique_id" db:"unique_id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Role         string    `json:"role" db:"role"` // student, instructor
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// PublicUser is what auth endpoints return; it never carries the hash.
type PublicUser struct {
	UserID    int    `json:"user_id"`
	UniqueID  string `json:"unique_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
)

func (r Role) String() string {
	return string(r)
}

func IsValidRole(role string) bool {
	switch role {
	case "student", "instructor":
		return true
	default:
		return false
	}
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		UserID:    u.UserID,
		UniqueID:  u.UniqueID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
