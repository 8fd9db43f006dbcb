// File: internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	Phone        *string   `db:"phone" json:"phone,omitempty"`
	CPF          string    `db:"cpf" json:"cpf"`
	BirthDate    time.Time `db:"birth_date" json:"birth_date"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FirstAccess  bool      `db:"first_access" json:"first_access"`
	Active       bool      `db:"active" json:"active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// NewUser builds a user with a generated id, both timestamps stamped and the
// first-access flag raised. passwordHash is the digest of the default secret.
func NewUser(name, email string, phone *string, cpf string, birthDate time.Time, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		CPF:          cpf,
		BirthDate:    birthDate,
		PasswordHash: passwordHash,
		FirstAccess:  true,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Update replaces the mutable profile fields and restamps updated_at.
func (u *User) Update(name, email string, phone *string) {
	u.Name = name
	u.Email = email
	u.Phone = phone
	u.UpdatedAt = time.Now().UTC()
}

// SetPassword stores a new digest and adjusts the first-access flag.
func (u *User) SetPassword(passwordHash string, firstAccess bool) {
	u.PasswordHash = passwordHash
	u.FirstAccess = firstAccess
	u.UpdatedAt = time.Now().UTC()
}

// Deactivate flips the soft-delete flag. Deactivating an already inactive
// user only restamps updated_at.
func (u *User) Deactivate() {
	u.Active = false
	u.UpdatedAt = time.Now().UTC()
}
