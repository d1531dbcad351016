// Package user holds the operator account aggregate. The application is
// single-tenant: operators authenticate with email and password and own
// the whole dataset.
package user

import (
	"fmt"
	"strings"
	"time"
)

// User is an operator account.
type User struct {
	userID       uint
	email        string
	name         string
	passwordHash string
	lastLoginAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates an operator account. The password hash must already be
// computed by the auth service.
func NewUser(email, name, passwordHash string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email[1:], "@") {
		return nil, fmt.Errorf("valid email is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now().UTC()
	return &User{
		email:        email,
		name:         strings.TrimSpace(name),
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds an operator account from persistence.
func ReconstructUser(userID uint, email, name, passwordHash string, lastLoginAt *time.Time, createdAt, updatedAt time.Time) (*User, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	return &User{
		userID:       userID,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		lastLoginAt:  lastLoginAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                { return u.userID }
func (u *User) Email() string           { return u.email }
func (u *User) Name() string            { return u.name }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(userID uint) error {
	if u.userID != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if userID == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.userID = userID
	return nil
}

// RecordLogin stamps a successful authentication.
func (u *User) RecordLogin(at time.Time) {
	at = at.UTC()
	u.lastLoginAt = &at
	u.updatedAt = at
}

// ChangePassword replaces the stored hash.
func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = time.Now().UTC()
	return nil
}
