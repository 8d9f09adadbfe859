package entity

import "time"

// Roles válidos para Profile.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Profile representa una cuenta del back-office (tabla profiles).
type Profile struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash
	FirstName    string
	SecondName   string
	Role         string // admin, customer
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si la cuenta puede entrar al panel.
func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
