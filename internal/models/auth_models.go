package models

import "time"

// User represents an authenticated account. Company membership and role live
// on the Profile, not here; a user without a profile cannot touch inventory.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // '-' means don't send in JSON response
	FullName     *string   `json:"full_name,omitempty" db:"full_name"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
	Profile      *Profile  `json:"profile,omitempty"` // For joining with Profile
}

// Company is the tenant: every inventory row is partitioned by CompanyID.
type Company struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Profile links a user to a company with a role.
type Profile struct {
	UserID    int64     `json:"user_id" db:"user_id"`
	CompanyID int64     `json:"company_id" db:"company_id"`
	Role      string    `json:"role" db:"role"` // RoleAdmin or RoleStaff
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UserEmail *string   `json:"user_email,omitempty"` // joined from users for the users tab
}

// Role values stored on profiles.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// IsValidRole reports whether s is a known profile role.
func IsValidRole(s string) bool {
	return s == RoleAdmin || s == RoleStaff
}

// Actor is the caller identity ledger operations run as, extracted from JWT
// claims by the auth middleware.
type Actor struct {
	UserID    int64
	Email     string
	CompanyID int64
	Role      string
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
