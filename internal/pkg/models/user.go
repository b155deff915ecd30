package models

import (
	"database/sql"
	"time"
)

// Role is the closed set of actor roles in the system.
type Role string

const (
	RoleUser   Role = "user"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

// Capability names an action a role may perform. Authorization decisions go
// through Role.Can rather than string comparison at call sites.
type Capability string

const (
	CapCreateTransaction   Capability = "transaction:create"
	CapClaimTransaction    Capability = "transaction:claim"
	CapOverrideStatus      Capability = "transaction:override-status"
	CapViewAllTransactions Capability = "transaction:view-all"
)

var roleCapabilities = map[Role]map[Capability]bool{
	RoleUser: {
		CapCreateTransaction: true,
	},
	RoleVendor: {
		CapClaimTransaction: true,
	},
	RoleAdmin: {
		CapCreateTransaction:   true,
		CapClaimTransaction:    true,
		CapOverrideStatus:      true,
		CapViewAllTransactions: true,
	},
}

// Can reports whether the role holds the given capability.
func (r Role) Can(c Capability) bool {
	return roleCapabilities[r][c]
}

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// KYCStatus is the verification state of a user's identity documents.
type KYCStatus string

const (
	KYCPending  KYCStatus = "pending"
	KYCVerified KYCStatus = "verified"
	KYCRejected KYCStatus = "rejected"
)

// User represents an account. Users are owned by the auth subsystem; this
// service only reads them for routing, limits and notifications.
type User struct {
	ID            int64          `json:"id" db:"id"`
	FullName      string         `json:"full_name" db:"full_name"`
	Email         string         `json:"email" db:"email"`
	Phone         string         `json:"phone" db:"phone"`
	Role          Role           `json:"role" db:"role"`
	KYCStatus     KYCStatus      `json:"kyc_status" db:"kyc_status"`
	EmailVerified bool           `json:"email_verified" db:"email_verified"`
	Country       string         `json:"country" db:"country"`
	IsOnline      bool           `json:"is_online" db:"is_online"`
	IsActive      bool           `json:"is_active" db:"is_active"`
	PinHash       sql.NullString `json:"-" db:"pin_hash"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
}
