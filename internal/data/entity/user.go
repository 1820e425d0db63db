package entity

import (
	"encoding/json"
	"time"
)

type UserRole string

const (
	RoleSuperAdmin UserRole = "super_admin"
	RoleAdmin      UserRole = "admin"
	RoleCustomer   UserRole = "customer"
	RoleArtisan    UserRole = "artisan"
	RoleMerchant   UserRole = "merchant"
)

// ValidRole reports whether s names a known role
func ValidRole(s string) bool {
	switch UserRole(s) {
	case RoleSuperAdmin, RoleAdmin, RoleCustomer, RoleArtisan, RoleMerchant:
		return true
	}
	return false
}

type UserStatus string

const (
	StatusPending    UserStatus = "pending"
	StatusActive     UserStatus = "active"
	StatusDeactivate UserStatus = "deactivate"
	StatusBaned      UserStatus = "baned"
	StatusDeleted    UserStatus = "deleted"
)

type User struct {
	Base
	Username      string          `db:"username"`
	Email         string          `db:"email"`
	PasswordHash  string          `db:"password"`
	FullName      *string         `db:"full_name"`
	DateOfBirth   *time.Time      `db:"date_of_birth"`
	Gender        *string         `db:"gender"`
	Mobile        *string         `db:"mobile"`
	Image         json.RawMessage `db:"image"`
	GoogleID      *string         `db:"google_id"`
	Role          UserRole        `db:"role"`
	RequestedRole *UserRole       `db:"requested_role"`
	Status        UserStatus      `db:"status"`
	OTP           *string         `db:"otp"`
	OTPExpiresAt  *time.Time      `db:"otp_expires_at"`
	VerifiedAt    *time.Time      `db:"verified_at"`
}

// ApplyRoleStatusRule is the pre-persistence normalization for role changes:
// an artisan account stays "pending" until an admin activates it. The account
// service calls this before every create and role mutation, instead of hiding
// the rule in a storage hook.
func (u *User) ApplyRoleStatusRule() {
	if u.Role == RoleArtisan {
		u.Status = StatusPending
	}
}

// IsVerified reports whether the e-mail has been confirmed via OTP
func (u *User) IsVerified() bool {
	return u.VerifiedAt != nil
}

// CanLogin reports whether the account status permits logging in
func (u *User) CanLogin() bool {
	return u.Status == StatusActive || u.Status == StatusPending
}

// DisplayName falls back to the username when full name is unset
func (u *User) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.Username
}
