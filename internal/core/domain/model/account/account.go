package account

import (
	"fmt"
	"strings"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/errs"
	"loadmatrix/internal/pkg/guard"
)

var ErrAccountIsNotConstructed = fmt.Errorf("account is not constructed")

// Role tags the account with the side of the marketplace it belongs to.
type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleDriver
	RoleAdmin
)

var roleNames = map[Role]string{
	RoleCustomer: "customer",
	RoleDriver:   "driver",
	RoleAdmin:    "admin",
}

// RoleFromString parses the wire representation of a role.
func RoleFromString(name string) (Role, error) {
	for role, roleName := range roleNames {
		if roleName == name {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidError(fmt.Sprintf("role %q", name))
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Validate reports whether the role is known.
func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

// Account is the identity record shared by customers, drivers and admins.
// It carries the authorization flags the order engine consults: an inactive
// or blacklisted account can neither place orders nor be matched to them.
type Account struct {
	id           kernel.UUID
	email        string
	phone        string
	fullName     string
	passwordHash string
	role         Role

	isActive      bool
	isBlacklisted bool

	guard guard.ConstructorGuard
}

// NewAccount creates an active, non-blacklisted account.
func NewAccount(id kernel.UUID, email string, phone string, fullName string, passwordHash string, role Role) (*Account, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(email) == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if strings.TrimSpace(fullName) == "" {
		return nil, errs.NewValueIsRequiredError("fullName")
	}
	if strings.TrimSpace(passwordHash) == "" {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}

	return &Account{
		id:           id,
		email:        email,
		phone:        phone,
		fullName:     fullName,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreAccount rebuilds an account from persistence.
func RestoreAccount(id kernel.UUID, email string, phone string, fullName string, passwordHash string,
	role Role, isActive bool, isBlacklisted bool) *Account {
	return &Account{
		id:            id,
		email:         email,
		phone:         phone,
		fullName:      fullName,
		passwordHash:  passwordHash,
		role:          role,
		isActive:      isActive,
		isBlacklisted: isBlacklisted,

		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks that the Account was created through a constructor.
func (a *Account) Validate() error {
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

func (a *Account) ID() kernel.UUID      { return a.id }
func (a *Account) Email() string        { return a.email }
func (a *Account) Phone() string        { return a.phone }
func (a *Account) FullName() string     { return a.fullName }
func (a *Account) PasswordHash() string { return a.passwordHash }
func (a *Account) Role() Role           { return a.role }
func (a *Account) IsActive() bool       { return a.isActive }
func (a *Account) IsBlacklisted() bool  { return a.isBlacklisted }

// Blacklist bars the account from participating in the marketplace.
func (a *Account) Blacklist() {
	a.isBlacklisted = true
}

// Unblacklist restores a blacklisted account.
func (a *Account) Unblacklist() {
	a.isBlacklisted = false
}

// Deactivate disables the account without blacklisting it.
func (a *Account) Deactivate() {
	a.isActive = false
}

// Activate re-enables a deactivated account.
func (a *Account) Activate() {
	a.isActive = true
}

// ChangePassword replaces the stored password hash. Hashing happens in the
// auth layer; the aggregate only refuses an empty hash.
func (a *Account) ChangePassword(passwordHash string) error {
	if strings.TrimSpace(passwordHash) == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	a.passwordHash = passwordHash
	return nil
}
