package account

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loadmatrix/internal/core/domain/model/kernel"
)

func TestRoleFromString(t *testing.T) {
	for _, name := range []string{"customer", "driver", "admin"} {
		role, err := RoleFromString(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, role.String())
	}

	_, err := RoleFromString("superuser")
	assert.Error(t, err)
}

func TestNewAccount(t *testing.T) {
	t.Run("valid account starts active and not blacklisted", func(t *testing.T) {
		a, err := NewAccount(kernel.NewUUID(), "asha@example.com", "+919900112233", "Asha Rao", "$2a$10$hash", RoleCustomer)

		require.NoError(t, err)
		assert.NoError(t, a.Validate())
		assert.True(t, a.IsActive())
		assert.False(t, a.IsBlacklisted())
		assert.Equal(t, RoleCustomer, a.Role())
	})

	t.Run("required fields", func(t *testing.T) {
		_, err := NewAccount(kernel.NewUUID(), "", "+91", "Asha Rao", "hash", RoleCustomer)
		assert.Error(t, err)

		_, err = NewAccount(kernel.NewUUID(), "a@b.c", "+91", "", "hash", RoleCustomer)
		assert.Error(t, err)

		_, err = NewAccount(kernel.NewUUID(), "a@b.c", "+91", "Asha Rao", "", RoleCustomer)
		assert.Error(t, err)

		_, err = NewAccount(kernel.NewUUID(), "a@b.c", "+91", "Asha Rao", "hash", RoleUnknown)
		assert.Error(t, err)
	})
}

func TestAccount_BlacklistUnblacklist(t *testing.T) {
	a, err := NewAccount(kernel.NewUUID(), "d@example.com", "+91", "Dev Kumar", "hash", RoleDriver)
	require.NoError(t, err)

	a.Blacklist()
	assert.True(t, a.IsBlacklisted())

	a.Unblacklist()
	assert.False(t, a.IsBlacklisted())
}

func TestAccount_ChangePassword(t *testing.T) {
	a, err := NewAccount(kernel.NewUUID(), "d@example.com", "+91", "Dev Kumar", "old-hash", RoleDriver)
	require.NoError(t, err)

	require.NoError(t, a.ChangePassword("new-hash"))
	assert.Equal(t, "new-hash", a.PasswordHash())

	assert.Error(t, a.ChangePassword("  "))
	assert.Equal(t, "new-hash", a.PasswordHash())
}

func TestNewResetToken(t *testing.T) {
	t.Run("expires after the ttl", func(t *testing.T) {
		token, err := NewResetToken("tok-abc", kernel.NewUUID(), time.Hour)

		require.NoError(t, err)
		assert.NoError(t, token.Validate())
		assert.False(t, token.IsExpired(time.Now().UTC()))
		assert.True(t, token.IsExpired(time.Now().UTC().Add(2*time.Hour)))
	})

	t.Run("invalid inputs", func(t *testing.T) {
		_, err := NewResetToken("", kernel.NewUUID(), time.Hour)
		assert.Error(t, err)

		_, err = NewResetToken("tok", kernel.UUID{}, time.Hour)
		assert.Error(t, err)

		_, err = NewResetToken("tok", kernel.NewUUID(), 0)
		assert.Error(t, err)
	})
}
