package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleValid(t *testing.T) {
	t.Parallel()

	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleUser.Valid())
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	t.Run("defaults empty role to user", func(t *testing.T) {
		t.Parallel()
		u := &User{FullName: "Jane Doe", Email: "jane@example.com"}
		require.NoError(t, u.Validate())
		assert.Equal(t, RoleUser, u.Role)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		t.Parallel()
		u := &User{FullName: "Jane Doe", Email: "jane@example.com", Role: "root"}
		assert.ErrorIs(t, u.Validate(), ErrInvalidRole)
	})
}

func TestPatchIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, UserPatch{}.IsEmpty())
	assert.True(t, DrugPatch{}.IsEmpty())

	city := "Lagos"
	assert.False(t, UserPatch{City: &city}.IsEmpty())

	price := 12.5
	assert.False(t, DrugPatch{Price: &price}.IsEmpty())
}
