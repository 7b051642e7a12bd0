package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ClampRole("admin"))
	assert.Equal(t, RoleAdmin, ClampRole("  Admin "))
	assert.Equal(t, RoleAdmin, ClampRole("ADMIN"))

	assert.Equal(t, RoleUser, ClampRole("user"))
	assert.Equal(t, RoleUser, ClampRole(""))
	assert.Equal(t, RoleUser, ClampRole("moderator"))
	assert.Equal(t, RoleUser, ClampRole("root"))
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole("user"))
	assert.True(t, IsValidRole("Admin"))
	assert.False(t, IsValidRole("owner"))
	assert.False(t, IsValidRole(""))
}
