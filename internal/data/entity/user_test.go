package entity_test

import (
	"testing"
	"time"

	"artisan-market/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestUser_ApplyRoleStatusRule(t *testing.T) {
	user := &entity.User{Role: entity.RoleArtisan, Status: entity.StatusActive}
	user.ApplyRoleStatusRule()
	assert.Equal(t, entity.StatusPending, user.Status, "artisans wait for admin activation")

	user = &entity.User{Role: entity.RoleCustomer, Status: entity.StatusActive}
	user.ApplyRoleStatusRule()
	assert.Equal(t, entity.StatusActive, user.Status)
}

func TestUser_CanLogin(t *testing.T) {
	assert.True(t, (&entity.User{Status: entity.StatusActive}).CanLogin())
	assert.True(t, (&entity.User{Status: entity.StatusPending}).CanLogin())
	assert.False(t, (&entity.User{Status: entity.StatusBaned}).CanLogin())
	assert.False(t, (&entity.User{Status: entity.StatusDeactivate}).CanLogin())
	assert.False(t, (&entity.User{Status: entity.StatusDeleted}).CanLogin())
}

func TestUser_IsVerified(t *testing.T) {
	now := time.Now()
	assert.False(t, (&entity.User{}).IsVerified())
	assert.True(t, (&entity.User{VerifiedAt: &now}).IsVerified())
}

func TestUser_DisplayName(t *testing.T) {
	full := "Maria Santos"
	empty := ""

	assert.Equal(t, "Maria Santos", (&entity.User{Username: "maria", FullName: &full}).DisplayName())
	assert.Equal(t, "maria", (&entity.User{Username: "maria"}).DisplayName())
	assert.Equal(t, "maria", (&entity.User{Username: "maria", FullName: &empty}).DisplayName())
}

func TestValidRole(t *testing.T) {
	assert.True(t, entity.ValidRole("customer"))
	assert.True(t, entity.ValidRole("super_admin"))
	assert.False(t, entity.ValidRole("root"))
	assert.False(t, entity.ValidRole(""))
}
