package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reportshub/internal/apperr"
	"reportshub/internal/models"
)

func TestUserAdminSetRole(t *testing.T) {
	users := &fakeUserRepo{users: []models.User{{ID: "u1", Username: "alice", Role: models.RoleUser}}}
	svc := NewUserAdminService(users)
	ctx := context.Background()

	err := svc.SetRole(ctx, "u1", "SUPERUSER")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	require.NoError(t, svc.SetRole(ctx, "u1", models.RoleAdmin))
	u, err := users.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())

	err = svc.SetRole(ctx, "missing", models.RoleUser)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestUserAdminApprove(t *testing.T) {
	users := &fakeUserRepo{users: []models.User{{ID: "u1", Username: "alice"}}}
	svc := NewUserAdminService(users)
	ctx := context.Background()

	require.NoError(t, svc.Approve(ctx, "u1"))
	u, err := users.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, u.Approved)

	err = svc.Approve(ctx, "missing")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestUserAdminCannotDeleteSelf(t *testing.T) {
	admin := models.User{ID: "admin", Username: "admin", Role: models.RoleAdmin}
	users := &fakeUserRepo{users: []models.User{admin, {ID: "u1", Username: "alice"}}}
	svc := NewUserAdminService(users)
	ctx := context.Background()

	err := svc.Delete(ctx, "admin", admin)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	require.NoError(t, svc.Delete(ctx, "u1", admin))
	_, err = users.FindByID(ctx, "u1")
	assert.Error(t, err)
}
