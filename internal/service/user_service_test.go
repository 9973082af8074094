package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/realty-service/internal/domain"
)

func seedUser(t *testing.T, repo *fakeUserRepo, email string) *domain.User {
	t.Helper()
	user := &domain.User{Email: email, FullName: "Test User", PasswordHash: "hash", Role: domain.RoleUser, Active: true}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestUserServiceUpdateProfileFields(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	user := seedUser(t, repo, "a@x.com")

	name := "Renamed"
	inactive := false
	updated, err := svc.Update(ctx, user.ID, UserUpdateInput{FullName: &name, Active: &inactive})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.FullName)
	require.False(t, updated.Active)
	// email stays locked
	require.Equal(t, "a@x.com", updated.Email)
}

func TestUserServiceUpdatePartial(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	user := seedUser(t, repo, "a@x.com")

	updated, err := svc.Update(ctx, user.ID, UserUpdateInput{})
	require.NoError(t, err)
	require.Equal(t, "Test User", updated.FullName)
	require.True(t, updated.Active)
}

func TestUserServiceGetAndDelete(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	user := seedUser(t, repo, "a@x.com")

	fetched, err := svc.Get(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Email, fetched.Email)

	require.NoError(t, svc.Delete(ctx, user.ID))
	_, err = svc.Get(ctx, user.ID)
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestUserServiceUnknownID(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, pgx.ErrNoRows)
	require.ErrorIs(t, svc.Delete(context.Background(), "missing"), pgx.ErrNoRows)
}
