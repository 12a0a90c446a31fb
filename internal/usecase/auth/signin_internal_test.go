package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workout-tracker/internal/config"
	domain "workout-tracker/internal/domain/user"
	repo "workout-tracker/internal/repository/interfaces"
	jwtsvc "workout-tracker/pkg/jwt"
	"workout-tracker/pkg/password"
)

type singleUserRepo struct {
	user *domain.User
}

func (r *singleUserRepo) Create(context.Context, *domain.User) error { return nil }

func (r *singleUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.user != nil && r.user.Username == username {
		return r.user, nil
	}
	return nil, repo.ErrNotFound
}

func (r *singleUserRepo) ListUsernames(context.Context) ([]string, error) { return nil, nil }

type compareCounter struct {
	real, dummy int
}

func newCountingService(t *testing.T, users repo.UserRepository) (*service, *compareCounter) {
	t.Helper()
	jwt := jwtsvc.NewService(&config.JWTConfig{Secret: "test-secret", Issuer: "test", TTL: time.Hour})
	svc := NewService(users, jwt).(*service)

	cnt := &compareCounter{}
	svc.compare = func(hash, raw string) error {
		cnt.real++
		return password.Compare(hash, raw)
	}
	svc.compareDummy = func(raw string) error {
		cnt.dummy++
		return password.CompareDummy(raw)
	}
	return svc, cnt
}

func TestSignIn_UnknownUserPaysBcryptCost(t *testing.T) {
	hash, err := password.Hash("correct-password")
	require.NoError(t, err)
	svc, cnt := newCountingService(t, &singleUserRepo{user: domain.NewUser("alice", hash)})

	_, _, err = svc.SignIn(context.Background(), "mallory", "correct-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 1, cnt.dummy)
	assert.Zero(t, cnt.real)

	_, _, err = svc.SignIn(context.Background(), "alice", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 1, cnt.real)
	assert.Equal(t, 1, cnt.dummy)
}
