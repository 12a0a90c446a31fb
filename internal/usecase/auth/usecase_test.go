package auth_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"workout-tracker/internal/config"
	domain "workout-tracker/internal/domain/user"
	repo "workout-tracker/internal/repository/interfaces"
	authuc "workout-tracker/internal/usecase/auth"
	jwtsvc "workout-tracker/pkg/jwt"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ==== Fakes ====

type fakeUserRepo struct {
	mu         sync.Mutex
	byUsername map[string]*domain.User
	failWith   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: map[string]*domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byUsername[u.Username]; ok {
		return repo.ErrUsernameExists
	}
	r.byUsername[u.Username] = u
	return nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.byUsername[username]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) ListUsernames(context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.byUsername))
	for name := range r.byUsername {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func newJWT() jwtsvc.Service {
	return jwtsvc.NewService(&config.JWTConfig{Secret: "test-secret", Issuer: "workout-tracker", TTL: time.Hour})
}

func fakeCredentials() (string, string) {
	return gofakeit.Username() + gofakeit.DigitN(4), gofakeit.Password(true, true, true, false, false, 12)
}

// ==== Tests ====

func TestSignUpThenSignIn(t *testing.T) {
	users := newFakeUserRepo()
	jwt := newJWT()
	svc := authuc.NewService(users, jwt)
	username, pass := fakeCredentials()

	created, err := svc.SignUp(context.Background(), username, pass)
	require.NoError(t, err)
	assert.Equal(t, username, created.Username)
	assert.NotEqual(t, pass, created.PasswordHash)

	user, token, err := svc.SignIn(context.Background(), username, pass)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	claims, err := jwt.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID.String(), claims.UserID)
}

func TestSignUp_DuplicateUsername(t *testing.T) {
	svc := authuc.NewService(newFakeUserRepo(), newJWT())
	username, pass := fakeCredentials()

	_, err := svc.SignUp(context.Background(), username, pass)
	require.NoError(t, err)

	_, err = svc.SignUp(context.Background(), username, pass)
	assert.ErrorIs(t, err, repo.ErrUsernameExists)
}

func TestSignUp_Validation(t *testing.T) {
	svc := authuc.NewService(newFakeUserRepo(), newJWT())

	_, err := svc.SignUp(context.Background(), "ab", "long-enough-password")
	assert.ErrorIs(t, err, authuc.ErrInvalidInput)

	_, err = svc.SignUp(context.Background(), "alice", "short")
	assert.ErrorIs(t, err, authuc.ErrInvalidInput)

	_, err = svc.SignUp(context.Background(), "alice", strings.Repeat("p", 73))
	assert.ErrorIs(t, err, authuc.ErrInvalidInput)
}

func TestSignIn_UnknownUserAndWrongPasswordAreIndistinguishable(t *testing.T) {
	svc := authuc.NewService(newFakeUserRepo(), newJWT())
	username, pass := fakeCredentials()
	_, err := svc.SignUp(context.Background(), username, pass)
	require.NoError(t, err)

	_, _, wrongPassErr := svc.SignIn(context.Background(), username, pass+"x")
	_, _, unknownErr := svc.SignIn(context.Background(), "nobody-"+username, pass)

	assert.ErrorIs(t, wrongPassErr, authuc.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownErr, authuc.ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr.Error(), unknownErr.Error())
}

func TestSignIn_StoreErrorIsNotMasked(t *testing.T) {
	users := newFakeUserRepo()
	users.failWith = errors.New("db down")
	svc := authuc.NewService(users, newJWT())

	_, _, err := svc.SignIn(context.Background(), "alice", "password123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, authuc.ErrInvalidCredentials)
}

func TestUsernames(t *testing.T) {
	svc := authuc.NewService(newFakeUserRepo(), newJWT())
	for _, name := range []string{"charlie", "alice", "bob"} {
		_, err := svc.SignUp(context.Background(), name, "password123")
		require.NoError(t, err)
	}

	names, err := svc.Usernames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "charlie"}, names)
}
