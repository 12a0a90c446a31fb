package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	domain "workout-tracker/internal/domain/user"
	repo "workout-tracker/internal/repository/interfaces"
	jwtsvc "workout-tracker/pkg/jwt"
	"workout-tracker/pkg/password"
)

// Service описывает usecase-слой аутентификации: регистрацию, вход и список пользователей.
type Service interface {
	// SignUp регистрирует пользователя. Возвращает repo.ErrUsernameExists, если имя занято.
	SignUp(ctx context.Context, username, password string) (*domain.User, error)

	// SignIn проверяет учётные данные и выпускает access-токен.
	// Неизвестный пользователь и неверный пароль неразличимы: оба дают ErrInvalidCredentials.
	SignIn(ctx context.Context, username, password string) (*domain.User, string, error)

	// Usernames возвращает все зарегистрированные username.
	Usernames(ctx context.Context) ([]string, error)
}

// Ошибки бизнес-логики usecase-слоя.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

const (
	minUsernameLength = 3
	maxUsernameLength = 32
	minPasswordLength = 8
)

type service struct {
	users repo.UserRepository
	jwt   jwtsvc.Service

	compare      func(hash, raw string) error
	compareDummy func(raw string) error
}

// NewService создаёт новый auth usecase-сервис.
func NewService(users repo.UserRepository, jwt jwtsvc.Service) Service {
	return &service{
		users:        users,
		jwt:          jwt,
		compare:      password.Compare,
		compareDummy: password.CompareDummy,
	}
}

func (s *service) SignUp(ctx context.Context, username, rawPassword string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if err := validateCredentials(username, rawPassword); err != nil {
		return nil, err
	}

	// Хешируем пароль на уровне usecase.
	hashed, err := password.Hash(rawPassword)
	if err != nil {
		if errors.Is(err, password.ErrTooLong) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.NewUser(username, hashed)
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) SignIn(ctx context.Context, username, rawPassword string) (*domain.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || rawPassword == "" {
		return nil, "", fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// Неизвестный пользователь платит ту же цену bcrypt, что и неверный пароль.
			_ = s.compareDummy(rawPassword)
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := s.compare(user.PasswordHash, rawPassword); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateAccessToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return user, token, nil
}

func (s *service) Usernames(ctx context.Context) ([]string, error) {
	return s.users.ListUsernames(ctx)
}

func validateCredentials(username, rawPassword string) error {
	n := utf8.RuneCountInString(username)
	if n < minUsernameLength || n > maxUsernameLength {
		return fmt.Errorf("%w: username must be %d-%d characters", ErrInvalidInput, minUsernameLength, maxUsernameLength)
	}
	if utf8.RuneCountInString(rawPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	return nil
}
