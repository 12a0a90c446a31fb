package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "workout-tracker/internal/domain/user"
	repo "workout-tracker/internal/repository/interfaces"
)

const usernameUniqueIndex = "idx_users_username_unique"

// pgUser представляет собой ORM-модель для таблицы users.
type pgUser struct {
	ID           string    `gorm:"column:id;type:uuid;primaryKey"`
	Username     string    `gorm:"column:username;type:varchar(50);not null"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz;not null"`
}

func (pgUser) TableName() string {
	return "users"
}

// UserRepository реализует repo.UserRepository с использованием GORM и Postgres.
type UserRepository struct {
	db *gorm.DB
}

// Убедимся на этапе компиляции, что структура реализует интерфейс.
var _ repo.UserRepository = (*UserRepository)(nil)

// NewUserRepository создает новый репозиторий пользователей.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// toDomain маппит ORM-модель в доменную.
func (m *pgUser) toDomain() (*domain.User, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}

	return &domain.User{
		ID:           id,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}, nil
}

func userFromDomain(u *domain.User) *pgUser {
	return &pgUser{
		ID:           u.ID.String(),
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

// Create создает нового пользователя в БД.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.db.WithContext(ctx).Create(userFromDomain(user)).Error
	if err != nil {
		if isUniqueViolation(err, usernameUniqueIndex) {
			return repo.ErrUsernameExists
		}
		return err
	}
	return nil
}

func (r *UserRepository) oneByCondition(ctx context.Context, query string, args ...interface{}) (*domain.User, error) {
	var model pgUser
	err := r.db.WithContext(ctx).
		Where(query, args...).
		Take(&model).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return model.toDomain()
}

// GetByUsername возвращает пользователя по username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.oneByCondition(ctx, "username = ?", username)
}

// ListUsernames возвращает все username в алфавитном порядке.
func (r *UserRepository) ListUsernames(ctx context.Context) ([]string, error) {
	usernames := []string{}
	err := r.db.WithContext(ctx).
		Model(&pgUser{}).
		Order("username ASC").
		Pluck("username", &usernames).Error
	if err != nil {
		return nil, err
	}
	return usernames, nil
}
