package interfaces

import (
	"context"

	domain "workout-tracker/internal/domain/user"
)

// UserRepository определяет контракт для работы с пользователями на уровне хранилища.
//
// Интерфейс оперирует доменной моделью User и не раскрывает деталей реализации (GORM, SQL и т.п.).
type UserRepository interface {
	// Create создает нового пользователя.
	// Возвращает ErrUsernameExists, если username уже используется.
	Create(ctx context.Context, user *domain.User) error

	// GetByUsername возвращает пользователя по username.
	// Возвращает (nil, ErrNotFound), если пользователь не найден.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsernames возвращает все username в алфавитном порядке.
	ListUsernames(ctx context.Context) ([]string, error)
}
