package user

import (
	"time"

	"github.com/google/uuid"
)

// User представляет доменную модель пользователя трекера тренировок.
//
// Модель не зависит от транспорта (HTTP) и от представления в БД.
// После создания меняться может только хэш пароля.
type User struct {
	ID           uuid.UUID // Уникальный идентификатор пользователя
	Username     string    // Никнейм (уникальный логин)
	PasswordHash string    // Хэш пароля
	CreatedAt    time.Time // Время регистрации
}

// NewUser — фабрика для создания нового пользователя на доменном уровне.
// Хеширование пароля выполняется на уровне usecase‑слоя до вызова этой функции.
func NewUser(username, passwordHash string) *User {
	return &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}
