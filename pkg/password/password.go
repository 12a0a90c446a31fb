package password

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MaxLength — максимальная длина пароля в байтах, которую учитывает bcrypt.
const MaxLength = 72

// ErrTooLong возвращается для паролей длиннее MaxLength байт.
var ErrTooLong = errors.New("password exceeds 72 bytes")

// Hash хеширует пароль с использованием bcrypt.
func Hash(password string) (string, error) {
	if len(password) > MaxLength {
		return "", ErrTooLong
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Compare сравнивает хэш пароля и «сырой» пароль.
func Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

var (
	dummyOnce sync.Once
	dummyHash []byte
)

// CompareDummy выполняет ту же работу bcrypt, что и Compare, но с фиктивным хешем
// и всегда возвращает bcrypt.ErrMismatchedHashAndPassword. Вызывается, когда
// пользователя нет, чтобы время ответа не выдавало существующие имена.
func CompareDummy(password string) error {
	dummyOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
	return bcrypt.ErrMismatchedHashAndPassword
}
