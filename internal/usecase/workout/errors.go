package workout

import (
	"errors"
	"fmt"
)

// Ошибки бизнес-логики usecase-слоя.
var (
	// ErrInvalidInput — запрос не прошёл валидацию; возвращается до обращения к хранилищу.
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden — тренировка принадлежит другому пользователю.
	ErrForbidden = errors.New("workout belongs to another user")
)

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
