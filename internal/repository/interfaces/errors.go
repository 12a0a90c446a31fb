package interfaces

import "errors"

// ErrNotFound возвращается, когда сущность не найдена в хранилище.
var ErrNotFound = errors.New("entity not found")

// ErrUsernameExists возвращается, когда пользователь с таким username уже существует.
var ErrUsernameExists = errors.New("username already exists")

// ErrReferenceViolation возвращается, когда запись ссылается на несуществующую
// тренировку или упражнение (нарушение внешнего ключа).
var ErrReferenceViolation = errors.New("referenced entity does not exist")
