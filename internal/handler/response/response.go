package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	repo "workout-tracker/internal/repository/interfaces"
	authuc "workout-tracker/internal/usecase/auth"
	workoutuc "workout-tracker/internal/usecase/workout"
)

// ErrorBody описывает стандартный формат ошибки API.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse — обёртка {"error": {...}}.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error отправляет JSON-ответ с ошибкой в едином формате и прерывает цепочку handler'ов.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// FromError переводит ошибку usecase/repository слоя в HTTP-ответ.
// Неизвестные ошибки логируются и отдаются как 500 без подробностей.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, workoutuc.ErrInvalidInput), errors.Is(err, authuc.ErrInvalidInput):
		Error(c, http.StatusBadRequest, "invalid_input", "Некорректные данные запроса", err.Error())
	case errors.Is(err, authuc.ErrInvalidCredentials):
		Error(c, http.StatusUnauthorized, "invalid_credentials", "Неверный никнейм или пароль", nil)
	case errors.Is(err, workoutuc.ErrForbidden):
		Error(c, http.StatusForbidden, "forbidden", "Недостаточно прав для доступа к тренировке", nil)
	case errors.Is(err, repo.ErrNotFound):
		Error(c, http.StatusNotFound, "not_found", "Ресурс не найден", nil)
	case errors.Is(err, repo.ErrUsernameExists):
		Error(c, http.StatusConflict, "username_already_exists", "Указанный никнейм уже используется", nil)
	case errors.Is(err, repo.ErrReferenceViolation):
		Error(c, http.StatusConflict, "referential_integrity", "Тренировка или упражнение не существует", nil)
	default:
		log.WithError(err).WithFields(log.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error("unhandled request error")
		Error(c, http.StatusInternalServerError, "internal_error", "Внутренняя ошибка сервера", nil)
	}
}

// BadRequest отправляет 400 для тела или параметров, которые не удалось разобрать.
func BadRequest(c *gin.Context, err error) {
	Error(c, http.StatusBadRequest, "invalid_request", "Некорректное тело запроса", err.Error())
}

// Unauthorized отправляет 401 с заданным сообщением.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, "unauthorized", message, nil)
}
