package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"workout-tracker/internal/handler/response"
	jwtsvc "workout-tracker/pkg/jwt"
)

const (
	ContextUserIDKey   = "userID"
	ContextUsernameKey = "username"
)

// Auth возвращает middleware для аутентификации по JWT access-токену.
// Ожидает заголовок Authorization: Bearer <token>.
func Auth(jwtService jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Debugf("missing Authorization header: path=%s", c.Request.URL.Path)
			response.Unauthorized(c, "Отсутствует заголовок Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, "Некорректный формат заголовка Authorization")
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			response.Unauthorized(c, "Некорректный формат заголовка Authorization")
			return
		}

		claims, err := jwtService.ParseAccessToken(tokenString)
		if err != nil {
			log.WithError(err).Debug("invalid access token")
			response.Unauthorized(c, "Недействительный access-токен")
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			log.WithError(err).Warnf("access token with malformed subject: sub=%q", claims.UserID)
			response.Unauthorized(c, "Недействительный access-токен")
			return
		}

		// Сохраняем данные пользователя в контексте Gin
		c.Set(ContextUserIDKey, userID)
		c.Set(ContextUsernameKey, claims.Username)

		c.Next()
	}
}

// UserID возвращает id аутентифицированного пользователя из контекста.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// Username возвращает username из токена запроса.
func Username(c *gin.Context) (string, bool) {
	name := c.GetString(ContextUsernameKey)
	return name, name != ""
}

// MustUserID как UserID, но при отсутствии пользователя отвечает 401.
// Второе значение false означает, что ответ уже отправлен.
func MustUserID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Пользователь не аутентифицирован", nil)
	}
	return id, ok
}
