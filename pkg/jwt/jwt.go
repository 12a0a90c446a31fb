package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"workout-tracker/internal/config"
	domain "workout-tracker/internal/domain/user"
)

// Claims описывает JWT-пейлоад access-токена.
type Claims struct {
	UserID   string `json:"sub"`
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// Service инкапсулирует операции по генерации и валидации JWT-токенов.
type Service interface {
	GenerateAccessToken(user *domain.User) (string, error)
	ParseAccessToken(tokenString string) (*Claims, error)
}

type service struct {
	cfg *config.JWTConfig
	now func() time.Time
}

// NewService создаёт JWT-сервис на основе конфигурации.
func NewService(cfg *config.JWTConfig) Service {
	return &service{
		cfg: cfg,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// GenerateAccessToken генерирует access-токен для пользователя.
func (s *service) GenerateAccessToken(user *domain.User) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID:   user.ID.String(),
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

// ParseAccessToken парсит и валидирует access-токен.
func (s *service) ParseAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Убеждаемся, что метод подписи ожидаемый
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	if claims.Issuer != "" && s.cfg.Issuer != "" && claims.Issuer != s.cfg.Issuer {
		return nil, jwt.ErrTokenInvalidIssuer
	}
	if claims.UserID == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}
