package auth

import "time"

// CredentialsRequest описывает тело запросов регистрации и входа.
// Длины проверяются в usecase-слое, здесь только наличие полей.
type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignUpResponse — ответ при успешной регистрации.
type SignUpResponse struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserSummary — базовая информация о пользователе в ответе входа.
type UserSummary struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// SignInResponse — ответ при успешном входе.
type SignInResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}
