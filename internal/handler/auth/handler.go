package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"workout-tracker/internal/handler/response"
	authuc "workout-tracker/internal/usecase/auth"
)

// Handler обрабатывает HTTP-запросы, связанные с аутентификацией.
type Handler struct {
	auth authuc.Service
}

// NewHandler создаёт новый AuthHandler.
func NewHandler(auth authuc.Service) *Handler {
	return &Handler{auth: auth}
}

// SignUp обрабатывает регистрацию пользователя.
//
//	@Summary	Регистрация пользователя
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		CredentialsRequest	true	"username и пароль"
//	@Success	201		{object}	SignUpResponse
//	@Failure	400		{object}	response.ErrorResponse
//	@Failure	409		{object}	response.ErrorResponse
//	@Router		/auth/sign-up [post]
func (h *Handler) SignUp(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	user, err := h.auth.SignUp(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}

	log.WithFields(log.Fields{"user_id": user.ID.String(), "username": user.Username}).Info("user signed up")
	c.JSON(http.StatusCreated, SignUpResponse{
		UserID:    user.ID.String(),
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
}

// SignIn обрабатывает вход пользователя по username/паролю.
//
//	@Summary	Вход пользователя
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		CredentialsRequest	true	"username и пароль"
//	@Success	200		{object}	SignInResponse
//	@Failure	401		{object}	response.ErrorResponse
//	@Failure	429		{object}	response.ErrorResponse
//	@Router		/auth/sign-in [post]
func (h *Handler) SignIn(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	user, token, err := h.auth.SignIn(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, SignInResponse{
		Token: token,
		User: UserSummary{
			UserID:   user.ID.String(),
			Username: user.Username,
		},
	})
}

// Usernames возвращает все зарегистрированные username.
//
//	@Summary	Список username
//	@Tags		auth
//	@Produce	json
//	@Success	200	{array}	string
//	@Router		/all-usernames [get]
func (h *Handler) Usernames(c *gin.Context) {
	names, err := h.auth.Usernames(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, names)
}
