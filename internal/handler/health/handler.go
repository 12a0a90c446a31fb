package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const dbPingTimeout = 5 * time.Second

// Pinger проверяет доступность хранилища (реализуется *database.DB).
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler обрабатывает health check запросы
type Handler struct {
	db           Pinger
	isProduction bool
}

// NewHandler создает новый экземпляр health handler
func NewHandler(db Pinger, isProduction bool) *Handler {
	return &Handler{
		db:           db,
		isProduction: isProduction,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health проверяет работоспособность сервера
//
//	@Summary	Проверка процесса
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Router		/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: "Сервер работает",
	})
}

// HealthDB проверяет подключение к базе данных
//
//	@Summary	Проверка базы данных
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Failure	503	{object}	HealthResponse
//	@Router		/health/db [get]
func (h *Handler) HealthDB(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:  "error",
			Message: "База данных не инициализирована",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbPingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		log.WithError(err).Error("database health check failed")

		errorMessage := "База данных недоступна"
		if !h.isProduction {
			// В development показываем детали ошибки
			errorMessage = "База данных недоступна: " + err.Error()
		}

		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:  "error",
			Message: errorMessage,
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: "База данных доступна",
	})
}
