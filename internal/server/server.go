package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "workout-tracker/docs"
	"workout-tracker/internal/config"
	"workout-tracker/internal/database"
	authhandler "workout-tracker/internal/handler/auth"
	exercisehandler "workout-tracker/internal/handler/exercise"
	"workout-tracker/internal/handler/health"
	"workout-tracker/internal/handler/middleware"
	userhandler "workout-tracker/internal/handler/user"
	workouthandler "workout-tracker/internal/handler/workout"
	"workout-tracker/internal/metrics"
	pgrepo "workout-tracker/internal/repository/postgres"
	authuc "workout-tracker/internal/usecase/auth"
	exerciseuc "workout-tracker/internal/usecase/exercise"
	workoutuc "workout-tracker/internal/usecase/workout"
	jwtsvc "workout-tracker/pkg/jwt"
	"workout-tracker/pkg/logger"
)

const (
	metricsNamespace = "workout_tracker"
	metricsSubsystem = "api"
	signInLimitKey   = "sign-in"
)

// Server представляет HTTP сервер приложения
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	db         *database.DB
	cfg        *config.Config

	registry *prometheus.Registry
	metrics  *metrics.Manager
	limiter  middleware.RequestRateLimiter

	jwtService      jwtsvc.Service
	workoutService  workoutuc.Service
	authHandler     *authhandler.Handler
	exerciseHandler *exercisehandler.Handler
	userHandler     *userhandler.Handler
	workoutHandler  *workouthandler.Handler
}

// NewServer создает новый экземпляр сервера.
// limiter может быть nil: тогда вход не ограничивается по частоте.
func NewServer(cfg *config.Config, db *database.DB, reg *prometheus.Registry, limiter middleware.RequestRateLimiter) *Server {
	// Устанавливаем режим Gin в зависимости от окружения
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	s := &Server{
		router:   router,
		db:       db,
		cfg:      cfg,
		registry: reg,
		metrics:  metrics.NewManager(metricsNamespace, metricsSubsystem, reg),
		limiter:  limiter,
	}

	// Инициализируем зависимости один раз
	gormDB := db.DB
	userRepo := pgrepo.NewUserRepository(gormDB)
	workoutRepo := pgrepo.NewWorkoutRepository(gormDB)
	setRepo := pgrepo.NewSetRepository(gormDB)
	exerciseRepo := pgrepo.NewExerciseRepository(gormDB)

	s.jwtService = jwtsvc.NewService(&cfg.JWT)
	s.workoutService = workoutuc.NewService(
		workoutRepo,
		setRepo,
		s.metrics,
		logger.New(log.WithField("component", "workout")),
	)

	s.authHandler = authhandler.NewHandler(authuc.NewService(userRepo, s.jwtService))
	s.exerciseHandler = exercisehandler.NewHandler(
		exerciseuc.NewService(exerciseRepo, cfg.Cache.ExercisesSizeMB, cfg.Cache.ExercisesTTL),
	)
	s.userHandler = userhandler.NewHandler(s.workoutService)
	s.workoutHandler = workouthandler.NewHandler(s.workoutService)

	// Настраиваем middleware и роуты
	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware настраивает middleware для роутера
func (s *Server) setupMiddleware() {
	// Recovery middleware - должен быть первым для перехвата паник
	s.router.Use(middleware.Recovery(s.metrics.CounterHandleRequestPanic))
	s.router.Use(middleware.Metrics(s.metrics))
	s.router.Use(middleware.Logger())
	s.router.Use(middleware.CORS(&s.cfg.CORS))
}

// setupRoutes настраивает маршруты приложения
func (s *Server) setupRoutes() {
	s.setupOperationalRoutes()
	s.setupAuthRoutes()
	s.setupUserRoutes()
	s.setupWorkoutRoutes()
}

// setupOperationalRoutes настраивает health-check, метрики и документацию.
func (s *Server) setupOperationalRoutes() {
	healthHandler := health.NewHandler(s.db, s.cfg.IsProduction())
	// GET /health — базовый health-check сервера (жив ли процесс).
	s.router.GET("/health", healthHandler.Health)
	// GET /health/db — проверка доступности базы данных.
	s.router.GET("/health/db", healthHandler.HealthDB)
	// GET /metrics — метрики Prometheus.
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	if !s.cfg.IsProduction() {
		// GET /swagger/index.html — документация API.
		s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// setupAuthRoutes настраивает публичные эндпоинты аутентификации.
func (s *Server) setupAuthRoutes() {
	api := s.router.Group("/api")

	authGroup := api.Group("/auth")
	{
		// POST /api/auth/sign-up — регистрация по username/паролю.
		authGroup.POST("/sign-up", s.authHandler.SignUp)

		// POST /api/auth/sign-in — вход, выдаёт access-токен.
		signIn := []gin.HandlerFunc{s.authHandler.SignIn}
		if s.limiter != nil && s.cfg.RateLimit.SignInPerMinute > 0 {
			signIn = append([]gin.HandlerFunc{middleware.RateLimit(
				s.limiter,
				signInLimitKey,
				s.cfg.RateLimit.SignInPerMinute,
				s.metrics.CounterRateLimitedRequests,
			)}, signIn...)
		}
		authGroup.POST("/sign-in", signIn...)
	}

	// GET /api/all-usernames — список зарегистрированных username.
	api.GET("/all-usernames", s.authHandler.Usernames)
}

// setupUserRoutes настраивает защищённые эндпоинты по тренировкам текущего пользователя.
func (s *Server) setupUserRoutes() {
	api := s.router.Group("/api")
	api.Use(middleware.Auth(s.jwtService))

	// GET /api/all-exercises — справочник упражнений.
	api.GET("/all-exercises", s.exerciseHandler.List)

	userGroup := api.Group("/user")
	{
		// GET /api/user/all-workouts — завершённые тренировки.
		userGroup.GET("/all-workouts", s.userHandler.AllWorkouts)
		// DELETE /api/user/empty-workouts — удалить незавершённые тренировки.
		userGroup.DELETE("/empty-workouts", s.userHandler.PurgeEmptyWorkouts)
		// GET /api/user/workout-sets — лучшие подходы.
		userGroup.GET("/workout-sets", s.userHandler.BestSets)
	}
}

// setupWorkoutRoutes настраивает эндпоинты изменения тренировок.
func (s *Server) setupWorkoutRoutes() {
	api := s.router.Group("/api")
	api.Use(middleware.Auth(s.jwtService))

	// POST /api/new-workout — создать тренировку.
	api.POST("/new-workout", s.workoutHandler.Create)
	// POST /api/workout/new-exercises — добавить упражнения (владелец проверяется по телу).
	api.POST("/workout/new-exercises", s.workoutHandler.AttachExercises)

	owned := api.Group("/workout/:workoutId")
	owned.Use(middleware.WorkoutOwner(s.workoutService))
	{
		// GET /api/workout/:workoutId — карточка тренировки.
		owned.GET("", s.workoutHandler.Detail)
		// PATCH /api/workout/:workoutId — сохранить подходы.
		owned.PATCH("", s.workoutHandler.UpsertSets)
		// PATCH /api/workout/:workoutId/completed — завершить тренировку.
		owned.PATCH("/completed", s.workoutHandler.Complete)
		// PATCH /api/workout/:workoutId/exercise/:exerciseId — заменить упражнение.
		owned.PATCH("/exercise/:exerciseId", s.workoutHandler.SwapExercise)
		// DELETE /api/workout/:workoutId/exercise/:exerciseId — удалить упражнение.
		owned.DELETE("/exercise/:exerciseId", s.workoutHandler.RemoveExercise)
	}
}

// Start запускает HTTP сервер и блокируется до SIGINT/SIGTERM или ошибки запуска.
func (s *Server) Start() error {
	address := s.cfg.Server.Address()

	s.httpServer = &http.Server{
		Addr:           address,
		Handler:        s.router,
		ReadTimeout:    s.cfg.Server.ReadTimeout,
		WriteTimeout:   s.cfg.Server.WriteTimeout,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Канал для получения сигналов ОС
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	// Канал для ошибок запуска сервера
	serverErr := make(chan error, 1)

	go func() {
		log.Infof("http server listening on %s", address)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("ошибка запуска HTTP сервера: %w", err)
		}
	}()

	// Ожидаем либо сигнал для graceful shutdown, либо ошибку запуска
	select {
	case err := <-serverErr:
		log.WithError(err).Error("http server failed")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(ctx)
		return err
	case sig := <-quit:
		log.Infof("received signal %v, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка при остановке сервера: %w", err)
	}

	log.Info("http server stopped")
	return nil
}

// GetRouter возвращает роутер (для тестирования)
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
