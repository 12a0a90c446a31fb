package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// defaultJWTSecret используется только в development; в production его нужно переопределить.
const defaultJWTSecret = "dev-secret-change-me"

// Config хранит всю конфигурацию приложения
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	CORS      CORSConfig
	Log       LogConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	AppEnv    string // Окружение приложения: development, production, etc.
}

// ServerConfig хранит конфигурацию сервера
type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig хранит конфигурацию базы данных
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int           // Максимальное количество открытых соединений
	MaxIdleConns    int           // Максимальное количество неактивных соединений
	ConnMaxLifetime time.Duration // Максимальное время жизни соединения
	ConnMaxIdleTime time.Duration // Максимальное время простоя соединения
	AutoMigrate     bool          // Применять миграции при старте сервера
}

// JWTConfig хранит параметры выпуска access-токенов.
type JWTConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// CORSConfig хранит настройки Cross-Origin Resource Sharing.
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           time.Duration
}

// LogConfig хранит настройки логирования.
type LogConfig struct {
	Level     string
	File      string // Пустая строка - только STDOUT
	ToStdout  bool
	JSON      bool
	SentryDSN string
}

// CacheConfig хранит настройки in-process кэша справочника упражнений.
type CacheConfig struct {
	ExercisesSizeMB int
	ExercisesTTL    time.Duration
}

// RateLimitConfig хранит настройки ограничения частоты запросов на вход.
// Если RedisAddr пуст, ограничение выключено.
type RateLimitConfig struct {
	RedisAddr       string
	RedisPassword   string
	SignInPerMinute int
}

// Enabled сообщает, настроен ли rate limiting.
func (r *RateLimitConfig) Enabled() bool {
	return r.RedisAddr != "" && r.SignInPerMinute > 0
}

// DSN возвращает строку подключения к базе данных
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// URL возвращает строку подключения в формате URL (для golang-migrate и lib/pq).
func (d *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

// Address возвращает адрес сервера (host:port)
func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// IsProduction сообщает, запущено ли приложение в production-окружении.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	// Загружаем .env файл (если существует)
	// В production переменные окружения должны быть установлены напрямую
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Server.Host = getEnv("SERVER_HOST", "localhost")
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	cfg.Server.WriteTimeout = getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	cfg.Server.ShutdownTimeout = getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second)

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.DBName = getEnv("DB_NAME", "workout_tracker")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")

	// Загружаем настройки пула соединений
	cfg.Database.MaxOpenConns = getEnvAsInt("DB_MAX_OPEN_CONNS", 25)
	cfg.Database.MaxIdleConns = getEnvAsInt("DB_MAX_IDLE_CONNS", 5)
	cfg.Database.ConnMaxLifetime = getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute)
	cfg.Database.ConnMaxIdleTime = getEnvAsDuration("DB_CONN_MAX_IDLE_TIME", 10*time.Minute)
	cfg.Database.AutoMigrate = getEnvAsBool("DB_AUTO_MIGRATE", false)

	cfg.JWT.Secret = getEnv("JWT_SECRET", defaultJWTSecret)
	cfg.JWT.Issuer = getEnv("JWT_ISSUER", "workout-tracker")
	cfg.JWT.TTL = getEnvAsDuration("JWT_TTL", 24*time.Hour)

	cfg.CORS.AllowedOrigins = getEnvAsSlice("CORS_ALLOWED_ORIGINS", nil)
	cfg.CORS.AllowedMethods = getEnvAsSlice("CORS_ALLOWED_METHODS",
		[]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"})
	cfg.CORS.AllowedHeaders = getEnvAsSlice("CORS_ALLOWED_HEADERS",
		[]string{"Origin", "Content-Type", "Authorization"})
	cfg.CORS.ExposedHeaders = getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length"})
	cfg.CORS.AllowCredentials = getEnvAsBool("CORS_ALLOW_CREDENTIALS", false)
	cfg.CORS.MaxAge = getEnvAsDuration("CORS_MAX_AGE", 12*time.Hour)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.File = getEnv("LOG_FILE", "")
	cfg.Log.ToStdout = getEnvAsBool("LOG_TO_STDOUT", true)
	cfg.Log.JSON = getEnvAsBool("LOG_JSON", false)
	cfg.Log.SentryDSN = getEnv("SENTRY_DSN", "")

	cfg.Cache.ExercisesSizeMB = getEnvAsInt("CACHE_EXERCISES_SIZE_MB", 1)
	cfg.Cache.ExercisesTTL = getEnvAsDuration("CACHE_EXERCISES_TTL", 10*time.Minute)

	cfg.RateLimit.RedisAddr = getEnv("RATE_LIMIT_REDIS_ADDR", "")
	cfg.RateLimit.RedisPassword = getEnv("RATE_LIMIT_REDIS_PASSWORD", "")
	cfg.RateLimit.SignInPerMinute = getEnvAsInt("RATE_LIMIT_SIGN_IN_PER_MINUTE", 10)

	// Загружаем окружение приложения
	cfg.AppEnv = getEnv("APP_ENV", "development")

	// Валидируем конфигурацию
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("ошибка валидации конфигурации: %w", err)
	}

	return cfg, nil
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return fmt.Errorf("SERVER_HOST не может быть пустым")
	}
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT не может быть пустым")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST не может быть пустым")
	}
	if c.Database.User == "" {
		return fmt.Errorf("DB_USER не может быть пустым")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("DB_NAME не может быть пустым")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET не может быть пустым")
	}
	if c.IsProduction() && c.JWT.Secret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET должен быть задан в production")
	}
	if c.JWT.TTL <= 0 {
		return fmt.Errorf("JWT_TTL должен быть положительным")
	}
	if c.Cache.ExercisesSizeMB <= 0 {
		return fmt.Errorf("CACHE_EXERCISES_SIZE_MB должен быть положительным")
	}
	return nil
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt получает переменную окружения как int или возвращает значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

// getEnvAsBool получает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolValue
}

// getEnvAsDuration получает переменную окружения как time.Duration или возвращает значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

// getEnvAsSlice разбирает список значений, разделённых запятыми.
func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
