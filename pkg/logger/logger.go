package logger

import (
	"io"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger описывает минимальный интерфейс структурированного логгера,
// достаточный для использования в handler'ах, middleware и сервисах.
type Logger interface {
	Info(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// SetupParams описывает параметры глобального логгера процесса.
type SetupParams struct {
	Level       string
	File        string // Пустая строка - писать только в STDOUT
	ToStdout    bool
	JSON        bool
	Environment string
	SentryDSN   string
}

// Setup настраивает глобальный logrus-логгер: уровень, формат, ротацию файла и Sentry.
// Возвращает функцию, которую нужно вызвать при остановке процесса.
func Setup(params SetupParams) func() {
	if params.JSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetLevel(ParseLevel(params.Level))

	flush := func() {}
	if params.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         params.SentryDSN,
			Environment: params.Environment,
		})
		if err != nil {
			logrus.Errorf("sentry.Init: %s", err)
		} else {
			logrus.AddHook(NewSentryHook(logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel))
			flush = func() { sentry.Flush(sentryFlushTimeout) }
			logrus.Info("sentry hook installed")
		}
	}

	if params.File == "" {
		logrus.SetOutput(os.Stdout)
		return flush
	}

	fileName := params.File
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}
	rotating := &lumberjack.Logger{
		Filename:  fileName,
		MaxSize:   50, // megabytes
		LocalTime: false,
		Compress:  true,
	}

	if params.ToStdout {
		logrus.SetOutput(io.MultiWriter(os.Stdout, rotating))
	} else {
		logrus.SetOutput(rotating)
	}

	return func() {
		flush()
		_ = rotating.Close()
	}
}

// ParseLevel переводит строковый уровень в logrus.Level. Неизвестные значения дают Info.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}

type logrusLogger struct {
	entry *logrus.Entry
}

// Default возвращает логгер поверх глобального logrus.
func Default() Logger {
	return New(logrus.NewEntry(logrus.StandardLogger()))
}

// New оборачивает произвольную logrus-запись (например, с предустановленными полями).
func New(entry *logrus.Entry) Logger {
	return &logrusLogger{entry: entry}
}

func (l *logrusLogger) Info(msg string, fields map[string]any) {
	l.entry.WithFields(fields).Info(msg)
}

func (l *logrusLogger) Error(msg string, fields map[string]any) {
	l.entry.WithFields(fields).Error(msg)
}
