package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v9"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workout-tracker/internal/config"
	userdomain "workout-tracker/internal/domain/user"
	domain "workout-tracker/internal/domain/workout"
	"workout-tracker/internal/metrics"
	repo "workout-tracker/internal/repository/interfaces"
	workoutuc "workout-tracker/internal/usecase/workout"
	jwtsvc "workout-tracker/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testRequestRateLimiter struct {
	Limits map[string]int
	Err    error
}

func (l *testRequestRateLimiter) Allow(_ context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	if l.Err != nil {
		return nil, l.Err
	}
	l.Limits[key]++
	if l.Limits[key] > limit.Rate {
		return &redis_rate.Result{Limit: limit, Allowed: 0, RetryAfter: 30 * time.Second}, nil
	}
	return &redis_rate.Result{Limit: limit, Allowed: 1, Remaining: limit.Rate - l.Limits[key]}, nil
}

type fakeAuthorizer struct {
	workouts map[int64]*domain.Workout
}

func (f *fakeAuthorizer) Authorize(_ context.Context, userID uuid.UUID, workoutID int64) (*domain.Workout, error) {
	w, ok := f.workouts[workoutID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	if !w.OwnedBy(userID) {
		return nil, workoutuc.ErrForbidden
	}
	return w, nil
}

func newJWT() jwtsvc.Service {
	return jwtsvc.NewService(&config.JWTConfig{Secret: "test-secret", Issuer: "test", TTL: time.Hour})
}

func TestAuth(t *testing.T) {
	jwt := newJWT()
	u := userdomain.NewUser("alice", "hash")
	token, err := jwt.GenerateAccessToken(u)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", Auth(jwt), func(c *gin.Context) {
		id, ok := UserID(c)
		require.True(t, ok)
		c.String(http.StatusOK, id.String())
	})

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"empty token", "Bearer  ", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, u.ID.String(), w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"unauthorized"`)
			}
		})
	}
}

func TestLogger_RecordsAuthenticatedUser(t *testing.T) {
	hook := logtest.NewGlobal()
	t.Cleanup(hook.Reset)

	jwt := newJWT()
	u := userdomain.NewUser("alice", "hash")
	token, err := jwt.GenerateAccessToken(u)
	require.NoError(t, err)

	r := gin.New()
	r.Use(Logger())
	r.GET("/me", Auth(jwt), func(c *gin.Context) {
		name, ok := Username(c)
		require.True(t, ok)
		c.String(http.StatusOK, name)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "request served", entry.Message)
	assert.Equal(t, "alice", entry.Data["username"])
	assert.Equal(t, u.ID.String(), entry.Data["user_id"])
}

func TestWorkoutOwner(t *testing.T) {
	owner, stranger := uuid.New(), uuid.New()
	authorizer := &fakeAuthorizer{workouts: map[int64]*domain.Workout{
		7: {ID: 7, UserID: owner},
	}}

	newRouter := func(userID uuid.UUID) *gin.Engine {
		r := gin.New()
		r.GET("/workout/:workoutId",
			func(c *gin.Context) { c.Set(ContextUserIDKey, userID) },
			WorkoutOwner(authorizer),
			func(c *gin.Context) {
				w, ok := Workout(c)
				require.True(t, ok)
				c.JSON(http.StatusOK, gin.H{"id": w.ID})
			})
		return r
	}

	cases := []struct {
		name   string
		user   uuid.UUID
		path   string
		status int
	}{
		{"owner", owner, "/workout/7", http.StatusOK},
		{"stranger", stranger, "/workout/7", http.StatusForbidden},
		{"missing workout", owner, "/workout/8", http.StatusNotFound},
		{"non numeric id", owner, "/workout/abc", http.StatusBadRequest},
		{"negative id", owner, "/workout/-1", http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newRouter(tc.user).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestRateLimit(t *testing.T) {
	m, _ := metrics.NewTestManagerAndRegistry()
	limiter := &testRequestRateLimiter{Limits: map[string]int{}}

	r := gin.New()
	r.POST("/sign-in", RateLimit(limiter, "sign-in", 2, m.CounterRateLimitedRequests), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		r.ServeHTTP(last, httptest.NewRequest(http.MethodPost, "/sign-in", nil))
		codes = append(codes, last.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "31", last.Header().Get("Retry-After"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterRateLimitedRequests))
}

func TestRateLimit_LimiterErrorFailsOpen(t *testing.T) {
	limiter := &testRequestRateLimiter{Err: errors.New("redis: connection refused")}

	r := gin.New()
	r.POST("/sign-in", RateLimit(limiter, "sign-in", 1, nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sign-in", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecovery_CountsPanics(t *testing.T) {
	m, _ := metrics.NewTestManagerAndRegistry()

	r := gin.New()
	r.Use(Recovery(m.CounterHandleRequestPanic))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"internal_error"`)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterHandleRequestPanic))
}

func TestMetrics(t *testing.T) {
	m, reg := metrics.NewTestManagerAndRegistry()

	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterRequests.WithLabelValues(http.MethodGet, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterRequests.WithLabelValues(http.MethodGet, "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.GaugeRequests))

	count, err := testutil.GatherAndCount(reg, "workout_tracker_test_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-3", "1.5", "x"} {
		_, err := ParseID(raw)
		assert.Error(t, err, raw)
	}
}

func TestCORS(t *testing.T) {
	cfg := &config.CORSConfig{AllowedMethods: []string{http.MethodGet}}

	serve := func(cfg *config.CORSConfig, origin string) *httptest.ResponseRecorder {
		r := gin.New()
		r.Use(CORS(cfg))
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("explicit origins", func(t *testing.T) {
		withOrigins := *cfg
		withOrigins.AllowedOrigins = []string{"https://app.example.com"}
		w := serve(&withOrigins, "https://app.example.com")
		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusForbidden, serve(&withOrigins, "https://evil.example.com").Code)
	})

	t.Run("release mode without origins rejects", func(t *testing.T) {
		gin.SetMode(gin.ReleaseMode)
		defer gin.SetMode(gin.TestMode)
		assert.NotPanics(t, func() {
			assert.Equal(t, http.StatusForbidden, serve(cfg, "https://app.example.com").Code)
		})
	})
}
