package exercise

import (
	"context"
	"encoding/json"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	domain "workout-tracker/internal/domain/workout"
	repo "workout-tracker/internal/repository/interfaces"
)

const (
	megabyte    = 1024 * 1024
	catalogKey  = "exercises::all"
	minCacheTTL = time.Second
)

// Service отдаёт справочник упражнений.
type Service interface {
	// List возвращает все упражнения, отсортированные по названию.
	List(ctx context.Context) ([]domain.Exercise, error)
}

type service struct {
	exercises repo.ExerciseRepository
	cache     *freecache.Cache
	ttl       time.Duration
}

// NewService создаёт сервис справочника с in-process кэшем размером sizeMB мегабайт.
// Справочник меняется только миграциями, поэтому кэш инвалидируется лишь по TTL.
func NewService(exercises repo.ExerciseRepository, sizeMB int, ttl time.Duration) Service {
	if ttl < minCacheTTL {
		ttl = minCacheTTL
	}
	return &service{
		exercises: exercises,
		cache:     freecache.NewCache(sizeMB * megabyte),
		ttl:       ttl,
	}
}

func (s *service) List(ctx context.Context) ([]domain.Exercise, error) {
	if cached, err := s.cache.Get([]byte(catalogKey)); err == nil {
		var exercises []domain.Exercise
		if err := json.Unmarshal(cached, &exercises); err == nil {
			log.Trace("exercise catalog served from cache")
			return exercises, nil
		} else {
			log.Errorf("failed to unmarshal exercise catalog from cache: %s", err)
		}
	}

	exercises, err := s.exercises.List(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("failed to marshal exercise catalog for cache: %s", err)
		return exercises, nil
	}
	if err := s.cache.Set([]byte(catalogKey), payload, int(s.ttl.Seconds())); err != nil {
		log.Errorf("failed to write exercise catalog cache: %s", err)
	} else {
		log.Debugf("exercise catalog cached: %d entries", len(exercises))
	}

	return exercises, nil
}
