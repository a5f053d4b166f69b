package veterinarians

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/SoYuDev/petalth-crm/internal/petalth"
)

const cacheKey = "veterinarians"

type vetAPI interface {
	Veterinarians(ctx context.Context) ([]petalth.Veterinarian, error)
}

// Service serves the clinic's veterinarian roster. The roster changes
// rarely, so successful fetches are cached and reused for the TTL.
type Service struct {
	api    vetAPI
	cache  *gocache.Cache
	logger *zap.Logger
}

func NewService(api vetAPI, ttl time.Duration, logger *zap.Logger) *Service {
	return &Service{
		api:    api,
		cache:  gocache.New(ttl, 2*ttl),
		logger: logger,
	}
}

// List returns the roster, from cache when fresh. Errors are never
// cached, the next call retries upstream.
func (s *Service) List(ctx context.Context) ([]petalth.Veterinarian, error) {
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.([]petalth.Veterinarian), nil
	}

	list, err := s.api.Veterinarians(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, list, gocache.DefaultExpiration)
	s.logger.Debug("veterinarian roster refreshed", zap.Int("count", len(list)))
	return list, nil
}
