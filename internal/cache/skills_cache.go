package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	apperrors "github.com/gigboard/gigboard-api/pkg/errors"
	"github.com/gigboard/gigboard-api/pkg/logger"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	skillsCacheKey = "skills"
	skillsCacheTTL = time.Hour
)

// SkillsDataSource defines the interface for skills data fetching
type SkillsDataSource interface {
	GetDistinctSkills(ctx context.Context) ([]string, error)
}

// SkillsCacheInterface defines the cache operations used by the repository layer
type SkillsCacheInterface interface {
	Initialize() error
	IsReady() bool
	Get() ([]string, error)
	Invalidate()
}

// SkillsCache manages the in-memory cache for the distinct skills list
type SkillsCache struct {
	cache      *gocache.Cache
	dataSource SkillsDataSource
	mu         sync.RWMutex
	ready      bool
}

// NewSkillsCache creates a new skills cache
func NewSkillsCache(dataSource SkillsDataSource) *SkillsCache {
	cache := gocache.New(skillsCacheTTL, 10*time.Minute)

	return &SkillsCache{
		cache:      cache,
		dataSource: dataSource,
		ready:      false,
	}
}

// Initialize performs initial cache population (synchronous, blocks until ready)
// Should be called during application startup before accepting requests
func (sc *SkillsCache) Initialize() error {
	logger.Info("Initializing skills cache...")
	_, err := sc.refresh()
	if err != nil {
		logger.Error("Failed to initialize skills cache", zap.Error(err))
		return err
	}

	sc.mu.Lock()
	sc.ready = true
	sc.mu.Unlock()

	logger.Info("Skills cache initialized successfully")
	return nil
}

// IsReady returns true if the cache has been successfully initialized
func (sc *SkillsCache) IsReady() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.ready
}

// Get retrieves skills from cache or fetches them on cache miss
func (sc *SkillsCache) Get() ([]string, error) {
	if !sc.IsReady() {
		return nil, fmt.Errorf("skills cache not initialized: %w", apperrors.ErrNotReady)
	}

	if data, found := sc.cache.Get(skillsCacheKey); found {
		logger.Debug("Skills cache hit")
		skills, ok := data.([]string)
		if !ok {
			logger.Error("Invalid skills cache data type")
			sc.cache.Delete(skillsCacheKey)
			return nil, fmt.Errorf("invalid cache data type")
		}
		return skills, nil
	}

	logger.Info("Skills cache miss, fetching from database")

	return sc.refresh()
}

// Invalidate drops the cached skills list so the next read refetches it
func (sc *SkillsCache) Invalidate() {
	sc.cache.Delete(skillsCacheKey)
}

// refresh fetches the distinct skills from the database and updates the cache
func (sc *SkillsCache) refresh() ([]string, error) {
	skills, err := sc.dataSource.GetDistinctSkills(context.Background())
	if err != nil {
		logger.Error("Failed to refresh skills cache", zap.Error(err))
		return nil, err
	}

	sc.cache.Set(skillsCacheKey, skills, skillsCacheTTL)

	logger.Info("Skills cache refreshed", zap.Int("count", len(skills)))

	return skills, nil
}

// Ensure SkillsCache implements SkillsCacheInterface
var _ SkillsCacheInterface = (*SkillsCache)(nil)
