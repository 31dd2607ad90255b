package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gigboard/gigboard-api/internal/models"
	apperrors "github.com/gigboard/gigboard-api/pkg/errors"
	"github.com/gigboard/gigboard-api/pkg/logger"
	"github.com/gigboard/gigboard-api/pkg/metrics"
	"github.com/gigboard/gigboard-api/pkg/retry"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// FreelancerDataSource defines the interface for freelancer data fetching
type FreelancerDataSource interface {
	GetAllFreelancers(ctx context.Context) ([]*models.Freelancer, error)
	GetFreelancerBySlug(ctx context.Context, slug string) (*models.Freelancer, error)
}

// FreelancerCacheInterface defines the cache operations used by the repository layer
type FreelancerCacheInterface interface {
	Initialize() error
	IsReady() bool
	Get() ([]*models.Freelancer, error)
	GetBySlug(slug string) (*models.Freelancer, error)
	UpdateSingleFreelancer(slug string) error
	RemoveFreelancer(slug string) error
	ForceRefresh() ([]*models.Freelancer, error)
	Clear()
}

const (
	freelancerKeyPrefix = "freelancer:slug:"
	allFreelancersKey   = "freelancer:all"
	metadataKey         = "freelancer:metadata"
	cacheCheckPeriod    = 10 * time.Second
)

// CacheMetadata stores cache-wide information
type CacheMetadata struct {
	LastRefreshTime time.Time
	FreelancerCount int
	Version         int64
}

// FreelancerCache manages the in-memory cache for freelancers using slug-based storage
type FreelancerCache struct {
	cache       *gocache.Cache
	dataSource  FreelancerDataSource
	mu          sync.RWMutex
	refreshing  bool
	ready       bool
	ttl         time.Duration
	lastRefresh time.Time
}

// NewFreelancerCache creates a new freelancer cache with slug-based storage
func NewFreelancerCache(dataSource FreelancerDataSource, ttlSeconds int) *FreelancerCache {
	ttl := time.Duration(ttlSeconds) * time.Second
	cache := gocache.New(gocache.NoExpiration, cacheCheckPeriod)

	return &FreelancerCache{
		cache:      cache,
		dataSource: dataSource,
		refreshing: false,
		ready:      false,
		ttl:        ttl,
	}
}

// Initialize performs initial cache population (synchronous, blocks until ready)
// Should be called during application startup before accepting requests
func (fc *FreelancerCache) Initialize() error {
	logger.Info("Initializing freelancer cache...")
	startTime := time.Now()

	freelancers, err := retry.DoWithResult(context.Background(), retry.DefaultConfig(), "freelancer_cache.warm",
		func() ([]*models.Freelancer, error) {
			return fc.dataSource.GetAllFreelancers(context.Background())
		})
	if err != nil {
		logger.Error("Failed to initialize freelancer cache", zap.Error(err))
		return err
	}

	fc.populateCache(freelancers)

	fc.mu.Lock()
	fc.ready = true
	fc.lastRefresh = time.Now()
	fc.mu.Unlock()

	logger.Info("Freelancer cache initialized successfully",
		zap.Duration("duration", time.Since(startTime)))

	// Start background refresh scheduler
	go fc.schedulePeriodicRefresh()

	return nil
}

// IsReady returns true if the cache has been successfully initialized
func (fc *FreelancerCache) IsReady() bool {
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	return fc.ready
}

// GetBySlug retrieves a single freelancer by slug with O(1) complexity.
// Returns immediately without blocking, never triggers a database fetch.
func (fc *FreelancerCache) GetBySlug(slug string) (*models.Freelancer, error) {
	if !fc.IsReady() {
		return nil, fmt.Errorf("freelancer cache not initialized: %w", apperrors.ErrNotReady)
	}

	key := freelancerKeyPrefix + slug

	data, found := fc.cache.Get(key)
	if !found {
		metrics.CacheMisses.WithLabelValues("freelancer_by_slug").Inc()
		logger.Debug("Freelancer not found in cache", zap.String("slug", slug))
		return nil, apperrors.NotFoundError("freelancer")
	}

	metrics.CacheHits.WithLabelValues("freelancer_by_slug").Inc()

	freelancer, ok := data.(*models.Freelancer)
	if !ok {
		logger.Error("Invalid cache data type", zap.String("slug", slug))
		fc.cache.Delete(key)
		return nil, fmt.Errorf("invalid cache data")
	}

	// Return immediately, even if data might be stale
	return freelancer, nil
}

// Get retrieves all freelancers from cache.
// Returns immediately without blocking, never triggers a database fetch.
func (fc *FreelancerCache) Get() ([]*models.Freelancer, error) {
	if !fc.IsReady() {
		return nil, fmt.Errorf("freelancer cache not initialized: %w", apperrors.ErrNotReady)
	}

	slugsData, found := fc.cache.Get(allFreelancersKey)
	if !found {
		// Rarely happens, means the list entry expired before a refresh landed
		metrics.CacheMisses.WithLabelValues("freelancer_all").Inc()
		logger.Warn("All freelancers list not in cache (expired), returning empty")
		return []*models.Freelancer{}, nil
	}

	slugs, ok := slugsData.([]string)
	if !ok {
		logger.Error("Invalid cache data type for all freelancers list")
		return []*models.Freelancer{}, nil
	}

	metrics.CacheHits.WithLabelValues("freelancer_all").Inc()

	freelancers := make([]*models.Freelancer, 0, len(slugs))
	for _, slug := range slugs {
		freelancer, err := fc.GetBySlug(slug)
		if err != nil {
			// Skip missing freelancers rather than failing
			logger.Debug("Freelancer missing from cache", zap.String("slug", slug))
			continue
		}
		freelancers = append(freelancers, freelancer)
	}

	return freelancers, nil
}

// UpdateSingleFreelancer refreshes ONE freelancer in cache.
// Called by the registration and profile update flows.
func (fc *FreelancerCache) UpdateSingleFreelancer(slug string) error {
	if !fc.IsReady() {
		return fmt.Errorf("freelancer cache not initialized: %w", apperrors.ErrNotReady)
	}

	logger.Info("Updating single freelancer in cache", zap.String("slug", slug))

	freelancer, err := fc.dataSource.GetFreelancerBySlug(context.Background(), slug)
	if err != nil {
		logger.Error("Failed to fetch freelancer from data source",
			zap.String("slug", slug),
			zap.Error(err))
		return err
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	key := freelancerKeyPrefix + slug
	fc.cache.Set(key, freelancer, gocache.NoExpiration)

	if err := fc.ensureFreelancerInListLocked(slug); err != nil {
		logger.Error("Failed to update all-freelancers list", zap.Error(err))
		// Non-fatal, the freelancer is still cached
	}

	metrics.CacheSize.WithLabelValues("freelancer_single_update").Inc()
	logger.Info("Single freelancer updated successfully", zap.String("slug", slug))

	return nil
}

// RemoveFreelancer removes a freelancer from cache (for deletions)
func (fc *FreelancerCache) RemoveFreelancer(slug string) error {
	if !fc.IsReady() {
		return fmt.Errorf("freelancer cache not initialized: %w", apperrors.ErrNotReady)
	}

	logger.Info("Removing freelancer from cache", zap.String("slug", slug))

	fc.mu.Lock()
	defer fc.mu.Unlock()

	key := freelancerKeyPrefix + slug
	fc.cache.Delete(key)

	slugsData, found := fc.cache.Get(allFreelancersKey)
	if !found {
		return nil // List expired
	}

	slugs, ok := slugsData.([]string)
	if !ok {
		return fmt.Errorf("invalid all-freelancers list type")
	}

	newSlugs := make([]string, 0, len(slugs))
	for _, s := range slugs {
		if s != slug {
			newSlugs = append(newSlugs, s)
		}
	}

	fc.cache.Set(allFreelancersKey, newSlugs, fc.ttl)

	logger.Info("Freelancer removed from cache", zap.String("slug", slug))
	return nil
}

// ForceRefresh triggers a background refresh and returns immediately
func (fc *FreelancerCache) ForceRefresh() ([]*models.Freelancer, error) {
	logger.Info("Force refresh requested, triggering background refresh")

	go func() {
		if err := fc.refreshInBackground(); err != nil {
			logger.Error("Background refresh failed", zap.Error(err))
		}
	}()

	// Return current cached data immediately
	return fc.Get()
}

// schedulePeriodicRefresh runs background refresh at TTL intervals
func (fc *FreelancerCache) schedulePeriodicRefresh() {
	ticker := time.NewTicker(fc.ttl)
	defer ticker.Stop()

	for range ticker.C {
		logger.Info("Starting scheduled cache refresh")

		if err := fc.refreshInBackground(); err != nil {
			logger.Error("Scheduled cache refresh failed", zap.Error(err))
			// Keep the scheduler running, will retry on next tick
		}
	}
}

// refreshInBackground performs non-blocking background refresh
func (fc *FreelancerCache) refreshInBackground() error {
	fc.mu.Lock()

	if fc.refreshing {
		fc.mu.Unlock()
		logger.Debug("Refresh already in progress, skipping")
		return nil
	}

	fc.refreshing = true
	fc.mu.Unlock()

	defer func() {
		fc.mu.Lock()
		fc.refreshing = false
		fc.mu.Unlock()
	}()

	logger.Info("Background refresh started")
	startTime := time.Now()

	freelancers, err := fc.dataSource.GetAllFreelancers(context.Background())
	if err != nil {
		logger.Error("Failed to fetch freelancers in background refresh", zap.Error(err))
		return err
	}

	fc.populateCache(freelancers)

	fc.mu.Lock()
	fc.lastRefresh = time.Now()
	fc.mu.Unlock()

	logger.Info("Background refresh completed",
		zap.Int("count", len(freelancers)),
		zap.Duration("duration", time.Since(startTime)))

	return nil
}

// populateCache stores all freelancers in cache with individual keys
func (fc *FreelancerCache) populateCache(freelancers []*models.Freelancer) {
	slugs := make([]string, 0, len(freelancers))

	for _, freelancer := range freelancers {
		key := freelancerKeyPrefix + freelancer.Slug

		// Store each freelancer individually with NO expiration.
		// Expiration is controlled at the "freelancer:all" level.
		fc.cache.Set(key, freelancer, gocache.NoExpiration)

		slugs = append(slugs, freelancer.Slug)
	}

	// Store slug list with TTL, this controls cache expiration
	fc.cache.Set(allFreelancersKey, slugs, fc.ttl)

	fc.cache.Set(metadataKey, &CacheMetadata{
		LastRefreshTime: time.Now(),
		FreelancerCount: len(freelancers),
		Version:         time.Now().Unix(),
	}, gocache.NoExpiration)

	metrics.CacheSize.WithLabelValues("freelancers").Set(float64(len(freelancers)))

	logger.Info("Cache populated successfully", zap.Int("count", len(freelancers)))
}

// ensureFreelancerInListLocked ensures slug is in the all-freelancers list.
// MUST be called with fc.mu locked.
func (fc *FreelancerCache) ensureFreelancerInListLocked(slug string) error {
	slugsData, found := fc.cache.Get(allFreelancersKey)
	if !found {
		// List expired, will be recreated on next full refresh
		logger.Debug("All-freelancers list not found, skipping update")
		return nil
	}

	slugs, ok := slugsData.([]string)
	if !ok {
		return fmt.Errorf("invalid all-freelancers list type")
	}

	for _, s := range slugs {
		if s == slug {
			return nil // Already in list
		}
	}

	// Add to list (preserve TTL)
	slugs = append(slugs, slug)
	fc.cache.Set(allFreelancersKey, slugs, fc.ttl)

	return nil
}

// Clear clears the entire cache
func (fc *FreelancerCache) Clear() {
	fc.cache.Flush()
	logger.Info("Freelancer cache cleared")
}

// GetMetadata returns cache metadata
func (fc *FreelancerCache) GetMetadata() (*CacheMetadata, error) {
	data, found := fc.cache.Get(metadataKey)
	if !found {
		return nil, fmt.Errorf("metadata not found")
	}

	metadata, ok := data.(*CacheMetadata)
	if !ok {
		return nil, fmt.Errorf("invalid metadata type")
	}

	return metadata, nil
}

// Ensure FreelancerCache implements FreelancerCacheInterface
var _ FreelancerCacheInterface = (*FreelancerCache)(nil)
