package repository

import (
	"context"

	"github.com/gigboard/gigboard-api/internal/cache"
	"github.com/gigboard/gigboard-api/internal/models"
	apperrors "github.com/gigboard/gigboard-api/pkg/errors"
	"github.com/gigboard/gigboard-api/pkg/logger"
	"go.uber.org/zap"
)

// FreelancerRepositoryInterface defines the interface for freelancer data access operations.
type FreelancerRepositoryInterface interface {
	GetAll(ctx context.Context, opts models.FilterOptions) ([]*models.Freelancer, error)
	GetBySlug(ctx context.Context, slug string, opts models.FilterOptions) (*models.Freelancer, error)
	GetByWallet(ctx context.Context, wallet string) (*models.Freelancer, error)
	GetByUUID(ctx context.Context, uuid string) (*models.Freelancer, error)
	Create(ctx context.Context, f *models.Freelancer) error
	UpdateProfile(ctx context.Context, slug string, updates map[string]interface{}) error
	UpdateAvatar(ctx context.Context, slug, avatarURL string) error
	GetAllSkills(ctx context.Context) ([]string, error)
	RefreshFreelancer(slug string)
	InvalidateCache()
}

// FreelancerRepository handles freelancer data access through the cache layer
type FreelancerRepository struct {
	dataSource      FreelancerDataSource
	freelancerCache cache.FreelancerCacheInterface
	skillsCache     cache.SkillsCacheInterface
	disableCache    bool
}

// NewFreelancerRepository creates a new freelancer repository
func NewFreelancerRepository(
	dataSource FreelancerDataSource,
	freelancerCache cache.FreelancerCacheInterface,
	skillsCache cache.SkillsCacheInterface,
	disableCache bool,
) FreelancerRepositoryInterface {
	return &FreelancerRepository{
		dataSource:      dataSource,
		freelancerCache: freelancerCache,
		skillsCache:     skillsCache,
		disableCache:    disableCache,
	}
}

// GetAll retrieves all freelancers with optional filtering
func (r *FreelancerRepository) GetAll(ctx context.Context, opts models.FilterOptions) ([]*models.Freelancer, error) {
	var freelancers []*models.Freelancer
	var err error

	switch {
	case r.disableCache:
		freelancers, err = r.dataSource.GetAllFreelancers(ctx)
	case opts.ForceRefresh:
		freelancers, err = r.freelancerCache.ForceRefresh()
	default:
		freelancers, err = r.freelancerCache.Get()
	}

	if err != nil {
		return nil, err
	}

	return r.applyFilters(freelancers, opts), nil
}

// GetBySlug retrieves a freelancer by slug
func (r *FreelancerRepository) GetBySlug(ctx context.Context, slug string, opts models.FilterOptions) (*models.Freelancer, error) {
	var freelancer *models.Freelancer
	var err error

	if r.disableCache {
		freelancer, err = r.dataSource.GetFreelancerBySlug(ctx, slug)
	} else {
		freelancer, err = r.freelancerCache.GetBySlug(slug)
	}

	if err != nil {
		return nil, err
	}

	if opts.OnlyVisible && !freelancer.IsVisible {
		return nil, apperrors.NotFoundError("freelancer")
	}

	// Copy to avoid modifying cached data
	f := *freelancer

	if !opts.ShowHidden {
		f.Email = ""
		f.WalletAddress = ""
	}

	return &f, nil
}

// GetByWallet retrieves a freelancer by wallet address.
// Always reads from the database: the auth flow needs fresh data and
// the cache is keyed by slug.
func (r *FreelancerRepository) GetByWallet(ctx context.Context, wallet string) (*models.Freelancer, error) {
	return r.dataSource.GetFreelancerByWallet(ctx, wallet)
}

// GetByUUID retrieves a freelancer by its public UUID.
// Used by the profile flow, which needs the owner's full record.
func (r *FreelancerRepository) GetByUUID(ctx context.Context, uuid string) (*models.Freelancer, error) {
	return r.dataSource.GetFreelancerByUUID(ctx, uuid)
}

// Create inserts a new freelancer record
func (r *FreelancerRepository) Create(ctx context.Context, f *models.Freelancer) error {
	return r.dataSource.InsertFreelancer(ctx, f)
}

// UpdateProfile updates a freelancer's profile fields and refreshes the cache entry
func (r *FreelancerRepository) UpdateProfile(ctx context.Context, slug string, updates map[string]interface{}) error {
	if err := r.dataSource.UpdateFreelancerProfile(ctx, slug, updates); err != nil {
		return err
	}

	r.RefreshFreelancer(slug)
	return nil
}

// UpdateAvatar updates a freelancer's avatar URL and refreshes the cache entry
func (r *FreelancerRepository) UpdateAvatar(ctx context.Context, slug, avatarURL string) error {
	if err := r.dataSource.UpdateFreelancerAvatar(ctx, slug, avatarURL); err != nil {
		return err
	}

	r.RefreshFreelancer(slug)
	return nil
}

// GetAllSkills retrieves the distinct skills list
func (r *FreelancerRepository) GetAllSkills(ctx context.Context) ([]string, error) {
	return r.skillsCache.Get()
}

// RefreshFreelancer refreshes a single freelancer in the cache and
// invalidates the skills list. Safe to call from goroutines.
func (r *FreelancerRepository) RefreshFreelancer(slug string) {
	if !r.disableCache {
		if err := r.freelancerCache.UpdateSingleFreelancer(slug); err != nil {
			logger.Warn("Failed to refresh freelancer in cache",
				zap.String("slug", slug),
				zap.Error(err))
		}
	}

	r.skillsCache.Invalidate()
}

// applyFilters applies filtering options to a freelancer list
func (r *FreelancerRepository) applyFilters(freelancers []*models.Freelancer, opts models.FilterOptions) []*models.Freelancer {
	result := make([]*models.Freelancer, 0)

	for _, freelancer := range freelancers {
		if opts.OnlyVisible && !freelancer.IsVisible {
			continue
		}

		if opts.Skill != "" && !freelancer.HasSkill(opts.Skill) {
			continue
		}

		// Copy to avoid modifying cached data
		f := *freelancer

		// Hide secure fields unless explicitly requested
		if !opts.ShowHidden {
			f.Email = ""
			f.WalletAddress = ""
		}

		result = append(result, &f)
	}

	return result
}

// InvalidateCache forces cache invalidation
func (r *FreelancerRepository) InvalidateCache() {
	r.freelancerCache.Clear()
	r.skillsCache.Invalidate()
}
