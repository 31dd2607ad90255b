package services

import (
	"context"

	"github.com/gigboard/gigboard-api/config"
	"github.com/gigboard/gigboard-api/internal/models"
	"github.com/gigboard/gigboard-api/internal/repository"
	"github.com/gigboard/gigboard-api/pkg/metrics"
)

type FreelancerService struct {
	repo   repository.FreelancerRepositoryInterface
	config *config.Config
}

func NewFreelancerService(repo repository.FreelancerRepositoryInterface, cfg *config.Config) *FreelancerService {
	return &FreelancerService{
		repo:   repo,
		config: cfg,
	}
}

func (s *FreelancerService) GetAllFreelancers(ctx context.Context, opts models.FilterOptions) ([]*models.Freelancer, error) {
	return s.repo.GetAll(ctx, opts)
}

func (s *FreelancerService) GetFreelancerBySlug(ctx context.Context, slug string, opts models.FilterOptions) (*models.Freelancer, error) {
	freelancer, err := s.repo.GetBySlug(ctx, slug, opts)
	if err != nil {
		return nil, err
	}

	metrics.FreelancerProfileViews.WithLabelValues(slug).Inc()
	return freelancer, nil
}

func (s *FreelancerService) GetAllSkills(ctx context.Context) ([]string, error) {
	return s.repo.GetAllSkills(ctx)
}
