package repository

import (
	"context"

	"github.com/gigboard/gigboard-api/internal/models"
)

// FreelancerDataSource defines the interface for freelancer data access
type FreelancerDataSource interface {
	// GetAllFreelancers fetches all freelancers
	GetAllFreelancers(ctx context.Context) ([]*models.Freelancer, error)

	// GetFreelancerBySlug fetches a single freelancer by slug
	GetFreelancerBySlug(ctx context.Context, slug string) (*models.Freelancer, error)

	// GetFreelancerByWallet fetches a single freelancer by wallet address
	GetFreelancerByWallet(ctx context.Context, wallet string) (*models.Freelancer, error)

	// GetFreelancerByUUID fetches a single freelancer by its public UUID
	GetFreelancerByUUID(ctx context.Context, uuid string) (*models.Freelancer, error)

	// InsertFreelancer creates a new freelancer record
	InsertFreelancer(ctx context.Context, f *models.Freelancer) error

	// UpdateFreelancerProfile updates profile fields
	UpdateFreelancerProfile(ctx context.Context, slug string, updates map[string]interface{}) error

	// UpdateFreelancerAvatar updates a freelancer's avatar URL
	UpdateFreelancerAvatar(ctx context.Context, slug, avatarURL string) error
}

// SkillsDataSource defines the interface for skills data access
type SkillsDataSource interface {
	// GetDistinctSkills fetches the distinct skills listed by visible freelancers
	GetDistinctSkills(ctx context.Context) ([]string, error)
}
