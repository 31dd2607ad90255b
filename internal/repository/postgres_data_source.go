package repository

import (
	"context"

	"github.com/gigboard/gigboard-api/internal/database/postgres"
	"github.com/gigboard/gigboard-api/internal/models"
)

// PostgresFreelancerDataSource implements FreelancerDataSource using PostgreSQL
type PostgresFreelancerDataSource struct {
	client *postgres.Client
}

// NewPostgresFreelancerDataSource creates a new PostgreSQL freelancer data source
func NewPostgresFreelancerDataSource(client *postgres.Client) *PostgresFreelancerDataSource {
	return &PostgresFreelancerDataSource{
		client: client,
	}
}

// GetAllFreelancers fetches all freelancers from PostgreSQL
func (ds *PostgresFreelancerDataSource) GetAllFreelancers(ctx context.Context) ([]*models.Freelancer, error) {
	return ds.client.GetAllFreelancers(ctx)
}

// GetFreelancerBySlug fetches a single freelancer by slug from PostgreSQL
func (ds *PostgresFreelancerDataSource) GetFreelancerBySlug(ctx context.Context, slug string) (*models.Freelancer, error) {
	return ds.client.GetFreelancerBySlug(ctx, slug)
}

// GetFreelancerByWallet fetches a single freelancer by wallet address from PostgreSQL
func (ds *PostgresFreelancerDataSource) GetFreelancerByWallet(ctx context.Context, wallet string) (*models.Freelancer, error) {
	return ds.client.GetFreelancerByWallet(ctx, wallet)
}

// GetFreelancerByUUID fetches a single freelancer by its public UUID from PostgreSQL
func (ds *PostgresFreelancerDataSource) GetFreelancerByUUID(ctx context.Context, uuid string) (*models.Freelancer, error) {
	return ds.client.GetFreelancerByUUID(ctx, uuid)
}

// InsertFreelancer creates a new freelancer record in PostgreSQL
func (ds *PostgresFreelancerDataSource) InsertFreelancer(ctx context.Context, f *models.Freelancer) error {
	return ds.client.InsertFreelancer(ctx, f)
}

// UpdateFreelancerProfile updates profile fields in PostgreSQL
func (ds *PostgresFreelancerDataSource) UpdateFreelancerProfile(ctx context.Context, slug string, updates map[string]interface{}) error {
	return ds.client.UpdateFreelancerProfile(ctx, slug, updates)
}

// UpdateFreelancerAvatar updates a freelancer's avatar URL in PostgreSQL
func (ds *PostgresFreelancerDataSource) UpdateFreelancerAvatar(ctx context.Context, slug, avatarURL string) error {
	return ds.client.UpdateFreelancerAvatar(ctx, slug, avatarURL)
}

// Ensure PostgresFreelancerDataSource implements FreelancerDataSource
var _ FreelancerDataSource = (*PostgresFreelancerDataSource)(nil)

// PostgresSkillsDataSource implements SkillsDataSource using PostgreSQL
type PostgresSkillsDataSource struct {
	client *postgres.Client
}

// NewPostgresSkillsDataSource creates a new PostgreSQL skills data source
func NewPostgresSkillsDataSource(client *postgres.Client) *PostgresSkillsDataSource {
	return &PostgresSkillsDataSource{
		client: client,
	}
}

// GetDistinctSkills fetches the distinct skills list from PostgreSQL
func (ds *PostgresSkillsDataSource) GetDistinctSkills(ctx context.Context) ([]string, error) {
	return ds.client.GetDistinctSkills(ctx)
}

// Ensure PostgresSkillsDataSource implements SkillsDataSource
var _ SkillsDataSource = (*PostgresSkillsDataSource)(nil)
