package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gigboard/gigboard-api/internal/models"
	apperrors "github.com/gigboard/gigboard-api/pkg/errors"
	"github.com/gigboard/gigboard-api/pkg/logger"
	"github.com/gigboard/gigboard-api/pkg/metrics"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations
const uniqueViolation = "23505"

// FreelancerRow represents a freelancer row from the database
type FreelancerRow struct {
	ID            int64
	UUID          string
	Slug          string
	FullName      string
	Email         string
	Skills        []string
	Experience    string
	HourlyRate    float64
	Portfolio     *string
	Bio           *string
	WalletAddress string
	AvatarURL     *string
	IsVisible     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const freelancerColumns = `
	f.id, f.uuid, f.slug, f.full_name, f.email, f.skills, f.experience,
	f.hourly_rate, f.portfolio, f.bio, f.wallet_address, f.avatar_url,
	f.is_visible, f.created_at, f.updated_at`

// GetAllFreelancers fetches all freelancers from the database
func (c *Client) GetAllFreelancers(ctx context.Context) ([]*models.Freelancer, error) {
	start := time.Now()
	operation := "getAllFreelancers"

	query := fmt.Sprintf(`SELECT %s FROM freelancers f ORDER BY f.created_at DESC`, freelancerColumns)

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to query freelancers: %w", err)
	}
	defer rows.Close()

	freelancers := make([]*models.Freelancer, 0)
	for rows.Next() {
		var row FreelancerRow

		err := rows.Scan(
			&row.ID, &row.UUID, &row.Slug, &row.FullName, &row.Email, &row.Skills,
			&row.Experience, &row.HourlyRate, &row.Portfolio, &row.Bio,
			&row.WalletAddress, &row.AvatarURL, &row.IsVisible,
			&row.CreatedAt, &row.UpdatedAt,
		)
		if err != nil {
			duration := metrics.MeasureDuration(start)
			recordMetrics(operation, "error", duration)
			logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
			return nil, fmt.Errorf("failed to scan freelancer row: %w", err)
		}

		freelancers = append(freelancers, rowToFreelancer(&row))
	}

	if err := rows.Err(); err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("error iterating freelancer rows: %w", err)
	}

	duration := metrics.MeasureDuration(start)
	recordMetrics(operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration, zap.Int("count", len(freelancers)))

	return freelancers, nil
}

// getFreelancerByField is a helper that fetches a freelancer by a specific field condition
func (c *Client) getFreelancerByField(ctx context.Context, operation, whereClause string, arg interface{}) (*models.Freelancer, error) {
	start := time.Now()

	query := fmt.Sprintf(`SELECT %s FROM freelancers f WHERE %s`, freelancerColumns, whereClause)

	var row FreelancerRow
	err := c.pool.QueryRow(ctx, query, arg).Scan(
		&row.ID, &row.UUID, &row.Slug, &row.FullName, &row.Email, &row.Skills,
		&row.Experience, &row.HourlyRate, &row.Portfolio, &row.Bio,
		&row.WalletAddress, &row.AvatarURL, &row.IsVisible,
		&row.CreatedAt, &row.UpdatedAt,
	)

	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, apperrors.NotFoundError("freelancer")
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to query freelancer: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return rowToFreelancer(&row), nil
}

// GetFreelancerBySlug fetches a single freelancer by slug
func (c *Client) GetFreelancerBySlug(ctx context.Context, slug string) (*models.Freelancer, error) {
	return c.getFreelancerByField(ctx, "getFreelancerBySlug", "f.slug = $1", slug)
}

// GetFreelancerByWallet fetches a single freelancer by wallet address.
// Wallet addresses are stored lowercased, so the lookup folds case.
func (c *Client) GetFreelancerByWallet(ctx context.Context, wallet string) (*models.Freelancer, error) {
	return c.getFreelancerByField(ctx, "getFreelancerByWallet", "f.wallet_address = LOWER($1)", wallet)
}

// GetFreelancerByUUID fetches a single freelancer by its public UUID
func (c *Client) GetFreelancerByUUID(ctx context.Context, uuid string) (*models.Freelancer, error) {
	return c.getFreelancerByField(ctx, "getFreelancerByUUID", "f.uuid = $1", uuid)
}

// InsertFreelancer inserts a new freelancer and fills in the generated fields.
// A unique violation on the wallet address maps to a conflict error.
func (c *Client) InsertFreelancer(ctx context.Context, f *models.Freelancer) error {
	start := time.Now()
	operation := "insertFreelancer"

	query := `
		INSERT INTO freelancers (
			uuid, slug, full_name, email, skills, experience,
			hourly_rate, portfolio, bio, wallet_address, is_visible
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := c.pool.QueryRow(ctx, query,
		f.UUID, f.Slug, f.Name, f.Email, f.Skills, f.Experience,
		f.HourlyRate, f.Portfolio, f.Bio, f.WalletAddress, f.IsVisible,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			recordMetrics(operation, "conflict", duration)
			logger.LogAPICall("postgres", operation, "conflict", duration,
				zap.String("constraint", pgErr.ConstraintName))
			if strings.Contains(pgErr.ConstraintName, "wallet") {
				return apperrors.ConflictError("wallet")
			}
			return apperrors.ConflictError("freelancer")
		}

		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return fmt.Errorf("failed to insert freelancer: %w", err)
	}

	recordMetrics(operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration, zap.String("slug", f.Slug))

	return nil
}

// UpdateFreelancerProfile updates profile fields for a freelancer
func (c *Client) UpdateFreelancerProfile(ctx context.Context, slug string, updates map[string]interface{}) error {
	start := time.Now()
	operation := "updateFreelancerProfile"

	// Map of allowed fields and their database column names
	fieldMapping := map[string]string{
		"Name":       "full_name",
		"Skills":     "skills",
		"Experience": "experience",
		"HourlyRate": "hourly_rate",
		"Portfolio":  "portfolio",
		"Bio":        "bio",
		"IsVisible":  "is_visible",
	}

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	argIndex := 1

	for field, value := range updates {
		colName, ok := fieldMapping[field]
		if !ok {
			continue // Skip unknown fields
		}

		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", colName, argIndex))
		args = append(args, value)
		argIndex++
	}

	if len(setClauses) == 0 {
		return nil // Nothing to update
	}

	args = append(args, slug)

	query := fmt.Sprintf(
		"UPDATE freelancers SET %s, updated_at = NOW() WHERE slug = $%d",
		strings.Join(setClauses, ", "),
		argIndex,
	)

	result, err := c.pool.Exec(ctx, query, args...)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return fmt.Errorf("failed to update freelancer: %w", err)
	}

	if result.RowsAffected() == 0 {
		recordMetrics(operation, "not_found", duration)
		return apperrors.NotFoundError("freelancer")
	}

	recordMetrics(operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration, zap.String("slug", slug))

	return nil
}

// UpdateFreelancerAvatar updates a freelancer's avatar URL
func (c *Client) UpdateFreelancerAvatar(ctx context.Context, slug, avatarURL string) error {
	start := time.Now()
	operation := "updateFreelancerAvatar"

	query := "UPDATE freelancers SET avatar_url = $1, updated_at = NOW() WHERE slug = $2"
	result, err := c.pool.Exec(ctx, query, avatarURL, slug)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return fmt.Errorf("failed to update freelancer avatar: %w", err)
	}

	if result.RowsAffected() == 0 {
		recordMetrics(operation, "not_found", duration)
		return apperrors.NotFoundError("freelancer")
	}

	recordMetrics(operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration, zap.String("slug", slug))

	return nil
}

// rowToFreelancer converts a database row to a Freelancer model
func rowToFreelancer(row *FreelancerRow) *models.Freelancer {
	skills := row.Skills
	if skills == nil {
		skills = []string{}
	}

	return &models.Freelancer{
		ID:            row.ID,
		UUID:          row.UUID,
		Slug:          row.Slug,
		Name:          row.FullName,
		Email:         row.Email,
		Skills:        skills,
		Experience:    row.Experience,
		HourlyRate:    row.HourlyRate,
		Portfolio:     derefString(row.Portfolio),
		Bio:           derefString(row.Bio),
		WalletAddress: row.WalletAddress,
		AvatarURL:     derefString(row.AvatarURL),
		IsVisible:     row.IsVisible,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

// derefString safely dereferences a string pointer
func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
