package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/gigboard/gigboard-api/pkg/logger"
	"github.com/gigboard/gigboard-api/pkg/metrics"
	"go.uber.org/zap"
)

// GetDistinctSkills fetches the distinct set of skills listed by visible freelancers
func (c *Client) GetDistinctSkills(ctx context.Context) ([]string, error) {
	start := time.Now()
	operation := "getDistinctSkills"

	query := `
		SELECT DISTINCT skill
		FROM freelancers f, unnest(f.skills) AS skill
		WHERE f.is_visible = TRUE AND skill <> ''
		ORDER BY skill
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer rows.Close()

	skills := make([]string, 0)
	for rows.Next() {
		var skill string
		if err := rows.Scan(&skill); err != nil {
			duration := metrics.MeasureDuration(start)
			recordMetrics(operation, "error", duration)
			return nil, fmt.Errorf("failed to scan skill row: %w", err)
		}
		skills = append(skills, skill)
	}

	if err := rows.Err(); err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("error iterating skill rows: %w", err)
	}

	duration := metrics.MeasureDuration(start)
	recordMetrics(operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration, zap.Int("count", len(skills)))

	return skills, nil
}
