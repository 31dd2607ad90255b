package postgres

import (
	"context"

	"github.com/gigboard/gigboard-api/pkg/logger"
	"github.com/gigboard/gigboard-api/pkg/metrics"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Client wraps a pgx connection pool with observability
type Client struct {
	pool *pgxpool.Pool
}

// NewClient wraps an existing connection pool.
// Pool lifecycle (sizing, TLS, health checks) is owned by pkg/db.
func NewClient(pool *pgxpool.Pool) *Client {
	return &Client{pool: pool}
}

// Close closes the connection pool
func (c *Client) Close() {
	if c.pool != nil {
		c.pool.Close()
		logger.Info("PostgreSQL connection pool closed")
	}
}

// Pool returns the underlying connection pool for advanced usage
func (c *Client) Pool() *pgxpool.Pool {
	return c.pool
}

// Ping checks if the database connection is alive
func (c *Client) Ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

// Stats returns connection pool statistics
func (c *Client) Stats() *pgxpool.Stat {
	return c.pool.Stat()
}

// recordMetrics records database operation metrics
func recordMetrics(operation, status string, duration float64) {
	metrics.DBQueryDuration.WithLabelValues(operation, status).Observe(duration)
	metrics.DBQueryTotal.WithLabelValues(operation, status).Inc()
}
