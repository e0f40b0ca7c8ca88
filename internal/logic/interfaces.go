package logic

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/soccermod/stats-api/internal/models"
)

// ErrPlayerNotFound is returned when the requested steamid has no base
// player row. Missing dependent records are never an error.
var ErrPlayerNotFound = errors.New("player not found")

// PgPool defines the interface for the PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PlayerService reads and projects player records.
type PlayerService interface {
	List(ctx context.Context, page PageRequest) (*models.PlayerListResponse, error)
	Search(ctx context.Context, q string, limit int) ([]models.SearchResult, error)
	Get(ctx context.Context, steamID string) (*models.PlayerProfile, error)
}

// LeaderboardService ranks players by a validated sort field or by a
// combined metric summed across both partitions.
type LeaderboardService interface {
	Match(ctx context.Context, sort string, limit int) ([]models.MatchLeaderRow, SortField, error)
	Public(ctx context.Context, sort string, limit int) ([]models.PublicLeaderRow, SortField, error)
	TopMetric(ctx context.Context, metric Metric, limit int) ([]models.CombinedLeaderRow, error)
}

// ServerStatsService aggregates across the whole player collection.
type ServerStatsService interface {
	Summary(ctx context.Context) (*models.SummaryResponse, error)
	PositionTotals(ctx context.Context) (*models.PositionTotals, error)
}
