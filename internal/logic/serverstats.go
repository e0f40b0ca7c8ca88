package logic

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/soccermod/stats-api/internal/models"
)

// activeWindow is the recency cutoff for the "active players" counter.
const activeWindow = 7 * 24 * time.Hour

type serverStatsService struct {
	pg PgPool
	// now is swapped out in tests to pin the recency cutoff.
	now func() time.Time
}

func NewServerStatsService(pg PgPool) ServerStatsService {
	return &serverStatsService{pg: pg, now: time.Now}
}

// Summary aggregates across the whole collection: live player counts and
// per-partition counter sums. The four reads run concurrently and are not
// one snapshot; sums over empty tables come back as zero.
func (s *serverStatsService) Summary(ctx context.Context) (*models.SummaryResponse, error) {
	out := &models.SummaryResponse{}
	cutoff := s.now().Add(-activeWindow).Unix()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.pg.QueryRow(ctx,
			`SELECT COUNT(*) FROM soccer_mod_players`,
		).Scan(&out.TotalPlayers); err != nil {
			return fmt.Errorf("player count: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := s.pg.QueryRow(ctx,
			`SELECT COUNT(*) FROM soccer_mod_players WHERE last_connected > $1`,
			cutoff,
		).Scan(&out.ActiveLast7Days); err != nil {
			return fmt.Errorf("active count: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := s.pg.QueryRow(ctx, `
			SELECT
				COALESCE(SUM(goals), 0),
				COALESCE(SUM(assists), 0),
				COALESCE(SUM(saves), 0),
				COALESCE(SUM(matches), 0)
			FROM soccer_mod_match_stats
		`).Scan(
			&out.MatchStats.Goals, &out.MatchStats.Assists,
			&out.MatchStats.Saves, &out.MatchStats.Matches,
		); err != nil {
			return fmt.Errorf("match totals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := s.pg.QueryRow(ctx, `
			SELECT
				COALESCE(SUM(goals), 0),
				COALESCE(SUM(assists), 0),
				COALESCE(SUM(saves), 0)
			FROM soccer_mod_public_stats
		`).Scan(
			&out.PublicStats.Goals, &out.PublicStats.Assists, &out.PublicStats.Saves,
		); err != nil {
			return fmt.Errorf("public totals: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// PositionTotals sums each position counter across all players.
func (s *serverStatsService) PositionTotals(ctx context.Context) (*models.PositionTotals, error) {
	var t models.PositionTotals
	if err := s.pg.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(gk), 0),
			COALESCE(SUM(lb), 0),
			COALESCE(SUM(rb), 0),
			COALESCE(SUM(mf), 0),
			COALESCE(SUM(lw), 0),
			COALESCE(SUM(rw), 0)
		FROM soccer_mod_positions
	`).Scan(
		&t.Goalkeeper, &t.LeftBack, &t.RightBack,
		&t.Midfielder, &t.LeftWing, &t.RightWing,
	); err != nil {
		return nil, fmt.Errorf("position totals: %w", err)
	}
	return &t, nil
}
