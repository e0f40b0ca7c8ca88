package logic

import (
	"context"
	"fmt"

	"github.com/soccermod/stats-api/internal/models"
)

// Partition identifies one of the two independently tracked stat contexts.
type Partition string

const (
	PartitionMatch  Partition = "match"
	PartitionPublic Partition = "public"
)

// SortField is a ranked column validated against a fixed allow-list.
type SortField string

const (
	SortPoints  SortField = "points"
	SortGoals   SortField = "goals"
	SortAssists SortField = "assists"
	SortSaves   SortField = "saves"
	SortMatches SortField = "matches"
)

// ParseSortField maps a caller-supplied sort name onto the partition's
// allow-list. Anything unrecognized falls back to points; the permissive
// default is deliberate, not an error.
func ParseSortField(p Partition, raw string) SortField {
	switch SortField(raw) {
	case SortPoints, SortGoals, SortAssists, SortSaves:
		return SortField(raw)
	case SortMatches:
		if p == PartitionMatch {
			return SortMatches
		}
	}
	return SortPoints
}

// column maps the enum onto a fixed column literal. Caller input never
// reaches the statement text; only these literals do.
func (f SortField) column() string {
	switch f {
	case SortGoals:
		return "goals"
	case SortAssists:
		return "assists"
	case SortSaves:
		return "saves"
	case SortMatches:
		return "matches"
	default:
		return "points"
	}
}

// Metric is a combined-leaderboard metric summed across both partitions.
type Metric string

const (
	MetricGoals   Metric = "goals"
	MetricAssists Metric = "assists"
	MetricSaves   Metric = "saves"
)

// ParseMetric validates a caller-supplied metric name. Unlike sort fields
// there is no fallback; an unknown metric is not a leaderboard.
func ParseMetric(raw string) (Metric, bool) {
	switch Metric(raw) {
	case MetricGoals, MetricAssists, MetricSaves:
		return Metric(raw), true
	}
	return "", false
}

func (m Metric) column() string {
	switch m {
	case MetricAssists:
		return "assists"
	case MetricSaves:
		return "saves"
	default:
		return "goals"
	}
}

type leaderboardService struct {
	pg PgPool
}

func NewLeaderboardService(pg PgPool) LeaderboardService {
	return &leaderboardService{pg: pg}
}

// Match ranks the match partition by the validated sort field. Only rows
// with a strictly positive sort value qualify; ties break on steamid
// ascending so pages are stable across requests.
func (s *leaderboardService) Match(ctx context.Context, sort string, limit int) ([]models.MatchLeaderRow, SortField, error) {
	field := ParseSortField(PartitionMatch, sort)
	query := fmt.Sprintf(`
		SELECT
			ms.steamid, ms.goals, ms.assists, ms.own_goals, ms.hits, ms.passes,
			ms.interceptions, ms.ball_losses, ms.saves, ms.rounds_won, ms.rounds_lost,
			ms.points, ms.mvp, ms.motm, ms.matches,
			%[1]s AS name
		FROM soccer_mod_match_stats ms
		JOIN soccer_mod_players p ON p.steamid = ms.steamid
		LEFT JOIN whois_players w ON w.steamid = ms.steamid
		WHERE ms.%[2]s > 0
		ORDER BY ms.%[2]s DESC, ms.steamid ASC
		LIMIT $1
	`, displayNameExpr, field.column())

	rows, err := s.pg.Query(ctx, query, limit)
	if err != nil {
		return nil, field, fmt.Errorf("match leaderboard: %w", err)
	}
	defer rows.Close()

	entries := make([]models.MatchLeaderRow, 0, limit)
	for rows.Next() {
		var e models.MatchLeaderRow
		if err := rows.Scan(
			&e.SteamID, &e.Goals, &e.Assists, &e.OwnGoals, &e.Hits, &e.Passes,
			&e.Interceptions, &e.BallLosses, &e.Saves, &e.RoundsWon, &e.RoundsLost,
			&e.Points, &e.MVP, &e.MOTM, &e.Matches,
			&e.Name,
		); err != nil {
			return nil, field, fmt.Errorf("scan match leaderboard row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, field, fmt.Errorf("match leaderboard rows: %w", err)
	}
	return entries, field, nil
}

// Public is the public-partition counterpart of Match; the allow-list
// drops matches since the public table does not track them.
func (s *leaderboardService) Public(ctx context.Context, sort string, limit int) ([]models.PublicLeaderRow, SortField, error) {
	field := ParseSortField(PartitionPublic, sort)
	query := fmt.Sprintf(`
		SELECT
			ps.steamid, ps.goals, ps.assists, ps.own_goals, ps.hits, ps.passes,
			ps.interceptions, ps.ball_losses, ps.saves, ps.rounds_won, ps.rounds_lost,
			ps.points, ps.mvp, ps.motm,
			%[1]s AS name
		FROM soccer_mod_public_stats ps
		JOIN soccer_mod_players p ON p.steamid = ps.steamid
		LEFT JOIN whois_players w ON w.steamid = ps.steamid
		WHERE ps.%[2]s > 0
		ORDER BY ps.%[2]s DESC, ps.steamid ASC
		LIMIT $1
	`, displayNameExpr, field.column())

	rows, err := s.pg.Query(ctx, query, limit)
	if err != nil {
		return nil, field, fmt.Errorf("public leaderboard: %w", err)
	}
	defer rows.Close()

	entries := make([]models.PublicLeaderRow, 0, limit)
	for rows.Next() {
		var e models.PublicLeaderRow
		if err := rows.Scan(
			&e.SteamID, &e.Goals, &e.Assists, &e.OwnGoals, &e.Hits, &e.Passes,
			&e.Interceptions, &e.BallLosses, &e.Saves, &e.RoundsWon, &e.RoundsLost,
			&e.Points, &e.MVP, &e.MOTM,
			&e.Name,
		); err != nil {
			return nil, field, fmt.Errorf("scan public leaderboard row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, field, fmt.Errorf("public leaderboard rows: %w", err)
	}
	return entries, field, nil
}

// TopMetric ranks players by one metric summed across both partitions.
// The combined > 0 filter runs after aggregation, so a player with the
// metric in only one partition still qualifies while a player with
// neither stat record never appears.
func (s *leaderboardService) TopMetric(ctx context.Context, metric Metric, limit int) ([]models.CombinedLeaderRow, error) {
	query := fmt.Sprintf(`
		SELECT
			p.steamid,
			%[1]s AS name,
			COALESCE(ms.%[2]s, 0) AS match_total,
			COALESCE(ps.%[2]s, 0) AS public_total,
			COALESCE(ms.%[2]s, 0) + COALESCE(ps.%[2]s, 0) AS combined_total
		FROM soccer_mod_players p
		LEFT JOIN whois_players w ON w.steamid = p.steamid
		LEFT JOIN soccer_mod_match_stats ms ON ms.steamid = p.steamid
		LEFT JOIN soccer_mod_public_stats ps ON ps.steamid = p.steamid
		WHERE COALESCE(ms.%[2]s, 0) + COALESCE(ps.%[2]s, 0) > 0
		ORDER BY combined_total DESC, p.steamid ASC
		LIMIT $1
	`, displayNameExpr, metric.column())

	rows, err := s.pg.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top %s: %w", metric, err)
	}
	defer rows.Close()

	entries := make([]models.CombinedLeaderRow, 0, limit)
	for rows.Next() {
		var e models.CombinedLeaderRow
		if err := rows.Scan(&e.SteamID, &e.Name, &e.Match, &e.Public, &e.Combined); err != nil {
			return nil, fmt.Errorf("scan top %s row: %w", metric, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top %s rows: %w", metric, err)
	}
	return entries, nil
}
