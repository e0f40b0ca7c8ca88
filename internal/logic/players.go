package logic

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/soccermod/stats-api/internal/models"
)

// minSearchLength short-circuits searches too broad to be useful; they
// return an empty set without touching storage.
const minSearchLength = 2

const playerListQuery = `
	SELECT
		p.steamid,
		` + displayNameExpr + ` AS name,
		w.first_name,
		p.play_time,
		p.last_connected,
		ms.points AS match_points,
		ps.points AS public_points
	FROM soccer_mod_players p
	LEFT JOIN whois_players w ON w.steamid = p.steamid
	LEFT JOIN soccer_mod_match_stats ms ON ms.steamid = p.steamid
	LEFT JOIN soccer_mod_public_stats ps ON ps.steamid = p.steamid
	ORDER BY p.last_connected DESC, p.steamid ASC
	LIMIT $1 OFFSET $2
`

const playerSearchQuery = `
	SELECT DISTINCT
		p.steamid,
		` + displayNameExpr + ` AS name,
		w.first_name,
		ms.points AS match_points
	FROM soccer_mod_players p
	LEFT JOIN whois_players w ON w.steamid = p.steamid
	LEFT JOIN whois_names wn ON wn.steamid = p.steamid
	LEFT JOIN soccer_mod_match_stats ms ON ms.steamid = p.steamid
	WHERE p.name ILIKE $1
	   OR w.current_name ILIKE $1
	   OR w.alias ILIKE $1
	   OR wn.name ILIKE $1
	ORDER BY p.steamid ASC
	LIMIT $2
`

const playerDetailQuery = `
	SELECT
		p.steamid,
		p.name,
		p.play_time,
		p.last_connected,
		w.first_name,
		w.current_name,
		w.alias,
		w.first_seen,
		w.last_seen,
		w.connection_count
	FROM soccer_mod_players p
	LEFT JOIN whois_players w ON w.steamid = p.steamid
	WHERE p.steamid = $1
`

type playerService struct {
	pg PgPool
}

func NewPlayerService(pg PgPool) PlayerService {
	return &playerService{pg: pg}
}

// List returns one page of players ordered by last connection, newest
// first, along with live pagination metadata.
func (s *playerService) List(ctx context.Context, page PageRequest) (*models.PlayerListResponse, error) {
	rows, err := s.pg.Query(ctx, playerListQuery, page.Limit, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	players := make([]models.PlayerSummary, 0, page.Limit)
	for rows.Next() {
		var p models.PlayerSummary
		if err := rows.Scan(
			&p.SteamID, &p.Name, &p.FirstName, &p.PlayTime, &p.LastConnected,
			&p.MatchPoints, &p.PublicPoints,
		); err != nil {
			return nil, fmt.Errorf("scan player row: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("player rows: %w", err)
	}

	var total int64
	if err := s.pg.QueryRow(ctx, `SELECT COUNT(*) FROM soccer_mod_players`).Scan(&total); err != nil {
		return nil, fmt.Errorf("count players: %w", err)
	}

	return &models.PlayerListResponse{
		Players: players,
		Pagination: models.Pagination{
			Page:  page.Page,
			Limit: page.Limit,
			Total: total,
			Pages: Pages(total, page.Limit),
		},
	}, nil
}

// Search matches the query case-insensitively against the base name, the
// current name, the operator alias and every historical name. Queries
// shorter than two characters return an empty set without a storage
// round-trip.
func (s *playerService) Search(ctx context.Context, q string, limit int) ([]models.SearchResult, error) {
	if utf8.RuneCountInString(q) < minSearchLength {
		return []models.SearchResult{}, nil
	}

	pattern := "%" + q + "%"
	rows, err := s.pg.Query(ctx, playerSearchQuery, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}
	defer rows.Close()

	results := make([]models.SearchResult, 0, limit)
	for rows.Next() {
		var r models.SearchResult
		if err := rows.Scan(&r.SteamID, &r.Name, &r.FirstName, &r.MatchPoints); err != nil {
			return nil, fmt.Errorf("scan search row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search rows: %w", err)
	}
	return results, nil
}

// Get assembles a full profile from five independent lookups keyed by the
// same steamid. Only the base row is mandatory; the four dependent
// lookups run concurrently and render as null/empty when absent. The
// lookups are not one snapshot, so a concurrently ingesting player may
// read partially updated.
func (s *playerService) Get(ctx context.Context, steamID string) (*models.PlayerProfile, error) {
	var d models.PlayerDetail
	err := s.pg.QueryRow(ctx, playerDetailQuery, steamID).Scan(
		&d.SteamID, &d.Name, &d.PlayTime, &d.LastConnected,
		&d.FirstName, &d.CurrentName, &d.Alias,
		&d.FirstSeen, &d.LastSeen, &d.ConnectionCount,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("player lookup: %w", err)
	}
	d.DisplayName = ResolveDisplayName(d.Name, d.CurrentName, d.Alias)

	profile := &models.PlayerProfile{
		Player:      d,
		NameHistory: []models.NameHistoryEntry{},
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ms, err := s.matchStats(ctx, steamID)
		if err != nil {
			return fmt.Errorf("match stats: %w", err)
		}
		profile.MatchStats = ms
		return nil
	})
	g.Go(func() error {
		ps, err := s.publicStats(ctx, steamID)
		if err != nil {
			return fmt.Errorf("public stats: %w", err)
		}
		profile.PublicStats = ps
		return nil
	})
	g.Go(func() error {
		pos, err := s.positions(ctx, steamID)
		if err != nil {
			return fmt.Errorf("positions: %w", err)
		}
		profile.Positions = pos
		return nil
	})
	g.Go(func() error {
		history, err := s.nameHistory(ctx, steamID)
		if err != nil {
			return fmt.Errorf("name history: %w", err)
		}
		profile.NameHistory = history
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	profile.Totals = CombineTotals(profile.MatchStats, profile.PublicStats)
	profile.FavoritePosition = FavoritePosition(profile.Positions)
	return profile, nil
}

func (s *playerService) matchStats(ctx context.Context, steamID string) (*models.MatchStats, error) {
	var m models.MatchStats
	err := s.pg.QueryRow(ctx, `
		SELECT steamid, goals, assists, own_goals, hits, passes, interceptions,
		       ball_losses, saves, rounds_won, rounds_lost, points, mvp, motm, matches
		FROM soccer_mod_match_stats
		WHERE steamid = $1
	`, steamID).Scan(
		&m.SteamID, &m.Goals, &m.Assists, &m.OwnGoals, &m.Hits, &m.Passes,
		&m.Interceptions, &m.BallLosses, &m.Saves, &m.RoundsWon, &m.RoundsLost,
		&m.Points, &m.MVP, &m.MOTM, &m.Matches,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *playerService) publicStats(ctx context.Context, steamID string) (*models.PublicStats, error) {
	var p models.PublicStats
	err := s.pg.QueryRow(ctx, `
		SELECT steamid, goals, assists, own_goals, hits, passes, interceptions,
		       ball_losses, saves, rounds_won, rounds_lost, points, mvp, motm
		FROM soccer_mod_public_stats
		WHERE steamid = $1
	`, steamID).Scan(
		&p.SteamID, &p.Goals, &p.Assists, &p.OwnGoals, &p.Hits, &p.Passes,
		&p.Interceptions, &p.BallLosses, &p.Saves, &p.RoundsWon, &p.RoundsLost,
		&p.Points, &p.MVP, &p.MOTM,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *playerService) positions(ctx context.Context, steamID string) (*models.Positions, error) {
	var pos models.Positions
	err := s.pg.QueryRow(ctx, `
		SELECT gk, lb, rb, mf, lw, rw
		FROM soccer_mod_positions
		WHERE steamid = $1
	`, steamID).Scan(&pos.GK, &pos.LB, &pos.RB, &pos.MF, &pos.LW, &pos.RW)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pos, nil
}

func (s *playerService) nameHistory(ctx context.Context, steamID string) ([]models.NameHistoryEntry, error) {
	rows, err := s.pg.Query(ctx, `
		SELECT name, first_used, last_used
		FROM whois_names
		WHERE steamid = $1
		ORDER BY last_used DESC
	`, steamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]models.NameHistoryEntry, 0)
	for rows.Next() {
		var e models.NameHistoryEntry
		if err := rows.Scan(&e.Name, &e.FirstUsed, &e.LastUsed); err != nil {
			return nil, err
		}
		history = append(history, e)
	}
	return history, rows.Err()
}
