package logic

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soccermod/stats-api/internal/models"
)

func TestSearchShortQuerySkipsStorage(t *testing.T) {
	pool := &mockPool{
		QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			t.Fatal("storage must not be queried for a short search")
			return nil, nil
		},
	}
	svc := NewPlayerService(pool)

	for _, q := range []string{"", "a", " "} {
		results, err := svc.Search(context.Background(), q, 20)
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	}
}

func TestSearchMatchesAgainstAllNameSources(t *testing.T) {
	var capturedSQL string
	var capturedArgs []any
	pool := &mockPool{
		QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			capturedSQL = sql
			capturedArgs = args
			return &fakeRows{rows: [][]any{
				{"STEAM_0:1:23", "alice", nil, int64(12)},
				{"STEAM_0:1:24", "alfred", "fred", nil},
			}}, nil
		},
	}
	svc := NewPlayerService(pool)

	results, err := svc.Search(context.Background(), "al", 20)
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, col := range []string{"p.name ILIKE", "w.current_name ILIKE", "w.alias ILIKE", "wn.name ILIKE"} {
		assert.Contains(t, capturedSQL, col)
	}
	require.Len(t, capturedArgs, 2)
	assert.Equal(t, "%al%", capturedArgs[0])
	assert.Equal(t, 20, capturedArgs[1])

	assert.Equal(t, "alice", results[0].Name)
	require.NotNil(t, results[0].MatchPoints)
	assert.Equal(t, int64(12), *results[0].MatchPoints)
	assert.Nil(t, results[0].FirstName)
	require.NotNil(t, results[1].FirstName)
	assert.Equal(t, "fred", *results[1].FirstName)
	assert.Nil(t, results[1].MatchPoints)
}

func TestListBuildsPagination(t *testing.T) {
	pool := &mockPool{
		QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			assert.Equal(t, []any{10, 10}, args)
			return &fakeRows{rows: [][]any{
				{"STEAM_0:0:1", "zidane", nil, int64(3600), int64(1700000000), int64(10), nil},
			}}, nil
		},
		QueryRowFunc: func(ctx context.Context, sql string, args ...any) pgx.Row {
			return &fakeRow{values: []any{int64(25)}}
		},
	}
	svc := NewPlayerService(pool)

	resp, err := svc.List(context.Background(), NewPageRequest(2, 10, 50))
	require.NoError(t, err)
	require.Len(t, resp.Players, 1)
	assert.Equal(t, "zidane", resp.Players[0].Name)
	assert.Equal(t, models.Pagination{Page: 2, Limit: 10, Total: 25, Pages: 3}, resp.Pagination)
}

func TestListEmptyCollection(t *testing.T) {
	pool := &mockPool{
		QueryRowFunc: func(ctx context.Context, sql string, args ...any) pgx.Row {
			return &fakeRow{values: []any{int64(0)}}
		},
	}
	svc := NewPlayerService(pool)

	resp, err := svc.List(context.Background(), NewPageRequest(1, 10, 50))
	require.NoError(t, err)
	assert.Empty(t, resp.Players)
	assert.Equal(t, int64(0), resp.Pagination.Total)
	assert.Equal(t, int64(0), resp.Pagination.Pages)
}

func TestGetUnknownPlayer(t *testing.T) {
	svc := NewPlayerService(&mockPool{}) // every QueryRow reports no rows

	profile, err := svc.Get(context.Background(), "STEAM_0:0:404")
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

// profilePool answers the five profile lookups by table name.
func profilePool(match, public, positions []any, history [][]any) *mockPool {
	return &mockPool{
		QueryRowFunc: func(ctx context.Context, sql string, args ...any) pgx.Row {
			switch {
			case strings.Contains(sql, "soccer_mod_match_stats"):
				if match == nil {
					return &fakeRow{err: pgx.ErrNoRows}
				}
				return &fakeRow{values: match}
			case strings.Contains(sql, "soccer_mod_public_stats"):
				if public == nil {
					return &fakeRow{err: pgx.ErrNoRows}
				}
				return &fakeRow{values: public}
			case strings.Contains(sql, "soccer_mod_positions"):
				if positions == nil {
					return &fakeRow{err: pgx.ErrNoRows}
				}
				return &fakeRow{values: positions}
			default: // base player + whois join
				return &fakeRow{values: []any{
					"STEAM_0:1:99", "old name", int64(7200), int64(1700000000),
					"first", "current", "The Wall", int64(1600000000), int64(1700000000), int64(42),
				}}
			}
		},
		QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			return &fakeRows{rows: history}, nil
		},
	}
}

func TestGetPlayerWithNoDependentRecords(t *testing.T) {
	svc := NewPlayerService(profilePool(nil, nil, nil, nil))

	profile, err := svc.Get(context.Background(), "STEAM_0:1:99")
	require.NoError(t, err)

	assert.Equal(t, "The Wall", profile.Player.DisplayName, "alias takes precedence")
	assert.Nil(t, profile.MatchStats)
	assert.Nil(t, profile.PublicStats)
	assert.Nil(t, profile.Positions)
	require.NotNil(t, profile.NameHistory)
	assert.Empty(t, profile.NameHistory)
	assert.Zero(t, profile.Totals)
	assert.Empty(t, profile.FavoritePosition)
}

func TestGetPlayerAssemblesProfile(t *testing.T) {
	match := []any{
		"STEAM_0:1:99", int64(10), int64(4), int64(0), int64(30), int64(120),
		int64(8), int64(11), int64(2), int64(6), int64(3),
		int64(31), int64(1), int64(0), int64(9),
	}
	positions := []any{int64(1), int64(0), int64(0), int64(7), int64(2), int64(0)}
	history := [][]any{
		{"current", int64(1690000000), int64(1700000000)},
		{"old name", int64(1600000000), int64(1689999999)},
	}
	svc := NewPlayerService(profilePool(match, nil, positions, history))

	profile, err := svc.Get(context.Background(), "STEAM_0:1:99")
	require.NoError(t, err)

	require.NotNil(t, profile.MatchStats)
	assert.Equal(t, int64(31), profile.MatchStats.Points)
	assert.Nil(t, profile.PublicStats)

	// Combined totals treat the absent public record as zero.
	assert.Equal(t, models.CombinedTotals{Goals: 10, Assists: 4, Saves: 2, Points: 31}, profile.Totals)
	assert.Equal(t, "MF", profile.FavoritePosition)

	require.Len(t, profile.NameHistory, 2)
	assert.Equal(t, "current", profile.NameHistory[0].Name)
}
