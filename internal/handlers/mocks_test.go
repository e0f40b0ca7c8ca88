package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/soccermod/stats-api/internal/config"
	"github.com/soccermod/stats-api/internal/logic"
	"github.com/soccermod/stats-api/internal/models"
)

func newTestHandler(players logic.PlayerService, boards logic.LeaderboardService, stats logic.ServerStatsService) *Handler {
	return &Handler{
		logger: zap.NewNop().Sugar(),
		defaults: config.Defaults{
			PageSize:         50,
			SearchLimit:      20,
			LeaderboardLimit: 50,
			MetricLimit:      20,
		},
		players:     players,
		leaderboard: boards,
		serverStats: stats,
	}
}

// Mocks

type MockPlayerService struct {
	ListFunc   func(ctx context.Context, page logic.PageRequest) (*models.PlayerListResponse, error)
	SearchFunc func(ctx context.Context, q string, limit int) ([]models.SearchResult, error)
	GetFunc    func(ctx context.Context, steamID string) (*models.PlayerProfile, error)
}

func (m *MockPlayerService) List(ctx context.Context, page logic.PageRequest) (*models.PlayerListResponse, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page)
	}
	return &models.PlayerListResponse{Players: []models.PlayerSummary{}}, nil
}

func (m *MockPlayerService) Search(ctx context.Context, q string, limit int) ([]models.SearchResult, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, q, limit)
	}
	return []models.SearchResult{}, nil
}

func (m *MockPlayerService) Get(ctx context.Context, steamID string) (*models.PlayerProfile, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, steamID)
	}
	return nil, logic.ErrPlayerNotFound
}

type MockLeaderboardService struct {
	MatchFunc     func(ctx context.Context, sort string, limit int) ([]models.MatchLeaderRow, logic.SortField, error)
	PublicFunc    func(ctx context.Context, sort string, limit int) ([]models.PublicLeaderRow, logic.SortField, error)
	TopMetricFunc func(ctx context.Context, metric logic.Metric, limit int) ([]models.CombinedLeaderRow, error)
}

func (m *MockLeaderboardService) Match(ctx context.Context, sort string, limit int) ([]models.MatchLeaderRow, logic.SortField, error) {
	if m.MatchFunc != nil {
		return m.MatchFunc(ctx, sort, limit)
	}
	return []models.MatchLeaderRow{}, logic.SortPoints, nil
}

func (m *MockLeaderboardService) Public(ctx context.Context, sort string, limit int) ([]models.PublicLeaderRow, logic.SortField, error) {
	if m.PublicFunc != nil {
		return m.PublicFunc(ctx, sort, limit)
	}
	return []models.PublicLeaderRow{}, logic.SortPoints, nil
}

func (m *MockLeaderboardService) TopMetric(ctx context.Context, metric logic.Metric, limit int) ([]models.CombinedLeaderRow, error) {
	if m.TopMetricFunc != nil {
		return m.TopMetricFunc(ctx, metric, limit)
	}
	return []models.CombinedLeaderRow{}, nil
}

type MockServerStatsService struct {
	SummaryFunc        func(ctx context.Context) (*models.SummaryResponse, error)
	PositionTotalsFunc func(ctx context.Context) (*models.PositionTotals, error)
}

func (m *MockServerStatsService) Summary(ctx context.Context) (*models.SummaryResponse, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx)
	}
	return &models.SummaryResponse{}, nil
}

func (m *MockServerStatsService) PositionTotals(ctx context.Context) (*models.PositionTotals, error) {
	if m.PositionTotalsFunc != nil {
		return m.PositionTotalsFunc(ctx)
	}
	return &models.PositionTotals{}, nil
}
