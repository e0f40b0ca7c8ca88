package handlers

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/soccermod/stats-api/internal/config"
	"github.com/soccermod/stats-api/internal/logic"
)

type Config struct {
	Postgres *pgxpool.Pool
	Logger   *zap.Logger
	Defaults config.Defaults
	// Services
	Players     logic.PlayerService
	Leaderboard logic.LeaderboardService
	ServerStats logic.ServerStatsService
}

type Handler struct {
	pg          *pgxpool.Pool
	logger      *zap.SugaredLogger
	defaults    config.Defaults
	players     logic.PlayerService
	leaderboard logic.LeaderboardService
	serverStats logic.ServerStatsService
}

func New(cfg Config) *Handler {
	return &Handler{
		pg:          cfg.Postgres,
		logger:      cfg.Logger.Sugar(),
		defaults:    cfg.Defaults,
		players:     cfg.Players,
		leaderboard: cfg.Leaderboard,
		serverStats: cfg.ServerStats,
	}
}
