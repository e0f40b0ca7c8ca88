// Seeder creates the soccer mod schema and fills it with a handful of
// sample players for local development. In production the game server mod
// owns these tables; never run this against a live database.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS soccer_mod_players (
		steamid        TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		play_time      BIGINT NOT NULL DEFAULT 0,
		last_connected BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS whois_players (
		steamid          TEXT PRIMARY KEY,
		first_name       TEXT,
		current_name     TEXT,
		alias            TEXT,
		first_seen       BIGINT,
		last_seen        BIGINT,
		connection_count BIGINT
	)`,
	`CREATE TABLE IF NOT EXISTS whois_names (
		steamid    TEXT NOT NULL,
		name       TEXT NOT NULL,
		first_used BIGINT NOT NULL,
		last_used  BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS soccer_mod_match_stats (
		steamid       TEXT PRIMARY KEY,
		goals         BIGINT NOT NULL DEFAULT 0,
		assists       BIGINT NOT NULL DEFAULT 0,
		own_goals     BIGINT NOT NULL DEFAULT 0,
		hits          BIGINT NOT NULL DEFAULT 0,
		passes        BIGINT NOT NULL DEFAULT 0,
		interceptions BIGINT NOT NULL DEFAULT 0,
		ball_losses   BIGINT NOT NULL DEFAULT 0,
		saves         BIGINT NOT NULL DEFAULT 0,
		rounds_won    BIGINT NOT NULL DEFAULT 0,
		rounds_lost   BIGINT NOT NULL DEFAULT 0,
		points        BIGINT NOT NULL DEFAULT 0,
		mvp           BIGINT NOT NULL DEFAULT 0,
		motm          BIGINT NOT NULL DEFAULT 0,
		matches       BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS soccer_mod_public_stats (
		steamid       TEXT PRIMARY KEY,
		goals         BIGINT NOT NULL DEFAULT 0,
		assists       BIGINT NOT NULL DEFAULT 0,
		own_goals     BIGINT NOT NULL DEFAULT 0,
		hits          BIGINT NOT NULL DEFAULT 0,
		passes        BIGINT NOT NULL DEFAULT 0,
		interceptions BIGINT NOT NULL DEFAULT 0,
		ball_losses   BIGINT NOT NULL DEFAULT 0,
		saves         BIGINT NOT NULL DEFAULT 0,
		rounds_won    BIGINT NOT NULL DEFAULT 0,
		rounds_lost   BIGINT NOT NULL DEFAULT 0,
		points        BIGINT NOT NULL DEFAULT 0,
		mvp           BIGINT NOT NULL DEFAULT 0,
		motm          BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS soccer_mod_positions (
		steamid TEXT PRIMARY KEY,
		gk BIGINT NOT NULL DEFAULT 0,
		lb BIGINT NOT NULL DEFAULT 0,
		rb BIGINT NOT NULL DEFAULT 0,
		mf BIGINT NOT NULL DEFAULT 0,
		lw BIGINT NOT NULL DEFAULT 0,
		rw BIGINT NOT NULL DEFAULT 0
	)`,
}

type samplePlayer struct {
	steamid string
	name    string
	alias   string
	goals   int
	assists int
	saves   int
	points  int
	pos     [6]int // gk lb rb mf lw rw
}

var samples = []samplePlayer{
	{"STEAM_0:1:111111", "el fenomeno", "", 42, 18, 2, 160, [6]int{0, 1, 0, 4, 12, 9}},
	{"STEAM_0:0:222222", "brick wall", "The Wall", 1, 3, 210, 95, [6]int{30, 2, 1, 0, 0, 0}},
	{"STEAM_0:1:333333", "midfield general", "", 12, 40, 8, 130, [6]int{0, 3, 2, 25, 1, 1}},
	{"STEAM_0:0:444444", "fresh meat", "", 0, 0, 0, 0, [6]int{0, 0, 0, 0, 0, 0}},
}

func main() {
	_ = godotenv.Load()

	url := os.Getenv("POSTGRES_URL")
	if url == "" {
		log.Fatal("POSTGRES_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer conn.Close(ctx)

	for _, stmt := range schema {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			log.Fatalf("create schema: %v", err)
		}
	}

	now := time.Now().Unix()
	for i, p := range samples {
		lastConnected := now - int64(i)*86400

		_, err := conn.Exec(ctx, `
			INSERT INTO soccer_mod_players (steamid, name, play_time, last_connected)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (steamid) DO UPDATE SET last_connected = EXCLUDED.last_connected
		`, p.steamid, p.name, int64(3600*(i+1)*7), lastConnected)
		if err != nil {
			log.Fatalf("seed player %s: %v", p.steamid, err)
		}

		_, err = conn.Exec(ctx, `
			INSERT INTO whois_players (steamid, first_name, current_name, alias, first_seen, last_seen, connection_count)
			VALUES ($1, $2, $2, NULLIF($3, ''), $4, $5, $6)
			ON CONFLICT (steamid) DO NOTHING
		`, p.steamid, p.name, p.alias, now-90*86400, lastConnected, 25+i)
		if err != nil {
			log.Fatalf("seed whois %s: %v", p.steamid, err)
		}

		_, err = conn.Exec(ctx, `
			INSERT INTO whois_names (steamid, name, first_used, last_used)
			VALUES ($1, $2, $3, $4)
		`, p.steamid, p.name, now-90*86400, lastConnected)
		if err != nil {
			log.Fatalf("seed names %s: %v", p.steamid, err)
		}

		// The last sample stays a bare player row so the "no data yet"
		// paths are exercised too.
		if p.points == 0 {
			continue
		}

		_, err = conn.Exec(ctx, `
			INSERT INTO soccer_mod_match_stats (steamid, goals, assists, saves, points, matches)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (steamid) DO NOTHING
		`, p.steamid, p.goals, p.assists, p.saves, p.points, 10+i)
		if err != nil {
			log.Fatalf("seed match stats %s: %v", p.steamid, err)
		}

		_, err = conn.Exec(ctx, `
			INSERT INTO soccer_mod_public_stats (steamid, goals, assists, saves, points)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (steamid) DO NOTHING
		`, p.steamid, p.goals/2, p.assists/2, p.saves/2, p.points/2)
		if err != nil {
			log.Fatalf("seed public stats %s: %v", p.steamid, err)
		}

		_, err = conn.Exec(ctx, `
			INSERT INTO soccer_mod_positions (steamid, gk, lb, rb, mf, lw, rw)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (steamid) DO NOTHING
		`, p.steamid, p.pos[0], p.pos[1], p.pos[2], p.pos[3], p.pos[4], p.pos[5])
		if err != nil {
			log.Fatalf("seed positions %s: %v", p.steamid, err)
		}
	}

	log.Printf("seeded %d players", len(samples))
}
