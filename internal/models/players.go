package models

// PlayerSummary is one row of the paginated player list. The point totals
// stay nullable so "no stat record yet" is distinguishable from zero.
type PlayerSummary struct {
	SteamID       string  `json:"steamid"`
	Name          string  `json:"name"`
	FirstName     *string `json:"first_name"`
	PlayTime      int64   `json:"play_time"`
	LastConnected int64   `json:"last_connected"`
	MatchPoints   *int64  `json:"match_points"`
	PublicPoints  *int64  `json:"public_points"`
}

// Pagination describes the page window returned alongside the player list.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

type PlayerListResponse struct {
	Players    []PlayerSummary `json:"players"`
	Pagination Pagination      `json:"pagination"`
}

// SearchResult is one row of a name search.
type SearchResult struct {
	SteamID     string  `json:"steamid"`
	Name        string  `json:"name"`
	FirstName   *string `json:"first_name"`
	MatchPoints *int64  `json:"match_points"`
}

type SearchResponse struct {
	Players []SearchResult `json:"players"`
}

// PlayerDetail is the base player row joined with its optional identity
// record. Identity columns are nil when the player has no whois entry.
type PlayerDetail struct {
	SteamID         string  `json:"steamid"`
	Name            string  `json:"name"`
	DisplayName     string  `json:"display_name"`
	PlayTime        int64   `json:"play_time"`
	LastConnected   int64   `json:"last_connected"`
	FirstName       *string `json:"first_name"`
	CurrentName     *string `json:"current_name"`
	Alias           *string `json:"alias"`
	FirstSeen       *int64  `json:"first_seen"`
	LastSeen        *int64  `json:"last_seen"`
	ConnectionCount *int64  `json:"connection_count"`
}

// MatchStats are the counters accumulated from moderated sessions.
type MatchStats struct {
	SteamID       string `json:"steamid"`
	Goals         int64  `json:"goals"`
	Assists       int64  `json:"assists"`
	OwnGoals      int64  `json:"own_goals"`
	Hits          int64  `json:"hits"`
	Passes        int64  `json:"passes"`
	Interceptions int64  `json:"interceptions"`
	BallLosses    int64  `json:"ball_losses"`
	Saves         int64  `json:"saves"`
	RoundsWon     int64  `json:"rounds_won"`
	RoundsLost    int64  `json:"rounds_lost"`
	Points        int64  `json:"points"`
	MVP           int64  `json:"mvp"`
	MOTM          int64  `json:"motm"`
	Matches       int64  `json:"matches"`
}

// PublicStats are the counters accumulated from unmoderated sessions.
// Same shape as MatchStats minus the matches counter.
type PublicStats struct {
	SteamID       string `json:"steamid"`
	Goals         int64  `json:"goals"`
	Assists       int64  `json:"assists"`
	OwnGoals      int64  `json:"own_goals"`
	Hits          int64  `json:"hits"`
	Passes        int64  `json:"passes"`
	Interceptions int64  `json:"interceptions"`
	BallLosses    int64  `json:"ball_losses"`
	Saves         int64  `json:"saves"`
	RoundsWon     int64  `json:"rounds_won"`
	RoundsLost    int64  `json:"rounds_lost"`
	Points        int64  `json:"points"`
	MVP           int64  `json:"mvp"`
	MOTM          int64  `json:"motm"`
}

// Positions counts sessions played at each field position.
type Positions struct {
	GK int64 `json:"gk"`
	LB int64 `json:"lb"`
	RB int64 `json:"rb"`
	MF int64 `json:"mf"`
	LW int64 `json:"lw"`
	RW int64 `json:"rw"`
}

type NameHistoryEntry struct {
	Name      string `json:"name"`
	FirstUsed int64  `json:"first_used"`
	LastUsed  int64  `json:"last_used"`
}

// CombinedTotals are derived at read time by summing both stat partitions.
// They are never persisted.
type CombinedTotals struct {
	Goals   int64 `json:"goals"`
	Assists int64 `json:"assists"`
	Saves   int64 `json:"saves"`
	Points  int64 `json:"points"`
}

// PlayerProfile is the full record for a single player. The three stat
// blocks are null when the ingestion process has not written them yet;
// NameHistory is always present, possibly empty.
type PlayerProfile struct {
	Player           PlayerDetail       `json:"player"`
	MatchStats       *MatchStats        `json:"matchStats"`
	PublicStats      *PublicStats       `json:"publicStats"`
	Positions        *Positions         `json:"positions"`
	NameHistory      []NameHistoryEntry `json:"nameHistory"`
	Totals           CombinedTotals     `json:"totals"`
	FavoritePosition string             `json:"favorite_position,omitempty"`
}
