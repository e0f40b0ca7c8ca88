package models

// MatchLeaderRow is a match-partition leaderboard entry: the full stat row
// plus the resolved display name.
type MatchLeaderRow struct {
	MatchStats
	Name string `json:"name"`
}

// PublicLeaderRow is a public-partition leaderboard entry.
type PublicLeaderRow struct {
	PublicStats
	Name string `json:"name"`
}

type MatchLeaderboardResponse struct {
	Players []MatchLeaderRow `json:"players"`
	Sort    string           `json:"sort"`
}

type PublicLeaderboardResponse struct {
	Players []PublicLeaderRow `json:"players"`
	Sort    string            `json:"sort"`
}

// CombinedLeaderRow breaks one metric down by source partition. Key names
// are the same for every metric; the metric itself is echoed in the
// response envelope.
type CombinedLeaderRow struct {
	SteamID  string `json:"steamid"`
	Name     string `json:"name"`
	Match    int64  `json:"match_total"`
	Public   int64  `json:"public_total"`
	Combined int64  `json:"combined_total"`
}

type CombinedLeaderboardResponse struct {
	Metric  string              `json:"metric"`
	Players []CombinedLeaderRow `json:"players"`
}
