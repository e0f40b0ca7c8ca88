package models

// MatchTotals are network-wide sums over the match partition.
type MatchTotals struct {
	Goals   int64 `json:"goals"`
	Assists int64 `json:"assists"`
	Saves   int64 `json:"saves"`
	Matches int64 `json:"matches"`
}

// PublicTotals are network-wide sums over the public partition.
type PublicTotals struct {
	Goals   int64 `json:"goals"`
	Assists int64 `json:"assists"`
	Saves   int64 `json:"saves"`
}

type SummaryResponse struct {
	TotalPlayers    int64        `json:"totalPlayers"`
	ActiveLast7Days int64        `json:"activeLast7Days"`
	MatchStats      MatchTotals  `json:"matchStats"`
	PublicStats     PublicTotals `json:"publicStats"`
}

// PositionTotals sums each position counter across all players.
type PositionTotals struct {
	Goalkeeper int64 `json:"goalkeeper"`
	LeftBack   int64 `json:"left_back"`
	RightBack  int64 `json:"right_back"`
	Midfielder int64 `json:"midfielder"`
	LeftWing   int64 `json:"left_wing"`
	RightWing  int64 `json:"right_wing"`
}

type PositionsResponse struct {
	Positions PositionTotals `json:"positions"`
}
