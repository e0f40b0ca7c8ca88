package logic

import "github.com/soccermod/stats-api/internal/models"

// displayNameExpr resolves the surfaced name in SQL with the fixed
// precedence alias > current name > base name. Empty strings count as
// absent, same as ResolveDisplayName. Every query that surfaces a name
// uses this one expression; it assumes the aliases p (players) and
// w (whois_players).
const displayNameExpr = `COALESCE(NULLIF(w.alias, ''), NULLIF(w.current_name, ''), p.name)`

// ResolveDisplayName applies the alias > current name > base name
// precedence for code paths that already hold the identity columns.
func ResolveDisplayName(base string, current, alias *string) string {
	if alias != nil && *alias != "" {
		return *alias
	}
	if current != nil && *current != "" {
		return *current
	}
	return base
}

// FavoritePosition returns the label of the most-played position, or ""
// when the player has no position record or no recorded sessions. The
// first position wins ties, matching the order gk, lb, rb, mf, lw, rw.
func FavoritePosition(p *models.Positions) string {
	if p == nil {
		return ""
	}
	counts := []struct {
		label string
		n     int64
	}{
		{"GK", p.GK},
		{"LB", p.LB},
		{"RB", p.RB},
		{"MF", p.MF},
		{"LW", p.LW},
		{"RW", p.RW},
	}
	best := counts[0]
	for _, c := range counts[1:] {
		if c.n > best.n {
			best = c
		}
	}
	if best.n <= 0 {
		return ""
	}
	return best.label
}
