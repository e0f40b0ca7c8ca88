package logic

import "github.com/soccermod/stats-api/internal/models"

// CombineTotals sums the two stat partitions at read time. A missing
// record counts as zero; a player with neither record combines to all
// zeroes.
func CombineTotals(match *models.MatchStats, public *models.PublicStats) models.CombinedTotals {
	var t models.CombinedTotals
	if match != nil {
		t.Goals += match.Goals
		t.Assists += match.Assists
		t.Saves += match.Saves
		t.Points += match.Points
	}
	if public != nil {
		t.Goals += public.Goals
		t.Assists += public.Assists
		t.Saves += public.Saves
		t.Points += public.Points
	}
	return t
}
