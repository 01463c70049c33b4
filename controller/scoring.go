package controller

import (
	"fmt"
	"slices"

	"github.com/JoshuaNogues/fantasy-basic/model"
)

// CumulativeRecord counts wins and losses from week 1 through the given week
// only. Results already recorded for later weeks are excluded, which is what
// a "record as of week N" view wants.
func CumulativeRecord(record map[string]model.Result, week string) (wins, losses int) {
	n, ok := model.WeekNumber(week)
	if !ok {
		return 0, 0
	}
	for i := 1; i <= n; i++ {
		switch record[fmt.Sprintf("week%d", i)] {
		case model.ResultWin:
			wins++
		case model.ResultLoss:
			losses++
		}
	}
	return wins, losses
}

// StreakLabel reports the trailing run of identical results ending at the
// most recent recorded week, e.g. "W3". Empty when nothing is recorded.
func StreakLabel(record map[string]model.Result) string {
	type entry struct {
		num    int
		result model.Result
	}

	entries := make([]entry, 0, len(record))
	for week, result := range record {
		num, ok := model.WeekNumber(week)
		if !ok {
			continue
		}
		entries = append(entries, entry{num: num, result: result})
	}
	if len(entries) == 0 {
		return ""
	}

	slices.SortFunc(entries, func(a, b entry) int {
		return a.num - b.num
	})

	last := entries[len(entries)-1].result
	count := 0
	for i := len(entries) - 1; i >= 0 && entries[i].result == last; i-- {
		count++
	}
	return fmt.Sprintf("%s%d", last, count)
}

// DefaultLineup fills each slot with the first unused player whose position
// matches, then fills any still-empty slots with the first unused player of
// any position. Deterministic given roster order; each player starts at most
// once.
func DefaultLineup(roster []model.Player) model.Lineup {
	lineup := make(model.Lineup)
	used := make(map[string]bool)

	for _, slot := range model.Slots {
		for i := range roster {
			p := &roster[i]
			if p.Position == slot && !used[p.ID] {
				lineup[slot] = p.ID
				used[p.ID] = true
				break
			}
		}
	}

	for _, slot := range model.Slots {
		if _, ok := lineup[slot]; ok {
			continue
		}
		for i := range roster {
			p := &roster[i]
			if !used[p.ID] {
				lineup[slot] = p.ID
				used[p.ID] = true
				break
			}
		}
	}

	return lineup
}

// ResolveLineup picks the lineup to score a week with: the exact week if one
// was set, otherwise the nearest earlier week's lineup, otherwise the latest
// stored one, otherwise a default lineup built from the roster.
func ResolveLineup(lineups map[string]model.Lineup, roster []model.Player, week string) model.Lineup {
	if lineup, ok := lineups[week]; ok && len(lineup) > 0 {
		return lineup
	}

	if target, ok := model.WeekNumber(week); ok {
		type entry struct {
			num    int
			lineup model.Lineup
		}
		entries := make([]entry, 0, len(lineups))
		for weekKey, lineup := range lineups {
			num, ok := model.WeekNumber(weekKey)
			if !ok || len(lineup) == 0 {
				continue
			}
			entries = append(entries, entry{num: num, lineup: lineup})
		}
		slices.SortFunc(entries, func(a, b entry) int {
			return b.num - a.num
		})

		for _, e := range entries {
			if e.num <= target {
				return e.lineup
			}
		}
		if len(entries) > 0 {
			return entries[0].lineup
		}
	}

	if len(roster) > 0 {
		return DefaultLineup(roster)
	}
	return model.Lineup{}
}

// StarterTotal sums the points the lineup's starters scored in a week.
// Starters without a score for the week count as zero, as do lineup entries
// that no longer match a rostered player.
func StarterTotal(lineup model.Lineup, roster []model.Player, week string) float64 {
	byID := playersByID(roster)
	total := 0.0
	for _, slot := range model.Slots {
		id, ok := lineup[slot]
		if !ok {
			continue
		}
		p, ok := byID[id]
		if !ok {
			continue
		}
		total += p.WeekPoints(week)
	}
	return total
}

// LeadingScorer returns the starter with the strictly highest score for the
// week. Ties go to the earlier slot in canonical order. No starters means no
// leading scorer and a reported value of zero.
func LeadingScorer(lineup model.Lineup, roster []model.Player, week string) (*model.Player, float64) {
	byID := playersByID(roster)
	var leader *model.Player
	best := 0.0
	for _, slot := range model.Slots {
		id, ok := lineup[slot]
		if !ok {
			continue
		}
		p, ok := byID[id]
		if !ok {
			continue
		}
		pts := p.WeekPoints(week)
		if leader == nil || pts > best {
			leader = p
			best = pts
		}
	}
	if leader == nil {
		return nil, 0
	}
	return leader, best
}

func playersByID(roster []model.Player) map[string]*model.Player {
	byID := make(map[string]*model.Player, len(roster))
	for i := range roster {
		byID[roster[i].ID] = &roster[i]
	}
	return byID
}
