package model

import (
	"strings"
	"time"
)

// Result is a single week's outcome for a team.
type Result string

const (
	ResultWin  Result = "W"
	ResultLoss Result = "L"
)

// ParseResult normalizes a raw result value. Input is case-insensitive and
// stored uppercase. The bool is false for anything other than a win or loss.
func ParseResult(raw string) (Result, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "W":
		return ResultWin, true
	case "L":
		return ResultLoss, true
	default:
		return "", false
	}
}

type Team struct {
	ID      string
	Name    string
	Lineups map[string]Lineup // week key -> lineup, only explicitly set weeks
	Record  map[string]Result // week key -> W/L, only decided weeks
	Created time.Time
	Updated time.Time
}

// CurrentLineup returns the lineup for the lowest-numbered week that has one,
// or nil when no lineups are stored. It backs the single-lineup field that
// older clients still read on team responses.
func (t *Team) CurrentLineup() Lineup {
	var best Lineup
	bestNum := 0
	for week, lineup := range t.Lineups {
		if len(lineup) == 0 {
			continue
		}
		num, ok := WeekNumber(week)
		if !ok {
			continue
		}
		if best == nil || num < bestNum {
			best = lineup
			bestNum = num
		}
	}
	return best
}
