package model

// TeamStanding is one row of the league table.
type TeamStanding struct {
	TeamID     string
	Name       string
	Wins       int
	Losses     int
	TotalGames int
	WinPct     float64
	Rank       int
	Streak     string // e.g. "W3", empty when no games are decided
}

// TeamScore is one team's scoreboard entry for a single week.
type TeamScore struct {
	TeamID        string
	Name          string
	StarterTotal  float64
	LeadingScorer *ScorerInfo // nil when the team has no starters
}

// ScorerInfo identifies the top starter in a team's lineup for a week.
type ScorerInfo struct {
	PlayerID string
	Name     string
	Points   float64
}

// TeamSummary is the per-team weekly view: cumulative record up to the week,
// the week's result, and starter totals for the team and its opponent.
type TeamSummary struct {
	TeamID       string
	Week         string
	Wins         int
	Losses       int
	Result       Result // empty when no result is recorded for the week
	StarterTotal float64
	Opponent     *OpponentSummary // nil when no matchup is scheduled
}

type OpponentSummary struct {
	TeamID       string
	Name         string
	StarterTotal float64
}
