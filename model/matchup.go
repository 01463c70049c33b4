package model

// Pairing is one submitted matchup: two team ids facing each other in a week.
type Pairing struct {
	TeamA string
	TeamB string
}

// WeekMatchups maps each team id to its opponent for one week. The map is
// symmetric: if A points to B then B points to A.
type WeekMatchups map[string]string

// Matchups holds the pairings for every week that has been scheduled.
type Matchups map[string]WeekMatchups
