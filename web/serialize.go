package web

import (
	"github.com/JoshuaNogues/fantasy-basic/model"
)

// The wire shapes below are what existing clients already parse, so field
// names stay camelCase and maps are never null.

type errorResponse struct {
	Message string `json:"message"`
}

type teamResponse struct {
	ID      string                       `json:"id"`
	Name    string                       `json:"name"`
	Lineup  map[string]string            `json:"lineup"`
	Lineups map[string]map[string]string `json:"lineups"`
	Record  map[string]string            `json:"record"`
}

// newTeamResponse flattens a team for the wire. The single lineup field is
// derived from the lowest-numbered stored week; weeks whose lineup is empty
// are dropped entirely.
func newTeamResponse(t *model.Team) teamResponse {
	lineups := make(map[string]map[string]string, len(t.Lineups))
	for week, lineup := range t.Lineups {
		if len(lineup) == 0 {
			continue
		}
		lineups[week] = lineupWire(lineup)
	}

	record := make(map[string]string, len(t.Record))
	for week, result := range t.Record {
		record[week] = string(result)
	}

	return teamResponse{
		ID:      t.ID,
		Name:    t.Name,
		Lineup:  lineupWire(t.CurrentLineup()),
		Lineups: lineups,
		Record:  record,
	}
}

func lineupWire(lineup model.Lineup) map[string]string {
	wire := make(map[string]string, len(lineup))
	for slot, playerID := range lineup {
		wire[string(slot)] = playerID
	}
	return wire
}

type playerResponse struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	TeamID   string             `json:"teamId,omitempty"`
	Position string             `json:"position,omitempty"`
	Points   map[string]float64 `json:"points"`
}

func newPlayerResponse(p *model.Player) playerResponse {
	points := p.Points
	if points == nil {
		points = map[string]float64{}
	}
	return playerResponse{
		ID:       p.ID,
		Name:     p.Name,
		TeamID:   p.TeamID,
		Position: string(p.Position),
		Points:   points,
	}
}

type currentWeekResponse struct {
	CurrentWeek string `json:"currentWeek"`
}

type scorerResponse struct {
	PlayerID string  `json:"playerId"`
	Name     string  `json:"name"`
	Points   float64 `json:"points"`
}

type teamScoreResponse struct {
	TeamID        string          `json:"teamId"`
	Name          string          `json:"name"`
	StarterTotal  float64         `json:"starterTotal"`
	LeadingScorer *scorerResponse `json:"leadingScorer"`
}

func newTeamScoreResponse(s *model.TeamScore) teamScoreResponse {
	resp := teamScoreResponse{
		TeamID:       s.TeamID,
		Name:         s.Name,
		StarterTotal: s.StarterTotal,
	}
	if s.LeadingScorer != nil {
		resp.LeadingScorer = &scorerResponse{
			PlayerID: s.LeadingScorer.PlayerID,
			Name:     s.LeadingScorer.Name,
			Points:   s.LeadingScorer.Points,
		}
	}
	return resp
}

type standingResponse struct {
	TeamID     string  `json:"teamId"`
	Name       string  `json:"name"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	TotalGames int     `json:"totalGames"`
	WinPct     float64 `json:"winPct"`
	Rank       int     `json:"rank"`
	Streak     string  `json:"streak,omitempty"`
}

func newStandingResponse(s *model.TeamStanding) standingResponse {
	return standingResponse{
		TeamID:     s.TeamID,
		Name:       s.Name,
		Wins:       s.Wins,
		Losses:     s.Losses,
		TotalGames: s.TotalGames,
		WinPct:     s.WinPct,
		Rank:       s.Rank,
		Streak:     s.Streak,
	}
}

type opponentResponse struct {
	TeamID       string  `json:"teamId"`
	Name         string  `json:"name"`
	StarterTotal float64 `json:"starterTotal"`
}

type summaryResponse struct {
	TeamID       string            `json:"teamId"`
	Week         string            `json:"week"`
	Wins         int               `json:"wins"`
	Losses       int               `json:"losses"`
	Result       string            `json:"result,omitempty"`
	StarterTotal float64           `json:"starterTotal"`
	Opponent     *opponentResponse `json:"opponent"`
}

func newSummaryResponse(s *model.TeamSummary) summaryResponse {
	resp := summaryResponse{
		TeamID:       s.TeamID,
		Week:         s.Week,
		Wins:         s.Wins,
		Losses:       s.Losses,
		Result:       string(s.Result),
		StarterTotal: s.StarterTotal,
	}
	if s.Opponent != nil {
		resp.Opponent = &opponentResponse{
			TeamID:       s.Opponent.TeamID,
			Name:         s.Opponent.Name,
			StarterTotal: s.Opponent.StarterTotal,
		}
	}
	return resp
}

func matchupsWire(m model.Matchups) map[string]map[string]string {
	wire := make(map[string]map[string]string, len(m))
	for week, pairings := range m {
		wire[week] = weekMatchupsWire(pairings)
	}
	return wire
}

func weekMatchupsWire(m model.WeekMatchups) map[string]string {
	wire := make(map[string]string, len(m))
	for teamID, opponentID := range m {
		wire[teamID] = opponentID
	}
	return wire
}
