package model

import "time"

type Player struct {
	ID       string
	Name     string
	TeamID   string // empty when the player is unassigned
	Position Slot   // empty when no default-slot hint is set
	Points   map[string]float64 // week key -> score, only explicitly set weeks
	Created  time.Time
	Updated  time.Time
}

// WeekPoints returns the player's score for a week, zero when unset.
func (p *Player) WeekPoints(week string) float64 {
	return p.Points[week]
}
