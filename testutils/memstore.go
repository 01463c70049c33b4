package testutils

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/JoshuaNogues/fantasy-basic/db"
	"github.com/JoshuaNogues/fantasy-basic/model"
)

// MemStore is an in-memory db.Store used by controller and web tests so they
// don't need a running database. It copies data in and out, so tests can
// mutate what they get back without corrupting the store.
type MemStore struct {
	mu          sync.Mutex
	teams       []model.Team
	players     []model.Player
	currentWeek string
	matchups    model.Matchups
	nextID      int
}

func NewMemStore() *MemStore {
	return &MemStore{
		matchups: make(model.Matchups),
	}
}

// SeedTeam inserts a team with a known id and returns it.
func (s *MemStore) SeedTeam(t model.Team) model.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == "" {
		t.ID = s.generateID("team")
	}
	if t.Lineups == nil {
		t.Lineups = make(map[string]model.Lineup)
	}
	if t.Record == nil {
		t.Record = make(map[string]model.Result)
	}
	s.teams = append(s.teams, copyTeam(&t))
	return t
}

// SeedPlayer inserts a player with a known id and returns it.
func (s *MemStore) SeedPlayer(p model.Player) model.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = s.generateID("player")
	}
	if p.Points == nil {
		p.Points = make(map[string]float64)
	}
	s.players = append(s.players, copyPlayer(&p))
	return p
}

func (s *MemStore) ListTeams(ctx context.Context) ([]model.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	teams := make([]model.Team, 0, len(s.teams))
	for i := range s.teams {
		teams = append(teams, copyTeam(&s.teams[i]))
	}
	return teams, nil
}

func (s *MemStore) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.findTeam(id)
	if t == nil {
		return nil, db.ErrTeamNotFound
	}
	copied := copyTeam(t)
	return &copied, nil
}

func (s *MemStore) AddTeam(ctx context.Context, name string) (*model.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	t := model.Team{
		ID:      s.generateID("team"),
		Name:    name,
		Lineups: make(map[string]model.Lineup),
		Record:  make(map[string]model.Result),
		Created: now,
		Updated: now,
	}
	s.teams = append(s.teams, t)
	copied := copyTeam(&t)
	return &copied, nil
}

func (s *MemStore) SaveLineup(ctx context.Context, teamID, week string, lineup model.Lineup) (*model.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.findTeam(teamID)
	if t == nil {
		return nil, db.ErrTeamNotFound
	}
	if len(lineup) == 0 {
		delete(t.Lineups, week)
	} else {
		t.Lineups[week] = copyLineup(lineup)
	}
	copied := copyTeam(t)
	return &copied, nil
}

func (s *MemStore) SaveRecord(ctx context.Context, teamID, week string, result model.Result) (*model.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.findTeam(teamID)
	if t == nil {
		return nil, db.ErrTeamNotFound
	}
	t.Record[week] = result
	copied := copyTeam(t)
	return &copied, nil
}

func (s *MemStore) ListPlayers(ctx context.Context, teamID string) ([]model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	players := make([]model.Player, 0, len(s.players))
	for i := range s.players {
		if teamID != "" && s.players[i].TeamID != teamID {
			continue
		}
		players = append(players, copyPlayer(&s.players[i]))
	}
	return players, nil
}

func (s *MemStore) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findPlayer(id)
	if p == nil {
		return nil, db.ErrPlayerNotFound
	}
	copied := copyPlayer(p)
	return &copied, nil
}

func (s *MemStore) AddPlayer(ctx context.Context, p *model.Player) (*model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	stored := copyPlayer(p)
	if stored.ID == "" {
		stored.ID = s.generateID("player")
	}
	if stored.Points == nil {
		stored.Points = make(map[string]float64)
	}
	stored.Created = now
	stored.Updated = now
	s.players = append(s.players, stored)
	copied := copyPlayer(&stored)
	return &copied, nil
}

func (s *MemStore) SavePoints(ctx context.Context, playerID, week string, points float64) (*model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findPlayer(playerID)
	if p == nil {
		return nil, db.ErrPlayerNotFound
	}
	if p.Points == nil {
		p.Points = make(map[string]float64)
	}
	p.Points[week] = points
	copied := copyPlayer(p)
	return &copied, nil
}

func (s *MemStore) GetCurrentWeek(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentWeek, nil
}

func (s *MemStore) SetCurrentWeek(ctx context.Context, week string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentWeek = week
	return nil
}

func (s *MemStore) GetMatchups(ctx context.Context) (model.Matchups, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matchups := make(model.Matchups, len(s.matchups))
	for week, pairings := range s.matchups {
		matchups[week] = copyWeekMatchups(pairings)
	}
	return matchups, nil
}

func (s *MemStore) GetWeekMatchups(ctx context.Context, week string) (model.WeekMatchups, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyWeekMatchups(s.matchups[week]), nil
}

func (s *MemStore) SaveWeekMatchups(ctx context.Context, week string, pairings model.WeekMatchups) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(pairings) == 0 {
		delete(s.matchups, week)
		return nil
	}
	s.matchups[week] = copyWeekMatchups(pairings)
	return nil
}

func (s *MemStore) findTeam(id string) *model.Team {
	for i := range s.teams {
		if s.teams[i].ID == id {
			return &s.teams[i]
		}
	}
	return nil
}

func (s *MemStore) findPlayer(id string) *model.Player {
	for i := range s.players {
		if s.players[i].ID == id {
			return &s.players[i]
		}
	}
	return nil
}

func (s *MemStore) generateID(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

func copyTeam(t *model.Team) model.Team {
	copied := *t
	copied.Lineups = make(map[string]model.Lineup, len(t.Lineups))
	for week, lineup := range t.Lineups {
		copied.Lineups[week] = copyLineup(lineup)
	}
	copied.Record = make(map[string]model.Result, len(t.Record))
	for week, result := range t.Record {
		copied.Record[week] = result
	}
	return copied
}

func copyPlayer(p *model.Player) model.Player {
	copied := *p
	copied.Points = make(map[string]float64, len(p.Points))
	for week, points := range p.Points {
		copied.Points[week] = points
	}
	return copied
}

func copyLineup(lineup model.Lineup) model.Lineup {
	copied := make(model.Lineup, len(lineup))
	for slot, id := range lineup {
		copied[slot] = id
	}
	return copied
}

func copyWeekMatchups(m model.WeekMatchups) model.WeekMatchups {
	copied := make(model.WeekMatchups, len(m))
	for teamID, opponentID := range m {
		copied[teamID] = opponentID
	}
	return copied
}
