package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"

	"github.com/JoshuaNogues/fantasy-basic/controller"
	"github.com/JoshuaNogues/fantasy-basic/db"
	"github.com/JoshuaNogues/fantasy-basic/model"
)

func healthHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func listTeamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := ctrl.ListTeams(r.Context())
		if err != nil {
			handleError(w, render, err)
			return
		}

		resp := make([]teamResponse, 0, len(teams))
		for i := range teams {
			resp = append(resp, newTeamResponse(&teams[i]))
		}
		render.JSON(w, http.StatusOK, resp)
	}
}

func getTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")
		t, err := ctrl.GetTeam(r.Context(), teamID)
		if err != nil {
			handleError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, newTeamResponse(t))
	}
}

func addTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
		}
		if !decodeBody(w, render, r, &body) {
			return
		}

		t, err := ctrl.AddTeam(r.Context(), body.Name)
		if err != nil {
			handleError(w, render, err)
			return
		}
		render.JSON(w, http.StatusCreated, newTeamResponse(t))
	}
}

func updateLineupHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Week   string                 `json:"week"`
			Lineup map[string]model.IDRef `json:"lineup"`
		}
		if !decodeBody(w, render, r, &body) {
			return
		}

		raw := make(map[string]string, len(body.Lineup))
		for slot, ref := range body.Lineup {
			raw[slot] = ref.ID
		}

		teamID := chi.URLParam(r, "teamID")
		t, err := ctrl.UpdateLineup(r.Context(), teamID, body.Week, raw)
		if err != nil {
			handleError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, newTeamResponse(t))
	}
}

func updateRecordHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Week   string `json:"week"`
			Result string `json:"result"`
		}
		if !decodeBody(w, render, r, &body) {
			return
		}

		teamID := chi.URLParam(r, "teamID")
		t, err := ctrl.UpdateRecord(r.Context(), teamID, body.Week, body.Result)
		if err != nil {
			handleError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, newTeamResponse(t))
	}
}

func teamSummaryHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")
		week := r.URL.Query().Get("week")

		summary, err := ctrl.GetTeamSummary(r.Context(), teamID, week)
		if err != nil {
			handleError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, newSummaryResponse(summary))
	}
}

func listPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := r.URL.Query().Get("teamId")

		players, err := ctrl.ListPlayers(r.Context(), teamID)
		if err != nil {
			handleError(w, render, err)
			return
		}

		resp := make([]playerResponse, 0, len(players))
		for i := range players {
			resp = append(resp, newPlayerResponse(&players[i]))
		}
		render.JSON(w, http.StatusOK, resp)
	}
}

func addPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name     string      `json:"name"`
			TeamID   model.IDRef `json:"teamId"`
			Position string      `json:"position"`
		}
		if !decodeBody(w, render, r, &body) {
			return
		}

		p, err := ctrl.AddPlayer(r.Context(), body.Name, body.TeamID.ID, body.Position)
		if err != nil {
			handleError(w, render, err)
			return
		}
		render.JSON(w, http.StatusCreated, newPlayerResponse(p))
	}
}

func updatePointsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Week   string   `json:"week"`
			Points *float64 `json:"points"`
		}
		if !decodeBody(w, render, r, &body) {
			return
		}
		if body.Points == nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Message: "points must be a number"})
			return
		}

		playerID := chi.URLParam(r, "playerID")
		p, err := ctrl.UpdatePoints(r.Context(), playerID, body.Week, *body.Points)
		if err != nil {
			handleError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, newPlayerResponse(p))
	}
}

func getCurrentWeekHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, err := ctrl.GetCurrentWeek(r.Context())
		if err != nil {
			handleError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, currentWeekResponse{CurrentWeek: week})
	}
}

func setCurrentWeekHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Week string `json:"week"`
		}
		if !decodeBody(w, render, r, &body) {
			return
		}

		week, err := ctrl.SetCurrentWeek(r.Context(), body.Week)
		if err != nil {
			handleError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, currentWeekResponse{CurrentWeek: week})
	}
}

func getMatchupsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchups, err := ctrl.GetMatchups(r.Context())
		if err != nil {
			handleError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, matchupsWire(matchups))
	}
}

func getWeekMatchupsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week := chi.URLParam(r, "week")
		matchups, err := ctrl.GetWeekMatchups(r.Context(), week)
		if err != nil {
			handleError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, weekMatchupsWire(matchups))
	}
}

func saveMatchupsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		type pairingPayload struct {
			TeamA model.IDRef `json:"teamA"`
			TeamB model.IDRef `json:"teamB"`
		}

		var body []pairingPayload
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Message: "pairings must be a list"})
			return
		}

		pairings := make([]model.Pairing, 0, len(body))
		for _, p := range body {
			pairings = append(pairings, model.Pairing{TeamA: p.TeamA.ID, TeamB: p.TeamB.ID})
		}

		week := chi.URLParam(r, "week")
		matchups, err := ctrl.SaveWeekMatchups(r.Context(), week, pairings)
		if err != nil {
			handleError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, weekMatchupsWire(matchups))
	}
}

func scoreboardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week := r.URL.Query().Get("week")
		scores, err := ctrl.GetScoreboard(r.Context(), week)
		if err != nil {
			handleError(w, render, err)
			return
		}

		resp := make([]teamScoreResponse, 0, len(scores))
		for i := range scores {
			resp = append(resp, newTeamScoreResponse(&scores[i]))
		}
		render.JSON(w, http.StatusOK, resp)
	}
}

func standingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := ctrl.GetStandings(r.Context())
		if err != nil {
			handleError(w, render, err)
			return
		}

		resp := make([]standingResponse, 0, len(standings))
		for i := range standings {
			resp = append(resp, newStandingResponse(&standings[i]))
		}
		render.JSON(w, http.StatusOK, resp)
	}
}

// decodeBody reads a JSON request body into v, writing a 400 and returning
// false when it cannot be parsed.
func decodeBody(w http.ResponseWriter, render *render.Render, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		render.JSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return false
	}
	return true
}

// handleError maps controller and db errors onto HTTP statuses. Validation
// failures are the client's fault, missing entities are 404s, and everything
// else is logged and hidden behind a generic 500.
func handleError(w http.ResponseWriter, render *render.Render, err error) {
	var validation controller.ValidationError
	if errors.As(err, &validation) {
		render.JSON(w, http.StatusBadRequest, errorResponse{Message: validation.Error()})
		return
	}
	if errors.Is(err, db.ErrTeamNotFound) {
		render.JSON(w, http.StatusNotFound, errorResponse{Message: "team not found"})
		return
	}
	if errors.Is(err, db.ErrPlayerNotFound) {
		render.JSON(w, http.StatusNotFound, errorResponse{Message: "player not found"})
		return
	}

	log.Printf("internal error handling request: %v", err)
	render.JSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
}
