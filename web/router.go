package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"

	"github.com/JoshuaNogues/fantasy-basic/controller"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/healthz", healthHandler(render))

	r.Route("/teams", func(r chi.Router) {
		r.Get("/", listTeamsHandler(ctrl, render))
		r.Post("/", addTeamHandler(ctrl, render))
		r.Get("/{teamID}", getTeamHandler(ctrl, render))
		r.Get("/{teamID}/summary", teamSummaryHandler(ctrl, render))
		r.Patch("/{teamID}/lineup", updateLineupHandler(ctrl, render))
		r.Patch("/{teamID}/record", updateRecordHandler(ctrl, render))
	})

	r.Route("/players", func(r chi.Router) {
		r.Get("/", listPlayersHandler(ctrl, render))
		r.Post("/", addPlayerHandler(ctrl, render))
		r.Patch("/{playerID}/points", updatePointsHandler(ctrl, render))
	})

	r.Route("/settings", func(r chi.Router) {
		r.Get("/current-week", getCurrentWeekHandler(ctrl, render))
		r.Patch("/current-week", setCurrentWeekHandler(ctrl, render))
	})

	r.Route("/matchups", func(r chi.Router) {
		r.Get("/", getMatchupsHandler(ctrl, render))
		r.Get("/{week}", getWeekMatchupsHandler(ctrl, render))
		r.Put("/{week}", saveMatchupsHandler(ctrl, render))
	})

	r.Get("/scoreboard", scoreboardHandler(ctrl, render))
	r.Get("/standings", standingsHandler(ctrl, render))

	return r
}
