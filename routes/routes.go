package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/lucaferrario/tournament-manager/handlers"
	"github.com/lucaferrario/tournament-manager/middleware"
)

// SetupRoutes wires every handler onto the router. Read endpoints are public;
// everything that mutates tournament state requires an organizer token.
func SetupRoutes(
	router *chi.Mux,
	auth *middleware.Authenticator,
	allowedOrigins []string,
	authHandler *handlers.AuthHandler,
	rosterHandler *handlers.RosterHandler,
	groupHandler *handlers.GroupHandler,
	playoffHandler *handlers.PlayoffHandler,
	rankingHandler *handlers.RankingHandler,
	exportHandler *handlers.ExportHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Post("/auth/login", authHandler.Login)

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", rosterHandler.ListTeams)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Use(middleware.RequireOrganizer)
			r.Post("/", rosterHandler.RegisterTeam)
		})
	})

	router.Route("/groups", func(r chi.Router) {
		r.Get("/", groupHandler.ListGroups)
		r.Get("/complete", groupHandler.GroupsComplete)
		r.Get("/{group}/matches", groupHandler.GetMatches)
		r.Get("/{group}/standings", groupHandler.GetStandings)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Use(middleware.RequireOrganizer)
			r.Post("/", groupHandler.CreateGroups)
			r.Put("/{group}/matches", groupHandler.UpdateMatches)
		})
	})

	router.Route("/playoffs", func(r chi.Router) {
		r.Get("/", playoffHandler.GetBracket)
		r.Get("/complete", playoffHandler.PlayoffsComplete)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Use(middleware.RequireOrganizer)
			r.Post("/", playoffHandler.GenerateBracket)
			r.Put("/", playoffHandler.UpdateResults)
		})
	})

	router.Route("/standings", func(r chi.Router) {
		r.Get("/final", rankingHandler.GetFinalStandings)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Use(middleware.RequireOrganizer)
			r.Post("/final", rankingHandler.GenerateFinalStandings)
		})
	})

	router.Route("/export", func(r chi.Router) {
		r.Get("/", exportHandler.Download)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Use(middleware.RequireOrganizer)
			r.Post("/publish", exportHandler.Publish)
		})
	})

	router.Get("/ws/{topic}", webSocketHandler.Subscribe)
}
