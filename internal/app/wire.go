package app

import (
	"log/slog"

	"github.com/felttable/tracker/internal/guard"
	"github.com/felttable/tracker/internal/handler"
	"github.com/felttable/tracker/internal/ledger"
	"github.com/felttable/tracker/internal/repository"
	"github.com/felttable/tracker/internal/resolver"
	"github.com/felttable/tracker/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RouterDeps holds all dependencies needed by NewRouter.
type RouterDeps struct {
	Pool               *pgxpool.Pool
	Logger             *slog.Logger
	CORSAllowedOrigins string
}

// NewRouter assembles the chi.Router with all routes and middleware.
func NewRouter(deps RouterDeps) chi.Router {
	pool := deps.Pool
	logger := deps.Logger

	// Repositories
	playerRepo := repository.NewPlayerRepository()
	seasonRepo := repository.NewSeasonRepository()
	gameRepo := repository.NewGameRepository()
	accountRepo := repository.NewAccountRepository()
	buyInRepo := repository.NewBuyInRepository()
	resultRepo := repository.NewResultRepository()
	participationRepo := repository.NewParticipationRepository()
	outboxRepo := repository.NewOutboxRepository()

	// Core components
	res := resolver.New(playerRepo, seasonRepo, gameRepo, accountRepo)
	engine := ledger.NewEngine(accountRepo, seasonRepo, playerRepo, buyInRepo, resultRepo, participationRepo, outboxRepo)
	refGuard := guard.New(gameRepo, accountRepo, buyInRepo, resultRepo, participationRepo)

	// Service
	svc := service.NewTournamentService(
		pool, playerRepo, seasonRepo, gameRepo, accountRepo, outboxRepo,
		res, engine, refGuard, logger,
	)

	// Handlers
	tournamentHandler := handler.NewTournamentHandler(svc)
	directoryHandler := handler.NewDirectoryHandler(svc)

	// Router
	r := chi.NewRouter()

	// Global middleware (order matters)
	r.Use(handler.Recovery(logger))
	r.Use(handler.RequestID)
	r.Use(handler.RequestLogger(logger))
	r.Use(handler.CORS(deps.CORSAllowedOrigins))
	r.Use(handler.JSONContentType)

	r.Get("/health", handler.HealthHandler(pool))

	// Natural-key command surface
	r.Route("/tournament", func(r chi.Router) {
		r.Post("/seasons", tournamentHandler.CreateSeason)
		r.Post("/seasons/players", tournamentHandler.EnrollPlayer)
		r.Get("/accounts", tournamentHandler.FindAccount)
		r.Post("/games", tournamentHandler.CreateGame)
		r.Post("/buy-ins", tournamentHandler.RecordBuyIn)
		r.Post("/results", tournamentHandler.RecordResult)
		r.Post("/participations", tournamentHandler.RecordParticipation)
	})

	// Id-addressed directory surface
	r.Route("/seasons", func(r chi.Router) {
		r.Get("/", directoryHandler.ListSeasons)
		r.Get("/{id}", directoryHandler.GetSeason)
		r.Put("/{id}", directoryHandler.UpdateSeason)
		r.Delete("/{id}", directoryHandler.DeleteSeason)
	})
	r.Route("/players", func(r chi.Router) {
		r.Get("/", directoryHandler.ListPlayers)
		r.Get("/{id}", directoryHandler.GetPlayer)
		r.Put("/{id}", directoryHandler.UpdatePlayer)
		r.Delete("/{id}", directoryHandler.DeletePlayer)
	})
	r.Route("/games", func(r chi.Router) {
		r.Get("/", directoryHandler.ListGames)
		r.Get("/{id}", directoryHandler.GetGame)
		r.Put("/{id}", directoryHandler.UpdateGame)
		r.Delete("/{id}", directoryHandler.DeleteGame)
	})
	r.Route("/accounts", func(r chi.Router) {
		r.Get("/", directoryHandler.ListAccounts)
		r.Get("/{id}", directoryHandler.GetAccount)
		r.Put("/{id}", directoryHandler.UpdateAccount)
		r.Delete("/{id}", directoryHandler.DeleteAccount)
		r.Post("/{id}/reconcile", tournamentHandler.ReconcileAccount)
	})

	return r
}
