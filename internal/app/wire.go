package app

import (
	"log/slog"
	"strings"

	"github.com/gamevault/platform/internal/auth"
	"github.com/gamevault/platform/internal/handler"
	"github.com/gamevault/platform/internal/ledger"
	"github.com/gamevault/platform/internal/repository"
	"github.com/gamevault/platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// RouterDeps holds all dependencies needed by NewRouter.
type RouterDeps struct {
	Pool               *pgxpool.Pool
	JWTMgr             *auth.JWTManager
	Logger             *slog.Logger
	StartingBalance    decimal.Decimal
	TopUpAmount        decimal.Decimal
	CORSAllowedOrigins string
}

// NewRouter assembles the chi.Router with all routes and middleware.
func NewRouter(deps RouterDeps) chi.Router {
	pool := deps.Pool
	jwtMgr := deps.JWTMgr
	logger := deps.Logger

	// Repositories
	customerRepo := repository.NewCustomerRepository()
	catalogRepo := repository.NewCatalogRepository()
	purchaseRepo := repository.NewPurchaseRepository()
	returnRepo := repository.NewReturnRepository()
	outboxRepo := repository.NewOutboxRepository()

	// Balance engine
	engine := ledger.NewEngine(customerRepo, catalogRepo, purchaseRepo, returnRepo, outboxRepo)

	// Services
	authSvc := service.NewAuthService(pool, customerRepo, outboxRepo, jwtMgr, deps.StartingBalance)
	storeSvc := service.NewStoreService(pool, engine, deps.TopUpAmount)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	catalogHandler := handler.NewCatalogHandler(catalogRepo, pool)
	accountHandler := handler.NewAccountHandler(customerRepo, purchaseRepo, returnRepo, storeSvc, pool)
	storeHandler := handler.NewStoreHandler(storeSvc)

	// Router
	r := chi.NewRouter()

	// Global middleware (order matters)
	r.Use(handler.Recovery(logger))
	r.Use(handler.RequestID)
	r.Use(handler.RequestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(deps.CORSAllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(handler.JSONContentType)

	// Health (no auth)
	r.Get("/health", handler.HealthHandler(pool))

	// Auth routes (no auth)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
	})

	// Public catalogue routes (no auth)
	r.Route("/catalog", func(r chi.Router) {
		r.Get("/games", catalogHandler.ListGames)
		r.Get("/games/{name}", catalogHandler.GetGame)
		r.Get("/publishers", catalogHandler.ListPublishers)
		r.Get("/publishers/{id}/games", catalogHandler.ListGamesByPublisher)
		r.Get("/platforms", catalogHandler.ListPlatforms)
		r.Get("/platforms/{id}/games", catalogHandler.ListGamesByPlatform)
		r.Get("/genres", catalogHandler.ListGenres)
		r.Get("/genres/{genre}/games", catalogHandler.ListGamesByGenre)
	})

	// Customer-authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(auth.AuthenticateCustomer(jwtMgr))

		r.Route("/account", func(r chi.Router) {
			r.Get("/me", accountHandler.Me)
			r.Get("/purchases", accountHandler.Purchases)
			r.Get("/returns", accountHandler.Returns)
			r.Post("/topup", accountHandler.TopUp)
		})

		r.Route("/store", func(r chi.Router) {
			r.Post("/purchases", storeHandler.Purchase)
			r.Post("/returns", storeHandler.Return)
		})
	})

	return r
}
