package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"storyreel/internal/adquota"
	"storyreel/internal/auth"
	"storyreel/internal/catalog"
	"storyreel/internal/config"
	"storyreel/internal/entitlement"
	"storyreel/internal/feed"
	"storyreel/internal/history"
	"storyreel/internal/library"
	"storyreel/internal/purchase"
	"storyreel/internal/recorder"
	"storyreel/internal/subscription"
	"storyreel/internal/wallet"
)

type Server struct {
	router   *gin.Engine
	http     *http.Server
	db       *sqlx.DB
	config   *config.Config
	recorder *recorder.Service
}

func New(db *sqlx.DB, cfg *config.Config, recorderService *recorder.Service, feedService *feed.Service) *Server {
	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	catalogRepo := catalog.NewRepository(db)
	subscriptionRepo := subscription.NewRepository(db)
	purchaseRepo := purchase.NewRepository(db)
	quotaRepo := adquota.NewRepository(db, cfg.AdQuotaCap)
	walletRepo := wallet.NewRepository(db)
	libraryRepo := library.NewRepository(db)

	walletHandler := wallet.NewHandler(db)
	subscriptionHandler := subscription.NewHandler(db)
	libraryHandler := library.NewHandler(db)
	historyHandler := history.NewHandler(db)
	catalogHandler := catalog.NewHandler(catalogRepo, subscriptionRepo, purchaseRepo)

	entitlementService := entitlement.NewService(
		catalogRepo,
		subscriptionRepo,
		purchaseRepo,
		quotaRepo,
		walletRepo,
		libraryRepo,
		recorderService,
	)
	entitlementHandler := entitlement.NewHandler(entitlementService)
	feedHandler := feed.NewHandler(feedService)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/wallet", walletHandler.GetBalance)
		protected.POST("/wallet/topup", walletHandler.TopUp)
		protected.POST("/wallet/reward", walletHandler.ClaimReward)
		protected.GET("/wallet/transactions", walletHandler.ListTransactions)

		protected.GET("/subscription", subscriptionHandler.GetStatus)

		protected.GET("/works/:workID", catalogHandler.GetWork)
		protected.GET("/works/:workID/units", catalogHandler.ListUnits)

		protected.GET("/units/:unitID/view", entitlementHandler.View)
		protected.POST("/units/:unitID/bookmark", libraryHandler.ToggleBookmark)
		protected.POST("/units/:unitID/rate", libraryHandler.ToggleRating)

		protected.GET("/history", historyHandler.List)
		protected.GET("/foryou", feedHandler.ForYou)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router:   router,
		db:       db,
		config:   cfg,
		recorder: recorderService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
