package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"betblitz-backend/internal/config"
	"betblitz-backend/internal/handlers"
	"betblitz-backend/internal/middleware"
	"betblitz-backend/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var (
		ledger  services.Ledger
		history services.BetHistory
		users   services.UserStore
		limiter services.RateLimiter
	)

	if cfg.RedisAddr != "" {
		redisService, err := services.NewRedisService(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisService.Close()

		ledger = redisService
		history = redisService
		users = redisService
		limiter = redisService
	} else {
		log.Println("REDIS_ADDR not set, using in-memory stores")
		ledger = services.NewMemoryLedger(cfg.StartingBalance)
		history = services.NewMemoryHistory()
		users = services.NewMemoryUserStore()
		limiter = services.NoopRateLimiter{}
	}

	rng := services.NewRNG()
	sessions := services.NewSessionStore()
	engine := services.NewEngine(rng, sessions, ledger, history)

	jwtService := services.NewJWTService(cfg)
	authService := services.NewAuthService(users, ledger, jwtService, services.LogMailer{})

	simulator := services.NewMatchSimulator(rng, cfg.TickInterval)
	wsHandler := handlers.NewWebSocketHandler()
	simulator.SetBroadcaster(wsHandler)
	go simulator.Run(context.Background())

	authHandler := handlers.NewAuthHandler(authService, ledger, cfg.Env != "production")
	userHandler := handlers.NewUserHandler(users, ledger, history)
	gameHandler := handlers.NewGameHandler(engine)
	matchesHandler := handlers.NewMatchesHandler(simulator)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	api := router.Group("/api")

	api.POST("/register", authHandler.Register)
	api.POST("/verify", authHandler.Verify)
	api.POST("/login", authHandler.Login)
	api.POST("/forgot-password", authHandler.ForgotPassword)
	api.POST("/reset-password", authHandler.ResetPassword)
	api.GET("/matches", matchesHandler.List)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtService))
	protected.Use(middleware.RateLimitMiddleware(limiter))
	{
		protected.GET("/user/me", userHandler.Me)
		protected.GET("/balance", userHandler.Balance)
		protected.GET("/ws", wsHandler.HandleWebSocket)

		protected.POST("/bet", gameHandler.SportsBet)

		protected.POST("/crash/bet", gameHandler.CrashBet)
		protected.POST("/crash/win", gameHandler.CrashWin)
		protected.POST("/crash/lose", gameHandler.CrashLose)

		protected.POST("/dice/bet", gameHandler.DiceBet)

		protected.POST("/mines/bet", gameHandler.MinesBet)
		protected.POST("/mines/reveal", gameHandler.MinesReveal)
		protected.POST("/mines/cashout", gameHandler.MinesCashout)

		protected.POST("/hilo/start", gameHandler.HiLoStart)
		protected.POST("/hilo/next", gameHandler.HiLoNext)
		protected.POST("/hilo/cashout", gameHandler.HiLoCashout)

		protected.POST("/plinko/bet", gameHandler.PlinkoBet)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
