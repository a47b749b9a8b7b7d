package app

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/testdrivenio/flask-spa-auth/internal/auth/handler"
	"github.com/testdrivenio/flask-spa-auth/internal/config"
	"github.com/testdrivenio/flask-spa-auth/internal/middleware"
	"github.com/testdrivenio/flask-spa-auth/internal/session"
	"github.com/testdrivenio/flask-spa-auth/internal/users"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, cleanup, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	var sessionStore session.Store
	if infra.Redis != nil {
		sessionStore = session.NewRedisStore(infra.Redis)
	} else {
		sessionStore = session.NewMemoryStore()
	}

	sessionManager := session.NewManager(
		sessionStore,
		cfg.SessionTTL,
		cfg.SessionProtection == config.ProtectionStrong,
	)

	userStore := users.NewInMemory()

	authMiddleware := middleware.NewAuthMiddleware(sessionManager, userStore)

	authHandler := handler.NewHandler(
		userStore,
		sessionManager,
		session.CookieOptions{
			Secure:   cfg.CookieSecure,
			SameSite: cfg.CookieSameSite,
		},
	)

	// ----------------------------
	// Router
	// ----------------------------

	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
	)

	// Credentialed CORS for the SPA: exactly the configured origins,
	// cookies allowed.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins()
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	api := router.Group("/api")
	api.Use(middleware.GinRequireAuth(authMiddleware))

	api.GET("/data", authHandler.Data)
	api.GET("/logout", authHandler.Logout)

	return router, cleanup, nil
}
