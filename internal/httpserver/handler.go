package httpserver

import (
	"context"

	"engagement-srv/internal/middleware"
	statshttp "engagement-srv/internal/stats/delivery/http"
	statsusecase "engagement-srv/internal/stats/usecase"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.config)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	// Initialize usecases
	statsUC := statsusecase.New(srv.l, statsusecase.Config{
		TopParticipants: srv.config.Stats.TopParticipants,
	})

	// Initialize HTTP handlers
	statsHandler := statshttp.New(srv.l, statsUC, srv.discord)

	// Map routes
	statsHandler.RegisterRoutes(srv.gin.Group(""), mw)

	srv.l.Infof(context.Background(), "Stats domain registered")
	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	corsConfig := middleware.DefaultCORSConfig(srv.environment)
	srv.gin.Use(middleware.CORS(corsConfig))

	// Log CORS mode for visibility
	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (strict origins only)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive - allows localhost)", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"), // Use relative path
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
