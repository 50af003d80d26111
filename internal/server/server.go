// Package server wires the scoring packages behind a gin router. Handlers
// only bind JSON, call a pure scoring function, and serialize the result; all
// domain logic lives in the scoring packages.
package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"marketscore/internal/apperrors"
	"marketscore/internal/brandvoice"
	"marketscore/internal/config"
	"marketscore/internal/middleware"
	"marketscore/internal/monitoring"
)

// Server holds the handler dependencies.
type Server struct {
	metrics    *monitoring.Metrics
	brandVoice *brandvoice.Analyzer
}

// New assembles the router with the full middleware stack.
func New(cfg *config.Config, metrics *monitoring.Metrics) *gin.Engine {
	s := &Server{
		metrics:    metrics,
		brandVoice: brandvoice.NewAnalyzer(),
	}

	r := gin.New()
	r.Use(apperrors.RecoveryHandler())
	r.Use(middleware.RequestID())
	r.Use(metrics.Middleware())
	r.Use(apperrors.ErrorHandler())

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsConfig))

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMin, cfg.RateLimitBurst, metrics)
	r.Use(limiter.Middleware())

	r.GET("/health", s.handleHealth)
	r.GET("/metrics", metrics.Handler())

	v1 := r.Group("/v1")
	{
		v1.POST("/engagement/score", s.handleEngagement)
		v1.POST("/brand-voice/analyze", s.handleBrandVoice)
		v1.POST("/ai-likelihood/score", s.handleAILikelihood)
		v1.POST("/trends/score", s.handleTrendScore)
		v1.POST("/trends/momentum", s.handleMomentum)
		v1.POST("/seo/score", s.handleSEO)
		v1.POST("/ab-tests/analyze", s.handleABTest)
		v1.POST("/attribution/:model", s.handleAttribution)
		v1.POST("/routing/info", s.handleRouting)
	}

	return r
}
