// Package server exposes the advisor over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/Skufu/medadvisor/internal/advisor"
	"github.com/Skufu/medadvisor/internal/lookup"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Analyzer interface {
	Analyze(req advisor.Request) advisor.Outcome
}

// KnowledgeBase is what the lookup endpoints read.
type KnowledgeBase interface {
	lookup.MedicationFinder
	lookup.Lister
}

// Deps are shared, read-only collaborators. DB is nil unless the knowledge
// base was loaded from Postgres.
type Deps struct {
	Analyzer  Analyzer
	Knowledge KnowledgeBase
	DB        HealthChecker
	Log       logrus.FieldLogger
}

type Options struct {
	MaxBodyBytes int64
	RateLimit    float64
	RateBurst    int
}

type medicationRequest struct {
	Query string `json:"query" binding:"required"`
}

type firstAidRequest struct {
	Situation string `json:"situation" binding:"required"`
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func NewRouter(d Deps, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(d.Log),
		limitBodySize(opts.MaxBodyBytes),
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
			MaxAge:       12 * time.Hour,
		}),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/readyz", func(c *gin.Context) {
		if d.DB == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "disabled"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := d.DB.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"db":     fmt.Sprintf("unhealthy: %v", err),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "ok"})
	})

	api := router.Group("/api")
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst < 1 {
			burst = 1
		}
		api.Use(rateLimit(rate.NewLimiter(rate.Limit(opts.RateLimit), burst)))
	}

	api.POST("/analyze", func(c *gin.Context) {
		var req advisor.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}

		out := d.Analyzer.Analyze(req)
		if out.Failed() {
			c.JSON(http.StatusInternalServerError, out.Failure)
			return
		}
		c.JSON(http.StatusOK, out.Result)
	})

	api.POST("/medication", func(c *gin.Context) {
		var req medicationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}

		info, failure := lookup.Medication(d.Knowledge, req.Query)
		if failure != nil {
			c.JSON(http.StatusNotFound, failure)
			return
		}
		c.JSON(http.StatusOK, info)
	})

	api.POST("/firstaid", func(c *gin.Context) {
		var req firstAidRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}

		advice, failure := lookup.FirstAid(req.Situation)
		if failure != nil {
			c.JSON(http.StatusNotFound, failure)
			return
		}
		c.JSON(http.StatusOK, advice)
	})

	api.POST("/chat", func(c *gin.Context) {
		var req chatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		c.JSON(http.StatusOK, chatResponse{Reply: lookup.ChatReply(req.Message)})
	})

	api.GET("/knowledge", func(c *gin.Context) {
		c.JSON(http.StatusOK, lookup.NewIndex(d.Knowledge))
	})

	return router
}
