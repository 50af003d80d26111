package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"marketscore/internal/abtest"
	"marketscore/internal/aidetect"
	"marketscore/internal/apperrors"
	"marketscore/internal/attribution"
	"marketscore/internal/brandvoice"
	"marketscore/internal/engagement"
	"marketscore/internal/routing"
	"marketscore/internal/seo"
	"marketscore/internal/trend"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleEngagement(c *gin.Context) {
	var req engagement.Metrics
	if !bind(c, &req) {
		return
	}

	s.metrics.ScoreComputed("engagement")
	c.JSON(http.StatusOK, engagement.Score(req))
}

type brandVoiceRequest struct {
	Content string                    `json:"content"`
	Profile *brandvoice.TargetProfile `json:"target_profile"`
}

func (s *Server) handleBrandVoice(c *gin.Context) {
	var req brandVoiceRequest
	if !bind(c, &req) {
		return
	}

	s.metrics.ScoreComputed("brand_voice")
	c.JSON(http.StatusOK, s.brandVoice.Analyze(req.Content, req.Profile))
}

type contentRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleAILikelihood(c *gin.Context) {
	var req contentRequest
	if !bind(c, &req) {
		return
	}

	s.metrics.ScoreComputed("ai_likelihood")
	c.JSON(http.StatusOK, aidetect.Likelihood(req.Content))
}

type trendRequest struct {
	Topic   string        `json:"topic"`
	Sources trend.Sources `json:"sources"`
}

func (s *Server) handleTrendScore(c *gin.Context) {
	var req trendRequest
	if !bind(c, &req) {
		return
	}

	s.metrics.ScoreComputed("trend")
	c.JSON(http.StatusOK, trend.Score(req.Topic, req.Sources))
}

type momentumRequest struct {
	CurrentScore  float64 `json:"current_score"`
	PreviousScore float64 `json:"previous_score"`
	Days          int     `json:"days"`
}

func (s *Server) handleMomentum(c *gin.Context) {
	var req momentumRequest
	if !bind(c, &req) {
		return
	}

	s.metrics.ScoreComputed("momentum")
	c.JSON(http.StatusOK, trend.Momentum(req.CurrentScore, req.PreviousScore, req.Days))
}

type seoRequest struct {
	Content        string       `json:"content"`
	Metadata       seo.PageMeta `json:"metadata"`
	TargetKeywords []string     `json:"target_keywords"`
}

func (s *Server) handleSEO(c *gin.Context) {
	var req seoRequest
	if !bind(c, &req) {
		return
	}

	s.metrics.ScoreComputed("seo")
	c.JSON(http.StatusOK, seo.Score(req.Content, req.Metadata, req.TargetKeywords))
}

type abTestRequest struct {
	ControlConversions int `json:"control_conversions"`
	ControlVisitors    int `json:"control_visitors"`
	VariantConversions int `json:"variant_conversions"`
	VariantVisitors    int `json:"variant_visitors"`
}

func (s *Server) handleABTest(c *gin.Context) {
	var req abTestRequest
	if !bind(c, &req) {
		return
	}

	s.metrics.ScoreComputed("ab_test")
	c.JSON(http.StatusOK, abtest.Analyze(
		req.ControlConversions, req.ControlVisitors,
		req.VariantConversions, req.VariantVisitors,
	))
}

type attributionRequest struct {
	Touchpoints     []attribution.Touchpoint `json:"touchpoints"`
	ConversionValue float64                  `json:"conversion_value"`
}

func (s *Server) handleAttribution(c *gin.Context) {
	model, ok := attribution.Models[c.Param("model")]
	if !ok {
		appErr := apperrors.NewNotFoundError("unknown attribution model: " + c.Param("model"))
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr)
		return
	}

	var req attributionRequest
	if !bind(c, &req) {
		return
	}

	s.metrics.ScoreComputed("attribution")
	c.JSON(http.StatusOK, model(req.Touchpoints, req.ConversionValue))
}

type routingRequest struct {
	TaskType string `json:"task_type"`
	Context  string `json:"context"`
}

func (s *Server) handleRouting(c *gin.Context) {
	var req routingRequest
	if !bind(c, &req) {
		return
	}

	s.metrics.ScoreComputed("routing")
	c.JSON(http.StatusOK, routing.Info(req.TaskType, req.Context))
}

// bind parses the JSON body, converting parse failures into structured 400s.
// Degenerate-but-parseable input (zero visitors, empty bundles) passes
// through: the scorers answer those with explicit error fields themselves.
func bind(c *gin.Context, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		_ = c.Error(apperrors.NewValidationError("invalid request body", err))
		c.Abort()
		return false
	}
	return true
}
