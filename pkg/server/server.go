// Package server exposes the assessment pipeline over a local HTTP API.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mchmarny/heartrisk/pkg/model"
)

// AssessRequest is the scoring request body: all 13 feature values keyed
// by their short UCI column names.
type AssessRequest struct {
	Features map[string]float64 `json:"features" binding:"required"`
}

// AssessResponse is one completed assessment.
type AssessResponse struct {
	ID           string              `json:"id"`
	Probability  float64             `json:"probability"`
	RiskLevel    string              `json:"risk_level"`
	Confidence   float64             `json:"confidence"`
	TopFactors   []model.Attribution `json:"top_factors"`
	Attributions []model.Attribution `json:"attributions"`
}

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// New builds the gin engine with all API routes registered.
func New(version string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	api := r.Group("/api/v1")
	{
		api.POST("/assess", assessHandler)
		api.GET("/features", featuresHandler)
		api.GET("/health", healthHandler(version))
	}

	return r
}

func assessHandler(c *gin.Context) {
	var req AssessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid request",
			Details: err.Error(),
		})
		return
	}

	features, err := vectorFromMap(req.Features)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid request",
			Details: err.Error(),
		})
		return
	}

	a, err := model.Assess(features)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, AssessResponse{
		ID:           uuid.NewString(),
		Probability:  a.Probability,
		RiskLevel:    a.RiskLevel,
		Confidence:   a.Confidence,
		TopFactors:   a.TopFactors,
		Attributions: a.Attributions,
	})
}

func featuresHandler(c *gin.Context) {
	c.JSON(http.StatusOK, model.Specs())
}

func healthHandler(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"version":   version,
			"timestamp": time.Now().UTC(),
		})
	}
}

// vectorFromMap maps keyed feature values into vector order. Every key
// must be present; unknown keys are rejected so typos do not silently
// drop a field.
func vectorFromMap(m map[string]float64) ([]float64, error) {
	specs := model.Specs()

	known := make(map[string]bool, len(specs))
	for _, s := range specs {
		known[s.Key] = true
	}
	for k := range m {
		if !known[k] {
			return nil, fmt.Errorf("unknown feature: %s", k)
		}
	}

	features := make([]float64, model.NumFeatures)
	for i, s := range specs {
		v, ok := m[s.Key]
		if !ok {
			return nil, fmt.Errorf("missing feature: %s", s.Key)
		}
		features[i] = v
	}
	return features, nil
}
