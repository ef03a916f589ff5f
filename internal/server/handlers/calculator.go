package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/farmplan/internal/domain/models"
	"github.com/mamadbah2/farmplan/internal/engine"
)

// CalculatorHandler exposes the pure profit and risk calculators over HTTP.
type CalculatorHandler struct {
	logger *zap.Logger
}

// NewCalculatorHandler constructs the HTTP handler adapter.
func NewCalculatorHandler(logger *zap.Logger) *CalculatorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalculatorHandler{logger: logger}
}

// Profit runs the profit calculator on the posted input.
func (h *CalculatorHandler) Profit(c *gin.Context) {
	var input models.ProfitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid profit input", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, engine.CalculateProfitPlan(input))
}

// Risk runs the risk meter on the posted input.
func (h *CalculatorHandler) Risk(c *gin.Context) {
	var input models.RiskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid risk input", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, engine.CalculateRiskScore(input))
}
