package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/farmplan/internal/domain/models"
	"github.com/mamadbah2/farmplan/internal/engine"
	"github.com/mamadbah2/farmplan/internal/state"
)

// PlanHandler serves the singleton profit plan slot.
type PlanHandler struct {
	store  *state.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewPlanHandler constructs the HTTP handler adapter.
func NewPlanHandler(store *state.Store, logger *zap.Logger) *PlanHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlanHandler{store: store, logger: logger, now: time.Now}
}

// Get returns the saved plan, or 404 when none exists.
func (h *PlanHandler) Get(c *gin.Context) {
	plan := h.store.ProfitPlan()
	if plan == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no profit plan saved"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// Save recomputes the derived totals from the posted calculator input and
// overwrites the plan slot. The stored totalCost and breakEvenPrice always
// come out of the engine, never from the client.
func (h *PlanHandler) Save(c *gin.Context) {
	var input models.ProfitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid plan payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	plan := engine.BuildProfitPlan(input, h.now().UTC())
	if err := h.store.SaveProfitPlan(c.Request.Context(), plan); err != nil {
		c.JSON(http.StatusAccepted, plan)
		return
	}

	c.JSON(http.StatusOK, plan)
}
