package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/farmplan/internal/domain/models"
	"github.com/mamadbah2/farmplan/internal/service/alerts"
	"github.com/mamadbah2/farmplan/internal/state"
)

// AlertHandler serves the price alert list and the manual sweep trigger.
type AlertHandler struct {
	store    *state.Store
	alertSvc *alerts.Service
	logger   *zap.Logger
}

// NewAlertHandler constructs the HTTP handler adapter.
func NewAlertHandler(store *state.Store, alertSvc *alerts.Service, logger *zap.Logger) *AlertHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AlertHandler{store: store, alertSvc: alertSvc, logger: logger}
}

// List returns every saved alert in insertion order.
func (h *AlertHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.PriceAlerts())
}

// Create saves a new alert; it is active immediately.
func (h *AlertHandler) Create(c *gin.Context) {
	var input models.PriceAlertInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid alert payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	alert, err := h.store.AddPriceAlert(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusAccepted, alert)
		return
	}

	c.JSON(http.StatusCreated, alert)
}

// Delete removes an alert. Unknown ids are a no-op and still answer 200.
func (h *AlertHandler) Delete(c *gin.Context) {
	if err := h.store.RemovePriceAlert(c.Request.Context(), c.Param("id")); err != nil {
		c.Status(http.StatusAccepted)
		return
	}

	c.Status(http.StatusOK)
}

// Sweep runs an on-demand evaluation of every alert and returns the
// triggered set.
func (h *AlertHandler) Sweep(c *gin.Context) {
	triggered := h.alertSvc.Sweep(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"triggered": triggered})
}
