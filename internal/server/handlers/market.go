package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/farmplan/internal/domain/models"
	"github.com/mamadbah2/farmplan/internal/market"
	"github.com/mamadbah2/farmplan/internal/state"
)

// MarketHandler serves the price catalog and the break-even outlook.
type MarketHandler struct {
	catalog *market.Catalog
	store   *state.Store
	logger  *zap.Logger
}

// NewMarketHandler constructs the HTTP handler adapter.
func NewMarketHandler(catalog *market.Catalog, store *state.Store, logger *zap.Logger) *MarketHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MarketHandler{catalog: catalog, store: store, logger: logger}
}

// Prices returns the whole catalog.
func (h *MarketHandler) Prices(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Prices())
}

// Price returns the catalog entry for one crop.
func (h *MarketHandler) Price(c *gin.Context) {
	price, err := h.catalog.Price(models.CropType(c.Param("crop")))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, price)
}

// Outlook compares the saved plan's break-even price against the market.
func (h *MarketHandler) Outlook(c *gin.Context) {
	plan := h.store.ProfitPlan()
	if plan == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no profit plan saved"})
		return
	}

	comparison, err := h.catalog.Compare(plan.CropType, plan.BreakEvenPrice)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, comparison)
}
