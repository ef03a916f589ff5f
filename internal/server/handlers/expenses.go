package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/farmplan/internal/domain/models"
	"github.com/mamadbah2/farmplan/internal/state"
)

// ExpenseHandler serves the expense tracker CRUD surface.
type ExpenseHandler struct {
	store  *state.Store
	logger *zap.Logger
}

// NewExpenseHandler constructs the HTTP handler adapter.
func NewExpenseHandler(store *state.Store, logger *zap.Logger) *ExpenseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExpenseHandler{store: store, logger: logger}
}

// List returns all expenses, newest date first.
func (h *ExpenseHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Expenses())
}

// Create records a new expense.
func (h *ExpenseHandler) Create(c *gin.Context) {
	var input models.ExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid expense payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	expense, err := h.store.AddExpense(c.Request.Context(), input)
	if err != nil {
		// Memory took the record; surface the degraded persistence.
		c.JSON(http.StatusAccepted, expense)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// Update applies a partial field replacement. Unknown ids are a no-op and
// still answer 200.
func (h *ExpenseHandler) Update(c *gin.Context) {
	var update models.ExpenseUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		h.logger.Warn("invalid expense update", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.store.UpdateExpense(c.Request.Context(), c.Param("id"), update); err != nil {
		c.Status(http.StatusAccepted)
		return
	}

	c.Status(http.StatusOK)
}

// Delete removes an expense. Unknown ids are a no-op and still answer 200.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		c.Status(http.StatusAccepted)
		return
	}

	c.Status(http.StatusOK)
}
