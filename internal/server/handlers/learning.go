package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/farmplan/internal/learning"
	"github.com/mamadbah2/farmplan/internal/state"
)

// LearningHandler serves the learning hub catalog and progress.
type LearningHandler struct {
	store  *state.Store
	logger *zap.Logger
}

// NewLearningHandler constructs the HTTP handler adapter.
func NewLearningHandler(store *state.Store, logger *zap.Logger) *LearningHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LearningHandler{store: store, logger: logger}
}

// Modules returns the full lesson catalog.
func (h *LearningHandler) Modules(c *gin.Context) {
	c.JSON(http.StatusOK, learning.Modules)
}

// Progress returns the raw completion mapping plus per-module summaries.
func (h *LearningHandler) Progress(c *gin.Context) {
	progress := h.store.LearningProgress()
	c.JSON(http.StatusOK, gin.H{
		"progress": progress,
		"modules":  learning.Progress(progress),
	})
}

// Complete marks one lesson as finished. The lesson must exist in the
// catalog; completion itself is idempotent.
func (h *LearningHandler) Complete(c *gin.Context) {
	moduleID := c.Param("moduleID")
	lessonID := c.Param("lessonID")

	if _, err := learning.Lesson(moduleID, lessonID); err != nil {
		h.logger.Warn("unknown lesson", zap.String("module", moduleID), zap.String("lesson", lessonID))
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown lesson"})
		return
	}

	if err := h.store.MarkLessonComplete(c.Request.Context(), moduleID, lessonID); err != nil {
		c.Status(http.StatusAccepted)
		return
	}

	c.Status(http.StatusOK)
}
