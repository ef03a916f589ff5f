package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/farmplan/internal/service/reporting"
)

const reportDateLayout = "2006-01-02"

// ReportHandler serves expense summaries and triggers sheet exports.
type ReportHandler struct {
	reportingSvc *reporting.Service
	logger       *zap.Logger
}

// NewReportHandler constructs the HTTP handler adapter.
func NewReportHandler(reportingSvc *reporting.Service, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{reportingSvc: reportingSvc, logger: logger}
}

type reportPeriod struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

func (p reportPeriod) parse() (time.Time, time.Time, error) {
	start, err := time.Parse(reportDateLayout, p.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(reportDateLayout, p.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// Summary returns the expense totals for the requested period.
func (h *ReportHandler) Summary(c *gin.Context) {
	period := reportPeriod{Start: c.Query("start"), End: c.Query("end")}
	start, end, err := period.parse()
	if err != nil {
		h.logger.Warn("invalid report period", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end must be YYYY-MM-DD"})
		return
	}

	c.JSON(http.StatusOK, h.reportingSvc.Summarize(start, end))
}

// Export appends the period's expenses to the configured Google Sheet.
func (h *ReportHandler) Export(c *gin.Context) {
	var period reportPeriod
	if err := c.ShouldBindJSON(&period); err != nil {
		h.logger.Warn("invalid export payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	start, end, err := period.parse()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end must be YYYY-MM-DD"})
		return
	}

	exported, err := h.reportingSvc.ExportExpenses(c.Request.Context(), start, end)
	if err != nil {
		h.logger.Error("expense export failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to export expenses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exported": exported})
}
