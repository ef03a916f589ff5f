package reporting

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/farmplan/internal/domain/models"
	repo "github.com/mamadbah2/farmplan/internal/repository/sheets"
)

const (
	dateLayout        = "2006-01-02"
	expenseSheetRange = "Expenses!A:E"
)

// ExpenseSource provides the expense records to summarize. Satisfied by the
// application state store.
type ExpenseSource interface {
	Expenses() []models.Expense
}

// ExpenseSummary aggregates spending over a period.
type ExpenseSummary struct {
	Start      string                          `json:"start"`
	End        string                          `json:"end"`
	Total      float64                         `json:"total"`
	Entries    int                             `json:"entries"`
	ByActivity map[models.ActivityType]float64 `json:"byActivity"`
}

// Service produces expense summaries and exports them to Google Sheets.
type Service struct {
	source ExpenseSource
	sheets repo.Repository
	logger *zap.Logger
}

// NewService wires a new reporting service instance. The sheets repository
// may be nil when export is not configured.
func NewService(source ExpenseSource, sheets repo.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, sheets: sheets, logger: logger}
}

// Summarize totals the expenses whose date falls inside [start, end].
func (s *Service) Summarize(start, end time.Time) ExpenseSummary {
	summary := ExpenseSummary{
		Start:      start.Format(dateLayout),
		End:        end.Format(dateLayout),
		ByActivity: make(map[models.ActivityType]float64),
	}

	for _, expense := range s.source.Expenses() {
		date, err := time.Parse(dateLayout, expense.Date)
		if err != nil {
			s.logger.Debug("skip expense with invalid date", zap.String("id", expense.ID), zap.Error(err))
			continue
		}
		if date.Before(start) || date.After(end) {
			continue
		}

		summary.Total += expense.Cost
		summary.ByActivity[expense.ActivityType] += expense.Cost
		summary.Entries++
	}

	return summary
}

// FormatSummary renders a summary into the plain-text shape used by
// notifications.
func (s *Service) FormatSummary(summary ExpenseSummary) string {
	if summary.Entries == 0 {
		return fmt.Sprintf("Expense summary (%s-%s): no records yet.", summary.Start, summary.End)
	}

	activities := make([]models.ActivityType, 0, len(summary.ByActivity))
	for activity := range summary.ByActivity {
		activities = append(activities, activity)
	}
	sort.Slice(activities, func(i, j int) bool { return activities[i] < activities[j] })

	text := fmt.Sprintf("Expense summary (%s-%s): %.2f across %d entries.", summary.Start, summary.End, summary.Total, summary.Entries)
	for _, activity := range activities {
		text += fmt.Sprintf(" %s %.2f.", activity, summary.ByActivity[activity])
	}
	return text
}

// ExportExpenses appends the expenses of the period as rows to the expense
// sheet. Requires a configured sheets repository.
func (s *Service) ExportExpenses(ctx context.Context, start, end time.Time) (int, error) {
	if s.sheets == nil {
		return 0, fmt.Errorf("sheet export is not configured")
	}

	var rows [][]interface{}
	for _, expense := range s.source.Expenses() {
		date, err := time.Parse(dateLayout, expense.Date)
		if err != nil {
			s.logger.Debug("skip expense with invalid date", zap.String("id", expense.ID), zap.Error(err))
			continue
		}
		if date.Before(start) || date.After(end) {
			continue
		}

		rows = append(rows, []interface{}{
			expense.Date,
			string(expense.ActivityType),
			expense.Cost,
			expense.Notes,
			expense.ID,
		})
	}

	if len(rows) == 0 {
		s.logger.Info("no expenses to export", zap.String("start", start.Format(dateLayout)), zap.String("end", end.Format(dateLayout)))
		return 0, nil
	}

	if err := s.sheets.AppendRows(ctx, expenseSheetRange, rows); err != nil {
		return 0, fmt.Errorf("export expenses: %w", err)
	}

	s.logger.Info("expenses exported", zap.Int("rows", len(rows)))
	return len(rows), nil
}
