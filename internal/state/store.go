// Package state holds the in-memory authoritative copy of the application
// data. The store hydrates once from the persistence gateway and writes the
// whole affected collection back through on every mutation. Memory is
// updated before the durable write; a failed write is logged and returned
// but never rolled back.
package state

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/farmplan/internal/domain/models"
	"github.com/mamadbah2/farmplan/internal/repository/storage"
)

// Store owns the in-memory collections. Safe for concurrent use; overlapping
// mutations of the same collection still resolve last-write-wins at the
// storage layer.
type Store struct {
	gateway storage.Gateway
	logger  *zap.Logger
	newID   func() string

	mu               sync.RWMutex
	expenses         []models.Expense
	profitPlan       *models.ProfitPlan
	learningProgress models.LearningProgress
	priceAlerts      []models.PriceAlert
}

// NewStore wires a store around the given gateway. Call Load before serving.
func NewStore(gateway storage.Gateway, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		gateway:          gateway,
		logger:           logger,
		newID:            uuid.NewString,
		learningProgress: models.LearningProgress{},
	}
}

// Load hydrates every collection from storage, overwriting the in-memory
// state unconditionally. Missing entries default to empty collections and a
// nil plan.
func (s *Store) Load(ctx context.Context) error {
	var (
		expenses []models.Expense
		plan     models.ProfitPlan
		planSet  bool
		progress models.LearningProgress
		alerts   []models.PriceAlert
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		_, _ = s.gateway.Get(ctx, storage.KeyExpenses, &expenses)
	}()
	go func() {
		defer wg.Done()
		planSet, _ = s.gateway.Get(ctx, storage.KeyProfitPlan, &plan)
	}()
	go func() {
		defer wg.Done()
		_, _ = s.gateway.Get(ctx, storage.KeyLearningProgress, &progress)
	}()
	go func() {
		defer wg.Done()
		_, _ = s.gateway.Get(ctx, storage.KeyPriceAlerts, &alerts)
	}()
	wg.Wait()

	if progress == nil {
		progress = models.LearningProgress{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.expenses = expenses
	s.learningProgress = progress
	s.priceAlerts = alerts
	s.profitPlan = nil
	if planSet {
		s.profitPlan = &plan
	}

	s.logger.Info("state hydrated",
		zap.Int("expenses", len(expenses)),
		zap.Int("price_alerts", len(alerts)),
		zap.Bool("profit_plan", planSet))

	return nil
}

// Expenses returns a copy of the expense log sorted by descending date.
func (s *Store) Expenses() []models.Expense {
	s.mu.RLock()
	out := make([]models.Expense, len(s.expenses))
	copy(out, s.expenses)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// AddExpense assigns an id, appends the record and persists the collection.
func (s *Store) AddExpense(ctx context.Context, input models.ExpenseInput) (models.Expense, error) {
	expense := models.Expense{
		ID:           s.newID(),
		Date:         input.Date,
		ActivityType: input.ActivityType,
		Cost:         input.Cost,
		Notes:        input.Notes,
	}

	s.mu.Lock()
	s.expenses = append(s.expenses, expense)
	snapshot := append([]models.Expense(nil), s.expenses...)
	s.mu.Unlock()

	return expense, s.persist(ctx, storage.KeyExpenses, snapshot)
}

// UpdateExpense shallow-merges the update into the matching record. Unknown
// ids are a silent no-op.
func (s *Store) UpdateExpense(ctx context.Context, id string, update models.ExpenseUpdate) error {
	s.mu.Lock()
	for i := range s.expenses {
		if s.expenses[i].ID != id {
			continue
		}
		if update.Date != nil {
			s.expenses[i].Date = *update.Date
		}
		if update.ActivityType != nil {
			s.expenses[i].ActivityType = *update.ActivityType
		}
		if update.Cost != nil {
			s.expenses[i].Cost = *update.Cost
		}
		if update.Notes != nil {
			s.expenses[i].Notes = *update.Notes
		}
		break
	}
	snapshot := append([]models.Expense(nil), s.expenses...)
	s.mu.Unlock()

	return s.persist(ctx, storage.KeyExpenses, snapshot)
}

// DeleteExpense removes the matching record. Unknown ids are a silent no-op.
func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	s.mu.Lock()
	kept := s.expenses[:0]
	for _, expense := range s.expenses {
		if expense.ID != id {
			kept = append(kept, expense)
		}
	}
	s.expenses = kept
	snapshot := append([]models.Expense(nil), s.expenses...)
	s.mu.Unlock()

	return s.persist(ctx, storage.KeyExpenses, snapshot)
}

// ProfitPlan returns the current plan, or nil when none was saved.
func (s *Store) ProfitPlan() *models.ProfitPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.profitPlan == nil {
		return nil
	}
	plan := *s.profitPlan
	return &plan
}

// SaveProfitPlan overwrites the singleton plan slot and persists it.
func (s *Store) SaveProfitPlan(ctx context.Context, plan models.ProfitPlan) error {
	s.mu.Lock()
	s.profitPlan = &plan
	s.mu.Unlock()

	return s.persist(ctx, storage.KeyProfitPlan, plan)
}

// LearningProgress returns a deep copy of the progress mapping.
func (s *Store) LearningProgress() models.LearningProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := models.LearningProgress{}
	for moduleID, lessons := range s.learningProgress {
		out[moduleID] = make(map[string]bool, len(lessons))
		for lessonID, done := range lessons {
			out[moduleID][lessonID] = done
		}
	}
	return out
}

// MarkLessonComplete sets the completion flag for one lesson and persists the
// whole mapping. Marking twice is idempotent.
func (s *Store) MarkLessonComplete(ctx context.Context, moduleID, lessonID string) error {
	s.mu.Lock()
	if s.learningProgress[moduleID] == nil {
		s.learningProgress[moduleID] = make(map[string]bool)
	}
	s.learningProgress[moduleID][lessonID] = true
	s.mu.Unlock()

	return s.persist(ctx, storage.KeyLearningProgress, s.LearningProgress())
}

// PriceAlerts returns a copy of the alert list in insertion order.
func (s *Store) PriceAlerts() []models.PriceAlert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.PriceAlert(nil), s.priceAlerts...)
}

// AddPriceAlert assigns an id, marks the alert active and persists the list.
func (s *Store) AddPriceAlert(ctx context.Context, input models.PriceAlertInput) (models.PriceAlert, error) {
	alert := models.PriceAlert{
		ID:          s.newID(),
		CropType:    input.CropType,
		TargetPrice: input.TargetPrice,
		Active:      true,
	}

	s.mu.Lock()
	s.priceAlerts = append(s.priceAlerts, alert)
	snapshot := append([]models.PriceAlert(nil), s.priceAlerts...)
	s.mu.Unlock()

	return alert, s.persist(ctx, storage.KeyPriceAlerts, snapshot)
}

// RemovePriceAlert deletes the matching alert. Unknown ids are a silent no-op.
func (s *Store) RemovePriceAlert(ctx context.Context, id string) error {
	s.mu.Lock()
	kept := s.priceAlerts[:0]
	for _, alert := range s.priceAlerts {
		if alert.ID != id {
			kept = append(kept, alert)
		}
	}
	s.priceAlerts = kept
	snapshot := append([]models.PriceAlert(nil), s.priceAlerts...)
	s.mu.Unlock()

	return s.persist(ctx, storage.KeyPriceAlerts, snapshot)
}

func (s *Store) persist(ctx context.Context, key string, value any) error {
	if err := s.gateway.Set(ctx, key, value); err != nil {
		s.logger.Error("write-through failed, memory retained",
			zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
