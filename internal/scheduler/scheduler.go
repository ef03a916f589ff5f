package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/farmplan/internal/config"
	"github.com/mamadbah2/farmplan/internal/service/alerts"
	"github.com/mamadbah2/farmplan/internal/service/reporting"
)

// Scheduler manages the recurring background jobs: the daily price-alert
// sweep and the weekly expense export.
type Scheduler struct {
	cron         *cron.Cron
	alertSvc     *alerts.Service
	reportingSvc *reporting.Service
	cfg          config.SchedulerConfig
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.SchedulerConfig, alertSvc *alerts.Service, reportingSvc *reporting.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	// robfig/cron/v3 default parser is standard cron (5 fields: min, hour,
	// dom, month, dow).
	c := cron.New()

	return &Scheduler{
		cron:         c,
		alertSvc:     alertSvc,
		reportingSvc: reportingSvc,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler")

	if _, err := s.cron.AddFunc(s.cfg.AlertSweepSchedule, s.runAlertSweep); err != nil {
		s.logger.Error("failed to schedule alert sweep", zap.Error(err))
	}

	if _, err := s.cron.AddFunc(s.cfg.ExportSchedule, s.runWeeklyExport); err != nil {
		s.logger.Error("failed to schedule weekly export", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runAlertSweep() {
	s.logger.Info("running price alert sweep")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	triggered := s.alertSvc.Sweep(ctx)
	s.logger.Info("price alert sweep finished", zap.Int("triggered", len(triggered)))
}

func (s *Scheduler) runWeeklyExport() {
	s.logger.Info("running weekly expense export")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -7)

	exported, err := s.reportingSvc.ExportExpenses(ctx, start, end)
	if err != nil {
		s.logger.Error("weekly expense export failed", zap.Error(err))
		return
	}
	s.logger.Info("weekly expense export finished", zap.Int("rows", exported))
}
