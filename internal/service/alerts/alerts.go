// Package alerts sweeps the saved price alerts against the market catalog
// and pushes a notification for each one whose target price is met.
package alerts

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/farmplan/internal/domain/models"
	"github.com/mamadbah2/farmplan/internal/market"
	"github.com/mamadbah2/farmplan/pkg/clients/notify"
)

// AlertSource provides the saved alerts. Satisfied by the application state
// store.
type AlertSource interface {
	PriceAlerts() []models.PriceAlert
}

// Service runs price-alert sweeps.
type Service struct {
	source   AlertSource
	catalog  *market.Catalog
	notifier notify.Client
	logger   *zap.Logger
}

// NewService wires an alert sweep service. The notifier may be nil when no
// webhook is configured; triggered alerts are then only logged.
func NewService(source AlertSource, catalog *market.Catalog, notifier notify.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, catalog: catalog, notifier: notifier, logger: logger}
}

// Sweep evaluates every saved alert and notifies the webhook for each
// triggered one. Notification failures are logged per alert; the sweep keeps
// going and returns the full triggered set.
func (s *Service) Sweep(ctx context.Context) []models.TriggeredAlert {
	triggered := s.catalog.Evaluate(s.source.PriceAlerts())
	if len(triggered) == 0 {
		s.logger.Debug("alert sweep found nothing to report")
		return nil
	}

	for _, hit := range triggered {
		s.logger.Info("price alert triggered",
			zap.String("alert_id", hit.Alert.ID),
			zap.String("crop", string(hit.Alert.CropType)),
			zap.Float64("target", hit.Alert.TargetPrice),
			zap.Float64("current", hit.CurrentPrice))

		if s.notifier == nil {
			continue
		}

		notification := notify.Notification{
			Title:   "Price alert",
			Message: fmt.Sprintf("%s reached %.2f (target %.2f)", hit.Alert.CropType, hit.CurrentPrice, hit.Alert.TargetPrice),
			Crop:    string(hit.Alert.CropType),
			Price:   fmt.Sprintf("%.2f", hit.CurrentPrice),
		}
		if err := s.notifier.Send(ctx, notification); err != nil {
			s.logger.Error("failed to deliver alert notification",
				zap.String("alert_id", hit.Alert.ID), zap.Error(err))
		}
	}

	return triggered
}
