// Package market serves the per-crop price catalog and evaluates price
// alerts against it. The catalog is a fixed reference table; there is no live
// market feed.
package market

import (
	"fmt"
	"time"

	"github.com/mamadbah2/farmplan/internal/domain/models"
)

type catalogEntry struct {
	currentPrice float64
	unit         string
	trend        models.PriceTrend
	change       float64
	fairMin      float64
	fairMax      float64
}

var catalog = map[models.CropType]catalogEntry{
	models.CropRice:       {2100, "quintal", models.TrendUp, 5.2, 2000, 2300},
	models.CropWheat:      {2050, "quintal", models.TrendDown, -2.1, 2000, 2200},
	models.CropCotton:     {5800, "quintal", models.TrendUp, 3.5, 5500, 6200},
	models.CropVegetables: {1500, "quintal", models.TrendStable, 0.5, 1200, 1800},
	models.CropSugarcane:  {310, "quintal", models.TrendUp, 2.0, 300, 350},
	models.CropMaize:      {1850, "quintal", models.TrendStable, 0.8, 1700, 2000},
	models.CropPulses:     {7500, "quintal", models.TrendUp, 4.2, 7000, 8000},
}

// Catalog exposes the market price table.
type Catalog struct {
	asOf time.Time
}

// NewCatalog stamps the catalog with a load time.
func NewCatalog(asOf time.Time) *Catalog {
	return &Catalog{asOf: asOf}
}

// Price returns the catalog entry for a crop.
func (c *Catalog) Price(crop models.CropType) (models.MarketPrice, error) {
	entry, ok := catalog[crop]
	if !ok {
		return models.MarketPrice{}, fmt.Errorf("no market price for crop %q", crop)
	}

	return models.MarketPrice{
		CropType:     crop,
		CurrentPrice: entry.currentPrice,
		Unit:         entry.unit,
		Trend:        entry.trend,
		Change:       entry.change,
		FairRange:    models.FairRange{Min: entry.fairMin, Max: entry.fairMax},
		LastUpdated:  c.asOf,
	}, nil
}

// Prices returns every catalog entry in crop display order.
func (c *Catalog) Prices() []models.MarketPrice {
	out := make([]models.MarketPrice, 0, len(catalog))
	for _, crop := range models.CropTypes {
		price, err := c.Price(crop)
		if err != nil {
			continue
		}
		out = append(out, price)
	}
	return out
}

// PriceComparison relates a plan's break-even price to the market band.
type PriceComparison struct {
	CropType       models.CropType `json:"cropType"`
	BreakEvenPrice float64         `json:"breakEvenPrice"`
	CurrentPrice   float64         `json:"currentPrice"`
	WithinFair     bool            `json:"withinFairRange"`
	Margin         float64         `json:"margin"`
}

// Compare reports whether the current market price covers the break-even
// price and sits inside the fair band.
func (c *Catalog) Compare(crop models.CropType, breakEvenPrice float64) (PriceComparison, error) {
	price, err := c.Price(crop)
	if err != nil {
		return PriceComparison{}, err
	}

	return PriceComparison{
		CropType:       crop,
		BreakEvenPrice: breakEvenPrice,
		CurrentPrice:   price.CurrentPrice,
		WithinFair:     price.CurrentPrice >= price.FairRange.Min && price.CurrentPrice <= price.FairRange.Max,
		Margin:         price.CurrentPrice - breakEvenPrice,
	}, nil
}

// Evaluate returns the alerts whose target price is met by the catalog, in
// the order they were created. Alerts for unknown crops are skipped.
func (c *Catalog) Evaluate(alerts []models.PriceAlert) []models.TriggeredAlert {
	var triggered []models.TriggeredAlert
	for _, alert := range alerts {
		if !alert.Active {
			continue
		}
		price, err := c.Price(alert.CropType)
		if err != nil {
			continue
		}
		if price.CurrentPrice >= alert.TargetPrice {
			triggered = append(triggered, models.TriggeredAlert{
				Alert:        alert,
				CurrentPrice: price.CurrentPrice,
			})
		}
	}
	return triggered
}
