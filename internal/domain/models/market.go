package models

import "time"

// PriceTrend indicates the recent direction of a market price.
type PriceTrend string

const (
	TrendUp     PriceTrend = "up"
	TrendDown   PriceTrend = "down"
	TrendStable PriceTrend = "stable"
)

// FairRange is the reference price band considered a fair deal for a crop.
type FairRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// MarketPrice is one entry of the per-crop price catalog.
type MarketPrice struct {
	CropType     CropType   `json:"cropType"`
	CurrentPrice float64    `json:"currentPrice"`
	Unit         string     `json:"unit"`
	Trend        PriceTrend `json:"trend"`
	Change       float64    `json:"change"`
	FairRange    FairRange  `json:"fairRange"`
	LastUpdated  time.Time  `json:"lastUpdated"`
}

// PriceAlert asks to be notified once a crop's market price reaches the
// target. Alerts are always active; the only way out is deletion.
type PriceAlert struct {
	ID          string   `json:"id"`
	CropType    CropType `json:"cropType"`
	TargetPrice float64  `json:"targetPrice"`
	Active      bool     `json:"active"`
}

// PriceAlertInput is the payload accepted when creating an alert.
type PriceAlertInput struct {
	CropType    CropType `json:"cropType" binding:"required"`
	TargetPrice float64  `json:"targetPrice" binding:"required"`
}

// TriggeredAlert pairs an alert with the catalog price that satisfied it.
type TriggeredAlert struct {
	Alert        PriceAlert `json:"alert"`
	CurrentPrice float64    `json:"currentPrice"`
}
