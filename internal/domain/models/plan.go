package models

import "time"

// CropType identifies one of the crops supported by the planner.
type CropType string

const (
	CropRice       CropType = "rice"
	CropWheat      CropType = "wheat"
	CropCotton     CropType = "cotton"
	CropVegetables CropType = "vegetables"
	CropSugarcane  CropType = "sugarcane"
	CropMaize      CropType = "maize"
	CropPulses     CropType = "pulses"
)

// CropTypes lists the supported crops in display order.
var CropTypes = []CropType{
	CropRice, CropWheat, CropCotton, CropVegetables,
	CropSugarcane, CropMaize, CropPulses,
}

// ProfitInput holds the raw numbers a farmer enters into the profit
// calculator. Farm size is in acres, yield in quintals, costs in currency
// units. The engine performs no validation on these values.
type ProfitInput struct {
	CropType       CropType `json:"cropType"`
	FarmSize       float64  `json:"farmSize"`
	SeedCost       float64  `json:"seedCost"`
	FertilizerCost float64  `json:"fertilizerCost"`
	LaborCost      float64  `json:"laborCost"`
	IrrigationCost float64  `json:"irrigationCost"`
	ExpectedYield  float64  `json:"expectedYield"`
}

// CostBreakdown echoes the four cost inputs of a profit calculation.
type CostBreakdown struct {
	Seeds      float64 `json:"seeds"`
	Fertilizer float64 `json:"fertilizer"`
	Labor      float64 `json:"labor"`
	Irrigation float64 `json:"irrigation"`
}

// ProfitResult is the derived output of the profit calculator.
type ProfitResult struct {
	TotalCost      float64       `json:"totalCost"`
	CostPerAcre    float64       `json:"costPerAcre"`
	YieldPerAcre   float64       `json:"yieldPerAcre"`
	BreakEvenPrice float64       `json:"breakEvenPrice"`
	CostBreakdown  CostBreakdown `json:"costBreakdown"`
}

// ProfitPlan is the persisted singleton plan: the calculator inputs plus the
// derived totals frozen at save time.
type ProfitPlan struct {
	CropType       CropType  `json:"cropType"`
	FarmSize       float64   `json:"farmSize"`
	SeedCost       float64   `json:"seedCost"`
	FertilizerCost float64   `json:"fertilizerCost"`
	LaborCost      float64   `json:"laborCost"`
	IrrigationCost float64   `json:"irrigationCost"`
	ExpectedYield  float64   `json:"expectedYield"`
	TotalCost      float64   `json:"totalCost"`
	BreakEvenPrice float64   `json:"breakEvenPrice"`
	CreatedAt      time.Time `json:"createdAt"`
}
