// Package engine hosts the profit and risk calculators. Both functions are
// pure: no I/O, no validation, no error returns. Degenerate numeric input
// (zero or negative farm size, NaN costs) flows through IEEE-754 arithmetic
// unchanged; guarding against it is the caller's job.
package engine

import (
	"time"

	"github.com/mamadbah2/farmplan/internal/domain/models"
)

// CalculateProfitPlan derives the cost and break-even figures for a season
// plan. The cost breakdown echoes the four cost inputs verbatim.
func CalculateProfitPlan(input models.ProfitInput) models.ProfitResult {
	totalCost := input.SeedCost + input.FertilizerCost + input.LaborCost + input.IrrigationCost

	costPerAcre := totalCost / input.FarmSize
	yieldPerAcre := input.ExpectedYield / input.FarmSize

	// Zero expected yield means no break-even price exists; report 0 rather
	// than +Inf.
	breakEvenPrice := 0.0
	if input.ExpectedYield > 0 {
		breakEvenPrice = totalCost / input.ExpectedYield
	}

	return models.ProfitResult{
		TotalCost:      totalCost,
		CostPerAcre:    costPerAcre,
		YieldPerAcre:   yieldPerAcre,
		BreakEvenPrice: breakEvenPrice,
		CostBreakdown: models.CostBreakdown{
			Seeds:      input.SeedCost,
			Fertilizer: input.FertilizerCost,
			Labor:      input.LaborCost,
			Irrigation: input.IrrigationCost,
		},
	}
}

// BuildProfitPlan freezes a calculator input and its derived totals into the
// persisted plan record.
func BuildProfitPlan(input models.ProfitInput, now time.Time) models.ProfitPlan {
	result := CalculateProfitPlan(input)

	return models.ProfitPlan{
		CropType:       input.CropType,
		FarmSize:       input.FarmSize,
		SeedCost:       input.SeedCost,
		FertilizerCost: input.FertilizerCost,
		LaborCost:      input.LaborCost,
		IrrigationCost: input.IrrigationCost,
		ExpectedYield:  input.ExpectedYield,
		TotalCost:      result.TotalCost,
		BreakEvenPrice: result.BreakEvenPrice,
		CreatedAt:      now,
	}
}
