package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/farmplan/internal/domain/models"
)

func TestCalculateRiskScore_BestCase(t *testing.T) {
	result := CalculateRiskScore(models.RiskInput{
		CropType:        models.CropPulses,
		FarmSize:        8,
		Diversification: models.DiversificationDiverse,
		WeatherRisk:     models.WeatherLow,
	})

	assert.Equal(t, 15, result.Score)
	assert.Equal(t, models.RiskLow, result.RiskLevel)
	assert.Empty(t, result.Risks)
}

func TestCalculateRiskScore_WorstCase(t *testing.T) {
	result := CalculateRiskScore(models.RiskInput{
		CropType:        models.CropRice,
		FarmSize:        1.5,
		Diversification: models.DiversificationSingle,
		WeatherRisk:     models.WeatherHigh,
	})

	assert.Equal(t, 95, result.Score)
	assert.Equal(t, models.RiskHigh, result.RiskLevel)
	require.Len(t, result.Risks, 3)
	// Messages come out in factor-evaluation order.
	assert.Equal(t, msgWeatherHigh, result.Risks[0])
	assert.Equal(t, msgSingleCrop, result.Risks[1])
	assert.Equal(t, msgSmallFarm, result.Risks[2])
}

func TestCalculateRiskScore_PointTable(t *testing.T) {
	tests := []struct {
		name      string
		input     models.RiskInput
		wantScore int
		wantLevel models.RiskLevel
		wantRisks int
	}{
		{
			name: "medium weather mid farm",
			input: models.RiskInput{
				FarmSize:        3,
				Diversification: models.DiversificationMulti,
				WeatherRisk:     models.WeatherMedium,
			},
			wantScore: 50, // 20 + 15 + 15
			wantLevel: models.RiskMedium,
			wantRisks: 2,
		},
		{
			name: "single crop large farm low weather",
			input: models.RiskInput{
				FarmSize:        10,
				Diversification: models.DiversificationSingle,
				WeatherRisk:     models.WeatherLow,
			},
			wantScore: 40, // 5 + 30 + 5
			wantLevel: models.RiskMedium,
			wantRisks: 1,
		},
		{
			name: "high weather diverse large farm",
			input: models.RiskInput{
				FarmSize:        6,
				Diversification: models.DiversificationDiverse,
				WeatherRisk:     models.WeatherHigh,
			},
			wantScore: 50, // 40 + 5 + 5
			wantLevel: models.RiskMedium,
			wantRisks: 1,
		},
		{
			name: "boundary two acres scores mid band",
			input: models.RiskInput{
				FarmSize:        2,
				Diversification: models.DiversificationDiverse,
				WeatherRisk:     models.WeatherLow,
			},
			wantScore: 25, // 5 + 5 + 15
			wantLevel: models.RiskLow,
			wantRisks: 0,
		},
		{
			name: "score 60 classifies high",
			input: models.RiskInput{
				FarmSize:        1,
				Diversification: models.DiversificationMulti,
				WeatherRisk:     models.WeatherMedium,
			},
			wantScore: 60, // 20 + 15 + 25
			wantLevel: models.RiskHigh,
			wantRisks: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateRiskScore(tt.input)

			assert.Equal(t, tt.wantScore, result.Score)
			assert.Equal(t, tt.wantLevel, result.RiskLevel)
			assert.Len(t, result.Risks, tt.wantRisks)
			assert.GreaterOrEqual(t, result.Score, 15)
			assert.LessOrEqual(t, result.Score, 100)
		})
	}
}

func TestCalculateRiskScore_UnknownEnumsFallThrough(t *testing.T) {
	// Unrecognized factor values land in the low-contribution branches.
	result := CalculateRiskScore(models.RiskInput{
		FarmSize:        7,
		Diversification: "unheard-of",
		WeatherRisk:     "",
	})

	assert.Equal(t, 15, result.Score)
	assert.Equal(t, models.RiskLow, result.RiskLevel)
	assert.Empty(t, result.Risks)
}
