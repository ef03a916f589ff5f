package engine

import "github.com/mamadbah2/farmplan/internal/domain/models"

// Advisory messages attached to scoring branches. Only the listed branches
// emit one; the low-contribution branches stay silent.
const (
	msgWeatherHigh   = "High weather risk in your area. Consider crop insurance."
	msgWeatherMedium = "Moderate weather risk. Monitor forecasts regularly."
	msgSingleCrop    = "Single crop dependency increases financial risk. Consider diversification."
	msgMultiCrop     = "Good diversification, but more crops can reduce risk further."
	msgSmallFarm     = "Small farm size limits income potential. Explore cooperative farming."
)

const maxRiskMessages = 3

// CalculateRiskScore sums three independent risk factors into a 15-100 score
// and classifies it. Factors are evaluated in a fixed order (weather,
// diversification, farm size) so the advisory messages come out in that
// order too. CropType is ignored by the scoring.
func CalculateRiskScore(input models.RiskInput) models.RiskResult {
	score := 0
	risks := []string{}

	// Weather contribution (5-40 points).
	switch input.WeatherRisk {
	case models.WeatherHigh:
		score += 40
		risks = append(risks, msgWeatherHigh)
	case models.WeatherMedium:
		score += 20
		risks = append(risks, msgWeatherMedium)
	default:
		score += 5
	}

	// Diversification contribution (5-30 points).
	switch input.Diversification {
	case models.DiversificationSingle:
		score += 30
		risks = append(risks, msgSingleCrop)
	case models.DiversificationMulti:
		score += 15
		risks = append(risks, msgMultiCrop)
	default:
		score += 5
	}

	// Farm size contribution (5-25 points).
	switch {
	case input.FarmSize < 2:
		score += 25
		risks = append(risks, msgSmallFarm)
	case input.FarmSize < 5:
		score += 15
	default:
		score += 5
	}

	var level models.RiskLevel
	switch {
	case score < 30:
		level = models.RiskLow
	case score < 60:
		level = models.RiskMedium
	default:
		level = models.RiskHigh
	}

	if len(risks) > maxRiskMessages {
		risks = risks[:maxRiskMessages]
	}

	return models.RiskResult{
		Score:     score,
		RiskLevel: level,
		Risks:     risks,
	}
}
