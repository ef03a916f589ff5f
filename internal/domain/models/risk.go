package models

// Diversification describes how many distinct crops a farm grows.
type Diversification string

const (
	DiversificationSingle  Diversification = "single"
	DiversificationMulti   Diversification = "multi"
	DiversificationDiverse Diversification = "diverse"
)

// WeatherRisk is the farmer's assessment of local weather volatility.
type WeatherRisk string

const (
	WeatherLow    WeatherRisk = "low"
	WeatherMedium WeatherRisk = "medium"
	WeatherHigh   WeatherRisk = "high"
)

// RiskLevel classifies a summed risk score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskInput holds the factors fed into the risk meter. CropType is carried
// for display only and does not influence the score.
type RiskInput struct {
	CropType        CropType        `json:"cropType"`
	FarmSize        float64         `json:"farmSize"`
	Diversification Diversification `json:"diversification"`
	WeatherRisk     WeatherRisk     `json:"weatherRisk"`
}

// RiskResult is the scored outcome of a risk assessment. Risks holds at most
// three advisory messages in factor-evaluation order.
type RiskResult struct {
	Score     int       `json:"score"`
	RiskLevel RiskLevel `json:"riskLevel"`
	Risks     []string  `json:"risks"`
}
