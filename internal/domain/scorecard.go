package domain

// ParameterScore is one row of the scorecard. Value is nil when upstream did
// not supply the metric; such rows carry Included=false and contribute
// nothing to the weighted overall.
type ParameterScore struct {
	Name        string
	DisplayName string
	Value       *float64
	Display     string
	Score       float64
	Weight      float64
	Included    bool
}

// ScoreCard always holds exactly ten entries in canonical parameter order.
type ScoreCard struct {
	Parameters []ParameterScore
}

func (sc ScoreCard) Get(name string) (ParameterScore, bool) {
	for _, p := range sc.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return ParameterScore{}, false
}

type RecommendationLabel string

const (
	StrongBuy RecommendationLabel = "STRONG BUY"
	Buy       RecommendationLabel = "BUY"
	Hold      RecommendationLabel = "HOLD"
	Weak      RecommendationLabel = "WEAK"
	Avoid     RecommendationLabel = "AVOID"
)

type Recommendation struct {
	Score  float64
	Label  RecommendationLabel
	Reason string
}

// AnalysisResult is the terminal artifact of one analysis request. Charts are
// base64 PNGs and may be empty when rendering failed or was skipped.
type AnalysisResult struct {
	Symbol         string
	Profile        CompanyProfile
	ScoreCard      ScoreCard
	Recommendation Recommendation
	PriceChart     string
	VolumeChart    string
}
