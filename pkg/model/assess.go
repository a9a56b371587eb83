package model

import "math"

const (
	// highRiskThreshold separates the two risk classifications. A
	// probability strictly above the threshold is high risk.
	highRiskThreshold = 0.5

	// TopFactorCount is how many top attributions an Assessment carries.
	TopFactorCount = 5

	RiskLevelHigh = "high"
	RiskLevelLow  = "low"
)

// Assessment bundles everything a presentation layer needs to report one
// prediction: the probability, its classification, the distance from the
// decision boundary, and the ranked per-feature attributions.
type Assessment struct {
	Probability   float64       `json:"probability" yaml:"probability"`
	RiskLevel     string        `json:"risk_level" yaml:"riskLevel"`
	Confidence    float64       `json:"confidence" yaml:"confidence"`
	Contributions []float64     `json:"contributions" yaml:"contributions"`
	Attributions  []Attribution `json:"attributions" yaml:"attributions"`
	TopFactors    []Attribution `json:"top_factors" yaml:"topFactors"`
}

// Assess runs the full pipeline: bounds check, scoring, and attribution
// ranking. On invalid input it returns the Check error unchanged and the
// scorer is never invoked.
func Assess(features []float64) (*Assessment, error) {
	if err := Check(features); err != nil {
		return nil, err
	}

	p := Score(features)
	attrs := Rank(p.Contributions, features)

	return &Assessment{
		Probability:   p.Probability,
		RiskLevel:     RiskLevel(p.Probability),
		Confidence:    Confidence(p.Probability),
		Contributions: p.Contributions,
		Attributions:  attrs,
		TopFactors:    TopN(attrs, TopFactorCount),
	}, nil
}

// RiskLevel classifies a probability. Exactly 0.5 is low risk.
func RiskLevel(probability float64) string {
	if probability > highRiskThreshold {
		return RiskLevelHigh
	}
	return RiskLevelLow
}

// Confidence is the distance from the decision boundary scaled to [0, 1].
func Confidence(probability float64) float64 {
	return math.Abs(probability-highRiskThreshold) * 2
}
