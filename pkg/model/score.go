package model

import "math"

const (
	// Bias is the model intercept, added to the logit before squashing.
	Bias = -2.5

	// logitBound caps the logit magnitude before exponentiation. This is
	// the model's only overflow guard.
	logitBound = 500
)

// Prediction is one scoring outcome: the disease probability and the
// signed per-feature logit contributions, index-aligned with the input
// vector. Contributions sum with Bias to the unclamped logit, so they
// explain the score on the logit scale, not the probability scale.
type Prediction struct {
	Probability   float64   `json:"probability" yaml:"probability"`
	Contributions []float64 `json:"contributions" yaml:"contributions"`
}

// Score computes the heart disease probability for a validated feature
// vector. Score performs no validation of its own; run Check first.
func Score(features []float64) Prediction {
	normalized := Normalize(features)

	logit := Bias
	contributions := make([]float64, len(normalized))
	for i, n := range normalized {
		c := specs[i].Weight * n
		contributions[i] = c
		logit += c
	}

	return Prediction{
		Probability:   sigmoid(logit),
		Contributions: contributions,
	}
}

func sigmoid(x float64) float64 {
	x = clamp(x, -logitBound, logitBound)
	return 1.0 / (1.0 + math.Exp(-x))
}
