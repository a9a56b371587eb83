package model

// Normalize rescales each feature into [0, 1] using its normalization
// bounds, clamping at the edges. The spans are fixed and nonzero, so the
// division never degenerates. Expects a vector of NumFeatures values
// that already passed Check.
func Normalize(features []float64) []float64 {
	normalized := make([]float64, len(features))
	for i, v := range features {
		s := specs[i]
		normalized[i] = clamp((v-s.NormMin)/(s.NormMax-s.NormMin), 0, 1)
	}
	return normalized
}
