package model

// Reference patient vectors from the UCI dataset documentation. The CLI
// sample command emits these and the tests score them.

// SampleHighRisk is a patient expected to score above the risk threshold.
func SampleHighRisk() []float64 {
	return []float64{65, 1, 4, 160, 300, 1, 2, 120, 1, 3.0, 3, 2, 3}
}

// SampleLowRisk is a patient expected to score below the risk threshold.
func SampleLowRisk() []float64 {
	return []float64{35, 0, 1, 110, 180, 0, 0, 180, 0, 0.0, 1, 0, 1}
}

// SampleDefault is a middle-of-the-road starting point for manual entry.
func SampleDefault() []float64 {
	return []float64{50, 1, 2, 120, 200, 0, 0, 150, 0, 1.0, 2, 0, 2}
}
