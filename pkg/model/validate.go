package model

import "fmt"

// ShapeError indicates a feature vector of the wrong length.
type ShapeError struct {
	Got int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("expected %d features, got %d", NumFeatures, e.Got)
}

// RangeError reports the first feature found outside its valid bounds.
type RangeError struct {
	Index int
	Key   string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s value %g out of valid range [%g, %g]", e.Key, e.Value, e.Min, e.Max)
}

// Check verifies vector shape and per-feature bounds. Bounds are
// inclusive: values exactly at ValidMin or ValidMax pass. The scan stops
// at the first offending feature.
func Check(features []float64) error {
	if len(features) != NumFeatures {
		return &ShapeError{Got: len(features)}
	}
	for i, v := range features {
		s := specs[i]
		if v < s.ValidMin || v > s.ValidMax {
			return &RangeError{Index: i, Key: s.Key, Value: v, Min: s.ValidMin, Max: s.ValidMax}
		}
	}
	return nil
}

// Validate reports whether the vector is safe to score. A vector that
// fails validation must never reach Score.
func Validate(features []float64) bool {
	return Check(features) == nil
}
