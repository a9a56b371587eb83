package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Length(t *testing.T) {
	n := Normalize(SampleDefault())
	require.Len(t, n, NumFeatures)
}

func TestNormalize_InUnitInterval(t *testing.T) {
	for _, v := range [][]float64{SampleDefault(), SampleHighRisk(), SampleLowRisk()} {
		for i, n := range Normalize(v) {
			assert.GreaterOrEqual(t, n, 0.0, "feature %d", i)
			assert.LessOrEqual(t, n, 1.0, "feature %d", i)
		}
	}
}

func TestNormalize_STDepression(t *testing.T) {
	v := SampleDefault()
	v[STDepression] = 1.0

	// (1.0 - 0) / (6 - 0)
	n := Normalize(v)
	assert.InDelta(t, 0.1667, n[STDepression], 0.0001)
}

func TestNormalize_ExactBounds(t *testing.T) {
	v := SampleDefault()

	v[ChestPain] = 1
	assert.Equal(t, 0.0, Normalize(v)[ChestPain])

	v[ChestPain] = 4
	assert.Equal(t, 1.0, Normalize(v)[ChestPain])
}

func TestNormalize_ClampsValidatedValues(t *testing.T) {
	v := SampleDefault()

	// age 10 passes validation (0-100) but sits below the norm range (20-80)
	v[Age] = 10
	require.True(t, Validate(v))
	assert.Equal(t, 0.0, Normalize(v)[Age])

	// cholesterol 500 passes validation (0-600) but exceeds the norm range (100-400)
	v[Age] = 50
	v[Cholesterol] = 500
	require.True(t, Validate(v))
	assert.Equal(t, 1.0, Normalize(v)[Cholesterol])
}

func TestNormalize_IdempotentAtEdges(t *testing.T) {
	// features whose norm range is the unit interval pass through
	// unchanged, so renormalizing their output is a fixed point
	v := SampleDefault()
	v[Sex] = 1
	v[FastingBS] = 0
	v[ExerciseAngina] = 1

	once := Normalize(v)

	v[Sex] = once[Sex]
	v[FastingBS] = once[FastingBS]
	v[ExerciseAngina] = once[ExerciseAngina]
	twice := Normalize(v)

	assert.Equal(t, once[Sex], twice[Sex])
	assert.Equal(t, once[FastingBS], twice[FastingBS])
	assert.Equal(t, once[ExerciseAngina], twice[ExerciseAngina])
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	v := SampleLowRisk()
	want := SampleLowRisk()

	Normalize(v)
	assert.Equal(t, want, v)
}
