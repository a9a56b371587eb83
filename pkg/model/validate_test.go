package model

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Samples(t *testing.T) {
	assert.True(t, Validate(SampleDefault()))
	assert.True(t, Validate(SampleHighRisk()))
	assert.True(t, Validate(SampleLowRisk()))
}

func TestValidate_ShortVector(t *testing.T) {
	v := SampleDefault()[:NumFeatures-1]
	assert.False(t, Validate(v))

	err := Check(v)
	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, NumFeatures-1, shapeErr.Got)
}

func TestValidate_LongVector(t *testing.T) {
	v := append(SampleDefault(), 1)
	assert.False(t, Validate(v))
}

func TestValidate_EmptyAndNil(t *testing.T) {
	assert.False(t, Validate(nil))
	assert.False(t, Validate([]float64{}))
}

func TestCheck_OutOfRange(t *testing.T) {
	v := SampleDefault()
	v[ChestPain] = 5 // valid max is 4

	err := Check(v)
	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, ChestPain, rangeErr.Index)
	assert.Equal(t, "cp", rangeErr.Key)
	assert.Equal(t, 5.0, rangeErr.Value)
	assert.Equal(t, 4.0, rangeErr.Max)
}

func TestCheck_BoundaryValuesPass(t *testing.T) {
	for i, s := range Specs() {
		v := SampleDefault()

		v[i] = s.ValidMin
		assert.NoError(t, Check(v), "%s at valid min", s.Key)

		v[i] = s.ValidMax
		assert.NoError(t, Check(v), "%s at valid max", s.Key)
	}
}

func TestCheck_OneULPBeyondFails(t *testing.T) {
	for i, s := range Specs() {
		v := SampleDefault()

		v[i] = math.Nextafter(s.ValidMin, math.Inf(-1))
		assert.Error(t, Check(v), "%s one ULP below valid min", s.Key)

		v[i] = math.Nextafter(s.ValidMax, math.Inf(1))
		assert.Error(t, Check(v), "%s one ULP above valid max", s.Key)
	}
}

func TestCheck_FirstOffenderReported(t *testing.T) {
	v := SampleDefault()
	v[Sex] = 2
	v[Vessels] = 9

	err := Check(v)
	var rangeErr *RangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, Sex, rangeErr.Index)
}

func TestCheck_DoesNotMutateInput(t *testing.T) {
	v := SampleHighRisk()
	want := SampleHighRisk()

	require.NoError(t, Check(v))
	assert.Equal(t, want, v)
}
