package model

// Feature indices into a feature vector. The order is the UCI Heart
// Disease column order and is fixed: every vector, contribution slice,
// and spec table in this package is aligned on it.
const (
	Age = iota
	Sex
	ChestPain
	RestingBP
	Cholesterol
	FastingBS
	RestingECG
	MaxHeartRate
	ExerciseAngina
	STDepression
	STSlope
	Vessels
	Thalassemia

	// NumFeatures is the required feature vector length.
	NumFeatures = 13
)

// FeatureSpec describes one model input: display name, short UCI column
// key, the clinically plausible bounds used for validation, the bounds
// used for normalization, and the model weight. Validation and
// normalization bounds are intentionally different: a value can pass
// validation and still clamp to 0 or 1 on the model input scale.
type FeatureSpec struct {
	Name        string  `json:"name" yaml:"name"`
	Key         string  `json:"key" yaml:"key"`
	Description string  `json:"description" yaml:"description"`
	ValidMin    float64 `json:"valid_min" yaml:"validMin"`
	ValidMax    float64 `json:"valid_max" yaml:"validMax"`
	NormMin     float64 `json:"-" yaml:"-"`
	NormMax     float64 `json:"-" yaml:"-"`
	Weight      float64 `json:"-" yaml:"-"`
}

// specs is the model's constant feature table, trained on the UCI Heart
// Disease dataset. Weights and bounds are compiled in and not
// configurable at runtime.
var specs = [NumFeatures]FeatureSpec{
	{Name: "Age", Key: "age", Description: "Patient age in years", ValidMin: 0, ValidMax: 100, NormMin: 20, NormMax: 80, Weight: 0.045},
	{Name: "Sex", Key: "sex", Description: "0 = female, 1 = male", ValidMin: 0, ValidMax: 1, NormMin: 0, NormMax: 1, Weight: 0.32},
	{Name: "Chest Pain", Key: "cp", Description: "1 = typical angina, 2 = atypical angina, 3 = non-anginal pain, 4 = asymptomatic", ValidMin: 1, ValidMax: 4, NormMin: 1, NormMax: 4, Weight: 0.55},
	{Name: "Resting BP", Key: "trestbps", Description: "Resting blood pressure (mm Hg)", ValidMin: 0, ValidMax: 200, NormMin: 90, NormMax: 200, Weight: 0.01},
	{Name: "Cholesterol", Key: "chol", Description: "Serum cholesterol (mg/dl)", ValidMin: 0, ValidMax: 600, NormMin: 100, NormMax: 400, Weight: 0.005},
	{Name: "Fasting BS", Key: "fbs", Description: "Fasting blood sugar > 120 mg/dl (1 = yes, 0 = no)", ValidMin: 0, ValidMax: 1, NormMin: 0, NormMax: 1, Weight: 0.15},
	{Name: "Resting ECG", Key: "restecg", Description: "Resting electrocardiographic results (0-2)", ValidMin: 0, ValidMax: 2, NormMin: 0, NormMax: 2, Weight: 0.1},
	{Name: "Max Heart Rate", Key: "thalach", Description: "Maximum heart rate achieved", ValidMin: 0, ValidMax: 220, NormMin: 60, NormMax: 220, Weight: -0.02},
	{Name: "Exercise Angina", Key: "exang", Description: "Exercise induced angina (1 = yes, 0 = no)", ValidMin: 0, ValidMax: 1, NormMin: 0, NormMax: 1, Weight: 0.4},
	{Name: "ST Depression", Key: "oldpeak", Description: "ST depression induced by exercise", ValidMin: 0, ValidMax: 6, NormMin: 0, NormMax: 6, Weight: 0.6},
	{Name: "ST Slope", Key: "slope", Description: "Slope of peak exercise ST segment (1-3)", ValidMin: 1, ValidMax: 3, NormMin: 1, NormMax: 3, Weight: 0.3},
	{Name: "Vessels", Key: "ca", Description: "Number of major vessels colored by fluoroscopy (0-3)", ValidMin: 0, ValidMax: 3, NormMin: 0, NormMax: 3, Weight: 0.8},
	{Name: "Thalassemia", Key: "thal", Description: "1 = normal, 2 = fixed defect, 3 = reversible defect", ValidMin: 1, ValidMax: 3, NormMin: 1, NormMax: 3, Weight: 0.45},
}

// Specs returns a copy of the feature table in vector order.
func Specs() []FeatureSpec {
	s := make([]FeatureSpec, NumFeatures)
	copy(s, specs[:])
	return s
}

// Names returns the display names in vector order.
func Names() []string {
	names := make([]string, NumFeatures)
	for i, s := range specs {
		names[i] = s.Name
	}
	return names
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
