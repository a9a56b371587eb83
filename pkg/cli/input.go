package cli

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mchmarny/heartrisk/pkg/model"
)

// readPatientFile loads feature values keyed by the short UCI column
// names from a YAML or JSON file (JSON parses as YAML). Every feature
// must be present.
func readPatientFile(path string) ([]float64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading patient file: %s", path)
	}

	var m map[string]float64
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, errors.Wrapf(err, "error parsing patient file: %s", path)
	}

	features := make([]float64, model.NumFeatures)
	for i, s := range model.Specs() {
		v, ok := m[s.Key]
		if !ok {
			return nil, errors.Errorf("patient file missing feature: %s", s.Key)
		}
		features[i] = v
	}
	return features, nil
}
