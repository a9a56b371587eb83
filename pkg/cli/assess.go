package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mchmarny/heartrisk/pkg/model"
	"github.com/mchmarny/heartrisk/pkg/report"
)

var (
	fileFlag = &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Path to a patient file (YAML or JSON) with feature values",
	}

	reportFlag = &cli.BoolFlag{
		Name:  "report",
		Usage: "Print a plain-text report instead of structured output",
	}

	assessCmd = &cli.Command{
		Name:    "assess",
		Aliases: []string{"a"},
		Usage:   "Score a patient feature vector and explain the prediction",
		UsageText: `heartrisk assess --age 65 --sex 1 --cp 4 --trestbps 160 --chol 300 \
      --fbs 1 --restecg 2 --thalach 120 --exang 1 --oldpeak 3 --slope 3 --ca 2 --thal 3
   heartrisk assess --file patient.yaml --report`,
		HideHelpCommand: true,
		Action:          cmdAssess,
		Flags:           append(featureFlags(), fileFlag, reportFlag, formatFlag, debugFlag),
	}
)

// featureFlags builds one float flag per model feature, keyed by the UCI
// column names.
func featureFlags() []cli.Flag {
	flags := make([]cli.Flag, 0, model.NumFeatures)
	for _, s := range model.Specs() {
		flags = append(flags, &cli.Float64Flag{
			Name:  s.Key,
			Usage: fmt.Sprintf("%s, valid %g-%g", s.Name, s.ValidMin, s.ValidMax),
		})
	}
	return flags
}

func cmdAssess(c *cli.Context) error {
	applyFlags(c)

	features, err := featuresFromArgs(c)
	if err != nil {
		return err
	}

	a, err := model.Assess(features)
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	slog.Debug("assessment complete",
		"probability", a.Probability,
		"risk", a.RiskLevel,
	)

	if c.Bool(reportFlag.Name) {
		_, err := fmt.Fprintln(os.Stdout, report.Render(a))
		return err
	}
	return encode(a)
}

// featuresFromArgs reads the vector either from a patient file or from
// the per-feature flags, which must then all be set.
func featuresFromArgs(c *cli.Context) ([]float64, error) {
	if path := c.String(fileFlag.Name); path != "" {
		return readPatientFile(path)
	}

	features := make([]float64, model.NumFeatures)
	for i, s := range model.Specs() {
		if !c.IsSet(s.Key) {
			return nil, fmt.Errorf("missing flag: --%s (set all %d feature flags, or use --file)", s.Key, model.NumFeatures)
		}
		features[i] = c.Float64(s.Key)
	}
	return features, nil
}
