package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/mchmarny/heartrisk/pkg/model"
)

const (
	sampleHigh    = "high"
	sampleLow     = "low"
	sampleDefault = "default"
)

var (
	sampleCaseFlag = &cli.StringFlag{
		Name:  "case",
		Usage: "Sample case [high, low, default]",
		Value: sampleDefault,
	}

	featuresCmd = &cli.Command{
		Name:            "features",
		Aliases:         []string{"f"},
		Usage:           "List the model's input features with their valid ranges",
		HideHelpCommand: true,
		Action:          cmdFeatures,
		Flags: []cli.Flag{
			formatFlag,
		},
	}

	sampleCmd = &cli.Command{
		Name:    "sample",
		Aliases: []string{"s"},
		Usage:   "Emit a reference patient file (use as a template for assess --file)",
		UsageText: `heartrisk sample --case high > patient.json   # known high risk case
   heartrisk sample --case low                   # known low risk case`,
		HideHelpCommand: true,
		Action:          cmdSample,
		Flags: []cli.Flag{
			sampleCaseFlag,
			formatFlag,
		},
	}
)

func cmdFeatures(c *cli.Context) error {
	applyFlags(c)
	return encode(model.Specs())
}

func cmdSample(c *cli.Context) error {
	applyFlags(c)

	var v []float64
	switch c.String(sampleCaseFlag.Name) {
	case sampleHigh:
		v = model.SampleHighRisk()
	case sampleLow:
		v = model.SampleLowRisk()
	default:
		v = model.SampleDefault()
	}

	m := make(map[string]float64, model.NumFeatures)
	for i, s := range model.Specs() {
		m[s.Key] = v[i]
	}
	return encode(m)
}
