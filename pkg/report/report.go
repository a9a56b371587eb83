// Package report renders plain-text summaries of an assessment for
// terminal output.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/mchmarny/heartrisk/pkg/model"
)

const (
	lineWidth = 60
	nameWidth = 15
)

// Summary is the one-line verdict, e.g.
// "HIGH RISK - 65.5% probability of heart disease".
func Summary(a *model.Assessment) string {
	return fmt.Sprintf("%s RISK - %.1f%% probability of heart disease",
		strings.ToUpper(a.RiskLevel), a.Probability*100)
}

// Analysis renders the ranked feature attribution section.
func Analysis(a *model.Assessment) string {
	var b strings.Builder

	b.WriteString("FEATURE IMPORTANCE ANALYSIS\n")
	b.WriteString(strings.Repeat("=", lineWidth) + "\n\n")

	fmt.Fprintf(&b, "TOP %d CONTRIBUTING FACTORS:\n\n", len(a.TopFactors))
	for _, f := range a.TopFactors {
		impact := "DECREASES"
		if f.IncreasesRisk() {
			impact = "INCREASES"
		}
		fmt.Fprintf(&b, "  %-*s (%.1f): %s risk by %.4f\n",
			nameWidth, f.Name, f.OriginalValue, impact, math.Abs(f.Contribution))
	}

	b.WriteString("\n" + strings.Repeat("-", lineWidth) + "\n")
	b.WriteString("ALL FEATURES IMPACT:\n\n")
	for _, f := range a.Attributions {
		sign := "-"
		if f.IncreasesRisk() {
			sign = "+"
		}
		fmt.Fprintf(&b, "  %-*s (%.1f): %s%.4f\n",
			nameWidth, f.Name, f.OriginalValue, sign, math.Abs(f.Contribution))
	}

	b.WriteString("\n" + strings.Repeat("=", lineWidth) + "\n")
	b.WriteString("Positive values increase heart disease risk, negative values\n")
	b.WriteString("decrease it. Larger absolute values have more impact on the\n")
	b.WriteString("prediction.\n")

	return b.String()
}

// Transparency renders the model provenance and confidence section.
func Transparency(a *model.Assessment) string {
	var b strings.Builder

	b.WriteString("TRANSPARENCY INFORMATION\n")
	b.WriteString(strings.Repeat("=", lineWidth) + "\n\n")

	b.WriteString("Model type: logistic regression (interpretable)\n")
	b.WriteString("Training data: UCI Heart Disease dataset\n")
	fmt.Fprintf(&b, "Features used: %d clinical and demographic variables\n", model.NumFeatures)
	b.WriteString("Attribution: additive contributions on the logit scale\n\n")

	fmt.Fprintf(&b, "Confidence level: %.1f%%\n", a.Confidence*100)
	fmt.Fprintf(&b, "Risk probability: %.1f%%\n", a.Probability*100)
	fmt.Fprintf(&b, "Classification: %s risk\n\n", a.RiskLevel)

	b.WriteString("This tool is for educational purposes only and is not intended\n")
	b.WriteString("for medical diagnosis. Always consult qualified healthcare\n")
	b.WriteString("professionals for medical decisions and treatment.\n")

	return b.String()
}

// Render produces the full report: summary, analysis, and transparency.
func Render(a *model.Assessment) string {
	return Summary(a) + "\n\n" + Analysis(a) + "\n" + Transparency(a)
}
