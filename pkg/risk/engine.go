package risk

import "github.com/envirohealth-ai/platform/pkg/common/models"

// Engine runs the full assessment pipeline with a fixed interaction rule
// set. The zero-value rule set is replaced by the defaults.
type Engine struct {
	rules []InteractionRule
}

func NewEngine(rules []InteractionRule) *Engine {
	if len(rules) == 0 {
		rules = DefaultInteractionRules()
	}
	return &Engine{rules: rules}
}

// Assess computes the complete risk report for one reading and an optional
// lifestyle profile. With no profile, lifestyle risk is zero and the
// vulnerability multiplier stays at 1.0. The call is pure: identical inputs
// always produce an identical report.
func (e *Engine) Assess(reading models.EnvironmentalReading, profile *models.LifestyleProfile) (models.RiskReport, error) {
	input := SynthesisInput{
		VulnerabilityMultiplier: 1.0,
		Reading:                 reading,
		Profile:                 profile,
	}

	if profile != nil {
		score, riskFactors, positiveFactors, err := ComputeLifestyleRisk(*profile)
		if err != nil {
			return models.RiskReport{}, err
		}
		input.LifestyleRisk = score
		input.LifestyleRiskFactors = riskFactors
		input.LifestylePositiveFactors = positiveFactors
		input.VulnerabilityMultiplier = ComputeVulnerabilityMultiplier(*profile)
		input.InteractionFactors = DetectInteractionsWith(e.rules, *profile, reading)
	}

	input.EnvironmentalRisk = ComputeEnvironmentalRisk(reading, input.VulnerabilityMultiplier)

	return SynthesizeReport(input), nil
}
