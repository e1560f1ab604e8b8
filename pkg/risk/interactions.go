package risk

import (
	"strings"

	"github.com/envirohealth-ai/platform/pkg/common/models"
)

// InteractionRule flags a lifestyle trait combined with an environmental
// threshold whose joint effect compounds beyond the additive sub-scores.
// Rules only explain; they never change the numeric composite.
type InteractionRule struct {
	Name    string
	Matches func(profile models.LifestyleProfile, reading models.EnvironmentalReading) bool
	Factor  models.RiskFactor
}

// DefaultInteractionRules returns the built-in rule set. New rules follow
// the same shape: one lifestyle predicate, one environmental threshold, one
// high-severity factor.
func DefaultInteractionRules() []InteractionRule {
	return []InteractionRule{
		{
			Name: "smoking-air-pollution",
			Matches: func(p models.LifestyleProfile, r models.EnvironmentalReading) bool {
				return p.SmokingStatus == models.SmokingCurrent && r.AQI > 100
			},
			Factor: models.RiskFactor{
				Category:    models.CategoryInteraction,
				Description: "Smoking combined with poor air quality multiplies cardiovascular and respiratory risk",
				Impact:      models.ImpactNegative,
				Severity:    models.RiskHigh,
			},
		},
		{
			Name: "asthma-air-pollution",
			Matches: func(p models.LifestyleProfile, r models.EnvironmentalReading) bool {
				return historyContains(p.MedicalHistory, "asthma") && r.AQI > 100
			},
			Factor: models.RiskFactor{
				Category:    models.CategoryInteraction,
				Description: "Asthma with sustained exposure to poor air quality raises the likelihood of severe respiratory episodes",
				Impact:      models.ImpactNegative,
				Severity:    models.RiskHigh,
			},
		},
	}
}

// DetectInteractions evaluates the default rules against the raw profile and
// reading. Every matching rule contributes one factor, in rule order.
func DetectInteractions(profile models.LifestyleProfile, reading models.EnvironmentalReading) []models.RiskFactor {
	return DetectInteractionsWith(DefaultInteractionRules(), profile, reading)
}

// DetectInteractionsWith evaluates an explicit rule set, allowing deployments
// to extend or replace the built-in rules (see LoadRules).
func DetectInteractionsWith(rules []InteractionRule, profile models.LifestyleProfile, reading models.EnvironmentalReading) []models.RiskFactor {
	var factors []models.RiskFactor
	for _, rule := range rules {
		if rule.Matches == nil {
			continue
		}
		if rule.Matches(profile, reading) {
			factors = append(factors, rule.Factor)
		}
	}
	return factors
}

func historyContains(history []string, term string) bool {
	for _, condition := range history {
		if strings.Contains(strings.ToLower(condition), term) {
			return true
		}
	}
	return false
}
