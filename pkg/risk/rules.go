package risk

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/envirohealth-ai/platform/pkg/common/models"
	"gopkg.in/yaml.v3"
)

// RuleSpec is the declarative form of an interaction rule: one lifestyle
// precondition, one environmental threshold, one emitted factor.
type RuleSpec struct {
	Name      string        `yaml:"name" json:"name"`
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Condition RuleCondition `yaml:"condition" json:"condition"`
	Factor    FactorSpec    `yaml:"factor" json:"factor"`
}

type RuleCondition struct {
	SmokingStatus          string `yaml:"smoking_status,omitempty" json:"smoking_status,omitempty"`
	MedicalHistoryContains string `yaml:"medical_history_contains,omitempty" json:"medical_history_contains,omitempty"`
	WorkEnvironment        string `yaml:"work_environment,omitempty" json:"work_environment,omitempty"`
	AQIAbove               int    `yaml:"aqi_above,omitempty" json:"aqi_above,omitempty"`
	WaterRiskAtLeast       string `yaml:"water_risk_at_least,omitempty" json:"water_risk_at_least,omitempty"`
}

type FactorSpec struct {
	Description string `yaml:"description" json:"description"`
	Severity    string `yaml:"severity" json:"severity"`
}

type RulesConfig struct {
	Rules []RuleSpec `yaml:"rules" json:"rules"`
}

// LoadRules reads a declarative interaction rule file. An empty path yields
// the built-in defaults.
func LoadRules(path string) (RulesConfig, error) {
	if path == "" {
		return defaultRuleSpecs(), nil
	}
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return defaultRuleSpecs(), err
	}

	var cfg RulesConfig
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return RulesConfig{}, err
	}

	if len(cfg.Rules) == 0 {
		return RulesConfig{}, errors.New("no interaction rules configured")
	}

	return cfg, nil
}

func defaultRuleSpecs() RulesConfig {
	return RulesConfig{Rules: []RuleSpec{
		{
			Name:      "smoking-air-pollution",
			Enabled:   true,
			Condition: RuleCondition{SmokingStatus: "current", AQIAbove: 100},
			Factor: FactorSpec{
				Description: "Smoking combined with poor air quality multiplies cardiovascular and respiratory risk",
				Severity:    "high",
			},
		},
		{
			Name:      "asthma-air-pollution",
			Enabled:   true,
			Condition: RuleCondition{MedicalHistoryContains: "asthma", AQIAbove: 100},
			Factor: FactorSpec{
				Description: "Asthma with sustained exposure to poor air quality raises the likelihood of severe respiratory episodes",
				Severity:    "high",
			},
		},
	}}
}

// Compile turns declarative specs into evaluable rules. Disabled rules are
// skipped; absent condition fields do not constrain the match.
func (c RulesConfig) Compile() []InteractionRule {
	var rules []InteractionRule
	for _, spec := range c.Rules {
		if !spec.Enabled {
			continue
		}
		spec := spec
		rules = append(rules, InteractionRule{
			Name:    spec.Name,
			Matches: spec.Condition.matcher(),
			Factor: models.RiskFactor{
				Category:    models.CategoryInteraction,
				Description: spec.Factor.Description,
				Impact:      models.ImpactNegative,
				Severity:    severityFor(spec.Factor.Severity),
			},
		})
	}
	return rules
}

func (c RuleCondition) matcher() func(models.LifestyleProfile, models.EnvironmentalReading) bool {
	return func(profile models.LifestyleProfile, reading models.EnvironmentalReading) bool {
		if c.SmokingStatus != "" && string(profile.SmokingStatus) != c.SmokingStatus {
			return false
		}
		if c.WorkEnvironment != "" && string(profile.WorkEnvironment) != c.WorkEnvironment {
			return false
		}
		if c.MedicalHistoryContains != "" && !historyContains(profile.MedicalHistory, c.MedicalHistoryContains) {
			return false
		}
		if c.AQIAbove > 0 && reading.AQI <= c.AQIAbove {
			return false
		}
		if c.WaterRiskAtLeast != "" && !contaminationAtLeast(reading.WaterContamination, models.ContaminationRisk(c.WaterRiskAtLeast)) {
			return false
		}
		return true
	}
}

var contaminationOrder = map[models.ContaminationRisk]int{
	models.ContaminationLow:    1,
	models.ContaminationMedium: 2,
	models.ContaminationHigh:   3,
}

func contaminationAtLeast(got, want models.ContaminationRisk) bool {
	return contaminationOrder[got] >= contaminationOrder[want] && contaminationOrder[want] > 0
}

func severityFor(s string) models.RiskLevel {
	switch s {
	case "low":
		return models.RiskLow
	case "medium":
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}
