package risk

import (
	"fmt"

	"github.com/envirohealth-ai/platform/pkg/common/models"
)

// Composite weights: environment dominates the blend 60/40.
const (
	environmentalWeight = 0.6
	lifestyleWeight     = 0.4
)

// Caps on lifestyle factors carried into the final report. Truncation keeps
// insertion order from the lifestyle calculator; excess factors are dropped,
// not deferred.
const (
	maxLifestyleRiskFactors     = 3
	maxLifestylePositiveFactors = 3
	maxLifestyleRecommendations = 2
)

// SynthesisInput carries the sub-scores and factor material into report
// synthesis. Profile may be nil when no lifestyle data was supplied.
type SynthesisInput struct {
	EnvironmentalRisk        float64
	LifestyleRisk            float64
	VulnerabilityMultiplier  float64
	Reading                  models.EnvironmentalReading
	Profile                  *models.LifestyleProfile
	LifestyleRiskFactors     []string
	LifestylePositiveFactors []string
	InteractionFactors       []models.RiskFactor
}

// SynthesizeReport blends the sub-scores into the composite assessment and
// assembles the explanatory factor list, recommendations, and summary.
func SynthesizeReport(in SynthesisInput) models.RiskReport {
	composite := clampScore(in.EnvironmentalRisk*environmentalWeight + in.LifestyleRisk*lifestyleWeight)
	level := LevelFor(composite)

	multiplier := in.VulnerabilityMultiplier
	if multiplier < 1.0 {
		multiplier = 1.0
	}

	return models.RiskReport{
		EnvironmentalRisk:       clampScore(in.EnvironmentalRisk),
		LifestyleRisk:           clampScore(in.LifestyleRisk),
		VulnerabilityMultiplier: multiplier,
		CompositeRisk:           composite,
		RiskLevel:               level,
		Factors:                 buildFactors(in),
		Recommendations:         buildRecommendations(in),
		Summary:                 buildSummary(level, in.EnvironmentalRisk, in.LifestyleRisk),
		FeatureVector:           BuildFeatureVector(in.Reading, in.Profile),
	}
}

// buildFactors assembles the factor list in its fixed order: interaction
// factors, environmental negatives (air, water, soil), then the capped
// lifestyle risk and positive factors.
func buildFactors(in SynthesisInput) []models.RiskFactor {
	factors := make([]models.RiskFactor, 0, len(in.InteractionFactors)+8)
	factors = append(factors, in.InteractionFactors...)

	if in.Reading.AQI > 100 {
		factors = append(factors, models.RiskFactor{
			Category:    models.CategoryEnvironmental,
			Description: fmt.Sprintf("High air quality index (%d)", in.Reading.AQI),
			Impact:      models.ImpactNegative,
			Severity:    models.RiskHigh,
		})
	} else if in.Reading.AQI > 50 {
		factors = append(factors, models.RiskFactor{
			Category:    models.CategoryEnvironmental,
			Description: fmt.Sprintf("Moderate air quality index (%d)", in.Reading.AQI),
			Impact:      models.ImpactNegative,
			Severity:    models.RiskMedium,
		})
	}
	if in.Reading.PM25 > 35 {
		factors = append(factors, models.RiskFactor{
			Category:    models.CategoryEnvironmental,
			Description: fmt.Sprintf("Elevated PM2.5 levels (%.1f ug/m3)", in.Reading.PM25),
			Impact:      models.ImpactNegative,
			Severity:    models.RiskMedium,
		})
	}

	if severity, ok := contaminationSeverity(in.Reading.WaterContamination); ok {
		factors = append(factors, models.RiskFactor{
			Category:    models.CategoryEnvironmental,
			Description: fmt.Sprintf("%s water contamination risk", capitalize(string(in.Reading.WaterContamination))),
			Impact:      models.ImpactNegative,
			Severity:    severity,
		})
	}
	if severity, ok := contaminationSeverity(in.Reading.SoilContamination); ok {
		factors = append(factors, models.RiskFactor{
			Category:    models.CategoryEnvironmental,
			Description: fmt.Sprintf("%s soil contamination risk", capitalize(string(in.Reading.SoilContamination))),
			Impact:      models.ImpactNegative,
			Severity:    severity,
		})
	}

	for _, description := range truncate(in.LifestyleRiskFactors, maxLifestyleRiskFactors) {
		factors = append(factors, models.RiskFactor{
			Category:    models.CategoryLifestyle,
			Description: description,
			Impact:      models.ImpactNegative,
			Severity:    models.RiskMedium,
		})
	}
	for _, description := range truncate(in.LifestylePositiveFactors, maxLifestylePositiveFactors) {
		factors = append(factors, models.RiskFactor{
			Category:    models.CategoryLifestyle,
			Description: description,
			Impact:      models.ImpactPositive,
			Severity:    models.RiskMedium,
		})
	}

	return factors
}

// buildRecommendations evaluates each recommendation rule independently;
// none suppresses another.
func buildRecommendations(in SynthesisInput) []models.Recommendation {
	var recs []models.Recommendation

	if in.Reading.AQI > 100 {
		recs = append(recs, models.Recommendation{
			Category:    "environmental",
			Title:       "Monitor Air Quality Daily",
			Description: "Check AQI before outdoor activities. Limit exertion when AQI exceeds 100. Consider air purifiers indoors.",
			Priority:    models.RiskHigh,
		})
	} else if in.Reading.AQI > 50 {
		recs = append(recs, models.Recommendation{
			Category:    "environmental",
			Title:       "Air Quality Awareness",
			Description: "Monitor daily air quality and adjust outdoor activities accordingly. Sensitive individuals should be cautious.",
			Priority:    models.RiskMedium,
		})
	}

	if in.Reading.PM25 > 25 {
		recs = append(recs, models.Recommendation{
			Category:    "environmental",
			Title:       "Reduce PM2.5 Exposure",
			Description: "Wear N95 masks during high pollution days. Keep windows closed when outdoor AQI is elevated.",
			Priority:    models.RiskHigh,
		})
	}

	switch in.Reading.WaterContamination {
	case models.ContaminationMedium:
		recs = append(recs, models.Recommendation{
			Category:    "environmental",
			Title:       "Drinking Water Precautions",
			Description: "Use a certified carbon filter for drinking water and check local quality advisories.",
			Priority:    models.RiskMedium,
		})
	case models.ContaminationHigh:
		recs = append(recs, models.Recommendation{
			Category:    "environmental",
			Title:       "Drinking Water Precautions",
			Description: "Boil water or use bottled water for drinking until local advisories clear.",
			Priority:    models.RiskHigh,
		})
	}

	if in.Reading.WaterHardness == models.HardnessHard && in.Reading.WaterContamination == models.ContaminationLow {
		recs = append(recs, models.Recommendation{
			Category:    "environmental",
			Title:       "Hard Water Skincare",
			Description: "Hard water can dry skin and hair; consider a softening filter for bathing.",
			Priority:    models.RiskLow,
		})
	}

	if in.Reading.SoilContamination == models.ContaminationMedium || in.Reading.SoilContamination == models.ContaminationHigh {
		recs = append(recs, models.Recommendation{
			Category:    "environmental",
			Title:       "Soil Safety Precautions",
			Description: "Test soil before gardening and wash produce grown locally.",
			Priority:    models.RiskMedium,
		})
	}

	if in.Profile != nil {
		for _, description := range truncate(LifestyleRecommendations(*in.Profile), maxLifestyleRecommendations) {
			recs = append(recs, models.Recommendation{
				Category:    "lifestyle",
				Title:       "Lifestyle Improvement",
				Description: description,
				Priority:    models.RiskMedium,
			})
		}
	}

	recs = append(recs, models.Recommendation{
		Category:    "general",
		Title:       "Regular Health Checkups",
		Description: "Schedule annual checkups to monitor impact of environmental exposures on your health.",
		Priority:    models.RiskMedium,
	})

	return recs
}

func buildSummary(level models.RiskLevel, envRisk, lifestyleRisk float64) string {
	var summary string
	switch level {
	case models.RiskLow:
		summary = "Your overall health risk is low. "
	case models.RiskMedium:
		summary = "Your health risk is moderate. "
	case models.RiskHigh:
		summary = "Your health risk is elevated and requires attention. "
	}

	switch {
	case envRisk > lifestyleRisk*1.5:
		summary += "Environmental factors are the primary concern. "
	case lifestyleRisk > envRisk*1.5:
		summary += "Lifestyle factors are the primary concern. "
	default:
		summary += "Both environmental and lifestyle factors contribute to your risk. "
	}

	if lifestyleRisk < 30 {
		summary += "Your healthy lifestyle choices help mitigate environmental risks."
	} else if envRisk < 30 {
		summary += "Good environmental conditions support your health despite lifestyle considerations."
	}

	return summary
}

func contaminationSeverity(risk models.ContaminationRisk) (models.RiskLevel, bool) {
	switch risk {
	case models.ContaminationMedium:
		return models.RiskMedium, true
	case models.ContaminationHigh:
		return models.RiskHigh, true
	default:
		return "", false
	}
}

func truncate(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
