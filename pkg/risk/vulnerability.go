package risk

import (
	"math"
	"strings"

	"github.com/envirohealth-ai/platform/pkg/common/models"
)

var respiratoryTerms = []string{"asthma", "copd", "bronchitis", "lung"}
var cardiacTerms = []string{"heart", "cardio"}

// ComputeVulnerabilityMultiplier derives the personal amplification factor
// applied to environmental exposure. It starts at 1.0 and only grows: age
// band adjustment, then each medical-history entry is matched independently
// (case-insensitive substring), so several qualifying conditions stack.
// The multiplier has no upper cap; the environmental score is clamped after
// amplification instead.
func ComputeVulnerabilityMultiplier(profile models.LifestyleProfile) float64 {
	multiplier := 1.0

	switch profile.AgeRange {
	case models.Age51to65, models.Age65Plus:
		multiplier += 0.2
	case models.Age13to17:
		multiplier += 0.1
	}

	for _, condition := range profile.MedicalHistory {
		c := strings.ToLower(condition)
		if containsAny(c, respiratoryTerms) {
			multiplier += 0.4
		}
		if containsAny(c, cardiacTerms) {
			multiplier += 0.3
		}
		if strings.Contains(c, "allergy") {
			multiplier += 0.1
		}
	}

	if strings.EqualFold(profile.Gender, "female") {
		for _, condition := range profile.MedicalHistory {
			if strings.Contains(strings.ToLower(condition), "pregnan") {
				multiplier += 0.4
				break
			}
		}
	}

	return math.Round(multiplier*100) / 100
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
