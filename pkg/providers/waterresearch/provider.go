package waterresearch

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/envirohealth-ai/platform/pkg/common/config"
	"github.com/envirohealth-ai/platform/pkg/common/logger"
	"github.com/envirohealth-ai/platform/pkg/common/models"
	"github.com/envirohealth-ai/platform/pkg/providers/perplexity"
)

const dataSource = "perplexity-research"

const systemPrompt = "You are an environmental science assistant. Answer concisely with factual drinking water quality data for the requested location, including the water source, pH, hardness, and any contamination advisories."

// Provider answers drinking water quality questions for a location by
// querying a research model and parsing the prose answer.
type Provider struct {
	client *perplexity.Client
}

func NewProvider(cfg *config.Config) *Provider {
	return &Provider{client: perplexity.NewClient(cfg)}
}

func (p *Provider) Research(ctx context.Context, location string) (models.WaterResult, error) {
	prompt := fmt.Sprintf("What is the drinking water quality near %s? Include the main water source, typical pH, water hardness, and whether there are any active contamination advisories or boil water notices.", location)

	answer, err := p.client.Research(ctx, systemPrompt, prompt)
	if err != nil {
		logger.WithField("error", err.Error()).Warn("Water research failed")
		return models.WaterResult{}, fmt.Errorf("water research: %w", err)
	}

	properties := ParseProperties(answer)
	return models.WaterResult{
		Location:        location,
		Properties:      properties,
		Recommendations: recommendationsFor(properties),
		Confidence:      "moderate",
		DataSource:      dataSource,
	}, nil
}

var phPattern = regexp.MustCompile(`(?i)ph\s*(?:of|is|:)?\s*(\d+\.?\d*)`)

// ParseProperties extracts structured water facts from a research answer.
// Unstated facts stay neutral: pH 7.0, unknown hardness and contamination.
func ParseProperties(text string) models.WaterProperties {
	lowered := strings.ToLower(text)

	properties := models.WaterProperties{
		SourceType:        sourceFrom(lowered),
		PH:                7.0,
		Hardness:          models.HardnessUnknown,
		ContaminationRisk: models.ContaminationUnknown,
	}

	if match := phPattern.FindStringSubmatch(text); match != nil {
		if value, err := strconv.ParseFloat(match[1], 64); err == nil && value >= 0 && value <= 14 {
			properties.PH = value
		}
	}

	switch {
	case strings.Contains(lowered, "very hard") || strings.Contains(lowered, "hard water"):
		properties.Hardness = models.HardnessHard
	case strings.Contains(lowered, "moderately hard") || strings.Contains(lowered, "moderate hardness"):
		properties.Hardness = models.HardnessModerate
	case strings.Contains(lowered, "soft water") || strings.Contains(lowered, "soft"):
		properties.Hardness = models.HardnessSoft
	}

	properties.ContaminationRisk = contaminationFrom(lowered)
	if properties.ContaminationRisk == models.ContaminationHigh {
		properties.HealthImplications = append(properties.HealthImplications,
			"Contaminated drinking water poses gastrointestinal and long-term exposure risks")
	}

	return properties
}

func sourceFrom(lowered string) string {
	for _, source := range []string{"groundwater", "reservoir", "river", "lake", "aquifer", "well"} {
		if strings.Contains(lowered, source) {
			return source
		}
	}
	return "municipal"
}

func contaminationFrom(lowered string) models.ContaminationRisk {
	for _, keyword := range []string{"unsafe", "boil", "contaminated", "avoid drinking", "do not drink"} {
		if strings.Contains(lowered, keyword) {
			return models.ContaminationHigh
		}
	}
	for _, keyword := range []string{"caution", "filter recommended", "moderate contamination", "elevated levels"} {
		if strings.Contains(lowered, keyword) {
			return models.ContaminationMedium
		}
	}
	for _, keyword := range []string{"safe to drink", "meets all standards", "no advisories", "excellent quality"} {
		if strings.Contains(lowered, keyword) {
			return models.ContaminationLow
		}
	}
	return models.ContaminationUnknown
}

func recommendationsFor(properties models.WaterProperties) []string {
	var recs []string
	switch properties.ContaminationRisk {
	case models.ContaminationHigh:
		recs = append(recs, "Use bottled or boiled water for drinking until advisories clear")
	case models.ContaminationMedium:
		recs = append(recs, "Use a certified carbon filter for drinking water")
	}
	if properties.Hardness == models.HardnessHard {
		recs = append(recs, "Consider a softening filter to reduce scale and skin dryness")
	}
	return recs
}
