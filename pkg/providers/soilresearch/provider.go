package soilresearch

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

const systemPrompt = "You are an environmental science assistant. Answer concisely with factual soil composition data for the requested location, including typical soil type, pH value, and any known contamination concerns."

// Provider answers soil composition questions for a location by querying a
// research model and parsing the prose answer into structured properties.
type Provider struct {
	client *perplexity.Client
}

func NewProvider(cfg *config.Config) *Provider {
	return &Provider{client: perplexity.NewClient(cfg)}
}

func (p *Provider) Research(ctx context.Context, location string) (models.SoilResult, error) {
	prompt := fmt.Sprintf("What is the typical soil composition near %s? Include the soil type, the soil pH, and whether there are known soil contamination risks (industrial sites, heavy metals, pesticides).", location)

	answer, err := p.client.Research(ctx, systemPrompt, prompt)
	if err != nil {
		logger.WithField("error", err.Error()).Warn("Soil research failed")
		return models.SoilResult{}, fmt.Errorf("soil research: %w", err)
	}

	properties := ParseProperties(answer)
	return models.SoilResult{
		Location:        location,
		Properties:      properties,
		Recommendations: recommendationsFor(properties),
		Confidence:      "moderate",
		DataSource:      dataSource,
	}, nil
}

var phPattern = regexp.MustCompile(`(?i)ph\s*(?:of|is|:)?\s*(\d+\.?\d*)`)

var soilTypes = []string{"clay", "sandy", "loam", "silt", "peat", "chalk"}

// ParseProperties extracts structured soil facts from a research answer.
// Anything the text does not state stays at its neutral value: pH 7.0 and an
// unknown contamination risk.
func ParseProperties(text string) models.SoilProperties {
	lowered := strings.ToLower(text)

	properties := models.SoilProperties{
		SoilType:          "unknown",
		PH:                7.0,
		ContaminationRisk: models.ContaminationUnknown,
	}

	if match := phPattern.FindStringSubmatch(text); match != nil {
		if value, err := strconv.ParseFloat(match[1], 64); err == nil && value >= 0 && value <= 14 {
			properties.PH = value
		}
	}

	for _, soilType := range soilTypes {
		if strings.Contains(lowered, soilType) {
			properties.SoilType = soilType
			break
		}
	}

	properties.ContaminationRisk = contaminationFrom(lowered)
	if properties.ContaminationRisk == models.ContaminationHigh {
		properties.HealthImplications = append(properties.HealthImplications,
			"Soil contamination can enter the body through locally grown produce and airborne dust")
	}

	return properties
}

func contaminationFrom(lowered string) models.ContaminationRisk {
	for _, keyword := range []string{"heavily contaminated", "severe contamination", "heavy metals", "superfund", "industrial contamination"} {
		if strings.Contains(lowered, keyword) {
			return models.ContaminationHigh
		}
	}
	for _, keyword := range []string{"some contamination", "moderate contamination", "pesticide residue", "elevated levels"} {
		if strings.Contains(lowered, keyword) {
			return models.ContaminationMedium
		}
	}
	for _, keyword := range []string{"no known contamination", "uncontaminated", "clean soil", "low contamination"} {
		if strings.Contains(lowered, keyword) {
			return models.ContaminationLow
		}
	}
	return models.ContaminationUnknown
}

func recommendationsFor(properties models.SoilProperties) []string {
	var recs []string
	if properties.ContaminationRisk == models.ContaminationMedium || properties.ContaminationRisk == models.ContaminationHigh {
		recs = append(recs, "Test soil before growing edible plants and wash locally grown produce thoroughly")
	}
	if properties.PH < 5.5 {
		recs = append(recs, "Acidic soil can mobilize metals; consider liming before gardening")
	}
	return recs
}
