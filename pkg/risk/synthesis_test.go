package risk

import (
	"strings"
	"testing"

	"github.com/envirohealth-ai/platform/pkg/common/models"
)

func TestLevelForBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  models.RiskLevel
	}{
		{0, models.RiskLow},
		{34.999, models.RiskLow},
		{35, models.RiskMedium},
		{64.999, models.RiskMedium},
		{65, models.RiskHigh},
		{100, models.RiskHigh},
	}
	for _, tc := range cases {
		if got := LevelFor(tc.score); got != tc.want {
			t.Fatalf("LevelFor(%f) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestSynthesizeCompositeBlend(t *testing.T) {
	report := SynthesizeReport(SynthesisInput{
		EnvironmentalRisk:       50,
		LifestyleRisk:           25,
		VulnerabilityMultiplier: 1.0,
	})

	// 50*0.6 + 25*0.4 = 40
	if report.CompositeRisk != 40 {
		t.Fatalf("expected composite 40, got %f", report.CompositeRisk)
	}
	if report.RiskLevel != models.RiskMedium {
		t.Fatalf("expected medium level, got %s", report.RiskLevel)
	}
}

func TestSynthesizeSmokerInPollutedAir(t *testing.T) {
	profile := models.LifestyleProfile{
		AgeRange:        models.Age26to35,
		SmokingStatus:   models.SmokingCurrent,
		ActivityLevel:   models.ActivitySedentary,
		WorkEnvironment: models.WorkOutdoor,
		StressLevel:     models.StressHigh,
	}
	reading := models.EnvironmentalReading{
		AQI:                150,
		SoilContamination:  models.ContaminationUnknown,
		WaterContamination: models.ContaminationUnknown,
	}

	engine := NewEngine(nil)
	report, err := engine.Assess(reading, &profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.RiskLevel == models.RiskLow {
		t.Fatalf("smoker at AQI 150 must not assess as low risk (composite %f)", report.CompositeRisk)
	}
	if len(report.Factors) == 0 {
		t.Fatal("expected factors")
	}
	first := report.Factors[0]
	if first.Category != models.CategoryInteraction || first.Severity != models.RiskHigh {
		t.Fatalf("expected the smoking-pollution interaction first, got %+v", first)
	}
}

func TestSynthesizeFactorOrderAndTruncation(t *testing.T) {
	in := SynthesisInput{
		EnvironmentalRisk: 60,
		LifestyleRisk:     80,
		Reading: models.EnvironmentalReading{
			AQI:                120,
			PM25:               40,
			WaterContamination: models.ContaminationHigh,
			SoilContamination:  models.ContaminationMedium,
		},
		LifestyleRiskFactors:     []string{"a", "b", "c", "d"},
		LifestylePositiveFactors: []string{"p1", "p2", "p3", "p4"},
		InteractionFactors: []models.RiskFactor{{
			Category: models.CategoryInteraction,
			Severity: models.RiskHigh,
			Impact:   models.ImpactNegative,
		}},
	}

	factors := SynthesizeReport(in).Factors
	// interaction + AQI + PM2.5 + water + soil + 3 risk + 3 positive
	if len(factors) != 11 {
		t.Fatalf("expected 11 factors, got %d", len(factors))
	}
	if factors[0].Category != models.CategoryInteraction {
		t.Fatalf("interaction factors must lead, got %s", factors[0].Category)
	}
	if !strings.Contains(factors[1].Description, "air quality index (120)") {
		t.Fatalf("expected the AQI factor second, got %q", factors[1].Description)
	}
	if !strings.Contains(factors[3].Description, "water contamination") {
		t.Fatalf("expected water before soil, got %q", factors[3].Description)
	}

	var lifestyleRisk, lifestylePositive int
	for _, f := range factors {
		if f.Category != models.CategoryLifestyle {
			continue
		}
		if f.Impact == models.ImpactNegative {
			lifestyleRisk++
		} else {
			lifestylePositive++
		}
	}
	if lifestyleRisk != 3 || lifestylePositive != 3 {
		t.Fatalf("lifestyle factors must be capped at 3/3, got %d/%d", lifestyleRisk, lifestylePositive)
	}
}

func TestSynthesizeRecommendationsIndependent(t *testing.T) {
	in := SynthesisInput{
		Reading: models.EnvironmentalReading{
			AQI:                130,
			PM25:               30,
			WaterContamination: models.ContaminationHigh,
			SoilContamination:  models.ContaminationMedium,
		},
	}

	recs := SynthesizeReport(in).Recommendations
	titles := make(map[string]models.RiskLevel, len(recs))
	for _, r := range recs {
		titles[r.Title] = r.Priority
	}

	for _, want := range []string{"Monitor Air Quality Daily", "Reduce PM2.5 Exposure", "Drinking Water Precautions", "Soil Safety Precautions", "Regular Health Checkups"} {
		if _, ok := titles[want]; !ok {
			t.Fatalf("missing recommendation %q in %v", want, titles)
		}
	}
	if titles["Drinking Water Precautions"] != models.RiskHigh {
		t.Fatalf("high water contamination must yield a high-priority water recommendation")
	}
	if recs[len(recs)-1].Title != "Regular Health Checkups" {
		t.Fatalf("general checkup recommendation must come last, got %q", recs[len(recs)-1].Title)
	}
}

func TestSynthesizeHardWaterSkincareOnlyWhenClean(t *testing.T) {
	in := SynthesisInput{
		Reading: models.EnvironmentalReading{
			WaterHardness:      models.HardnessHard,
			WaterContamination: models.ContaminationLow,
		},
	}
	if !hasRecommendation(SynthesizeReport(in).Recommendations, "Hard Water Skincare") {
		t.Fatal("expected skincare recommendation for clean hard water")
	}

	in.Reading.WaterContamination = models.ContaminationHigh
	if hasRecommendation(SynthesizeReport(in).Recommendations, "Hard Water Skincare") {
		t.Fatal("skincare recommendation must not appear alongside contamination")
	}
}

func TestSynthesizeSummaryDrivers(t *testing.T) {
	summary := SynthesizeReport(SynthesisInput{EnvironmentalRisk: 80, LifestyleRisk: 20}).Summary
	if !strings.Contains(summary, "Environmental factors are the primary concern") {
		t.Fatalf("expected environmental driver in %q", summary)
	}
	if !strings.Contains(summary, "healthy lifestyle choices") {
		t.Fatalf("expected lifestyle mitigation note in %q", summary)
	}

	summary = SynthesizeReport(SynthesisInput{EnvironmentalRisk: 20, LifestyleRisk: 80}).Summary
	if !strings.Contains(summary, "Lifestyle factors are the primary concern") {
		t.Fatalf("expected lifestyle driver in %q", summary)
	}
	if !strings.Contains(summary, "Good environmental conditions") {
		t.Fatalf("expected environmental mitigation note in %q", summary)
	}

	summary = SynthesizeReport(SynthesisInput{EnvironmentalRisk: 50, LifestyleRisk: 50}).Summary
	if !strings.Contains(summary, "Both environmental and lifestyle factors") {
		t.Fatalf("expected balanced driver in %q", summary)
	}
}

func hasRecommendation(recs []models.Recommendation, title string) bool {
	for _, r := range recs {
		if r.Title == title {
			return true
		}
	}
	return false
}
