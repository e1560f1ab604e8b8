package report

import (
	"context"
	"errors"
	"testing"

	"github.com/envirohealth-ai/platform/pkg/common/models"
)

type fakeAir struct {
	result models.AirQualityResult
	err    error
}

func (f fakeAir) Fetch(ctx context.Context, lat, lon float64) (models.AirQualityResult, error) {
	return f.result, f.err
}

type fakeSoil struct {
	result models.SoilResult
	err    error
}

func (f fakeSoil) Research(ctx context.Context, location string) (models.SoilResult, error) {
	return f.result, f.err
}

type fakeWater struct {
	result models.WaterResult
	err    error
}

func (f fakeWater) Research(ctx context.Context, location string) (models.WaterResult, error) {
	return f.result, f.err
}

func TestCollectReadingMergesProviders(t *testing.T) {
	svc := &Service{
		air: fakeAir{result: models.AirQualityResult{
			Data: models.AirQualityData{AQI: 125, PM25: 40.5},
		}},
		soil: fakeSoil{result: models.SoilResult{
			Properties: models.SoilProperties{PH: 6.4, ContaminationRisk: models.ContaminationMedium},
		}},
		water: fakeWater{result: models.WaterResult{
			Properties: models.WaterProperties{PH: 7.6, ContaminationRisk: models.ContaminationLow, Hardness: models.HardnessHard},
		}},
	}

	reading := svc.collectReading(context.Background(), 40.7, -74.0)
	if reading.AQI != 125 || reading.PM25 != 40.5 {
		t.Fatalf("air data lost: %+v", reading)
	}
	if reading.SoilPH != 6.4 || reading.SoilContamination != models.ContaminationMedium {
		t.Fatalf("soil data lost: %+v", reading)
	}
	if reading.WaterPH != 7.6 || reading.WaterHardness != models.HardnessHard {
		t.Fatalf("water data lost: %+v", reading)
	}
}

func TestCollectReadingFallsBackPerProvider(t *testing.T) {
	providerErr := errors.New("upstream down")
	svc := &Service{
		air: fakeAir{result: models.AirQualityResult{
			Data: models.AirQualityData{AQI: 75},
		}},
		soil:  fakeSoil{err: providerErr},
		water: fakeWater{err: providerErr},
	}

	reading := svc.collectReading(context.Background(), 0, 0)
	// Air survived; soil and water degrade to neutral values.
	if reading.AQI != 75 {
		t.Fatalf("expected surviving air data, got %+v", reading)
	}
	if reading.SoilPH != 7.0 || reading.SoilContamination != models.ContaminationUnknown {
		t.Fatalf("expected neutral soil fallback, got %+v", reading)
	}
	if reading.WaterPH != 7.0 || reading.WaterContamination != models.ContaminationUnknown {
		t.Fatalf("expected neutral water fallback, got %+v", reading)
	}
	if reading.WaterHardness != models.HardnessUnknown {
		t.Fatalf("expected unknown hardness, got %s", reading.WaterHardness)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	req := models.ReportRequest{Latitude: 51.5, Longitude: -0.12, LifestyleID: "lid"}
	report := models.RiskReport{
		EnvironmentalRisk:       42.5,
		LifestyleRisk:           30,
		VulnerabilityMultiplier: 1.3,
		CompositeRisk:           37.5,
		RiskLevel:               models.RiskMedium,
		Factors: []models.RiskFactor{{
			Category:    models.CategoryEnvironmental,
			Description: "Moderate air quality index (75)",
			Impact:      models.ImpactNegative,
			Severity:    models.RiskMedium,
		}},
		Recommendations: []models.Recommendation{{
			Category: "general",
			Title:    "Regular Health Checkups",
			Priority: models.RiskMedium,
		}},
		Summary:       "Your health risk is moderate.",
		FeatureVector: map[string]float64{"aqi": 75},
	}

	record, err := newRecord("rid", req, report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.RiskLevel != "medium" || record.Version != reportVersion {
		t.Fatalf("unexpected record fields: %+v", record)
	}

	resp, err := record.Response()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ReportID != "rid" || resp.Latitude != 51.5 {
		t.Fatalf("identity fields lost: %+v", resp)
	}
	if resp.CompositeRisk != 37.5 || resp.RiskLevel != models.RiskMedium {
		t.Fatalf("scores lost: %+v", resp)
	}
	if len(resp.Factors) != 1 || resp.Factors[0].Description != "Moderate air quality index (75)" {
		t.Fatalf("factors lost: %+v", resp.Factors)
	}
	if resp.FeatureVector["aqi"] != 75 {
		t.Fatalf("feature vector lost: %+v", resp.FeatureVector)
	}
}

func TestCacheKeyRounding(t *testing.T) {
	cache := &Cache{}
	a := cache.Key(40.71281, -74.00601, "p1")
	b := cache.Key(40.71299, -74.00649, "p1")
	if a != b {
		t.Fatalf("nearby coordinates should share a key: %s vs %s", a, b)
	}
	if a == cache.Key(40.71281, -74.00601, "p2") {
		t.Fatal("different profiles must not share a key")
	}
	if cache.Key(0, 0, "") != "report:0.000:0.000:anon" {
		t.Fatalf("unexpected anonymous key %s", cache.Key(0, 0, ""))
	}
}
