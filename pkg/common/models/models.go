package models

import (
	"time"
)

// Categorical domain values. These arrive as strings on the wire, so each
// enum keeps a string representation plus an explicit Unknown arm where the
// upstream data can be missing.

type ContaminationRisk string

const (
	ContaminationLow     ContaminationRisk = "low"
	ContaminationMedium  ContaminationRisk = "medium"
	ContaminationHigh    ContaminationRisk = "high"
	ContaminationUnknown ContaminationRisk = "unknown"
)

type WaterHardness string

const (
	HardnessSoft     WaterHardness = "soft"
	HardnessModerate WaterHardness = "moderate"
	HardnessHard     WaterHardness = "hard"
	HardnessUnknown  WaterHardness = "unknown"
)

type AgeRange string

const (
	Age13to17 AgeRange = "13-17"
	Age18to25 AgeRange = "18-25"
	Age26to35 AgeRange = "26-35"
	Age36to50 AgeRange = "36-50"
	Age51to65 AgeRange = "51-65"
	Age65Plus AgeRange = "65+"
)

type SmokingStatus string

const (
	SmokingNever   SmokingStatus = "never"
	SmokingFormer  SmokingStatus = "former"
	SmokingCurrent SmokingStatus = "current"
)

type ActivityLevel string

const (
	ActivityActive    ActivityLevel = "active"
	ActivityModerate  ActivityLevel = "moderate"
	ActivitySedentary ActivityLevel = "sedentary"
)

type WorkEnvironment string

const (
	WorkIndoor  WorkEnvironment = "indoor"
	WorkOutdoor WorkEnvironment = "outdoor"
	WorkMixed   WorkEnvironment = "mixed"
)

type DietQuality string

const (
	DietPoor    DietQuality = "poor"
	DietAverage DietQuality = "average"
	DietGood    DietQuality = "good"
)

type SleepHours string

const (
	SleepShort    SleepHours = "<6"
	SleepAdequate SleepHours = "6-8"
	SleepLong     SleepHours = ">8"
)

type StressLevel string

const (
	StressLow    StressLevel = "low"
	StressMedium StressLevel = "medium"
	StressHigh   StressLevel = "high"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNegative Impact = "negative"
)

type FactorCategory string

const (
	CategoryEnvironmental FactorCategory = "environmental"
	CategoryLifestyle     FactorCategory = "lifestyle"
	CategoryInteraction   FactorCategory = "interaction"
)

// EnvironmentalReading is the merged snapshot of air, soil, and water signals
// for one location. It is assembled by the report service from the provider
// results (with neutral fallbacks for failed providers) and never mutated.
type EnvironmentalReading struct {
	AQI  int     `json:"aqi"`
	PM25 float64 `json:"pm25"`
	PM10 float64 `json:"pm10"`
	CO   float64 `json:"co"`
	NO2  float64 `json:"no2"`
	SO2  float64 `json:"so2"`
	O3   float64 `json:"o3"`

	SoilPH            float64           `json:"soil_ph"`
	SoilContamination ContaminationRisk `json:"soil_contamination"`

	WaterPH            float64           `json:"water_ph"`
	WaterContamination ContaminationRisk `json:"water_contamination"`
	WaterHardness      WaterHardness     `json:"water_hardness"`
}

// LifestyleProfile describes one person's habits and susceptibility inputs.
// AgeRange, SmokingStatus, ActivityLevel, and WorkEnvironment are required;
// the remaining fields are optional and their empty value means "not
// provided", which is treated differently from an explicit answer.
type LifestyleProfile struct {
	AgeRange        AgeRange        `json:"age_range"`
	Gender          string          `json:"gender,omitempty"`
	SmokingStatus   SmokingStatus   `json:"smoking_status"`
	ActivityLevel   ActivityLevel   `json:"activity_level"`
	WorkEnvironment WorkEnvironment `json:"work_environment"`

	DietQuality DietQuality `json:"diet_quality,omitempty"`
	SleepHours  SleepHours  `json:"sleep_hours,omitempty"`
	StressLevel StressLevel `json:"stress_level,omitempty"`

	MedicalHistory []string               `json:"medical_history,omitempty"`
	QuizResponses  map[string]interface{} `json:"quiz_responses,omitempty"`
}

// RiskFactor is one explanatory unit in a report. Factors keep their
// generation order; they are not sorted by severity.
type RiskFactor struct {
	Category    FactorCategory `json:"category"`
	Description string         `json:"description"`
	Impact      Impact         `json:"impact"`
	Severity    RiskLevel      `json:"severity"`
}

type Recommendation struct {
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    RiskLevel `json:"priority"`
}

// RiskReport is the terminal result of one assessment. It is read-only after
// construction; persistence and rendering happen downstream.
type RiskReport struct {
	EnvironmentalRisk       float64            `json:"environmental_risk"`
	LifestyleRisk           float64            `json:"lifestyle_risk"`
	VulnerabilityMultiplier float64            `json:"vulnerability_multiplier"`
	CompositeRisk           float64            `json:"composite_risk"`
	RiskLevel               RiskLevel          `json:"risk_level"`
	Factors                 []RiskFactor       `json:"contributing_factors"`
	Recommendations         []Recommendation   `json:"health_recommendations"`
	Summary                 string             `json:"report_summary"`
	FeatureVector           map[string]float64 `json:"feature_vector"`
}

// Provider result shapes. These mirror what the upstream collaborators
// return; the engine never sees them directly.

type AirQualityData struct {
	AQI  int     `json:"aqi"`
	PM25 float64 `json:"pm25"`
	PM10 float64 `json:"pm10"`
	CO   float64 `json:"co"`
	NO2  float64 `json:"no2"`
	SO2  float64 `json:"so2"`
	O3   float64 `json:"o3"`
}

type AirQualityResult struct {
	Latitude             float64        `json:"latitude"`
	Longitude            float64        `json:"longitude"`
	Data                 AirQualityData `json:"data"`
	RiskLevel            RiskLevel      `json:"risk_level"`
	PrimaryPollutant     string         `json:"primary_pollutant"`
	HealthInterpretation string         `json:"health_interpretation"`
	DataSource           string         `json:"data_source"`
}

type SoilProperties struct {
	SoilType           string            `json:"soil_type"`
	PH                 float64           `json:"ph"`
	ContaminationRisk  ContaminationRisk `json:"contamination_risk"`
	HealthImplications []string          `json:"health_implications,omitempty"`
}

type SoilResult struct {
	Location        string         `json:"location"`
	Properties      SoilProperties `json:"properties"`
	Recommendations []string       `json:"recommendations,omitempty"`
	Confidence      string         `json:"confidence"`
	DataSource      string         `json:"data_source"`
}

type WaterProperties struct {
	SourceType         string            `json:"source_type"`
	PH                 float64           `json:"ph"`
	Hardness           WaterHardness     `json:"hardness"`
	ContaminationRisk  ContaminationRisk `json:"contamination_risk"`
	HealthImplications []string          `json:"health_implications,omitempty"`
}

type WaterResult struct {
	Location        string          `json:"location"`
	Properties      WaterProperties `json:"properties"`
	Recommendations []string        `json:"recommendations,omitempty"`
	Confidence      string          `json:"confidence"`
	DataSource      string          `json:"data_source"`
}

// Report API shapes.

type ReportRequest struct {
	Latitude    float64           `json:"latitude"`
	Longitude   float64           `json:"longitude"`
	LifestyleID string            `json:"lifestyle_id,omitempty"`
	Lifestyle   *LifestyleProfile `json:"lifestyle,omitempty"`
}

type ReportResponse struct {
	ReportID string `json:"report_id"`
	RiskReport
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	GeneratedAt time.Time `json:"generated_at"`
	Version     string    `json:"version"`
}

// Event Bus models
type Event struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"` // report.generated, report.high_risk
	Source    string                 `json:"source"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]string      `json:"metadata,omitempty"`
}
