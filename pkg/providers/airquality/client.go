package airquality

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/envirohealth-ai/platform/pkg/common/config"
	"github.com/envirohealth-ai/platform/pkg/common/httpclient"
	"github.com/envirohealth-ai/platform/pkg/common/logger"
	"github.com/envirohealth-ai/platform/pkg/common/models"
)

const dataSource = "openweather"

// Client fetches current air pollution data from the OpenWeather air
// pollution API and converts it to the EPA-style AQI scale used everywhere
// else in the platform.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: httpclient.New(cfg.ProviderTimeout),
		baseURL:    cfg.OpenWeatherBaseURL,
		apiKey:     cfg.OpenWeatherAPIKey,
	}
}

// openWeatherResponse mirrors the upstream payload. The upstream AQI is a
// 1-5 category, not an EPA index.
type openWeatherResponse struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
		Components struct {
			CO   float64 `json:"co"`
			NO2  float64 `json:"no2"`
			O3   float64 `json:"o3"`
			SO2  float64 `json:"so2"`
			PM25 float64 `json:"pm2_5"`
			PM10 float64 `json:"pm10"`
		} `json:"components"`
	} `json:"list"`
}

// Fetch retrieves the current reading for a coordinate pair.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (models.AirQualityResult, error) {
	endpoint := fmt.Sprintf("%s/air_pollution?lat=%s&lon=%s&appid=%s",
		c.baseURL,
		url.QueryEscape(fmt.Sprintf("%.6f", lat)),
		url.QueryEscape(fmt.Sprintf("%.6f", lon)),
		url.QueryEscape(c.apiKey))

	var payload openWeatherResponse
	err := httpclient.Retry(ctx, 3, 200*time.Millisecond, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return fmt.Errorf("openweather returned status %d: %s", resp.StatusCode, string(body))
		}

		return json.NewDecoder(resp.Body).Decode(&payload)
	})
	if err != nil {
		logger.WithField("error", err.Error()).Warn("Air quality fetch failed")
		return models.AirQualityResult{}, fmt.Errorf("fetch air quality: %w", err)
	}

	if len(payload.List) == 0 {
		return models.AirQualityResult{}, fmt.Errorf("openweather returned no readings for %.4f,%.4f", lat, lon)
	}

	entry := payload.List[0]
	data := models.AirQualityData{
		AQI:  epaAQIFor(entry.Main.AQI),
		PM25: entry.Components.PM25,
		PM10: entry.Components.PM10,
		CO:   entry.Components.CO / 1000, // upstream ug/m3 -> mg/m3
		NO2:  entry.Components.NO2,
		SO2:  entry.Components.SO2,
		O3:   entry.Components.O3,
	}

	return models.AirQualityResult{
		Latitude:             lat,
		Longitude:            lon,
		Data:                 data,
		RiskLevel:            RiskLevelFor(data.AQI),
		PrimaryPollutant:     PrimaryPollutant(data),
		HealthInterpretation: HealthInterpretation(data.AQI),
		DataSource:           dataSource,
	}, nil
}

// epaAQIFor maps the OpenWeather 1-5 category onto a representative value of
// the EPA 0-500 AQI scale.
var epaAQIByCategory = map[int]int{
	1: 25,
	2: 75,
	3: 125,
	4: 200,
	5: 350,
}

func epaAQIFor(category int) int {
	if value, ok := epaAQIByCategory[category]; ok {
		return value
	}
	return 125
}

// Pollutant concentration breakpoints that anchor the primary-pollutant
// selection; each value is the threshold of its "unhealthy for sensitive
// groups" band.
var pollutantBreakpoints = []struct {
	name      string
	threshold float64
	value     func(models.AirQualityData) float64
}{
	{"pm2_5", 35.4, func(d models.AirQualityData) float64 { return d.PM25 }},
	{"pm10", 154, func(d models.AirQualityData) float64 { return d.PM10 }},
	{"co", 9.4, func(d models.AirQualityData) float64 { return d.CO }},
	{"no2", 100, func(d models.AirQualityData) float64 { return d.NO2 }},
	{"so2", 75, func(d models.AirQualityData) float64 { return d.SO2 }},
	{"o3", 70, func(d models.AirQualityData) float64 { return d.O3 }},
}

// PrimaryPollutant names the pollutant closest to (or furthest past) its
// breakpoint, measured as the concentration-to-threshold ratio.
func PrimaryPollutant(data models.AirQualityData) string {
	best := ""
	bestRatio := 0.0
	for _, p := range pollutantBreakpoints {
		ratio := p.value(data) / p.threshold
		if ratio > bestRatio {
			best = p.name
			bestRatio = ratio
		}
	}
	if best == "" {
		return "pm2_5"
	}
	return best
}

// RiskLevelFor buckets an EPA AQI value for display on the provider result.
func RiskLevelFor(aqi int) models.RiskLevel {
	switch {
	case aqi <= 50:
		return models.RiskLow
	case aqi <= 100:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}

func HealthInterpretation(aqi int) string {
	switch {
	case aqi <= 50:
		return "Air quality is good. Ideal conditions for outdoor activities."
	case aqi <= 100:
		return "Air quality is moderate. Unusually sensitive individuals should consider limiting prolonged outdoor exertion."
	case aqi <= 150:
		return "Unhealthy for sensitive groups. People with respiratory conditions should reduce outdoor activity."
	case aqi <= 200:
		return "Unhealthy. Everyone may begin to experience health effects; limit outdoor exertion."
	default:
		return "Very unhealthy to hazardous. Avoid outdoor activity and use air filtration indoors."
	}
}
