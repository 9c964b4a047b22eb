package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"weather-forecast-service/forecast"
	"weather-forecast-service/models"
	"weather-forecast-service/warnings"
)

// sampleCount is how many 3-hour forecast steps to request: 8 per day
// for 3 days.
const sampleCount = 24

// OpenWeatherProvider fetches 3-hour-step forecasts from the
// OpenWeatherMap API and turns them into daily records.
type OpenWeatherProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	aggregator *forecast.Aggregator
	engine     *warnings.Engine
}

// NewOpenWeatherProvider creates the online provider. The timeout
// bounds the whole upstream request; when it fires the fetch fails
// with API_ERROR instead of blocking.
func NewOpenWeatherProvider(apiKey, baseURL string, timeout time.Duration, aggregator *forecast.Aggregator, engine *warnings.Engine) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		aggregator: aggregator,
		engine:     engine,
	}
}

// Name returns the provider name.
func (p *OpenWeatherProvider) Name() string {
	return models.DataSourceOnline
}

// Available reports whether the provider can serve data. Always true
// for now; failures are handled per request.
func (p *OpenWeatherProvider) Available() bool {
	return true
}

// FetchForecast calls the upstream forecast endpoint, aggregates the
// samples into daily records and annotates them with warnings.
func (p *OpenWeatherProvider) FetchForecast(ctx context.Context, city string) (models.ForecastResponse, error) {
	log.Printf("Fetching online weather data for city: %s", city)

	endpoint := fmt.Sprintf("%s/forecast", p.baseURL)
	params := url.Values{}
	params.Add("q", city)
	params.Add("appid", p.apiKey)
	params.Add("cnt", fmt.Sprintf("%d", sampleCount))
	params.Add("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return models.ForecastResponse{}, models.WrapServiceError(models.CodeFetchError,
			"failed to create forecast request", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		// Covers transport errors and the client timeout.
		return models.ForecastResponse{}, models.WrapServiceError(models.CodeAPIError,
			fmt.Sprintf("failed to fetch weather data for city: %s", city), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.ForecastResponse{}, models.WrapServiceError(models.CodeAPIError,
			"failed to read forecast response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return models.ForecastResponse{}, models.NewServiceError(models.CodeAPIError,
			fmt.Sprintf("failed to fetch weather data: status %d", resp.StatusCode))
	}

	var apiResponse openWeatherResponse
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return models.ForecastResponse{}, models.WrapServiceError(models.CodeFetchError,
			"failed to parse forecast response", err)
	}

	if len(apiResponse.List) == 0 {
		return models.ForecastResponse{}, models.NewServiceError(models.CodeNoData,
			"no weather data received")
	}

	samples := make([]models.RawSample, 0, len(apiResponse.List))
	for _, item := range apiResponse.List {
		category := ""
		if len(item.Weather) > 0 {
			category = item.Weather[0].Main
		}
		samples = append(samples, models.RawSample{
			Timestamp: time.Unix(item.Dt, 0),
			TempMax:   item.Main.TempMax,
			TempMin:   item.Main.TempMin,
			Weather:   category,
			WindSpeed: item.Wind.Speed,
		})
	}

	forecasts, err := p.aggregator.Aggregate(samples)
	if err != nil {
		return models.ForecastResponse{}, err
	}
	p.engine.AnnotateAll(forecasts)

	country := "Unknown"
	if apiResponse.City.Country != "" {
		country = apiResponse.City.Country
	}

	return models.ForecastResponse{
		City:       city,
		Country:    country,
		Forecasts:  forecasts,
		DataSource: models.DataSourceOnline,
		Timestamp:  time.Now().UnixMilli(),
	}, nil
}

// openWeatherResponse mirrors the fields we use from the upstream
// 5-day/3-hour forecast payload.
type openWeatherResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp    float64 `json:"temp"`
			TempMin float64 `json:"temp_min"`
			TempMax float64 `json:"temp_max"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	} `json:"list"`
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
}

var _ Provider = (*OpenWeatherProvider)(nil)
