package forecast

import (
	"sort"
	"strings"
	"time"

	"weather-forecast-service/models"
)

// DefaultDays is how many calendar days a forecast response covers.
const DefaultDays = 3

// Aggregator groups sub-daily forecast samples into daily records.
type Aggregator struct {
	maxDays  int
	location *time.Location
}

// NewAggregator creates an aggregator producing up to DefaultDays daily
// records, grouping sample timestamps by local calendar date.
func NewAggregator() *Aggregator {
	return &Aggregator{maxDays: DefaultDays, location: time.Local}
}

// NewAggregatorWithDays creates an aggregator with a custom day limit.
func NewAggregatorWithDays(maxDays int) *Aggregator {
	return &Aggregator{maxDays: maxDays, location: time.Local}
}

// Aggregate groups samples by calendar date and computes the daily
// min/max/avg records for the first maxDays distinct dates in
// chronological order. Fails with NO_DATA when samples is empty.
func (a *Aggregator) Aggregate(samples []models.RawSample) ([]models.DailyForecast, error) {
	if len(samples) == 0 {
		return nil, models.NewServiceError(models.CodeNoData, "no forecast samples to aggregate")
	}

	byDate := make(map[string][]models.RawSample)
	for _, s := range samples {
		day := s.Timestamp.In(a.location).Format("2006-01-02")
		byDate[day] = append(byDate[day], s)
	}

	dates := make([]string, 0, len(byDate))
	for day := range byDate {
		dates = append(dates, day)
	}
	sort.Strings(dates)
	if len(dates) > a.maxDays {
		dates = dates[:a.maxDays]
	}

	forecasts := make([]models.DailyForecast, 0, len(dates))
	for _, day := range dates {
		forecasts = append(forecasts, buildDaily(day, byDate[day]))
	}
	return forecasts, nil
}

// buildDaily computes one day's record from the samples of that date.
// The weather summary comes from the first sample of the day.
func buildDaily(day string, samples []models.RawSample) models.DailyForecast {
	daily := models.DailyForecast{
		Date:    day,
		TempMax: samples[0].TempMax,
		TempMin: samples[0].TempMin,
		Weather: "Unknown",
	}
	if samples[0].Weather != "" {
		daily.Weather = samples[0].Weather
	}

	var windSum float64
	for _, s := range samples {
		if s.TempMax > daily.TempMax {
			daily.TempMax = s.TempMax
		}
		if s.TempMin < daily.TempMin {
			daily.TempMin = s.TempMin
		}
		windSum += s.WindSpeed

		category := strings.ToLower(s.Weather)
		if strings.Contains(category, "rain") {
			daily.HasRain = true
		}
		if strings.Contains(category, "thunderstorm") {
			daily.HasThunderstorm = true
		}
	}
	daily.WindSpeed = windSum / float64(len(samples))

	return daily
}
