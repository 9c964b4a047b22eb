package warnings

import (
	"sort"

	"weather-forecast-service/models"
)

// Rule is a single warning condition evaluated against one day's
// forecast. Lower priority numbers are applied and listed first.
type Rule struct {
	Name     string
	Priority int
	Message  string
	Applies  func(models.DailyForecast) bool
}

// Engine evaluates a fixed set of independent rules against daily
// forecasts. Adding a rule means contributing a new Rule value; the
// evaluation loop never changes.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine with the given rules sorted by ascending
// priority.
func NewEngine(rules ...Rule) *Engine {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})
	return &Engine{rules: sorted}
}

// Annotate appends the message of every applicable rule to the
// forecast's warnings, once each, in priority order. Re-running
// produces no duplicates.
func (e *Engine) Annotate(forecast *models.DailyForecast) {
	for _, rule := range e.rules {
		if rule.Applies(*forecast) {
			forecast.AddWarning(rule.Message)
		}
	}
}

// AnnotateAll applies the rule set to every forecast in the slice.
func (e *Engine) AnnotateAll(forecasts []models.DailyForecast) {
	for i := range forecasts {
		e.Annotate(&forecasts[i])
	}
}
