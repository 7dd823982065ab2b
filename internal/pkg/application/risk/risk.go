package risk

import (
	"context"
	"strings"
	"time"

	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/weather"
	"github.com/floodwatch/iot-terminal-mgmt/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

type Verdict int

const (
	// VerdictRisky means the report should become a real alert.
	VerdictRisky Verdict = iota
	// VerdictFalseAlarm means weather gating ruled the report out.
	VerdictFalseAlarm
	// VerdictManualBlock means an operator has blocked the terminal outright.
	VerdictManualBlock
)

// ingestion gate threshold: probability of precipitation in the next
// forecast slot that counts as risky on its own
const gatePrecipitationThreshold = 50.0

// on-demand assessment thresholds
const (
	dayRainThreshold   = 40.0
	nightRainThreshold = 30.0
	windThresholdKmh   = 50.0
)

//go:generate moq -rm -out rescuehistory_mock.go . RescueHistory
type RescueHistory interface {
	RecentRescueCount(ctx context.Context, terminalID string, from, to time.Time) (int, error)
}

//go:generate moq -rm -out verifier_mock.go . Verifier
type Verifier interface {
	Verify(ctx context.Context, terminal types.Terminal, now time.Time) (Verdict, error)
	Assess(ctx context.Context, terminal types.Terminal, now time.Time) (types.RiskAssessment, error)
}

type verifier struct {
	weather weather.WeatherService
	rescues RescueHistory
}

func New(weatherSvc weather.WeatherService, rescues RescueHistory) Verifier {
	return &verifier{
		weather: weatherSvc,
		rescues: rescues,
	}
}

// Verify is the ingestion gate. Weather lookup failures fail open: letting a
// false alarm through is recoverable, discarding a real emergency is not.
func (v *verifier) Verify(ctx context.Context, terminal types.Terminal, now time.Time) (Verdict, error) {
	log := logging.GetFromContext(ctx)

	data, err := v.weather.GetWeather(ctx, terminal)
	if err != nil {
		log.Error("weather lookup failed, allowing alert through", "terminal_id", terminal.ID, "err", err.Error())
		return VerdictRisky, nil
	}

	// operator override wins over everything, including alert type
	if data.ManualBlockEnabled {
		return VerdictManualBlock, nil
	}

	if !data.WeatherCheckEnabled {
		return VerdictRisky, nil
	}

	if isRaining(data.Current.Description) || nextPrecipitationProbability(data.Hourly) >= gatePrecipitationThreshold {
		return VerdictRisky, nil
	}

	return VerdictFalseAlarm, nil
}

// Assess is the richer on-demand variant of the same decision. It applies
// time-of-day and recent-rescue sensitivity and reports every condition it
// checked, so dispatchers can see why a terminal does or does not count as
// at risk.
func (v *verifier) Assess(ctx context.Context, terminal types.Terminal, now time.Time) (types.RiskAssessment, error) {
	data, err := v.weather.GetWeather(ctx, terminal)
	if err != nil {
		return types.RiskAssessment{}, err
	}

	multiplier := v.sensitivityMultiplier(ctx, terminal.ID, now)

	rainThreshold := dayRainThreshold
	if isNight(now) {
		rainThreshold = nightRainThreshold
	}
	rainThreshold *= multiplier
	windThreshold := windThresholdKmh * multiplier

	currentlyRaining := isRaining(data.Current.Description)
	nextPop := nextPrecipitationProbability(data.Hourly)

	conditions := []types.RiskCondition{
		{
			Name:      "current-rain",
			Value:     boolToFloat(currentlyRaining),
			Threshold: 1,
			Met:       currentlyRaining,
		},
		{
			Name:      "forecast-rain",
			Value:     nextPop,
			Threshold: rainThreshold,
			Met:       nextPop >= rainThreshold,
		},
		{
			Name:      "wind",
			Value:     data.Current.WindSpeed,
			Threshold: windThreshold,
			Met:       data.Current.WindSpeed >= windThreshold,
		},
	}

	risky := false
	for _, c := range conditions {
		risky = risky || c.Met
	}

	return types.RiskAssessment{
		TerminalID: terminal.ID,
		Risky:      risky,
		Multiplier: multiplier,
		Conditions: conditions,
		AssessedAt: now,
	}, nil
}

// sensitivityMultiplier lowers the intervention bar after recent incidents:
// 0.7 with a rescue in the trailing week, 0.85 with one in the trailing
// 8 to 30 days. History lookup failures leave the bar unchanged.
func (v *verifier) sensitivityMultiplier(ctx context.Context, terminalID string, now time.Time) float64 {
	log := logging.GetFromContext(ctx)

	lastWeek, err := v.rescues.RecentRescueCount(ctx, terminalID, now.AddDate(0, 0, -7), now)
	if err != nil {
		log.Warn("could not fetch rescue history", "terminal_id", terminalID, "err", err.Error())
		return 1.0
	}
	if lastWeek >= 1 {
		return 0.7
	}

	lastMonth, err := v.rescues.RecentRescueCount(ctx, terminalID, now.AddDate(0, 0, -30), now.AddDate(0, 0, -7))
	if err != nil {
		log.Warn("could not fetch rescue history", "terminal_id", terminalID, "err", err.Error())
		return 1.0
	}
	if lastMonth >= 1 {
		return 0.85
	}

	return 1.0
}

func isNight(now time.Time) bool {
	h := now.Hour()
	return h >= 22 || h < 6
}

func isRaining(description string) bool {
	desc := strings.ToLower(description)
	for _, marker := range []string{"rain", "drizzle", "thunderstorm"} {
		if strings.Contains(desc, marker) {
			return true
		}
	}
	return false
}

func nextPrecipitationProbability(hourly []types.WeatherObservation) float64 {
	if len(hourly) == 0 {
		return 0
	}
	return hourly[0].Precipitation
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
