package risk

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/weather"
	"github.com/floodwatch/iot-terminal-mgmt/pkg/types"
	"github.com/matryer/is"
)

var noon = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
var midnight = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestVerifyFailsOpenOnWeatherError(t *testing.T) {
	is := is.New(t)
	v, _ := newTestVerifier(types.WeatherData{}, errors.New("upstream down"))

	verdict, err := v.Verify(context.Background(), types.Terminal{ID: "TRM007"}, noon)

	is.NoErr(err)
	is.Equal(verdict, VerdictRisky)
}

func TestVerifyManualBlockWinsOverEverything(t *testing.T) {
	is := is.New(t)
	v, _ := newTestVerifier(types.WeatherData{
		Current:             types.WeatherObservation{Description: "heavy rain"},
		WeatherCheckEnabled: true,
		ManualBlockEnabled:  true,
	}, nil)

	verdict, err := v.Verify(context.Background(), types.Terminal{ID: "TRM007"}, noon)

	is.NoErr(err)
	is.Equal(verdict, VerdictManualBlock)
}

func TestVerifyDisabledWeatherCheckAllowsAlert(t *testing.T) {
	is := is.New(t)
	v, _ := newTestVerifier(types.WeatherData{
		Current: types.WeatherObservation{Description: "clear sky"},
	}, nil)

	verdict, err := v.Verify(context.Background(), types.Terminal{ID: "TRM007"}, noon)

	is.NoErr(err)
	is.Equal(verdict, VerdictRisky)
}

func TestVerifyCurrentRainIsRisky(t *testing.T) {
	is := is.New(t)
	v, _ := newTestVerifier(types.WeatherData{
		Current:             types.WeatherObservation{Description: "light Drizzle"},
		WeatherCheckEnabled: true,
	}, nil)

	verdict, err := v.Verify(context.Background(), types.Terminal{ID: "TRM007"}, noon)

	is.NoErr(err)
	is.Equal(verdict, VerdictRisky)
}

func TestVerifyForecastRainIsRisky(t *testing.T) {
	is := is.New(t)
	v, _ := newTestVerifier(types.WeatherData{
		Current:             types.WeatherObservation{Description: "clear sky"},
		Hourly:              []types.WeatherObservation{{Precipitation: 50}},
		WeatherCheckEnabled: true,
	}, nil)

	verdict, err := v.Verify(context.Background(), types.Terminal{ID: "TRM007"}, noon)

	is.NoErr(err)
	is.Equal(verdict, VerdictRisky)
}

func TestVerifyCalmWeatherIsFalseAlarm(t *testing.T) {
	is := is.New(t)
	v, _ := newTestVerifier(types.WeatherData{
		Current:             types.WeatherObservation{Description: "scattered clouds"},
		Hourly:              []types.WeatherObservation{{Precipitation: 49.9}},
		WeatherCheckEnabled: true,
	}, nil)

	verdict, err := v.Verify(context.Background(), types.Terminal{ID: "TRM007"}, noon)

	is.NoErr(err)
	is.Equal(verdict, VerdictFalseAlarm)
}

func TestAssessPropagatesWeatherError(t *testing.T) {
	is := is.New(t)
	v, _ := newTestVerifier(types.WeatherData{}, errors.New("upstream down"))

	_, err := v.Assess(context.Background(), types.Terminal{ID: "TRM007"}, noon)

	is.True(err != nil)
}

func TestAssessDayThresholds(t *testing.T) {
	is := is.New(t)
	v, _ := newTestVerifier(types.WeatherData{
		Current: types.WeatherObservation{Description: "clear sky", WindSpeed: 12},
		Hourly:  []types.WeatherObservation{{Precipitation: 39.9}},
	}, nil)

	assessment, err := v.Assess(context.Background(), types.Terminal{ID: "TRM007"}, noon)

	is.NoErr(err)
	is.Equal(assessment.Risky, false)
	is.Equal(assessment.Multiplier, 1.0)
	is.Equal(len(assessment.Conditions), 3)
	is.Equal(assessment.Conditions[1].Threshold, 40.0)
}

func TestAssessNightLowersRainThreshold(t *testing.T) {
	is := is.New(t)
	v, _ := newTestVerifier(types.WeatherData{
		Current: types.WeatherObservation{Description: "clear sky"},
		Hourly:  []types.WeatherObservation{{Precipitation: 35}},
	}, nil)

	assessment, err := v.Assess(context.Background(), types.Terminal{ID: "TRM007"}, midnight)

	is.NoErr(err)
	is.Equal(assessment.Conditions[1].Threshold, 30.0)
	is.Equal(assessment.Risky, true)
}

func TestAssessWindCondition(t *testing.T) {
	is := is.New(t)
	v, _ := newTestVerifier(types.WeatherData{
		Current: types.WeatherObservation{Description: "clear sky", WindSpeed: 55},
	}, nil)

	assessment, err := v.Assess(context.Background(), types.Terminal{ID: "TRM007"}, noon)

	is.NoErr(err)
	is.Equal(assessment.Conditions[2].Met, true)
	is.Equal(assessment.Risky, true)
}

func TestAssessRecentRescueLowersThresholds(t *testing.T) {
	is := is.New(t)
	v, deps := newTestVerifier(types.WeatherData{
		Current: types.WeatherObservation{Description: "clear sky"},
	}, nil)
	deps.rescues.RecentRescueCountFunc = func(ctx context.Context, terminalID string, from, to time.Time) (int, error) {
		return 1, nil
	}

	assessment, err := v.Assess(context.Background(), types.Terminal{ID: "TRM007"}, noon)

	is.NoErr(err)
	is.Equal(assessment.Multiplier, 0.7)
	is.Equal(assessment.Conditions[1].Threshold, 40*0.7)
	is.Equal(assessment.Conditions[2].Threshold, 50*0.7)
}

func TestAssessOlderRescueLowersThresholdsLess(t *testing.T) {
	is := is.New(t)
	v, deps := newTestVerifier(types.WeatherData{
		Current: types.WeatherObservation{Description: "clear sky"},
	}, nil)
	deps.rescues.RecentRescueCountFunc = func(ctx context.Context, terminalID string, from, to time.Time) (int, error) {
		// no rescue in the trailing week, one in the 8 to 30 day window
		if to.Equal(noon) {
			return 0, nil
		}
		return 1, nil
	}

	assessment, err := v.Assess(context.Background(), types.Terminal{ID: "TRM007"}, noon)

	is.NoErr(err)
	is.Equal(assessment.Multiplier, 0.85)
}

func TestAssessRescueHistoryErrorLeavesBarUnchanged(t *testing.T) {
	is := is.New(t)
	v, deps := newTestVerifier(types.WeatherData{
		Current: types.WeatherObservation{Description: "clear sky"},
	}, nil)
	deps.rescues.RecentRescueCountFunc = func(ctx context.Context, terminalID string, from, to time.Time) (int, error) {
		return 0, errors.New("history unavailable")
	}

	assessment, err := v.Assess(context.Background(), types.Terminal{ID: "TRM007"}, noon)

	is.NoErr(err)
	is.Equal(assessment.Multiplier, 1.0)
}

type testVerifierDeps struct {
	rescues *RescueHistoryMock
}

func newTestVerifier(data types.WeatherData, weatherErr error) (Verifier, testVerifierDeps) {
	deps := testVerifierDeps{
		rescues: &RescueHistoryMock{
			RecentRescueCountFunc: func(ctx context.Context, terminalID string, from, to time.Time) (int, error) {
				return 0, nil
			},
		},
	}

	weatherSvc := &weather.WeatherServiceMock{
		GetWeatherFunc: func(ctx context.Context, terminal types.Terminal) (types.WeatherData, error) {
			return data, weatherErr
		},
	}

	v := New(weatherSvc, deps.rescues)

	return v, deps
}
