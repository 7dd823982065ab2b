package main

import (
	"io"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestParseExternalConfigFile(t *testing.T) {
	is := is.New(t)

	cfg, err := parseExternalConfigFile(io.NopCloser(strings.NewReader(configYaml)))

	is.NoErr(err)
	is.Equal(cfg.Downlink.URL, "https://ns.example.com/downlink")
	is.Equal(cfg.Downlink.ASID, "app-1")
	is.Equal(cfg.Weather.APIKey, "test-key")
	is.Equal(cfg.Weather.Latitude, 23.685)
	is.Equal(cfg.Prefixes.Terminal, "TRM")
	is.Equal(cfg.Prefixes.Alert, "ALRT")
	is.Equal(cfg.Watchdog.Interval, "10m")
}

func TestParseExternalConfigFileDefaultsPrefixes(t *testing.T) {
	is := is.New(t)

	cfg, err := parseExternalConfigFile(io.NopCloser(strings.NewReader("downlink:\n  url: https://ns.example.com\n")))

	is.NoErr(err)
	is.Equal(cfg.Prefixes.Terminal, "TRM")
	is.Equal(cfg.Prefixes.Alert, "ALRT")
}

func TestParseExternalConfigFileRejectsBadYaml(t *testing.T) {
	is := is.New(t)

	_, err := parseExternalConfigFile(io.NopCloser(strings.NewReader("downlink: [")))

	is.True(err != nil)
}

const configYaml string = `
downlink:
  url: https://ns.example.com/downlink
  asid: app-1
  token: secret
weather:
  apikey: test-key
  url: https://api.openweathermap.org/data/3.0/onecall
  latitude: 23.685
  longitude: 90.3563
prefixes:
  terminal: TRM
  alert: ALRT
watchdog:
  interval: 10m
`
