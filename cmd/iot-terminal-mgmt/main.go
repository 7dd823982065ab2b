package main

import (
	"context"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/alarms"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/alerts"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/downlink"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/ingest"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/risk"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/watchdog"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/weather"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/webevents"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/infrastructure/cache"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/infrastructure/storage"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/presentation/api"
	"github.com/floodwatch/iot-terminal-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v2"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
)

const serviceName string = "iot-terminal-mgmt"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort
	enableTracing

	configurationFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode

	redisAddr
	redisPassword
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",
		enableTracing: "true",

		configurationFile: "/opt/floodwatch/config/config.yaml",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "floodwatch",
		dbSSLMode:  "disable",

		redisAddr:     "localhost:6379",
		redisPassword: "",
	}
}

type appConfig struct {
	Downlink struct {
		URL   string `yaml:"url"`
		ASID  string `yaml:"asid"`
		Token string `yaml:"token"`
	} `yaml:"downlink"`
	Weather struct {
		APIKey    string  `yaml:"apikey"`
		URL       string  `yaml:"url"`
		Latitude  float64 `yaml:"latitude"`
		Longitude float64 `yaml:"longitude"`
	} `yaml:"weather"`
	Prefixes struct {
		Terminal string `yaml:"terminal"`
		Alert    string `yaml:"alert"`
	} `yaml:"prefixes"`
	Watchdog struct {
		Interval string `yaml:"interval"`
	} `yaml:"watchdog"`
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	cfgFile, err := os.Open(flags[configurationFile])
	exitIf(err, logger, "could not open configuration file")

	cfg, err := parseExternalConfigFile(cfgFile)
	exitIf(err, logger, "could not parse configuration file")

	sweepInterval := 6 * time.Hour
	if cfg.Watchdog.Interval != "" {
		sweepInterval, err = time.ParseDuration(cfg.Watchdog.Interval)
		exitIf(err, logger, "invalid watchdog interval")
	}

	db, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword], flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	exitIf(err, logger, "could not connect to database")
	defer db.Close()

	err = db.CreateTables(ctx)
	exitIf(err, logger, "could not create tables")

	fastCache, err := cache.New(ctx, cache.Config{
		Addr:     flags[redisAddr],
		Password: flags[redisPassword],
	})
	exitIf(err, logger, "could not connect to redis")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")
	messenger.Start()
	defer messenger.Close()

	events := webevents.New()
	defer events.Shutdown()

	sender := downlink.New(downlink.Config{
		URL:   cfg.Downlink.URL,
		ASID:  cfg.Downlink.ASID,
		Token: cfg.Downlink.Token,
	})

	weatherSvc := weather.New(
		weather.NewClient(weather.ClientConfig{APIKey: cfg.Weather.APIKey, URL: cfg.Weather.URL}),
		db, fastCache,
		types.Location{Latitude: cfg.Weather.Latitude, Longitude: cfg.Weather.Longitude},
	)

	verifier := risk.New(weatherSvc, db)
	alarmSvc := alarms.New(db, messenger)
	alertSvc := alerts.New(db, messenger, events, sender, cfg.Prefixes.Alert)
	ingestSvc := ingest.New(db, alarmSvc, verifier, alertSvc, sender, cfg.Prefixes.Terminal)

	wd := watchdog.New(db, alarmSvc, sweepInterval)
	wd.Start(ctx)
	defer wd.Stop(ctx)

	router, err := api.RegisterHandlers(ctx, chi.NewRouter(), api.Services{
		Ingest:    ingestSvc,
		Alerts:    alertSvc,
		Alarms:    alarmSvc,
		Weather:   weatherSvc,
		Verifier:  verifier,
		Terminals: db,
		WebEvents: events,
	})
	exitIf(err, logger, "failed to register handlers")

	apiPort := flags[servicePort]
	webServer := &http.Server{Addr: flags[listenAddress] + ":" + apiPort, Handler: router}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting to listen for incoming connections", "port", apiPort)

		if err := webServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to listen for incoming connections", "err", err.Error())
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = webServer.Shutdown(shutdownCtx)
	exitIf(err, logger, "failed to shut down web server")
}

func parseExternalConfigFile(cfgFile io.ReadCloser) (*appConfig, error) {
	defer cfgFile.Close()

	b, err := io.ReadAll(cfgFile)
	if err != nil {
		return nil, err
	}

	cfg := &appConfig{}
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Prefixes.Terminal == "" {
		cfg.Prefixes.Terminal = "TRM"
	}
	if cfg.Prefixes.Alert == "" {
		cfg.Prefixes.Alert = "ALRT"
	}

	return cfg, nil
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])
	flags[enableTracing] = envOrDef(ctx, "ENABLE_TRACING", flags[enableTracing])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])

	flags[redisAddr] = envOrDef(ctx, "REDIS_ADDR", flags[redisAddr])
	flags[redisPassword] = envOrDef(ctx, "REDIS_PASSWORD", flags[redisPassword])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("config", "terminal management configuration file", apply(configurationFile))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
