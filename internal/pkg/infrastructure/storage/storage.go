package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows      = errors.New("no rows in result set")
	ErrTooManyRows = errors.New("too many rows in result set")
	ErrQueryRow    = errors.New("could not execute query")
	ErrStoreFailed = errors.New("could not store data")
	ErrNoID        = errors.New("data contains no id")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Close() {
	s.pool.Close()
}

func (s *Storage) CreateTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS terminals (
			terminal_id		TEXT	NOT NULL,
			dev_eui			TEXT	NOT NULL,
			name			TEXT	NULL,
			status			TEXT	NOT NULL DEFAULT 'offline',
			last_seen_at	timestamp with time zone NULL,
			archived		BOOLEAN	NOT NULL DEFAULT FALSE,
			location		POINT	NULL,
			tenant			TEXT	NOT NULL DEFAULT 'default',
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_terminals PRIMARY KEY (terminal_id)
		);

		CREATE UNIQUE INDEX IF NOT EXISTS idx_terminals_dev_eui ON terminals (dev_eui);

		CREATE SEQUENCE IF NOT EXISTS alert_number_seq START 1;

		CREATE TABLE IF NOT EXISTS alerts (
			alert_id	TEXT	NOT NULL,
			terminal_id	TEXT	NOT NULL,
			alert_type	TEXT	NULL,
			status		TEXT	NOT NULL DEFAULT 'unassigned',
			sent_via	TEXT	NOT NULL,
			sent_at		timestamp with time zone NOT NULL,
			tenant		TEXT	NOT NULL DEFAULT 'default',
			created_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_alerts PRIMARY KEY (alert_id)
		);

		CREATE TABLE IF NOT EXISTS alarms (
			alarm_id		TEXT	NOT NULL,
			terminal_id		TEXT	NOT NULL,
			terminal_name	TEXT	NULL,
			kind			TEXT	NOT NULL,
			severity		TEXT	NOT NULL,
			status			TEXT	NOT NULL DEFAULT 'active',
			raised_at		timestamp with time zone NOT NULL,
			updated_at		timestamp with time zone NOT NULL,
			cleared_at		timestamp with time zone NULL,
			tenant			TEXT	NOT NULL DEFAULT 'default',
			CONSTRAINT pkey_alarms PRIMARY KEY (alarm_id)
		);

		CREATE UNIQUE INDEX IF NOT EXISTS uniq_alarms_active ON alarms (terminal_id, kind) WHERE status = 'active';

		CREATE TABLE IF NOT EXISTS weather_cache (
			terminal_id				TEXT	NOT NULL,
			hourly					JSONB	NOT NULL DEFAULT '[]',
			weekly					JSONB	NOT NULL DEFAULT '[]',
			fetched_at				timestamp with time zone NOT NULL,
			expires_at				timestamp with time zone NOT NULL,
			weather_check_enabled	BOOLEAN	NOT NULL DEFAULT TRUE,
			manual_block_enabled	BOOLEAN	NOT NULL DEFAULT FALSE,
			api_call_count			INTEGER	NOT NULL DEFAULT 1,
			CONSTRAINT pkey_weather_cache PRIMARY KEY (terminal_id)
		);

		CREATE TABLE IF NOT EXISTS rescues (
			rescue_id		TEXT	NOT NULL,
			terminal_id		TEXT	NOT NULL,
			alert_id		TEXT	NULL,
			dispatched_at	timestamp with time zone NOT NULL,
			tenant			TEXT	NOT NULL DEFAULT 'default',
			CONSTRAINT pkey_rescues PRIMARY KEY (rescue_id)
		);
	`)
	if err != nil {
		return err
	}

	// keep the alert sequence ahead of any rows that predate it
	_, err = s.pool.Exec(ctx, `
		SELECT setval('alert_number_seq',
			COALESCE((SELECT max(substring(alert_id from '[0-9]+$')::bigint) FROM alerts), 0) + 1,
			false);
	`)

	return err
}
