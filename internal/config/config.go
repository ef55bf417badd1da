package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errEnvVarInvalid error = errors.New("environment variable invalid")

const (
	apiPortEnvKey          = "API_PORT"
	ethNodeEnvKey          = "ETH_NODE_URL"
	dbConnEnvKey           = "DB_CONNECTION_URL"
	jwtSecretEnvKey        = "JWT_SECRET"
	keyEncryptionEnvKey    = "KEY_ENCRYPTION_KEY"
	attestorKeyEnvKey      = "ATTESTOR_PRIVATE_KEY"
	contractAddressEnvKey  = "CONTRACT_ADDRESS"
	pinataAPIKeyEnvKey     = "PINATA_API_KEY"
	pinataSecretEnvKey     = "PINATA_SECRET_KEY"
	pinataURLEnvKey        = "PINATA_URL"
	finalityTimeoutEnvKey  = "MINT_FINALITY_TIMEOUT"
	pinLeaseEnvKey         = "PIN_LEASE"
	mintLeaseEnvKey        = "MINT_LEASE"
	reconcileEveryEnvKey   = "RECONCILE_INTERVAL"
	summaryCacheTTLEnvKey  = "SUMMARY_CACHE_TTL"
	rabbitURLEnvKey        = "RABBITMQ_URL"
	rabbitExchangeEnvKey   = "RABBITMQ_EXCHANGE"
	rabbitIngestQueueKey   = "RABBITMQ_INGEST_QUEUE"
	sentryDSNEnvKey        = "SENTRY_DSN"
	logLevelEnvKey         = "LOG_LEVEL"
	defaultPinataURL       = "https://api.pinata.cloud"
	defaultRabbitExchange  = "greenmint.events"
	defaultRabbitIngestKey = "greenmint.readings.ingest"
)

type App struct {
	Port             string
	NodeURL          string
	DBConnectionURL  string
	JWTSecret        string
	KeyEncryptionKey string
	LogLevel         string
	SentryDSN        string

	Ledger   Ledger
	Pinning  Pinning
	Workflow Workflow
	Rabbit   Rabbit
}

// Ledger holds the attestor signing key and certificate contract. Both may be
// empty at startup; minting reports a configuration error until they are set.
type Ledger struct {
	AttestorPrivateKey string
	ContractAddress    string
}

type Pinning struct {
	URL       string
	APIKey    string
	SecretKey string
}

type Workflow struct {
	FinalityTimeout   time.Duration
	PinLease          time.Duration
	MintLease         time.Duration
	ReconcileInterval time.Duration
	SummaryCacheTTL   time.Duration
}

// Rabbit is disabled when URL is empty.
type Rabbit struct {
	URL         string
	Exchange    string
	IngestQueue string
}

// LoadEnvFile loads the first .env file present. Real environment values win.
// A file that exists but cannot be parsed is an error.
func LoadEnvFile(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load env file %s: %w", p, err)
		}
		return nil
	}
	return nil
}

func NewApp() (App, error) {
	var app App
	var err error

	required := []struct {
		key string
		dst *string
	}{
		{apiPortEnvKey, &app.Port},
		{ethNodeEnvKey, &app.NodeURL},
		{dbConnEnvKey, &app.DBConnectionURL},
		{jwtSecretEnvKey, &app.JWTSecret},
		{keyEncryptionEnvKey, &app.KeyEncryptionKey},
	}
	for _, r := range required {
		val, ok := os.LookupEnv(r.key)
		if !ok {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, r.key)
		}
		*r.dst = val
	}

	app.LogLevel = os.Getenv(logLevelEnvKey)
	app.SentryDSN = os.Getenv(sentryDSNEnvKey)

	app.Ledger = Ledger{
		AttestorPrivateKey: os.Getenv(attestorKeyEnvKey),
		ContractAddress:    os.Getenv(contractAddressEnvKey),
	}

	app.Pinning = Pinning{
		URL:       lookupDefault(pinataURLEnvKey, defaultPinataURL),
		APIKey:    os.Getenv(pinataAPIKeyEnvKey),
		SecretKey: os.Getenv(pinataSecretEnvKey),
	}

	durations := []struct {
		key string
		def time.Duration
		dst *time.Duration
	}{
		{finalityTimeoutEnvKey, 2 * time.Minute, &app.Workflow.FinalityTimeout},
		{pinLeaseEnvKey, 2 * time.Minute, &app.Workflow.PinLease},
		{mintLeaseEnvKey, 5 * time.Minute, &app.Workflow.MintLease},
		{reconcileEveryEnvKey, time.Minute, &app.Workflow.ReconcileInterval},
		{summaryCacheTTLEnvKey, 30 * time.Second, &app.Workflow.SummaryCacheTTL},
	}
	for _, d := range durations {
		*d.dst, err = lookupDuration(d.key, d.def)
		if err != nil {
			return App{}, err
		}
	}

	app.Rabbit = Rabbit{
		URL:         os.Getenv(rabbitURLEnvKey),
		Exchange:    lookupDefault(rabbitExchangeEnvKey, defaultRabbitExchange),
		IngestQueue: lookupDefault(rabbitIngestQueueKey, defaultRabbitIngestKey),
	}

	return app, nil
}

func lookupDefault(key, def string) string {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return def
	}
	return val
}

func lookupDuration(key string, def time.Duration) (time.Duration, error) {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return def, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, key, val)
	}
	return d, nil
}
