package cmd

import (
	"context"
	"fmt"

	"greenmint/internal/config"
	"greenmint/internal/core"
	"greenmint/internal/db"
	"greenmint/internal/events"
	"greenmint/internal/ledger"
	"greenmint/internal/monitoring"
	"greenmint/internal/pinning"
	"greenmint/internal/repository"
	"greenmint/internal/vault"
	"greenmint/pkg/jwt"
	"greenmint/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

const (
	serviceName = "greenmint"
	// requests per second accepted by the Pinata free plan
	pinningRate = 3
)

// infrastructure is shared by every command that touches the workflow.
var infrastructure = fx.Options(
	fx.Provide(
		newConfig,
		newLogger,
		newDatabase,
		newRepository,
		newLedger,
		newPinner,
		newVault,
		newEventConnection,
		newPublisher,
		newAlerter,
		newJWTService,
		newGreenmint,
	),
	fx.WithLogger(func(logger *zap.SugaredLogger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: logger.Desugar()}
	}),
)

func newConfig() (config.App, error) {
	if err := config.LoadEnvFile(envFiles...); err != nil {
		return config.App{}, err
	}

	app, err := config.NewApp()
	if err != nil {
		return config.App{}, fmt.Errorf("create config: %w", err)
	}
	return app, nil
}

func newLogger(lc fx.Lifecycle, cfg config.App) (*zap.SugaredLogger, error) {
	logger := log.NewZapLogger(serviceName, log.ParseLevel(cfg.LogLevel))

	if err := monitoring.Init(cfg.SentryDSN, serviceName); err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			monitoring.Flush()
			_ = logger.Sync()
			return nil
		},
	})

	return logger, nil
}

func newDatabase(lc fx.Lifecycle, logger *zap.SugaredLogger, cfg config.App) (*db.PostgresDB, error) {
	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return dbConn.Ping(ctx)
		},
		OnStop: func(context.Context) error {
			return dbConn.Close()
		},
	})

	return dbConn, nil
}

func newRepository(logger *zap.SugaredLogger, dbConn *db.PostgresDB) (*repository.Repository, error) {
	repo := repository.NewRepository(dbConn)

	if err := repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return nil, err
	}

	return repo, nil
}

func newLedger(lc fx.Lifecycle, logger *zap.SugaredLogger, cfg config.App) (*ledger.Service, error) {
	client, err := ethclient.Dial(cfg.NodeURL)
	if err != nil {
		logger.Errorw("ethereum node connection failed", "error", err)
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			client.Close()
			return nil
		},
	})

	svc, err := ledger.NewService(client, ledger.Config{
		AttestorPrivateKey: cfg.Ledger.AttestorPrivateKey,
		ContractAddress:    cfg.Ledger.ContractAddress,
	})
	if err != nil {
		logger.Errorw("failed to create ledger service", "error", err)
		return nil, err
	}

	if err := svc.Ready(); err != nil {
		// minting reports this per request
		logger.Warnw("ledger not ready for minting", "error", err)
	}

	return svc, nil
}

func newPinner(logger *zap.SugaredLogger, cfg config.App) *pinning.PinataClient {
	return pinning.NewPinataClient(logger, pinning.Config{
		URL:       cfg.Pinning.URL,
		APIKey:    cfg.Pinning.APIKey,
		SecretKey: cfg.Pinning.SecretKey,
		RateLimit: pinningRate,
		Burst:     1,
	})
}

func newVault(cfg config.App) (*vault.Vault, error) {
	v, err := vault.New(cfg.KeyEncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("create vault: %w", err)
	}
	return v, nil
}

// newEventConnection returns nil when RabbitMQ is not configured.
func newEventConnection(lc fx.Lifecycle, logger *zap.SugaredLogger, cfg config.App) (*events.Connection, error) {
	if cfg.Rabbit.URL == "" {
		logger.Infow("rabbitmq disabled, events are not published")
		return nil, nil
	}

	conn, err := events.Dial(cfg.Rabbit.URL)
	if err != nil {
		logger.Errorw("rabbitmq connection failed", "error", err)
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return conn.Close()
		},
	})

	return conn, nil
}

func newPublisher(lc fx.Lifecycle, logger *zap.SugaredLogger, cfg config.App, conn *events.Connection) (core.EventPublisher, error) {
	if conn == nil {
		return events.NoopPublisher{}, nil
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open publisher channel: %w", err)
	}

	publisher, err := events.NewPublisher(logger, ch, cfg.Rabbit.Exchange)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func newAlerter(logger *zap.SugaredLogger) *monitoring.Alerter {
	return monitoring.NewAlerter(logger)
}

func newJWTService(cfg config.App) *jwt.JWTService {
	return jwt.NewJWTService([]byte(cfg.JWTSecret))
}

func newGreenmint(
	logger *zap.SugaredLogger,
	cfg config.App,
	repo *repository.Repository,
	pinner *pinning.PinataClient,
	ledgerSvc *ledger.Service,
	keyVault *vault.Vault,
	publisher core.EventPublisher,
	jwtService *jwt.JWTService,
	alerter *monitoring.Alerter,
) *core.Greenmint {
	workflow := core.DefaultConfig()
	workflow.FinalityTimeout = cfg.Workflow.FinalityTimeout
	workflow.PinLease = cfg.Workflow.PinLease
	workflow.MintLease = cfg.Workflow.MintLease
	workflow.SummaryCacheTTL = cfg.Workflow.SummaryCacheTTL

	return core.NewGreenmint(
		logger,
		repo,
		pinner,
		ledgerSvc,
		keyVault,
		publisher,
		jwtService,
		alerter,
		workflow)
}
