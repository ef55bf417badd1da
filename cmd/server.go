package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"greenmint/internal/config"
	"greenmint/internal/core"
	"greenmint/internal/events"
	"greenmint/internal/http/handler"
	"greenmint/internal/http/handler/middleware"
	"greenmint/internal/http/payload"
	"greenmint/internal/http/server"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const startTimeout = 30 * time.Second

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the reading consumer and the mint reconciler",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	var srv *server.HTTPServer

	app := fx.New(
		infrastructure,
		fx.Provide(
			newHandler,
			newHTTPServer,
		),
		fx.Invoke(
			startReconciler,
			startConsumer,
		),
		fx.Populate(&srv),
	)
	if err := app.Err(); err != nil {
		return fmt.Errorf("build application: %w", err)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return fmt.Errorf("start application: %w", err)
	}

	runErr := run(srv)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), startTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("stop application: %w", err)
	}

	return runErr
}

func newHandler(logger *zap.SugaredLogger, greenmint *core.Greenmint) http.Handler {
	gmHdlr := handler.NewGreenmintHandler(
		logger,
		payload.Decoder{},
		greenmint)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.RegisterFarmer, gmHdlr.HandleRegisterFarmer)
	mux.HandleFunc(handler.SubmitReading, gmHdlr.HandleSubmitReading)
	mux.HandleFunc(handler.VerifyReading, gmHdlr.HandleVerifyReading)
	mux.HandleFunc(handler.MintFromAttestation, gmHdlr.HandleMintFromAttestation)
	mux.HandleFunc(handler.ListAssets, gmHdlr.HandleListAssets)
	mux.HandleFunc(handler.RegisterCompany, gmHdlr.HandleRegisterCompany)
	mux.HandleFunc(handler.LoginCompany, gmHdlr.HandleLoginCompany)
	mux.HandleFunc(handler.CurrentCompany, gmHdlr.HandleCurrentCompany)
	mux.HandleFunc(handler.Summary, gmHdlr.HandleSummary)
	mux.HandleFunc(handler.Healthz, gmHdlr.HandleHealthz)

	return hdlr
}

func newHTTPServer(logger *zap.SugaredLogger, cfg config.App, hdlr http.Handler) *server.HTTPServer {
	return server.NewHTTP(logger, hdlr, cfg.Port)
}

func startReconciler(lc fx.Lifecycle, logger *zap.SugaredLogger, cfg config.App, greenmint *core.Greenmint) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	reconciler := core.NewReconciler(logger, greenmint, cfg.Workflow.ReconcileInterval)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				reconciler.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}

// startConsumer feeds readings published on the ingest queue into the
// workflow. It does nothing while RabbitMQ is disabled.
func startConsumer(lc fx.Lifecycle, logger *zap.SugaredLogger, cfg config.App, conn *events.Connection, greenmint *core.Greenmint) error {
	if conn == nil {
		return nil
	}

	consumer, err := events.NewConsumer(logger, conn, events.ConsumerConfig{
		Queue:    cfg.Rabbit.IngestQueue,
		Exchange: cfg.Rabbit.Exchange,
	}, greenmint.ProcessReadingMessage)
	if err != nil {
		return fmt.Errorf("create reading consumer: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return consumer.Start(ctx)
		},
		OnStop: func(context.Context) error {
			cancel()
			return consumer.Close()
		},
	})

	return nil
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sig)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
