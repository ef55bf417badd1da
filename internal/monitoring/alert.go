package monitoring

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Init configures error tracking. Without a DSN alerts are only logged.
func Init(dsn, environment string) error {
	if dsn == "" {
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
	})
	if err != nil {
		return fmt.Errorf("init sentry: %w", err)
	}
	return nil
}

func Flush() {
	sentry.Flush(2 * time.Second)
}

// Alerter reports conditions that need an operator, such as a mint that
// cannot be reconciled.
type Alerter struct {
	logs *zap.SugaredLogger
	hub  *sentry.Hub
}

func NewAlerter(logger *zap.SugaredLogger) *Alerter {
	return &Alerter{
		logs: logger,
		hub:  sentry.CurrentHub(),
	}
}

func (a *Alerter) Alert(message string, err error, keysAndValues ...any) {
	evID := a.hub.CaptureException(errors.Wrap(err, message))
	a.logs.With(keysAndValues...).Errorw("critical error encountered",
		"msg", message,
		"error", err,
		"event_id", evID)
}
