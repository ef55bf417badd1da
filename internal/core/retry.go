package core

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const maxRetryInterval = 5 * time.Second

func (g *Greenmint) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = g.cfg.RetryInitialInterval
	b.MaxInterval = maxRetryInterval
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, g.cfg.MaxRetries), ctx)
}

// retry runs op until it succeeds, returns a backoff.Permanent error or the
// retry budget runs out.
func retry[T any](b backoff.BackOff, op func() (T, error)) (T, error) {
	return backoff.RetryWithData(op, b)
}
