package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"greenmint/internal/ledger"
	"greenmint/internal/repository"

	"go.uber.org/zap"
)

// Reconcile settles the mint recorded for an attestation against the ledger.
func (g *Greenmint) Reconcile(ctx context.Context, attestationID string) (Mint, error) {
	attestationID = strings.TrimSpace(attestationID)
	if attestationID == "" {
		return Mint{}, invalidInput("attestation id is required")
	}

	intent, err := g.repo.GetMintIntent(ctx, attestationID)
	if err != nil {
		if errors.Is(err, repository.ErrIntentNotFound) {
			return Mint{}, newError(KindNotFound, fmt.Errorf("%w: %s", ErrMintNotFound, attestationID))
		}
		return Mint{}, fmt.Errorf("get mint intent: %w", err)
	}

	details, err := g.repo.GetAttestationDetails(ctx, attestationID)
	if err != nil {
		if errors.Is(err, repository.ErrAttestationNotFound) {
			return Mint{}, newError(KindNotFound, fmt.Errorf("%w: %s", ErrAttestationNotFound, attestationID))
		}
		return Mint{}, fmt.Errorf("get attestation details: %w", err)
	}

	return g.reconcileIntent(ctx, intent, details, nil)
}

// reconcileIntent drives an intent to a terminal state where the ledger
// allows it. known, when set, is a receipt already fetched for the intent.
func (g *Greenmint) reconcileIntent(ctx context.Context, intent repository.MintIntent, details repository.AttestationDetails, known *ledger.Receipt) (Mint, error) {
	switch intent.Status {
	case repository.IntentConfirmed:
		asset, err := g.repo.GetAssetByAttestation(ctx, details.AttestationID)
		if err != nil {
			return Mint{}, fmt.Errorf("get asset: %w", err)
		}
		return Mint{TxnHash: asset.TxnHash, Asset: assetFromRecord(asset)}, nil

	case repository.IntentFailed:
		return Mint{}, newError(KindRejected, fmt.Errorf("%w: %s", ErrTxRejected, intent.LastError))

	case repository.IntentPreparing:
		if intent.ClaimedAt != nil && TimeNow().Sub(*intent.ClaimedAt) < g.cfg.MintLease {
			return Mint{}, newError(KindConflict, ErrMintInProgress)
		}
		// nothing was persisted as submitted, so nothing can be on chain
		g.failIntent(ctx, intent, details, ErrMintAbandoned.Error())
		return Mint{}, newError(KindRejected, ErrMintAbandoned)
	}

	ctx = context.WithoutCancel(ctx)

	if known != nil {
		return g.settle(ctx, intent, details, *known)
	}

	receipt, err := g.ledger.Lookup(ctx, intent.TxnHash)
	switch {
	case err == nil:
		return g.settle(ctx, intent, details, receipt)
	case errors.Is(err, ledger.ErrTxNotFound):
		g.logs.Infow("rebroadcasting mint", "attestation_id", details.AttestationID, "txn_hash", intent.TxnHash)
		return g.broadcastAndSettle(ctx, intent, details)
	}

	g.noteIntent(ctx, intent, err)
	return Mint{}, newError(KindExternal, fmt.Errorf("%w: %w", ErrLedgerUnavailable, err))
}

// ReconcileOutstanding walks every submitted intent and every preparing one
// whose lease has run out.
func (g *Greenmint) ReconcileOutstanding(ctx context.Context) (ReconcileReport, error) {
	intents, err := g.repo.ListOutstandingIntents(ctx, TimeNow().Add(-g.cfg.MintLease))
	if err != nil {
		return ReconcileReport{}, fmt.Errorf("list outstanding intents: %w", err)
	}

	report := ReconcileReport{Checked: len(intents)}
	if len(intents) == 0 {
		return report, nil
	}

	hashes := make([]string, 0, len(intents))
	for _, intent := range intents {
		if intent.Status == repository.IntentSubmitted && intent.TxnHash != "" {
			hashes = append(hashes, intent.TxnHash)
		}
	}

	receipts := map[string]ledger.Receipt{}
	if len(hashes) > 0 {
		receipts, err = g.ledger.FetchReceipts(ctx, hashes)
		if err != nil {
			// partial results are still usable; the rest is looked up one by one
			g.logs.Errorw("fetching receipts", "error", err)
		}
	}

	for _, intent := range intents {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		details, err := g.repo.GetAttestationDetails(ctx, intent.AttestationID)
		if err != nil {
			report.Errors++
			g.alerter.Alert("mint intent without attestation", err, "intent_id", intent.ID, "attestation_id", intent.AttestationID)
			continue
		}

		var known *ledger.Receipt
		if r, ok := receipts[intent.TxnHash]; ok {
			known = &r
		}

		_, err = g.reconcileIntent(ctx, intent, details, known)
		if err == nil {
			report.Confirmed++
			continue
		}

		switch KindOf(err) {
		case KindRejected:
			report.Failed++
		case KindTimeout, KindExternal:
			report.Pending++
		default:
			report.Errors++
			g.alerter.Alert("mint reconciliation stuck", err, "attestation_id", intent.AttestationID, "txn_hash", intent.TxnHash)
		}
	}

	g.logs.Infow("reconciliation pass finished",
		"checked", report.Checked,
		"confirmed", report.Confirmed,
		"failed", report.Failed,
		"pending", report.Pending,
		"errors", report.Errors,
	)
	return report, nil
}

// Reconciler runs ReconcileOutstanding at startup and then on a fixed
// interval until its context is cancelled.
type Reconciler struct {
	logs     *zap.SugaredLogger
	service  *Greenmint
	interval time.Duration
}

func NewReconciler(logger *zap.SugaredLogger, service *Greenmint, interval time.Duration) *Reconciler {
	return &Reconciler{
		logs:     logger,
		service:  service,
		interval: interval,
	}
}

func (r *Reconciler) Run(ctx context.Context) {
	r.pass(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logs.Infow("reconciler stopped")
			return
		case <-ticker.C:
			r.pass(ctx)
		}
	}
}

func (r *Reconciler) pass(ctx context.Context) {
	if _, err := r.service.ReconcileOutstanding(ctx); err != nil && !errors.Is(err, context.Canceled) {
		r.logs.Errorw("reconciliation pass failed", "error", err)
	}
}
