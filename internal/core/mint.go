package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"greenmint/internal/events"
	"greenmint/internal/ledger"
	"greenmint/internal/repository"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

// MintFromAttestation issues the on-chain certificate for a pinned
// attestation and records it as an asset. At most one transaction is ever
// submitted per attestation; a caller that finds a submitted but unsettled
// mint resumes it instead of sending another.
func (g *Greenmint) MintFromAttestation(ctx context.Context, attestationID, mintTo string) (Mint, error) {
	attestationID = strings.TrimSpace(attestationID)
	if attestationID == "" {
		return Mint{}, invalidInput("attestation_id is required")
	}

	to, err := ledger.NormalizeAddress(mintTo)
	if err != nil {
		return Mint{}, newError(KindInvalidInput, fmt.Errorf("%w: %q", ErrInvalidAddress, mintTo))
	}

	now := TimeNow().UTC()
	var (
		details repository.AttestationDetails
		resume  bool
	)
	intent, err := g.repo.ReserveMint(ctx, attestationID, func(s repository.MintState) (*repository.MintIntent, error) {
		details = s.Attestation
		resume = false
		return g.planMint(s, to, now, &resume)
	})
	if err != nil {
		return Mint{}, g.reserveMintErr(attestationID, err)
	}

	if resume {
		g.logs.Infow("resuming submitted mint", "attestation_id", attestationID, "txn_hash", intent.TxnHash)
		return g.reconcileIntent(ctx, intent, details, nil)
	}

	return g.submit(ctx, intent, details)
}

// planMint runs under the attestation lock and returns the intent to store,
// or nil when an already submitted intent should be resumed.
func (g *Greenmint) planMint(s repository.MintState, to string, now time.Time, resume *bool) (*repository.MintIntent, error) {
	if err := g.ledger.Ready(); err != nil {
		return nil, configErr(err)
	}
	if s.Attestation.PinStatus != repository.PinPinned {
		return nil, newError(KindConflict, ErrNotPinned)
	}
	if s.Asset != nil {
		return nil, newError(KindConflict, fmt.Errorf("%w: %s", ErrAlreadyMinted, s.Asset.TxnHash))
	}

	current := s.Intent
	if current != nil {
		switch current.Status {
		case repository.IntentSubmitted:
			*resume = true
			return nil, nil
		case repository.IntentConfirmed:
			return nil, newError(KindConflict, ErrAlreadyMinted)
		case repository.IntentPreparing:
			if current.ClaimedAt != nil && now.Sub(*current.ClaimedAt) < g.cfg.MintLease {
				return nil, newError(KindConflict, ErrMintInProgress)
			}
		}
	}

	if s.Attestation.ReadingStatus == repository.ReadingVerified {
		return nil, newError(KindConflict, ErrReadingVerified)
	}

	next := repository.MintIntent{
		ID:            uuid.NewString(),
		AttestationID: s.Attestation.AttestationID,
		CreatedAt:     now,
	}
	if current != nil {
		next = *current
	}
	next.MintTo = to
	next.Status = repository.IntentPreparing
	next.TxnHash = ""
	next.RawTxn = nil
	next.Attempts++
	next.LastError = ""
	next.ClaimedAt = &now
	return &next, nil
}

// submit signs the mint, persists it as submitted and only then broadcasts.
func (g *Greenmint) submit(ctx context.Context, intent repository.MintIntent, details repository.AttestationDetails) (Mint, error) {
	signed, err := g.ledger.PrepareMint(ctx, ledger.MintCall{
		To:        intent.MintTo,
		ContentID: details.IPFSCID,
		KWh:       details.KWh.String(),
	})
	if err != nil {
		g.failIntent(ctx, intent, details, err.Error())
		if errors.Is(err, ledger.ErrNoSigningKey) || errors.Is(err, ledger.ErrNoContract) {
			return Mint{}, configErr(err)
		}
		return Mint{}, newError(KindExternal, fmt.Errorf("%w: %w", ErrLedgerUnavailable, err))
	}

	if err := g.repo.MarkIntentSubmitted(ctx, intent.ID, signed.Hash, signed.Raw); err != nil {
		g.ledger.ReleaseNonce(signed.Nonce)
		if errors.Is(err, repository.ErrStateChanged) {
			return Mint{}, newError(KindConflict, fmt.Errorf("%w: %w", ErrMintInProgress, err))
		}
		return Mint{}, fmt.Errorf("mark intent submitted: %w", err)
	}

	intent.Status = repository.IntentSubmitted
	intent.TxnHash = signed.Hash
	intent.RawTxn = signed.Raw

	g.logs.Infow("mint submitted", "attestation_id", details.AttestationID, "txn_hash", signed.Hash, "nonce", signed.Nonce)

	// The transaction may be on the wire from here on, so the caller going
	// away must not abandon the outcome.
	return g.broadcastAndSettle(context.WithoutCancel(ctx), intent, details)
}

func (g *Greenmint) broadcastAndSettle(ctx context.Context, intent repository.MintIntent, details repository.AttestationDetails) (Mint, error) {
	_, err := retry(g.backOff(ctx), func() (struct{}, error) {
		err := g.ledger.Broadcast(ctx, intent.RawTxn)
		if errors.Is(err, ledger.ErrNonceTooLow) || errors.Is(err, ledger.ErrTxInvalid) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	})

	switch {
	case errors.Is(err, ledger.ErrNonceTooLow):
		// the nonce is spent; either by this very transaction or by another one
		receipt, lookupErr := g.ledger.Lookup(ctx, intent.TxnHash)
		if lookupErr == nil {
			return g.settle(ctx, intent, details, receipt)
		}
		if errors.Is(lookupErr, ledger.ErrTxNotFound) {
			g.failIntent(ctx, intent, details, ErrTxDropped.Error())
			return Mint{}, newError(KindRejected, fmt.Errorf("%s: %w", intent.TxnHash, ErrTxDropped))
		}
		g.noteIntent(ctx, intent, lookupErr)
		return Mint{}, newError(KindExternal, fmt.Errorf("%w: %w", ErrLedgerUnavailable, lookupErr))
	case errors.Is(err, ledger.ErrTxInvalid):
		g.failIntent(ctx, intent, details, err.Error())
		return Mint{}, newError(KindRejected, fmt.Errorf("%w: %w", ErrTxRejected, err))
	case err != nil:
		g.noteIntent(ctx, intent, err)
		return Mint{}, newError(KindExternal, fmt.Errorf("%w: %w", ErrLedgerUnavailable, err))
	}

	waitCtx, cancel := context.WithTimeout(ctx, g.cfg.FinalityTimeout)
	defer cancel()

	receipt, err := g.ledger.AwaitFinality(waitCtx, intent.TxnHash)
	if err != nil {
		g.noteIntent(ctx, intent, err)
		if errors.Is(err, ledger.ErrFinalityTimeout) {
			g.logs.Infow("mint not final yet, left for reconciliation", "attestation_id", details.AttestationID, "txn_hash", intent.TxnHash)
			return Mint{}, newError(KindTimeout, fmt.Errorf("%s: %w", intent.TxnHash, ErrFinalityTimeout))
		}
		return Mint{}, newError(KindExternal, fmt.Errorf("%w: %w", ErrLedgerUnavailable, err))
	}

	return g.settle(ctx, intent, details, receipt)
}

// settle applies a final receipt to the store.
func (g *Greenmint) settle(ctx context.Context, intent repository.MintIntent, details repository.AttestationDetails, receipt ledger.Receipt) (Mint, error) {
	if !receipt.Succeeded {
		g.failIntent(ctx, intent, details, "transaction reverted")
		return Mint{}, newError(KindRejected, fmt.Errorf("%s: %w", intent.TxnHash, ErrTxRejected))
	}

	asset := repository.Asset{
		ID:            uuid.NewString(),
		FarmerID:      details.FarmerID,
		AttestationID: details.AttestationID,
		TxnHash:       intent.TxnHash,
		CertificateID: CertificateID(intent.TxnHash),
		KWh:           details.KWh,
		CreatedAt:     TimeNow().UTC(),
	}

	stored, err := g.repo.CompleteMint(ctx, intent.ID, details.ReadingID, asset)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAssetExists):
			err = newError(KindConflict, ErrAlreadyMinted)
		case errors.Is(err, repository.ErrReadingVerified):
			err = newError(KindConflict, ErrReadingVerified)
		case errors.Is(err, repository.ErrStateChanged):
			err = newError(KindConflict, fmt.Errorf("%w: %w", ErrMintInProgress, err))
		default:
			err = fmt.Errorf("complete mint: %w", err)
		}
		g.alerter.Alert("final mint could not be recorded", err,
			"attestation_id", details.AttestationID, "txn_hash", intent.TxnHash)
		return Mint{}, err
	}

	g.summaries.Remove(summaryCacheKey)
	g.logs.Infow("certificate minted", "attestation_id", details.AttestationID, "txn_hash", stored.TxnHash, "asset_id", stored.ID)
	g.publish(ctx, events.CertificateMintedKey, events.CertificateMinted{
		AssetID:       stored.ID,
		AttestationID: stored.AttestationID,
		CertificateID: stored.CertificateID,
		TxnHash:       stored.TxnHash,
		MintTo:        intent.MintTo,
		KWh:           stored.KWh.String(),
	})

	return Mint{TxnHash: stored.TxnHash, Asset: assetFromRecord(stored)}, nil
}

func (g *Greenmint) failIntent(ctx context.Context, intent repository.MintIntent, details repository.AttestationDetails, reason string) {
	if err := g.repo.MarkIntentFailed(context.WithoutCancel(ctx), intent.ID, reason); err != nil {
		g.logs.Errorw("failed to mark mint intent failed", "intent_id", intent.ID, "error", err)
		return
	}
	g.logs.Infow("mint failed", "attestation_id", details.AttestationID, "txn_hash", intent.TxnHash, "reason", reason)
	g.publish(ctx, events.MintFailedKey, events.MintFailed{
		AttestationID: details.AttestationID,
		TxnHash:       intent.TxnHash,
		Reason:        reason,
	})
}

func (g *Greenmint) noteIntent(ctx context.Context, intent repository.MintIntent, cause error) {
	if err := g.repo.NoteIntentError(context.WithoutCancel(ctx), intent.ID, cause.Error()); err != nil {
		g.logs.Errorw("failed to note mint intent error", "intent_id", intent.ID, "error", err)
	}
}

func (g *Greenmint) reserveMintErr(attestationID string, err error) error {
	var coreErr *Error
	switch {
	case errors.As(err, &coreErr):
		return err
	case errors.Is(err, repository.ErrAttestationNotFound):
		return newError(KindNotFound, fmt.Errorf("%w: %s", ErrAttestationNotFound, attestationID))
	case errors.Is(err, repository.ErrDuplicate):
		return newError(KindConflict, ErrMintInProgress)
	}
	return fmt.Errorf("reserve mint: %w", err)
}

func configErr(err error) error {
	if errors.Is(err, ledger.ErrNoContract) {
		return newError(KindConfig, ErrContractMissing)
	}
	return newError(KindConfig, ErrAttestorKeyMissing)
}
