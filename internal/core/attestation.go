package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"greenmint/internal/events"
	"greenmint/internal/pinning"
	"greenmint/internal/repository"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

// time left between giving up on a pin and the lease running out
const pinLeaseMargin = 10 * time.Second

// VerifyReading attests a reading: the attestation document is built, pinned
// to IPFS and stored. Repeating the call returns the stored attestation
// without pinning again.
func (g *Greenmint) VerifyReading(ctx context.Context, readingID, notes string) (Attestation, error) {
	readingID = strings.TrimSpace(readingID)
	if readingID == "" {
		return Attestation{}, invalidInput("reading id is required")
	}

	attestor, err := g.ledger.AttestorAddress()
	if err != nil {
		return Attestation{}, newError(KindConfig, ErrAttestorKeyMissing)
	}

	now := TimeNow().UTC()
	var mustPin bool
	reserved, err := g.repo.ReserveAttestation(ctx, readingID, func(s repository.AttestationState) (*repository.Attestation, error) {
		mustPin = false
		return g.planAttestation(s, attestor, notes, now, &mustPin)
	})
	if err != nil {
		return Attestation{}, g.reserveAttestationErr(readingID, err)
	}

	if !mustPin {
		g.logs.Infow("attestation already exists", "reading_id", readingID, "attestation_id", reserved.ID)
		return attestationFromRecord(reserved), nil
	}

	cid, err := g.pin(ctx, reserved)
	if err != nil {
		if delErr := g.repo.DeletePendingAttestation(context.WithoutCancel(ctx), reserved.ID, reserved.ClaimToken); delErr != nil {
			g.logs.Errorw("failed to release pending attestation", "attestation_id", reserved.ID, "error", delErr)
		}
		return Attestation{}, err
	}

	if err := g.repo.MarkAttestationPinned(ctx, reserved.ID, reserved.ClaimToken, cid); err != nil {
		if errors.Is(err, repository.ErrStateChanged) {
			g.logs.Warnw("pin lease lost before the cid was stored", "attestation_id", reserved.ID, "cid", cid)
			return g.currentAttestation(ctx, reserved.ID)
		}
		return Attestation{}, fmt.Errorf("mark attestation pinned: %w", err)
	}

	reserved.IPFSCID = cid
	reserved.PinStatus = repository.PinPinned
	reserved.ClaimedAt = nil
	reserved.ClaimToken = ""

	g.logs.Infow("reading attested", "reading_id", readingID, "attestation_id", reserved.ID, "cid", cid)
	g.publish(ctx, events.AttestationCreatedKey, events.AttestationCreated{
		AttestationID: reserved.ID,
		ReadingID:     readingID,
		CID:           cid,
	})

	return attestationFromRecord(reserved), nil
}

// planAttestation decides, under the reading lock, whether a new attestation
// is created, a stale pending one is resumed or the stored one is returned.
func (g *Greenmint) planAttestation(s repository.AttestationState, attestor, notes string, now time.Time, mustPin *bool) (*repository.Attestation, error) {
	if s.Reading.Status == repository.ReadingVerified {
		return nil, newError(KindConflict, fmt.Errorf("%w: %s", ErrReadingVerified, s.Reading.ReadingID))
	}
	if !s.Reading.KWh.IsPositive() {
		return nil, newError(KindInvalidInput, fmt.Errorf("%w: reading has %s", ErrInvalidKWh, s.Reading.KWh))
	}

	if existing := s.Attestation; existing != nil {
		if existing.PinStatus == repository.PinPinned {
			return nil, nil
		}
		if existing.ClaimedAt != nil && now.Sub(*existing.ClaimedAt) < g.cfg.PinLease {
			return nil, newError(KindConflict, ErrAttestationInProgress)
		}
		resumed := *existing
		resumed.ClaimedAt = &now
		resumed.ClaimToken = uuid.NewString()
		*mustPin = true
		return &resumed, nil
	}

	doc := buildDocument(s.Reading, attestor, notes, now)
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode attestation: %w", err)
	}

	*mustPin = true
	return &repository.Attestation{
		ID:              uuid.NewString(),
		ReadingID:       s.Reading.ReadingID,
		AttestorAddress: attestor,
		AttestationJSON: raw,
		PinStatus:       repository.PinPending,
		ClaimedAt:       &now,
		ClaimToken:      uuid.NewString(),
		CreatedAt:       now,
	}, nil
}

func buildDocument(r repository.ReadingDetails, attestor, notes string, now time.Time) AttestationDocument {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		notes = defaultNotes
	}

	return AttestationDocument{
		Version:       documentVersion,
		FarmerID:      r.FarmerID,
		FarmerWallet:  r.FarmerWallet,
		MeterID:       r.MeterID,
		KWh:           json.Number(r.KWh.String()),
		Timestamp:     r.Timestamp.UTC().Format(time.RFC3339),
		VerifiedAt:    now.Format(verifiedAtLayout),
		VerifierNotes: notes,
		Verifier:      attestor,
	}
}

// pin gives up before the lease runs out, so no other caller can reclaim the
// attestation while this one is still pinning.
func (g *Greenmint) pin(ctx context.Context, a repository.Attestation) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.pinDeadline())
	defer cancel()

	name := "attestation-" + a.ReadingID
	cid, err := retry(g.backOff(ctx), func() (string, error) {
		cid, err := g.pinner.PinJSON(ctx, name, json.RawMessage(a.AttestationJSON))
		if errors.Is(err, pinning.ErrRejected) || errors.Is(err, pinning.ErrNotConfigured) {
			return "", backoff.Permanent(err)
		}
		return cid, err
	})
	if err == nil {
		return cid, nil
	}

	g.logs.Errorw("failed to pin attestation", "reading_id", a.ReadingID, "error", err)
	if errors.Is(err, pinning.ErrNotConfigured) {
		return "", newError(KindConfig, ErrPinningNotConfigured)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "", newError(KindTimeout, fmt.Errorf("%w: %w", ErrPinningFailed, err))
	}
	return "", newError(KindExternal, fmt.Errorf("%w: %w", ErrPinningFailed, err))
}

func (g *Greenmint) pinDeadline() time.Duration {
	if g.cfg.PinLease > 2*pinLeaseMargin {
		return g.cfg.PinLease - pinLeaseMargin
	}
	return g.cfg.PinLease / 2
}

// currentAttestation reports what another lease holder left behind.
func (g *Greenmint) currentAttestation(ctx context.Context, id string) (Attestation, error) {
	current, err := g.repo.GetAttestation(ctx, id)
	if errors.Is(err, repository.ErrAttestationNotFound) {
		return Attestation{}, newError(KindConflict, ErrAttestationInProgress)
	}
	if err != nil {
		return Attestation{}, fmt.Errorf("get attestation: %w", err)
	}
	if current.PinStatus != repository.PinPinned {
		return Attestation{}, newError(KindConflict, ErrAttestationInProgress)
	}
	return attestationFromRecord(current), nil
}

func (g *Greenmint) reserveAttestationErr(readingID string, err error) error {
	var coreErr *Error
	switch {
	case errors.As(err, &coreErr):
		return err
	case errors.Is(err, repository.ErrReadingNotFound):
		return newError(KindNotFound, fmt.Errorf("%w: %s", ErrReadingNotFound, readingID))
	case errors.Is(err, repository.ErrDuplicate):
		return newError(KindConflict, ErrAttestationInProgress)
	}
	return fmt.Errorf("reserve attestation: %w", err)
}
