package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"greenmint/internal/db"
)

var (
	ErrFarmerNotFound      = errors.New("farmer not found")
	ErrReadingNotFound     = errors.New("reading not found")
	ErrAttestationNotFound = errors.New("attestation not found")
	ErrCompanyNotFound     = errors.New("company not found")
	ErrIntentNotFound      = errors.New("mint intent not found")
	ErrAssetNotFound       = errors.New("asset not found")
	ErrDuplicate           = errors.New("record already exists")
	ErrStateChanged        = errors.New("record state changed concurrently")
	ErrAssetExists         = errors.New("asset already exists for attestation")
	ErrReadingVerified     = errors.New("reading already verified")
	errNothingPlanned      = errors.New("plan returned no record")
)

type Repository struct {
	db Storage
}

func NewRepository(db Storage) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) MigrateTables() error {
	err := r.db.MigrateTable(
		&Farmer{},
		&MeterReading{},
		&Attestation{},
		&Asset{},
		&Company{},
		&MintIntent{},
		&CustodialKey{},
	)
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

// CreateFarmer stores the farmer together with its sealed custodial key.
func (r *Repository) CreateFarmer(ctx context.Context, farmer Farmer, key CustodialKey) error {
	return r.db.Transaction(ctx, func(tx db.Querier) error {
		if err := tx.Insert(ctx, &farmer); err != nil {
			return insertErr("insert farmer", err)
		}
		if err := tx.Insert(ctx, &key); err != nil {
			return insertErr("insert custodial key", err)
		}
		return nil
	})
}

func (r *Repository) GetFarmer(ctx context.Context, id string) (Farmer, error) {
	var farmer Farmer
	if err := r.db.GetOneBy(ctx, "id", id, &farmer); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Farmer{}, ErrFarmerNotFound
		}
		return Farmer{}, fmt.Errorf("get farmer by id: %w", err)
	}
	return farmer, nil
}

func (r *Repository) CreateCompany(ctx context.Context, company Company, key CustodialKey) error {
	return r.db.Transaction(ctx, func(tx db.Querier) error {
		if err := tx.Insert(ctx, &company); err != nil {
			return insertErr("insert company", err)
		}
		if err := tx.Insert(ctx, &key); err != nil {
			return insertErr("insert custodial key", err)
		}
		return nil
	})
}

func (r *Repository) GetCompanyByEmail(ctx context.Context, email string) (Company, error) {
	var company Company
	if err := r.db.GetOneBy(ctx, "email", email, &company); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Company{}, ErrCompanyNotFound
		}
		return Company{}, fmt.Errorf("get company by email: %w", err)
	}
	return company, nil
}

func (r *Repository) GetCompany(ctx context.Context, id string) (Company, error) {
	var company Company
	if err := r.db.GetOneBy(ctx, "id", id, &company); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Company{}, ErrCompanyNotFound
		}
		return Company{}, fmt.Errorf("get company by id: %w", err)
	}
	return company, nil
}

func (r *Repository) CreateReading(ctx context.Context, reading MeterReading) error {
	if err := r.db.Insert(ctx, &reading); err != nil {
		return insertErr("insert reading", err)
	}
	return nil
}

// ReserveAttestation locks the reading and hands its current state to plan.
// A non-nil result from plan is inserted when no attestation exists yet, or
// has its lease taken over otherwise. The lock is released on return.
func (r *Repository) ReserveAttestation(ctx context.Context, readingID string, plan func(AttestationState) (*Attestation, error)) (Attestation, error) {
	var result Attestation
	err := r.db.Transaction(ctx, func(tx db.Querier) error {
		var reading ReadingDetails
		if err := tx.TakeJoined(ctx, readingDetailsQuery(readingID), &reading); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return ErrReadingNotFound
			}
			return fmt.Errorf("lock reading: %w", err)
		}

		state := AttestationState{Reading: reading}
		var existing Attestation
		err := tx.GetOneBy(ctx, "reading_id", readingID, &existing)
		switch {
		case err == nil:
			state.Attestation = &existing
		case errors.Is(err, db.ErrNotFound):
		default:
			return fmt.Errorf("get attestation by reading: %w", err)
		}

		next, err := plan(state)
		if err != nil {
			return err
		}

		switch {
		case next == nil && state.Attestation == nil:
			return errNothingPlanned
		case next == nil:
			result = existing
		case state.Attestation == nil:
			if err := tx.Insert(ctx, next); err != nil {
				return insertErr("insert attestation", err)
			}
			result = *next
		default:
			_, err := tx.UpdateWhere(ctx, &Attestation{},
				map[string]any{"claimed_at": next.ClaimedAt, "claim_token": next.ClaimToken},
				"id = ?", existing.ID)
			if err != nil {
				return fmt.Errorf("claim attestation: %w", err)
			}
			result = *next
		}
		return nil
	})
	return result, err
}

// MarkAttestationPinned stores the cid for the holder of the pin lease. A
// lease taken over by another caller yields ErrStateChanged.
func (r *Repository) MarkAttestationPinned(ctx context.Context, id, claimToken, cid string) error {
	n, err := r.db.UpdateWhere(ctx, &Attestation{},
		map[string]any{"ipfs_cid": cid, "pin_status": PinPinned, "claimed_at": nil, "claim_token": ""},
		"id = ? AND pin_status = ? AND claim_token = ?", id, PinPending, claimToken)
	if err != nil {
		return fmt.Errorf("mark attestation pinned: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("mark attestation pinned: %w", ErrStateChanged)
	}
	return nil
}

// DeletePendingAttestation removes an attestation whose document never made it
// to content storage. Pinned attestations and leases held by someone else are
// left untouched.
func (r *Repository) DeletePendingAttestation(ctx context.Context, id, claimToken string) error {
	_, err := r.db.DeleteWhere(ctx, &Attestation{},
		"id = ? AND pin_status = ? AND claim_token = ?", id, PinPending, claimToken)
	if err != nil {
		return fmt.Errorf("delete pending attestation: %w", err)
	}
	return nil
}

func (r *Repository) GetAttestation(ctx context.Context, id string) (Attestation, error) {
	var attestation Attestation
	if err := r.db.GetOneBy(ctx, "id", id, &attestation); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Attestation{}, ErrAttestationNotFound
		}
		return Attestation{}, fmt.Errorf("get attestation by id: %w", err)
	}
	return attestation, nil
}

func (r *Repository) GetAttestationDetails(ctx context.Context, id string) (AttestationDetails, error) {
	var details AttestationDetails
	q := attestationDetailsQuery(id)
	q.LockTable = ""
	if err := r.db.TakeJoined(ctx, q, &details); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return AttestationDetails{}, ErrAttestationNotFound
		}
		return AttestationDetails{}, fmt.Errorf("get attestation details: %w", err)
	}
	return details, nil
}

// ReserveMint locks the attestation and hands plan the asset and intent
// recorded for it. A non-nil intent returned by plan is inserted, or written
// over the existing intent.
func (r *Repository) ReserveMint(ctx context.Context, attestationID string, plan func(MintState) (*MintIntent, error)) (MintIntent, error) {
	var result MintIntent
	err := r.db.Transaction(ctx, func(tx db.Querier) error {
		var details AttestationDetails
		if err := tx.TakeJoined(ctx, attestationDetailsQuery(attestationID), &details); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return ErrAttestationNotFound
			}
			return fmt.Errorf("lock attestation: %w", err)
		}

		state := MintState{Attestation: details}

		var asset Asset
		err := tx.GetOneBy(ctx, "attestation_id", attestationID, &asset)
		switch {
		case err == nil:
			state.Asset = &asset
		case errors.Is(err, db.ErrNotFound):
		default:
			return fmt.Errorf("get asset by attestation: %w", err)
		}

		var intent MintIntent
		err = tx.GetOneBy(ctx, "attestation_id", attestationID, &intent)
		switch {
		case err == nil:
			state.Intent = &intent
		case errors.Is(err, db.ErrNotFound):
		default:
			return fmt.Errorf("get mint intent by attestation: %w", err)
		}

		next, err := plan(state)
		if err != nil {
			return err
		}

		switch {
		case next == nil && state.Intent == nil:
			return errNothingPlanned
		case next == nil:
			result = intent
		case state.Intent == nil:
			if err := tx.Insert(ctx, next); err != nil {
				return insertErr("insert mint intent", err)
			}
			result = *next
		default:
			_, err := tx.UpdateWhere(ctx, &MintIntent{}, map[string]any{
				"mint_to":    next.MintTo,
				"status":     next.Status,
				"txn_hash":   next.TxnHash,
				"raw_txn":    next.RawTxn,
				"attempts":   next.Attempts,
				"last_error": next.LastError,
				"claimed_at": next.ClaimedAt,
			}, "id = ?", intent.ID)
			if err != nil {
				return fmt.Errorf("update mint intent: %w", err)
			}
			result = *next
		}
		return nil
	})
	return result, err
}

// MarkIntentSubmitted records the signed transaction. It must land before the
// transaction is broadcast.
func (r *Repository) MarkIntentSubmitted(ctx context.Context, id, txnHash string, raw []byte) error {
	n, err := r.db.UpdateWhere(ctx, &MintIntent{},
		map[string]any{"status": IntentSubmitted, "txn_hash": txnHash, "raw_txn": raw},
		"id = ? AND status = ?", id, IntentPreparing)
	if err != nil {
		return fmt.Errorf("mark intent submitted: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("mark intent submitted: %w", ErrStateChanged)
	}
	return nil
}

func (r *Repository) MarkIntentFailed(ctx context.Context, id, reason string) error {
	n, err := r.db.UpdateWhere(ctx, &MintIntent{},
		map[string]any{"status": IntentFailed, "last_error": reason, "claimed_at": nil},
		"id = ? AND status IN ?", id, []IntentStatus{IntentPreparing, IntentSubmitted})
	if err != nil {
		return fmt.Errorf("mark intent failed: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("mark intent failed: %w", ErrStateChanged)
	}
	return nil
}

func (r *Repository) NoteIntentError(ctx context.Context, id, reason string) error {
	_, err := r.db.UpdateWhere(ctx, &MintIntent{}, map[string]any{"last_error": reason}, "id = ?", id)
	if err != nil {
		return fmt.Errorf("note intent error: %w", err)
	}
	return nil
}

func (r *Repository) GetMintIntent(ctx context.Context, attestationID string) (MintIntent, error) {
	var intent MintIntent
	if err := r.db.GetOneBy(ctx, "attestation_id", attestationID, &intent); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return MintIntent{}, ErrIntentNotFound
		}
		return MintIntent{}, fmt.Errorf("get mint intent: %w", err)
	}
	return intent, nil
}

// ListOutstandingIntents returns submitted intents and preparing intents
// whose lease ran out before staleBefore.
func (r *Repository) ListOutstandingIntents(ctx context.Context, staleBefore time.Time) ([]MintIntent, error) {
	intents := []MintIntent{}
	err := r.db.FindWhere(ctx, &intents, "created_at",
		"status = ? OR (status = ? AND (claimed_at IS NULL OR claimed_at < ?))",
		IntentSubmitted, IntentPreparing, staleBefore)
	if err != nil {
		return nil, fmt.Errorf("list outstanding intents: %w", err)
	}
	return intents, nil
}

// CompleteMint records the certificate for a finalized intent: the asset is
// inserted, the reading moves submitted -> verified and the intent is
// confirmed, all in one transaction. Repeating it for the same transaction
// returns the stored asset.
func (r *Repository) CompleteMint(ctx context.Context, intentID, readingID string, asset Asset) (Asset, error) {
	var result Asset
	err := r.db.Transaction(ctx, func(tx db.Querier) error {
		var intent MintIntent
		if err := tx.LockOneBy(ctx, "id", intentID, &intent); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return ErrIntentNotFound
			}
			return fmt.Errorf("lock mint intent: %w", err)
		}

		var existing Asset
		err := tx.GetOneBy(ctx, "attestation_id", asset.AttestationID, &existing)
		found := err == nil
		if err != nil && !errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("get asset by attestation: %w", err)
		}

		if intent.Status == IntentConfirmed {
			if !found {
				return fmt.Errorf("confirmed intent without asset: %w", ErrStateChanged)
			}
			result = existing
			return nil
		}
		if intent.Status != IntentSubmitted {
			return fmt.Errorf("complete mint from %q: %w", intent.Status, ErrStateChanged)
		}

		if found {
			if existing.TxnHash != asset.TxnHash {
				return ErrAssetExists
			}
			result = existing
		} else {
			if err := tx.Insert(ctx, &asset); err != nil {
				if errors.Is(err, db.ErrDuplicateKey) {
					return ErrAssetExists
				}
				return fmt.Errorf("insert asset: %w", err)
			}
			result = asset
		}

		n, err := tx.UpdateWhere(ctx, &MeterReading{},
			map[string]any{"status": ReadingVerified},
			"id = ? AND status = ?", readingID, ReadingSubmitted)
		if err != nil {
			return fmt.Errorf("verify reading: %w", err)
		}
		if n == 0 && !found {
			return ErrReadingVerified
		}

		_, err = tx.UpdateWhere(ctx, &MintIntent{},
			map[string]any{"status": IntentConfirmed, "last_error": "", "claimed_at": nil},
			"id = ?", intentID)
		if err != nil {
			return fmt.Errorf("confirm mint intent: %w", err)
		}
		return nil
	})
	return result, err
}

func (r *Repository) GetAssetByAttestation(ctx context.Context, attestationID string) (Asset, error) {
	var asset Asset
	if err := r.db.GetOneBy(ctx, "attestation_id", attestationID, &asset); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Asset{}, ErrAssetNotFound
		}
		return Asset{}, fmt.Errorf("get asset: %w", err)
	}
	return asset, nil
}

func (r *Repository) ListAssets(ctx context.Context) ([]Asset, error) {
	assets := []Asset{}
	if err := r.db.FindWhere(ctx, &assets, "created_at DESC", ""); err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	return assets, nil
}

// ListAssetsByFarmers returns the certificates minted for any of farmerIDs,
// newest first.
func (r *Repository) ListAssetsByFarmers(ctx context.Context, farmerIDs []string) ([]Asset, error) {
	assets := []Asset{}
	if err := r.db.GetAllBy(ctx, "farmer_id", farmerIDs, &assets); err != nil {
		return nil, fmt.Errorf("list assets by farmer: %w", err)
	}
	slices.SortStableFunc(assets, func(a, b Asset) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return assets, nil
}

func (r *Repository) Summary(ctx context.Context) (Summary, error) {
	total, err := r.db.Sum(ctx, &MeterReading{}, "kwh")
	if err != nil {
		return Summary{}, fmt.Errorf("sum kwh: %w", err)
	}

	farmers, err := r.db.Count(ctx, &Farmer{})
	if err != nil {
		return Summary{}, fmt.Errorf("count farmers: %w", err)
	}

	companies, err := r.db.Count(ctx, &Company{})
	if err != nil {
		return Summary{}, fmt.Errorf("count companies: %w", err)
	}

	return Summary{
		TotalKWh:       total,
		TotalFarmers:   farmers,
		TotalCompanies: companies,
	}, nil
}

func readingDetailsQuery(readingID string) db.JoinQuery {
	return db.JoinQuery{
		Table:     "meter_readings r",
		Select:    "r.id AS reading_id, r.farmer_id, f.wallet_address AS farmer_wallet, r.meter_id, r.kwh, r.ts AS timestamp, r.status",
		Joins:     []string{"JOIN farmers f ON f.id = r.farmer_id"},
		Where:     "r.id = ?",
		Args:      []any{readingID},
		LockTable: "r",
	}
}

func attestationDetailsQuery(attestationID string) db.JoinQuery {
	return db.JoinQuery{
		Table:     "attestations a",
		Select:    "a.id AS attestation_id, a.reading_id, r.farmer_id, a.ipfs_cid, a.pin_status, r.status AS reading_status, r.kwh",
		Joins:     []string{"JOIN meter_readings r ON r.id = a.reading_id"},
		Where:     "a.id = ?",
		Args:      []any{attestationID},
		LockTable: "a",
	}
}

func insertErr(op string, err error) error {
	if errors.Is(err, db.ErrDuplicateKey) {
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}
