package core_test

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"greenmint/internal/core"
	"greenmint/internal/repository"

	"github.com/shopspring/decimal"
)

// memoryStore serializes every operation behind one mutex, which stands in
// for the row locks the SQL repository takes.
type memoryStore struct {
	mu           sync.Mutex
	farmers      map[string]repository.Farmer
	companies    map[string]repository.Company
	keys         []repository.CustodialKey
	readings     map[string]repository.MeterReading
	attestations map[string]repository.Attestation
	intents      map[string]repository.MintIntent
	assets       map[string]repository.Asset
}

var _ core.Repository = (*memoryStore)(nil)

func newMemoryStore() *memoryStore {
	return &memoryStore{
		farmers:      map[string]repository.Farmer{},
		companies:    map[string]repository.Company{},
		readings:     map[string]repository.MeterReading{},
		attestations: map[string]repository.Attestation{},
		intents:      map[string]repository.MintIntent{},
		assets:       map[string]repository.Asset{},
	}
}

func (m *memoryStore) CreateFarmer(_ context.Context, farmer repository.Farmer, key repository.CustodialKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.farmers {
		if f.WalletAddress == farmer.WalletAddress {
			return repository.ErrDuplicate
		}
	}
	m.farmers[farmer.ID] = farmer
	m.keys = append(m.keys, key)
	return nil
}

func (m *memoryStore) GetFarmer(_ context.Context, id string) (repository.Farmer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.farmers[id]
	if !ok {
		return repository.Farmer{}, repository.ErrFarmerNotFound
	}
	return f, nil
}

func (m *memoryStore) CreateCompany(_ context.Context, company repository.Company, key repository.CustodialKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.companies {
		if c.Email == company.Email {
			return repository.ErrDuplicate
		}
	}
	m.companies[company.ID] = company
	m.keys = append(m.keys, key)
	return nil
}

func (m *memoryStore) GetCompanyByEmail(_ context.Context, email string) (repository.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.companies {
		if c.Email == email {
			return c, nil
		}
	}
	return repository.Company{}, repository.ErrCompanyNotFound
}

func (m *memoryStore) GetCompany(_ context.Context, id string) (repository.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.companies[id]
	if !ok {
		return repository.Company{}, repository.ErrCompanyNotFound
	}
	return c, nil
}

func (m *memoryStore) CreateReading(_ context.Context, reading repository.MeterReading) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readings[reading.ID] = reading
	return nil
}

func (m *memoryStore) ReserveAttestation(_ context.Context, readingID string, plan func(repository.AttestationState) (*repository.Attestation, error)) (repository.Attestation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.readings[readingID]
	if !ok {
		return repository.Attestation{}, repository.ErrReadingNotFound
	}
	state := repository.AttestationState{Reading: repository.ReadingDetails{
		ReadingID:    r.ID,
		FarmerID:     r.FarmerID,
		FarmerWallet: m.farmers[r.FarmerID].WalletAddress,
		MeterID:      r.MeterID,
		KWh:          r.KWh,
		Timestamp:    r.Timestamp,
		Status:       r.Status,
	}}
	for _, a := range m.attestations {
		if a.ReadingID == readingID {
			existing := a
			state.Attestation = &existing
		}
	}

	next, err := plan(state)
	if err != nil {
		return repository.Attestation{}, err
	}
	if next == nil {
		return *state.Attestation, nil
	}
	m.attestations[next.ID] = *next
	return *next, nil
}

func (m *memoryStore) MarkAttestationPinned(_ context.Context, id, claimToken, cid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.attestations[id]
	if !ok || a.PinStatus != repository.PinPending || a.ClaimToken != claimToken {
		return repository.ErrStateChanged
	}
	a.IPFSCID = cid
	a.PinStatus = repository.PinPinned
	a.ClaimedAt = nil
	a.ClaimToken = ""
	m.attestations[id] = a
	return nil
}

func (m *memoryStore) DeletePendingAttestation(_ context.Context, id, claimToken string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.attestations[id]; ok && a.PinStatus == repository.PinPending && a.ClaimToken == claimToken {
		delete(m.attestations, id)
	}
	return nil
}

func (m *memoryStore) GetAttestation(_ context.Context, id string) (repository.Attestation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.attestations[id]
	if !ok {
		return repository.Attestation{}, repository.ErrAttestationNotFound
	}
	return a, nil
}

func (m *memoryStore) GetAttestationDetails(_ context.Context, id string) (repository.AttestationDetails, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.details(id)
}

func (m *memoryStore) details(id string) (repository.AttestationDetails, error) {
	a, ok := m.attestations[id]
	if !ok {
		return repository.AttestationDetails{}, repository.ErrAttestationNotFound
	}
	r := m.readings[a.ReadingID]
	return repository.AttestationDetails{
		AttestationID: a.ID,
		ReadingID:     r.ID,
		FarmerID:      r.FarmerID,
		IPFSCID:       a.IPFSCID,
		PinStatus:     a.PinStatus,
		ReadingStatus: r.Status,
		KWh:           r.KWh,
	}, nil
}

func (m *memoryStore) ReserveMint(_ context.Context, attestationID string, plan func(repository.MintState) (*repository.MintIntent, error)) (repository.MintIntent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	details, err := m.details(attestationID)
	if err != nil {
		return repository.MintIntent{}, err
	}
	state := repository.MintState{Attestation: details}
	if asset, ok := m.assetFor(attestationID); ok {
		state.Asset = &asset
	}
	if intent, ok := m.intentFor(attestationID); ok {
		state.Intent = &intent
	}

	next, err := plan(state)
	if err != nil {
		return repository.MintIntent{}, err
	}
	if next == nil {
		return *state.Intent, nil
	}
	m.intents[next.ID] = *next
	return *next, nil
}

func (m *memoryStore) MarkIntentSubmitted(_ context.Context, id, txnHash string, raw []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	intent, ok := m.intents[id]
	if !ok || intent.Status != repository.IntentPreparing {
		return repository.ErrStateChanged
	}
	intent.Status = repository.IntentSubmitted
	intent.TxnHash = txnHash
	intent.RawTxn = raw
	intent.ClaimedAt = nil
	m.intents[id] = intent
	return nil
}

func (m *memoryStore) MarkIntentFailed(_ context.Context, id, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	intent, ok := m.intents[id]
	if !ok || (intent.Status != repository.IntentPreparing && intent.Status != repository.IntentSubmitted) {
		return repository.ErrStateChanged
	}
	intent.Status = repository.IntentFailed
	intent.LastError = reason
	intent.ClaimedAt = nil
	m.intents[id] = intent
	return nil
}

func (m *memoryStore) NoteIntentError(_ context.Context, id, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if intent, ok := m.intents[id]; ok {
		intent.LastError = reason
		m.intents[id] = intent
	}
	return nil
}

func (m *memoryStore) GetMintIntent(_ context.Context, attestationID string) (repository.MintIntent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	intent, ok := m.intentFor(attestationID)
	if !ok {
		return repository.MintIntent{}, repository.ErrIntentNotFound
	}
	return intent, nil
}

func (m *memoryStore) ListOutstandingIntents(_ context.Context, staleBefore time.Time) ([]repository.MintIntent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []repository.MintIntent{}
	for _, intent := range m.intents {
		stale := intent.Status == repository.IntentPreparing && (intent.ClaimedAt == nil || intent.ClaimedAt.Before(staleBefore))
		if intent.Status == repository.IntentSubmitted || stale {
			out = append(out, intent)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *memoryStore) CompleteMint(_ context.Context, intentID, readingID string, asset repository.Asset) (repository.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	intent, ok := m.intents[intentID]
	if !ok {
		return repository.Asset{}, repository.ErrIntentNotFound
	}
	existing, found := m.assetFor(asset.AttestationID)
	if intent.Status == repository.IntentConfirmed && found {
		return existing, nil
	}
	if intent.Status != repository.IntentSubmitted {
		return repository.Asset{}, repository.ErrStateChanged
	}
	if found && existing.TxnHash != asset.TxnHash {
		return repository.Asset{}, repository.ErrAssetExists
	}

	reading := m.readings[readingID]
	if reading.Status != repository.ReadingSubmitted && !found {
		return repository.Asset{}, repository.ErrReadingVerified
	}
	reading.Status = repository.ReadingVerified
	m.readings[readingID] = reading

	if !found {
		m.assets[asset.ID] = asset
		existing = asset
	}
	intent.Status = repository.IntentConfirmed
	intent.LastError = ""
	m.intents[intentID] = intent
	return existing, nil
}

func (m *memoryStore) GetAssetByAttestation(_ context.Context, attestationID string) (repository.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	asset, ok := m.assetFor(attestationID)
	if !ok {
		return repository.Asset{}, repository.ErrAssetNotFound
	}
	return asset, nil
}

func (m *memoryStore) ListAssets(_ context.Context) ([]repository.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]repository.Asset, 0, len(m.assets))
	for _, a := range m.assets {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memoryStore) ListAssetsByFarmers(ctx context.Context, farmerIDs []string) ([]repository.Asset, error) {
	all, _ := m.ListAssets(ctx)
	out := all[:0]
	for _, a := range all {
		if slices.Contains(farmerIDs, a.FarmerID) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryStore) Summary(_ context.Context) (repository.Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := decimal.Zero
	for _, r := range m.readings {
		total = total.Add(r.KWh)
	}
	return repository.Summary{
		TotalKWh:       total,
		TotalFarmers:   int64(len(m.farmers)),
		TotalCompanies: int64(len(m.companies)),
	}, nil
}

func (m *memoryStore) reading(id string) repository.MeterReading {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.readings[id]
}

func (m *memoryStore) assetCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.assets)
}

func (m *memoryStore) assetFor(attestationID string) (repository.Asset, bool) {
	for _, a := range m.assets {
		if a.AttestationID == attestationID {
			return a, true
		}
	}
	return repository.Asset{}, false
}

func (m *memoryStore) intentFor(attestationID string) (repository.MintIntent, bool) {
	for _, i := range m.intents {
		if i.AttestationID == attestationID {
			return i, true
		}
	}
	return repository.MintIntent{}, false
}
