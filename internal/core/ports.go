package core

import (
	"context"
	"time"

	"greenmint/internal/ledger"
	"greenmint/internal/repository"
	"greenmint/internal/vault"
	tokenIssuer "greenmint/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateFarmer(ctx context.Context, farmer repository.Farmer, key repository.CustodialKey) error
	GetFarmer(ctx context.Context, id string) (repository.Farmer, error)
	CreateCompany(ctx context.Context, company repository.Company, key repository.CustodialKey) error
	GetCompanyByEmail(ctx context.Context, email string) (repository.Company, error)
	GetCompany(ctx context.Context, id string) (repository.Company, error)
	CreateReading(ctx context.Context, reading repository.MeterReading) error
	ReserveAttestation(ctx context.Context, readingID string, plan func(repository.AttestationState) (*repository.Attestation, error)) (repository.Attestation, error)
	MarkAttestationPinned(ctx context.Context, id, claimToken, cid string) error
	DeletePendingAttestation(ctx context.Context, id, claimToken string) error
	GetAttestation(ctx context.Context, id string) (repository.Attestation, error)
	GetAttestationDetails(ctx context.Context, id string) (repository.AttestationDetails, error)
	ReserveMint(ctx context.Context, attestationID string, plan func(repository.MintState) (*repository.MintIntent, error)) (repository.MintIntent, error)
	MarkIntentSubmitted(ctx context.Context, id, txnHash string, raw []byte) error
	MarkIntentFailed(ctx context.Context, id, reason string) error
	NoteIntentError(ctx context.Context, id, reason string) error
	GetMintIntent(ctx context.Context, attestationID string) (repository.MintIntent, error)
	ListOutstandingIntents(ctx context.Context, staleBefore time.Time) ([]repository.MintIntent, error)
	CompleteMint(ctx context.Context, intentID, readingID string, asset repository.Asset) (repository.Asset, error)
	GetAssetByAttestation(ctx context.Context, attestationID string) (repository.Asset, error)
	ListAssets(ctx context.Context) ([]repository.Asset, error)
	ListAssetsByFarmers(ctx context.Context, farmerIDs []string) ([]repository.Asset, error)
	Summary(ctx context.Context) (repository.Summary, error)
}

//counterfeiter:generate -o fake -fake-name ContentPinner . ContentPinner
type ContentPinner interface {
	PinJSON(ctx context.Context, name string, doc any) (string, error)
}

//counterfeiter:generate -o fake -fake-name Ledger . Ledger
type Ledger interface {
	AttestorAddress() (string, error)
	Ready() error
	PrepareMint(ctx context.Context, call ledger.MintCall) (ledger.SignedTx, error)
	ReleaseNonce(nonce uint64)
	Broadcast(ctx context.Context, raw []byte) error
	Lookup(ctx context.Context, hash string) (ledger.Receipt, error)
	AwaitFinality(ctx context.Context, hash string) (ledger.Receipt, error)
	FetchReceipts(ctx context.Context, hashes []string) (map[string]ledger.Receipt, error)
}

//counterfeiter:generate -o fake -fake-name KeyVault . KeyVault
type KeyVault interface {
	Generate() (vault.Wallet, error)
}

//counterfeiter:generate -o fake -fake-name EventPublisher . EventPublisher
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name Alerter . Alerter
type Alerter interface {
	Alert(message string, err error, keysAndValues ...any)
}
