package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"greenmint/internal/events"
	"greenmint/internal/repository"
	tokenIssuer "greenmint/pkg/jwt"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TimeNow is the clock used for leases and timestamps.
var TimeNow = time.Now

const (
	summaryCacheKey = "summary"
	sessionTTL      = 24 * time.Hour
)

type Config struct {
	// upper bound on waiting for a submitted transaction to become final
	FinalityTimeout time.Duration
	// how long a pending attestation or preparing mint stays claimed
	PinLease  time.Duration
	MintLease time.Duration

	SummaryCacheTTL time.Duration

	MaxRetries           uint64
	RetryInitialInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		FinalityTimeout:      2 * time.Minute,
		PinLease:             2 * time.Minute,
		MintLease:            5 * time.Minute,
		SummaryCacheTTL:      30 * time.Second,
		MaxRetries:           3,
		RetryInitialInterval: 500 * time.Millisecond,
	}
}

// Greenmint runs the reading -> attestation -> certificate workflow.
type Greenmint struct {
	logs      *zap.SugaredLogger
	repo      Repository
	pinner    ContentPinner
	ledger    Ledger
	vault     KeyVault
	publisher EventPublisher
	jwtIssuer JWTIssuer
	alerter   Alerter
	cfg       Config

	summaries *expirable.LRU[string, Summary]
}

func NewGreenmint(
	logger *zap.SugaredLogger,
	repo Repository,
	pinner ContentPinner,
	ledger Ledger,
	vault KeyVault,
	publisher EventPublisher,
	jwt JWTIssuer,
	alerter Alerter,
	cfg Config,
) *Greenmint {
	ttl := cfg.SummaryCacheTTL
	if ttl <= 0 {
		ttl = time.Second
	}

	return &Greenmint{
		logs:      logger,
		repo:      repo,
		pinner:    pinner,
		ledger:    ledger,
		vault:     vault,
		publisher: publisher,
		jwtIssuer: jwt,
		alerter:   alerter,
		cfg:       cfg,
		summaries: expirable.NewLRU[string, Summary](1, nil, ttl),
	}
}

// RegisterFarmer creates a farmer with a fresh custodial wallet. The private
// key is part of the result and is never returned again.
func (g *Greenmint) RegisterFarmer(ctx context.Context, name string) (FarmerRegistration, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return FarmerRegistration{}, invalidInput("name is required")
	}

	wallet, err := g.vault.Generate()
	if err != nil {
		return FarmerRegistration{}, fmt.Errorf("generate wallet: %w", err)
	}

	now := TimeNow().UTC()
	farmer := repository.Farmer{
		ID:            uuid.NewString(),
		Name:          name,
		WalletAddress: wallet.Address,
		CreatedAt:     now,
	}
	key := repository.CustodialKey{
		ID:        uuid.NewString(),
		OwnerType: ownerFarmer,
		OwnerID:   farmer.ID,
		Address:   wallet.Address,
		SealedKey: wallet.Sealed,
		CreatedAt: now,
	}

	if err := g.repo.CreateFarmer(ctx, farmer, key); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return FarmerRegistration{}, newError(KindConflict, fmt.Errorf("create farmer: %w", err))
		}
		return FarmerRegistration{}, fmt.Errorf("create farmer: %w", err)
	}

	g.summaries.Remove(summaryCacheKey)
	g.logs.Infow("farmer registered", "farmer_id", farmer.ID, "wallet", farmer.WalletAddress)

	return FarmerRegistration{
		Farmer:           farmerFromRecord(farmer),
		WalletPrivateKey: wallet.PrivateKeyHex,
	}, nil
}

// SubmitReading stores a meter reading in the submitted state.
func (g *Greenmint) SubmitReading(ctx context.Context, in SubmitReadingInput) (Reading, error) {
	farmerID := strings.TrimSpace(in.FarmerID)
	if farmerID == "" {
		return Reading{}, invalidInput("farmer_id is required")
	}

	kwh, err := decimal.NewFromString(strings.TrimSpace(in.KWh))
	if err != nil || !kwh.IsPositive() {
		return Reading{}, newError(KindInvalidInput, fmt.Errorf("%w: got %q", ErrInvalidKWh, in.KWh))
	}

	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(in.Timestamp))
	if err != nil {
		return Reading{}, newError(KindInvalidInput, fmt.Errorf("%w: got %q", ErrInvalidTimestamp, in.Timestamp))
	}

	if _, err := g.repo.GetFarmer(ctx, farmerID); err != nil {
		if errors.Is(err, repository.ErrFarmerNotFound) {
			return Reading{}, newError(KindNotFound, fmt.Errorf("%w: %s", ErrFarmerNotFound, farmerID))
		}
		return Reading{}, fmt.Errorf("get farmer: %w", err)
	}

	reading := repository.MeterReading{
		ID:        uuid.NewString(),
		FarmerID:  farmerID,
		MeterID:   in.MeterID,
		KWh:       kwh,
		Timestamp: ts.UTC(),
		Source:    in.Source,
		Status:    repository.ReadingSubmitted,
		CreatedAt: TimeNow().UTC(),
	}
	if err := g.repo.CreateReading(ctx, reading); err != nil {
		return Reading{}, fmt.Errorf("create reading: %w", err)
	}

	g.summaries.Remove(summaryCacheKey)
	g.publish(ctx, events.ReadingSubmittedKey, events.ReadingSubmitted{
		ReadingID: reading.ID,
		FarmerID:  reading.FarmerID,
		MeterID:   reading.MeterID,
		KWh:       reading.KWh.String(),
		Timestamp: reading.Timestamp,
	})

	return readingFromRecord(reading), nil
}

// ProcessReadingMessage handles a reading delivered over the ingest queue.
func (g *Greenmint) ProcessReadingMessage(ctx context.Context, body []byte) error {
	var msg events.ReadingMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return invalidInput("decode reading message: %v", err)
	}

	reading, err := g.SubmitReading(ctx, SubmitReadingInput{
		FarmerID:  msg.FarmerID,
		MeterID:   msg.MeterID,
		KWh:       msg.KWh,
		Timestamp: msg.Timestamp,
		Source:    msg.Source,
	})
	if err != nil {
		return err
	}

	g.logs.Infow("reading ingested", "reading_id", reading.ID, "farmer_id", reading.FarmerID)
	return nil
}

func (g *Greenmint) RegisterCompany(ctx context.Context, in RegisterCompanyInput) (Company, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || email == "" || in.Password == "" {
		return Company{}, invalidInput("name, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Company{}, fmt.Errorf("hash password: %w", err)
	}

	wallet, err := g.vault.Generate()
	if err != nil {
		return Company{}, fmt.Errorf("generate wallet: %w", err)
	}

	now := TimeNow().UTC()
	company := repository.Company{
		ID:            uuid.NewString(),
		Name:          name,
		Email:         email,
		PasswordHash:  string(hash),
		WalletAddress: wallet.Address,
		CreatedAt:     now,
	}
	key := repository.CustodialKey{
		ID:        uuid.NewString(),
		OwnerType: ownerCompany,
		OwnerID:   company.ID,
		Address:   wallet.Address,
		SealedKey: wallet.Sealed,
		CreatedAt: now,
	}

	if err := g.repo.CreateCompany(ctx, company, key); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return Company{}, newError(KindConflict, ErrEmailTaken)
		}
		return Company{}, fmt.Errorf("create company: %w", err)
	}

	g.summaries.Remove(summaryCacheKey)
	g.logs.Infow("company registered", "company_id", company.ID)

	return companyFromRecord(company), nil
}

// LoginCompany checks the credentials and issues a session token.
func (g *Greenmint) LoginCompany(ctx context.Context, in LoginInput) (Session, error) {
	company, err := g.repo.GetCompanyByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return Session{}, newError(KindUnauthorized, ErrUserNotFound)
		}
		return Session{}, fmt.Errorf("get company: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(company.PasswordHash), []byte(in.Password)); err != nil {
		return Session{}, newError(KindUnauthorized, ErrIncorrectPassword)
	}

	token := g.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		Subject:    company.ID,
		Email:      company.Email,
		Role:       companyRole,
		Expiration: sessionTTL,
	})
	signed, err := g.jwtIssuer.Sign(token)
	if err != nil {
		return Session{}, fmt.Errorf("signing token: %w", err)
	}

	return Session{
		Token:   signed,
		Company: companyFromRecord(company),
	}, nil
}

// CurrentCompany resolves a session token issued by LoginCompany to the
// company it was issued for.
func (g *Greenmint) CurrentCompany(ctx context.Context, token string) (Company, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Company{}, newError(KindUnauthorized, ErrTokenMissing)
	}

	claims, err := g.jwtIssuer.Validate(token)
	if err != nil {
		return Company{}, newError(KindUnauthorized, fmt.Errorf("validate token: %w", err))
	}

	id, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if id == "" || role != companyRole {
		return Company{}, newError(KindUnauthorized, ErrNotCompanySession)
	}

	company, err := g.repo.GetCompany(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return Company{}, newError(KindUnauthorized, ErrUserNotFound)
		}
		return Company{}, fmt.Errorf("get company: %w", err)
	}
	return companyFromRecord(company), nil
}

// ListAssets returns minted certificates, newest first. Given farmer ids,
// only the certificates of those farmers are listed.
func (g *Greenmint) ListAssets(ctx context.Context, farmerIDs ...string) ([]Asset, error) {
	var records []repository.Asset
	var err error
	if len(farmerIDs) == 0 {
		records, err = g.repo.ListAssets(ctx)
	} else {
		for _, id := range farmerIDs {
			if _, parseErr := uuid.Parse(id); parseErr != nil {
				return nil, invalidInput("farmer id %q is not a uuid", id)
			}
		}
		records, err = g.repo.ListAssetsByFarmers(ctx, farmerIDs)
	}
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}

	assets := make([]Asset, len(records))
	for i, a := range records {
		assets[i] = assetFromRecord(a)
	}
	return assets, nil
}

// Summary returns platform totals. Results may lag writes by the cache TTL.
func (g *Greenmint) Summary(ctx context.Context) (Summary, error) {
	if cached, ok := g.summaries.Get(summaryCacheKey); ok {
		return cached, nil
	}

	s, err := g.repo.Summary(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("summary: %w", err)
	}

	summary := Summary{
		TotalKWh:       s.TotalKWh,
		TotalFarmers:   s.TotalFarmers,
		TotalCompanies: s.TotalCompanies,
	}
	g.summaries.Add(summaryCacheKey, summary)
	return summary, nil
}

// publish is best effort; the database stays the source of truth.
func (g *Greenmint) publish(ctx context.Context, routingKey string, event any) {
	if err := g.publisher.Publish(context.WithoutCancel(ctx), routingKey, event); err != nil {
		g.logs.Errorw("failed to publish event", "routing_key", routingKey, "error", err)
	}
}
