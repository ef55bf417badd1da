package handler

import (
	"context"
	"net/http"

	"greenmint/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Service . Service
type Service interface {
	RegisterFarmer(ctx context.Context, name string) (core.FarmerRegistration, error)
	SubmitReading(ctx context.Context, in core.SubmitReadingInput) (core.Reading, error)
	VerifyReading(ctx context.Context, readingID, notes string) (core.Attestation, error)
	MintFromAttestation(ctx context.Context, attestationID, mintTo string) (core.Mint, error)
	ListAssets(ctx context.Context, farmerIDs ...string) ([]core.Asset, error)
	RegisterCompany(ctx context.Context, in core.RegisterCompanyInput) (core.Company, error)
	LoginCompany(ctx context.Context, in core.LoginInput) (core.Session, error)
	CurrentCompany(ctx context.Context, token string) (core.Company, error)
	Summary(ctx context.Context) (core.Summary, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
