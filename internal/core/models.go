package core

import (
	"encoding/json"
	"time"

	"greenmint/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	documentVersion   = "1.0"
	defaultNotes      = "auto-verified"
	certificatePrefix = "cert:"
	verifiedAtLayout  = "2006-01-02T15:04:05.000Z07:00"

	ownerFarmer  = "farmer"
	ownerCompany = "company"
	companyRole  = "company"
)

type Farmer struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	WalletAddress string    `json:"wallet_address"`
	CreatedAt     time.Time `json:"created_at"`
}

// FarmerRegistration carries the custodial key. It is shown exactly once.
type FarmerRegistration struct {
	Farmer
	WalletPrivateKey string `json:"wallet_private_key"`
}

type SubmitReadingInput struct {
	FarmerID  string
	MeterID   *string
	KWh       string
	Timestamp string
	Source    *string
}

type Reading struct {
	ID        string          `json:"id"`
	FarmerID  string          `json:"farmer_id"`
	MeterID   *string         `json:"meter_id"`
	KWh       decimal.Decimal `json:"kwh"`
	Timestamp time.Time       `json:"timestamp"`
	Source    *string         `json:"source"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// AttestationDocument is the JSON pinned to IPFS.
type AttestationDocument struct {
	Version       string      `json:"version"`
	FarmerID      string      `json:"farmer_id"`
	FarmerWallet  string      `json:"farmer_wallet"`
	MeterID       *string     `json:"meter_id"`
	KWh           json.Number `json:"kwh"`
	Timestamp     string      `json:"timestamp"`
	VerifiedAt    string      `json:"verified_at"`
	VerifierNotes string      `json:"verifier_notes"`
	Verifier      string      `json:"verifier"`
}

type Attestation struct {
	ID              string          `json:"id"`
	ReadingID       string          `json:"reading_id"`
	AttestorAddress string          `json:"attestor_address"`
	IPFSCID         string          `json:"ipfs_cid"`
	Document        json.RawMessage `json:"attestation_json"`
	PinStatus       string          `json:"pin_status"`
	CreatedAt       time.Time       `json:"created_at"`
}

type Asset struct {
	ID            string          `json:"id"`
	FarmerID      string          `json:"farmer_id"`
	AttestationID string          `json:"attestation_id"`
	TxnHash       string          `json:"txn_hash"`
	CertificateID string          `json:"certificate_id"`
	KWh           decimal.Decimal `json:"kwh"`
	CreatedAt     time.Time       `json:"created_at"`
}

type Mint struct {
	TxnHash string `json:"txnHash"`
	Asset   Asset  `json:"asset"`
}

type RegisterCompanyInput struct {
	Name     string
	Email    string
	Password string
}

type Company struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	WalletAddress string    `json:"wallet_address"`
	CreatedAt     time.Time `json:"created_at"`
}

type LoginInput struct {
	Email    string
	Password string
}

type Session struct {
	Token   string  `json:"token"`
	Company Company `json:"company"`
}

type Summary struct {
	TotalKWh       decimal.Decimal `json:"totalKwh"`
	TotalFarmers   int64           `json:"totalFarmers"`
	TotalCompanies int64           `json:"totalCompanies"`
}

// ReconcileReport counts the outcome of one pass over outstanding mints.
type ReconcileReport struct {
	Checked   int `json:"checked"`
	Confirmed int `json:"confirmed"`
	Failed    int `json:"failed"`
	Pending   int `json:"pending"`
	Errors    int `json:"errors"`
}

// CertificateID derives the certificate identifier from a transaction hash.
func CertificateID(txnHash string) string {
	return certificatePrefix + txnHash
}

func farmerFromRecord(f repository.Farmer) Farmer {
	return Farmer{
		ID:            f.ID,
		Name:          f.Name,
		WalletAddress: f.WalletAddress,
		CreatedAt:     f.CreatedAt,
	}
}

func readingFromRecord(r repository.MeterReading) Reading {
	return Reading{
		ID:        r.ID,
		FarmerID:  r.FarmerID,
		MeterID:   r.MeterID,
		KWh:       r.KWh,
		Timestamp: r.Timestamp,
		Source:    r.Source,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

func attestationFromRecord(a repository.Attestation) Attestation {
	return Attestation{
		ID:              a.ID,
		ReadingID:       a.ReadingID,
		AttestorAddress: a.AttestorAddress,
		IPFSCID:         a.IPFSCID,
		Document:        json.RawMessage(a.AttestationJSON),
		PinStatus:       string(a.PinStatus),
		CreatedAt:       a.CreatedAt,
	}
}

func assetFromRecord(a repository.Asset) Asset {
	return Asset{
		ID:            a.ID,
		FarmerID:      a.FarmerID,
		AttestationID: a.AttestationID,
		TxnHash:       a.TxnHash,
		CertificateID: a.CertificateID,
		KWh:           a.KWh,
		CreatedAt:     a.CreatedAt,
	}
}

func companyFromRecord(c repository.Company) Company {
	return Company{
		ID:            c.ID,
		Name:          c.Name,
		Email:         c.Email,
		WalletAddress: c.WalletAddress,
		CreatedAt:     c.CreatedAt,
	}
}
