package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReadingStatus string

const (
	ReadingSubmitted ReadingStatus = "submitted"
	ReadingVerified  ReadingStatus = "verified"
)

type PinStatus string

const (
	PinPending PinStatus = "pending"
	PinPinned  PinStatus = "pinned"
)

type IntentStatus string

const (
	IntentPreparing IntentStatus = "preparing"
	IntentSubmitted IntentStatus = "submitted"
	IntentConfirmed IntentStatus = "confirmed"
	IntentFailed    IntentStatus = "failed"
)

type Farmer struct {
	ID            string    `gorm:"primaryKey;type:uuid"`
	Name          string    `gorm:"type:varchar(255);not null"`
	WalletAddress string    `gorm:"size:42;uniqueIndex;not null"` // 0x + 40 hex
	CreatedAt     time.Time `gorm:"not null"`
}

type MeterReading struct {
	ID        string          `gorm:"primaryKey;type:uuid"`
	FarmerID  string          `gorm:"type:uuid;not null;index"`
	MeterID   *string         `gorm:"size:128"`
	KWh       decimal.Decimal `gorm:"column:kwh;type:numeric(20,6);not null"`
	Timestamp time.Time       `gorm:"column:ts;not null"`
	Source    *string         `gorm:"size:128"`
	Status    ReadingStatus   `gorm:"size:16;not null;default:submitted;index"`
	CreatedAt time.Time       `gorm:"not null"`
}

type Attestation struct {
	ID              string     `gorm:"primaryKey;type:uuid"`
	ReadingID       string     `gorm:"type:uuid;uniqueIndex;not null"`
	AttestorAddress string     `gorm:"size:42;not null"`
	IPFSCID         string     `gorm:"column:ipfs_cid;size:128"`
	AttestationJSON []byte     `gorm:"column:attestation_json;type:jsonb;not null"`
	PinStatus       PinStatus  `gorm:"size:16;not null;default:pending"`
	ClaimedAt       *time.Time // pin lease, nil once pinned
	ClaimToken      string     `gorm:"size:36"` // identifies the lease holder
	CreatedAt       time.Time  `gorm:"not null"`
	UpdatedAt       time.Time
}

type Asset struct {
	ID            string          `gorm:"primaryKey;type:uuid"`
	FarmerID      string          `gorm:"type:uuid;not null;index"`
	AttestationID string          `gorm:"type:uuid;uniqueIndex;not null"`
	TxnHash       string          `gorm:"size:66;uniqueIndex;not null"` // 0x + 64 hex
	CertificateID string          `gorm:"size:80;not null"`
	KWh           decimal.Decimal `gorm:"column:kwh;type:numeric(20,6);not null"`
	CreatedAt     time.Time       `gorm:"not null;index"`
}

type Company struct {
	ID            string    `gorm:"primaryKey;type:uuid"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash  string    `gorm:"not null"`
	WalletAddress string    `gorm:"size:42;uniqueIndex;not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

// MintIntent marks a mint in flight so a crash between signing and commit can
// be reconciled against the ledger.
type MintIntent struct {
	ID            string       `gorm:"primaryKey;type:uuid"`
	AttestationID string       `gorm:"type:uuid;uniqueIndex;not null"`
	MintTo        string       `gorm:"size:42;not null"`
	Status        IntentStatus `gorm:"size:16;not null;index"`
	TxnHash       string       `gorm:"size:66;index"`
	RawTxn        []byte       `gorm:"type:bytea"`
	Attempts      int          `gorm:"not null;default:0"`
	LastError     string       `gorm:"type:text"`
	ClaimedAt     *time.Time
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time
}

type CustodialKey struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	OwnerType string    `gorm:"size:16;not null;uniqueIndex:idx_custodial_owner"`
	OwnerID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_custodial_owner"`
	Address   string    `gorm:"size:42;not null"`
	SealedKey []byte    `gorm:"type:bytea;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// ReadingDetails is a reading joined with its farmer's wallet.
type ReadingDetails struct {
	ReadingID    string
	FarmerID     string
	FarmerWallet string
	MeterID      *string
	KWh          decimal.Decimal `gorm:"column:kwh"`
	Timestamp    time.Time
	Status       ReadingStatus
}

// AttestationDetails is an attestation joined with the reading it covers.
type AttestationDetails struct {
	AttestationID string
	ReadingID     string
	FarmerID      string
	IPFSCID       string `gorm:"column:ipfs_cid"`
	PinStatus     PinStatus
	ReadingStatus ReadingStatus
	KWh           decimal.Decimal `gorm:"column:kwh"`
}

// AttestationState is what a caller sees while the reading row is locked.
type AttestationState struct {
	Reading     ReadingDetails
	Attestation *Attestation
}

// MintState is what a caller sees while the attestation row is locked.
type MintState struct {
	Attestation AttestationDetails
	Asset       *Asset
	Intent      *MintIntent
}

type Summary struct {
	TotalKWh       decimal.Decimal
	TotalFarmers   int64
	TotalCompanies int64
}
