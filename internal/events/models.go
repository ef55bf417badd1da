package events

import "time"

const (
	ReadingSubmittedKey   = "reading.submitted"
	AttestationCreatedKey = "attestation.created"
	CertificateMintedKey  = "certificate.minted"
	MintFailedKey         = "mint.failed"
)

type ReadingSubmitted struct {
	ReadingID string    `json:"reading_id"`
	FarmerID  string    `json:"farmer_id"`
	MeterID   *string   `json:"meter_id,omitempty"`
	KWh       string    `json:"kwh"`
	Timestamp time.Time `json:"timestamp"`
}

type AttestationCreated struct {
	AttestationID string `json:"attestation_id"`
	ReadingID     string `json:"reading_id"`
	CID           string `json:"ipfs_cid"`
}

type CertificateMinted struct {
	AssetID       string `json:"asset_id"`
	AttestationID string `json:"attestation_id"`
	CertificateID string `json:"certificate_id"`
	TxnHash       string `json:"txn_hash"`
	MintTo        string `json:"mint_to"`
	KWh           string `json:"kwh"`
}

type MintFailed struct {
	AttestationID string `json:"attestation_id"`
	TxnHash       string `json:"txn_hash,omitempty"`
	Reason        string `json:"reason"`
}

// ReadingMessage is the body of an ingest queue message.
type ReadingMessage struct {
	FarmerID  string  `json:"farmer_id"`
	MeterID   *string `json:"meter_id"`
	KWh       string  `json:"kwh"`
	Timestamp string  `json:"timestamp"`
	Source    *string `json:"source"`
}
