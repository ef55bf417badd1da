package payload

import (
	"encoding/json"

	"greenmint/internal/core"

	"github.com/jellydator/validation"
)

type SubmitReadingRequest struct {
	FarmerID  string      `json:"farmer_id"`
	MeterID   *string     `json:"meter_id"`
	KWh       json.Number `json:"kwh"`
	Timestamp string      `json:"timestamp"`
	Source    *string     `json:"source"`
}

func (p *SubmitReadingRequest) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.FarmerID, validation.Required),
		validation.Field(&p.MeterID, validation.NilOrNotEmpty, validation.Length(1, 128)),
		validation.Field(&p.KWh, validation.Required, validation.Match(kwhRegex)),
		validation.Field(&p.Timestamp, validation.Required, rfc3339),
		validation.Field(&p.Source, validation.NilOrNotEmpty, validation.Length(1, 128)),
	)
}

func (p SubmitReadingRequest) ToCoreInput() core.SubmitReadingInput {
	return core.SubmitReadingInput{
		FarmerID:  p.FarmerID,
		MeterID:   p.MeterID,
		KWh:       p.KWh.String(),
		Timestamp: p.Timestamp,
		Source:    p.Source,
	}
}

// VerifyReadingRequest is optional; an empty body means default notes.
type VerifyReadingRequest struct {
	VerifierNotes string `json:"verifier_notes"`
}

func (p *VerifyReadingRequest) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.VerifierNotes, validation.Length(0, 1000)),
	)
}

type MintRequest struct {
	AttestationID string `json:"attestation_id"`
	MintTo        string `json:"mint_to"`
}

func (p *MintRequest) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.AttestationID, validation.Required),
		validation.Field(&p.MintTo, validation.Required, validation.Match(addressRegex)),
	)
}
