package core

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so transports can map it without inspecting
// individual sentinels.
type Kind string

const (
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	KindConfig       Kind = "configuration"
	KindExternal     Kind = "external_dependency"
	KindConflict     Kind = "conflict"
	KindTimeout      Kind = "timeout"
	KindRejected     Kind = "rejected"
	KindUnauthorized Kind = "unauthorized"
	KindInternal     Kind = "internal"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidKWh            = errors.New("kwh must be a positive number")
	ErrInvalidTimestamp      = errors.New("timestamp must be RFC 3339")
	ErrInvalidAddress        = errors.New("invalid wallet address")
	ErrFarmerNotFound        = errors.New("farmer not found")
	ErrReadingNotFound       = errors.New("reading not found")
	ErrAttestationNotFound   = errors.New("attestation not found")
	ErrMintNotFound          = errors.New("no mint recorded for attestation")
	ErrAttestorKeyMissing    = errors.New("attestor private key not configured")
	ErrContractMissing       = errors.New("contract address not configured")
	ErrPinningNotConfigured  = errors.New("pinning credentials not configured")
	ErrAttestationInProgress = errors.New("attestation already in progress")
	ErrNotPinned             = errors.New("attestation is not pinned yet")
	ErrReadingVerified       = errors.New("reading already verified")
	ErrAlreadyMinted         = errors.New("certificate already minted for attestation")
	ErrMintInProgress        = errors.New("mint already in progress")
	ErrMintAbandoned         = errors.New("mint abandoned before broadcast")
	ErrFinalityTimeout       = errors.New("transaction not final in time")
	ErrTxRejected            = errors.New("transaction rejected")
	ErrTxDropped             = errors.New("transaction dropped by the network")
	ErrPinningFailed         = errors.New("pinning failed")
	ErrLedgerUnavailable     = errors.New("ledger unavailable")
	ErrEmailTaken            = errors.New("email already exists")
	ErrUserNotFound          = errors.New("user not found")
	ErrIncorrectPassword     = errors.New("incorrect password")
	ErrTokenMissing          = errors.New("session token is required")
	ErrNotCompanySession     = errors.New("token is not a company session")
)

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func invalidInput(format string, args ...any) *Error {
	return newError(KindInvalidInput, fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...))
}

// KindOf returns the kind attached to err, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
