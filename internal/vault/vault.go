package vault

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"greenmint/internal/ledger"

	"golang.org/x/crypto/nacl/secretbox"
)

var (
	ErrInvalidKey    = errors.New("key encryption key must be 32 hex-encoded bytes")
	ErrSealCorrupted = errors.New("sealed key cannot be opened")
)

const nonceSize = 24

// Wallet is a freshly generated custodial account. PrivateKeyHex is only
// available at creation; at rest the key exists only as Sealed.
type Wallet struct {
	Address       string
	PrivateKeyHex string
	Sealed        []byte
}

// Vault seals custodial private keys under a single key encryption key.
type Vault struct {
	key [32]byte
}

func New(hexKey string) (*Vault, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil || len(raw) != 32 {
		return nil, ErrInvalidKey
	}

	v := &Vault{}
	copy(v.key[:], raw)
	return v, nil
}

func (v *Vault) Generate() (Wallet, error) {
	acc, err := ledger.NewAccount()
	if err != nil {
		return Wallet{}, fmt.Errorf("new account: %w", err)
	}

	sealed, err := v.seal(acc.PrivateKeyBytes())
	if err != nil {
		return Wallet{}, err
	}

	return Wallet{
		Address:       acc.Address.Hex(),
		PrivateKeyHex: acc.PrivateKeyHex(),
		Sealed:        sealed,
	}, nil
}

// seal encrypts plain; the random nonce is prepended to the box.
func (v *Vault) seal(plain []byte) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("read nonce: %w", err)
	}
	return secretbox.Seal(nonce[:], plain, &nonce, &v.key), nil
}

func (v *Vault) open(sealed []byte) ([]byte, error) {
	if len(sealed) < nonceSize+secretbox.Overhead {
		return nil, ErrSealCorrupted
	}

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])

	plain, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &v.key)
	if !ok {
		return nil, ErrSealCorrupted
	}
	return plain, nil
}

// openAccount recovers the account behind a sealed key. Custodial keys are
// never used for signing by the service itself.
func (v *Vault) openAccount(sealed []byte) (ledger.Account, error) {
	raw, err := v.open(sealed)
	if err != nil {
		return ledger.Account{}, err
	}
	return ledger.AccountFromBytes(raw)
}
