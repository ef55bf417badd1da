package ledger

import (
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrInvalidPrivateKey = errors.New("invalid private key")

var addressPattern = regexp.MustCompile(`^0[xX][0-9a-fA-F]{1,40}$`)

// Account is a secp256k1 key and the address derived from it.
type Account struct {
	Address common.Address
	key     *ecdsa.PrivateKey
}

func NewAccount() (Account, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return Account{}, fmt.Errorf("generate key: %w", err)
	}
	return accountFromKey(key), nil
}

func AccountFromHex(hexKey string) (Account, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return Account{}, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return accountFromKey(key), nil
}

func AccountFromBytes(raw []byte) (Account, error) {
	key, err := crypto.ToECDSA(raw)
	if err != nil {
		return Account{}, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return accountFromKey(key), nil
}

func (a Account) PrivateKeyBytes() []byte {
	return crypto.FromECDSA(a.key)
}

func (a Account) PrivateKeyHex() string {
	return hex.EncodeToString(a.PrivateKeyBytes())
}

func accountFromKey(key *ecdsa.PrivateKey) Account {
	return Account{
		Address: crypto.PubkeyToAddress(key.PublicKey),
		key:     key,
	}
}

// NormalizeAddress accepts 0x-prefixed hex of up to 20 bytes and returns the
// checksummed, left-padded address.
func NormalizeAddress(addr string) (string, error) {
	addr = strings.TrimSpace(addr)
	if !addressPattern.MatchString(addr) {
		return "", fmt.Errorf("%q: %w", addr, ErrInvalidAddress)
	}
	return common.HexToAddress(addr).Hex(), nil
}
