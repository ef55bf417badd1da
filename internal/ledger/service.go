package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	ErrNoSigningKey    = errors.New("attestor signing key not configured")
	ErrNoContract      = errors.New("certificate contract address not configured")
	ErrInvalidAddress  = errors.New("invalid address")
	ErrTxNotFound      = errors.New("transaction not found")
	ErrNonceTooLow     = errors.New("nonce too low")
	ErrTxInvalid       = errors.New("transaction rejected by node")
	ErrFinalityTimeout = errors.New("finality not reached in time")
)

const (
	defaultPollInterval = 2 * time.Second
	gasHeadroomDivisor  = 5 // +20% over the estimate
)

type Config struct {
	AttestorPrivateKey string
	ContractAddress    string
	Confirmations      uint64
	PollInterval       time.Duration
}

type Service struct {
	client        EthClient
	attestor      *Account
	contract      *common.Address
	abi           abi.ABI
	confirmations uint64
	pollInterval  time.Duration

	// guards nonce allocation and signing
	mu        sync.Mutex
	chainID   *big.Int
	nextNonce uint64
}

// NewService validates whatever signing material is configured. Missing key or
// contract is not an error here; mint calls report it instead.
func NewService(client EthClient, cfg Config) (*Service, error) {
	parsed, err := abi.JSON(strings.NewReader(CertificateABI))
	if err != nil {
		return nil, fmt.Errorf("parse certificate abi: %w", err)
	}

	s := &Service{
		client:        client,
		abi:           parsed,
		confirmations: cfg.Confirmations,
		pollInterval:  cfg.PollInterval,
	}
	if s.pollInterval <= 0 {
		s.pollInterval = defaultPollInterval
	}

	if cfg.AttestorPrivateKey != "" {
		acc, err := AccountFromHex(cfg.AttestorPrivateKey)
		if err != nil {
			return nil, fmt.Errorf("attestor key: %w", err)
		}
		s.attestor = &acc
	}

	if cfg.ContractAddress != "" {
		if !common.IsHexAddress(cfg.ContractAddress) {
			return nil, fmt.Errorf("contract address %q: %w", cfg.ContractAddress, ErrInvalidAddress)
		}
		addr := common.HexToAddress(cfg.ContractAddress)
		s.contract = &addr
	}

	return s, nil
}

func (s *Service) AttestorAddress() (string, error) {
	if s.attestor == nil {
		return "", ErrNoSigningKey
	}
	return s.attestor.Address.Hex(), nil
}

// Ready reports whether mint transactions can be built.
func (s *Service) Ready() error {
	if s.attestor == nil {
		return ErrNoSigningKey
	}
	if s.contract == nil {
		return ErrNoContract
	}
	return nil
}

// PrepareMint builds and signs the issueCertificate call without sending it.
func (s *Service) PrepareMint(ctx context.Context, call MintCall) (SignedTx, error) {
	if err := s.Ready(); err != nil {
		return SignedTx{}, err
	}
	if !common.IsHexAddress(call.To) {
		return SignedTx{}, fmt.Errorf("mint to %q: %w", call.To, ErrInvalidAddress)
	}

	data, err := s.abi.Pack(issueCertificate, common.HexToAddress(call.To), []byte(call.ContentID), call.KWh)
	if err != nil {
		return SignedTx{}, fmt.Errorf("pack %s call: %w", issueCertificate, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.chainID == nil {
		chainID, err := s.client.ChainID(ctx)
		if err != nil {
			return SignedTx{}, fmt.Errorf("get chain id: %w", err)
		}
		s.chainID = chainID
	}

	pending, err := s.client.PendingNonceAt(ctx, s.attestor.Address)
	if err != nil {
		return SignedTx{}, fmt.Errorf("get pending nonce: %w", err)
	}
	if pending > s.nextNonce {
		s.nextNonce = pending
	}
	nonce := s.nextNonce

	gasPrice, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return SignedTx{}, fmt.Errorf("suggest gas price: %w", err)
	}

	gas, err := s.client.EstimateGas(ctx, ethereum.CallMsg{
		From:     s.attestor.Address,
		To:       s.contract,
		GasPrice: gasPrice,
		Data:     data,
	})
	if err != nil {
		return SignedTx{}, fmt.Errorf("estimate gas: %w", err)
	}
	gas += gas / gasHeadroomDivisor

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       s.contract,
		Value:    big.NewInt(0),
		Gas:      gas,
		GasPrice: gasPrice,
		Data:     data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(s.chainID), s.attestor.key)
	if err != nil {
		return SignedTx{}, fmt.Errorf("sign transaction: %w", err)
	}

	raw, err := signed.MarshalBinary()
	if err != nil {
		return SignedTx{}, fmt.Errorf("encode transaction: %w", err)
	}

	s.nextNonce = nonce + 1

	return SignedTx{
		Hash:  signed.Hash().Hex(),
		Raw:   raw,
		Nonce: nonce,
	}, nil
}

// ReleaseNonce hands a signed but never broadcast nonce back, as long as no
// later nonce was allocated after it.
func (s *Service) ReleaseNonce(nonce uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nextNonce == nonce+1 {
		s.nextNonce = nonce
	}
}

// Broadcast sends a signed transaction. A node that already has it counts as
// success.
func (s *Service) Broadcast(ctx context.Context, raw []byte) error {
	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(raw); err != nil {
		return fmt.Errorf("decode transaction: %w", err)
	}

	err := s.client.SendTransaction(ctx, tx)
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "already known"), strings.Contains(msg, "known transaction"):
		return nil
	case strings.Contains(msg, "nonce too low"):
		return fmt.Errorf("%s: %w", tx.Hash().Hex(), ErrNonceTooLow)
	case strings.Contains(msg, "insufficient funds"),
		strings.Contains(msg, "intrinsic gas too low"),
		strings.Contains(msg, "exceeds block gas limit"):
		s.ReleaseNonce(tx.Nonce())
		return fmt.Errorf("%w: %w", ErrTxInvalid, err)
	}
	return fmt.Errorf("send transaction: %w", err)
}

// Lookup returns the receipt of a mined transaction or ErrTxNotFound.
func (s *Service) Lookup(ctx context.Context, hash string) (Receipt, error) {
	receipt, err := s.client.TransactionReceipt(ctx, common.HexToHash(hash))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return Receipt{}, ErrTxNotFound
		}
		return Receipt{}, fmt.Errorf("get receipt %s: %w", hash, err)
	}

	var block uint64
	if receipt.BlockNumber != nil {
		block = receipt.BlockNumber.Uint64()
	}

	return Receipt{
		Hash:        hash,
		Succeeded:   receipt.Status == types.ReceiptStatusSuccessful,
		BlockNumber: block,
	}, nil
}

// AwaitFinality polls until the transaction is mined with enough
// confirmations. The caller bounds the wait through ctx.
func (s *Service) AwaitFinality(ctx context.Context, hash string) (Receipt, error) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := s.Lookup(ctx, hash)
		if err == nil && s.final(ctx, receipt) {
			return receipt, nil
		}

		select {
		case <-ctx.Done():
			return Receipt{}, fmt.Errorf("%s: %w: %w", hash, ErrFinalityTimeout, ctx.Err())
		case <-ticker.C:
		}
	}
}

// FetchReceipts looks up several transactions at once. Transactions that are
// not mined yet are absent from the result.
func (s *Service) FetchReceipts(ctx context.Context, hashes []string) (map[string]Receipt, error) {
	resultsChan := make(chan receiptResult)

	var wg sync.WaitGroup
	for _, hash := range hashes {
		wg.Add(1)
		go func(hash string) {
			defer wg.Done()
			receipt, err := s.Lookup(ctx, hash)
			resultsChan <- receiptResult{Receipt: receipt, Error: err}
		}(hash)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	results := make(map[string]Receipt, len(hashes))
	var aggrErr error
	for result := range resultsChan {
		if result.Error != nil {
			if !errors.Is(result.Error, ErrTxNotFound) {
				aggrErr = errors.Join(aggrErr, result.Error)
			}
			continue
		}
		results[result.Receipt.Hash] = result.Receipt
	}

	return results, aggrErr
}

func (s *Service) final(ctx context.Context, receipt Receipt) bool {
	if s.confirmations <= 1 {
		return true
	}
	head, err := s.client.BlockNumber(ctx)
	if err != nil {
		return false
	}
	return head+1 >= receipt.BlockNumber+s.confirmations
}
