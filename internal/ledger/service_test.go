package ledger_test

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"time"

	"greenmint/internal/ledger"
	"greenmint/internal/ledger/fake"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Service", func() {
	var (
		service    *ledger.Service
		fakeClient *fake.EthClient
		attestor   ledger.Account
		contract   string
		cfg        ledger.Config
		ctx        context.Context
		testErr    error
	)

	BeforeEach(func() {
		var err error
		attestor, err = ledger.NewAccount()
		Expect(err).NotTo(HaveOccurred())

		fakeClient = new(fake.EthClient)
		fakeClient.ChainIDReturns(big.NewInt(5), nil)
		fakeClient.SuggestGasPriceReturns(big.NewInt(1_000_000_000), nil)
		fakeClient.EstimateGasReturns(100_000, nil)

		contract = "0x00000000000000000000000000000000000000aa"
		cfg = ledger.Config{
			AttestorPrivateKey: "0x" + attestor.PrivateKeyHex(),
			ContractAddress:    contract,
			PollInterval:       time.Millisecond,
		}
		ctx = context.Background()
		testErr = errors.New("test error")
	})

	JustBeforeEach(func() {
		var err error
		service, err = ledger.NewService(fakeClient, cfg)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Ready", func() {
		When("no attestor key is configured", func() {
			BeforeEach(func() {
				cfg.AttestorPrivateKey = ""
			})

			It("should report the missing key", func() {
				Expect(service.Ready()).To(Equal(ledger.ErrNoSigningKey))
				_, err := service.AttestorAddress()
				Expect(err).To(Equal(ledger.ErrNoSigningKey))
			})
		})

		When("no contract is configured", func() {
			BeforeEach(func() {
				cfg.ContractAddress = ""
			})

			It("should report the missing contract", func() {
				Expect(service.Ready()).To(Equal(ledger.ErrNoContract))
			})
		})

		It("should expose the attestor address", func() {
			addr, err := service.AttestorAddress()
			Expect(err).NotTo(HaveOccurred())
			Expect(addr).To(Equal(attestor.Address.Hex()))
		})
	})

	It("should refuse a malformed attestor key", func() {
		_, err := ledger.NewService(fakeClient, ledger.Config{AttestorPrivateKey: "zz"})
		Expect(errors.Is(err, ledger.ErrInvalidPrivateKey)).To(BeTrue())
	})

	Describe("PrepareMint", func() {
		var (
			call   ledger.MintCall
			signed ledger.SignedTx
			err    error
		)

		BeforeEach(func() {
			call = ledger.MintCall{
				To:        "0x00000000000000000000000000000000000000bb",
				ContentID: "bafkreigh2akiscaildc",
				KWh:       "12.5",
			}
			fakeClient.PendingNonceAtReturns(7, nil)
		})

		JustBeforeEach(func() {
			signed, err = service.PrepareMint(ctx, call)
		})

		It("should sign an issueCertificate call from the attestor", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(signed.Nonce).To(Equal(uint64(7)))

			tx := new(types.Transaction)
			Expect(tx.UnmarshalBinary(signed.Raw)).To(Succeed())
			Expect(tx.Hash().Hex()).To(Equal(signed.Hash))
			Expect(tx.To().Hex()).To(Equal(common.HexToAddress(contract).Hex()))
			Expect(tx.Gas()).To(Equal(uint64(120_000)))

			from, err := types.Sender(types.LatestSignerForChainID(big.NewInt(5)), tx)
			Expect(err).NotTo(HaveOccurred())
			Expect(from).To(Equal(attestor.Address))

			parsed, err := abi.JSON(strings.NewReader(ledger.CertificateABI))
			Expect(err).NotTo(HaveOccurred())
			method, err := parsed.MethodById(tx.Data()[:4])
			Expect(err).NotTo(HaveOccurred())
			Expect(method.Name).To(Equal("issueCertificate"))
			args, err := method.Inputs.Unpack(tx.Data()[4:])
			Expect(err).NotTo(HaveOccurred())
			Expect(args[0]).To(Equal(common.HexToAddress(call.To)))
			Expect(args[1]).To(Equal([]byte(call.ContentID)))
			Expect(args[2]).To(Equal("12.5"))
		})

		It("should hand out consecutive nonces while the node lags", func() {
			next, err := service.PrepareMint(ctx, call)
			Expect(err).NotTo(HaveOccurred())
			Expect(next.Nonce).To(Equal(uint64(8)))
			Expect(next.Hash).NotTo(Equal(signed.Hash))
		})

		It("should reuse a released nonce", func() {
			service.ReleaseNonce(signed.Nonce)
			next, err := service.PrepareMint(ctx, call)
			Expect(err).NotTo(HaveOccurred())
			Expect(next.Nonce).To(Equal(uint64(7)))
		})

		It("should ignore a release once a later nonce is out", func() {
			_, err := service.PrepareMint(ctx, call)
			Expect(err).NotTo(HaveOccurred())
			service.ReleaseNonce(signed.Nonce)
			next, err := service.PrepareMint(ctx, call)
			Expect(err).NotTo(HaveOccurred())
			Expect(next.Nonce).To(Equal(uint64(9)))
		})

		When("the recipient is not an address", func() {
			BeforeEach(func() {
				call.To = "farmer-wallet"
			})

			It("should fail before touching the node", func() {
				Expect(errors.Is(err, ledger.ErrInvalidAddress)).To(BeTrue())
				Expect(fakeClient.PendingNonceAtCallCount()).To(BeZero())
			})
		})

		When("gas estimation fails", func() {
			BeforeEach(func() {
				fakeClient.EstimateGasReturns(0, testErr)
			})

			It("should not consume the nonce", func() {
				Expect(err).To(MatchError(ContainSubstring("estimate gas")))
				fakeClient.EstimateGasReturns(100_000, nil)
				retry, err := service.PrepareMint(ctx, call)
				Expect(err).NotTo(HaveOccurred())
				Expect(retry.Nonce).To(Equal(uint64(7)))
			})
		})
	})

	Describe("Broadcast", func() {
		var raw []byte

		JustBeforeEach(func() {
			fakeClient.PendingNonceAtReturns(0, nil)
			signed, err := service.PrepareMint(ctx, ledger.MintCall{
				To:        "0x00000000000000000000000000000000000000bb",
				ContentID: "cid",
				KWh:       "1",
			})
			Expect(err).NotTo(HaveOccurred())
			raw = signed.Raw
		})

		It("should send the decoded transaction", func() {
			Expect(service.Broadcast(ctx, raw)).To(Succeed())
			_, tx := fakeClient.SendTransactionArgsForCall(0)
			Expect(tx.Nonce()).To(Equal(uint64(0)))
		})

		It("should free the nonce of a transaction the node refuses", func() {
			fakeClient.SendTransactionReturns(errors.New("insufficient funds for gas * price + value"))
			Expect(service.Broadcast(ctx, raw)).NotTo(Succeed())

			next, err := service.PrepareMint(ctx, ledger.MintCall{
				To:        "0x00000000000000000000000000000000000000bb",
				ContentID: "cid",
				KWh:       "1",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(next.Nonce).To(Equal(uint64(0)))
		})

		DescribeTable("node answers",
			func(nodeErr error, check func(error)) {
				fakeClient.SendTransactionReturns(nodeErr)
				check(service.Broadcast(ctx, raw))
			},
			Entry("already known", errors.New("already known"), func(err error) {
				Expect(err).NotTo(HaveOccurred())
			}),
			Entry("nonce too low", errors.New("nonce too low"), func(err error) {
				Expect(errors.Is(err, ledger.ErrNonceTooLow)).To(BeTrue())
			}),
			Entry("insufficient funds", errors.New("insufficient funds for gas * price + value"), func(err error) {
				Expect(errors.Is(err, ledger.ErrTxInvalid)).To(BeTrue())
			}),
			Entry("transport failure", errors.New("connection reset"), func(err error) {
				Expect(err).To(MatchError(ContainSubstring("send transaction")))
				Expect(errors.Is(err, ledger.ErrTxInvalid)).To(BeFalse())
			}),
		)
	})

	Describe("Lookup", func() {
		It("should map a missing receipt to ErrTxNotFound", func() {
			fakeClient.TransactionReceiptReturns(nil, ethereum.NotFound)
			_, err := service.Lookup(ctx, "0x01")
			Expect(err).To(Equal(ledger.ErrTxNotFound))
		})

		It("should report a reverted transaction", func() {
			fakeClient.TransactionReceiptReturns(&types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(9)}, nil)
			receipt, err := service.Lookup(ctx, "0x01")
			Expect(err).NotTo(HaveOccurred())
			Expect(receipt.Succeeded).To(BeFalse())
			Expect(receipt.BlockNumber).To(Equal(uint64(9)))
		})
	})

	Describe("AwaitFinality", func() {
		It("should keep polling until the receipt appears", func() {
			fakeClient.TransactionReceiptReturnsOnCall(0, nil, ethereum.NotFound)
			fakeClient.TransactionReceiptReturnsOnCall(1, nil, testErr)
			fakeClient.TransactionReceiptReturnsOnCall(2, &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(10)}, nil)

			receipt, err := service.AwaitFinality(ctx, "0x01")
			Expect(err).NotTo(HaveOccurred())
			Expect(receipt.Succeeded).To(BeTrue())
			Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(3))
		})

		It("should give up when the deadline passes", func() {
			fakeClient.TransactionReceiptReturns(nil, ethereum.NotFound)
			waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
			defer cancel()

			_, err := service.AwaitFinality(waitCtx, "0x01")
			Expect(errors.Is(err, ledger.ErrFinalityTimeout)).To(BeTrue())
			Expect(errors.Is(err, context.DeadlineExceeded)).To(BeTrue())
		})

		When("confirmations are required", func() {
			BeforeEach(func() {
				cfg.Confirmations = 3
			})

			It("should wait for the chain head to move", func() {
				fakeClient.TransactionReceiptReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(10)}, nil)
				fakeClient.BlockNumberReturnsOnCall(0, 10, nil)
				fakeClient.BlockNumberReturnsOnCall(1, 12, nil)

				_, err := service.AwaitFinality(ctx, "0x01")
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeClient.BlockNumberCallCount()).To(Equal(2))
			})
		})
	})

	Describe("FetchReceipts", func() {
		It("should collect mined receipts and skip pending ones", func() {
			mined := common.HexToHash("0x01")
			fakeClient.TransactionReceiptStub = func(_ context.Context, hash common.Hash) (*types.Receipt, error) {
				if hash == mined {
					return &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(1)}, nil
				}
				return nil, ethereum.NotFound
			}

			receipts, err := service.FetchReceipts(ctx, []string{mined.Hex(), common.HexToHash("0x02").Hex()})
			Expect(err).NotTo(HaveOccurred())
			Expect(receipts).To(HaveLen(1))
			Expect(receipts).To(HaveKey(mined.Hex()))
		})

		It("should join lookup failures", func() {
			fakeClient.TransactionReceiptReturns(nil, testErr)
			_, err := service.FetchReceipts(ctx, []string{"0x01", "0x02"})
			Expect(err).To(MatchError(ContainSubstring("test error")))
		})
	})
})
