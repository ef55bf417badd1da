package core_test

import (
	"context"
	"errors"
	"time"

	"greenmint/internal/core"
	"greenmint/internal/core/fake"
	"greenmint/internal/events"
	"greenmint/internal/ledger"
	"greenmint/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("MintFromAttestation", func() {
	const (
		mintTo  = "0x00000000000000000000000000000000000000b1"
		txnHash = "0x1111111111111111111111111111111111111111111111111111111111111111"
	)

	var (
		fakeRepo    *fake.Repository
		fakeLedger  *fake.Ledger
		fakePub     *fake.EventPublisher
		fakeAlerter *fake.Alerter
		service     *core.Greenmint
		ctx         context.Context
		now         time.Time

		state   repository.MintState
		planned *repository.MintIntent
		mint    core.Mint
		err     error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeLedger = new(fake.Ledger)
		fakePub = new(fake.EventPublisher)
		fakeAlerter = new(fake.Alerter)
		ctx = context.Background()
		now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		core.TimeNow = func() time.Time { return now }

		state = repository.MintState{Attestation: repository.AttestationDetails{
			AttestationID: "a1",
			ReadingID:     "r1",
			FarmerID:      "f1",
			IPFSCID:       "bafyasha",
			PinStatus:     repository.PinPinned,
			ReadingStatus: repository.ReadingSubmitted,
			KWh:           decimal.RequireFromString("12.5"),
		}}
		planned = nil

		fakeRepo.ReserveMintStub = func(_ context.Context, _ string, plan func(repository.MintState) (*repository.MintIntent, error)) (repository.MintIntent, error) {
			next, err := plan(state)
			if err != nil {
				return repository.MintIntent{}, err
			}
			if next == nil {
				return *state.Intent, nil
			}
			planned = next
			return *next, nil
		}
		fakeRepo.CompleteMintStub = func(_ context.Context, _, _ string, asset repository.Asset) (repository.Asset, error) {
			return asset, nil
		}
		fakeLedger.PrepareMintReturns(ledger.SignedTx{Hash: txnHash, Raw: []byte{0xf8}, Nonce: 4}, nil)
		fakeLedger.AwaitFinalityReturns(ledger.Receipt{Hash: txnHash, Succeeded: true, BlockNumber: 9}, nil)

		cfg := core.DefaultConfig()
		cfg.RetryInitialInterval = time.Millisecond
		service = core.NewGreenmint(zap.NewNop().Sugar(), fakeRepo, new(fake.ContentPinner), fakeLedger, new(fake.KeyVault), fakePub,
			new(fake.JWTIssuer), fakeAlerter, cfg)
	})

	AfterEach(func() {
		core.TimeNow = time.Now
	})

	JustBeforeEach(func() {
		mint, err = service.MintFromAttestation(ctx, "a1", mintTo)
	})

	It("should persist the intent, submit once and record the asset", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(mint.TxnHash).To(Equal(txnHash))
		Expect(mint.Asset.CertificateID).To(Equal(core.CertificateID(txnHash)))
		Expect(mint.Asset.AttestationID).To(Equal("a1"))
		Expect(mint.Asset.FarmerID).To(Equal("f1"))

		Expect(planned).NotTo(BeNil())
		Expect(planned.Status).To(Equal(repository.IntentPreparing))
		Expect(planned.Attempts).To(Equal(1))
		Expect(planned.MintTo).To(Equal(common.HexToAddress(mintTo).Hex()))

		_, call := fakeLedger.PrepareMintArgsForCall(0)
		Expect(call).To(Equal(ledger.MintCall{To: planned.MintTo, ContentID: "bafyasha", KWh: "12.5"}))

		_, id, hash, raw := fakeRepo.MarkIntentSubmittedArgsForCall(0)
		Expect(id).To(Equal(planned.ID))
		Expect(hash).To(Equal(txnHash))
		Expect(raw).To(Equal([]byte{0xf8}))
		Expect(fakeLedger.BroadcastCallCount()).To(Equal(1))

		_, intentID, readingID, asset := fakeRepo.CompleteMintArgsForCall(0)
		Expect(intentID).To(Equal(planned.ID))
		Expect(readingID).To(Equal("r1"))
		Expect(asset.TxnHash).To(Equal(txnHash))

		_, key, event := fakePub.PublishArgsForCall(0)
		Expect(key).To(Equal(events.CertificateMintedKey))
		Expect(event).To(BeAssignableToTypeOf(events.CertificateMinted{}))
	})

	It("should keep waiting after the caller cancels", func() {
		cancelled, cancel := context.WithCancel(ctx)
		fakeLedger.BroadcastStub = func(context.Context, []byte) error {
			cancel()
			return nil
		}
		fakeLedger.AwaitFinalityStub = func(waitCtx context.Context, hash string) (ledger.Receipt, error) {
			Expect(waitCtx.Err()).NotTo(HaveOccurred())
			return ledger.Receipt{Hash: hash, Succeeded: true}, nil
		}
		state.Intent = nil

		_, err := service.MintFromAttestation(cancelled, "a1", mintTo)
		Expect(err).NotTo(HaveOccurred())
		Expect(fakeRepo.CompleteMintCallCount()).To(Equal(2))
	})

	It("should reject a malformed address without touching the store", func() {
		_, err := service.MintFromAttestation(ctx, "a1", "farmer-wallet")
		Expect(core.KindOf(err)).To(Equal(core.KindInvalidInput))
		Expect(errors.Is(err, core.ErrInvalidAddress)).To(BeTrue())
		// one call from JustBeforeEach
		Expect(fakeRepo.ReserveMintCallCount()).To(Equal(1))
	})

	When("the attestation does not exist", func() {
		BeforeEach(func() {
			fakeRepo.ReserveMintStub = nil
			fakeRepo.ReserveMintReturns(repository.MintIntent{}, repository.ErrAttestationNotFound)
		})

		It("should report not found without a ledger call", func() {
			Expect(core.KindOf(err)).To(Equal(core.KindNotFound))
			Expect(errors.Is(err, core.ErrAttestationNotFound)).To(BeTrue())
			Expect(fakeLedger.PrepareMintCallCount()).To(BeZero())
			Expect(fakeRepo.MarkIntentSubmittedCallCount()).To(BeZero())
		})
	})

	DescribeTable("ledger configuration",
		func(readyErr, want error) {
			fakeLedger.ReadyReturns(readyErr)
			_, err := service.MintFromAttestation(ctx, "a1", mintTo)
			Expect(core.KindOf(err)).To(Equal(core.KindConfig))
			Expect(errors.Is(err, want)).To(BeTrue())
			Expect(fakeLedger.PrepareMintCallCount()).To(Equal(1))
		},
		Entry("without a signing key", ledger.ErrNoSigningKey, core.ErrAttestorKeyMissing),
		Entry("without a contract", ledger.ErrNoContract, core.ErrContractMissing),
	)

	When("the attestation is not pinned", func() {
		BeforeEach(func() {
			state.Attestation.PinStatus = repository.PinPending
		})

		It("should report a conflict", func() {
			Expect(core.KindOf(err)).To(Equal(core.KindConflict))
			Expect(errors.Is(err, core.ErrNotPinned)).To(BeTrue())
		})
	})

	When("an asset already exists", func() {
		BeforeEach(func() {
			state.Asset = &repository.Asset{ID: "asset-1", TxnHash: txnHash}
		})

		It("should refuse a second transaction", func() {
			Expect(core.KindOf(err)).To(Equal(core.KindConflict))
			Expect(errors.Is(err, core.ErrAlreadyMinted)).To(BeTrue())
			Expect(fakeLedger.PrepareMintCallCount()).To(BeZero())
		})
	})

	When("the reading was verified without an outstanding mint", func() {
		BeforeEach(func() {
			state.Attestation.ReadingStatus = repository.ReadingVerified
		})

		It("should report a conflict", func() {
			Expect(core.KindOf(err)).To(Equal(core.KindConflict))
			Expect(errors.Is(err, core.ErrReadingVerified)).To(BeTrue())
		})
	})

	When("another caller is preparing the mint", func() {
		BeforeEach(func() {
			claimed := now.Add(-time.Second)
			state.Intent = &repository.MintIntent{ID: "i1", AttestationID: "a1", Status: repository.IntentPreparing, ClaimedAt: &claimed}
		})

		It("should report the mint as in progress", func() {
			Expect(core.KindOf(err)).To(Equal(core.KindConflict))
			Expect(errors.Is(err, core.ErrMintInProgress)).To(BeTrue())
			Expect(fakeLedger.PrepareMintCallCount()).To(BeZero())
		})
	})

	When("a previous attempt failed", func() {
		BeforeEach(func() {
			state.Intent = &repository.MintIntent{ID: "i1", AttestationID: "a1", Status: repository.IntentFailed, Attempts: 1, LastError: "reverted"}
		})

		It("should retry under the same intent", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(planned.ID).To(Equal("i1"))
			Expect(planned.Attempts).To(Equal(2))
			Expect(planned.LastError).To(BeEmpty())
		})
	})

	When("a submitted transaction is outstanding", func() {
		BeforeEach(func() {
			state.Intent = &repository.MintIntent{ID: "i1", AttestationID: "a1", MintTo: mintTo, Status: repository.IntentSubmitted, TxnHash: txnHash, RawTxn: []byte{0xf8}}
			fakeLedger.LookupReturns(ledger.Receipt{Hash: txnHash, Succeeded: true}, nil)
		})

		It("should settle it instead of submitting again", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mint.TxnHash).To(Equal(txnHash))
			Expect(fakeLedger.PrepareMintCallCount()).To(BeZero())
			Expect(fakeLedger.BroadcastCallCount()).To(BeZero())
			_, intentID, _, _ := fakeRepo.CompleteMintArgsForCall(0)
			Expect(intentID).To(Equal("i1"))
		})
	})

	When("signing fails", func() {
		BeforeEach(func() {
			fakeLedger.PrepareMintReturns(ledger.SignedTx{}, errors.New("estimate gas: execution reverted"))
		})

		It("should fail the intent before anything is sent", func() {
			Expect(core.KindOf(err)).To(Equal(core.KindExternal))
			Expect(fakeRepo.MarkIntentFailedCallCount()).To(Equal(1))
			Expect(fakeLedger.BroadcastCallCount()).To(BeZero())
		})
	})

	When("the submitted marker cannot be stored", func() {
		BeforeEach(func() {
			fakeRepo.MarkIntentSubmittedReturns(errors.New("connection lost"))
		})

		It("should hand the nonce back and not broadcast", func() {
			Expect(err).To(HaveOccurred())
			Expect(fakeLedger.BroadcastCallCount()).To(BeZero())
			Expect(fakeLedger.ReleaseNonceCallCount()).To(Equal(1))
			Expect(fakeLedger.ReleaseNonceArgsForCall(0)).To(Equal(uint64(4)))
		})
	})

	When("another caller moved the intent before it was marked submitted", func() {
		BeforeEach(func() {
			fakeRepo.MarkIntentSubmittedReturns(repository.ErrStateChanged)
		})

		It("should report the mint as in progress", func() {
			Expect(core.KindOf(err)).To(Equal(core.KindConflict))
			Expect(errors.Is(err, core.ErrMintInProgress)).To(BeTrue())
			Expect(fakeLedger.BroadcastCallCount()).To(BeZero())
			Expect(fakeLedger.ReleaseNonceCallCount()).To(Equal(1))
		})
	})

	When("the node refuses the transaction", func() {
		BeforeEach(func() {
			fakeLedger.BroadcastReturns(ledger.ErrTxInvalid)
		})

		It("should mark the intent failed without retrying", func() {
			Expect(core.KindOf(err)).To(Equal(core.KindRejected))
			Expect(fakeLedger.BroadcastCallCount()).To(Equal(1))
			Expect(fakeRepo.MarkIntentFailedCallCount()).To(Equal(1))
			_, key, _ := fakePub.PublishArgsForCall(0)
			Expect(key).To(Equal(events.MintFailedKey))
		})
	})

	When("the node is unreachable", func() {
		BeforeEach(func() {
			fakeLedger.BroadcastReturns(errors.New("connection refused"))
		})

		It("should leave the intent submitted for reconciliation", func() {
			Expect(core.KindOf(err)).To(Equal(core.KindExternal))
			Expect(fakeLedger.BroadcastCallCount()).To(Equal(4))
			Expect(fakeRepo.MarkIntentFailedCallCount()).To(BeZero())
			Expect(fakeRepo.NoteIntentErrorCallCount()).To(Equal(1))
		})
	})

	When("the nonce was already used", func() {
		BeforeEach(func() {
			fakeLedger.BroadcastReturns(ledger.ErrNonceTooLow)
		})

		When("by this transaction", func() {
			BeforeEach(func() {
				fakeLedger.LookupReturns(ledger.Receipt{Hash: txnHash, Succeeded: true}, nil)
			})

			It("should settle from the receipt", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeLedger.AwaitFinalityCallCount()).To(BeZero())
			})
		})

		When("by another transaction", func() {
			BeforeEach(func() {
				fakeLedger.LookupReturns(ledger.Receipt{}, ledger.ErrTxNotFound)
			})

			It("should mark the intent dropped", func() {
				Expect(core.KindOf(err)).To(Equal(core.KindRejected))
				Expect(errors.Is(err, core.ErrTxDropped)).To(BeTrue())
				Expect(fakeRepo.MarkIntentFailedCallCount()).To(Equal(1))
			})
		})
	})

	When("finality is not reached in time", func() {
		BeforeEach(func() {
			fakeLedger.AwaitFinalityReturns(ledger.Receipt{}, ledger.ErrFinalityTimeout)
		})

		It("should report a timeout and keep the intent", func() {
			Expect(core.KindOf(err)).To(Equal(core.KindTimeout))
			Expect(errors.Is(err, core.ErrFinalityTimeout)).To(BeTrue())
			Expect(fakeRepo.MarkIntentFailedCallCount()).To(BeZero())
			Expect(fakeRepo.CompleteMintCallCount()).To(BeZero())
		})
	})

	When("the transaction reverts", func() {
		BeforeEach(func() {
			fakeLedger.AwaitFinalityReturns(ledger.Receipt{Hash: txnHash, Succeeded: false}, nil)
		})

		It("should report the rejection", func() {
			Expect(core.KindOf(err)).To(Equal(core.KindRejected))
			Expect(errors.Is(err, core.ErrTxRejected)).To(BeTrue())
			Expect(fakeRepo.MarkIntentFailedCallCount()).To(Equal(1))
			Expect(fakeRepo.CompleteMintCallCount()).To(BeZero())
		})
	})

	When("the final mint cannot be recorded", func() {
		BeforeEach(func() {
			fakeRepo.CompleteMintStub = nil
			fakeRepo.CompleteMintReturns(repository.Asset{}, repository.ErrAssetExists)
		})

		It("should alert", func() {
			Expect(core.KindOf(err)).To(Equal(core.KindConflict))
			Expect(fakeAlerter.AlertCallCount()).To(Equal(1))
		})
	})
})
