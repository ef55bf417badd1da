package core_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"greenmint/internal/core"
	"greenmint/internal/core/fake"
	"greenmint/internal/ledger"
	"greenmint/internal/pinning"
	"greenmint/internal/repository"
	"greenmint/internal/vault"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("Workflow", func() {
	const (
		attestor = "0x00000000000000000000000000000000000000aa"
		txnHash  = "0x9f0c1c5e3b8e4c1f3a4a1f2d3c4b5a69788796a5b4c3d2e1f0a9b8c7d6e5f4a3"
	)

	var (
		store      *memoryStore
		fakePinner *fake.ContentPinner
		fakeLedger *fake.Ledger
		fakeVault  *fake.KeyVault
		fakePub    *fake.EventPublisher
		service    *core.Greenmint
		ctx        context.Context
		prepared   atomic.Int32
	)

	BeforeEach(func() {
		store = newMemoryStore()
		fakePinner = new(fake.ContentPinner)
		fakeLedger = new(fake.Ledger)
		fakeVault = new(fake.KeyVault)
		fakePub = new(fake.EventPublisher)
		ctx = context.Background()
		prepared.Store(0)

		fakeVault.GenerateReturns(vault.Wallet{
			Address:       "0x00000000000000000000000000000000000000f1",
			PrivateKeyHex: "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318",
			Sealed:        []byte("sealed"),
		}, nil)
		fakePinner.PinJSONReturns("bafyasha", nil)
		fakeLedger.AttestorAddressReturns(attestor, nil)
		fakeLedger.PrepareMintStub = func(context.Context, ledger.MintCall) (ledger.SignedTx, error) {
			n := prepared.Add(1)
			return ledger.SignedTx{Hash: txnHash, Raw: []byte{0x01}, Nonce: uint64(n - 1)}, nil
		}
		fakeLedger.AwaitFinalityReturns(ledger.Receipt{Hash: txnHash, Succeeded: true, BlockNumber: 10}, nil)
		fakeLedger.LookupReturns(ledger.Receipt{Hash: txnHash, Succeeded: true, BlockNumber: 10}, nil)

		cfg := core.DefaultConfig()
		cfg.RetryInitialInterval = 1
		service = core.NewGreenmint(zap.NewNop().Sugar(), store, fakePinner, fakeLedger, fakeVault, fakePub,
			new(fake.JWTIssuer), new(fake.Alerter), cfg)
	})

	It("should take a reading from submission to a minted certificate", func() {
		farmer, err := service.RegisterFarmer(ctx, "Asha")
		Expect(err).NotTo(HaveOccurred())

		meter := "M1"
		reading, err := service.SubmitReading(ctx, core.SubmitReadingInput{
			FarmerID:  farmer.ID,
			MeterID:   &meter,
			KWh:       "12.5",
			Timestamp: "2024-01-01T00:00:00Z",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(reading.Status).To(Equal("submitted"))

		attestation, err := service.VerifyReading(ctx, reading.ID, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(attestation.IPFSCID).To(Equal("bafyasha"))
		Expect(attestation.PinStatus).To(Equal("pinned"))

		var doc map[string]any
		Expect(json.Unmarshal(attestation.Document, &doc)).To(Succeed())
		Expect(doc).To(HaveKeyWithValue("version", "1.0"))
		Expect(doc).To(HaveKeyWithValue("farmer_id", farmer.ID))
		Expect(doc).To(HaveKeyWithValue("farmer_wallet", farmer.WalletAddress))
		Expect(doc).To(HaveKeyWithValue("meter_id", "M1"))
		Expect(doc).To(HaveKeyWithValue("kwh", 12.5))
		Expect(doc).To(HaveKeyWithValue("timestamp", "2024-01-01T00:00:00Z"))
		Expect(doc).To(HaveKeyWithValue("verifier_notes", "auto-verified"))
		Expect(doc).To(HaveKeyWithValue("verifier", attestor))

		mint, err := service.MintFromAttestation(ctx, attestation.ID, "0xABC")
		Expect(err).NotTo(HaveOccurred())
		Expect(mint.TxnHash).To(Equal(txnHash))
		Expect(mint.Asset.CertificateID).To(Equal("cert:" + txnHash))
		Expect(mint.Asset.KWh.Equal(decimal.RequireFromString("12.5"))).To(BeTrue())
		Expect(mint.Asset.FarmerID).To(Equal(farmer.ID))

		_, call := fakeLedger.PrepareMintArgsForCall(0)
		Expect(call.To).To(Equal(common.HexToAddress("0xabc").Hex()))
		Expect(call.ContentID).To(Equal("bafyasha"))
		Expect(call.KWh).To(Equal("12.5"))

		Expect(store.reading(reading.ID).Status).To(Equal(repository.ReadingVerified))

		assets, err := service.ListAssets(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(assets).To(HaveLen(1))

		summary, err := service.Summary(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(summary.TotalKWh.Equal(decimal.RequireFromString("12.5"))).To(BeTrue())
		Expect(summary.TotalFarmers).To(Equal(int64(1)))
		Expect(summary.TotalCompanies).To(BeZero())

		By("refusing a second mint for the same attestation")
		_, err = service.MintFromAttestation(ctx, attestation.ID, "0xABC")
		Expect(core.KindOf(err)).To(Equal(core.KindConflict))
		Expect(prepared.Load()).To(Equal(int32(1)))
		Expect(store.assetCount()).To(Equal(1))
	})

	When("several callers mint the same attestation at once", func() {
		var attestationID string

		BeforeEach(func() {
			farmer, err := service.RegisterFarmer(ctx, "Asha")
			Expect(err).NotTo(HaveOccurred())
			reading, err := service.SubmitReading(ctx, core.SubmitReadingInput{
				FarmerID:  farmer.ID,
				KWh:       "3",
				Timestamp: "2024-01-01T00:00:00Z",
			})
			Expect(err).NotTo(HaveOccurred())
			attestation, err := service.VerifyReading(ctx, reading.ID, "")
			Expect(err).NotTo(HaveOccurred())
			attestationID = attestation.ID
		})

		It("should submit exactly one transaction and record one asset", func() {
			const callers = 8
			var wg sync.WaitGroup
			errs := make([]error, callers)
			mints := make([]core.Mint, callers)
			for i := range callers {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					defer GinkgoRecover()
					mints[i], errs[i] = service.MintFromAttestation(ctx, attestationID, "0x00000000000000000000000000000000000000b1")
				}(i)
			}
			wg.Wait()

			succeeded := 0
			for i, err := range errs {
				if err == nil {
					succeeded++
					Expect(mints[i].TxnHash).To(Equal(txnHash))
					continue
				}
				Expect(core.KindOf(err)).To(Equal(core.KindConflict))
			}
			Expect(succeeded).To(BeNumerically(">=", 1))
			Expect(prepared.Load()).To(Equal(int32(1)))
			Expect(store.assetCount()).To(Equal(1))
		})
	})

	When("a pin outlives its lease and another caller takes over", func() {
		var (
			mu    sync.Mutex
			clock time.Time
		)

		advance := func(d time.Duration) {
			mu.Lock()
			defer mu.Unlock()
			clock = clock.Add(d)
		}

		BeforeEach(func() {
			clock = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
			core.TimeNow = func() time.Time {
				mu.Lock()
				defer mu.Unlock()
				return clock
			}
		})

		AfterEach(func() {
			core.TimeNow = time.Now
		})

		It("should keep the new holder's row and pin once per holder", func() {
			farmer, err := service.RegisterFarmer(ctx, "Asha")
			Expect(err).NotTo(HaveOccurred())
			reading, err := service.SubmitReading(ctx, core.SubmitReadingInput{
				FarmerID:  farmer.ID,
				KWh:       "4",
				Timestamp: "2024-01-01T00:00:00Z",
			})
			Expect(err).NotTo(HaveOccurred())

			var pins atomic.Int32
			firstPinning, releaseFirst := make(chan struct{}), make(chan struct{})
			secondPinning, releaseSecond := make(chan struct{}), make(chan struct{})
			fakePinner.PinJSONStub = func(context.Context, string, any) (string, error) {
				switch pins.Add(1) {
				case 1:
					close(firstPinning)
					<-releaseFirst
					return "", pinning.ErrRejected
				case 2:
					close(secondPinning)
					<-releaseSecond
					return "bafysecond", nil
				}
				return "bafyextra", nil
			}

			type result struct {
				attestation core.Attestation
				err         error
			}
			verify := func() <-chan result {
				done := make(chan result, 1)
				go func() {
					defer GinkgoRecover()
					a, err := service.VerifyReading(ctx, reading.ID, "")
					done <- result{a, err}
				}()
				return done
			}

			first := verify()
			Eventually(firstPinning).Should(BeClosed())

			advance(3 * time.Minute)
			second := verify()
			Eventually(secondPinning).Should(BeClosed())

			close(releaseFirst)
			var firstResult result
			Eventually(first).Should(Receive(&firstResult))
			Expect(core.KindOf(firstResult.err)).To(Equal(core.KindExternal))
			Expect(errors.Is(firstResult.err, core.ErrPinningFailed)).To(BeTrue())

			store.mu.Lock()
			Expect(store.attestations).To(HaveLen(1))
			store.mu.Unlock()

			close(releaseSecond)
			var secondResult result
			Eventually(second).Should(Receive(&secondResult))
			Expect(secondResult.err).NotTo(HaveOccurred())
			Expect(secondResult.attestation.IPFSCID).To(Equal("bafysecond"))

			third, err := service.VerifyReading(ctx, reading.ID, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(third.ID).To(Equal(secondResult.attestation.ID))
			Expect(third.IPFSCID).To(Equal("bafysecond"))
			Expect(pins.Load()).To(Equal(int32(2)))
		})
	})

	It("should leave no trace when the attestation does not exist", func() {
		_, err := service.MintFromAttestation(ctx, "missing", "0x00000000000000000000000000000000000000b1")
		Expect(core.KindOf(err)).To(Equal(core.KindNotFound))
		Expect(errors.Is(err, core.ErrAttestationNotFound)).To(BeTrue())
		Expect(store.intents).To(BeEmpty())
		Expect(store.assets).To(BeEmpty())
		Expect(fakeLedger.PrepareMintCallCount()).To(BeZero())
		Expect(fakeLedger.BroadcastCallCount()).To(BeZero())
	})

	It("should resume a mint whose wait ran out", func() {
		farmer, err := service.RegisterFarmer(ctx, "Asha")
		Expect(err).NotTo(HaveOccurred())
		reading, err := service.SubmitReading(ctx, core.SubmitReadingInput{
			FarmerID:  farmer.ID,
			KWh:       "7.25",
			Timestamp: "2024-01-02T10:00:00Z",
		})
		Expect(err).NotTo(HaveOccurred())
		attestation, err := service.VerifyReading(ctx, reading.ID, "meter inspected")
		Expect(err).NotTo(HaveOccurred())

		fakeLedger.AwaitFinalityReturns(ledger.Receipt{}, ledger.ErrFinalityTimeout)
		_, err = service.MintFromAttestation(ctx, attestation.ID, "0x00000000000000000000000000000000000000b1")
		Expect(core.KindOf(err)).To(Equal(core.KindTimeout))

		intent, err := store.GetMintIntent(ctx, attestation.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(intent.Status).To(Equal(repository.IntentSubmitted))
		Expect(store.reading(reading.ID).Status).To(Equal(repository.ReadingSubmitted))

		report, err := service.ReconcileOutstanding(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Checked).To(Equal(1))
		Expect(report.Confirmed).To(Equal(1))

		Expect(prepared.Load()).To(Equal(int32(1)))
		Expect(store.assetCount()).To(Equal(1))
		Expect(store.reading(reading.ID).Status).To(Equal(repository.ReadingVerified))
	})
})
