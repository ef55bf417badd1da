package repository_test

import (
	"context"
	"errors"
	"time"

	"greenmint/internal/db"
	"greenmint/internal/repository"
	"greenmint/internal/repository/fake"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("Repository", func() {
	var (
		repo        *repository.Repository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		fakeStorage.TransactionStub = func(_ context.Context, fn func(db.Querier) error) error {
			return fn(fakeStorage)
		}
		repo = repository.NewRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		It("should migrate every table", func() {
			Expect(repo.MigrateTables()).To(Succeed())
			Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
			tables := fakeStorage.MigrateTableArgsForCall(0)
			Expect(tables).To(HaveLen(7))
			Expect(tables[0]).To(BeAssignableToTypeOf(&repository.Farmer{}))
			Expect(tables[5]).To(BeAssignableToTypeOf(&repository.MintIntent{}))
		})

		It("should wrap migration errors", func() {
			fakeStorage.MigrateTableReturns(errors.New("migration error"))
			Expect(repo.MigrateTables()).To(MatchError("migrate table(s): migration error"))
		})
	})

	Describe("CreateFarmer", func() {
		var (
			farmer repository.Farmer
			key    repository.CustodialKey
			err    error
		)

		BeforeEach(func() {
			farmer = repository.Farmer{ID: uuid.NewString(), Name: "Asha", WalletAddress: "0x01"}
			key = repository.CustodialKey{ID: uuid.NewString(), OwnerType: "farmer", OwnerID: farmer.ID}
		})

		JustBeforeEach(func() {
			err = repo.CreateFarmer(ctx, farmer, key)
		})

		When("both inserts succeed", func() {
			It("should store farmer and key in one transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.TransactionCallCount()).To(Equal(1))
				Expect(fakeStorage.InsertCallCount()).To(Equal(2))
				_, first := fakeStorage.InsertArgsForCall(0)
				Expect(first).To(Equal(&farmer))
			})
		})

		When("the wallet already exists", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturnsOnCall(0, db.ErrDuplicateKey)
			})

			It("should return ErrDuplicate and skip the key", func() {
				Expect(errors.Is(err, repository.ErrDuplicate)).To(BeTrue())
				Expect(fakeStorage.InsertCallCount()).To(Equal(1))
			})
		})
	})

	Describe("ReserveAttestation", func() {
		var (
			readingID string
			reading   repository.ReadingDetails
			existing  *repository.Attestation
			planned   *repository.Attestation
			planErr   error
			seen      repository.AttestationState
			result    repository.Attestation
			err       error
		)

		BeforeEach(func() {
			readingID = uuid.NewString()
			reading = repository.ReadingDetails{
				ReadingID:    readingID,
				FarmerID:     uuid.NewString(),
				FarmerWallet: "0xfarmer",
				KWh:          decimal.NewFromInt(12),
				Status:       repository.ReadingSubmitted,
			}
			existing = nil
			planned = nil
			planErr = nil

			fakeStorage.TakeJoinedStub = func(_ context.Context, q db.JoinQuery, dest any) error {
				Expect(q.LockTable).To(Equal("r"))
				*dest.(*repository.ReadingDetails) = reading
				return nil
			}
			fakeStorage.GetOneByStub = func(_ context.Context, column string, _ any, entity any) error {
				Expect(column).To(Equal("reading_id"))
				if existing == nil {
					return db.ErrNotFound
				}
				*entity.(*repository.Attestation) = *existing
				return nil
			}
		})

		JustBeforeEach(func() {
			result, err = repo.ReserveAttestation(ctx, readingID, func(s repository.AttestationState) (*repository.Attestation, error) {
				seen = s
				return planned, planErr
			})
		})

		When("the reading does not exist", func() {
			BeforeEach(func() {
				fakeStorage.TakeJoinedStub = nil
				fakeStorage.TakeJoinedReturns(db.ErrNotFound)
			})

			It("should return ErrReadingNotFound", func() {
				Expect(err).To(Equal(repository.ErrReadingNotFound))
				Expect(fakeStorage.InsertCallCount()).To(BeZero())
			})
		})

		When("no attestation exists and one is planned", func() {
			BeforeEach(func() {
				planned = &repository.Attestation{ID: uuid.NewString(), ReadingID: readingID, PinStatus: repository.PinPending}
			})

			It("should insert the pending attestation", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(seen.Reading).To(Equal(reading))
				Expect(seen.Attestation).To(BeNil())
				Expect(fakeStorage.InsertCallCount()).To(Equal(1))
				Expect(result.ID).To(Equal(planned.ID))
			})
		})

		When("a concurrent insert wins the unique index", func() {
			BeforeEach(func() {
				planned = &repository.Attestation{ID: uuid.NewString(), ReadingID: readingID}
				fakeStorage.InsertReturns(db.ErrDuplicateKey)
			})

			It("should return ErrDuplicate", func() {
				Expect(errors.Is(err, repository.ErrDuplicate)).To(BeTrue())
			})
		})

		When("an attestation exists and nothing is planned", func() {
			BeforeEach(func() {
				existing = &repository.Attestation{ID: uuid.NewString(), ReadingID: readingID, PinStatus: repository.PinPinned, IPFSCID: "bafy"}
			})

			It("should return the stored attestation untouched", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(Equal(*existing))
				Expect(fakeStorage.InsertCallCount()).To(BeZero())
				Expect(fakeStorage.UpdateWhereCallCount()).To(BeZero())
			})
		})

		When("an expired lease is taken over", func() {
			BeforeEach(func() {
				existing = &repository.Attestation{ID: uuid.NewString(), ReadingID: readingID, PinStatus: repository.PinPending}
				now := time.Now()
				claimed := *existing
				claimed.ClaimedAt = &now
				claimed.ClaimToken = "holder-2"
				planned = &claimed
				fakeStorage.UpdateWhereReturns(1, nil)
			})

			It("should only move the lease", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.UpdateWhereCallCount()).To(Equal(1))
				_, _, updates, where, args := fakeStorage.UpdateWhereArgsForCall(0)
				Expect(updates).To(HaveKey("claimed_at"))
				Expect(updates).To(HaveKeyWithValue("claim_token", "holder-2"))
				Expect(updates).To(HaveLen(2))
				Expect(where).To(Equal("id = ?"))
				Expect(args).To(Equal([]any{existing.ID}))
			})
		})

		When("the plan refuses", func() {
			BeforeEach(func() {
				planErr = fakeErr
			})

			It("should return the plan error unchanged", func() {
				Expect(err).To(Equal(fakeErr))
				Expect(fakeStorage.InsertCallCount()).To(BeZero())
			})
		})
	})

	Describe("MarkAttestationPinned", func() {
		It("should only move attestations still pending under the caller's lease", func() {
			fakeStorage.UpdateWhereReturns(1, nil)
			Expect(repo.MarkAttestationPinned(ctx, "a1", "holder-1", "bafy")).To(Succeed())
			_, _, updates, where, args := fakeStorage.UpdateWhereArgsForCall(0)
			Expect(updates).To(HaveKeyWithValue("pin_status", repository.PinPinned))
			Expect(updates).To(HaveKeyWithValue("ipfs_cid", "bafy"))
			Expect(updates).To(HaveKeyWithValue("claim_token", ""))
			Expect(where).To(Equal("id = ? AND pin_status = ? AND claim_token = ?"))
			Expect(args).To(Equal([]any{"a1", repository.PinPending, "holder-1"}))
		})

		It("should report a lost race", func() {
			fakeStorage.UpdateWhereReturns(0, nil)
			Expect(errors.Is(repo.MarkAttestationPinned(ctx, "a1", "holder-1", "bafy"), repository.ErrStateChanged)).To(BeTrue())
		})
	})

	Describe("DeletePendingAttestation", func() {
		It("should only release the caller's own lease", func() {
			Expect(repo.DeletePendingAttestation(ctx, "a1", "holder-1")).To(Succeed())
			Expect(fakeStorage.DeleteWhereCallCount()).To(Equal(1))
			_, model, where, args := fakeStorage.DeleteWhereArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.Attestation{}))
			Expect(where).To(Equal("id = ? AND pin_status = ? AND claim_token = ?"))
			Expect(args).To(Equal([]any{"a1", repository.PinPending, "holder-1"}))
		})

		It("should pass storage errors on", func() {
			fakeStorage.DeleteWhereReturns(0, fakeErr)
			Expect(errors.Is(repo.DeletePendingAttestation(ctx, "a1", "holder-1"), fakeErr)).To(BeTrue())
		})
	})

	Describe("ReserveMint", func() {
		var (
			details repository.AttestationDetails
			asset   *repository.Asset
			intent  *repository.MintIntent
			planned *repository.MintIntent
			seen    repository.MintState
			result  repository.MintIntent
			err     error
		)

		BeforeEach(func() {
			details = repository.AttestationDetails{
				AttestationID: uuid.NewString(),
				ReadingID:     uuid.NewString(),
				PinStatus:     repository.PinPinned,
				ReadingStatus: repository.ReadingSubmitted,
				KWh:           decimal.NewFromInt(12),
			}
			asset = nil
			intent = nil
			planned = nil

			fakeStorage.TakeJoinedStub = func(_ context.Context, q db.JoinQuery, dest any) error {
				Expect(q.LockTable).To(Equal("a"))
				*dest.(*repository.AttestationDetails) = details
				return nil
			}
			fakeStorage.GetOneByStub = func(_ context.Context, _ string, _ any, entity any) error {
				switch e := entity.(type) {
				case *repository.Asset:
					if asset == nil {
						return db.ErrNotFound
					}
					*e = *asset
				case *repository.MintIntent:
					if intent == nil {
						return db.ErrNotFound
					}
					*e = *intent
				}
				return nil
			}
		})

		JustBeforeEach(func() {
			result, err = repo.ReserveMint(ctx, details.AttestationID, func(s repository.MintState) (*repository.MintIntent, error) {
				seen = s
				return planned, nil
			})
		})

		When("the attestation is missing", func() {
			BeforeEach(func() {
				fakeStorage.TakeJoinedStub = nil
				fakeStorage.TakeJoinedReturns(db.ErrNotFound)
			})

			It("should return ErrAttestationNotFound without writing", func() {
				Expect(err).To(Equal(repository.ErrAttestationNotFound))
				Expect(fakeStorage.InsertCallCount()).To(BeZero())
				Expect(fakeStorage.UpdateWhereCallCount()).To(BeZero())
			})
		})

		When("no intent exists", func() {
			BeforeEach(func() {
				planned = &repository.MintIntent{ID: uuid.NewString(), AttestationID: details.AttestationID, Status: repository.IntentPreparing}
			})

			It("should insert the planned intent", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(seen.Asset).To(BeNil())
				Expect(seen.Intent).To(BeNil())
				Expect(fakeStorage.InsertCallCount()).To(Equal(1))
				Expect(result.Status).To(Equal(repository.IntentPreparing))
			})
		})

		When("a failed intent is retried", func() {
			BeforeEach(func() {
				intent = &repository.MintIntent{ID: uuid.NewString(), AttestationID: details.AttestationID, Status: repository.IntentFailed, Attempts: 1}
				retry := *intent
				retry.Status = repository.IntentPreparing
				retry.Attempts = 2
				planned = &retry
				fakeStorage.UpdateWhereReturns(1, nil)
			})

			It("should overwrite the stored intent", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(seen.Intent.Status).To(Equal(repository.IntentFailed))
				_, _, updates, _, args := fakeStorage.UpdateWhereArgsForCall(0)
				Expect(updates).To(HaveKeyWithValue("status", repository.IntentPreparing))
				Expect(updates).To(HaveKeyWithValue("attempts", 2))
				Expect(args).To(Equal([]any{intent.ID}))
			})
		})

		When("an asset exists", func() {
			BeforeEach(func() {
				asset = &repository.Asset{ID: uuid.NewString(), AttestationID: details.AttestationID}
				intent = &repository.MintIntent{ID: uuid.NewString(), Status: repository.IntentConfirmed}
			})

			It("should show it to the plan", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(seen.Asset.ID).To(Equal(asset.ID))
				Expect(result.ID).To(Equal(intent.ID))
			})
		})
	})

	Describe("CompleteMint", func() {
		var (
			intent   repository.MintIntent
			existing *repository.Asset
			asset    repository.Asset
			result   repository.Asset
			err      error
		)

		BeforeEach(func() {
			intent = repository.MintIntent{ID: uuid.NewString(), Status: repository.IntentSubmitted, TxnHash: "0xabc"}
			existing = nil
			asset = repository.Asset{
				ID:            uuid.NewString(),
				AttestationID: uuid.NewString(),
				TxnHash:       "0xabc",
				CertificateID: "cert:0xabc",
				KWh:           decimal.NewFromInt(12),
			}
			fakeStorage.LockOneByStub = func(_ context.Context, _ string, _ any, entity any) error {
				*entity.(*repository.MintIntent) = intent
				return nil
			}
			fakeStorage.GetOneByStub = func(_ context.Context, _ string, _ any, entity any) error {
				if existing == nil {
					return db.ErrNotFound
				}
				*entity.(*repository.Asset) = *existing
				return nil
			}
			fakeStorage.UpdateWhereReturns(1, nil)
		})

		JustBeforeEach(func() {
			result, err = repo.CompleteMint(ctx, intent.ID, "reading-1", asset)
		})

		When("the mint is new", func() {
			It("should insert the asset, verify the reading and confirm the intent", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(Equal(asset))
				Expect(fakeStorage.InsertCallCount()).To(Equal(1))
				Expect(fakeStorage.UpdateWhereCallCount()).To(Equal(2))

				_, model, updates, where, args := fakeStorage.UpdateWhereArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.MeterReading{}))
				Expect(updates).To(HaveKeyWithValue("status", repository.ReadingVerified))
				Expect(where).To(Equal("id = ? AND status = ?"))
				Expect(args).To(Equal([]any{"reading-1", repository.ReadingSubmitted}))

				_, _, updates, _, _ = fakeStorage.UpdateWhereArgsForCall(1)
				Expect(updates).To(HaveKeyWithValue("status", repository.IntentConfirmed))
			})
		})

		When("the reading was already verified by someone else", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturnsOnCall(0, 0, nil)
			})

			It("should refuse the commit", func() {
				Expect(err).To(Equal(repository.ErrReadingVerified))
			})
		})

		When("the intent is already confirmed", func() {
			BeforeEach(func() {
				intent.Status = repository.IntentConfirmed
				existing = &asset
			})

			It("should return the stored asset without writing", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(Equal(asset))
				Expect(fakeStorage.InsertCallCount()).To(BeZero())
				Expect(fakeStorage.UpdateWhereCallCount()).To(BeZero())
			})
		})

		When("the asset was written by the same transaction earlier", func() {
			BeforeEach(func() {
				existing = &asset
				fakeStorage.UpdateWhereReturnsOnCall(0, 0, nil)
			})

			It("should confirm the intent", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.InsertCallCount()).To(BeZero())
				Expect(fakeStorage.UpdateWhereCallCount()).To(Equal(2))
			})
		})

		When("another transaction already owns the asset", func() {
			BeforeEach(func() {
				other := asset
				other.TxnHash = "0xdef"
				existing = &other
			})

			It("should return ErrAssetExists", func() {
				Expect(err).To(Equal(repository.ErrAssetExists))
			})
		})

		When("the intent was failed meanwhile", func() {
			BeforeEach(func() {
				intent.Status = repository.IntentFailed
			})

			It("should return ErrStateChanged", func() {
				Expect(errors.Is(err, repository.ErrStateChanged)).To(BeTrue())
			})
		})
	})

	Describe("GetCompany", func() {
		It("should look the company up by id", func() {
			fakeStorage.GetOneByStub = func(_ context.Context, _ string, _ any, dest any) error {
				*dest.(*repository.Company) = repository.Company{ID: "c1", Email: "ops@sunco.io"}
				return nil
			}
			company, err := repo.GetCompany(ctx, "c1")
			Expect(err).NotTo(HaveOccurred())
			Expect(company.Email).To(Equal("ops@sunco.io"))
			_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(column).To(Equal("id"))
			Expect(value).To(Equal("c1"))
		})

		It("should map a missing company to ErrCompanyNotFound", func() {
			fakeStorage.GetOneByReturns(db.ErrNotFound)
			_, err := repo.GetCompany(ctx, "c1")
			Expect(errors.Is(err, repository.ErrCompanyNotFound)).To(BeTrue())
		})
	})

	Describe("ListAssetsByFarmers", func() {
		It("should select by farmer and order newest first", func() {
			older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			fakeStorage.GetAllByStub = func(_ context.Context, _ string, _ any, dest any) error {
				*dest.(*[]repository.Asset) = []repository.Asset{
					{ID: "as1", FarmerID: "f1", CreatedAt: older},
					{ID: "as2", FarmerID: "f2", CreatedAt: older.Add(time.Hour)},
				}
				return nil
			}

			assets, err := repo.ListAssetsByFarmers(ctx, []string{"f1", "f2"})
			Expect(err).NotTo(HaveOccurred())
			Expect(assets).To(HaveLen(2))
			Expect(assets[0].ID).To(Equal("as2"))
			Expect(assets[1].ID).To(Equal("as1"))

			_, column, value, _ := fakeStorage.GetAllByArgsForCall(0)
			Expect(column).To(Equal("farmer_id"))
			Expect(value).To(Equal([]string{"f1", "f2"}))
		})

		It("should wrap storage errors", func() {
			fakeStorage.GetAllByReturns(fakeErr)
			_, err := repo.ListAssetsByFarmers(ctx, []string{"f1"})
			Expect(err).To(MatchError("list assets by farmer: fake error"))
		})
	})

	Describe("GetAssetByAttestation", func() {
		It("should map a missing asset to ErrAssetNotFound", func() {
			fakeStorage.GetOneByReturns(db.ErrNotFound)
			_, err := repo.GetAssetByAttestation(ctx, "att-1")
			Expect(errors.Is(err, repository.ErrAssetNotFound)).To(BeTrue())
			_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(column).To(Equal("attestation_id"))
			Expect(value).To(Equal("att-1"))
		})

		It("should wrap storage errors", func() {
			fakeStorage.GetOneByReturns(fakeErr)
			_, err := repo.GetAssetByAttestation(ctx, "att-1")
			Expect(err).To(MatchError("get asset: fake error"))
		})
	})

	Describe("Summary", func() {
		It("should aggregate readings, farmers and companies", func() {
			fakeStorage.SumReturns(decimal.RequireFromString("42.5"), nil)
			fakeStorage.CountReturnsOnCall(0, 3, nil)
			fakeStorage.CountReturnsOnCall(1, 2, nil)

			summary, err := repo.Summary(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.TotalKWh.String()).To(Equal("42.5"))
			Expect(summary.TotalFarmers).To(Equal(int64(3)))
			Expect(summary.TotalCompanies).To(Equal(int64(2)))

			_, model, column := fakeStorage.SumArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.MeterReading{}))
			Expect(column).To(Equal("kwh"))
		})

		It("should wrap store errors", func() {
			fakeStorage.SumReturns(decimal.Zero, fakeErr)
			_, err := repo.Summary(ctx)
			Expect(err).To(MatchError("sum kwh: fake error"))
		})
	})

	Describe("ListOutstandingIntents", func() {
		It("should ask for submitted and stale preparing intents", func() {
			cutoff := time.Now()
			_, err := repo.ListOutstandingIntents(ctx, cutoff)
			Expect(err).NotTo(HaveOccurred())
			_, _, order, _, args := fakeStorage.FindWhereArgsForCall(0)
			Expect(order).To(Equal("created_at"))
			Expect(args).To(Equal([]any{repository.IntentSubmitted, repository.IntentPreparing, cutoff}))
		})
	})
})
