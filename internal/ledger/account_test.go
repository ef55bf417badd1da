package ledger_test

import (
	"errors"

	"greenmint/internal/ledger"

	"github.com/ethereum/go-ethereum/common"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Account", func() {
	It("should restore the same address from the exported key", func() {
		acc, err := ledger.NewAccount()
		Expect(err).NotTo(HaveOccurred())

		restored, err := ledger.AccountFromHex("0x" + acc.PrivateKeyHex())
		Expect(err).NotTo(HaveOccurred())
		Expect(restored.Address).To(Equal(acc.Address))

		fromBytes, err := ledger.AccountFromBytes(acc.PrivateKeyBytes())
		Expect(err).NotTo(HaveOccurred())
		Expect(fromBytes.Address).To(Equal(acc.Address))
	})

	DescribeTable("NormalizeAddress",
		func(in, want string, valid bool) {
			got, err := ledger.NormalizeAddress(in)
			if !valid {
				Expect(errors.Is(err, ledger.ErrInvalidAddress)).To(BeTrue())
				return
			}
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("short hex is left padded", "0xABC", common.HexToAddress("0x0000000000000000000000000000000000000abc").Hex(), true),
		Entry("full address", " 0x00000000000000000000000000000000000000bb", common.HexToAddress("0x00000000000000000000000000000000000000bb").Hex(), true),
		Entry("missing prefix", "abc", "", false),
		Entry("not hex", "0xZZ", "", false),
		Entry("too long", "0x"+"1234567890123456789012345678901234567890ab", "", false),
	)
})
