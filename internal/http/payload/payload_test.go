package payload_test

import (
	"net/http/httptest"
	"strings"

	"greenmint/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decoder", func() {
	var decoder payload.Decoder

	decode := func(body string, object any) error {
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		return decoder.DecodeJSONPayload(req, object)
	}

	It("should decode and validate a reading", func() {
		var req payload.SubmitReadingRequest
		err := decode(`{"farmer_id":"f1","meter_id":"M1","kwh":12.5,"timestamp":"2024-01-01T00:00:00Z","source":"solar"}`, &req)
		Expect(err).NotTo(HaveOccurred())

		in := req.ToCoreInput()
		Expect(in.FarmerID).To(Equal("f1"))
		Expect(in.KWh).To(Equal("12.5"))
		Expect(*in.MeterID).To(Equal("M1"))
		Expect(*in.Source).To(Equal("solar"))
	})

	It("should keep the exact kwh text", func() {
		var req payload.SubmitReadingRequest
		Expect(decode(`{"farmer_id":"f1","kwh":0.1000000000000000055,"timestamp":"2024-01-01T00:00:00Z"}`, &req)).To(Succeed())
		Expect(req.ToCoreInput().KWh).To(Equal("0.1000000000000000055"))
	})

	It("should reject unknown fields", func() {
		var req payload.RegisterFarmerRequest
		err := decode(`{"name":"Asha","wallet":"0x1"}`, &req)
		Expect(err).To(MatchError(ContainSubstring("unknown field")))
	})

	It("should accept an empty body for optional payloads", func() {
		var req payload.VerifyReadingRequest
		Expect(decode(``, &req)).To(Succeed())
		Expect(req.VerifierNotes).To(BeEmpty())
	})

	It("should reject malformed json", func() {
		var req payload.LoginRequest
		err := decode(`{"email":`, &req)
		Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
	})

	DescribeTable("invalid readings",
		func(body string, field string) {
			var req payload.SubmitReadingRequest
			err := decode(body, &req)
			Expect(err).To(HaveOccurred())
			if field != "" {
				Expect(err).To(MatchError(ContainSubstring(field)))
			}
		},
		Entry("missing farmer", `{"kwh":1,"timestamp":"2024-01-01T00:00:00Z"}`, "farmer_id"),
		Entry("missing kwh", `{"farmer_id":"f1","timestamp":"2024-01-01T00:00:00Z"}`, "kwh"),
		Entry("kwh as text", `{"farmer_id":"f1","kwh":"lots","timestamp":"2024-01-01T00:00:00Z"}`, ""),
		Entry("bad timestamp", `{"farmer_id":"f1","kwh":1,"timestamp":"yesterday"}`, "timestamp"),
		Entry("empty meter id", `{"farmer_id":"f1","meter_id":"","kwh":1,"timestamp":"2024-01-01T00:00:00Z"}`, "meter_id"),
	)

	DescribeTable("mint requests",
		func(body string, valid bool) {
			var req payload.MintRequest
			err := decode(body, &req)
			if valid {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(err).To(HaveOccurred())
			}
		},
		Entry("short address", `{"attestation_id":"a1","mint_to":"0xABC"}`, true),
		Entry("full address", `{"attestation_id":"a1","mint_to":"0x00000000000000000000000000000000000000b1"}`, true),
		Entry("missing prefix", `{"attestation_id":"a1","mint_to":"ABC"}`, false),
		Entry("not hex", `{"attestation_id":"a1","mint_to":"0xXYZ"}`, false),
		Entry("too long", `{"attestation_id":"a1","mint_to":"0x00000000000000000000000000000000000000b1ff"}`, false),
		Entry("missing attestation", `{"mint_to":"0xABC"}`, false),
	)

	DescribeTable("company registration",
		func(body string, valid bool) {
			var req payload.RegisterCompanyRequest
			err := decode(body, &req)
			if valid {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(err).To(HaveOccurred())
			}
		},
		Entry("valid", `{"name":"Acme","email":"ops@acme.test","password":"hunter22"}`, true),
		Entry("bad email", `{"name":"Acme","email":"ops","password":"hunter22"}`, false),
		Entry("short password", `{"name":"Acme","email":"ops@acme.test","password":"short"}`, false),
		Entry("missing name", `{"email":"ops@acme.test","password":"hunter22"}`, false),
	)
})
