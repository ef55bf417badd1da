package events_test

import (
	"context"
	"encoding/json"
	"errors"

	"greenmint/internal/events"
	"greenmint/internal/events/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type acknowledger struct {
	acked   int
	nacked  int
	requeue bool
}

func (a *acknowledger) Ack(uint64, bool) error {
	a.acked++
	return nil
}

func (a *acknowledger) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked++
	a.requeue = requeue
	return nil
}

func (a *acknowledger) Reject(uint64, bool) error {
	return nil
}

var _ = Describe("Publisher", func() {
	var (
		fakeChannel *fake.Channel
		publisher   *events.Publisher
		logger      *zap.SugaredLogger
		err         error
	)

	BeforeEach(func() {
		fakeChannel = new(fake.Channel)
		logger = zap.NewNop().Sugar()
	})

	JustBeforeEach(func() {
		publisher, err = events.NewPublisher(logger, fakeChannel, "greenmint.events")
	})

	It("should declare a durable topic exchange", func() {
		Expect(err).NotTo(HaveOccurred())
		name, kind, durable, _, _, _, _ := fakeChannel.ExchangeDeclareArgsForCall(0)
		Expect(name).To(Equal("greenmint.events"))
		Expect(kind).To(Equal("topic"))
		Expect(durable).To(BeTrue())
	})

	It("should publish persistent JSON with a message id", func() {
		Expect(publisher.Publish(context.Background(), events.AttestationCreatedKey, events.AttestationCreated{
			AttestationID: "a1",
			ReadingID:     "r1",
			CID:           "bafy",
		})).To(Succeed())

		_, exchange, key, _, _, msg := fakeChannel.PublishWithContextArgsForCall(0)
		Expect(exchange).To(Equal("greenmint.events"))
		Expect(key).To(Equal("attestation.created"))
		Expect(msg.DeliveryMode).To(Equal(amqp.Persistent))
		Expect(msg.MessageId).NotTo(BeEmpty())

		var body map[string]string
		Expect(json.Unmarshal(msg.Body, &body)).To(Succeed())
		Expect(body).To(HaveKeyWithValue("ipfs_cid", "bafy"))
	})

	When("the exchange cannot be declared", func() {
		BeforeEach(func() {
			fakeChannel.ExchangeDeclareReturns(errors.New("access refused"))
		})

		It("should close the channel and fail", func() {
			Expect(err).To(MatchError(ContainSubstring("declare exchange")))
			Expect(fakeChannel.CloseCallCount()).To(Equal(1))
		})
	})

	It("should wrap publish failures", func() {
		fakeChannel.PublishWithContextReturns(errors.New("channel closed"))
		err := publisher.Publish(context.Background(), "k", struct{}{})
		Expect(err).To(MatchError("publish event: channel closed"))
	})
})

var _ = Describe("Handle", func() {
	var (
		ack    *acknowledger
		msg    amqp.Delivery
		logger *zap.SugaredLogger
	)

	BeforeEach(func() {
		ack = &acknowledger{}
		msg = amqp.Delivery{Acknowledger: ack, Body: []byte(`{"farmer_id":"f1"}`)}
		logger = zap.NewNop().Sugar()
	})

	It("should ack processed messages", func() {
		var seen []byte
		events.Handle(context.Background(), logger, func(_ context.Context, body []byte) error {
			seen = body
			return nil
		}, msg)
		Expect(seen).To(Equal(msg.Body))
		Expect(ack.acked).To(Equal(1))
		Expect(ack.nacked).To(BeZero())
	})

	It("should dead-letter failed messages without requeue", func() {
		events.Handle(context.Background(), logger, func(context.Context, []byte) error {
			return errors.New("invalid reading")
		}, msg)
		Expect(ack.acked).To(BeZero())
		Expect(ack.nacked).To(Equal(1))
		Expect(ack.requeue).To(BeFalse())
	})
})

var _ = Describe("NoopPublisher", func() {
	It("should accept everything", func() {
		Expect(events.NoopPublisher{}.Publish(context.Background(), "k", nil)).To(Succeed())
	})
})
