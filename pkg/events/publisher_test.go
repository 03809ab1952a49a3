package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	closed   bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange = exchange
	f.key = key
	f.msg = msg
	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestRabbitPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := &RabbitPublisher{channel: ch, log: zap.NewNop()}

	bookedAt := time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)
	err := p.Publish(context.Background(), RoutingBookingCreated, BookingCreated{
		ID:             "b1",
		FitnessClassID: "c1",
		ClientEmail:    "meera@example.com",
		BookedAt:       bookedAt,
		RemainingSlots: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, ExchangeName, ch.exchange)
	assert.Equal(t, "booking.created", ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)

	var got BookingCreated
	require.NoError(t, json.Unmarshal(ch.msg.Body, &got))
	assert.Equal(t, "c1", got.FitnessClassID)
	assert.Equal(t, 2, got.RemainingSlots)
	assert.True(t, bookedAt.Equal(got.BookedAt))
}

func TestRabbitPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := &RabbitPublisher{channel: ch, log: zap.NewNop()}

	err := p.Publish(context.Background(), RoutingClassCreated, ClassCreated{ID: "c1"})
	assert.ErrorContains(t, err, "publish class.created")
}

func TestRabbitPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := &RabbitPublisher{channel: ch, log: zap.NewNop()}

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), RoutingClassCreated, nil))
	assert.NoError(t, p.Close())
}
