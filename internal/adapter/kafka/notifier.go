package kafka

import (
	"context"
	"log/slog"

	"github.com/felino/storefront/internal/core/domain"
	"github.com/felino/storefront/internal/core/port"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.Notifier = (*NotificationsProducer)(nil)

// A NotificationsProducer publishes cart notifications to the
// notifications topic for the presentation layer to display.
type NotificationsProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewNotificationsProducer(
	opts ...ProducerOpt,
) (NotificationsProducer, error) {
	const op = "NewNotificationsProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return NotificationsProducer{}, opErr(err, op)
		}
	}
	return NotificationsProducer{options.cl, options.encoder}, nil
}

func (p NotificationsProducer) Close() {
	const op = "NotificationsProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p NotificationsProducer) Notify(
	ctx context.Context, n domain.Notification,
) error {
	const op = "NotificationsProducer.Notify"

	if err := ctx.Err(); err != nil {
		return opErr(err, op)
	}

	s := notificationToSchemaV1(n)
	v, err := p.encoder.Encode(s)
	if err != nil {
		return opErr(err, op)
	}

	r := &kgo.Record{Key: []byte(s.Severity), Value: v}
	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return opErr(err, op)
	}
	return nil
}
