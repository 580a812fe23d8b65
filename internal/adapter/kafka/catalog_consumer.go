package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/felino/storefront/internal/core/domain"
	"github.com/felino/storefront/internal/core/port"
	"github.com/felino/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

// A consumer is used for composition.
//
// Fetching records from kafka broker and closing underlying [kgo.Client].
type consumerParent interface {
	processFetches(context.Context, kgo.Fetches) error
}

type consumer struct {
	opPrefix      string
	parent        consumerParent
	cl            ConsumerClient
	slowDownTimer *time.Timer
}

func (c consumer) run(ctx context.Context) {
	const op = "run"
	log := slog.With("op", makeOp(c.opPrefix, op))

	log.Info("running")

	for {
		select {
		case <-ctx.Done():
			return
		default:
			err := c.consume(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					continue
				}
				log.Error("failed to consume", "err", err)
				c.slowDown()
			}
		}
	}
}

func (c consumer) consume(ctx context.Context) error {
	const op = "consume"

	fetches, err := c.pollFetches(ctx)
	if err != nil {
		return opErr(err, c.opPrefix, op)
	}

	if fetches.Empty() {
		return nil
	}

	err = c.parent.processFetches(ctx, fetches)
	if err != nil {
		return opErr(err, c.opPrefix, op)
	}

	err = c.commit(ctx)
	if err != nil {
		return opErr(err, c.opPrefix, op)
	}
	return nil
}

func (c consumer) pollFetches(ctx context.Context) (kgo.Fetches, error) {
	const op = "pollFetches"

	fetches := c.cl.PollFetches(ctx)
	if err := fetches.Err0(); err != nil {
		return nil, opErr(err, c.opPrefix, op)
	}

	err := c.handleFetchesErrs(fetches)
	if err != nil {
		return nil, opErr(err, c.opPrefix, op)
	}

	return fetches, nil
}

func (c consumer) handleFetchesErrs(fetches kgo.Fetches) error {
	var errsMessages []string
	fetches.EachError(func(t string, p int32, err error) {
		if err != nil {
			errMsg := fmt.Sprintf(
				"topic %q partition %d: %q", t, p, err,
			)
			errsMessages = append(errsMessages, errMsg)
		}
	})

	if len(errsMessages) != 0 {
		return errors.New(strings.Join(errsMessages, "; "))
	}
	return nil
}

func (c consumer) slowDown() {
	c.slowDownTimer.Reset(1 * time.Second)
	<-c.slowDownTimer.C
}

func (c consumer) commit(ctx context.Context) error {
	const op = "commit"

	if err := ctx.Err(); err != nil {
		return opErr(err, c.opPrefix, op)
	}

	err := c.cl.CommitUncommittedOffsets(ctx)
	if err != nil {
		return opErr(err, c.opPrefix, op)
	}
	return nil
}

func (c consumer) close() {
	const op = "close"
	log := slog.With("op", makeOp(c.opPrefix, op))

	c.slowDownTimer.Stop()

	log.Info("closing consumer...")
	c.cl.Close()
	log.Info("consumer is closed")
}

// A CatalogConsumer consumes catalog product updates
// then hands them to the core service for the snapshot merge.
type CatalogConsumer struct {
	opPrefix string
	consumer consumer
	updater  port.CatalogUpdater
	decoder  Decoder
}

func NewCatalogConsumer(opts ...ConsumerOpt) (cc CatalogConsumer, err error) {
	const op = "NewCatalogConsumer"

	var options consumerOpts
	if err := options.apply(opts...); err != nil {
		return cc, opErr(err, op)
	}

	opPrefix := "CatalogConsumer"

	cc.opPrefix = opPrefix
	cc.updater = options.updater
	cc.decoder = options.decoder

	cc.consumer = consumer{
		opPrefix:      opPrefix,
		parent:        cc,
		cl:            options.cl,
		slowDownTimer: time.NewTimer(0),
	}

	return cc, nil
}

func (c CatalogConsumer) Run(ctx context.Context) {
	c.consumer.run(ctx)
}

func (c CatalogConsumer) Close() {
	c.consumer.close()
}

func (c CatalogConsumer) processFetches(
	ctx context.Context, fetches kgo.Fetches,
) error {
	const op = "processFetches"

	values := c.toDomain(fetches)
	if len(values) == 0 {
		return nil
	}

	err := c.updater.ApplyCatalogUpdate(ctx, values)
	if err != nil {
		return opErr(err, c.opPrefix, op)
	}
	return nil
}

func (c CatalogConsumer) toDomain(
	fetches kgo.Fetches,
) (vs []domain.Product) {
	const op = "toDomain"
	log := slog.With("op", makeOp(c.opPrefix, op))

	fetches.EachRecord(func(r *kgo.Record) {
		v, err := c.decodeRecValue(r)
		if err != nil {
			log.Error(
				"failed to decode value",
				"err", opErr(err, c.opPrefix, op),
			)
			return
		}
		vs = append(vs, v)
	})
	return vs
}

func (c CatalogConsumer) decodeRecValue(
	r *kgo.Record,
) (domain.Product, error) {
	var s schema.ProductV1
	err := c.decoder.Decode(r.Value, &s)
	if err != nil {
		return domain.Product{}, err
	}
	return schemaV1ToProduct(s), nil
}
