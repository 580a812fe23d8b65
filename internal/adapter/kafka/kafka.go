package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/felino/storefront/internal/core/domain"
	"github.com/felino/storefront/internal/core/port"
	"github.com/felino/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var (
	ErrTooFewOpts = errors.New("too few options")
)

type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type ConsumerClient interface {
	PollFetches(context.Context) kgo.Fetches
	CommitUncommittedOffsets(context.Context) error
	Close()
}

type Encoder interface {
	Encode(v any) ([]byte, error)
}

type Decoder interface {
	Decode(b []byte, v any) error
}

type ProducerOpt func(*producerOpts) error

type producerOpts struct {
	cl      ProducerClient
	encoder Encoder
}

func ProducerClientOpt(
	ctx context.Context, seedBrokers []string, topic string,
) ProducerOpt {
	return func(opts *producerOpts) error {
		cl, err := kgo.NewClient(
			kgo.SeedBrokers(seedBrokers...),
			kgo.DefaultProduceTopicAlways(),
			kgo.DefaultProduceTopic(topic),
			kgo.RequiredAcks(kgo.AllISRAcks()),
			kgo.AllowAutoTopicCreation(),
		)
		if err != nil {
			return err
		}

		if err := cl.Ping(ctx); err != nil {
			return err
		}
		opts.cl = cl
		return nil
	}
}

func ProducerEncoderOpt(encoder Encoder) ProducerOpt {
	return func(opts *producerOpts) error {
		if encoder == nil {
			return errors.New("encoder is nil")
		}
		opts.encoder = encoder
		return nil
	}
}

type ConsumerOpt func(*consumerOpts) error

type consumerOpts struct {
	cl      ConsumerClient
	decoder Decoder
	updater port.CatalogUpdater
}

func (co *consumerOpts) apply(opts ...ConsumerOpt) error {
	for _, opt := range opts {
		if err := opt(co); err != nil {
			return err
		}
	}
	return nil
}

func ConsumerClientOpt(
	seedBrokers []string, topic, group string,
) ConsumerOpt {
	return func(co *consumerOpts) error {
		cl, err := kgo.NewClient(
			kgo.SeedBrokers(seedBrokers...),
			kgo.ConsumeTopics(topic),
			kgo.ConsumerGroup(group),
			kgo.DisableAutoCommit(),
		)
		if err != nil {
			return err
		}
		co.cl = cl
		return nil
	}
}

func ConsumerDecoderOpt(decoder Decoder) ConsumerOpt {
	return func(co *consumerOpts) error {
		if decoder == nil {
			return errors.New("decoder is nil")
		}
		co.decoder = decoder
		return nil
	}
}

func ConsumerUpdaterOpt(updater port.CatalogUpdater) ConsumerOpt {
	return func(co *consumerOpts) error {
		if updater == nil {
			return errors.New("catalog updater is nil")
		}
		co.updater = updater
		return nil
	}
}

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func opErr(err error, op ...string) error {
	return fmt.Errorf("%s: %w", makeOp(op...), err)
}

func productToSchemaV1(v domain.Product) (s schema.ProductV1) {
	s.ID = v.ID
	s.Name = v.Name
	s.Description = v.Description
	s.Price = v.Price
	s.Discount = v.Discount
	s.Images = v.Images
	s.Category = v.Category
	s.Stock = v.Stock
	s.Rating = v.Rating
	s.ReviewCount = v.ReviewCount
	s.Featured = v.Featured
	s.AgeRange = v.AgeRange
	s.CreatedAt = v.CreatedAt.Format(time.RFC3339)
	s.Attributes = v.Attributes
	return s
}

func schemaV1ToProduct(s schema.ProductV1) (v domain.Product) {
	v.ID = s.ID
	v.Name = s.Name
	v.Description = s.Description
	v.Price = s.Price
	v.Discount = s.Discount
	v.Images = s.Images
	v.Category = s.Category
	v.Stock = s.Stock
	v.Rating = s.Rating
	v.ReviewCount = s.ReviewCount
	v.Featured = s.Featured
	v.AgeRange = s.AgeRange
	v.CreatedAt, _ = time.Parse(time.RFC3339, s.CreatedAt)
	v.Attributes = s.Attributes
	return v
}

func notificationToSchemaV1(n domain.Notification) (s schema.NotificationV1) {
	s.Severity = string(n.Severity)
	s.Message = n.Message
	return s
}
