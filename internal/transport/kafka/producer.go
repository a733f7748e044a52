package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"technician-dispatch/internal/logx"
	"technician-dispatch/internal/repository"
)

var newSyncProducer = sarama.NewSyncProducer

// Publisher writes assignment changes to a Kafka topic, keyed by assignment
// id so that events of one assignment stay ordered within a partition.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   logx.Logger
	newID    func() string
	now      func() time.Time
}

// NewPublisher connects a producer. It returns nil, nil when brokers or topic
// are not configured, which disables publishing.
func NewPublisher(logger logx.Logger, brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1
	cfg.Producer.Retry.Max = 3

	p, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return NewPublisherWithProducer(logger, p, topic), nil
}

// NewPublisherWithProducer wraps an existing producer.
func NewPublisherWithProducer(logger logx.Logger, p sarama.SyncProducer, topic string) *Publisher {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Publisher{
		producer: p,
		topic:    topic,
		logger:   logger,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// Name identifies the publisher in logs and metrics.
func (p *Publisher) Name() string { return "kafka" }

// Apply publishes c. Unknown change kinds are skipped.
func (p *Publisher) Apply(ctx context.Context, c repository.Change) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ev, ok := FromChange(c, p.newID(), p.now())
	if !ok {
		p.logger.Warn("kafka: unknown change kind", logx.String("kind", string(c.Kind)))
		return nil
	}
	value, err := json.Marshal(ev)
	if err != nil {
		return Permanent(fmt.Errorf("marshal event: %w", err))
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(ev.AssignmentID, 10)),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(ev.Type)},
		},
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("publish %s for assignment %d: %w", ev.Type, ev.AssignmentID, err)
	}
	p.logger.Debug("kafka: event published",
		logx.String("event_id", ev.EventID),
		logx.String("type", ev.Type),
		logx.Int64("assignment_id", ev.AssignmentID),
		logx.Any("partition", partition),
		logx.Int64("offset", offset),
	)
	return nil
}

// Close closes the producer.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
