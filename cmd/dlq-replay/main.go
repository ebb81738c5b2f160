package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
	"github.com/vladislavdragonenkov/catalog/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/catalog/internal/service/outbox"
)

const (
	envKafkaBrokers = "CATALOG_KAFKA_BROKERS"

	defaultLimit       = 100
	defaultIdleTimeout = 2 * time.Second
	defaultClientID    = "catalog-dlq-replay"
)

var errNotDeadLetter = errors.New("message is not a dead letter")

type options struct {
	brokers     []string
	topic       string
	limit       int
	execute     bool
	idleTimeout time.Duration
}

type stats struct {
	scanned  int
	replayed int
	skipped  int
}

func parseOptions(args []string, lookup func(string) (string, bool)) (options, error) {
	var (
		brokers string
		opts    options
	)

	fs := flag.NewFlagSet("dlq-replay", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&brokers, "brokers", "", "kafka brokers, comma separated (fallback: "+envKafkaBrokers+")")
	fs.StringVar(&opts.topic, "topic", kafka.TopicDeadLetterQueue, "dead letter topic")
	fs.IntVar(&opts.limit, "limit", defaultLimit, "max messages to scan")
	fs.BoolVar(&opts.execute, "execute", false, "republish events; dry-run otherwise")
	fs.DurationVar(&opts.idleTimeout, "idle-timeout", defaultIdleTimeout, "stop partition scan after this idle period")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if strings.TrimSpace(brokers) == "" {
		if value, ok := lookup(envKafkaBrokers); ok {
			brokers = value
		}
	}
	for _, broker := range strings.Split(brokers, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			opts.brokers = append(opts.brokers, broker)
		}
	}

	switch {
	case len(opts.brokers) == 0:
		return options{}, fmt.Errorf("kafka brokers are required (-brokers or %s)", envKafkaBrokers)
	case strings.TrimSpace(opts.topic) == "":
		return options{}, errors.New("topic is required")
	case opts.limit <= 0:
		return options{}, errors.New("limit must be > 0")
	case opts.idleTimeout <= 0:
		return options{}, errors.New("idle-timeout must be > 0")
	}
	return opts, nil
}

// decodeDeadLetter достаёт исходное событие из сообщения DLQ.
func decodeDeadLetter(value []byte) (domain.OutboxMessage, error) {
	var envelope kafka.Envelope
	if err := json.Unmarshal(value, &envelope); err != nil {
		return domain.OutboxMessage{}, fmt.Errorf("decode envelope: %w", err)
	}
	if envelope.AggregateType != domain.AggregateDeadLetter {
		return domain.OutboxMessage{}, errNotDeadLetter
	}

	var letter outbox.DeadLetter
	if err := json.Unmarshal(envelope.Payload, &letter); err != nil {
		return domain.OutboxMessage{}, fmt.Errorf("decode dead letter: %w", err)
	}

	event := letter.Original()
	if event.ID == "" {
		event.ID = envelope.ID
	}
	if event.AggregateType == "" || len(event.Payload) == 0 {
		return domain.OutboxMessage{}, errors.New("dead letter has no original event")
	}
	return event, nil
}

type replayer struct {
	consumer  sarama.Consumer
	publisher domain.OutboxPublisher
	opts      options
	logger    *log.Entry
}

func (r *replayer) run(ctx context.Context) (stats, error) {
	var total stats

	partitions, err := r.consumer.Partitions(r.opts.topic)
	if err != nil {
		return total, fmt.Errorf("list partitions of %s: %w", r.opts.topic, err)
	}
	sort.Slice(partitions, func(i, j int) bool { return partitions[i] < partitions[j] })

	for _, partition := range partitions {
		if total.scanned >= r.opts.limit {
			break
		}
		if err := r.scanPartition(ctx, partition, &total); err != nil {
			return total, err
		}
	}
	return total, nil
}

func (r *replayer) scanPartition(ctx context.Context, partition int32, total *stats) error {
	pc, err := r.consumer.ConsumePartition(r.opts.topic, partition, sarama.OffsetOldest)
	if err != nil {
		return fmt.Errorf("consume partition %d: %w", partition, err)
	}
	defer func() { _ = pc.Close() }()

	idle := time.NewTimer(r.opts.idleTimeout)
	defer idle.Stop()

	for total.scanned < r.opts.limit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-idle.C:
			return nil
		case consumerErr, ok := <-pc.Errors():
			if ok && consumerErr != nil {
				return fmt.Errorf("partition %d: %w", partition, consumerErr.Err)
			}
		case msg, ok := <-pc.Messages():
			if !ok {
				return nil
			}
			if !idle.Stop() {
				select {
				case <-idle.C:
				default:
				}
			}
			idle.Reset(r.opts.idleTimeout)

			if err := r.handle(msg, total); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *replayer) handle(msg *sarama.ConsumerMessage, total *stats) error {
	total.scanned++
	entry := r.logger.WithFields(log.Fields{"partition": msg.Partition, "offset": msg.Offset})

	event, err := decodeDeadLetter(msg.Value)
	if err != nil {
		total.skipped++
		entry.WithError(err).Warn("skip dlq message")
		return nil
	}

	entry = entry.WithFields(log.Fields{
		"outbox_id":      event.ID,
		"aggregate_type": event.AggregateType,
		"event_type":     event.EventType,
	})
	if !r.opts.execute {
		total.replayed++
		entry.Info("dlq replay candidate")
		return nil
	}

	if err := r.publisher.Publish(event); err != nil {
		return fmt.Errorf("republish %s: %w", event.ID, err)
	}
	total.replayed++
	entry.Info("dlq event republished")
	return nil
}

func run(ctx context.Context, opts options, logger *log.Entry) (stats, error) {
	config := sarama.NewConfig()
	config.ClientID = defaultClientID
	config.Consumer.Return.Errors = true

	consumer, err := sarama.NewConsumer(opts.brokers, config)
	if err != nil {
		return stats{}, fmt.Errorf("create kafka consumer: %w", err)
	}
	defer func() { _ = consumer.Close() }()

	r := &replayer{consumer: consumer, opts: opts, logger: logger}
	if opts.execute {
		producer, err := kafka.NewProducer(opts.brokers, defaultClientID)
		if err != nil {
			return stats{}, err
		}
		defer func() { _ = producer.Close() }()
		r.publisher = kafka.NewOutboxPublisher(producer, kafka.TopicOrderEvents)
	}

	return r.run(ctx)
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	logger := log.WithField("component", "dlq-replay")

	opts, err := parseOptions(os.Args[1:], os.LookupEnv)
	if err != nil {
		logger.WithError(err).Fatal("invalid options")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := run(ctx, opts, logger)
	mode := "dry-run"
	if opts.execute {
		mode = "execute"
	}
	fields := log.Fields{
		"mode":     mode,
		"scanned":  result.scanned,
		"replayed": result.replayed,
		"skipped":  result.skipped,
	}
	if err != nil {
		logger.WithFields(fields).WithError(err).Fatal("dlq replay failed")
	}
	logger.WithFields(fields).Info("dlq replay finished")
}
