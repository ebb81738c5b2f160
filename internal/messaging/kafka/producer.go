// Package kafka публикует события каталога в Kafka через sarama.
package kafka

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"
)

const defaultClientID = "catalog-service"

var errNoBrokers = errors.New("kafka brokers are not configured")

// Producer публикует синхронно: PublishEvent возвращается после подтверждения всех реплик.
type Producer struct {
	sync   sarama.SyncProducer
	logger *log.Entry
	now    func() time.Time
}

// producerConfig собирает настройки idempotent producer с acks=all.
func producerConfig(clientID string) *sarama.Config {
	if clientID == "" {
		clientID = defaultClientID
	}

	cfg := sarama.NewConfig()
	cfg.ClientID = clientID
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Return.Successes = true
	cfg.Producer.Compression = sarama.CompressionSnappy
	// idempotent producer требует не больше одного in-flight запроса.
	cfg.Net.MaxOpenRequests = 1
	return cfg
}

// NewProducer подключается к brokers.
func NewProducer(brokers []string, clientID string) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, errNoBrokers
	}

	sp, err := sarama.NewSyncProducer(brokers, producerConfig(clientID))
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return newProducer(sp), nil
}

func newProducer(sp sarama.SyncProducer) *Producer {
	return &Producer{
		sync:   sp,
		logger: log.WithField("component", "kafka-producer"),
		now:    time.Now,
	}
}

// PublishEvent кодирует event в JSON и отправляет в topic; key определяет партицию.
func (p *Producer) PublishEvent(topic, key string, event any, headers map[string]string) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event for %s: %w", topic, err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     topic,
		Key:       sarama.StringEncoder(key),
		Value:     sarama.ByteEncoder(value),
		Headers:   recordHeaders(headers),
		Timestamp: p.now(),
	}
	entry := p.logger.WithFields(log.Fields{"topic": topic, "key": key})

	partition, offset, err := p.sync.SendMessage(msg)
	if err != nil {
		entry.WithError(err).Error("kafka send failed")
		return fmt.Errorf("send to %s: %w", topic, err)
	}

	entry.WithFields(log.Fields{"partition": partition, "offset": offset}).Debug("kafka message sent")
	return nil
}

// recordHeaders превращает map в заголовки, упорядоченные по ключу.
func recordHeaders(headers map[string]string) []sarama.RecordHeader {
	if len(headers) == 0 {
		return nil
	}
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]sarama.RecordHeader, len(keys))
	for i, key := range keys {
		out[i] = sarama.RecordHeader{Key: []byte(key), Value: []byte(headers[key])}
	}
	return out
}

// Close дожидается отправки буферизованных сообщений и закрывает соединения.
func (p *Producer) Close() error {
	if p == nil || p.sync == nil {
		return nil
	}
	if err := p.sync.Close(); err != nil {
		return fmt.Errorf("close kafka producer: %w", err)
	}
	return nil
}
