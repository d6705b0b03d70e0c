package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
)

// Event is the broker-bound projection of a drained outbox record. Key is
// the aggregate identity (booking reference, promo code), so every event
// for one aggregate lands on the same partition in order.
type Event struct {
	ID         string
	Name       string
	Source     string
	Key        string
	OccurredAt time.Time
	Data       json.RawMessage
	Headers    map[string]string
}

// envelope wraps the event in a CloudEvents 1.0 JSON envelope. Data is
// embedded as stored; the outbox keeps payloads already encoded.
func (e Event) envelope() ([]byte, error) {
	data := e.Data
	if len(data) == 0 {
		data = json.RawMessage("{}")
	}
	return json.Marshal(map[string]any{
		"specversion":     "1.0",
		"id":              e.ID,
		"type":            e.Name + ".v1",
		"source":          e.Source,
		"time":            e.OccurredAt,
		"datacontenttype": "application/json",
		"data":            data,
	})
}

type Producer struct {
	sync sarama.SyncProducer
}

func NewProducer(brokers []string, cfg *sarama.Config) (*Producer, error) {
	if cfg == nil {
		cfg = sarama.NewConfig()
	}
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Return.Successes = true
	sync, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &Producer{sync: sync}, nil
}

func (p *Producer) PublishEvent(ctx context.Context, topic string, event Event) error {
	payload, err := event.envelope()
	if err != nil {
		return err
	}
	headers := []sarama.RecordHeader{
		{Key: []byte("content-type"), Value: []byte("application/cloudevents+json")},
	}
	for k, v := range event.Headers {
		headers = append(headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}
	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(event.Key),
		Value:   sarama.ByteEncoder(payload),
		Headers: headers,
	}
	_, _, err = p.sync.SendMessage(msg)
	return err
}

func (p *Producer) Close() error {
	if p.sync == nil {
		return nil
	}
	return p.sync.Close()
}
