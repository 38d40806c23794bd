package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/lngate/lnurlpay/internal/entity"
)

type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

type InvoiceEvent struct {
	Type       string    `json:"type"`
	InvoiceID  string    `json:"invoiceId"`
	Method     string    `json:"method"`
	AmountMsat int64     `json:"amountMsat,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func (p *Producer) SendInvoiceIssued(ctx context.Context, invoiceID string, id entity.PaymentMethodID, amount entity.LightMoney) {
	p.send(ctx, InvoiceEvent{
		Type:       "invoice.issued",
		InvoiceID:  invoiceID,
		Method:     id.String(),
		AmountMsat: amount.MilliSatoshis(),
		OccurredAt: time.Now(),
	})
}

func (p *Producer) SendInvoiceSettled(ctx context.Context, invoiceID string, id entity.PaymentMethodID) {
	p.send(ctx, InvoiceEvent{
		Type:       "invoice.settled",
		InvoiceID:  invoiceID,
		Method:     id.String(),
		OccurredAt: time.Now(),
	})
}

func (p *Producer) send(ctx context.Context, event InvoiceEvent) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(fmt.Sprintf("%s:%s", event.InvoiceID, event.Method)),
		Value: b,
		Topic: p.topic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
