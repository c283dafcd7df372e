package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"

	"github.com/AutoVitrine/AutoVitrine/internal/broker/messages"
)

type kafkaConsumer interface {
	Consume(ctx context.Context, handler func(key, value []byte) error) error
}

// notifier turns contact.submitted events into staff notifications. The
// delivery channel is the structured log; an SMTP or chat hook slots in
// behind handle without touching the consume loop.
type notifier struct {
	processed atomic.Uint64
	malformed atomic.Uint64
}

func newNotifier() *notifier {
	return &notifier{}
}

func (n *notifier) handle(_ []byte, value []byte) error {
	var m messages.ContactSubmitted
	if err := json.Unmarshal(value, &m); err != nil {
		// A malformed event is counted and dropped; retrying cannot fix it.
		n.malformed.Add(1)
		slog.Warn("malformed contact.submitted event", "err", err)
		return nil
	}

	slog.Info("new contact submission",
		"idContato", m.IDContato,
		"protocolo", m.Protocolo,
		"idVeiculo", m.IDVeiculo,
		"modeloVeiculo", m.ModeloVeiculo,
		"assunto", m.Assunto,
		"financiamento", m.Financiamento,
		"dataEnvio", m.DataEnvio,
	)
	n.processed.Add(1)
	return nil
}

func (n *notifier) Stats() map[string]uint64 {
	return map[string]uint64{
		"processed": n.processed.Load(),
		"malformed": n.malformed.Load(),
	}
}

func runContactNotifier(ctx context.Context, consumer kafkaConsumer, n *notifier, topic, group string) error {
	slog.Info("kafka consumer started", "topic", topic, "group", group)
	return consumer.Consume(ctx, n.handle)
}
