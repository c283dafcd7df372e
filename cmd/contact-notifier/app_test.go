package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/AutoVitrine/AutoVitrine/internal/broker/messages"
	"github.com/stretchr/testify/require"
)

type fakeConsumer struct {
	events [][]byte
}

func (c *fakeConsumer) Consume(ctx context.Context, handler func(key, value []byte) error) error {
	for _, e := range c.events {
		if err := handler(nil, e); err != nil {
			return err
		}
	}
	<-ctx.Done()
	return ctx.Err()
}

func TestRunContactNotifier(t *testing.T) {
	ev, err := json.Marshal(messages.ContactSubmitted{
		IDContato:     "contact_abc",
		Protocolo:     "2026090100001",
		IDVeiculo:     "1",
		ModeloVeiculo: "Civic",
		Assunto:       "Financiamento",
		Financiamento: true,
		DataEnvio:     time.Now().UTC(),
	})
	require.NoError(t, err)

	n := newNotifier()
	cons := &fakeConsumer{events: [][]byte{ev, []byte("not json")}}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- runContactNotifier(ctx, cons, n, "contact.submitted", "contact-notifier")
	}()

	require.Eventually(t, func() bool {
		return n.Stats()["processed"] == 1 && n.Stats()["malformed"] == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	require.ErrorIs(t, <-errCh, context.Canceled)
}

func TestNotifierHTTPServer(t *testing.T) {
	n := newNotifier()
	n.processed.Add(3)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addrCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		errCh <- runNotifierHTTPServer(ctx, notifierHTTPOpts{
			httpAddr: "127.0.0.1:0",
			onListen: func(addr string) { addrCh <- addr },
			notifier: n,
		})
	}()

	base := "http://" + <-addrCh

	resp, err := http.Get(base + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	resp, err = http.Get(base + "/stats")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)
	require.Contains(t, string(body), `"processed":3`)

	cancel()

	select {
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting server to stop")
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
	}
}
