package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AutoVitrine/AutoVitrine/config"
	"github.com/AutoVitrine/AutoVitrine/internal/broker/kafka"
)

func main() {
	cfg, err := config.LoadConfig(os.Getenv("configPath"))
	if err != nil {
		panic(fmt.Sprintf("failed to load config, %v", err))
	}

	topic := cfg.Kafka.ContactSubmittedTopicName
	if topic == "" {
		topic = "contact.submitted"
	}
	group := cfg.Catalog.NotifierKafkaConsumerGroup
	if group == "" {
		group = "contact-notifier"
	}
	httpAddr := cfg.Catalog.NotifierHTTPAddr
	if httpAddr == "" {
		httpAddr = ":8082"
	}

	brokers := []string{fmt.Sprintf("%s:%d", cfg.Kafka.Host, cfg.Kafka.Port)}
	consumer := kafka.NewConsumer(brokers, topic, group)
	defer func() { _ = consumer.Close() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	n := newNotifier()

	httpErr := make(chan error, 1)
	go func() {
		httpErr <- runNotifierHTTPServer(ctx, notifierHTTPOpts{httpAddr: httpAddr, notifier: n})
	}()

	if err := runContactNotifier(ctx, consumer, n, topic, group); err != nil && err != context.Canceled {
		panic(err)
	}
	<-httpErr
}
