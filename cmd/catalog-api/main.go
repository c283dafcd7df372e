package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AutoVitrine/AutoVitrine/config"
	"github.com/AutoVitrine/AutoVitrine/internal/broker/kafka"
	"github.com/AutoVitrine/AutoVitrine/internal/cache"
	"github.com/AutoVitrine/AutoVitrine/internal/cache/rediscache"
	"github.com/AutoVitrine/AutoVitrine/internal/services/contacts"
	"github.com/AutoVitrine/AutoVitrine/internal/services/vehicles"
	"github.com/AutoVitrine/AutoVitrine/internal/storage/memcontact"
	"github.com/AutoVitrine/AutoVitrine/internal/storage/memvehicle"
	"github.com/AutoVitrine/AutoVitrine/internal/storage/pgcontact"
)

func main() {
	cfg, err := config.LoadConfig(os.Getenv("configPath"))
	if err != nil {
		panic(fmt.Sprintf("failed to load config, %v", err))
	}

	httpAddr := cfg.Catalog.HTTPAddr
	if httpAddr == "" {
		httpAddr = ":8080"
	}
	detailTTL := time.Duration(cfg.Catalog.DetailCacheTTLSeconds) * time.Second
	if detailTTL <= 0 {
		detailTTL = 10 * time.Minute
	}
	rlPerMin := int64(cfg.Catalog.ContactRateLimitPerMinute)
	if rlPerMin <= 0 {
		rlPerMin = 5
	}
	topic := cfg.Kafka.ContactSubmittedTopicName
	if topic == "" {
		topic = "contact.submitted"
	}

	var (
		contactRepo contacts.Repository
		closeDB     func()
	)
	if cfg.Database.Host != "" {
		sslMode := cfg.Database.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		connString := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
			cfg.Database.Username, cfg.Database.Password, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName, sslMode)
		st, err := pgcontact.New(connString)
		if err != nil {
			panic(err)
		}
		contactRepo = st
		closeDB = st.Close
	} else {
		contactRepo = memcontact.New()
	}
	if closeDB != nil {
		defer closeDB()
	}

	var detailCache cache.BytesCache
	contactSvc := contacts.New(contactRepo)
	if cfg.Redis.Host != "" {
		redisAddr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
		detailCache = rediscache.New(redisAddr)
		contactSvc = contactSvc.WithRateLimiter(rediscache.NewRateLimiter(redisAddr), rlPerMin)
	}
	vehicleSvc := vehicles.New(memvehicle.New(), detailCache, detailTTL)

	if cfg.Kafka.Host != "" {
		brokers := []string{fmt.Sprintf("%s:%d", cfg.Kafka.Host, cfg.Kafka.Port)}
		contactSvc = contactSvc.WithProducer(kafka.NewProducer(brokers), topic)
	}

	swaggerPath := os.Getenv("swaggerPath")
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := runCatalogAPI(ctx, catalogAPIOpts{
		httpAddr:    httpAddr,
		swaggerPath: swaggerPath,
	}, vehicleSvc, contactSvc); err != nil && err != context.Canceled {
		panic(err)
	}
}
