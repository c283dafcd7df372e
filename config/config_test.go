package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
database:
  host: "localhost"
  port: 5432
  username: "u"
  password: "p"
  name: "db"
kafka:
  host: "localhost"
  port: 9092
  contact_submitted_topic_name: "contact.submitted"
redis:
  host: "localhost"
  port: 6379
catalog:
  http_addr: ":8080"
  detail_cache_ttl_seconds: 600
  contact_rate_limit_per_minute: 5
  notifier_http_addr: ":8082"
  notifier_kafka_consumer_group: "contact-notifier"
`), 0o600))

	cfg, err := LoadConfig(p)
	require.NoError(t, err)
	require.Equal(t, "u", cfg.Database.Username)
	require.Equal(t, "contact.submitted", cfg.Kafka.ContactSubmittedTopicName)
	require.Equal(t, 6379, cfg.Redis.Port)
	require.Equal(t, ":8080", cfg.Catalog.HTTPAddr)
	require.Equal(t, 5, cfg.Catalog.ContactRateLimitPerMinute)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
