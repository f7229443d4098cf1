package config_test

import (
	"mallbook/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()

	t.Setenv("JWT_ACCESS_SECRET", "access")
	t.Setenv("JWT_REFRESH_SECRET", "refresh")
	t.Setenv("DB_POSTGRES_WRITE_NAME", "mallbook")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "Asia/Jakarta", cfg.App.Timezone)
	assert.Equal(t, 15, cfg.JWT.AccessExpireMin)
	assert.Equal(t, "5432", cfg.DB.Postgres.Write.Port)
	assert.Equal(t, "disable", cfg.DB.Postgres.Write.SSLMode)
	assert.Equal(t, "6379", cfg.Cache.Redis.Primary.Port)
	assert.Equal(t, "mallbook.booking", cfg.Booking.EventTopic)
	assert.Equal(t, 300, cfg.Booking.RequesterCacheTTLSec)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("APP_RATE_LIMITER_MAX_REQUESTS", "5")
	t.Setenv("DB_POSTGRES_READ_HOST", "replica")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 5, cfg.App.RateLimiter.MaxRequests)
	assert.Equal(t, "replica", cfg.DB.Postgres.Read.Host)
}

func TestLoadRejectsBadValues(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_ACCESS_EXPIRE_MIN", "fifteen")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *config.Config)
		wantErr bool
	}{
		{name: "complete", mutate: func(*config.Config) {}},
		{name: "missing access secret", mutate: func(cfg *config.Config) { cfg.JWT.AccessSecret = "" }, wantErr: true},
		{name: "shared secret", mutate: func(cfg *config.Config) { cfg.JWT.RefreshSecret = cfg.JWT.AccessSecret }, wantErr: true},
		{name: "missing database", mutate: func(cfg *config.Config) { cfg.DB.Postgres.Write.Name = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.JWT.AccessSecret = "access"
			cfg.JWT.RefreshSecret = "refresh"
			cfg.DB.Postgres.Write.Name = "mallbook"
			tt.mutate(cfg)

			if tt.wantErr {
				assert.Error(t, cfg.Validate())

				return
			}

			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestDatabaseName(t *testing.T) {
	cfg := &config.Config{}
	node := config.PostgresNode{Name: "mallbook"}

	assert.Equal(t, "mallbook", cfg.DatabaseName(node))

	cfg.DB.Postgres.Prefix = "staging_"
	assert.Equal(t, "staging_mallbook", cfg.DatabaseName(node))
}
