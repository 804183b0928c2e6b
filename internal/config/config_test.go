package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("POSTGRES_USER", "postgres")
	t.Setenv("POSTGRES_PASSWORD", "postgres")
}

func TestConfig_Defaults(t *testing.T) {
	setRequired(t)

	cfg := New()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, 2*time.Hour, cfg.Cache.DraftTTL)
	assert.Equal(t, "SHOE", cfg.Booking.IDPrefix)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{
			name: "redis cache with address",
			env:  map[string]string{"CACHE_DRIVER": "redis", "REDIS_ADDR": "localhost:6379"},
		},
		{
			name:    "redis cache without address",
			env:     map[string]string{"CACHE_DRIVER": "redis"},
			wantErr: true,
		},
		{
			name:    "unknown cache driver",
			env:     map[string]string{"CACHE_DRIVER": "memcached"},
			wantErr: true,
		},
		{
			name:    "unknown env",
			env:     map[string]string{"ENV": "dev"},
			wantErr: true,
		},
		{
			name: "kafka disabled needs no topics",
			env:  map[string]string{"KAFKA_ENABLED": "false", "KAFKA_INTAKE_TOPIC": ""},
		},
		{
			name:    "kafka enabled needs intake topic",
			env:     map[string]string{"KAFKA_INTAKE_TOPIC": ""},
			wantErr: true,
		},
		{
			name:    "zero draft ttl",
			env:     map[string]string{"DRAFT_TTL": "0s"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			err := New().Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
