package config

import (
	"testing"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreBackendMemory, cfg.StoreBackend)
	assert.Equal(t, "10-M", cfg.RateLimit)
	assert.Equal(t, "300-M", cfg.APIRateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, domain.DefaultAccountCodes(), cfg.AccountCodes)
	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
	assert.False(t, cfg.IsProduction)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("PORT", "9090")
	v.Set("STORE_BACKEND", "Postgres")
	v.Set("PGSQL_URL", "postgres://localhost/pos")
	v.Set("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	v.Set("ACCOUNT_CODE_CASH", "1-1100")
	v.Set("MEMORY_STORE_QUOTA_BYTES", 5242880)
	v.Set("JWT_SECRET", "s3cret")

	cfg, err := FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, StoreBackendPostgres, cfg.StoreBackend)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "1-1100", cfg.AccountCodes.Cash)
	assert.Equal(t, domain.DefaultAccountCodes().Revenue, cfg.AccountCodes.Revenue)
	assert.Equal(t, 5242880, cfg.MemoryStoreQuotaBytes)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestFromViper_Errors(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]any
		want   string
	}{
		{name: "unknown backend", values: map[string]any{"STORE_BACKEND": "redis"}, want: "unknown STORE_BACKEND"},
		{name: "postgres without url", values: map[string]any{"STORE_BACKEND": "postgres"}, want: "PGSQL_URL is required"},
		{name: "default secret in production", values: map[string]any{"IS_PRODUCTION": true}, want: "JWT_SECRET must be set"},
		{name: "negative quota", values: map[string]any{"MEMORY_STORE_QUOTA_BYTES": -1}, want: "must not be negative"},
		{name: "blank account code", values: map[string]any{"ACCOUNT_CODE_REVENUE": " "}, want: "ACCOUNT_CODE_REVENUE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range tt.values {
				v.Set(k, val)
			}
			_, err := FromViper(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
