package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreBackendMemory   = "memory"
	StoreBackendPostgres = "postgres"

	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	MigrationsPath     string
	JWTSecret          string
	JWTIssuer          string
	RateLimit          string // ulule/limiter format, e.g. "10-M"
	APIRateLimit       string // per-IP limit for the whole API group
	CORSAllowedOrigins []string

	StoreBackend          string
	SeedFile              string
	MemoryStoreQuotaBytes int

	AccountCodes domain.AccountCodes
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	return FromViper(v)
}

// FromViper builds a Config from v after applying defaults.
func FromViper(v *viper.Viper) (*Config, error) {
	codes := domain.DefaultAccountCodes()

	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "pos-ledger")
	v.SetDefault("RATE_LIMIT", "10-M")
	v.SetDefault("API_RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("STORE_BACKEND", StoreBackendMemory)
	v.SetDefault("SEED_FILE", "")
	v.SetDefault("MEMORY_STORE_QUOTA_BYTES", 0)
	v.SetDefault("ACCOUNT_CODE_CASH", codes.Cash)
	v.SetDefault("ACCOUNT_CODE_MEMBER_RECEIVABLE", codes.MemberReceivable)
	v.SetDefault("ACCOUNT_CODE_INVENTORY", codes.Inventory)
	v.SetDefault("ACCOUNT_CODE_REVENUE", codes.Revenue)
	v.SetDefault("ACCOUNT_CODE_COST_OF_GOODS", codes.CostOfGoods)

	cfg := &Config{
		DatabaseURL:           v.GetString("PGSQL_URL"),
		Port:                  v.GetString("PORT"),
		IsProduction:          v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:         v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:        v.GetString("MIGRATIONS_PATH"),
		JWTSecret:             v.GetString("JWT_SECRET"),
		JWTIssuer:             v.GetString("JWT_ISSUER"),
		RateLimit:             v.GetString("RATE_LIMIT"),
		APIRateLimit:          v.GetString("API_RATE_LIMIT"),
		CORSAllowedOrigins:    splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		StoreBackend:          strings.ToLower(strings.TrimSpace(v.GetString("STORE_BACKEND"))),
		SeedFile:              v.GetString("SEED_FILE"),
		MemoryStoreQuotaBytes: v.GetInt("MEMORY_STORE_QUOTA_BYTES"),
		AccountCodes: domain.AccountCodes{
			Cash:             v.GetString("ACCOUNT_CODE_CASH"),
			MemberReceivable: v.GetString("ACCOUNT_CODE_MEMBER_RECEIVABLE"),
			Inventory:        v.GetString("ACCOUNT_CODE_INVENTORY"),
			Revenue:          v.GetString("ACCOUNT_CODE_REVENUE"),
			CostOfGoods:      v.GetString("ACCOUNT_CODE_COST_OF_GOODS"),
		},
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StoreBackend {
	case StoreBackendMemory:
	case StoreBackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORE_BACKEND is %s", StoreBackendPostgres)
		}
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q (want %s or %s)", cfg.StoreBackend, StoreBackendMemory, StoreBackendPostgres)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.MemoryStoreQuotaBytes < 0 {
		return nil, fmt.Errorf("MEMORY_STORE_QUOTA_BYTES must not be negative, got %d", cfg.MemoryStoreQuotaBytes)
	}

	for name, code := range map[string]string{
		"ACCOUNT_CODE_CASH":              cfg.AccountCodes.Cash,
		"ACCOUNT_CODE_MEMBER_RECEIVABLE": cfg.AccountCodes.MemberReceivable,
		"ACCOUNT_CODE_INVENTORY":         cfg.AccountCodes.Inventory,
		"ACCOUNT_CODE_REVENUE":           cfg.AccountCodes.Revenue,
		"ACCOUNT_CODE_COST_OF_GOODS":     cfg.AccountCodes.CostOfGoods,
	} {
		if strings.TrimSpace(code) == "" {
			return nil, fmt.Errorf("%s must not be empty", name)
		}
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
