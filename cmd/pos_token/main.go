// Command pos_token prints a bearer token for an operator, signed with the
// server's JWT_SECRET and JWT_ISSUER.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/pos_ledger/internal/utils"
	"github.com/SscSPs/pos_ledger/pkg/config"
)

func main() {
	operator := flag.String("operator", "", "operator id recorded as deletedBy")
	ttl := flag.Duration("ttl", 8*time.Hour, "token lifetime")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	token, err := utils.GenerateOperatorJWT(*operator, cfg.JWTSecret, cfg.JWTIssuer, *ttl, time.Now())
	if err != nil {
		logger.Error("Failed to generate token", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(token)
}
