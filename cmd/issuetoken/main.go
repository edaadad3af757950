// Command issuetoken prints a bearer token for a dashboard client, signed with
// the configured DELIVERY_AUTH_SECRET.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jengzang/delivery-insights-go/internal/api"
	"github.com/jengzang/delivery-insights-go/internal/config"
)

func main() {
	client := flag.String("client", "dashboard", "client name stored in the token subject")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to DELIVERY_AUTH_TOKEN_TTL)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.Auth.Secret == "" {
		slog.Error("DELIVERY_AUTH_SECRET is not set")
		os.Exit(1)
	}

	tokens := api.TokenService(cfg.Auth)
	if *ttl > 0 {
		tokens.Duration = *ttl
	}

	token, exp, err := tokens.Sign(*client)
	if err != nil {
		slog.Error("failed to sign token", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires %s\n", exp.Format(time.RFC3339))
}
