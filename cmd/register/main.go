// Command register performs one-shot bot registration against a Bitrix24
// portal via imbot.register. The event handler URLs are derived from the
// configured public handler base URL.
//
// Usage:
//
//	register <access_token>
//
// The token may also be supplied via BITRIX_AUTH_TOKEN.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cultiv-ai/b24bridge/internal/bitrix"
	"github.com/cultiv-ai/b24bridge/internal/config"
	"github.com/cultiv-ai/b24bridge/internal/logger"
)

const registerTimeout = 30 * time.Second

func main() {
	logger.InitLogger(logger.DefaultConfig())

	token := tokenFromArgs()
	if token == "" {
		fmt.Fprintln(os.Stderr, "Usage: register <access_token>")
		fmt.Fprintln(os.Stderr, "The token may also be supplied via BITRIX_AUTH_TOKEN.")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	if cfg.EventHandlerURL == "" {
		slog.Error("BITRIX_EVENT_HANDLER is required for registration")
		os.Exit(1)
	}

	client := bitrix.NewClient(bitrix.Config{
		Domain:             cfg.BitrixDomain,
		Timeout:            registerTimeout,
		InsecureSkipVerify: cfg.TLSInsecureSkipVerify,
	})

	req := bitrix.NewRegisterRequest(cfg.BotCode, cfg.EventHandlerURL)

	ctx, cancel := context.WithTimeout(context.Background(), registerTimeout)
	defer cancel()

	result, err := client.RegisterBot(ctx, token, req)
	if err != nil {
		slog.Error("Registration failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Bot registered: %s\n", string(result))
}

func tokenFromArgs() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return os.Getenv("BITRIX_AUTH_TOKEN")
}
