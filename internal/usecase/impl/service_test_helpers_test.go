package impl

import (
	"io"
	"log/slog"
	"time"

	"academy/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Payment: &config.PaymentConfig{
			DefaultCurrency: "usd",
			RequestTimeout:  5 * time.Second,
		},
	}
}
