package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"deaddrop/internal/app"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	cfg := loadConfig(log)
	w := app.NewWire(cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go w.Sweeper.Run(ctx)

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           w.Server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("relay listening", zap.String("addr", cfg.Listen))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("serve", zap.Error(err))
	}
	log.Info("relay stopped")
}

// loadConfig merges defaults, an optional config file and DEADDROP_*
// environment variables.
func loadConfig(log *zap.Logger) app.Config {
	def := app.DefaultConfig()

	v := viper.New()
	v.SetDefault("listen", def.Listen)
	v.SetDefault("journalist_secret", def.JournalistSecret)
	v.SetDefault("max_messages", def.Limits.MaxMessages)
	v.SetDefault("max_participants", def.Limits.MaxParticipants)
	v.SetDefault("max_payload_bytes", def.Limits.MaxPayloadBytes)
	v.SetDefault("max_chunk_bytes", def.Limits.MaxChunkBytes)
	v.SetDefault("max_file_name_len", def.Limits.MaxFileNameLen)
	v.SetDefault("rate_limit", def.Limits.RateLimit)
	v.SetDefault("rate_window", def.Limits.RateWindow)
	v.SetDefault("retention", def.Limits.Retention)
	v.SetDefault("chunk_stale_after", def.Limits.ChunkStaleAfter)
	v.SetDefault("completed_grace", def.Limits.CompletedGrace)
	v.SetDefault("sweep_interval", def.Limits.SweepInterval)

	v.SetEnvPrefix("DEADDROP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("deaddrop")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/deaddrop")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal("read config", zap.Error(err))
		}
	} else {
		log.Info("config loaded", zap.String("file", v.ConfigFileUsed()))
	}

	cfg := def
	cfg.Listen = v.GetString("listen")
	cfg.JournalistSecret = v.GetString("journalist_secret")
	cfg.Limits.MaxMessages = v.GetInt("max_messages")
	cfg.Limits.MaxParticipants = v.GetInt("max_participants")
	cfg.Limits.MaxPayloadBytes = v.GetInt("max_payload_bytes")
	cfg.Limits.MaxChunkBytes = v.GetInt("max_chunk_bytes")
	cfg.Limits.MaxFileNameLen = v.GetInt("max_file_name_len")
	cfg.Limits.RateLimit = v.GetInt("rate_limit")
	cfg.Limits.RateWindow = v.GetDuration("rate_window")
	cfg.Limits.Retention = v.GetDuration("retention")
	cfg.Limits.ChunkStaleAfter = v.GetDuration("chunk_stale_after")
	cfg.Limits.CompletedGrace = v.GetDuration("completed_grace")
	cfg.Limits.SweepInterval = v.GetDuration("sweep_interval")
	return cfg
}
