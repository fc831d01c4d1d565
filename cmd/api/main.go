package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/helpershop/helpershop/internal/catalog"
	"github.com/helpershop/helpershop/internal/config"
	"github.com/helpershop/helpershop/internal/httpx"
	"github.com/helpershop/helpershop/internal/ids"
	"github.com/helpershop/helpershop/internal/orders"
	"github.com/helpershop/helpershop/internal/picker"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().
		Timestamp().Str("service", cfg.ServiceName).Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Shared state for the life of the process; nothing survives restart.
	gen := ids.UUID{}
	store := catalog.NewStore(gen)
	orderLog := orders.NewLog()

	// TODO: swap the stub for a device-backed picker once a capture
	// integration exists; until then intake requires an explicit image_uri.
	imagePicker := picker.Stub{Result: picker.Result{Canceled: true}}

	// Advisory only; a denial is logged and nothing is gated on it.
	picker.EnsureAll(ctx, picker.StaticPermissions{
		picker.CapabilityStorageRead: true,
		picker.CapabilityCamera:      true,
	}, log, picker.CapabilityStorageRead, picker.CapabilityCamera)

	router := httpx.NewRouter()
	api := &httpx.API{
		Catalog: store,
		Log:     orderLog,
		IDs:     gen,
		Picker:  imagePicker,
		Logger:  log,
	}
	api.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("HTTP listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
}
