package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"famtree/internal/config"
	"famtree/internal/pkg/log"
	"famtree/internal/repository"
	th "famtree/internal/transport/http"
	"famtree/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Error.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := repository.Open(ctx, cfg)
	if err != nil {
		log.Error.Fatalf("db: %v", err)
	}
	defer closeStore()
	if err := store.Migrate(ctx); err != nil {
		log.Error.Fatalf("migrate: %v", err)
	}

	uc := usecase.NewFamilyUC(store)
	h := th.NewHandler(uc, cfg.Canvas())
	r := th.NewRouter(h, cfg.CORSAllow)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info.Printf("listening on %s driver=%s", srv.Addr, cfg.DBDriver)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error.Println(err)
		os.Exit(1)
	}
	log.Info.Printf("shutdown complete")
}
