package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/t21arenapark/painel/internal/config"
	"github.com/t21arenapark/painel/internal/emulador"
	"github.com/t21arenapark/painel/internal/logger"
)

func main() {
	cfg, err := config.LoadEmulador()
	if err != nil {
		log.Fatal("Erro ao carregar configuração:", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Configuração inválida:", err)
	}
	logger.Init(cfg.Environment)

	db, err := emulador.Conectar(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := emulador.Migrar(db); err != nil {
		log.Fatal(err)
	}
	if cfg.Seed {
		if err := emulador.Seed(db, time.Now()); err != nil {
			log.Fatal("Erro no seed:", err)
		}
	}

	h := emulador.NewHandler(db, emulador.NewEmissor(cfg.JWTSecret))
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h.Rotas(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		slog.Info("API de desenvolvimento rodando", "port", cfg.Port, "driver", cfg.DBDriver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("falha ao iniciar servidor", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("servidor forçado a parar", "error", err)
	}
}
