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
	"github.com/t21arenapark/painel/internal/logger"
	"github.com/t21arenapark/painel/internal/servidor"
)

const ociosidadeSessao = 30 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Erro ao carregar configuração:", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Configuração inválida:", err)
	}
	logger.Init(cfg.Environment)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	painel := servidor.New(cfg)
	painel.Sessoes.IniciarLimpeza(ctx, 5*time.Minute, ociosidadeSessao)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      painel,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("painel rodando", "port", cfg.Port, "api_url", cfg.APIURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("falha ao iniciar servidor", "error", err)
			os.Exit(1)
		}
	}()

	aguardarDesligamento(server)
}

func aguardarDesligamento(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	slog.Info("sinal de desligamento recebido")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("servidor forçado a parar", "error", err)
		os.Exit(1)
	}
	slog.Info("servidor parado")
}
