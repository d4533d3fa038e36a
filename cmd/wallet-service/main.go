package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/radieske/roulette-platform-poc/internal/roulette/ledger"
	"github.com/radieske/roulette-platform-poc/internal/shared/config"
	"github.com/radieske/roulette-platform-poc/internal/shared/db"
	"github.com/radieske/roulette-platform-poc/internal/shared/logger"
	"github.com/radieske/roulette-platform-poc/internal/shared/metrics"
	whttp "github.com/radieske/roulette-platform-poc/internal/wallet/http"
)

func main() {
	cfg := config.Load()

	// Inicializa logger estruturado
	log, err := logger.New("wallet-service", cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("starting service")

	// Conexão com Postgres para operações de carteira
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pg.Close()

	if err := ledger.Bootstrap(context.Background(), pg); err != nil {
		log.Fatal("ledger bootstrap", zap.Error(err))
	}

	// Instancia repositório e servidor HTTP da wallet
	repo := ledger.NewPostgres(pg)
	api := whttp.NewServer(log, repo)

	// Servidor de métricas e health check
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return pg.PingContext(ctx)
	})

	// Servidor principal da API de wallet
	addr := ":" + cfg.HTTPPort
	log.Info("api listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, api.Router()); err != nil && err != http.ErrServerClosed {
		log.Fatal("api srv", zap.Error(err))
	}
}
