package main

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/roulette-platform-poc/internal/roulette/engine"
	rhttp "github.com/radieske/roulette-platform-poc/internal/roulette/http"
	"github.com/radieske/roulette-platform-poc/internal/roulette/ledger"
	"github.com/radieske/roulette-platform-poc/internal/roulette/producer"
	"github.com/radieske/roulette-platform-poc/internal/roulette/pubsub"
	"github.com/radieske/roulette-platform-poc/internal/roulette/service"
	"github.com/radieske/roulette-platform-poc/internal/roulette/ws"
	"github.com/radieske/roulette-platform-poc/internal/shared/cache"
	"github.com/radieske/roulette-platform-poc/internal/shared/config"
	"github.com/radieske/roulette-platform-poc/internal/shared/db"
	skafka "github.com/radieske/roulette-platform-poc/internal/shared/kafka"
	"github.com/radieske/roulette-platform-poc/internal/shared/logger"
	"github.com/radieske/roulette-platform-poc/internal/shared/metrics"
)

func main() {
	cfg := config.Load()

	// Inicializa logger estruturado
	log, err := logger.New("roulette-service", cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("starting service")

	// Conexão com Postgres para o ledger de saldos
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pg.Close()

	if err := ledger.Bootstrap(context.Background(), pg); err != nil {
		log.Fatal("ledger bootstrap", zap.Error(err))
	}
	pgLedger := ledger.NewPostgres(pg)

	// Roda: semeável apenas em ambiente local (WHEEL_SEED)
	var wheel *engine.Wheel
	if cfg.WheelSeed != 0 {
		log.Warn("wheel running with fixed seed; draws are deterministic", zap.Uint64("seed", cfg.WheelSeed))
		wheel = engine.NewWheelSeeded(cfg.WheelSeed)
	} else {
		wheel = engine.NewWheel()
	}

	// Kafka producer: eventos bet_resolved para o worker de auditoria
	writer := skafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetResolved)
	defer writer.Close()
	publ := producer.NewKafkaPublisher(writer, cfg.TopicBetResolved)

	// Redis: broadcast dos sorteios para o painel (opcional; o motor
	// funciona sem ele)
	var bcast service.Broadcaster
	hub := ws.NewHub(func(*http.Request) bool { return true })
	rdb, err := cache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Warn("redis unavailable, outcome broadcast disabled", zap.Error(err))
	} else {
		defer rdb.Close()
		bcast = pubsub.NewRedisBroadcaster(rdb, cfg.RedisPubSubChannel)
		ws.StartRedisSubscriber(context.Background(), log, rdb, cfg.RedisPubSubChannel, hub)
	}

	// Orquestrador de rodadas + métricas
	m := service.NewMetrics(prometheus.DefaultRegisterer)
	round := service.NewRound(log, wheel, pgLedger, publ, bcast, m)

	// API pública + feed WebSocket do painel
	api := rhttp.NewServer(log, round)
	mux := http.NewServeMux()
	mux.Handle("/roulette/", api.Router())
	mux.HandleFunc("/roulette/ws", hub.HandleWS)

	// Servidor de métricas e health check
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return pg.PingContext(ctx)
	})

	addr := ":" + cfg.HTTPPort
	log.Info("api listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
		log.Fatal("api srv", zap.Error(err))
	}
}
