package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/roulette-platform-poc/internal/roulette/ledger"
	"github.com/radieske/roulette-platform-poc/internal/shared/config"
	"github.com/radieske/roulette-platform-poc/internal/shared/db"
	"github.com/radieske/roulette-platform-poc/internal/shared/kafka"
	"github.com/radieske/roulette-platform-poc/internal/shared/logger"
	"github.com/radieske/roulette-platform-poc/internal/shared/metrics"
	ev "github.com/radieske/roulette-platform-poc/pkg/contracts/events"
)

func main() {
	cfg := config.Load()
	log, err := logger.New("settlement-audit-worker", cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Conexão com banco de dados Postgres para a trilha de auditoria
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("pg connect", zap.Error(err))
	}
	defer pg.Close()

	if err := ledger.Bootstrap(context.Background(), pg); err != nil {
		log.Fatal("ledger bootstrap", zap.Error(err))
	}

	// Kafka consumer: consome eventos bet_resolved para auditoria de liquidação
	reader := kafka.NewReader(cfg.KafkaBrokers, cfg.TopicBetResolved, "settlement-audit")
	defer reader.Close()

	// DLQ para mensagens que não puderam ser processadas
	var dlqWriter *kafkago.Writer
	if cfg.TopicBetResolvedDLQ != "" {
		dlqWriter = kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetResolvedDLQ)
		defer dlqWriter.Close()
	}

	consumed := prometheus.NewCounter(prometheus.CounterOpts{Name: "audit_messages_consumed_total", Help: "mensagens consumidas"})
	persisted := prometheus.NewCounter(prometheus.CounterOpts{Name: "audit_settlements_persisted_total", Help: "liquidações gravadas"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "audit_errors_total", Help: "erros por estágio"}, []string{"stage"})
	prometheus.MustRegister(consumed, persisted, errorsBy)

	// Servidor HTTP para métricas Prometheus e healthcheck
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return pg.PingContext(ctx)
	})

	log.Info("settlement-audit-worker started", zap.String("consume", cfg.TopicBetResolved))

	ctx := context.Background()

	// Loop principal: consome eventos do Kafka e grava a trilha de auditoria
	for {
		key, value, err := kafka.ReadNext(ctx, reader)
		if err != nil {
			log.Warn("kafka read", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}
		consumed.Inc()

		var resolved ev.BetResolved
		if jerr := json.Unmarshal(value, &resolved); jerr != nil {
			log.Error("unmarshal bet_resolved", zap.Error(jerr))
			errorsBy.WithLabelValues("unmarshal").Inc()
			if dlqWriter != nil {
				_ = kafka.WriteJSON(ctx, dlqWriter, string(key), value)
			}
			continue
		}

		if err := insertSettlement(ctx, pg, &resolved); err != nil {
			log.Error("persist settlement", zap.String("billNo", resolved.BillNo), zap.Error(err))
			errorsBy.WithLabelValues("persist").Inc()
			if dlqWriter != nil {
				_ = kafka.WriteJSON(ctx, dlqWriter, resolved.BillNo, value)
			}
			// Backoff simples para evitar flood em caso de erro
			time.Sleep(500 * time.Millisecond)
			continue
		}
		persisted.Inc()
	}
}

// insertSettlement grava a liquidação na trilha de auditoria.
// Idempotente por bill_no: reprocessar a mesma mensagem não duplica linha.
func insertSettlement(ctx context.Context, pg *sql.DB, e *ev.BetResolved) error {
	_, err := pg.ExecContext(ctx, `
		INSERT INTO bet_settlements (bill_no, user_id, bet_type, bet_value, stake_cents, won, payout_cents, balance_cents, winning_number)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (bill_no) DO NOTHING`,
		e.BillNo, e.UserID, e.BetType, e.BetValue, e.StakeCents, e.Won, e.PayoutCents, e.BalanceCents, e.WinningNumber)
	return err
}
