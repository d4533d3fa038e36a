package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics agrupa os contadores Prometheus do motor de roleta.
// Opcional: um Round com metrics nil simplesmente não reporta.
type Metrics struct {
	BetsResolved  *prometheus.CounterVec
	PayoutCents   prometheus.Counter
	RoundDuration prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		BetsResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roulette_bets_resolved_total",
			Help: "apostas liquidadas por resultado e família",
		}, []string{"result", "family"}),
		PayoutCents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roulette_payout_cents_total",
			Help: "total pago em ganhos líquidos (centavos)",
		}),
		RoundDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "roulette_round_duration_seconds",
			Help:    "duração da resolução de uma rodada",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.BetsResolved, m.PayoutCents, m.RoundDuration)
	return m
}

func (m *Metrics) countBet(result, family string) {
	if m == nil {
		return
	}
	m.BetsResolved.WithLabelValues(result, family).Inc()
}

func (m *Metrics) countPayout(cents int64) {
	if m == nil || cents <= 0 {
		return
	}
	m.PayoutCents.Add(float64(cents))
}

func (m *Metrics) observeRound(start time.Time) {
	if m == nil {
		return
	}
	m.RoundDuration.Observe(time.Since(start).Seconds())
}
