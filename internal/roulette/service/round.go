package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/radieske/roulette-platform-poc/internal/roulette/engine"
	"github.com/radieske/roulette-platform-poc/internal/roulette/ledger"
	"github.com/radieske/roulette-platform-poc/pkg/contracts/events"
)

// PlayInput é a tupla crua entregue pelo adapter (já desserializada,
// ainda não validada).
type PlayInput struct {
	UserID     string
	StakeCents int64
	BetType    string
	BetValue   string
}

// ResolvedBet é o registro imutável de uma aposta liquidada.
type ResolvedBet struct {
	BillNo       string
	Spec         engine.BetSpec
	Outcome      engine.Outcome
	Won          bool
	PayoutCents  int64 // ganho líquido; 0 em caso de perda
	BalanceCents int64 // saldo da conta após a liquidação
}

// BetResult é o resultado individual de uma entrada do multibet:
// aposta liquidada ou erro tipado daquela entrada.
type BetResult struct {
	Bet *ResolvedBet
	Err error
}

// Drawer sorteia o bolso vencedor de uma rodada.
// *engine.Wheel é a implementação de produção; a interface existe para
// permitir sorteios determinísticos em teste.
type Drawer interface {
	Draw() engine.Outcome
}

// Publisher publica eventos de aposta liquidada (best effort)
type Publisher interface {
	PublishBetResolved(ctx context.Context, e events.BetResolved) error
}

// Broadcaster divulga o número sorteado de cada rodada (best effort)
type Broadcaster interface {
	PublishOutcome(ctx context.Context, e events.OutcomeDrawn) error
}

// Round orquestra uma rodada: sorteio → por aposta: validação → débito →
// avaliação → crédito condicional → montagem do registro.
// Eventos e métricas ficam fora do caminho do dinheiro: falhas ali são
// logadas e nunca propagadas ao apostador.
type Round struct {
	log     *zap.Logger
	wheel   Drawer
	ledger  ledger.Ledger
	publ    Publisher
	bcast   Broadcaster
	metrics *Metrics
}

// NewRound instancia o orquestrador. publ, bcast e metrics podem ser nil.
func NewRound(log *zap.Logger, wheel Drawer, lgr ledger.Ledger, publ Publisher, bcast Broadcaster, metrics *Metrics) *Round {
	if log == nil {
		log = zap.NewNop()
	}
	return &Round{log: log, wheel: wheel, ledger: lgr, publ: publ, bcast: bcast, metrics: metrics}
}

// PlayOne valida e liquida uma única aposta contra um sorteio novo.
// Falhas possíveis: engine.ErrInvalidBet, ledger.ErrInsufficientFunds,
// ledger.ErrNotFound; qualquer outro erro é falha interna.
func (r *Round) PlayOne(ctx context.Context, in PlayInput) (*ResolvedBet, error) {
	start := time.Now()
	defer r.metrics.observeRound(start)

	spec, err := engine.ParseBet(in.UserID, in.StakeCents, in.BetType, in.BetValue)
	if err != nil {
		// bet_type cru do cliente nunca vira label (cardinalidade ilimitada)
		r.metrics.countBet("rejected", "invalid")
		return nil, err
	}

	outcome := r.wheel.Draw()
	resolved, err := r.settle(ctx, outcome, spec)
	if err != nil {
		return nil, err
	}

	r.broadcastOutcome(ctx, outcome, 1)
	return resolved, nil
}

// PlayBatch valida TODAS as entradas antes de mover qualquer dinheiro:
// uma entrada inválida rejeita o lote inteiro sem efeito colateral.
// Depois sorteia UMA vez e liquida cada aposta de forma independente contra
// o mesmo resultado; uma falha de saldo em uma entrada não aborta as demais
// nem desfaz as já liquidadas — ela vira o erro tipado daquela entrada.
func (r *Round) PlayBatch(ctx context.Context, ins []PlayInput) (engine.Outcome, []BetResult, error) {
	start := time.Now()
	defer r.metrics.observeRound(start)

	if len(ins) == 0 {
		return 0, nil, fmt.Errorf("%w: empty batch", engine.ErrInvalidBet)
	}

	specs := make([]engine.BetSpec, 0, len(ins))
	for i, in := range ins {
		spec, err := engine.ParseBet(in.UserID, in.StakeCents, in.BetType, in.BetValue)
		if err != nil {
			r.metrics.countBet("rejected", "invalid")
			return 0, nil, fmt.Errorf("bet %d: %w", i, err)
		}
		specs = append(specs, spec)
	}

	// um único sorteio para todas as apostas do lote
	outcome := r.wheel.Draw()

	results := make([]BetResult, 0, len(specs))
	for _, spec := range specs {
		resolved, err := r.settle(ctx, outcome, spec)
		if err != nil {
			results = append(results, BetResult{Err: err})
			continue
		}
		results = append(results, BetResult{Bet: resolved})
	}

	r.broadcastOutcome(ctx, outcome, len(results))
	return outcome, results, nil
}

// settle executa débito → avaliação → crédito condicional para uma aposta
// já validada e monta o registro final
func (r *Round) settle(ctx context.Context, outcome engine.Outcome, spec engine.BetSpec) (*ResolvedBet, error) {
	billNo := uuid.NewString()

	balance, err := r.ledger.Debit(ctx, spec.UserID, spec.AmountCents, "bet:"+billNo)
	if err != nil {
		r.metrics.countBet("rejected", string(spec.Family))
		return nil, err
	}

	won, payout := engine.Evaluate(spec, outcome)
	if won {
		// devolve a stake e paga o ganho líquido em um único crédito
		balance, err = r.ledger.Credit(ctx, spec.UserID, spec.AmountCents+payout, "payout:"+billNo)
		if err != nil {
			// dinheiro já debitado: não há retry automático, o caso sobe
			// para compensação explícita
			r.log.Error("credit after win failed",
				zap.String("billNo", billNo),
				zap.String("userId", spec.UserID),
				zap.Error(err),
			)
			return nil, fmt.Errorf("credit payout for bill %s: %w", billNo, err)
		}
	}

	resolved := &ResolvedBet{
		BillNo:       billNo,
		Spec:         spec,
		Outcome:      outcome,
		Won:          won,
		PayoutCents:  payout,
		BalanceCents: balance,
	}

	result := "lost"
	if won {
		result = "won"
	}
	r.metrics.countBet(result, string(spec.Family))
	r.metrics.countPayout(payout)

	r.publishResolved(ctx, resolved)
	return resolved, nil
}

func (r *Round) publishResolved(ctx context.Context, b *ResolvedBet) {
	if r.publ == nil {
		return
	}
	err := r.publ.PublishBetResolved(ctx, events.BetResolved{
		BillNo:        b.BillNo,
		UserID:        b.Spec.UserID,
		BetType:       string(b.Spec.Family),
		BetValue:      b.Spec.Value,
		StakeCents:    b.Spec.AmountCents,
		Won:           b.Won,
		PayoutCents:   b.PayoutCents,
		BalanceCents:  b.BalanceCents,
		WinningNumber: b.Outcome.String(),
	})
	if err != nil {
		r.log.Warn("publish bet_resolved", zap.String("billNo", b.BillNo), zap.Error(err))
	}
}

func (r *Round) broadcastOutcome(ctx context.Context, outcome engine.Outcome, bets int) {
	if r.bcast == nil {
		return
	}
	err := r.bcast.PublishOutcome(ctx, events.OutcomeDrawn{
		WinningNumber: outcome.String(),
		Color:         outcome.Color(),
		Bets:          bets,
		TsUnixMs:      time.Now().UnixMilli(),
	})
	if err != nil {
		r.log.Warn("broadcast outcome", zap.String("outcome", outcome.String()), zap.Error(err))
	}
}
