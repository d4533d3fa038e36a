package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/radieske/roulette-platform-poc/internal/roulette/dto"
	"github.com/radieske/roulette-platform-poc/internal/roulette/engine"
	"github.com/radieske/roulette-platform-poc/internal/roulette/ledger"
	"github.com/radieske/roulette-platform-poc/internal/roulette/service"
)

// Rounds é a interface do orquestrador consumida pelo adapter HTTP
type Rounds interface {
	PlayOne(ctx context.Context, in service.PlayInput) (*service.ResolvedBet, error)
	PlayBatch(ctx context.Context, ins []service.PlayInput) (engine.Outcome, []service.BetResult, error)
}

// Server é o adapter HTTP fino do motor de roleta: desserializa,
// delega ao orquestrador e traduz erros tipados em status HTTP.
type Server struct {
	log   *zap.Logger
	round Rounds
}

func NewServer(log *zap.Logger, round Rounds) *Server { return &Server{log: log, round: round} }

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/roulette/play", s.play)                  // POST
	mux.HandleFunc("/roulette/play-multibet", s.playMultibet) // POST
	mux.HandleFunc("/roulette/families", s.families)          // GET
	return mux
}

// play liquida uma única aposta contra um sorteio novo
func (s *Server) play(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	resolved, err := s.round.PlayOne(r.Context(), service.PlayInput{
		UserID:     req.UserID,
		StakeCents: req.StakeCents,
		BetType:    req.BetType,
		BetValue:   req.BetValue,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, toResponse(resolved))
}

// playMultibet liquida uma lista de apostas contra UM sorteio compartilhado
func (s *Server) playMultibet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var reqs []dto.PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	ins := make([]service.PlayInput, 0, len(reqs))
	for _, req := range reqs {
		ins = append(ins, service.PlayInput{
			UserID:     req.UserID,
			StakeCents: req.StakeCents,
			BetType:    req.BetType,
			BetValue:   req.BetValue,
		})
	}

	outcome, results, err := s.round.PlayBatch(r.Context(), ins)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := dto.MultibetResponse{WinningNumber: outcome.String()}
	for _, res := range results {
		if res.Err != nil {
			resp.Results = append(resp.Results, dto.MultibetEntryResponse{
				Status: "REJECTED",
				Error:  publicError(res.Err),
			})
			continue
		}
		bet := toResponse(res.Bet)
		resp.Results = append(resp.Results, dto.MultibetEntryResponse{
			Status: "RESOLVED",
			Bet:    &bet,
		})
	}
	writeJSON(w, resp)
}

// families lista as famílias de aposta suportadas pela tabela de regras
func (s *Server) families(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, dto.FamiliesResponse{Families: engine.Families()})
}

// writeError traduz a taxonomia de erros do motor em status HTTP:
// aposta inválida → 400, saldo insuficiente → 402, usuário inexistente → 404,
// qualquer outra coisa → 500 genérico (sem detalhe interno)
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrInvalidBet):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ledger.ErrInsufficientFunds):
		http.Error(w, "insufficient balance", http.StatusPaymentRequired)
	case errors.Is(err, ledger.ErrNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
	default:
		s.log.Error("unexpected error resolving bet", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// publicError devolve a mensagem segura de um erro por entrada do multibet
func publicError(err error) string {
	switch {
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return "insufficient balance"
	case errors.Is(err, ledger.ErrNotFound):
		return "user not found"
	default:
		return "internal error"
	}
}

func toResponse(b *service.ResolvedBet) dto.ResolvedBetResponse {
	return dto.ResolvedBetResponse{
		BillNo:        b.BillNo,
		UserID:        b.Spec.UserID,
		BetType:       string(b.Spec.Family),
		BetValue:      b.Spec.Value,
		StakeCents:    b.Spec.AmountCents,
		Won:           b.Won,
		PayoutCents:   b.PayoutCents,
		BalanceCents:  b.BalanceCents,
		WinningNumber: b.Outcome.String(),
	}
}

// writeJSON serializa e envia resposta JSON
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
