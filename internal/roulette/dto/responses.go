package dto

// ResolvedBetResponse é a aposta liquidada devolvida ao cliente.
// O número sorteado acompanha o registro porque a aposta sozinha
// não mostra o sorteio.
type ResolvedBetResponse struct {
	BillNo        string `json:"billNo"`
	UserID        string `json:"userId"`
	BetType       string `json:"bet_type"`
	BetValue      string `json:"bet_value"`
	StakeCents    int64  `json:"stake_cents"`
	Won           bool   `json:"won"`
	PayoutCents   int64  `json:"payout_cents"` // ganho líquido; 0 em perda
	BalanceCents  int64  `json:"balance_cents"`
	WinningNumber string `json:"winning_number"`
}

// MultibetEntryResponse é o resultado individual de uma entrada do lote:
// RESOLVED com a aposta, ou REJECTED com o motivo
type MultibetEntryResponse struct {
	Status string               `json:"status"` // "RESOLVED" | "REJECTED"
	Error  string               `json:"error,omitempty"`
	Bet    *ResolvedBetResponse `json:"bet,omitempty"`
}

type MultibetResponse struct {
	WinningNumber string                  `json:"winning_number"`
	Results       []MultibetEntryResponse `json:"results"`
}

type FamiliesResponse struct {
	Families []string `json:"families"`
}
