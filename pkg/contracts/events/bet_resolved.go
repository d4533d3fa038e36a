package events

// Evento emitido pelo roulette-service após liquidar uma aposta (ganho ou perda).
type BetResolved struct {
	BillNo        string `json:"bill_no"`
	UserID        string `json:"user_id"`
	BetType       string `json:"bet_type"`
	BetValue      string `json:"bet_value"`
	StakeCents    int64  `json:"stake_cents"`
	Won           bool   `json:"won"`
	PayoutCents   int64  `json:"payout_cents"` // ganho líquido (0 em caso de perda)
	BalanceCents  int64  `json:"balance_cents"`
	WinningNumber string `json:"winning_number"` // "0".."36" ou "00"
	TsUnixMs      int64  `json:"ts_unix_ms"`
}
