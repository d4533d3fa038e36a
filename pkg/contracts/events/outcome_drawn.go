package events

// Evento de broadcast do número sorteado em um giro da roleta.
// Publicado uma única vez por rodada, mesmo quando a rodada liquida várias apostas.
type OutcomeDrawn struct {
	WinningNumber string `json:"winning_number"` // "0".."36" ou "00"
	Color         string `json:"color"`          // "red" | "black" | "green"
	Bets          int    `json:"bets"`           // quantidade de apostas liquidadas na rodada
	TsUnixMs      int64  `json:"ts_unix_ms"`
}
