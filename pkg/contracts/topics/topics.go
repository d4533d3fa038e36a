package topics

const (
	// Apostas de roleta
	BetResolved = "roulette_bet_resolved"

	// DLQs
	BetResolvedDLQ = "roulette_bet_resolved_dlq"
)
