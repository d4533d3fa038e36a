package dto

type PlayRequest struct {
	UserID     string `json:"userId"`
	StakeCents int64  `json:"stake_cents"`
	BetType    string `json:"bet_type"`  // ex: "color", "straight", "dozen"
	BetValue   string `json:"bet_value"` // ex: "red", "17", "1st12"
}
