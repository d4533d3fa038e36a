package dto

type WalletResponse struct {
	UserID       string `json:"userId"`
	WalletID     string `json:"walletId,omitempty"`
	BalanceCents int64  `json:"balance_cents"`
}
