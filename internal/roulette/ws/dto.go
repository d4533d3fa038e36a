package ws

// ClientMsg representa uma mensagem recebida do cliente WebSocket
type ClientMsg struct {
	Type string `json:"type"` // ping
}
