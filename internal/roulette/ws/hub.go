package ws

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub gerencia as conexões WebSocket do painel de resultados.
// Todo cliente conectado recebe todos os sorteios (não há assinatura
// por mesa: o serviço opera uma roda única).
type Hub struct {
	upgrader websocket.Upgrader
	mu       sync.RWMutex
	clients  map[*client]struct{}
}

// client serializa as escritas numa conexão: o pong do loop de leitura e o
// Broadcast vindo do assinante Redis nunca escrevem ao mesmo tempo
// (gorilla/websocket não permite escrita concorrente).
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(messageType int, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(messageType, payload)
}

// NewHub cria uma instância de Hub com política customizada de origem (CORS)
func NewHub(allowOrigin func(r *http.Request) bool) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{CheckOrigin: allowOrigin},
		clients:  make(map[*client]struct{}),
	}
}

// HandleWS gerencia o ciclo de vida de uma conexão WebSocket.
// O cliente só envia pings; o servidor empurra os sorteios.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	c := &client{conn: conn}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	for {
		var msg ClientMsg
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		if msg.Type == "ping" {
			_ = c.write(websocket.TextMessage, []byte(`{"type":"pong"}`))
		}
	}

	// remove a conexão ao desconectar
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

// Broadcast envia o payload para todos os clientes conectados
func (h *Hub) Broadcast(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.write(websocket.TextMessage, payload)
	}
}
