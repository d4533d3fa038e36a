package ws

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// StartRedisSubscriber inicia uma goroutine que escuta o canal Redis Pub/Sub
// de sorteios e repassa cada mensagem para os clientes WebSocket conectados.
// O payload já chega serializado (events.OutcomeDrawn); o hub só repassa.
func StartRedisSubscriber(ctx context.Context, log *zap.Logger, r *redis.Client, channel string, hub *Hub) {
	sub := r.Subscribe(ctx, channel)
	ch := sub.Channel()
	go func() {
		for {
			select {
			case <-ctx.Done():
				_ = sub.Close() // encerra a inscrição ao finalizar o contexto
				return
			case msg := <-ch:
				if msg == nil {
					continue
				}
				hub.Broadcast([]byte(msg.Payload))
			}
		}
	}()
	log.Info("outcome ws subscriber started", zap.String("channel", channel))
}
