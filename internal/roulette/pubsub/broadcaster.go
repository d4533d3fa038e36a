package pubsub

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/roulette-platform-poc/pkg/contracts/events"
)

// ChannelOutcomeBroadcast é o canal Redis Pub/Sub dos números sorteados
const ChannelOutcomeBroadcast = "roulette_outcomes_broadcast"

// RedisBroadcaster publica cada sorteio no canal de broadcast;
// o feed WebSocket do painel consome desse canal
type RedisBroadcaster struct {
	r       *redis.Client
	channel string
}

func NewRedisBroadcaster(r *redis.Client, channel string) *RedisBroadcaster {
	if channel == "" {
		channel = ChannelOutcomeBroadcast
	}
	return &RedisBroadcaster{r: r, channel: channel}
}

func (b *RedisBroadcaster) PublishOutcome(ctx context.Context, e events.OutcomeDrawn) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return b.r.Publish(ctx, b.channel, payload).Err()
}
