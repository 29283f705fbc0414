package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/cutmodel/model-match/internal/config"
	"github.com/cutmodel/model-match/internal/models"
)

// Hub fans chat messages out over Redis pub/sub, one channel per
// reservation. Delivery order inside a channel is Redis' FIFO; consumers
// still de-dup by message id so a redelivered payload is harmless.
type Hub struct {
	client *redis.Client
}

func New(cfg *config.Config) *Hub {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	return &Hub{client: client}
}

func channelFor(reservationID uint) string {
	return fmt.Sprintf("reservation:%d:messages", reservationID)
}

// PublishMessage is best-effort: a failed publish only costs liveness,
// the message is already persisted and shows up on the next snapshot.
func (h *Hub) PublishMessage(ctx context.Context, msg models.ReservationMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Println("realtime marshal error:", err)
		return
	}

	if err := h.client.Publish(ctx, channelFor(msg.ReservationID), payload).Err(); err != nil {
		log.Println("realtime publish error:", err)
	}
}

// Subscribe opens the live stream for one reservation. The caller owns
// the subscription and must Close it when its view goes away.
func (h *Hub) Subscribe(ctx context.Context, reservationID uint) *redis.PubSub {
	return h.client.Subscribe(ctx, channelFor(reservationID))
}

func DecodeMessage(payload string) (models.ReservationMessage, error) {
	var msg models.ReservationMessage
	err := json.Unmarshal([]byte(payload), &msg)
	return msg, err
}
