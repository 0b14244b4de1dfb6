package services

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

const notificationsChannel = "notifications"

// RedisNotifier publishes status changes on a Redis pub/sub channel for
// the notification delivery service to pick up.
type RedisNotifier struct {
	client *redis.Client
}

func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client}
}

// PublishStatusChange serializes the notification and publishes it.
func (n *RedisNotifier) PublishStatusChange(ctx context.Context, notification StatusNotification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	return n.client.Publish(ctx, notificationsChannel, payload).Err()
}
