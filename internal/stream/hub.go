package stream

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
)

const (
	channelPrefix = "trails:"
	channelSuffix = ":broadcast"
)

// Hub fans trail events out to websocket clients grouped by collection.
// With Redis attached, every broadcast goes through pub/sub so that all
// instances, this one included, deliver it exactly once.
type Hub struct {
	redis   *redis.Client
	pubsub  *redis.PubSub
	clients map[string]map[*Client]struct{}
	mu      sync.RWMutex
}

type Client struct {
	Collection string
	Send       chan []byte
}

func NewHub(redisClient *redis.Client) *Hub {
	h := &Hub{
		clients: map[string]map[*Client]struct{}{},
	}

	if redisClient != nil {
		ctx := context.Background()
		pubsub := redisClient.PSubscribe(ctx, channelPrefix+"*"+channelSuffix)
		if _, err := pubsub.Receive(ctx); err != nil {
			log.Printf("redis subscribe error, broadcasting locally: %v", err)
			_ = pubsub.Close()
		} else {
			h.redis = redisClient
			h.pubsub = pubsub
			go h.forwardRedis(pubsub.Channel())
		}
	}
	return h
}

func (h *Hub) Register(collection string) *Client {
	client := &Client{
		Collection: collection,
		Send:       make(chan []byte, 64),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[collection] == nil {
		h.clients[collection] = map[*Client]struct{}{}
	}
	h.clients[collection][client] = struct{}{}
	return client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if collectionClients, ok := h.clients[client.Collection]; ok {
		delete(collectionClients, client)
		if len(collectionClients) == 0 {
			delete(h.clients, client.Collection)
		}
	}
	close(client.Send)
}

func (h *Hub) Broadcast(collection string, payload []byte) {
	if h.redis != nil {
		err := h.redis.Publish(context.Background(), redisChannel(collection), payload).Err()
		if err == nil {
			return
		}
		log.Printf("redis publish error: %v", err)
	}
	h.deliver(collection, payload)
}

// Subscribers reports how many clients listen on collection.
func (h *Hub) Subscribers(collection string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[collection])
}

// Close stops the Redis subscription.
func (h *Hub) Close() error {
	if h.pubsub == nil {
		return nil
	}
	return h.pubsub.Close()
}

func (h *Hub) deliver(collection string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients[collection] {
		select {
		case client.Send <- payload:
		default:
		}
	}
}

func (h *Hub) forwardRedis(messages <-chan *redis.Message) {
	for msg := range messages {
		collection := collectionFromChannel(msg.Channel)
		if collection == "" {
			continue
		}
		h.deliver(collection, []byte(msg.Payload))
	}
}

func redisChannel(collection string) string {
	return channelPrefix + collection + channelSuffix
}

func collectionFromChannel(ch string) string {
	// trails:{collection}:broadcast
	if len(ch) <= len(channelPrefix)+len(channelSuffix) ||
		!strings.HasPrefix(ch, channelPrefix) || !strings.HasSuffix(ch, channelSuffix) {
		return ""
	}
	return ch[len(channelPrefix) : len(ch)-len(channelSuffix)]
}
