package stream

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(nil)
	client := hub.Register("archive")
	defer hub.Unregister(client)

	other := hub.Register("elsewhere")
	defer hub.Unregister(other)

	hub.Broadcast("archive", []byte("hello"))

	select {
	case msg := <-client.Send:
		if string(msg) != "hello" {
			t.Fatalf("unexpected message")
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatalf("timeout waiting for message")
	}

	select {
	case <-other.Send:
		t.Fatalf("message leaked to another collection")
	default:
	}
}

func TestHubHelpers(t *testing.T) {
	ch := redisChannel("abc")
	if ch != "trails:abc:broadcast" {
		t.Fatalf("unexpected channel %q", ch)
	}
	if collectionFromChannel(ch) != "abc" {
		t.Fatalf("unexpected collection")
	}
	if collectionFromChannel("bad") != "" {
		t.Fatalf("expected empty collection")
	}
	if collectionFromChannel("tracking:abc:broadcast") != "" {
		t.Fatalf("expected foreign prefix to be rejected")
	}
}

func TestUnregisterCloses(t *testing.T) {
	hub := NewHub(nil)
	client := hub.Register("archive")
	if hub.Subscribers("archive") != 1 {
		t.Fatalf("expected one subscriber")
	}
	hub.Unregister(client)
	if hub.Subscribers("archive") != 0 {
		t.Fatalf("expected no subscribers")
	}
	_, ok := <-client.Send
	if ok {
		t.Fatalf("expected channel closed")
	}
}

func TestHubRedisBroadcastAndSubscribe(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	hub := NewHub(client)
	defer hub.Close()
	ws := hub.Register("archive")
	defer hub.Unregister(ws)

	hub.Broadcast("archive", []byte("ping"))

	select {
	case msg := <-ws.Send:
		if string(msg) != "ping" {
			t.Fatalf("unexpected message")
		}
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for broadcast")
	}

	select {
	case <-ws.Send:
		t.Fatalf("expected exactly one delivery")
	case <-time.After(50 * time.Millisecond):
	}

	// a publish from another instance reaches local clients
	if err := client.Publish(context.Background(), redisChannel("archive"), "pong").Err(); err != nil {
		t.Fatalf("publish error: %v", err)
	}

	select {
	case msg := <-ws.Send:
		if string(msg) != "pong" {
			t.Fatalf("unexpected message from redis")
		}
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for redis message")
	}
}

func TestHubRedisUnavailableFallsBackToLocal(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	server.Close()
	defer client.Close()

	hub := NewHub(client)
	defer hub.Close()
	local := hub.Register("archive")
	defer hub.Unregister(local)

	hub.Broadcast("archive", []byte("ping"))

	select {
	case msg := <-local.Send:
		if string(msg) != "ping" {
			t.Fatalf("unexpected message")
		}
	case <-time.After(time.Second):
		t.Fatalf("expected local delivery without redis")
	}
}
