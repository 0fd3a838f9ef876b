package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestListenerLogsUpdates(t *testing.T) {
	mr := miniredis.RunT(t)

	subClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer subClient.Close()
	pubClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer pubClient.Close()

	core, logs := observer.New(zap.InfoLevel)
	listener := NewListener(subClient, "quiz:updates", zap.New(core))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- listener.Run(ctx) }()

	select {
	case <-listener.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("Listener did not subscribe in time")
	}

	if err := pubClient.Publish(context.Background(), "quiz:updates", "A new member whose name is Alice").Err(); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for logs.FilterMessage("quiz update").Len() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("Timed out waiting for the update to be logged")
		}
		time.Sleep(10 * time.Millisecond)
	}

	entry := logs.FilterMessage("quiz update").All()[0]
	if got := entry.ContextMap()["payload"]; got != "A new member whose name is Alice" {
		t.Errorf("Expected logged payload, got %v", got)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected nil error on cancel, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Listener did not stop after cancel")
	}
}

func TestListenerRunsAgainAfterStop(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	core, logs := observer.New(zap.InfoLevel)
	listener := NewListener(rdb, "quiz:updates", zap.New(core))

	for run := 1; run <= 2; run++ {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- listener.Run(ctx) }()

		deadline := time.Now().Add(2 * time.Second)
		for logs.FilterMessage("subscribed to quiz updates").Len() < run {
			if time.Now().After(deadline) {
				t.Fatalf("Run #%d did not subscribe in time", run)
			}
			time.Sleep(10 * time.Millisecond)
		}

		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Run #%d: expected nil error on cancel, got %v", run, err)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("Run #%d did not stop after cancel", run)
		}
	}
}
