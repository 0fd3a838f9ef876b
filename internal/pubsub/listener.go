package pubsub

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Listener logs every quiz update published on its channel. It uses its own
// client so subscriptions never share connections with request handlers.
type Listener struct {
	rdb     *redis.Client
	channel string
	log     *zap.Logger
	// ready is closed once the first subscription is confirmed by the server.
	ready     chan struct{}
	readyOnce sync.Once
}

func NewListener(rdb *redis.Client, channel string, log *zap.Logger) *Listener {
	return &Listener{
		rdb:     rdb,
		channel: channel,
		log:     log,
		ready:   make(chan struct{}),
	}
}

// Ready is closed once Run has subscribed for the first time.
func (l *Listener) Ready() <-chan struct{} {
	return l.ready
}

// Run blocks until ctx is cancelled or the subscription fails. It may be
// called again after it returns to resubscribe.
func (l *Listener) Run(ctx context.Context) error {
	sub := l.rdb.Subscribe(ctx, l.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	l.readyOnce.Do(func() { close(l.ready) })
	l.log.Info("subscribed to quiz updates", zap.String("channel", l.channel))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			l.log.Info("quiz update listener stopped", zap.String("channel", l.channel))
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			l.log.Info("quiz update",
				zap.String("channel", msg.Channel),
				zap.String("payload", msg.Payload),
			)
		}
	}
}
