package redishandler

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrIncorrectAnswer  = errors.New("incorrect answer")
	ErrAlreadyAnswered  = errors.New("already answered")
)

const membersKey = "members"

func questionKey(id string) string { return "question:" + id }

func answeredKey(questionID string) string { return "answered:" + questionID }

// QuizStore keeps questions, members and answered sets in Redis and
// announces changes on a pub/sub channel.
type QuizStore struct {
	rdb     *redis.Client
	channel string
	log     *zap.Logger
}

func NewQuizStore(rdb *redis.Client, channel string, log *zap.Logger) *QuizStore {
	return &QuizStore{
		rdb:     rdb,
		channel: channel,
		log:     log,
	}
}

func (s *QuizStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// publish is best effort: the state change it describes is already committed.
func (s *QuizStore) publish(ctx context.Context, msg string) {
	if err := s.rdb.Publish(ctx, s.channel, msg).Err(); err != nil {
		s.log.Warn("failed to publish quiz update",
			zap.String("channel", s.channel),
			zap.String("payload", msg),
			zap.Error(err),
		)
	}
}

// Reset removes every member and answered set. Questions are left to expire.
func (s *QuizStore) Reset(ctx context.Context) (int64, error) {
	var cursor uint64
	keys := []string{membersKey}
	for {
		batch, next, err := s.rdb.Scan(ctx, cursor, answeredKey("*"), 100).Result()
		if err != nil {
			return 0, fmt.Errorf("scan answered sets: %w", err)
		}
		keys = append(keys, batch...)

		cursor = next
		if cursor == 0 {
			break
		}
	}

	removed, err := s.rdb.Del(ctx, keys...).Result()
	if err != nil {
		return 0, fmt.Errorf("delete quiz state: %w", err)
	}

	s.publish(ctx, "Quiz state was reset")
	return removed, nil
}
