package redishandler

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"github.com/redis/go-redis/v9"
	"github.com/saxenaaman628/redis-quiz-service/internal/models"
)

// Seed overwrites the fixed setup questions and restarts their TTLs.
func (s *QuizStore) Seed(ctx context.Context) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, q := range models.SeedQuestions {
			queueQuestion(ctx, pipe, q)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed questions: %w", err)
	}
	return nil
}

// PutQuestion creates or replaces a single question.
func (s *QuizStore) PutQuestion(ctx context.Context, q models.Question) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		queueQuestion(ctx, pipe, q)
		return nil
	})
	if err != nil {
		return fmt.Errorf("put question %d: %w", q.ID, err)
	}

	s.publish(ctx, fmt.Sprintf("Question %d was updated", q.ID))
	return nil
}

func queueQuestion(ctx context.Context, pipe redis.Pipeliner, q models.Question) {
	key := questionKey(strconv.Itoa(q.ID))
	pipe.HSet(ctx, key, map[string]interface{}{
		"text":   q.Text,
		"answer": q.Answer,
	})
	pipe.Expire(ctx, key, q.TTL)
}

// GetQuestion returns ErrQuestionNotFound for ids that never existed and
// for ids whose TTL has run out; Redis can't tell the two apart.
func (s *QuizStore) GetQuestion(ctx context.Context, id int) (*models.Question, error) {
	data, err := s.rdb.HGetAll(ctx, questionKey(strconv.Itoa(id))).Result()
	if err != nil {
		return nil, fmt.Errorf("get question %d: %w", id, err)
	}
	if len(data) == 0 {
		return nil, ErrQuestionNotFound
	}

	var q models.Question
	if err := mapstructure.Decode(data, &q); err != nil {
		return nil, fmt.Errorf("decode question %d: %w", id, err)
	}
	q.ID = id

	return &q, nil
}
