package redishandler

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/saxenaaman628/redis-quiz-service/internal/models"
)

// AddMember appends a zero-score member. Names are not deduplicated.
func (s *QuizStore) AddMember(ctx context.Context, name string) error {
	payload, err := json.Marshal(models.Member{Name: name, Score: 0})
	if err != nil {
		return err
	}

	if err := s.rdb.RPush(ctx, membersKey, payload).Err(); err != nil {
		return fmt.Errorf("add member %q: %w", name, err)
	}

	s.publish(ctx, fmt.Sprintf("A new member whose name is %s", name))
	return nil
}

func (s *QuizStore) ListMembers(ctx context.Context) ([]models.Member, error) {
	entries, err := s.rdb.LRange(ctx, membersKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return decodeMembers(entries)
}

// Leaderboard returns up to limit members ordered by score, highest first.
// Equal scores keep their join order.
func (s *QuizStore) Leaderboard(ctx context.Context, limit int) ([]models.Member, error) {
	members, err := s.ListMembers(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Score > members[j].Score
	})
	if limit > 0 && len(members) > limit {
		members = members[:limit]
	}
	return members, nil
}

func decodeMembers(entries []string) ([]models.Member, error) {
	members := make([]models.Member, 0, len(entries))
	for i, entry := range entries {
		var m models.Member
		if err := json.Unmarshal([]byte(entry), &m); err != nil {
			return nil, fmt.Errorf("decode member at %d: %w", i, err)
		}
		members = append(members, m)
	}
	return members, nil
}
