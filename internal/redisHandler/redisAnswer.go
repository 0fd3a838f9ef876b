package redishandler

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/saxenaaman628/redis-quiz-service/internal/models"
)

// creditAnswer runs the whole check-and-credit step inside Redis.
// KEYS: question hash, members list, answered set. ARGV: name, answer.
// Returns {status, score}. Only the first entry for a name is considered.
var creditAnswer = redis.NewScript(`
local entries = redis.call('LRANGE', KEYS[2], 0, -1)
local idx = -1
local member
for i, entry in ipairs(entries) do
	local m = cjson.decode(entry)
	if m.Name == ARGV[1] then
		idx = i - 1
		member = m
		break
	end
end
if idx < 0 then
	return {'player_not_found', 0}
end

local stored = redis.call('HGET', KEYS[1], 'answer')
if not stored then
	return {'question_not_found', 0}
end
if stored ~= ARGV[2] then
	return {'incorrect', 0}
end
if redis.call('SISMEMBER', KEYS[3], ARGV[1]) == 1 then
	return {'already_answered', 0}
end

local score = (tonumber(member.Score) or 0) + 1
redis.call('LSET', KEYS[2], idx, cjson.encode({Name = member.Name, Score = score}))
redis.call('SADD', KEYS[3], ARGV[1])
return {'credited', score}
`)

var answerStatusErrors = map[string]error{
	"player_not_found":   ErrPlayerNotFound,
	"question_not_found": ErrQuestionNotFound,
	"incorrect":          ErrIncorrectAnswer,
	"already_answered":   ErrAlreadyAnswered,
}

// SubmitAnswer credits name with one point for questionID if the name is a
// member, the answer matches and the name has not been credited for that
// question yet. The lookup and the writes execute as one script, so
// concurrent submissions never interleave and never need a retry.
func (s *QuizStore) SubmitAnswer(ctx context.Context, questionID, name, answer string) (*models.Member, error) {
	keys := []string{questionKey(questionID), membersKey, answeredKey(questionID)}

	res, err := creditAnswer.Run(ctx, s.rdb, keys, name, answer).Slice()
	if err != nil {
		return nil, fmt.Errorf("submit answer for %q: %w", name, err)
	}
	if len(res) != 2 {
		return nil, fmt.Errorf("submit answer for %q: unexpected reply %v", name, res)
	}

	status, _ := res[0].(string)
	if err, ok := answerStatusErrors[status]; ok {
		return nil, err
	}
	score, ok := res[1].(int64)
	if status != "credited" || !ok {
		return nil, fmt.Errorf("submit answer for %q: unexpected reply %v", name, res)
	}

	member := &models.Member{Name: name, Score: int(score)}
	s.publish(ctx, fmt.Sprintf("%s gains 1 point for question %s, score is now %d.", name, questionID, member.Score))
	return member, nil
}
