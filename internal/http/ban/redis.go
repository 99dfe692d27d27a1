package ban

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const DailyBanLogKey = "ratelimit:banlog:daily"

type RedisStore struct {
	rdb         *redis.Client
	maxFailures int
	ttl         time.Duration
	log         *zap.Logger
}

func NewRedisStore(rdb *redis.Client, maxFailures int, ttl time.Duration, log *zap.Logger) *RedisStore {
	return &RedisStore{rdb: rdb, maxFailures: maxFailures, ttl: ttl, log: log}
}

func failKey(target string) string { return "login:fail:" + target }
func banKey(target string) string  { return "login:ban:" + target }

func (s *RedisStore) Banned(ctx context.Context, target string) (bool, error) {
	n, err := s.rdb.Exists(ctx, banKey(target)).Result()
	if err != nil {
		return false, fmt.Errorf("check ban: %w", err)
	}
	return n > 0, nil
}

func (s *RedisStore) RecordFailure(ctx context.Context, target, route string) (int, bool, error) {
	n, err := s.rdb.Incr(ctx, failKey(target)).Result()
	if err != nil {
		return 0, false, fmt.Errorf("record failure: %w", err)
	}
	// The window starts with the first failure.
	if n == 1 {
		if err := s.rdb.Expire(ctx, failKey(target), s.ttl).Err(); err != nil {
			return int(n), false, fmt.Errorf("record failure: %w", err)
		}
	}

	strikes := int(n)
	if strikes < s.maxFailures {
		return strikes, false, nil
	}

	if err := s.rdb.Set(ctx, banKey(target), strikes, s.ttl).Err(); err != nil {
		return strikes, false, fmt.Errorf("ban: %w", err)
	}
	if err := s.rdb.Del(ctx, failKey(target)).Err(); err != nil {
		s.log.Warn("failed to clear login failures", zap.String("target", target), zap.Error(err))
	}

	data, err := json.Marshal(BanLogEntry{Target: target, Route: route, Strikes: strikes, Time: time.Now()})
	if err == nil {
		err = s.rdb.RPush(ctx, DailyBanLogKey, data).Err()
	}
	if err != nil {
		s.log.Warn("failed to append to ban log", zap.String("target", target), zap.Error(err))
	}
	return strikes, true, nil
}

func (s *RedisStore) Reset(ctx context.Context, target string) error {
	return s.rdb.Del(ctx, failKey(target)).Err()
}

func (s *RedisStore) BanLog(ctx context.Context) ([]BanLogEntry, error) {
	items, err := s.rdb.LRange(ctx, DailyBanLogKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]BanLogEntry, 0, len(items))
	for _, item := range items {
		var entry BanLogEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			s.log.Warn("skipping malformed ban log entry", zap.Error(err))
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
