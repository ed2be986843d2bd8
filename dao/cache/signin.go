package cache

import (
	"Joyland/pkg/clock"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 签到状态缓存过期时间 - 签到页是高频读，状态当日内不变
const signInStatusExpireAt = 2 * time.Hour

type SignInStorage struct {
	redis *redis.Client
}

func NewSignInStorage(rds *redis.Client) *SignInStorage {
	return &SignInStorage{redis: rds}
}

// Get 读取当日签到状态快照，未命中返回 false
// @params uid  用户ID
// @params now  当前时间，用于定位本地日
func (s *SignInStorage) Get(ctx context.Context, uid uint64, now time.Time, dst any) bool {
	val, err := s.redis.Get(ctx, s.name(uid, now)).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dst) == nil
}

// Set 写入当日签到状态快照
func (s *SignInStorage) Set(ctx context.Context, uid uint64, now time.Time, src any) {
	data, err := json.Marshal(src)
	if err != nil {
		return
	}
	s.redis.Set(ctx, s.name(uid, now), data, signInStatusExpireAt)
}

// Del 签到成功后删除快照，下次读取回源重建
func (s *SignInStorage) Del(ctx context.Context, uid uint64, now time.Time) {
	s.redis.Del(ctx, s.name(uid, now))
}

func (s *SignInStorage) name(uid uint64, now time.Time) string {
	return fmt.Sprintf("signin:status:%d:%s", uid, clock.Day(now))
}
