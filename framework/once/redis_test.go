//go:build redis

package once

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	test "github.com/retro-framework/go-archglob/framework/test_helper"
)

// Needs a redis, run with: REDIS_ADDR=localhost:6379 go test -tags redis
func Test_RedisStore(t *testing.T) {
	var addr = os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	s, err := NewRedisStore(addr, time.Minute)
	test.H(t).IsNil(err)
	defer s.Close()

	var key = fmt.Sprintf("test:%d", time.Now().UnixNano())

	first, err := s.MarkDone(context.Background(), key)
	test.H(t).IsNil(err)
	test.H(t).BoolEql(first, true)

	again, err := s.MarkDone(context.Background(), key)
	test.H(t).IsNil(err)
	test.H(t).BoolEql(again, false)
}
