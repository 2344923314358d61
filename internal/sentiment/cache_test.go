package sentiment

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// fakeRedis implements the Get and Set calls the cache makes.
type fakeRedis struct {
	goredis.Cmdable
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *goredis.StringCmd {
	cmd := goredis.NewStringCmd(ctx, "get", key)
	if f.getErr != nil {
		cmd.SetErr(f.getErr)
		return cmd
	}
	v, ok := f.data[key]
	if !ok {
		cmd.SetErr(goredis.Nil)
		return cmd
	}
	cmd.SetVal(string(v))
	return cmd
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd {
	cmd := goredis.NewStatusCmd(ctx, "set", key)
	if f.setErr != nil {
		cmd.SetErr(f.setErr)
		return cmd
	}
	b, _ := value.([]byte)
	f.data[key] = b
	f.ttls[key] = expiration
	cmd.SetVal("OK")
	return cmd
}

// countingScorer counts calls and returns fixed scores.
type countingScorer struct {
	calls  int
	scores Scores
	err    error
}

func (c *countingScorer) Score(context.Context, string) (Scores, error) {
	c.calls++
	return c.scores, c.err
}

func TestCachedMissThenHit(t *testing.T) {
	rdb := newFakeRedis()
	next := &countingScorer{scores: Scores{Neutral: 1}}
	c := NewCached(next, rdb, time.Minute)

	for i := 0; i < 3; i++ {
		s, err := c.Score(context.Background(), "same text")
		if err != nil {
			t.Fatalf("score %d: %v", i, err)
		}
		if s != next.scores {
			t.Errorf("score %d = %+v, want %+v", i, s, next.scores)
		}
	}

	if next.calls != 1 {
		t.Errorf("wrapped scorer called %d times, want 1", next.calls)
	}
	if ttl := rdb.ttls[cacheKey("same text")]; ttl != time.Minute {
		t.Errorf("ttl = %v, want %v", ttl, time.Minute)
	}
}

func TestCachedDistinctTexts(t *testing.T) {
	rdb := newFakeRedis()
	next := &countingScorer{scores: Scores{Positive: 1, Compound: 0.5}}
	c := NewCached(next, rdb, 0)

	for _, text := range []string{"one", "two"} {
		if _, err := c.Score(context.Background(), text); err != nil {
			t.Fatalf("score %q: %v", text, err)
		}
	}
	if next.calls != 2 {
		t.Errorf("wrapped scorer called %d times, want 2", next.calls)
	}
	if ttl := rdb.ttls[cacheKey("one")]; ttl != DefaultCacheTTL {
		t.Errorf("ttl = %v, want default %v", ttl, DefaultCacheTTL)
	}
}

func TestCachedRedisDown(t *testing.T) {
	rdb := newFakeRedis()
	rdb.getErr = errors.New("connection refused")
	rdb.setErr = errors.New("connection refused")
	next := &countingScorer{scores: Scores{Negative: 1, Compound: -0.7}}
	c := NewCached(next, rdb, time.Minute)

	s, err := c.Score(context.Background(), "text")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if s != next.scores {
		t.Errorf("scores = %+v, want %+v", s, next.scores)
	}
}

func TestCachedCorruptEntry(t *testing.T) {
	rdb := newFakeRedis()
	rdb.data[cacheKey("text")] = []byte("not json")
	next := &countingScorer{scores: Scores{Neutral: 1}}
	c := NewCached(next, rdb, time.Minute)

	if _, err := c.Score(context.Background(), "text"); err != nil {
		t.Fatalf("score: %v", err)
	}
	if next.calls != 1 {
		t.Errorf("wrapped scorer called %d times, want 1", next.calls)
	}

	var stored Scores
	if err := json.Unmarshal(rdb.data[cacheKey("text")], &stored); err != nil {
		t.Fatalf("entry not rewritten: %v", err)
	}
}

func TestCachedScorerError(t *testing.T) {
	rdb := newFakeRedis()
	next := &countingScorer{err: errors.New("boom")}
	c := NewCached(next, rdb, time.Minute)

	if _, err := c.Score(context.Background(), "text"); err == nil {
		t.Fatal("expected error")
	}
	if len(rdb.data) != 0 {
		t.Error("expected nothing cached after error")
	}
}
