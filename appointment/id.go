package appointment

import (
	"strconv"
	"sync"
	"time"
)

// TimestampIDs hands out Unix-millisecond ids. When two calls land in the
// same millisecond the later one is bumped so ids stay strictly increasing.
type TimestampIDs struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewTimestampIDs(now func() time.Time) *TimestampIDs {
	if now == nil {
		now = time.Now
	}
	return &TimestampIDs{now: now}
}

func (g *TimestampIDs) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}
