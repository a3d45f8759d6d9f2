package translate

import (
	"sync"

	"xiangqi/internal/xiangqi"
)

// FEN → 局面 的解析缓存；存的是值，取出时复制一份，调用方改了也不影响缓存
type fenCache struct {
	mu  sync.RWMutex
	cap int
	m   map[string]xiangqi.Position
}

func newFENCache(capacity int) *fenCache {
	return &fenCache{cap: capacity, m: make(map[string]xiangqi.Position, capacity)}
}

func (c *fenCache) get(fen string) (*xiangqi.Position, bool) {
	c.mu.RLock()
	pos, ok := c.m[fen]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return &pos, true
}

func (c *fenCache) put(fen string, pos *xiangqi.Position) {
	c.mu.Lock()
	if len(c.m) >= c.cap {
		// 满了直接整表清空
		c.m = make(map[string]xiangqi.Position, c.cap)
	}
	c.m[fen] = *pos
	c.mu.Unlock()
}

func (c *fenCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
