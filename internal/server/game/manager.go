package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"xiangqi/internal/translate"
	"xiangqi/internal/xiangqi"
)

var ErrGameNotFound = errors.New("game not found")

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

// NewGame 从 pos 开一局；pos 为 nil 时用开局
func (m *Manager) NewGame(pos *xiangqi.Position) GameState {
	if pos == nil {
		pos = xiangqi.InitialPosition()
	}
	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Pos:       *pos,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.games[g.ID] = g
	m.mu.Unlock()
	return *g
}

// Get 返回对局快照
func (m *Manager) Get(id string) (GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return GameState{}, ErrGameNotFound
	}
	return *g, nil
}

// Play 用中文记谱在对局里走一步；翻译失败时局面不变，Result 里带原因
func (m *Manager) Play(id string, tr *translate.Translator, text string) (translate.Result, GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return translate.Result{}, GameState{}, ErrGameNotFound
	}

	res := tr.Translate(&g.Pos, text)
	if res.Success {
		mv, err := xiangqi.ParseMoveICCS(res.ICCSMove)
		if err != nil {
			return translate.Result{}, GameState{}, err
		}
		g.Pos = *g.Pos.ApplyUnchecked(mv)
		g.Plies++
		g.UpdatedAt = time.Now()
	}
	return res, *g, nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
