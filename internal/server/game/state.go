package game

import (
	"time"

	"xiangqi/internal/xiangqi"
)

// GameState 一局只保存当前局面，不记历史
type GameState struct {
	ID        string
	Pos       xiangqi.Position
	Plies     int
	CreatedAt time.Time
	UpdatedAt time.Time
}
