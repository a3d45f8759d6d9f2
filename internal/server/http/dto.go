package httpserver

import (
	"xiangqi/internal/translate"
	"xiangqi/internal/xiangqi"
)

type InitialResponse struct {
	FEN string `json:"fen"`
}

// TranslateRequest 翻译一步；FEN 为空时按开局处理
type TranslateRequest struct {
	FEN  string `json:"fen"`
	Move string `json:"move"` // 中文记谱，如 炮二平五
}

type TranslateSequenceRequest struct {
	FEN   string   `json:"fen"`
	Moves []string `json:"moves"`
}

type TranslateSequenceResponse struct {
	Results []translate.Result `json:"results"`
	FEN     string             `json:"fen"` // 最后一步成功后的局面
}

type ValidateRequest struct {
	FEN  string `json:"fen"`
	From string `json:"from"` // ICCS 格子，如 h2
	To   string `json:"to"`
}

type ValidateResponse struct {
	Valid        bool   `json:"valid"`
	ErrorMessage string `json:"error_message,omitempty"`
}

type LegalMovesRequest struct {
	FEN string `json:"fen"`
}

type LegalMovesResponse struct {
	Moves []string `json:"moves"`
}

type DescribeRequest struct {
	FEN  string `json:"fen"`
	Move string `json:"move"` // ICCS 走法，如 h2e2
}

type DescribeResponse struct {
	Notation string `json:"notation"`
}

// NewGame 请求：可以带一个起始 FEN
type NewGameRequest struct {
	FEN string `json:"fen"`
}

type NewGameResponse struct {
	GameID     string   `json:"game_id"`
	FEN        string   `json:"fen"`
	ToMove     int      `json:"to_move"` // 0=红(w),1=黑(b)
	LegalMoves []string `json:"legal_moves"`
	Status     string   `json:"status"`
}

type PlayRequest struct {
	GameID string `json:"game_id"`
	Move   string `json:"move"` // 中文记谱
}

type PlayResponse struct {
	Result     translate.Result `json:"result"`
	FEN        string           `json:"fen"`
	ToMove     int              `json:"to_move"`
	LegalMoves []string         `json:"legal_moves"`
	Status     string           `json:"status"` // "ongoing" / "checkmate" / "stalemate"
}

// State 请求：前端刷新时用 game_id 来要当前盘面
type StateRequest struct {
	GameID string `json:"game_id"`
}

type StateResponse struct {
	FEN        string   `json:"fen"`
	ToMove     int      `json:"to_move"`
	LegalMoves []string `json:"legal_moves"`
	Status     string   `json:"status"`
}

func sideToInt(s xiangqi.Side) int {
	switch s {
	case xiangqi.Red:
		return 0
	case xiangqi.Black:
		return 1
	default:
		return -1
	}
}

func movesToICCS(ms []xiangqi.Move) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.ICCS()
	}
	return out
}
