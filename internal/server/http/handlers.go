package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"xiangqi/internal/server/game"
	"xiangqi/internal/translate"
	"xiangqi/internal/xiangqi"
)

// Handler 持有翻译器和内存对局，所有 /api/* 接口都挂在它上面
type Handler struct {
	tr    *translate.Translator
	games *game.Manager
	log   *zap.SugaredLogger
}

func NewHandler(tr *translate.Translator, games *game.Manager, log *zap.SugaredLogger) *Handler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Handler{tr: tr, games: games, log: log}
}

func orInitial(fen string) string {
	if fen == "" {
		return xiangqi.InitialFEN
	}
	return fen
}

// 记谱和 FEN 都很短，请求体不必大
const maxBodyBytes = 64 << 10

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Errorw("write json", "err", err)
	}
}

func (h *Handler) handleInitial(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, InitialResponse{FEN: xiangqi.InitialFEN})
}

func (h *Handler) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if !h.decode(w, r, &req) {
		return
	}
	res := h.tr.TranslateFEN(orInitial(req.FEN), req.Move)
	h.log.Debugw("translate", "fen", req.FEN, "move", req.Move, "ok", res.Success)
	h.writeJSON(w, res)
}

func (h *Handler) handleTranslateSequence(w http.ResponseWriter, r *http.Request) {
	var req TranslateSequenceRequest
	if !h.decode(w, r, &req) {
		return
	}
	pos, err := h.tr.Position(orInitial(req.FEN))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	results, last := h.tr.TranslateSequence(pos, req.Moves)
	h.writeJSON(w, TranslateSequenceResponse{Results: results, FEN: last.FEN()})
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp := ValidateResponse{Valid: true}
	if err := h.tr.Validate(orInitial(req.FEN), req.From, req.To); err != nil {
		resp = ValidateResponse{Valid: false, ErrorMessage: err.Error()}
	}
	h.writeJSON(w, resp)
}

func (h *Handler) handleLegalMoves(w http.ResponseWriter, r *http.Request) {
	var req LegalMovesRequest
	if !h.decode(w, r, &req) {
		return
	}
	moves, err := h.tr.LegalMoves(orInitial(req.FEN))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, LegalMovesResponse{Moves: moves})
}

func (h *Handler) handleDescribe(w http.ResponseWriter, r *http.Request) {
	var req DescribeRequest
	if !h.decode(w, r, &req) {
		return
	}
	text, err := translate.DescribeFEN(orInitial(req.FEN), req.Move)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, DescribeResponse{Notation: text})
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	// 空 body 也允许，等同开局
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	pos, err := h.tr.Position(orInitial(req.FEN))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	g := h.games.NewGame(pos)
	h.log.Infow("new game", "id", g.ID)

	h.writeJSON(w, NewGameResponse{
		GameID:     g.ID,
		FEN:        g.Pos.FEN(),
		ToMove:     sideToInt(g.Pos.SideToMove),
		LegalMoves: movesToICCS(g.Pos.GenerateLegalMoves()),
		Status:     string(g.Pos.Status()),
	})
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, g, err := h.games.Play(req.GameID, h.tr, req.Move)
	if errors.Is(err, game.ErrGameNotFound) {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, PlayResponse{
		Result:     res,
		FEN:        g.Pos.FEN(),
		ToMove:     sideToInt(g.Pos.SideToMove),
		LegalMoves: movesToICCS(g.Pos.GenerateLegalMoves()),
		Status:     string(g.Pos.Status()),
	})
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if !h.decode(w, r, &req) {
		return
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}
	h.writeJSON(w, StateResponse{
		FEN:        g.Pos.FEN(),
		ToMove:     sideToInt(g.Pos.SideToMove),
		LegalMoves: movesToICCS(g.Pos.GenerateLegalMoves()),
		Status:     string(g.Pos.Status()),
	})
}
