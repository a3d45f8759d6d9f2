// Package translate 把中文记谱翻成 ICCS 坐标走法。
package translate

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"xiangqi/internal/notation"
	"xiangqi/internal/xiangqi"
)

// Result 是一次翻译的结果；失败时 Success=false，ErrorMessage 给人看，Err 给程序判断
type Result struct {
	Success      bool   `json:"success"`
	ICCSMove     string `json:"iccs_move,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
	FENAfter     string `json:"fen_after,omitempty"`
	Err          error  `json:"-"`
}

func failure(err error) Result {
	return Result{Success: false, ErrorMessage: err.Error(), Err: err}
}

type Translator struct {
	opts  Options
	cache *fenCache
	log   *zap.SugaredLogger
}

// New 创建翻译器；log 为 nil 时不打日志
func New(opts Options, log *zap.SugaredLogger) *Translator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	t := &Translator{opts: opts, log: log}
	if opts.CacheSize > 0 {
		t.cache = newFENCache(opts.CacheSize)
	}
	return t
}

func (t *Translator) Options() Options { return t.opts }

// Position 解析 FEN；开了缓存时优先查缓存。每次返回的都是独立副本。
func (t *Translator) Position(fen string) (*xiangqi.Position, error) {
	if t.cache != nil {
		if pos, ok := t.cache.get(fen); ok {
			return pos, nil
		}
	}
	pos, err := xiangqi.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("FEN格式错误: %w", err)
	}
	if t.cache != nil {
		t.cache.put(fen, pos)
	}
	return pos, nil
}

// Move 在 pos 上为走子方解析一步中文记谱
func (t *Translator) Move(pos *xiangqi.Position, text string) (xiangqi.Move, error) {
	n, err := notation.Parse(text)
	if err != nil {
		return xiangqi.Move{}, fmt.Errorf("无法解析中文棋谱 %q: %w", text, err)
	}
	side := pos.SideToMove

	pa, err := Resolve(pos, side, n, t.opts)
	if errors.Is(err, ErrAmbiguousWithoutModifier) &&
		(n.Kind == xiangqi.PieceAdvisor || n.Kind == xiangqi.PieceElephant) {
		pa, err = resolveByDestination(pos, side, n)
	}
	if err != nil {
		return xiangqi.Move{}, fmt.Errorf("找不到符合条件的棋子 %q: %w", text, err)
	}

	to, err := Destination(pos, pa, n)
	if err != nil {
		return xiangqi.Move{}, fmt.Errorf("无效的移动 %q: %w", text, err)
	}
	m := xiangqi.Move{From: pa.Square, To: to}
	if t.opts.GeneralSafety {
		if err := xiangqi.ValidateMove(pos, m); err != nil {
			return xiangqi.Move{}, fmt.Errorf("无效的移动 %q: %w", text, err)
		}
	}
	return m, nil
}

// Translate 翻译一步，成功时附带走完后的 FEN
func (t *Translator) Translate(pos *xiangqi.Position, text string) Result {
	m, err := t.Move(pos, text)
	if err != nil {
		t.log.Debugw("translate failed", "move", text, "fen", pos.FEN(), "err", err)
		return failure(err)
	}
	return Result{
		Success:  true,
		ICCSMove: m.ICCS(),
		FENAfter: pos.ApplyUnchecked(m).FEN(),
	}
}

func (t *Translator) TranslateFEN(fen, text string) Result {
	pos, err := t.Position(fen)
	if err != nil {
		t.log.Debugw("bad fen", "fen", fen, "err", err)
		return failure(err)
	}
	return t.Translate(pos, text)
}

var defaultTranslator = New(DefaultOptions(), nil)

// TranslateFromFEN 用默认选项翻译一步，无状态、可并发调用
func TranslateFromFEN(fen, move string) Result {
	return defaultTranslator.TranslateFEN(fen, move)
}
