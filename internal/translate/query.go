package translate

import (
	"fmt"

	"xiangqi/internal/xiangqi"
)

// Validate 校验坐标走法 from→to；开了 GeneralSafety 时同时检查将帅安全
func (t *Translator) Validate(fen, from, to string) error {
	pos, err := t.Position(fen)
	if err != nil {
		return err
	}
	fromSq, err := xiangqi.ParseSquareICCS(from)
	if err != nil {
		return err
	}
	toSq, err := xiangqi.ParseSquareICCS(to)
	if err != nil {
		return err
	}
	if t.opts.GeneralSafety {
		return xiangqi.ValidateMove(pos, xiangqi.Move{From: fromSq, To: toSq})
	}
	return xiangqi.CheckMove(pos, fromSq, toSq)
}

// LegalMoves 列出走子方全部合法走法（ICCS）
func (t *Translator) LegalMoves(fen string) ([]string, error) {
	pos, err := t.Position(fen)
	if err != nil {
		return nil, err
	}
	moves := pos.GenerateLegalMoves()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.ICCS()
	}
	return out, nil
}

func ValidateMove(fen, from, to string) error {
	return defaultTranslator.Validate(fen, from, to)
}

func LegalMoves(fen string) ([]string, error) {
	return defaultTranslator.LegalMoves(fen)
}

// Describe 的 FEN 版本
func DescribeFEN(fen, iccs string) (string, error) {
	pos, err := xiangqi.ParseFEN(fen)
	if err != nil {
		return "", fmt.Errorf("FEN格式错误: %w", err)
	}
	m, err := xiangqi.ParseMoveICCS(iccs)
	if err != nil {
		return "", err
	}
	return Describe(pos, m)
}
