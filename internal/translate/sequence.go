package translate

import (
	"xiangqi/internal/xiangqi"
)

// TranslateSequence 从 pos 开始依次翻译，遇到第一步失败就停。
// 返回已翻译的结果（含失败那一步）和最后一个成功走到的局面。
func (t *Translator) TranslateSequence(pos *xiangqi.Position, moves []string) ([]Result, *xiangqi.Position) {
	cur := pos
	results := make([]Result, 0, len(moves))
	for i, text := range moves {
		m, err := t.Move(cur, text)
		if err != nil {
			t.log.Debugw("sequence stopped", "ply", i+1, "move", text, "err", err)
			results = append(results, failure(err))
			break
		}
		cur = cur.ApplyUnchecked(m)
		results = append(results, Result{Success: true, ICCSMove: m.ICCS(), FENAfter: cur.FEN()})
	}
	return results, cur
}
