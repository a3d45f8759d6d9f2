package translate

import (
	"errors"
	"fmt"

	"xiangqi/internal/notation"
	"xiangqi/internal/xiangqi"
)

var ErrNoNotation = errors.New("move has no unambiguous Chinese notation")

// 反查用的翻译器：不查将帅安全，只要棋子走法合法就能写出来
var describer = New(Options{}, nil)

// Describe 把坐标走法写成中文记谱，按 棋子纵线 → 前后中 → 前后中加纵线 的顺序
// 找第一个能原样翻回 m 的写法。
func Describe(pos *xiangqi.Position, m xiangqi.Move) (string, error) {
	pc := pos.PieceAt(m.From)
	if pc == 0 {
		return "", fmt.Errorf("%w: %s", xiangqi.ErrNoPiece, m.From)
	}
	if err := xiangqi.CheckMove(pos, m.From, m.To); err != nil {
		return "", err
	}
	side := pc.Side()
	kind := pc.Kind()

	view := *pos
	view.SideToMove = side

	n := notation.Notation{
		Kind:     kind,
		SideHint: side,
		Column:   xiangqi.WrittenColumn(side, m.From.Col()),
	}
	dr := m.To.Row() - m.From.Row()
	switch {
	case dr == 0:
		n.Action = notation.ActionHorizontal
		n.Target = xiangqi.WrittenColumn(side, m.To.Col())
	default:
		n.Action = notation.ActionAdvance
		if dr*xiangqi.ForwardDir(side) < 0 {
			n.Action = notation.ActionRetreat
		}
		switch kind {
		case xiangqi.PieceHorse, xiangqi.PieceAdvisor, xiangqi.PieceElephant:
			n.Target = xiangqi.WrittenColumn(side, m.To.Col())
		default:
			if dr < 0 {
				dr = -dr
			}
			n.Target = dr
		}
	}

	tries := []notation.Notation{n}
	for _, mod := range modifiersFor(&view, side, m.From) {
		withMod := n
		withMod.Modifier = mod
		withMod.Column = 0
		withCol := n
		withCol.Modifier = mod
		tries = append(tries, withMod, withCol)
	}
	for _, try := range tries {
		text := notation.Format(try, side)
		got, err := describer.Move(&view, text)
		if err == nil && got == m {
			return text, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNoNotation, m)
}

// 同线同类子里 from 排第几，对应可用的前后中
func modifiersFor(pos *xiangqi.Position, side xiangqi.Side, from xiangqi.Square) []notation.Modifier {
	pc := pos.PieceAt(from)
	var peers []xiangqi.PieceAt
	for _, pa := range pos.Pieces(side, pc.Kind()) {
		if pa.Square.Col() == from.Col() {
			peers = append(peers, pa)
		}
	}
	if len(peers) < 2 {
		return nil
	}
	sortFrontToBack(side, peers)
	idx := -1
	for i, pa := range peers {
		if pa.Square == from {
			idx = i
		}
	}
	switch {
	case idx == 0:
		return []notation.Modifier{notation.ModFront}
	case idx == len(peers)-1:
		return []notation.Modifier{notation.ModBack}
	case len(peers) == 3 && idx == 1:
		return []notation.Modifier{notation.ModMiddle}
	default:
		return nil
	}
}
