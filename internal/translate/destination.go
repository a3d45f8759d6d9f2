package translate

import (
	"fmt"

	"xiangqi/internal/notation"
	"xiangqi/internal/xiangqi"
)

// Destination 算出棋子按记谱走到哪一格，并按棋子走法校验（不含将帅安全）。
// 进退后面的数字：车炮帅兵是步数，马仕相是目标纵线。
func Destination(pos *xiangqi.Position, pa xiangqi.PieceAt, n notation.Notation) (xiangqi.Square, error) {
	side := pa.Piece.Side()
	kind := pa.Piece.Kind()
	row, col := pa.Square.Row(), pa.Square.Col()

	var to xiangqi.Square
	if n.Action == notation.ActionHorizontal {
		switch kind {
		case xiangqi.PieceHorse, xiangqi.PieceAdvisor, xiangqi.PieceElephant:
			return xiangqi.NoSquare, fmt.Errorf("%w: %s cannot move horizontally", xiangqi.ErrIllegalForKind, kind)
		case xiangqi.PieceGeneral, xiangqi.PieceChariot, xiangqi.PieceCannon, xiangqi.PieceSoldier:
			to = xiangqi.SquareAt(row, xiangqi.ColumnFor(side, n.Target))
		default:
			return xiangqi.NoSquare, fmt.Errorf("%w: unknown kind %d", xiangqi.ErrIllegalForKind, kind)
		}
	} else {
		dir := xiangqi.ForwardDir(side)
		if n.Action == notation.ActionRetreat {
			dir = -dir
		}
		switch kind {
		case xiangqi.PieceGeneral, xiangqi.PieceChariot, xiangqi.PieceCannon, xiangqi.PieceSoldier:
			to = xiangqi.SquareAt(row+dir*n.Target, col)
		case xiangqi.PieceHorse, xiangqi.PieceAdvisor, xiangqi.PieceElephant:
			tc := xiangqi.ColumnFor(side, n.Target)
			dc := tc - col
			if dc < 0 {
				dc = -dc
			}
			dr := 0
			switch {
			case kind == xiangqi.PieceHorse && dc == 1:
				dr = 2
			case kind == xiangqi.PieceHorse && dc == 2:
				dr = 1
			case kind == xiangqi.PieceAdvisor && dc == 1:
				dr = 1
			case kind == xiangqi.PieceElephant && dc == 2:
				dr = 2
			default:
				return xiangqi.NoSquare, fmt.Errorf("%w: %s cannot reach column %d from %s",
					xiangqi.ErrIllegalForKind, kind, n.Target, pa.Square)
			}
			to = xiangqi.SquareAt(row+dir*dr, tc)
		default:
			return xiangqi.NoSquare, fmt.Errorf("%w: unknown kind %d", xiangqi.ErrIllegalForKind, kind)
		}
	}

	if to == xiangqi.NoSquare {
		return xiangqi.NoSquare, fmt.Errorf("%w: %s from %s", xiangqi.ErrOffBoard, kind, pa.Square)
	}
	if err := xiangqi.CheckMove(pos, pa.Square, to); err != nil {
		return xiangqi.NoSquare, err
	}
	return to, nil
}
