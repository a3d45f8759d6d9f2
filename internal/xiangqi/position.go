package xiangqi

func (p *Position) GeneralSquare(side Side) Square {
	for sq, pc := range p.Board.Squares {
		if pc != 0 && pc.Kind() == PieceGeneral && pc.Side() == side {
			return Square(sq)
		}
	}
	return NoSquare
}

func (p *Position) kingsFace() bool {
	red := p.GeneralSquare(Red)
	black := p.GeneralSquare(Black)
	if red == NoSquare || black == NoSquare {
		return false
	}
	if red.Col() != black.Col() {
		// 不在同一列，不可能对脸
		return false
	}
	// 中间有子，不算“对脸”
	return p.countBetween(black, red) == 0
}

// Pieces 返回 side 方所有 kind 兵种的棋子，按格子顺序
func (p *Position) Pieces(side Side, kind PieceKind) []PieceAt {
	var out []PieceAt
	want := MakePiece(side, kind)
	for sq, pc := range p.Board.Squares {
		if pc != 0 && pc == want {
			out = append(out, PieceAt{Piece: pc, Square: Square(sq)})
		}
	}
	return out
}
