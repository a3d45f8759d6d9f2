package xiangqi

// IsAttacked 判断 sq 这个格子是否被 bySide 这一方攻击。
// 采用走法模拟：只要对方任何一个棋子能“走到”这个位置，就说明该位置被攻击。
func (p *Position) IsAttacked(sq Square, bySide Side) bool {
	var moves []Move
	for s := Square(0); s < NumSquares; s++ {
		pc := p.Board.Squares[s]
		if pc == 0 || pc.Side() != bySide {
			continue
		}
		// 士、相过不了河，攻击不到对方九宫
		if k := pc.Kind(); k == PieceAdvisor || k == PieceElephant {
			continue
		}
		moves = moves[:0]
		genPieceMoves(p, s, &moves)
		for _, mv := range moves {
			if mv.To == sq {
				return true
			}
		}
	}
	return false
}

// IsInCheck 判断 side 这一方的将帅是否被将军
func (p *Position) IsInCheck(side Side) bool {
	sq := p.GeneralSquare(side)
	if sq == NoSquare {
		return false
	}
	return p.IsAttacked(sq, side.Opposite())
}

type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusCheckmate Status = "checkmate"
	StatusStalemate Status = "stalemate"
)

// Status 判断当前走子方是否已无棋可走（象棋里困毙同样判负）
func (p *Position) Status() Status {
	if len(p.GenerateLegalMoves()) > 0 {
		return StatusOngoing
	}
	if p.IsInCheck(p.SideToMove) {
		return StatusCheckmate
	}
	return StatusStalemate
}
