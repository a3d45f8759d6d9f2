package xiangqi

import "fmt"

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// 同一直线上 from、to 之间（不含两端）的棋子数；不在同一直线返回 -1
func (p *Position) countBetween(from, to Square) int {
	fr, fc := from.Row(), from.Col()
	tr, tc := to.Row(), to.Col()
	if fr != tr && fc != tc {
		return -1
	}
	dr, dc := sign(tr-fr), sign(tc-fc)
	n := 0
	for r, c := fr+dr, fc+dc; r != tr || c != tc; r, c = r+dr, c+dc {
		if p.Board.Squares[SquareAt(r, c)] != 0 {
			n++
		}
	}
	return n
}

// CheckMove 按棋子本身的走法校验 from→to（伪合法：不考虑将帅安全）。
// 返回的错误都包裹 ErrNoPiece/ErrOffBoard/ErrCapturesOwnPiece/ErrIllegalForKind/ErrBlocked 之一。
func CheckMove(p *Position, from, to Square) error {
	pc := p.PieceAt(from)
	if pc == 0 {
		return fmt.Errorf("%w: %s", ErrNoPiece, from)
	}
	if !to.Valid() {
		return fmt.Errorf("%w: %s from %s", ErrOffBoard, pc, from)
	}
	if from == to {
		return fmt.Errorf("%w: %s must leave %s", ErrIllegalForKind, pc, from)
	}
	side := pc.Side()
	if dst := p.Board.Squares[to]; dst != 0 && dst.Side() == side {
		return fmt.Errorf("%w: %s on %s", ErrCapturesOwnPiece, dst, to)
	}

	dr := to.Row() - from.Row()
	dc := to.Col() - from.Col()
	illegal := func(why string) error {
		return fmt.Errorf("%w: %s %s-%s %s", ErrIllegalForKind, pc, from, to, why)
	}
	blocked := func(why string) error {
		return fmt.Errorf("%w: %s %s-%s %s", ErrBlocked, pc, from, to, why)
	}

	switch pc.Kind() {
	case PieceGeneral:
		if abs(dr)+abs(dc) != 1 {
			return illegal("moves exactly one step orthogonally")
		}
		if !inPalace(side, to.Row(), to.Col()) {
			return illegal("must stay inside the palace")
		}
	case PieceAdvisor:
		if abs(dr) != 1 || abs(dc) != 1 {
			return illegal("moves exactly one step diagonally")
		}
		if !inPalace(side, to.Row(), to.Col()) {
			return illegal("must stay inside the palace")
		}
	case PieceElephant:
		if abs(dr) != 2 || abs(dc) != 2 {
			return illegal("moves exactly two steps diagonally")
		}
		if !inOwnHalf(side, to.Row()) {
			return illegal("cannot cross the river")
		}
		if p.Board.Squares[SquareAt(from.Row()+dr/2, from.Col()+dc/2)] != 0 {
			return blocked("by a piece on the elephant eye")
		}
	case PieceHorse:
		if !(abs(dr) == 2 && abs(dc) == 1) && !(abs(dr) == 1 && abs(dc) == 2) {
			return illegal("moves in an L shape")
		}
		if p.Board.Squares[horseLeg(from, dr, dc)] != 0 {
			return blocked("by a piece on the horse leg")
		}
	case PieceChariot:
		n := p.countBetween(from, to)
		if n < 0 {
			return illegal("moves along a rank or file")
		}
		if n > 0 {
			return blocked(fmt.Sprintf("by %d piece(s) in between", n))
		}
	case PieceCannon:
		n := p.countBetween(from, to)
		if n < 0 {
			return illegal("moves along a rank or file")
		}
		if p.Board.Squares[to] == 0 {
			if n > 0 {
				return blocked(fmt.Sprintf("by %d piece(s) in between", n))
			}
		} else if n != 1 {
			return blocked(fmt.Sprintf("captures need exactly one screen, found %d", n))
		}
	case PieceSoldier:
		switch {
		case dc == 0 && dr == ForwardDir(side):
		case dr == 0 && abs(dc) == 1:
			if !crossedRiver(side, from.Row()) {
				return illegal("cannot move sideways before crossing the river")
			}
		default:
			return illegal("moves one step forward, or sideways after crossing the river")
		}
	default:
		return illegal("unknown piece kind")
	}
	return nil
}

// ValidateMove 在 CheckMove 基础上再要求走完后己方将帅不被攻击、不与对方将帅对脸
func ValidateMove(p *Position, m Move) error {
	if err := CheckMove(p, m.From, m.To); err != nil {
		return err
	}
	side := p.Board.Squares[m.From].Side()
	np := p.ApplyUnchecked(m)
	if np.kingsFace() {
		return fmt.Errorf("%w: generals would face each other after %s", ErrExposesGeneral, m)
	}
	if np.IsInCheck(side) {
		return fmt.Errorf("%w: %s general is attacked after %s", ErrExposesGeneral, side, m)
	}
	return nil
}
