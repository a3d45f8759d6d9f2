package xiangqi

func genPieceMoves(p *Position, sq Square, moves *[]Move) {
	pc := p.Board.Squares[sq]
	switch pc.Kind() {
	case PieceGeneral:
		genGeneralMoves(p, sq, moves)
	case PieceAdvisor:
		genAdvisorMoves(p, sq, moves)
	case PieceElephant:
		genElephantMoves(p, sq, moves)
	case PieceHorse:
		genHorseMoves(p, sq, moves)
	case PieceChariot:
		genChariotMoves(p, sq, moves)
	case PieceCannon:
		genCannonMoves(p, sq, moves)
	case PieceSoldier:
		genSoldierMoves(p, sq, moves)
	}
}

// 生成指定一方的伪合法走法
func (p *Position) GeneratePseudoMovesForSide(side Side) []Move {
	var moves []Move
	for sq := Square(0); sq < NumSquares; sq++ {
		pc := p.Board.Squares[sq]
		if pc == 0 || pc.Side() != side {
			continue
		}
		genPieceMoves(p, sq, &moves)
	}
	return moves
}

// 伪合法（不考虑自己将帅被将军）
func (p *Position) GeneratePseudoMoves() []Move {
	return p.GeneratePseudoMovesForSide(p.SideToMove)
}

// GenerateLegalMoves 生成当前走子方的合法走法：不能对脸，不能送将
func (p *Position) GenerateLegalMoves() []Move {
	pseudo := p.GeneratePseudoMoves()
	out := make([]Move, 0, len(pseudo))
	side := p.SideToMove
	for _, mv := range pseudo {
		np := p.ApplyUnchecked(mv)
		if np.kingsFace() || np.IsInCheck(side) {
			continue
		}
		out = append(out, mv)
	}
	return out
}

// ApplyUnchecked 直接落子，不做任何校验
func (p *Position) ApplyUnchecked(m Move) *Position {
	np := *p
	pc := p.Board.Squares[m.From]
	captured := p.Board.Squares[m.To]
	np.Board.Squares[m.To] = pc
	np.Board.Squares[m.From] = 0
	if captured != 0 {
		np.HalfMove = 0
	} else {
		np.HalfMove = p.HalfMove + 1
	}
	if pc.Side() == Black {
		np.FullMove = p.FullMove + 1
	}
	np.SideToMove = pc.Side().Opposite()
	return &np
}

// 应用走子：起点必须是走子方的棋子且走法合法
func (p *Position) ApplyMove(m Move) (*Position, bool) {
	if !m.From.Valid() || !m.To.Valid() {
		return nil, false
	}
	pc := p.Board.Squares[m.From]
	if pc == 0 || pc.Side() != p.SideToMove {
		return nil, false
	}
	if ValidateMove(p, m) != nil {
		return nil, false
	}
	return p.ApplyUnchecked(m), true
}
