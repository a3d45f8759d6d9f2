package xiangqi

// 兵：未过河只能直进一格；过河后可进一格或左右一格，永不后退
func genSoldierMoves(p *Position, from Square, moves *[]Move) {
	row, col := from.Row(), from.Col()
	pc := p.Board.Squares[from]
	if pc == 0 {
		return
	}
	side := pc.Side()

	if r := row + ForwardDir(side); OnBoard(r, col) && canLand(p, side, r, col) {
		*moves = append(*moves, Move{From: from, To: SquareAt(r, col)})
	}

	if !crossedRiver(side, row) {
		return
	}
	for _, dc := range []int{-1, +1} {
		c := col + dc
		if OnBoard(row, c) && canLand(p, side, row, c) {
			*moves = append(*moves, Move{From: from, To: SquareAt(row, c)})
		}
	}
}
