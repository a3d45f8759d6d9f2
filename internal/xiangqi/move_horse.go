package xiangqi

// 马 8 种“日”字：终点 + 马腿
var horseLegMoves = [8]struct {
	Dr, Dc int // 终点
	Br, Bc int // 马腿
}{
	{-2, -1, -1, 0},
	{-2, +1, -1, 0},
	{-1, -2, 0, -1},
	{-1, +2, 0, +1},
	{+1, -2, 0, -1},
	{+1, +2, 0, +1},
	{+2, -1, +1, 0},
	{+2, +1, +1, 0},
}

func genHorseMoves(p *Position, from Square, moves *[]Move) {
	row, col := from.Row(), from.Col()
	side := p.Board.Squares[from].Side()
	for _, m := range horseLegMoves {
		r := row + m.Dr
		c := col + m.Dc
		if !OnBoard(r, c) {
			continue
		}
		if p.Board.Squares[SquareAt(row+m.Br, col+m.Bc)] != 0 {
			continue // 憋马腿
		}
		if canLand(p, side, r, c) {
			*moves = append(*moves, Move{From: from, To: SquareAt(r, c)})
		}
	}
}

// 马腿在长边方向上紧挨起点的那一格
func horseLeg(from Square, dr, dc int) Square {
	if abs(dr) == 2 {
		return SquareAt(from.Row()+dr/2, from.Col())
	}
	return SquareAt(from.Row(), from.Col()+dc/2)
}
