package xiangqi

var (
	rookDirs   = [4][2]int{{-1, 0}, {+1, 0}, {0, -1}, {0, +1}}
	bishopDirs = [4][2]int{{-1, -1}, {-1, +1}, {+1, -1}, {+1, +1}}
)

// 目标格为空或为对方棋子时才能落子
func canLand(p *Position, side Side, row, col int) bool {
	dst := p.Board.Squares[SquareAt(row, col)]
	return dst == 0 || dst.Side() != side
}

// 车：横竖随便走
func genChariotMoves(p *Position, from Square, moves *[]Move) {
	row, col := from.Row(), from.Col()
	side := p.Board.Squares[from].Side()
	for _, d := range rookDirs {
		r, c := row+d[0], col+d[1]
		for OnBoard(r, c) {
			to := SquareAt(r, c)
			pc := p.Board.Squares[to]
			if pc == 0 {
				*moves = append(*moves, Move{From: from, To: to})
			} else {
				if pc.Side() != side {
					*moves = append(*moves, Move{From: from, To: to})
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// 炮：车走法 + 隔一子吃
func genCannonMoves(p *Position, from Square, moves *[]Move) {
	row, col := from.Row(), from.Col()
	side := p.Board.Squares[from].Side()
	for _, d := range rookDirs {
		r, c := row+d[0], col+d[1]

		// 走子阶段：直到第一个棋子
		for OnBoard(r, c) {
			to := SquareAt(r, c)
			if p.Board.Squares[to] == 0 {
				*moves = append(*moves, Move{From: from, To: to})
				r += d[0]
				c += d[1]
				continue
			}
			r += d[0]
			c += d[1]
			break
		}

		// 吃子阶段：越过炮架，遇到第一子可吃
		for OnBoard(r, c) {
			to := SquareAt(r, c)
			pc := p.Board.Squares[to]
			if pc != 0 {
				if pc.Side() != side {
					*moves = append(*moves, Move{From: from, To: to})
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// 相：田字 + 不过河 + 塞象眼
func genElephantMoves(p *Position, from Square, moves *[]Move) {
	row, col := from.Row(), from.Col()
	side := p.Board.Squares[from].Side()
	for _, d := range bishopDirs {
		r := row + 2*d[0]
		c := col + 2*d[1]
		if !OnBoard(r, c) || !inOwnHalf(side, r) {
			continue
		}
		if p.Board.Squares[SquareAt(row+d[0], col+d[1])] != 0 {
			continue
		}
		if canLand(p, side, r, c) {
			*moves = append(*moves, Move{From: from, To: SquareAt(r, c)})
		}
	}
}

// 士：九宫内斜走一格
func genAdvisorMoves(p *Position, from Square, moves *[]Move) {
	row, col := from.Row(), from.Col()
	side := p.Board.Squares[from].Side()
	for _, d := range bishopDirs {
		r := row + d[0]
		c := col + d[1]
		if !OnBoard(r, c) || !inPalace(side, r, c) {
			continue
		}
		if canLand(p, side, r, c) {
			*moves = append(*moves, Move{From: from, To: SquareAt(r, c)})
		}
	}
}

// 将：九宫内上下左右一格（对脸由 GenerateLegalMoves 过滤）
func genGeneralMoves(p *Position, from Square, moves *[]Move) {
	row, col := from.Row(), from.Col()
	side := p.Board.Squares[from].Side()
	for _, d := range rookDirs {
		r := row + d[0]
		c := col + d[1]
		if !OnBoard(r, c) || !inPalace(side, r, c) {
			continue
		}
		if canLand(p, side, r, c) {
			*moves = append(*moves, Move{From: from, To: SquareAt(r, c)})
		}
	}
}
