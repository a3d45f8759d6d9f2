package xiangqi

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Black  Side = 1
)

func (s Side) Opposite() Side {
	switch s {
	case Red:
		return Black
	case Black:
		return Red
	default:
		return NoSide
	}
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "none"
	}
}

type PieceKind int8

const (
	PieceNone     PieceKind = iota
	PieceGeneral            // 帅 / 将
	PieceAdvisor            // 仕 / 士
	PieceElephant           // 相 / 象
	PieceHorse              // 马
	PieceChariot            // 车
	PieceCannon             // 炮
	PieceSoldier            // 兵 / 卒
)

// 开局时每方各兵种的数量上限
func (k PieceKind) MaxCount() int {
	switch k {
	case PieceGeneral:
		return 1
	case PieceAdvisor, PieceElephant, PieceHorse, PieceChariot, PieceCannon:
		return 2
	case PieceSoldier:
		return 5
	default:
		return 0
	}
}

func (k PieceKind) String() string {
	switch k {
	case PieceGeneral:
		return "general"
	case PieceAdvisor:
		return "advisor"
	case PieceElephant:
		return "elephant"
	case PieceHorse:
		return "horse"
	case PieceChariot:
		return "chariot"
	case PieceCannon:
		return "cannon"
	case PieceSoldier:
		return "soldier"
	default:
		return "none"
	}
}

type Piece int8 // 0=空；>0 红；<0 黑；abs=PieceKind

func MakePiece(side Side, kind PieceKind) Piece {
	if kind == PieceNone || side == NoSide {
		return 0
	}
	if side == Red {
		return Piece(kind)
	}
	return -Piece(kind)
}

func (p Piece) Kind() PieceKind {
	if p < 0 {
		return PieceKind(-p)
	}
	return PieceKind(p)
}

func (p Piece) Side() Side {
	if p == 0 {
		return NoSide
	}
	if p > 0 {
		return Red
	}
	return Black
}

func (p Piece) String() string {
	if p == 0 {
		return "empty"
	}
	return p.Side().String() + " " + p.Kind().String()
}

type Board struct {
	Squares [NumSquares]Piece
}

// PieceAt 是棋盘上某一格的具体棋子
type PieceAt struct {
	Piece  Piece
	Square Square
}

type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// Position = 棋盘 + 轮到谁走 + 回合计数
type Position struct {
	Board      Board
	SideToMove Side
	HalfMove   int
	FullMove   int
}

func (p *Position) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return 0
	}
	return p.Board.Squares[sq]
}
