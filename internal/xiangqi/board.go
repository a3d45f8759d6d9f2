package xiangqi

import (
	"strings"
	"unicode"
)

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols

	// 河界：红方在下（5..9 行），黑方在上（0..4 行）
	RiverRow = 5
)

// Square = row*Cols + col；row 0 是黑方底线，col 0 是 a 线
type Square int

const NoSquare Square = -1

func SquareAt(row, col int) Square {
	if !OnBoard(row, col) {
		return NoSquare
	}
	return Square(row*Cols + col)
}

func (sq Square) Row() int { return int(sq) / Cols }
func (sq Square) Col() int { return int(sq) % Cols }

func (sq Square) Valid() bool {
	return sq >= 0 && sq < NumSquares
}

func (sq Square) String() string {
	if !sq.Valid() {
		return "--"
	}
	return SquareICCS(sq)
}

func OnBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// 前进方向：红向上(-1)，黑向下(+1)
func ForwardDir(side Side) int {
	switch side {
	case Red:
		return -1
	case Black:
		return +1
	default:
		return 0
	}
}

// 是否已经过河
func crossedRiver(side Side, row int) bool {
	switch side {
	case Red:
		return row < RiverRow
	case Black:
		return row >= RiverRow
	default:
		return false
	}
}

// 是否在九宫
func inPalace(side Side, row, col int) bool {
	if col < 3 || col > 5 {
		return false
	}
	switch side {
	case Black:
		return row >= 0 && row <= 2
	case Red:
		return row >= 7 && row <= 9
	default:
		return false
	}
}

// 相不能过河
func inOwnHalf(side Side, row int) bool {
	return OnBoard(row, 0) && !crossedRiver(side, row)
}

// ColumnFor 把走子方视角的纵线号（1..9，从自己右手边数起）换成棋盘列号。
// 红方一路在 i 线，黑方一路在 a 线。非法输入返回 -1。
func ColumnFor(side Side, written int) int {
	if written < 1 || written > Cols {
		return -1
	}
	switch side {
	case Red:
		return Cols - written
	case Black:
		return written - 1
	default:
		return -1
	}
}

// WrittenColumn 是 ColumnFor 的逆运算
func WrittenColumn(side Side, col int) int {
	if col < 0 || col >= Cols {
		return -1
	}
	switch side {
	case Red:
		return Cols - col
	case Black:
		return col + 1
	default:
		return -1
	}
}

// 离对方底线的远近：越小越靠前
func frontRank(side Side, row int) int {
	if side == Black {
		return Rows - 1 - row
	}
	return row
}

// FrontRank 返回 sq 相对 side 的前后序号，0 表示已在对方底线
func FrontRank(side Side, sq Square) int {
	return frontRank(side, sq.Row())
}

var letterToKind = map[rune]PieceKind{
	'k': PieceGeneral,
	'a': PieceAdvisor,
	'b': PieceElephant,
	'e': PieceElephant, // 兼容 E 记法
	'n': PieceHorse,
	'h': PieceHorse, // 兼容 H 记法
	'r': PieceChariot,
	'c': PieceCannon,
	'p': PieceSoldier,
}

var kindToLetter = map[PieceKind]rune{
	PieceGeneral:  'k',
	PieceAdvisor:  'a',
	PieceElephant: 'b',
	PieceHorse:    'n',
	PieceChariot:  'r',
	PieceCannon:   'c',
	PieceSoldier:  'p',
}

func pieceToChar(p Piece) rune {
	if p == 0 {
		return '.'
	}
	base, ok := kindToLetter[p.Kind()]
	if !ok {
		return '.'
	}
	if p.Side() == Red {
		return unicode.ToUpper(base)
	}
	return base
}

const InitialFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1"

func InitialPosition() *Position {
	pos, err := ParseFEN(InitialFEN)
	if err != nil {
		panic("initial FEN: " + err.Error())
	}
	return pos
}

// String 画出文本棋盘，黑方在上
func (p *Position) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		sb.WriteByte(byte('0' + Rows - 1 - r))
		for c := 0; c < Cols; c++ {
			sb.WriteByte(' ')
			sb.WriteRune(pieceToChar(p.Board.Squares[SquareAt(r, c)]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h i")
	return sb.String()
}
