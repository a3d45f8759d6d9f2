package xiangqi

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// FEN 从黑方底线写到红方底线，每行从 a 线到 i 线；空格后 w/b 表示先后，
// 之后可选 "- - 半回合 回合"。输入时 r 也视为红方。
func (p *Position) FEN() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := p.Board.Squares[SquareAt(r, c)]
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if p.SideToMove == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	fmt.Fprintf(&sb, " - - %d %d", p.HalfMove, p.FullMove)
	return sb.String()
}

func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: want board and side fields, got %d field(s)", ErrInvalidFEN, len(parts))
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, fmt.Errorf("%w: want %d ranks, got %d", ErrInvalidFEN, Rows, len(rows))
	}

	pos := &Position{FullMove: 1}
	var counts [2][PieceSoldier + 1]int
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				if c > Cols {
					return nil, fmt.Errorf("%w: rank %d %q is wider than %d", ErrMalformedRank, r+1, row, Cols)
				}
				continue
			}
			kind, ok := letterToKind[unicode.ToLower(ch)]
			if !ok {
				return nil, fmt.Errorf("%w: %q in rank %d", ErrUnknownPieceChar, ch, r+1)
			}
			if c >= Cols {
				return nil, fmt.Errorf("%w: rank %d %q is wider than %d", ErrMalformedRank, r+1, row, Cols)
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = Red
			}
			counts[side][kind]++
			if counts[side][kind] > kind.MaxCount() {
				return nil, fmt.Errorf("%w: %s has more than %d %s", ErrTooManyPieces, side, kind.MaxCount(), kind)
			}
			pos.Board.Squares[SquareAt(r, c)] = MakePiece(side, kind)
			c++
		}
		if c != Cols {
			return nil, fmt.Errorf("%w: rank %d %q covers %d columns", ErrMalformedRank, r+1, row, c)
		}
	}
	for _, side := range []Side{Red, Black} {
		if counts[side][PieceGeneral] != 1 {
			return nil, fmt.Errorf("%w: %s has none", ErrMissingGeneral, side)
		}
	}

	switch parts[1] {
	case "w", "r":
		pos.SideToMove = Red
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("%w: unknown side %q", ErrInvalidFEN, parts[1])
	}

	// 第 3、4 段在象棋里恒为 "-"，忽略
	if len(parts) > 4 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: halfmove clock %q", ErrInvalidFEN, parts[4])
		}
		pos.HalfMove = n
	}
	if len(parts) > 5 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: fullmove number %q", ErrInvalidFEN, parts[5])
		}
		pos.FullMove = n
	}
	return pos, nil
}
