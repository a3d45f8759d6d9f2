package xiangqi

import "fmt"

// ICCS 坐标与走子方无关：a..i 从左到右，0..9 从红方底线往上
func SquareICCS(sq Square) string {
	return string([]byte{byte('a' + sq.Col()), byte('0' + Rows - 1 - sq.Row())})
}

func ParseSquareICCS(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'i' || rank < '0' || rank > '9' {
		return NoSquare, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	return SquareAt(Rows-1-int(rank-'0'), int(file-'a')), nil
}

func (m Move) ICCS() string {
	return SquareICCS(m.From) + SquareICCS(m.To)
}

func (m Move) String() string {
	if !m.From.Valid() || !m.To.Valid() {
		return "----"
	}
	return m.ICCS()
}

func ParseMoveICCS(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("%w: move %q", ErrBadCoordinate, s)
	}
	from, err := ParseSquareICCS(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquareICCS(s[2:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}
