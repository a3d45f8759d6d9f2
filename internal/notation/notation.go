// Package notation 解析中文记谱（如“炮二平五”“前马进七”），不看棋盘。
package notation

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/width"

	"xiangqi/internal/xiangqi"
)

var (
	ErrInvalidLength     = errors.New("notation must be four or five characters")
	ErrUnknownPieceChar  = errors.New("unknown piece character")
	ErrUnknownActionChar = errors.New("unknown action character")
	ErrInvalidDigit      = errors.New("invalid digit")
)

type Modifier int8

const (
	ModNone Modifier = iota
	ModFront
	ModBack
	ModMiddle
)

func (m Modifier) String() string {
	switch m {
	case ModFront:
		return "前"
	case ModBack:
		return "后"
	case ModMiddle:
		return "中"
	default:
		return ""
	}
}

type Action int8

const (
	ActionAdvance Action = iota
	ActionRetreat
	ActionHorizontal
)

func (a Action) String() string {
	switch a {
	case ActionAdvance:
		return "进"
	case ActionRetreat:
		return "退"
	case ActionHorizontal:
		return "平"
	default:
		return "?"
	}
}

// Notation 是一步中文记谱拆开后的结果。
// Column 是走子方视角的纵线号，0 表示没写（只出现在带前后中的写法里）。
// Target 在“平”时是目标纵线；进退时对车炮帅兵是步数，对马仕相是目标纵线。
type Notation struct {
	Kind     xiangqi.PieceKind
	SideHint xiangqi.Side
	Modifier Modifier
	Column   int
	Action   Action
	Target   int
}

// HasColumn 报告记谱里是否写了起始纵线
func (n Notation) HasColumn() bool { return n.Column > 0 }

func normalize(text string) []rune {
	folded := width.Fold.String(text)
	return []rune(strings.Join(strings.Fields(folded), ""))
}

// Parse 支持四种写法：
//
//	炮二平五   棋子 纵线 动作 数字
//	前马进七   前后中 棋子 动作 数字
//	前兵五进一 前后中 棋子 纵线 动作 数字
//	前五进一   前后中 纵线 动作 数字（兵卒的简写）
func Parse(text string) (Notation, error) {
	rs := normalize(text)
	n := Notation{SideHint: xiangqi.NoSide}

	switch len(rs) {
	case 4:
		if mod, ok := modifierGlyphs[rs[0]]; ok {
			n.Modifier = mod
			if _, isPiece := pieceGlyphs[rs[1]]; isPiece {
				if err := n.setPiece(rs[1]); err != nil {
					return Notation{}, err
				}
			} else if col, isDigit := digitValue(rs[1]); isDigit {
				n.Kind = xiangqi.PieceSoldier
				n.Column = col
			} else {
				return Notation{}, fmt.Errorf("%w: %q in %q", ErrUnknownPieceChar, rs[1], text)
			}
			return n, n.setTail(rs[2], rs[3], text)
		}
		if err := n.setPiece(rs[0]); err != nil {
			return Notation{}, err
		}
		col, ok := digitValue(rs[1])
		if !ok {
			return Notation{}, fmt.Errorf("%w: column %q in %q", ErrInvalidDigit, rs[1], text)
		}
		n.Column = col
		return n, n.setTail(rs[2], rs[3], text)

	case 5:
		mod, ok := modifierGlyphs[rs[0]]
		if !ok {
			return Notation{}, fmt.Errorf("%w: five-character %q must start with 前/后/中", ErrInvalidLength, text)
		}
		n.Modifier = mod
		if err := n.setPiece(rs[1]); err != nil {
			return Notation{}, err
		}
		col, ok := digitValue(rs[2])
		if !ok {
			return Notation{}, fmt.Errorf("%w: column %q in %q", ErrInvalidDigit, rs[2], text)
		}
		n.Column = col
		return n, n.setTail(rs[3], rs[4], text)

	default:
		return Notation{}, fmt.Errorf("%w: %q has %d", ErrInvalidLength, text, len(rs))
	}
}

func (n *Notation) setPiece(r rune) error {
	g, ok := pieceGlyphs[r]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPieceChar, r)
	}
	n.Kind = g.Kind
	n.SideHint = g.Side
	return nil
}

func (n *Notation) setTail(action, target rune, text string) error {
	a, ok := actionGlyphs[action]
	if !ok {
		return fmt.Errorf("%w: %q in %q", ErrUnknownActionChar, action, text)
	}
	v, ok := digitValue(target)
	if !ok {
		return fmt.Errorf("%w: target %q in %q", ErrInvalidDigit, target, text)
	}
	n.Action = a
	n.Target = v
	return nil
}

// Format 按 side 的习惯写出记谱：红方用汉字数字，黑方用阿拉伯数字
func Format(n Notation, side xiangqi.Side) string {
	names := redNames
	if side == xiangqi.Black {
		names = blackNames
	}
	digit := func(v int) string {
		if v < 1 || v > 9 {
			return "?"
		}
		if side == xiangqi.Black {
			return string(rune('0' + v))
		}
		return string(chineseDigits[v-1])
	}

	var sb strings.Builder
	sb.WriteString(n.Modifier.String())
	sb.WriteRune(names[n.Kind])
	if n.HasColumn() {
		sb.WriteString(digit(n.Column))
	}
	sb.WriteString(n.Action.String())
	sb.WriteString(digit(n.Target))
	return sb.String()
}

func (n Notation) String() string {
	side := n.SideHint
	if side == xiangqi.NoSide {
		side = xiangqi.Red
	}
	return Format(n, side)
}
