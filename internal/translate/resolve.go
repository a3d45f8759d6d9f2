package translate

import (
	"errors"
	"fmt"
	"sort"

	"xiangqi/internal/notation"
	"xiangqi/internal/xiangqi"
)

var (
	ErrNoSuchPiece              = errors.New("no matching piece")
	ErrAmbiguousWithoutModifier = errors.New("several pieces match and no 前/后 modifier was given")
	ErrAmbiguousMiddle          = errors.New("中 needs exactly three pieces")
	ErrAmbiguousColumn          = errors.New("modifier does not pick a single column")
	ErrRedundantModifier        = errors.New("modifier given for a single piece")
	ErrWrongSideGlyph           = errors.New("piece character belongs to the other side")
)

// 前在后：离对方底线近的排前面，同一排按列号保持稳定
func sortFrontToBack(side xiangqi.Side, ps []xiangqi.PieceAt) {
	sort.SliceStable(ps, func(i, j int) bool {
		return xiangqi.FrontRank(side, ps[i].Square) < xiangqi.FrontRank(side, ps[j].Square)
	})
}

// candidates 找出记谱可能指的那组棋子，已按前后排好。
// 写了纵线就只看那一条线；没写（前马进七）就找同类子叠在一起的那条线，
// 一条都没有时退回全盘。
func candidates(pos *xiangqi.Position, side xiangqi.Side, n notation.Notation) ([]xiangqi.PieceAt, error) {
	all := pos.Pieces(side, n.Kind)

	if n.HasColumn() {
		col := xiangqi.ColumnFor(side, n.Column)
		var out []xiangqi.PieceAt
		for _, pa := range all {
			if pa.Square.Col() == col {
				out = append(out, pa)
			}
		}
		sortFrontToBack(side, out)
		return out, nil
	}

	var byCol [xiangqi.Cols][]xiangqi.PieceAt
	for _, pa := range all {
		c := pa.Square.Col()
		byCol[c] = append(byCol[c], pa)
	}
	var tandem []int
	for c, ps := range byCol {
		if len(ps) >= 2 {
			tandem = append(tandem, c)
		}
	}

	// 中只落在三子同线上，二子叠的线不算
	if n.Modifier == notation.ModMiddle && len(tandem) > 1 {
		var triple []int
		for _, c := range tandem {
			if len(byCol[c]) >= 3 {
				triple = append(triple, c)
			}
		}
		switch len(triple) {
		case 0:
			return nil, fmt.Errorf("%w: no column holds three %s %s", ErrAmbiguousMiddle, side, n.Kind)
		case 1:
			tandem = triple
		}
	}

	var out []xiangqi.PieceAt
	switch len(tandem) {
	case 0:
		out = all
	case 1:
		out = byCol[tandem[0]]
	default:
		return nil, fmt.Errorf("%w: %s %s stacked on %d columns", ErrAmbiguousColumn, side, n.Kind, len(tandem))
	}
	sortFrontToBack(side, out)
	return out, nil
}

// Resolve 在 pos 上为 side 找出记谱 n 所指的那一个棋子
func Resolve(pos *xiangqi.Position, side xiangqi.Side, n notation.Notation, opts Options) (xiangqi.PieceAt, error) {
	if opts.StrictGlyphSide && n.SideHint != xiangqi.NoSide && n.SideHint != side {
		return xiangqi.PieceAt{}, fmt.Errorf("%w: %s glyph used for %s", ErrWrongSideGlyph, n.SideHint, side)
	}

	cs, err := candidates(pos, side, n)
	if err != nil {
		return xiangqi.PieceAt{}, err
	}
	if len(cs) == 0 {
		if n.HasColumn() {
			return xiangqi.PieceAt{}, fmt.Errorf("%w: %s %s on column %d", ErrNoSuchPiece, side, n.Kind, n.Column)
		}
		return xiangqi.PieceAt{}, fmt.Errorf("%w: %s %s", ErrNoSuchPiece, side, n.Kind)
	}

	rank := func(i int) int { return xiangqi.FrontRank(side, cs[i].Square) }
	last := len(cs) - 1

	switch n.Modifier {
	case notation.ModNone:
		if len(cs) > 1 {
			return xiangqi.PieceAt{}, fmt.Errorf("%w: %d %s %s on column %d", ErrAmbiguousWithoutModifier, len(cs), side, n.Kind, n.Column)
		}
		return cs[0], nil

	case notation.ModMiddle:
		if len(cs) != 3 {
			return xiangqi.PieceAt{}, fmt.Errorf("%w: found %d", ErrAmbiguousMiddle, len(cs))
		}
		if rank(1) == rank(0) || rank(1) == rank(2) {
			return xiangqi.PieceAt{}, fmt.Errorf("%w: middle %s is level with another", ErrAmbiguousColumn, n.Kind)
		}
		return cs[1], nil

	case notation.ModFront, notation.ModBack:
		if len(cs) == 1 {
			if opts.StrictModifier {
				return xiangqi.PieceAt{}, fmt.Errorf("%w: only one %s %s", ErrRedundantModifier, side, n.Kind)
			}
			return cs[0], nil
		}
		if n.Modifier == notation.ModFront {
			if rank(0) == rank(1) {
				return xiangqi.PieceAt{}, fmt.Errorf("%w: two front %s level on different columns", ErrAmbiguousColumn, n.Kind)
			}
			return cs[0], nil
		}
		if rank(last) == rank(last-1) {
			return xiangqi.PieceAt{}, fmt.Errorf("%w: two rear %s level on different columns", ErrAmbiguousColumn, n.Kind)
		}
		return cs[last], nil
	}
	return xiangqi.PieceAt{}, fmt.Errorf("unknown modifier %d", n.Modifier)
}

// 仕、相同线时靠进退就能分清，不必写前后：只留下能走这一步的那个
func resolveByDestination(pos *xiangqi.Position, side xiangqi.Side, n notation.Notation) (xiangqi.PieceAt, error) {
	cs, err := candidates(pos, side, n)
	if err != nil {
		return xiangqi.PieceAt{}, err
	}
	var found []xiangqi.PieceAt
	for _, pa := range cs {
		if _, err := Destination(pos, pa, n); err == nil {
			found = append(found, pa)
		}
	}
	if len(found) != 1 {
		return xiangqi.PieceAt{}, fmt.Errorf("%w: %d %s %s can make the move", ErrAmbiguousWithoutModifier, len(found), side, n.Kind)
	}
	return found[0], nil
}
