package notation

import (
	"errors"
	"testing"

	"xiangqi/internal/xiangqi"
)

func TestParseForms(t *testing.T) {
	cases := []struct {
		text string
		want Notation
	}{
		{"炮二平五", Notation{Kind: xiangqi.PieceCannon, SideHint: xiangqi.NoSide, Column: 2, Action: ActionHorizontal, Target: 5}},
		{"馬二進三", Notation{Kind: xiangqi.PieceHorse, SideHint: xiangqi.NoSide, Column: 2, Action: ActionAdvance, Target: 3}},
		{"马8进7", Notation{Kind: xiangqi.PieceHorse, SideHint: xiangqi.NoSide, Column: 8, Action: ActionAdvance, Target: 7}},
		{"砲８平５", Notation{Kind: xiangqi.PieceCannon, SideHint: xiangqi.Black, Column: 8, Action: ActionHorizontal, Target: 5}},
		{" 帅五进一 ", Notation{Kind: xiangqi.PieceGeneral, SideHint: xiangqi.Red, Column: 5, Action: ActionAdvance, Target: 1}},
		{"將5下1", Notation{Kind: xiangqi.PieceGeneral, SideHint: xiangqi.Black, Column: 5, Action: ActionRetreat, Target: 1}},
		{"车一横二", Notation{Kind: xiangqi.PieceChariot, SideHint: xiangqi.NoSide, Column: 1, Action: ActionHorizontal, Target: 2}},
		{"前马进七", Notation{Kind: xiangqi.PieceHorse, SideHint: xiangqi.NoSide, Modifier: ModFront, Action: ActionAdvance, Target: 7}},
		{"後車退二", Notation{Kind: xiangqi.PieceChariot, SideHint: xiangqi.NoSide, Modifier: ModBack, Action: ActionRetreat, Target: 2}},
		{"中兵平四", Notation{Kind: xiangqi.PieceSoldier, SideHint: xiangqi.Red, Modifier: ModMiddle, Action: ActionHorizontal, Target: 4}},
		{"前兵五进一", Notation{Kind: xiangqi.PieceSoldier, SideHint: xiangqi.Red, Modifier: ModFront, Column: 5, Action: ActionAdvance, Target: 1}},
		{"前五进一", Notation{Kind: xiangqi.PieceSoldier, SideHint: xiangqi.NoSide, Modifier: ModFront, Column: 5, Action: ActionAdvance, Target: 1}},
		{"后3平4", Notation{Kind: xiangqi.PieceSoldier, SideHint: xiangqi.NoSide, Modifier: ModBack, Column: 3, Action: ActionHorizontal, Target: 4}},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			got, err := Parse(tc.text)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		text string
		want error
	}{
		{"", ErrInvalidLength},
		{"炮二平", ErrInvalidLength},
		{"炮二平五六七", ErrInvalidLength},
		{"炮二二平五", ErrInvalidLength},
		{"王二平五", ErrUnknownPieceChar},
		{"前王进一", ErrUnknownPieceChar},
		{"前王二进一", ErrUnknownPieceChar},
		{"炮二走五", ErrUnknownActionChar},
		{"炮十平五", ErrInvalidDigit},
		{"炮二平零", ErrInvalidDigit},
		{"炮0平5", ErrInvalidDigit},
		{"前车十进一", ErrInvalidDigit},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			_, err := Parse(tc.text)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v want %v", err, tc.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		n    Notation
		side xiangqi.Side
		want string
	}{
		{Notation{Kind: xiangqi.PieceCannon, Column: 2, Action: ActionHorizontal, Target: 5}, xiangqi.Red, "炮二平五"},
		{Notation{Kind: xiangqi.PieceHorse, Column: 8, Action: ActionAdvance, Target: 7}, xiangqi.Black, "马8进7"},
		{Notation{Kind: xiangqi.PieceSoldier, Modifier: ModBack, Action: ActionHorizontal, Target: 4}, xiangqi.Red, "后兵平四"},
		{Notation{Kind: xiangqi.PieceSoldier, Modifier: ModFront, Column: 3, Action: ActionAdvance, Target: 1}, xiangqi.Black, "前卒3进1"},
		{Notation{Kind: xiangqi.PieceGeneral, Column: 5, Action: ActionRetreat, Target: 1}, xiangqi.Black, "将5退1"},
	}
	for _, tc := range cases {
		got := Format(tc.n, tc.side)
		if got != tc.want {
			t.Errorf("got %s want %s", got, tc.want)
		}
		back, err := Parse(got)
		if err != nil {
			t.Fatalf("reparse %s: %v", got, err)
		}
		back.SideHint = xiangqi.NoSide
		tc.n.SideHint = xiangqi.NoSide
		if back != tc.n {
			t.Errorf("reparse %s: got %+v want %+v", got, back, tc.n)
		}
	}
}
