package notation

import "xiangqi/internal/xiangqi"

type glyph struct {
	Kind xiangqi.PieceKind
	Side xiangqi.Side // NoSide 表示红黑通用
}

// 棋子字：繁简、异体都收
var pieceGlyphs = map[rune]glyph{
	'帥': {xiangqi.PieceGeneral, xiangqi.Red},
	'帅': {xiangqi.PieceGeneral, xiangqi.Red},
	'將': {xiangqi.PieceGeneral, xiangqi.Black},
	'将': {xiangqi.PieceGeneral, xiangqi.Black},
	'仕': {xiangqi.PieceAdvisor, xiangqi.Red},
	'士': {xiangqi.PieceAdvisor, xiangqi.Black},
	'相': {xiangqi.PieceElephant, xiangqi.Red},
	'象': {xiangqi.PieceElephant, xiangqi.Black},
	'傌': {xiangqi.PieceHorse, xiangqi.Red},
	'马': {xiangqi.PieceHorse, xiangqi.NoSide},
	'馬': {xiangqi.PieceHorse, xiangqi.NoSide},
	'俥': {xiangqi.PieceChariot, xiangqi.Red},
	'车': {xiangqi.PieceChariot, xiangqi.NoSide},
	'車': {xiangqi.PieceChariot, xiangqi.NoSide},
	'炮': {xiangqi.PieceCannon, xiangqi.NoSide},
	'砲': {xiangqi.PieceCannon, xiangqi.Black},
	'包': {xiangqi.PieceCannon, xiangqi.Black},
	'兵': {xiangqi.PieceSoldier, xiangqi.Red},
	'卒': {xiangqi.PieceSoldier, xiangqi.Black},
}

var modifierGlyphs = map[rune]Modifier{
	'前': ModFront,
	'后': ModBack,
	'後': ModBack,
	'中': ModMiddle,
}

var actionGlyphs = map[rune]Action{
	'进': ActionAdvance,
	'進': ActionAdvance,
	'上': ActionAdvance,
	'退': ActionRetreat,
	'下': ActionRetreat,
	'平': ActionHorizontal,
	'横': ActionHorizontal,
}

var chineseDigits = []rune("一二三四五六七八九")

// 全角数字已经在 normalize 里折成半角
func digitValue(r rune) (int, bool) {
	if r >= '1' && r <= '9' {
		return int(r - '0'), true
	}
	for i, d := range chineseDigits {
		if r == d {
			return i + 1, true
		}
	}
	return 0, false
}

// 输出用的字：红方用帅仕相，黑方用将士象
var redNames = map[xiangqi.PieceKind]rune{
	xiangqi.PieceGeneral:  '帅',
	xiangqi.PieceAdvisor:  '仕',
	xiangqi.PieceElephant: '相',
	xiangqi.PieceHorse:    '马',
	xiangqi.PieceChariot:  '车',
	xiangqi.PieceCannon:   '炮',
	xiangqi.PieceSoldier:  '兵',
}

var blackNames = map[xiangqi.PieceKind]rune{
	xiangqi.PieceGeneral:  '将',
	xiangqi.PieceAdvisor:  '士',
	xiangqi.PieceElephant: '象',
	xiangqi.PieceHorse:    '马',
	xiangqi.PieceChariot:  '车',
	xiangqi.PieceCannon:   '炮',
	xiangqi.PieceSoldier:  '卒',
}
