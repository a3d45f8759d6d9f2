package xiangqi

import "errors"

// FEN 解析错误
var (
	ErrInvalidFEN       = errors.New("invalid FEN")
	ErrMalformedRank    = errors.New("malformed FEN rank")
	ErrUnknownPieceChar = errors.New("unknown FEN piece character")
	ErrTooManyPieces    = errors.New("too many pieces of one kind")
	ErrMissingGeneral   = errors.New("each side needs exactly one general")
)

var ErrBadCoordinate = errors.New("invalid ICCS coordinate")

// 走子校验错误
var (
	ErrOffBoard         = errors.New("destination is off the board")
	ErrBlocked          = errors.New("move is blocked")
	ErrCapturesOwnPiece = errors.New("destination holds own piece")
	ErrIllegalForKind   = errors.New("piece cannot move that way")
	ErrNoPiece          = errors.New("no piece on source square")
	ErrExposesGeneral   = errors.New("move leaves own general exposed")
)
