package domain

import "errors"

var (
	ErrNetwork         = errors.New("network error")
	ErrDecode          = errors.New("decode error")
	ErrPlayerNotFound  = errors.New("player not found")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidArgument = errors.New("invalid argument")
)

type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNetwork
	KindDecode
	KindPlayerNotFound
	KindIndexOutOfRange
	KindInvalidArgument
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindDecode:
		return "decode"
	case KindPlayerNotFound:
		return "player_not_found"
	case KindIndexOutOfRange:
		return "index_out_of_range"
	case KindInvalidArgument:
		return "invalid_argument"
	default:
		return "unknown"
	}
}

// KindOf classifies err against the sentinel errors of this package.
// A nil error is KindUnknown.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrPlayerNotFound):
		return KindPlayerNotFound
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrIndexOutOfRange):
		return KindIndexOutOfRange
	case errors.Is(err, ErrDecode):
		return KindDecode
	case errors.Is(err, ErrNetwork):
		return KindNetwork
	default:
		return KindUnknown
	}
}
