package bridge

import (
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"
)

// RawResult is the flat boundary face of a construction outcome. It mirrors
// the C layout
//
//	struct { union { Handle ok; uint32_t err; }; bool is_ok; }
//
// as a pointer-sized word overlaid by both members plus a one-byte
// discriminant. It is always passed by value and never mutated after
// construction.
type RawResult struct {
	word uint64
	ok   bool
}

// Wire layout of an encoded RawResult. The union word travels first,
// little-endian, followed by the discriminant byte. Identical on every
// platform with 64-bit words.
const (
	WordOffset  = 0
	WordSize    = 8
	FlagOffset  = WordOffset + WordSize
	FlagSize    = 1
	EncodedSize = WordSize + FlagSize
)

var (
	// ErrTruncatedResult reports an encoded result of the wrong length.
	ErrTruncatedResult = errors.New("bridge: truncated raw result")

	// ErrBadDiscriminant reports a discriminant byte that is neither 0 nor
	// 1, which can only come from a torn or foreign encoding.
	ErrBadDiscriminant = errors.New("bridge: bad discriminant")
)

var (
	_ encoding.BinaryMarshaler   = RawResult{}
	_ encoding.BinaryUnmarshaler = (*RawResult)(nil)
)

// RawOk builds a success result transferring ownership of the handle.
func RawOk(h Handle) RawResult {
	return RawResult{word: uint64(h), ok: true}
}

// RawErr builds a failure result carrying the widened error tag.
func RawErr(c Code) RawResult {
	return RawResult{word: uint64(c)}
}

// IsOk reports the discriminant.
func (r RawResult) IsOk() bool {
	return r.ok
}

// Handle returns the success member. Reading it on a failure panics.
func (r RawResult) Handle() Handle {
	if !r.ok {
		panic("bridge: Handle read on a failure result")
	}
	return Handle(r.word)
}

// Code returns the failure member. Reading it on a success panics.
func (r RawResult) Code() Code {
	if r.ok {
		panic("bridge: Code read on a success result")
	}
	return Code(r.word)
}

// Result lifts the flat layout into the typed inner face.
func (r RawResult) Result() Result[Handle] {
	if r.ok {
		return Ok(Handle(r.word))
	}
	return Err[Handle](Code(r.word))
}

// MarshalBinary encodes the fixed wire layout.
func (r RawResult) MarshalBinary() ([]byte, error) {
	buf := make([]byte, EncodedSize)
	binary.LittleEndian.PutUint64(buf[WordOffset:], r.word)
	if r.ok {
		buf[FlagOffset] = 1
	}
	return buf, nil
}

// UnmarshalBinary decodes the fixed wire layout, rejecting torn values.
func (r *RawResult) UnmarshalBinary(data []byte) error {
	if len(data) != EncodedSize {
		return fmt.Errorf("%w: %d bytes", ErrTruncatedResult, len(data))
	}
	switch data[FlagOffset] {
	case 0:
		r.ok = false
	case 1:
		r.ok = true
	default:
		return fmt.Errorf("%w: 0x%02x", ErrBadDiscriminant, data[FlagOffset])
	}
	r.word = binary.LittleEndian.Uint64(data[WordOffset:FlagOffset])
	return nil
}
