package wavview

import (
	"errors"
	"fmt"

	"github.com/go-audio/riff"
)

var (
	// ErrInsufficientHeaderData is returned when the buffer can't hold a
	// canonical header.
	ErrInsufficientHeaderData = errors.New("not enough data to read the wav header")
	// ErrBadTag is matched by every *BadTagError.
	ErrBadTag = errors.New("bad chunk tag")
	// ErrInvalidFormatField is matched by every *FormatFieldError.
	ErrInvalidFormatField = errors.New("invalid format field")
	// ErrTruncatedDataSegment is matched by every *TruncatedDataError.
	ErrTruncatedDataSegment = errors.New("truncated data segment")
	// ErrPartialFrame is matched by every *PartialFrameError.
	ErrPartialFrame = errors.New("data size is not a whole number of frames")

	// ErrChannelIndexOutOfRange is returned by Sample.Channel.
	ErrChannelIndexOutOfRange = errors.New("channel index out of range")
	// ErrByteIndexOutOfRange is returned by Channel.Byte.
	ErrByteIndexOutOfRange = errors.New("byte index out of range")
	// ErrIteratorOutOfRange is returned when a cursor would leave [Begin, End]
	// or when End is dereferenced.
	ErrIteratorOutOfRange = errors.New("iterator out of range")
	// ErrForeignIterator is returned when iterators of two different files
	// are combined.
	ErrForeignIterator = errors.New("iterators belong to different files")
)

// BadTagError reports a fixed chunk tag that didn't match.
type BadTagError struct {
	Expected [4]byte
	Got      [4]byte
	Offset   int
}

func (e *BadTagError) Error() string {
	return fmt.Sprintf("bad chunk tag at offset %d: expected %q, got %q", e.Offset, e.Expected[:], e.Got[:])
}

// Is makes a BadTagError match ErrBadTag and riff.ErrFmtNotSupported.
func (e *BadTagError) Is(target error) bool {
	return target == ErrBadTag || target == riff.ErrFmtNotSupported
}

// TruncatedDataError reports a data chunk larger than the bytes available.
type TruncatedDataError struct {
	Needed    int64
	Available int64
}

func (e *TruncatedDataError) Error() string {
	return fmt.Sprintf("%s: needed %d bytes, %d available", ErrTruncatedDataSegment, e.Needed, e.Available)
}

func (e *TruncatedDataError) Is(target error) bool {
	return target == ErrTruncatedDataSegment
}

// FormatFieldError reports an fmt chunk field the views can't address.
type FormatFieldError struct {
	Field string
	Value int
}

func (e *FormatFieldError) Error() string {
	return fmt.Sprintf("%s: %s=%d", ErrInvalidFormatField, e.Field, e.Value)
}

func (e *FormatFieldError) Is(target error) bool {
	return target == ErrInvalidFormatField
}

// PartialFrameError reports data bytes left over after the last whole frame.
type PartialFrameError struct {
	DataSize  uint32
	FrameSize int
}

// Remainder is the number of bytes past the last whole frame.
func (e *PartialFrameError) Remainder() int {
	return int(e.DataSize % uint32(e.FrameSize))
}

func (e *PartialFrameError) Error() string {
	return fmt.Sprintf("%s: data size %d, frame size %d, %d trailing bytes",
		ErrPartialFrame, e.DataSize, e.FrameSize, e.Remainder())
}

func (e *PartialFrameError) Is(target error) bool {
	return target == ErrPartialFrame
}
