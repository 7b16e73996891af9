package wavview

import (
	"encoding/binary"
	"fmt"

	"github.com/go-audio/riff"
)

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

type parseConfig struct {
	allowPartialFrame bool
	copyInput         bool
}

// AllowPartialFrame accepts data chunks whose size isn't a multiple of the
// frame size. The trailing bytes are ignored by every view and reported by
// WavFile.TrailingBytes.
func AllowPartialFrame() ParseOption {
	return func(c *parseConfig) {
		c.allowPartialFrame = true
	}
}

// CopyInput makes Parse work on a private copy of the buffer, so the caller
// may reuse or modify its slice afterwards.
func CopyInput() ParseOption {
	return func(c *parseConfig) {
		c.copyInput = true
	}
}

// Parse validates the canonical 44-byte header in b and returns a WavFile
// viewing b. Unless CopyInput is passed, b is retained and must not be
// modified while the WavFile or any of its views are in use.
//
// Checks run in header order and the first failing one is returned; a
// partially parsed WavFile is never returned.
func Parse(b []byte, opts ...ParseOption) (*WavFile, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(b) < HeaderSize {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", ErrInsufficientHeaderData, len(b), HeaderSize)
	}

	if cfg.copyInput {
		b = append([]byte(nil), b...)
	}

	h, err := readHeader(b)
	if err != nil {
		return nil, err
	}

	available := int64(len(b) - h.DataOffset)
	if available < int64(h.DataSize) {
		return nil, &TruncatedDataError{Needed: int64(h.DataSize), Available: available}
	}

	if err := h.validateFormat(); err != nil {
		return nil, err
	}

	frameSize := h.FrameSize()

	trailing := int(h.DataSize % uint32(frameSize))
	if trailing != 0 && !cfg.allowPartialFrame {
		return nil, &PartialFrameError{DataSize: h.DataSize, FrameSize: frameSize}
	}

	return &WavFile{
		header:   h,
		buf:      b,
		frames:   h.FrameCount(),
		trailing: trailing,
	}, nil
}

// headerReader consumes fixed-width little-endian fields from a buffer known
// to hold at least HeaderSize bytes.
type headerReader struct {
	b   []byte
	pos int
}

func (r *headerReader) tag() [4]byte {
	var id [4]byte
	copy(id[:], r.b[r.pos:r.pos+4])
	r.pos += 4

	return id
}

func (r *headerReader) expectTag(want [4]byte) ([4]byte, error) {
	offset := r.pos

	got := r.tag()
	if got != want {
		return got, &BadTagError{Expected: want, Got: got, Offset: offset}
	}

	return got, nil
}

func (r *headerReader) readUint16() uint16 {
	v := binary.LittleEndian.Uint16(r.b[r.pos : r.pos+2])
	r.pos += 2

	return v
}

func (r *headerReader) readUint32() uint32 {
	v := binary.LittleEndian.Uint32(r.b[r.pos : r.pos+4])
	r.pos += 4

	return v
}

func readHeader(b []byte) (Header, error) {
	var (
		h   Header
		err error
	)

	r := &headerReader{b: b}

	if h.ChunkID, err = r.expectTag(riff.RiffID); err != nil {
		return Header{}, err
	}

	h.ChunkSize = r.readUint32()

	if h.Format, err = r.expectTag(riff.WavFormatID); err != nil {
		return Header{}, err
	}

	if h.Fmt.ID, err = r.expectTag(riff.FmtID); err != nil {
		return Header{}, err
	}

	h.Fmt.Size = r.readUint32()
	h.Fmt.FormatTag = r.readUint16()
	h.Fmt.NumChannels = r.readUint16()
	h.Fmt.SampleRate = r.readUint32()
	h.Fmt.AvgBytesPerSec = r.readUint32()
	h.Fmt.BlockAlign = r.readUint16()
	h.Fmt.BitsPerSample = r.readUint16()

	if h.DataID, err = r.expectTag(riff.DataFormatID); err != nil {
		return Header{}, err
	}

	h.DataSize = r.readUint32()
	h.DataOffset = r.pos

	return h, nil
}

// validateFormat checks the channel count and bit depth as the signed 16-bit
// fields of the canonical header.
func (h Header) validateFormat() error {
	if numChans := int16(h.Fmt.NumChannels); numChans < 1 {
		return &FormatFieldError{Field: "num_channels", Value: int(numChans)}
	}

	if bits := int16(h.Fmt.BitsPerSample); bits <= 0 || bits%8 != 0 {
		return &FormatFieldError{Field: "bits_per_sample", Value: int(bits)}
	}

	return nil
}
