package wavview

import "fmt"

// Sample is a view of one frame: one sample per channel. It holds no data of
// its own and stays valid for as long as it is referenced.
type Sample struct {
	file  *WavFile
	frame int
}

// Frame returns the frame index the sample views.
func (s Sample) Frame() int {
	return s.frame
}

// NumChannels returns the number of channels in the frame, 0 for the zero
// Sample.
func (s Sample) NumChannels() int {
	if s.file == nil {
		return 0
	}

	return s.file.NumChannels()
}

// ChannelSize returns the bit depth of each channel.
func (s Sample) ChannelSize() int {
	if s.file == nil {
		return 0
	}

	return s.file.BitsPerSample()
}

// Bytes returns the raw interleaved bytes of the whole frame.
// The slice shares the parsed buffer and must not be written to.
func (s Sample) Bytes() []byte {
	if s.file == nil {
		return nil
	}

	start := s.file.header.FrameOffset(s.frame)
	end := start + s.file.header.FrameSize()

	return s.file.buf[start:end:end]
}

// Channel returns the view of channel i.
func (s Sample) Channel(i int) (Channel, error) {
	if i < 0 || i >= s.NumChannels() {
		return Channel{}, fmt.Errorf("%w: channel %d, file has %d", ErrChannelIndexOutOfRange, i, s.NumChannels())
	}

	return Channel{sample: s, index: i}, nil
}

// Channel is a view of one channel's sample bytes within a frame.
type Channel struct {
	sample Sample
	index  int
}

// Index returns the channel index.
func (c Channel) Index() int {
	return c.index
}

// Byte returns byte j of the channel sample, in file (little-endian) order.
func (c Channel) Byte(j int) (byte, error) {
	if c.sample.file == nil {
		return 0, fmt.Errorf("%w: channel has no file", ErrByteIndexOutOfRange)
	}

	h := &c.sample.file.header

	if j < 0 || j >= h.BytesPerSample() {
		return 0, fmt.Errorf("%w: byte %d, sample has %d", ErrByteIndexOutOfRange, j, h.BytesPerSample())
	}

	return c.sample.file.buf[h.ChannelOffset(c.sample.frame, c.index)+j], nil
}

// Bytes returns the raw bytes of the channel sample.
// The slice shares the parsed buffer and must not be written to.
func (c Channel) Bytes() []byte {
	if c.sample.file == nil {
		return nil
	}

	h := &c.sample.file.header
	start := h.ChannelOffset(c.sample.frame, c.index)
	end := start + h.BytesPerSample()

	return c.sample.file.buf[start:end:end]
}
