package wavview

// BytesPerSample is the storage size of one channel's sample.
func (h Header) BytesPerSample() int {
	return int(h.Fmt.BitsPerSample) / 8
}

// FrameSize is the number of bytes one frame uses across all channels.
func (h Header) FrameSize() int {
	return int(h.Fmt.NumChannels) * h.BytesPerSample()
}

// FrameCount is the number of whole frames in the data chunk. Trailing bytes
// that don't fill a frame are not counted.
func (h Header) FrameCount() int {
	fs := h.FrameSize()
	if fs == 0 {
		return 0
	}

	return int(h.DataSize) / fs
}

// FrameOffset returns the buffer offset of the first byte of frame.
// The index is not range checked.
func (h Header) FrameOffset(frame int) int {
	return h.DataOffset + frame*h.FrameSize()
}

// ChannelOffset returns the buffer offset of the first byte of channel ch in
// frame. Neither index is range checked.
func (h Header) ChannelOffset(frame, ch int) int {
	return h.FrameOffset(frame) + ch*h.BytesPerSample()
}
