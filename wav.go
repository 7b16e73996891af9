package wavview

import (
	"fmt"
	"time"

	"github.com/go-audio/audio"
)

// WavFile is a parsed canonical WAV buffer. It is immutable; the Sample,
// Channel and Iterator values derived from it share its buffer.
type WavFile struct {
	header   Header
	buf      []byte
	frames   int
	trailing int
}

// Header returns a copy of the validated header.
func (w *WavFile) Header() Header {
	return w.header
}

// NumChannels returns the number of interleaved channels.
func (w *WavFile) NumChannels() int {
	return int(w.header.Fmt.NumChannels)
}

// SampleRate returns the number of frames per second.
func (w *WavFile) SampleRate() int {
	return int(w.header.Fmt.SampleRate)
}

// BitsPerSample returns the bit depth of each channel sample.
func (w *WavFile) BitsPerSample() int {
	return int(w.header.Fmt.BitsPerSample)
}

// BytesPerSample returns the storage size of one channel sample.
func (w *WavFile) BytesPerSample() int {
	return w.header.BytesPerSample()
}

// FrameSize returns the size in bytes of one frame.
func (w *WavFile) FrameSize() int {
	return w.header.FrameSize()
}

// FrameCount returns the number of addressable frames.
func (w *WavFile) FrameCount() int {
	return w.frames
}

// TrailingBytes returns how many data bytes past the last whole frame were
// ignored. It is always 0 unless Parse was called with AllowPartialFrame.
func (w *WavFile) TrailingBytes() int {
	return w.trailing
}

// Data returns the addressable part of the data chunk without copying.
// The returned slice shares the parsed buffer and must not be written to.
func (w *WavFile) Data() []byte {
	start := w.header.DataOffset
	end := w.header.FrameOffset(w.frames)

	return w.buf[start:end:end]
}

// Format returns the audio format of the sample data.
func (w *WavFile) Format() *audio.Format {
	return &audio.Format{
		NumChannels: w.NumChannels(),
		SampleRate:  w.SampleRate(),
	}
}

// Duration returns the play time of the addressable frames.
func (w *WavFile) Duration() time.Duration {
	if w.header.Fmt.SampleRate == 0 {
		return 0
	}

	return time.Duration(float64(w.frames) / float64(w.header.Fmt.SampleRate) * float64(time.Second))
}

// String implements the Stringer interface.
func (w *WavFile) String() string {
	return fmt.Sprintf("Format: %s - %d channels @ %d / %d bits - %d frames (%d bytes) - Duration: %s",
		w.header.Format[:], w.NumChannels(), w.SampleRate(), w.BitsPerSample(),
		w.frames, w.frames*w.FrameSize(), w.Duration())
}
