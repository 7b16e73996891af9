// Package wavview parses canonical PCM WAV buffers and exposes a read-only,
// zero-copy view over their interleaved sample data.
//
// Parse validates the 44-byte RIFF/WAVE header and returns a WavFile that
// keeps the caller's buffer. Frames are walked with value-type iterators:
//
//	for it := wf.Begin(); !it.Done(); it, _ = it.Next() {
//		s, _ := it.Sample()
//		ch, _ := s.Channel(0)
//		b, _ := ch.Byte(0)
//		...
//	}
//
// or with range-over-func:
//
//	for frame, s := range wf.Frames() {
//		...
//	}
//
// Only the canonical layout is supported: RIFF, WAVE, a 16-byte "fmt " chunk
// immediately followed by "data". Files with extra chunks in between fail
// with a BadTagError.
//
// Nothing in this package decodes sample values; Channel.Byte and the Bytes
// accessors return raw little-endian bytes straight out of the shared buffer.
// The buffer is never written after Parse, so any number of goroutines may
// read views of the same WavFile concurrently.
package wavview
