package wavview

import (
	"fmt"
	"iter"
)

// Iterator is a cursor over the frames of a WavFile. It is a value: every
// step returns a new Iterator and leaves the receiver untouched. The valid
// positions are 0 through FrameCount, the latter being End.
type Iterator struct {
	file  *WavFile
	frame int
}

// Begin returns an iterator at the first frame.
func (w *WavFile) Begin() Iterator {
	return Iterator{file: w}
}

// End returns the past-the-end iterator.
func (w *WavFile) End() Iterator {
	return Iterator{file: w, frame: w.frames}
}

// At returns an iterator at frame, which may be FrameCount for End.
func (w *WavFile) At(frame int) (Iterator, error) {
	return w.Begin().Advance(frame)
}

// Frame returns the cursor position.
func (it Iterator) Frame() int {
	return it.frame
}

// Done reports whether the iterator is at End.
func (it Iterator) Done() bool {
	return it.file == nil || it.frame >= it.file.frames
}

// Advance returns the iterator moved by n frames. Moving outside
// [Begin, End] fails with ErrIteratorOutOfRange.
func (it Iterator) Advance(n int) (Iterator, error) {
	if it.file == nil {
		return it, fmt.Errorf("%w: iterator has no file", ErrIteratorOutOfRange)
	}

	k := it.frame + n
	if k < 0 || k > it.file.frames {
		return it, fmt.Errorf("%w: frame %d not in [0, %d]", ErrIteratorOutOfRange, k, it.file.frames)
	}

	return Iterator{file: it.file, frame: k}, nil
}

// Next returns the iterator moved one frame forward.
func (it Iterator) Next() (Iterator, error) {
	return it.Advance(1)
}

// Prev returns the iterator moved one frame back.
func (it Iterator) Prev() (Iterator, error) {
	return it.Advance(-1)
}

// Sample returns the frame under the cursor. End can't be dereferenced.
func (it Iterator) Sample() (Sample, error) {
	if it.Done() {
		return Sample{}, fmt.Errorf("%w: dereferencing end", ErrIteratorOutOfRange)
	}

	return Sample{file: it.file, frame: it.frame}, nil
}

// Equal reports whether both iterators view the same file at the same frame.
func (it Iterator) Equal(other Iterator) bool {
	return it.file == other.file && it.frame == other.frame
}

// Distance returns the number of frames from it to other.
func (it Iterator) Distance(other Iterator) (int, error) {
	if it.file != other.file {
		return 0, ErrForeignIterator
	}

	return other.frame - it.frame, nil
}

// Frames returns a sequence of all frames in [Begin, End).
func (w *WavFile) Frames() iter.Seq2[int, Sample] {
	return frameSeq(w, 0, w.frames)
}

// Between returns a sequence of the frames in [from, to). Both iterators
// must belong to the same file and from must not be after to.
func Between(from, to Iterator) (iter.Seq2[int, Sample], error) {
	n, err := from.Distance(to)
	if err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, fmt.Errorf("%w: range start %d is after end %d", ErrIteratorOutOfRange, from.frame, to.frame)
	}

	return frameSeq(from.file, from.frame, to.frame), nil
}

func frameSeq(w *WavFile, from, to int) iter.Seq2[int, Sample] {
	return func(yield func(int, Sample) bool) {
		for k := from; k < to; k++ {
			if !yield(k, Sample{file: w, frame: k}) {
				return
			}
		}
	}
}
