package wavview

const (
	// HeaderSize is the size of the canonical RIFF + fmt + data header.
	HeaderSize = 44

	wavFormatPCM = 1
)

// FmtChunk stores the parsed canonical 16-byte fmt chunk.
type FmtChunk struct {
	ID             [4]byte
	Size           uint32
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
}

// IsPCM reports whether the format tag announces uncompressed PCM.
func (f FmtChunk) IsPCM() bool {
	return f.FormatTag == wavFormatPCM
}

// Header is the validated canonical WAV header. It is a plain value; two
// parses of the same bytes produce equal headers.
type Header struct {
	// ChunkID is "RIFF".
	ChunkID [4]byte
	// ChunkSize is informational and never checked against the buffer.
	ChunkSize uint32
	// Format is "WAVE".
	Format [4]byte

	Fmt FmtChunk

	// DataID is "data".
	DataID   [4]byte
	DataSize uint32
	// DataOffset is where the sample data starts in the parsed buffer.
	DataOffset int
}

