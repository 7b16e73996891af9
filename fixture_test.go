package wavview

import "encoding/binary"

var canonicalHeader = []byte{
	0x52, 0x49, 0x46, 0x46, 0x24, 0x08, 0x00, 0x00,
	0x57, 0x41, 0x56, 0x45, 0x66, 0x6d, 0x74, 0x20,
	0x10, 0x00, 0x00, 0x00, 0x01, 0x00, 0x02, 0x00,
	0x22, 0x56, 0x00, 0x00, 0x88, 0x58, 0x01, 0x00,
	0x04, 0x00, 0x10, 0x00, 0x64, 0x61, 0x74, 0x61,
	0x1c, 0x00, 0x00, 0x00,
}

var canonicalData = []byte{
	0x00, 0x00, 0x00, 0x00, 0x24, 0x17, 0x1e, 0xf3,
	0x3c, 0x13, 0x3c, 0x14, 0x16, 0xf9, 0x18, 0xf9,
	0x34, 0xe7, 0x23, 0xa6, 0x3c, 0xf2, 0x24, 0xf2,
	0x11, 0xce, 0x1a, 0x0d,
}

// canonicalFile returns a fresh copy of the 2ch/16bit/22050Hz fixture.
func canonicalFile() []byte {
	out := make([]byte, 0, len(canonicalHeader)+len(canonicalData))
	out = append(out, canonicalHeader...)

	return append(out, canonicalData...)
}

// buildWav assembles a canonical header in front of data. dataSize is written
// as given so tests can lie about it.
func buildWav(numChans, bitsPerSample uint16, sampleRate, dataSize uint32, data []byte) []byte {
	blockAlign := numChans * bitsPerSample / 8

	b := make([]byte, HeaderSize, HeaderSize+len(data))
	copy(b[0:4], "RIFF")
	binary.LittleEndian.PutUint32(b[4:8], 36+dataSize)
	copy(b[8:12], "WAVE")
	copy(b[12:16], "fmt ")
	binary.LittleEndian.PutUint32(b[16:20], 16)
	binary.LittleEndian.PutUint16(b[20:22], 1)
	binary.LittleEndian.PutUint16(b[22:24], numChans)
	binary.LittleEndian.PutUint32(b[24:28], sampleRate)
	binary.LittleEndian.PutUint32(b[28:32], sampleRate*uint32(blockAlign))
	binary.LittleEndian.PutUint16(b[32:34], blockAlign)
	binary.LittleEndian.PutUint16(b[34:36], bitsPerSample)
	copy(b[36:40], "data")
	binary.LittleEndian.PutUint32(b[40:44], dataSize)

	return append(b, data...)
}

// rampData returns n bytes counting up from 0, wrapping at 256.
func rampData(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i)
	}

	return out
}
