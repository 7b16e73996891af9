// This tool converts a PCM wav file into an identical aiff file and stores
// it in the same folder as the source.
package main

import (
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/cwbudde/wavview"
	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
	"github.com/sirupsen/logrus"
)

const bufferFrames = 4096

var (
	errMissingPath       = errors.New("you must set the -path flag")
	errNotPCM            = errors.New("only PCM wav files can be converted")
	errUnhandledBitDepth = errors.New("unhandled bit depth")
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}

	logrus.Fatal(err)
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("wavtoaiff", flag.ContinueOnError)
	flagPath := fs.String("path", "", "The path to the wav file to convert to aiff")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *flagPath == "" {
		return errMissingPath
	}

	sourcePath, err := expandHome(*flagPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("invalid path %s: %w", sourcePath, err)
	}

	wf, err := wavview.Parse(data, wavview.AllowPartialFrame())
	if err != nil {
		return fmt.Errorf("invalid WAV file: %w", err)
	}

	if !wf.Header().Fmt.IsPCM() {
		return fmt.Errorf("%w: format tag %d", errNotPCM, wf.Header().Fmt.FormatTag)
	}

	if n := wf.TrailingBytes(); n > 0 {
		logrus.WithField("trailing", n).Warn("dropping bytes past the last whole frame")
	}

	outPath := sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".aif"

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}

	err = convert(wf, outFile)
	if closeErr := outFile.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close %s: %w", outPath, closeErr)
	}

	if err != nil {
		if rmErr := os.Remove(outPath); rmErr != nil {
			logrus.WithError(rmErr).WithField("path", outPath).Warn("failed to remove partial aiff file")
		}

		return err
	}

	logrus.WithFields(logrus.Fields{
		"frames":   wf.FrameCount(),
		"channels": wf.NumChannels(),
	}).Debug("conversion done")

	fmt.Fprintf(out, "Wav file converted to %s\n", outPath)

	return nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get the user home directory: %w", err)
	}

	return strings.Replace(path, "~", usr.HomeDir, 1), nil
}

// convert walks wf frame by frame and writes the decoded samples to w.
func convert(wf *wavview.WavFile, w io.WriteSeeker) error {
	encoder := aiff.NewEncoder(w, wf.SampleRate(), wf.BitsPerSample(), wf.NumChannels())

	buf := &audio.IntBuffer{
		Format:         wf.Format(),
		SourceBitDepth: wf.BitsPerSample(),
		Data:           make([]int, 0, bufferFrames*wf.NumChannels()),
	}

	for _, s := range wf.Frames() {
		for i := 0; i < s.NumChannels(); i++ {
			ch, err := s.Channel(i)
			if err != nil {
				return err
			}

			v, err := decodeSample(ch.Bytes())
			if err != nil {
				return err
			}

			buf.Data = append(buf.Data, v)
		}

		if len(buf.Data) == cap(buf.Data) {
			if err := encoder.Write(buf); err != nil {
				return fmt.Errorf("failed to write aiff data: %w", err)
			}

			buf.Data = buf.Data[:0]
		}
	}

	if len(buf.Data) > 0 {
		if err := encoder.Write(buf); err != nil {
			return fmt.Errorf("failed to write aiff data: %w", err)
		}
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to close aiff encoder: %w", err)
	}

	return nil
}

// decodeSample turns one little-endian wav channel sample into a signed int.
// 8-bit wav samples are unsigned and get re-centered around zero.
func decodeSample(b []byte) (int, error) {
	switch len(b) {
	case 1:
		return int(b[0]) - 128, nil
	case 2:
		return int(int16(binary.LittleEndian.Uint16(b))), nil
	case 3:
		return int(audio.Int24LETo32(b)), nil
	case 4:
		return int(int32(binary.LittleEndian.Uint32(b))), nil
	default:
		return 0, fmt.Errorf("%w: %d", errUnhandledBitDepth, len(b)*8)
	}
}
