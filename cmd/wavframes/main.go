// This tool prints the header of the passed wav file followed by the raw
// bytes of every channel, one frame per line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/wavview"
	"github.com/sirupsen/logrus"
)

var errMissingPath = errors.New("missing path argument")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) || errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}

	logrus.Fatal(err)
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("wavframes", flag.ContinueOnError)
	lenient := fs.Bool("lenient", false, "ignore bytes past the last whole frame instead of failing")
	limit := fs.Int("limit", -1, "maximum number of frames to print, -1 for all")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(fs.Output(), "usage: wavframes [-lenient] [-limit N] <file.wav>")
		return errMissingPath
	}

	path := fs.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var opts []wavview.ParseOption
	if *lenient {
		opts = append(opts, wavview.AllowPartialFrame())
	}

	wf, err := wavview.Parse(data, opts...)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if n := wf.TrailingBytes(); n > 0 {
		logrus.WithFields(logrus.Fields{
			"path":     path,
			"trailing": n,
		}).Warn("ignoring bytes past the last whole frame")
	}

	h := wf.Header()
	fmt.Fprintln(out, wf)
	fmt.Fprintf(out, "Audio format: %d\n", h.Fmt.FormatTag)
	fmt.Fprintf(out, "Byte rate: %d\n", h.Fmt.AvgBytesPerSec)
	fmt.Fprintf(out, "Block align: %d\n", h.Fmt.BlockAlign)
	fmt.Fprintf(out, "Data: %d bytes at offset %d\n", h.DataSize, h.DataOffset)

	end := wf.End()
	if *limit >= 0 && *limit < wf.FrameCount() {
		end, err = wf.At(*limit)
		if err != nil {
			return err
		}
	}

	frames, err := wavview.Between(wf.Begin(), end)
	if err != nil {
		return err
	}

	for frame, s := range frames {
		if err := printFrame(out, frame, s); err != nil {
			return err
		}
	}

	return nil
}

func printFrame(out io.Writer, frame int, s wavview.Sample) error {
	fmt.Fprintf(out, "frame %d:", frame)

	for i := 0; i < s.NumChannels(); i++ {
		ch, err := s.Channel(i)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, " ch%d=%x", i, ch.Bytes())
	}

	fmt.Fprintln(out)

	return nil
}
