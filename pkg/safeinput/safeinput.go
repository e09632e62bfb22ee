package safeinput

import (
	"bufio"
	"errors"
	"io"

	"github.com/bustyanimebabesdotcom/safeinput/pkg/diag"
	"github.com/bustyanimebabesdotcom/safeinput/pkg/linereader"
)

const (
	// InputBufferSize is the staging buffer size for numeric and string reads.
	InputBufferSize = 128

	// CharInputBufferSize is the staging buffer size for character reads.
	// It is large enough to tell one character from several.
	CharInputBufferSize = 4

	// EOF is the out-of-band value returned by Char and CharFiltered at end of stream.
	EOF = -1
)

// Scanner reads typed values, one line per value.
type Scanner struct {
	lines    *linereader.Reader
	reporter diag.Reporter
}

// New creates a Scanner reading from r.
//
// If r implements io.ByteReader it is read directly; otherwise it is wrapped
// in a bufio.Reader, which may read ahead of the current line.
func New(r io.Reader, opts ...Option) *Scanner {
	cfg := &config{
		reporter: diag.Stderr(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	return &Scanner{
		lines:    linereader.NewReader(br, linereader.WithReporter(cfg.reporter)),
		reporter: cfg.reporter,
	}
}

// Offset returns the number of bytes consumed from the input so far.
func (s *Scanner) Offset() int64 {
	return s.lines.Offset()
}

// scan runs the read-validate-retry loop for one value.
//
// buf is the staging buffer; its length is the line capacity. On end of
// stream or a stream error it returns sentinel with the error. Overruns and
// conversion failures are reported and the next line is read.
func scan[T any](s *Scanner, buf []byte, sentinel T, convert func([]byte) (T, error)) (T, error) {
	for {
		n, err := s.lines.ReadLine(buf)
		switch {
		case err == io.EOF:
			return sentinel, io.EOF
		case errors.Is(err, linereader.ErrOverrun):
			continue
		case err != nil:
			return sentinel, err
		}

		v, err := convert(buf[:n])
		if err != nil {
			s.report(err)
			continue
		}
		return v, nil
	}
}

// report sends the user-facing reason for err to the reporter.
func (s *Scanner) report(err error) {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		s.reporter.Report(inputErr.Reason)
		return
	}
	s.reporter.Report(err.Error())
}
