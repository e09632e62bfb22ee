package linereader

import (
	"io"

	"github.com/bustyanimebabesdotcom/safeinput/pkg/diag"
)

// Terminator ends a line. It is consumed but not stored.
const Terminator = '\n'

// Reader reads bounded lines from an io.ByteReader.
//
// io.ByteReader is implemented by *bufio.Reader and *bytes.Reader.
// For terminals and pipes, wrap the io.Reader in bufio.Reader:
//
//	r := linereader.NewReader(bufio.NewReader(os.Stdin))
//
// A Reader is not safe for concurrent use.
type Reader struct {
	r        io.ByteReader
	reporter diag.Reporter
	offset   int64 // Bytes consumed, including terminators and drained bytes
}

// NewReader creates a new bounded line reader.
//
// Overruns are reported to diag.Stderr() unless WithReporter is given.
func NewReader(r io.ByteReader, opts ...Option) *Reader {
	cfg := &config{
		reporter: nil, // nil means stderr
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.reporter == nil {
		cfg.reporter = diag.Stderr()
	}

	return &Reader{
		r:        r,
		reporter: cfg.reporter,
		offset:   0,
	}
}

// Offset returns the number of bytes consumed from the underlying stream.
func (r *Reader) Offset() int64 {
	return r.offset
}
