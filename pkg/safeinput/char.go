package safeinput

import (
	"bytes"
	"fmt"
	"io"
)

// Char reads a single byte.
//
// An empty line returns '\n'. Lines of more than one byte are rejected,
// so " a" and "a " are invalid. Returns EOF and io.EOF at end of stream.
func (s *Scanner) Char() (int, error) {
	var buf [CharInputBufferSize]byte
	return scan(s, buf[:CharInputBufferSize-1], EOF, parseChar)
}

// CharFiltered reads a single byte that must appear in allowed.
//
// Unlike Char, an empty line is rejected. If allowed is empty the call
// returns EOF and ErrEmptyAllowSet without reading. A nil allowed is a
// programming error and panics with ErrNilAllowSet.
func (s *Scanner) CharFiltered(allowed []byte) (int, error) {
	if allowed == nil {
		s.reporter.Report(MsgNilAllowed)
		panic(ErrNilAllowSet)
	}
	if len(allowed) == 0 {
		s.reporter.Report(MsgNoAllowed)
		return EOF, ErrEmptyAllowSet
	}

	var buf [CharInputBufferSize]byte
	return scan(s, buf[:CharInputBufferSize-1], EOF, func(b []byte) (int, error) {
		if len(b) != 1 {
			return EOF, invalid("char", b, MsgSingleChar)
		}
		if bytes.IndexByte(allowed, b[0]) < 0 {
			return EOF, invalid("char", b, fmt.Sprintf(MsgAllowedFmt, allowed))
		}
		return int(b[0]), nil
	})
}

// Bool reads y or n, case-insensitively.
//
// At end of stream it reports a diagnostic and returns false with io.EOF.
func (s *Scanner) Bool() (bool, error) {
	for {
		c, err := s.Char()
		if err == io.EOF {
			s.reporter.Report(MsgBoolEOF)
			return false, io.EOF
		}
		if err != nil {
			return false, err
		}

		switch c {
		case 'y', 'Y':
			return true, nil
		case 'n', 'N':
			return false, nil
		}
		s.reporter.Report(MsgYesNo)
	}
}

func parseChar(b []byte) (int, error) {
	switch len(b) {
	case 0:
		return '\n', nil
	case 1:
		return int(b[0]), nil
	}
	return EOF, invalid("char", b, MsgSingleChar)
}
