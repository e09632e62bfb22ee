package linereader

import "io"

// ReadLine reads the next line into buf and returns the number of bytes stored.
//
// Results:
//   - n bytes, nil: a complete line of n < len(buf) bytes (n may be 0)
//   - len(buf), ErrOverrun: the line did not fit and the rest was discarded
//   - 0, io.EOF: the stream ended before any byte of a new line
//
// A final line without a terminator is returned normally; the following
// call returns io.EOF. Any other error from the underlying reader is returned
// unchanged along with the bytes stored so far.
func (r *Reader) ReadLine(buf []byte) (int, error) {
	if len(buf) < 1 {
		return 0, ErrInvalidCapacity
	}

	n := 0
	for n < len(buf) {
		b, err := r.readByte()
		if err == io.EOF {
			if n == 0 {
				return 0, io.EOF
			}
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if b == Terminator {
			return n, nil
		}
		buf[n] = b
		n++
	}

	// Buffer full with the line still open
	if err := r.drain(); err != nil {
		return n, err
	}
	r.reporter.Report(OverrunMessage)
	return n, ErrOverrun
}

// drain discards bytes up to and including the next terminator or EOF.
func (r *Reader) drain() error {
	for {
		b, err := r.readByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if b == Terminator {
			return nil
		}
	}
}

// readByte reads a single byte and tracks position.
func (r *Reader) readByte() (byte, error) {
	b, err := r.r.ReadByte()
	if err == nil {
		r.offset++
	}
	return b, err
}
