// Package linereader implements bounded reading of newline-terminated lines.
//
// A line is a run of bytes ended by '\n' or by the end of the stream. The
// terminator is consumed but never stored.
//
// # Examples
//
// Reading into a 4-byte buffer:
//
//	"abc\n"    // n=3, err=nil
//	"\n"       // n=0, err=nil (empty line)
//	"abcd\n"   // n=4, err=ErrOverrun, next read starts after the '\n'
//	""         // n=0, err=io.EOF
//
// # Basic Usage
//
//	r := linereader.NewReader(bufio.NewReader(os.Stdin))
//	var buf [128]byte
//	n, err := r.ReadLine(buf[:])
//	switch {
//	case err == io.EOF:
//		// nothing left
//	case errors.Is(err, linereader.ErrOverrun):
//		// line was too long; it has been discarded
//	case err != nil:
//		// stream failure
//	default:
//		line := buf[:n]
//	}
//
// # Overrun
//
// When a line holds at least len(buf) bytes, the reader keeps the first
// len(buf) bytes, drains the rest of the physical line, reports the overrun
// to the configured diag.Reporter and returns ErrOverrun. The next call
// always starts at the beginning of the following line.
//
// # Design Principles
//
//   - No internal buffering: Reader uses io.ByteReader
//   - Users control buffering: wrap streams in bufio.Reader as needed
//   - Zero lookahead: every byte read is immediately processed
//   - No retries: callers decide what to do with ErrOverrun
package linereader
