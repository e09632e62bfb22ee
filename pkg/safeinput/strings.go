package safeinput

// ByteString is a counted byte string. It carries no terminator.
//
// The zero value (nil Data) marks end of stream; an empty line is a
// non-nil, zero-length Data.
type ByteString struct {
	Data []byte
}

// Len returns the number of bytes in the string.
func (b ByteString) Len() int {
	return len(b.Data)
}

// IsNil reports whether b is the end-of-stream marker.
func (b ByteString) IsNil() bool {
	return b.Data == nil
}

// String returns the bytes as a Go string.
func (b ByteString) String() string {
	return string(b.Data)
}

// Release zeroes the bytes and drops the reference. Use it for input such as
// passwords that should not linger in memory. Calling it again is a no-op.
func (b *ByteString) Release() {
	clear(b.Data)
	b.Data = nil
}

// CString reads a line and returns it followed by a 0x00 terminator.
//
// The line holds at most InputBufferSize-1 bytes, so the result is at most
// InputBufferSize bytes long. Returns nil and io.EOF at end of stream.
func (s *Scanner) CString() ([]byte, error) {
	var buf [InputBufferSize]byte
	return scan(s, buf[:InputBufferSize-1], []byte(nil), func(b []byte) ([]byte, error) {
		out := make([]byte, len(b)+1)
		copy(out, b)
		return out, nil
	})
}

// String reads a line of up to InputBufferSize bytes as a ByteString.
//
// Returns the zero ByteString and io.EOF at end of stream.
func (s *Scanner) String() (ByteString, error) {
	var buf [InputBufferSize]byte
	return scan(s, buf[:], ByteString{}, func(b []byte) (ByteString, error) {
		out := make([]byte, len(b))
		copy(out, b)
		return ByteString{Data: out}, nil
	})
}
