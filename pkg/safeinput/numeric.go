package safeinput

import (
	"bytes"
	"math"
	"strconv"
)

// Int reads a 32-bit signed integer.
//
// Returns math.MinInt32 and io.EOF at end of stream.
func (s *Scanner) Int() (int32, error) {
	var buf [InputBufferSize]byte
	return scan(s, buf[:InputBufferSize-1], math.MinInt32, func(b []byte) (int32, error) {
		return parseSigned[int32](b, 32, "int32")
	})
}

// UInt reads a 32-bit unsigned integer.
//
// Returns math.MaxUint32 and io.EOF at end of stream.
func (s *Scanner) UInt() (uint32, error) {
	var buf [InputBufferSize]byte
	return scan(s, buf[:InputBufferSize-1], math.MaxUint32, func(b []byte) (uint32, error) {
		return parseUnsigned[uint32](b, 32, "uint32")
	})
}

// Long reads a 64-bit signed integer.
//
// Returns math.MinInt64 and io.EOF at end of stream.
func (s *Scanner) Long() (int64, error) {
	var buf [InputBufferSize]byte
	return scan(s, buf[:InputBufferSize-1], math.MinInt64, func(b []byte) (int64, error) {
		return parseSigned[int64](b, 64, "int64")
	})
}

// ULong reads a 64-bit unsigned integer.
//
// Returns math.MaxUint64 and io.EOF at end of stream.
func (s *Scanner) ULong() (uint64, error) {
	var buf [InputBufferSize]byte
	return scan(s, buf[:InputBufferSize-1], math.MaxUint64, func(b []byte) (uint64, error) {
		return parseUnsigned[uint64](b, 64, "uint64")
	})
}

// LongLong is the same as Long; both are 64 bits wide.
func (s *Scanner) LongLong() (int64, error) {
	return s.Long()
}

// ULongLong is the same as ULong; both are 64 bits wide.
func (s *Scanner) ULongLong() (uint64, error) {
	return s.ULong()
}

// Float reads a finite 32-bit floating point number.
//
// Returns NaN and io.EOF at end of stream.
func (s *Scanner) Float() (float32, error) {
	var buf [InputBufferSize]byte
	return scan(s, buf[:InputBufferSize-1], float32(math.NaN()), func(b []byte) (float32, error) {
		return parseFloat[float32](b, 32, "float32")
	})
}

// Double reads a finite 64-bit floating point number.
//
// Returns NaN and io.EOF at end of stream.
func (s *Scanner) Double() (float64, error) {
	var buf [InputBufferSize]byte
	return scan(s, buf[:InputBufferSize-1], math.NaN(), func(b []byte) (float64, error) {
		return parseFloat[float64](b, 64, "float64")
	})
}

func parseSigned[T int32 | int64](b []byte, bitSize int, kind string) (T, error) {
	v, err := strconv.ParseInt(string(b), 10, bitSize)
	if err != nil {
		return 0, invalid(kind, b, MsgInvalid)
	}
	return T(v), nil
}

// parseUnsigned reports a leading '-' with MsgNegative before any other
// check. A single leading '+' is accepted.
func parseUnsigned[T uint32 | uint64](b []byte, bitSize int, kind string) (T, error) {
	if len(b) > 0 && b[0] == '-' {
		return 0, invalid(kind, b, MsgNegative)
	}

	digits := b
	if len(digits) > 0 && digits[0] == '+' {
		digits = digits[1:]
	}

	v, err := strconv.ParseUint(string(digits), 10, bitSize)
	if err != nil {
		return 0, invalid(kind, b, MsgInvalid)
	}
	return T(v), nil
}

// parseFloat rejects NaN and infinities, including those produced by
// overflow, and non-zero literals that underflow to zero.
func parseFloat[T float32 | float64](b []byte, bitSize int, kind string) (T, error) {
	v, err := strconv.ParseFloat(string(b), bitSize)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalid(kind, b, MsgInvalid)
	}
	if v == 0 && underflowed(b) {
		return 0, invalid(kind, b, MsgInvalid)
	}
	return T(v), nil
}

// underflowed reports whether the significand of a float literal has a
// non-zero digit. Only meaningful for literals that parsed to zero.
func underflowed(b []byte) bool {
	b = bytes.TrimLeft(b, "+-")
	exp := "eE"
	if len(b) > 1 && b[0] == '0' && (b[1] == 'x' || b[1] == 'X') {
		b, exp = b[2:], "pP"
	}
	if i := bytes.IndexAny(b, exp); i >= 0 {
		b = b[:i]
	}
	return bytes.ContainsAny(b, "123456789abcdefABCDEF")
}
