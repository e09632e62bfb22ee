// Package safeinput reads typed values from line-oriented input.
//
// Every accessor reads exactly one line, validates all of it, and on
// malformed input reports a diagnostic and reads the next line. The caller
// only ever sees a valid value or a terminal condition.
//
// # Basic Usage
//
//	s := safeinput.New(os.Stdin)
//	age, err := s.UInt()
//	if err == io.EOF {
//		// input exhausted; age == math.MaxUint32
//	}
//
// Package-level functions use a shared Scanner over os.Stdin:
//
//	name, _ := safeinput.String()
//	ok, _ := safeinput.Bool()
//
// # Validation
//
// Numbers must be decimal, non-empty, fully consumed and in range for the
// target width. Leading or trailing whitespace is rejected. Unsigned
// accessors reject a leading '-' with a dedicated message. Floating point
// accessors reject NaN and infinities.
//
// A character is a single byte. An empty line reads as '\n'.
//
// Booleans accept y, Y, n and N.
//
// # End of Stream
//
// On end of stream each accessor returns io.EOF together with a sentinel
// value of its own type:
//
//	Int                    math.MinInt32
//	UInt                   math.MaxUint32
//	Long, LongLong         math.MinInt64
//	ULong, ULongLong       math.MaxUint64
//	Float, Double          NaN
//	Char, CharFiltered     EOF (-1)
//	CString                nil
//	String                 ByteString{} (nil Data)
//	Bool                   false
//
// A user may legitimately enter a value equal to a sentinel, so check err
// rather than comparing against the sentinel.
//
// # Limits
//
// Numeric and terminated-string reads accept at most InputBufferSize-1
// bytes per line; String accepts InputBufferSize. Character reads use a
// CharInputBufferSize staging buffer. Longer lines are discarded whole and
// re-read.
//
// A Scanner is not safe for concurrent use, and only one Scanner should
// read a given stream.
package safeinput
