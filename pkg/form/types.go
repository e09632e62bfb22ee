package form

import (
	"fmt"
	"sort"

	"github.com/bustyanimebabesdotcom/safeinput/pkg/safeinput"
)

// Question types understood by Read.
const (
	TypeInt       = "int"
	TypeUInt      = "uint"
	TypeLong      = "long"
	TypeULong     = "ulong"
	TypeLongLong  = "longlong"
	TypeULongLong = "ulonglong"
	TypeFloat     = "float"
	TypeDouble    = "double"
	TypeChar      = "char"
	TypeCharF     = "charf"
	TypeCString   = "cstring"
	TypeString    = "string"
	TypeBool      = "bool"
)

type reader func(s *safeinput.Scanner, allowed string) (any, error)

var readers = map[string]reader{
	TypeInt:       func(s *safeinput.Scanner, _ string) (any, error) { return s.Int() },
	TypeUInt:      func(s *safeinput.Scanner, _ string) (any, error) { return s.UInt() },
	TypeLong:      func(s *safeinput.Scanner, _ string) (any, error) { return s.Long() },
	TypeULong:     func(s *safeinput.Scanner, _ string) (any, error) { return s.ULong() },
	TypeLongLong:  func(s *safeinput.Scanner, _ string) (any, error) { return s.LongLong() },
	TypeULongLong: func(s *safeinput.Scanner, _ string) (any, error) { return s.ULongLong() },
	TypeFloat:     func(s *safeinput.Scanner, _ string) (any, error) { return s.Float() },
	TypeDouble:    func(s *safeinput.Scanner, _ string) (any, error) { return s.Double() },
	TypeChar: func(s *safeinput.Scanner, _ string) (any, error) {
		c, err := s.Char()
		return charValue(c), err
	},
	TypeCharF: func(s *safeinput.Scanner, allowed string) (any, error) {
		c, err := s.CharFiltered([]byte(allowed))
		return charValue(c), err
	},
	TypeCString: func(s *safeinput.Scanner, _ string) (any, error) {
		b, err := s.CString()
		if b == nil {
			return nil, err
		}
		return string(b[:len(b)-1]), err
	},
	TypeString: func(s *safeinput.Scanner, _ string) (any, error) {
		b, err := s.String()
		if b.IsNil() {
			return nil, err
		}
		return b.String(), err
	},
	TypeBool: func(s *safeinput.Scanner, _ string) (any, error) { return s.Bool() },
}

// charValue turns a character code into a one-byte string, or nil for EOF.
func charValue(c int) any {
	if c == safeinput.EOF {
		return nil
	}
	return string([]byte{byte(c)})
}

// Types returns the supported question types, sorted.
func Types() []string {
	out := make([]string, 0, len(readers))
	for t := range readers {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Read reads one value of the named type from s.
//
// Characters come back as one-byte strings, terminated strings without
// their terminator. allowed is only used by TypeCharF. At end of stream the
// error is io.EOF and the value is nil for character and string types, or
// the accessor's sentinel otherwise.
func Read(s *safeinput.Scanner, typ, allowed string) (any, error) {
	fn, ok := readers[typ]
	if !ok {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidForm, typ)
	}
	return fn(s, allowed)
}
