package safeinput

import (
	"os"
	"sync"
)

var (
	stdinOnce    sync.Once
	stdinScanner *Scanner
)

// Stdin returns the shared Scanner over os.Stdin, reporting to os.Stderr.
// The package-level accessors below all use it.
func Stdin() *Scanner {
	stdinOnce.Do(func() {
		stdinScanner = New(os.Stdin)
	})
	return stdinScanner
}

// Int reads an int32 from standard input. See Scanner.Int.
func Int() (int32, error) { return Stdin().Int() }

// UInt reads a uint32 from standard input. See Scanner.UInt.
func UInt() (uint32, error) { return Stdin().UInt() }

// Long reads an int64 from standard input. See Scanner.Long.
func Long() (int64, error) { return Stdin().Long() }

// ULong reads a uint64 from standard input. See Scanner.ULong.
func ULong() (uint64, error) { return Stdin().ULong() }

// LongLong reads an int64 from standard input. See Scanner.LongLong.
func LongLong() (int64, error) { return Stdin().LongLong() }

// ULongLong reads a uint64 from standard input. See Scanner.ULongLong.
func ULongLong() (uint64, error) { return Stdin().ULongLong() }

// Float reads a float32 from standard input. See Scanner.Float.
func Float() (float32, error) { return Stdin().Float() }

// Double reads a float64 from standard input. See Scanner.Double.
func Double() (float64, error) { return Stdin().Double() }

// Char reads one byte from standard input. See Scanner.Char.
func Char() (int, error) { return Stdin().Char() }

// CharFiltered reads one allowed byte from standard input. See Scanner.CharFiltered.
func CharFiltered(allowed []byte) (int, error) { return Stdin().CharFiltered(allowed) }

// CString reads a terminated line from standard input. See Scanner.CString.
func CString() ([]byte, error) { return Stdin().CString() }

// String reads a counted line from standard input. See Scanner.String.
func String() (ByteString, error) { return Stdin().String() }

// Bool reads y or n from standard input. See Scanner.Bool.
func Bool() (bool, error) { return Stdin().Bool() }
