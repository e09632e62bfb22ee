package safeinput

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bustyanimebabesdotcom/safeinput/pkg/linereader"
)

func TestString(t *testing.T) {
	s, rec := newTestScanner("hi\n")
	str, err := s.String()
	require.NoError(t, err)
	require.Equal(t, 2, str.Len())
	require.Equal(t, []byte{'h', 'i'}, str.Data)
	require.Equal(t, 2, cap(str.Data), "no room reserved for a terminator")
	require.Equal(t, "hi", str.String())
	require.Empty(t, rec.msgs)
}

func TestString_Empty(t *testing.T) {
	s, _ := newTestScanner("\n")
	str, err := s.String()
	require.NoError(t, err)
	require.False(t, str.IsNil())
	require.Equal(t, 0, str.Len())
}

func TestString_EOF(t *testing.T) {
	s, _ := newTestScanner("")
	str, err := s.String()
	require.ErrorIs(t, err, io.EOF)
	require.True(t, str.IsNil())
	require.Equal(t, 0, str.Len())
}

func TestString_UsesFullBuffer(t *testing.T) {
	fits := strings.Repeat("s", InputBufferSize-1)
	overruns := strings.Repeat("o", InputBufferSize)
	s, rec := newTestScanner(overruns + "\n" + fits + "\n")

	str, err := s.String()
	require.NoError(t, err)
	require.Equal(t, fits, str.String())
	require.Equal(t, []string{linereader.OverrunMessage}, rec.msgs)
}

func TestString_NotAliased(t *testing.T) {
	s, _ := newTestScanner("one\ntwo\n")
	first, err := s.String()
	require.NoError(t, err)
	_, err = s.String()
	require.NoError(t, err)
	require.Equal(t, "one", first.String())
}

func TestByteString_Release(t *testing.T) {
	s, _ := newTestScanner("secret\n")
	str, err := s.String()
	require.NoError(t, err)

	data := str.Data
	str.Release()
	require.True(t, str.IsNil())
	require.Equal(t, make([]byte, len("secret")), data)

	require.NotPanics(t, str.Release)
}

func TestCString(t *testing.T) {
	s, rec := newTestScanner("hi\n")
	cs, err := s.CString()
	require.NoError(t, err)
	require.Equal(t, []byte{'h', 'i', 0}, cs)
	require.Empty(t, rec.msgs)
}

func TestCString_Empty(t *testing.T) {
	s, _ := newTestScanner("\n")
	cs, err := s.CString()
	require.NoError(t, err)
	require.Equal(t, []byte{0}, cs)
}

func TestCString_EOF(t *testing.T) {
	s, _ := newTestScanner("")
	cs, err := s.CString()
	require.ErrorIs(t, err, io.EOF)
	require.Nil(t, cs)
}

func TestCString_Capacity(t *testing.T) {
	tooLong := strings.Repeat("x", InputBufferSize-1)
	fits := strings.Repeat("y", InputBufferSize-2)
	s, rec := newTestScanner(tooLong + "\n" + fits + "\n")

	cs, err := s.CString()
	require.NoError(t, err)
	require.Len(t, cs, InputBufferSize-1)
	require.Equal(t, byte(0), cs[len(cs)-1])
	require.Equal(t, []string{linereader.OverrunMessage}, rec.msgs)
}
