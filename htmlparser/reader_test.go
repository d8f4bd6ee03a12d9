package htmlparser

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAndPos(t *testing.T) {
	r := NewReader("test.html", []byte("ab\ncd"))

	assert.Equal(t, Pos{File: "test.html", Line: 1, Col: 1, Byte: 0}, r.Pos())
	assert.Equal(t, 'a', r.Read())
	assert.Equal(t, 'b', r.Read())
	assert.Equal(t, Pos{File: "test.html", Line: 1, Col: 3, Byte: 2}, r.Pos())
	assert.Equal(t, '\n', r.Read())
	assert.Equal(t, Pos{File: "test.html", Line: 2, Col: 1, Byte: 0}, r.Pos())
	assert.Equal(t, 'c', r.Read())
	assert.Equal(t, 'd', r.Read())
	assert.Equal(t, EOF, r.Read())
	// EOF is a sentinel, not a failure; the position stays put
	pos := r.Pos()
	assert.Equal(t, EOF, r.Read())
	assert.Equal(t, pos, r.Pos())
}

func TestNewlineNormalization(t *testing.T) {
	test := func(input string, expected []rune) func(*testing.T) {
		return func(t *testing.T) {
			r := NewReader("", []byte(input))
			var got []rune
			for {
				c := r.Read()
				if c == EOF {
					break
				}
				got = append(got, c)
			}
			assert.Equal(t, expected, got)
		}
	}

	t.Run("", test("a\r\nb", []rune{'a', '\n', 'b'}))
	t.Run("", test("a\rb", []rune{'a', '\n', 'b'}))
	t.Run("", test("\r\r\n\n", []rune{'\n', '\n', '\n'}))
	t.Run("", test("\r", []rune{'\n'}))
}

func TestMultibyteDecoding(t *testing.T) {
	r := NewReader("", []byte("hé中🎈"))
	assert.Equal(t, 'h', r.Read())
	assert.Equal(t, 'é', r.Read())
	assert.Equal(t, Pos{Line: 1, Col: 3, Byte: 3}, r.Pos())
	assert.Equal(t, '中', r.Read())
	assert.Equal(t, '🎈', r.Read())
	assert.Equal(t, Pos{Line: 1, Col: 5, Byte: 10}, r.Pos())
	assert.Equal(t, EOF, r.Read())
}

func TestBacktrackIsPositionIdentity(t *testing.T) {
	input := "a\r\né\n中🎈\rx"
	r := NewReader("", []byte(input))

	// at every point in the stream, read followed by backtrack must not
	// move the position
	for {
		before := r.Pos()
		c := r.Read()
		if c == EOF {
			break
		}
		r.Backtrack()
		assert.Equal(t, before, r.Pos())
		assert.Equal(t, c, r.Read())
	}
}

func TestBacktrackAcrossLines(t *testing.T) {
	r := NewReader("", []byte("ab\r\ncd"))
	for i := 0; i < 4; i++ {
		r.Read()
	}
	assert.Equal(t, Pos{Line: 2, Col: 2, Byte: 1}, r.Pos())
	r.BacktrackN(2)
	assert.Equal(t, Pos{Line: 1, Col: 3, Byte: 2}, r.Pos())
	assert.Equal(t, '\n', r.Read())
	assert.Equal(t, 'c', r.Read())
}

func TestPeekDoesNotAdvance(t *testing.T) {
	r := NewReader("", []byte("xyz"))
	assert.Equal(t, 'x', r.Peek())
	assert.Equal(t, 'x', r.Peek())
	assert.Equal(t, Pos{Line: 1, Col: 1, Byte: 0}, r.Pos())

	buf := make([]rune, 5)
	n := r.PeekBuf(buf)
	assert.Equal(t, 3, n)
	assert.Equal(t, []rune("xyz"), buf[:n])
	assert.Equal(t, Pos{Line: 1, Col: 1, Byte: 0}, r.Pos())

	assert.Equal(t, 'x', r.Read())
	assert.Equal(t, 'y', r.Read())
	assert.Equal(t, 'z', r.Peek())
}

func TestReadBuf(t *testing.T) {
	r := NewReader("", []byte("abc"))
	buf := make([]rune, 2)
	require.Equal(t, 2, r.ReadBuf(buf))
	assert.Equal(t, []rune("ab"), buf)
	require.Equal(t, 1, r.ReadBuf(buf))
	assert.Equal(t, 'c', buf[0])
	assert.Equal(t, 0, r.ReadBuf(buf))
}

func TestSeek(t *testing.T) {
	r := NewReader("", []byte("héllo\nworld"))

	r.Seek(io.SeekStart, 6)
	assert.Equal(t, 'w', r.Peek())
	assert.Equal(t, Pos{Line: 2, Col: 1, Byte: 0}, r.Pos())

	r.Seek(io.SeekCurrent, -3)
	assert.Equal(t, 'l', r.Peek())
	assert.Equal(t, Pos{Line: 1, Col: 4, Byte: 4}, r.Pos())

	r.Seek(io.SeekCurrent, 3)
	assert.Equal(t, 'w', r.Peek())

	r.Seek(io.SeekStart, 0)
	assert.Equal(t, 'h', r.Peek())
	assert.Equal(t, Pos{Line: 1, Col: 1, Byte: 0}, r.Pos())
}

func TestMalformedUTF8(t *testing.T) {
	test := func(input []byte) func(*testing.T) {
		return func(t *testing.T) {
			r := NewReader("", input)
			assert.Equal(t, 'a', r.Read())
			pos := r.Pos()
			// malformed input does not advance, no matter how often read
			assert.Equal(t, Invalid, r.Read())
			assert.Equal(t, Invalid, r.Read())
			assert.Equal(t, pos, r.Pos())
		}
	}

	t.Run("stray continuation", test([]byte{'a', 0x80}))
	t.Run("invalid lead", test([]byte{'a', 0xFF}))
	t.Run("overlong slash", test([]byte{'a', 0xC0, 0xAF}))
	t.Run("surrogate", test([]byte{'a', 0xED, 0xA0, 0x80}))
	t.Run("truncated sequence", test([]byte{'a', 0xE2, 0x82}))

	// a literal replacement character is fine
	r := NewReader("", []byte("a�b"))
	assert.Equal(t, 'a', r.Read())
	assert.Equal(t, '�', r.Read())
	assert.Equal(t, 'b', r.Read())
}
