package htmlparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedCharacterReferences(t *testing.T) {
	test := func(input string, expectedText string, expectedErrors ...ErrorKind) func(*testing.T) {
		return func(t *testing.T) {
			tokens, kinds := tokenizeAll(input)
			var text []rune
			for _, tok := range tokens {
				if tok.Type == CharacterToken {
					text = append(text, tok.Char)
				}
			}
			assert.Equal(t, expectedText, string(text))
			assert.Equal(t, expectedErrors, kinds)
		}
	}

	t.Run("", test("&amp;", "&"))
	t.Run("", test("&lt;&gt;", "<>"))
	t.Run("", test("&euro;", "€"))
	t.Run("", test("&Auml;", "Ä"))
	// legacy references resolve without the semicolon, with an error
	t.Run("", test("&amp", "&", MissingSemicolonAfterCharacterReference))
	t.Run("", test("&notit;", "¬it;", MissingSemicolonAfterCharacterReference))
	t.Run("", test("&notin;", "∉"))
	// unknown name: the run stays literal; the semicolon flags it
	t.Run("", test("&bogus;", "&bogus;", UnknownNamedCharacterReference))
	t.Run("", test("&bogus ", "&bogus "))
	// lone ampersand and non-name characters pass through
	t.Run("", test("&", "&"))
	t.Run("", test("& amp;", "& amp;"))
	t.Run("", test("a&&amp;b", "a&&b"))
}

func TestNamedCharacterReferenceInAttributes(t *testing.T) {
	attrValue := func(t *testing.T, input string) (string, []ErrorKind) {
		tokens, kinds := tokenizeAll(input)
		require.Equal(t, StartTagToken, tokens[0].Type)
		require.Len(t, tokens[0].Attr, 1)
		return tokens[0].Attr[0].Value, kinds
	}

	t.Run("resolved", func(t *testing.T) {
		v, kinds := attrValue(t, `<a href="a&amp;b">`)
		assert.Equal(t, "a&b", v)
		assert.Empty(t, kinds)
	})

	t.Run("legacy suppressed before alnum", func(t *testing.T) {
		// &not followed by an alphanumeric stays literal inside an
		// attribute, without any error
		v, kinds := attrValue(t, `<a href="&notit">`)
		assert.Equal(t, "&notit", v)
		assert.Empty(t, kinds)
	})

	t.Run("legacy suppressed before equals", func(t *testing.T) {
		v, kinds := attrValue(t, `<a href="?x&copy=1">`)
		assert.Equal(t, "?x&copy=1", v)
		assert.Empty(t, kinds)
	})

	t.Run("legacy resolved at value end", func(t *testing.T) {
		v, kinds := attrValue(t, `<a href="&copy">`)
		assert.Equal(t, "©", v)
		assert.Equal(t, []ErrorKind{MissingSemicolonAfterCharacterReference}, kinds)
	})

	t.Run("ambiguous run goes to the value", func(t *testing.T) {
		v, kinds := attrValue(t, `<a href="&bogus2">`)
		assert.Equal(t, "&bogus2", v)
		assert.Empty(t, kinds)
	})
}

func TestNumericCharacterReferences(t *testing.T) {
	test := func(input string, expectedText string, expectedErrors ...ErrorKind) func(*testing.T) {
		return func(t *testing.T) {
			tokens, kinds := tokenizeAll(input)
			var text []rune
			for _, tok := range tokens {
				if tok.Type == CharacterToken {
					text = append(text, tok.Char)
				}
			}
			assert.Equal(t, expectedText, string(text))
			assert.Equal(t, expectedErrors, kinds)
		}
	}

	t.Run("", test("&#65;", "A"))
	t.Run("", test("&#x41;", "A"))
	t.Run("", test("&#X41;", "A"))
	t.Run("", test("&#x1F388;", "🎈"))
	t.Run("", test("&#65", "A", MissingSemicolonAfterCharacterReference))
	t.Run("", test("&#65x", "Ax", MissingSemicolonAfterCharacterReference))

	t.Run("", test("&#;", "&#;", AbsenceOfDigitsInNumericCharacterReference))
	t.Run("", test("&#x;", "&#x;", AbsenceOfDigitsInNumericCharacterReference))
	t.Run("", test("&#xg", "&#xg", AbsenceOfDigitsInNumericCharacterReference))

	t.Run("", test("&#0;", "�", NullCharacterReference))
	t.Run("", test("&#x110000;", "�", CharacterReferenceOutsideUnicodeRange))
	t.Run("", test("&#999999999999;", "�", CharacterReferenceOutsideUnicodeRange))
	t.Run("", test("&#xD800;", "�", SurrogateCharacterReference))
	t.Run("", test("&#xFDD0;", "﷐", NoncharacterCharacterReference))
	t.Run("", test("&#xFFFF;", "￿", NoncharacterCharacterReference))

	// C1 controls map to the Windows-1252 characters
	t.Run("", test("&#128;", "€", ControlCharacterReference))
	t.Run("", test("&#x80;", "€", ControlCharacterReference))
	t.Run("", test("&#x93;", "“", ControlCharacterReference))
	// controls without a mapping keep their value
	t.Run("", test("&#x81;", "", ControlCharacterReference))
	t.Run("", test("&#x1;", "", ControlCharacterReference))
	t.Run("", test("&#x0D;", "\r", ControlCharacterReference))
	// ASCII whitespace is not a control reference
	t.Run("", test("&#x09;", "\t"))
	t.Run("", test("&#x20;", " "))
}

func TestNumericReferenceInAttribute(t *testing.T) {
	tokens, kinds := tokenizeAll(`<a b="&#65;&#x26;">`)
	require.Equal(t, StartTagToken, tokens[0].Type)
	assert.Equal(t, []Attribute{{Name: "b", Value: "A&"}}, tokens[0].Attr)
	assert.Empty(t, kinds)
}

func TestCharacterReferenceAtEOF(t *testing.T) {
	test := func(input string, expectedText string, expectedErrors ...ErrorKind) func(*testing.T) {
		return func(t *testing.T) {
			tokens, kinds := tokenizeAll(input)
			var text []rune
			for _, tok := range tokens {
				if tok.Type == CharacterToken {
					text = append(text, tok.Char)
				}
			}
			assert.Equal(t, expectedText, string(text))
			assert.Equal(t, expectedErrors, kinds)
			assert.Equal(t, EOFToken, tokens[len(tokens)-1].Type)
		}
	}

	t.Run("", test("a&", "a&"))
	t.Run("", test("a&#", "a&#", AbsenceOfDigitsInNumericCharacterReference))
	t.Run("", test("a&b", "a&b"))
	t.Run("", test("a&#x41", "aA", MissingSemicolonAfterCharacterReference))
}
