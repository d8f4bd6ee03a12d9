package htmlparser

// Character reference states. The temporary buffer collects the literal
// characters of the reference so they can be flushed verbatim when it
// does not resolve; the return state decides whether flushed code points
// go to the current attribute value or out as character tokens.

// startCharRef saves the return state and enters the character reference
// state with "&" in the temporary buffer.
func (t *Tokenizer) startCharRef(ret state) {
	t.returnState = ret
	t.tmpBuf = append(t.tmpBuf[:0], '&')
	t.state = characterReferenceState
}

func (t *Tokenizer) inCharacterReference(c rune) {
	switch {
	case isASCIIAlnum(c):
		t.reconsume(c, namedCharacterReferenceState)
	case c == '#':
		t.tmpBuf = append(t.tmpBuf, c)
		t.state = numericCharacterReferenceState
	default:
		t.flushTempBuffer()
		t.reconsume(c, t.returnState)
	}
}

// inNamedCharacterReference consumes the longest run of characters that
// names a table entry. The first name character is pushed back so the
// whole candidate can be matched against the reader's lookahead; entity
// names are ASCII, so the matched byte length equals the code point count.
func (t *Tokenizer) inNamedCharacterReference(c rune) {
	t.r.Backtrack()

	buf := make([]rune, t.Entities.MaxLen())
	n := t.r.PeekBuf(buf)
	length, repl, ok := t.Entities.LongestPrefix(string(buf[:n]))
	if !ok {
		t.flushTempBuffer()
		t.state = ambiguousAmpersandState
		return
	}
	for i := 0; i < length; i++ {
		t.tmpBuf = append(t.tmpBuf, t.r.Read())
	}

	terminated := t.tmpBuf[len(t.tmpBuf)-1] == ';'
	if !terminated && t.inAttrValueReturnState() {
		// historical: "&not" inside an attribute stays literal when it
		// looks like the start of a query parameter or longer word
		if next := t.r.Peek(); next == '=' || isASCIIAlnum(next) {
			t.flushTempBuffer()
			t.state = t.returnState
			return
		}
	}
	if !terminated {
		t.err(MissingSemicolonAfterCharacterReference)
	}
	t.tmpBuf = append(t.tmpBuf[:0], []rune(repl)...)
	t.flushTempBuffer()
	t.state = t.returnState
}

func (t *Tokenizer) inAmbiguousAmpersand(c rune) {
	switch {
	case isASCIIAlnum(c):
		if t.inAttrValueReturnState() {
			t.attrValue = append(t.attrValue, c)
		} else {
			t.emitChar(c)
		}
	case c == ';':
		t.err(UnknownNamedCharacterReference)
		t.reconsume(c, t.returnState)
	default:
		t.reconsume(c, t.returnState)
	}
}

func (t *Tokenizer) inNumericCharacterReference(c rune) {
	t.charRefCode = 0
	if c == 'x' || c == 'X' {
		t.tmpBuf = append(t.tmpBuf, c)
		t.state = hexadecimalCharacterReferenceStartState
		return
	}
	t.reconsume(c, decimalCharacterReferenceStartState)
}

func (t *Tokenizer) inHexadecimalCharacterReferenceStart(c rune) {
	if isASCIIHexDigit(c) {
		t.reconsume(c, hexadecimalCharacterReferenceState)
		return
	}
	t.err(AbsenceOfDigitsInNumericCharacterReference)
	t.flushTempBuffer()
	t.reconsume(c, t.returnState)
}

func (t *Tokenizer) inDecimalCharacterReferenceStart(c rune) {
	if isASCIIDigit(c) {
		t.reconsume(c, decimalCharacterReferenceState)
		return
	}
	t.err(AbsenceOfDigitsInNumericCharacterReference)
	t.flushTempBuffer()
	t.reconsume(c, t.returnState)
}

// addCharRefDigit accumulates one digit, saturating just past the Unicode
// range; the end state clamps anything saturated to U+FFFD.
func (t *Tokenizer) addCharRefDigit(base, digit int) {
	if t.charRefCode <= 0x10FFFF {
		t.charRefCode = t.charRefCode*base + digit
	}
}

func (t *Tokenizer) inHexadecimalCharacterReference(c rune) {
	switch {
	case isASCIIDigit(c):
		t.addCharRefDigit(16, int(c-'0'))
	case 'A' <= c && c <= 'F':
		t.addCharRefDigit(16, int(c-'A'+10))
	case 'a' <= c && c <= 'f':
		t.addCharRefDigit(16, int(c-'a'+10))
	case c == ';':
		t.state = numericCharacterReferenceEndState
	default:
		t.err(MissingSemicolonAfterCharacterReference)
		t.reconsume(c, numericCharacterReferenceEndState)
	}
}

func (t *Tokenizer) inDecimalCharacterReference(c rune) {
	switch {
	case isASCIIDigit(c):
		t.addCharRefDigit(10, int(c-'0'))
	case c == ';':
		t.state = numericCharacterReferenceEndState
	default:
		t.err(MissingSemicolonAfterCharacterReference)
		t.reconsume(c, numericCharacterReferenceEndState)
	}
}

// inNumericCharacterReferenceEnd validates the accumulated value and
// flushes the resulting code point. The WHATWG end state consumes
// nothing, so whatever code point brought us here is handed straight on
// to the return state.
func (t *Tokenizer) inNumericCharacterReferenceEnd(c rune) {
	code := t.charRefCode
	switch {
	case code == 0:
		t.err(NullCharacterReference)
		code = int(replacementChar)
	case code > 0x10FFFF:
		t.err(CharacterReferenceOutsideUnicodeRange)
		code = int(replacementChar)
	case isSurrogate(code):
		t.err(SurrogateCharacterReference)
		code = int(replacementChar)
	case isNoncharacter(code):
		t.err(NoncharacterCharacterReference)
	case code == 0x0D || (isControl(code) && !isASCIIWhitespaceCode(code)):
		t.err(ControlCharacterReference)
		if mapped, ok := c1Replacements[code]; ok {
			code = mapped
		}
	}
	t.tmpBuf = append(t.tmpBuf[:0], rune(code))
	t.flushTempBuffer()
	t.reconsume(c, t.returnState)
}

func isSurrogate(code int) bool {
	return 0xD800 <= code && code <= 0xDFFF
}

func isNoncharacter(code int) bool {
	if 0xFDD0 <= code && code <= 0xFDEF {
		return true
	}
	return code&0xFFFE == 0xFFFE && code <= 0x10FFFF
}

func isControl(code int) bool {
	return (0x00 <= code && code <= 0x1F) || (0x7F <= code && code <= 0x9F)
}

func isASCIIWhitespaceCode(code int) bool {
	switch code {
	case 0x09, 0x0A, 0x0C, 0x0D, 0x20:
		return true
	}
	return false
}

// c1Replacements maps numeric references in the C1 control range onto the
// Windows-1252 characters documents written with that encoding meant.
var c1Replacements = map[int]int{
	0x80: 0x20AC, // EURO SIGN
	0x82: 0x201A, // SINGLE LOW-9 QUOTATION MARK
	0x83: 0x0192, // LATIN SMALL LETTER F WITH HOOK
	0x84: 0x201E, // DOUBLE LOW-9 QUOTATION MARK
	0x85: 0x2026, // HORIZONTAL ELLIPSIS
	0x86: 0x2020, // DAGGER
	0x87: 0x2021, // DOUBLE DAGGER
	0x88: 0x02C6, // MODIFIER LETTER CIRCUMFLEX ACCENT
	0x89: 0x2030, // PER MILLE SIGN
	0x8A: 0x0160, // LATIN CAPITAL LETTER S WITH CARON
	0x8B: 0x2039, // SINGLE LEFT-POINTING ANGLE QUOTATION MARK
	0x8C: 0x0152, // LATIN CAPITAL LIGATURE OE
	0x8E: 0x017D, // LATIN CAPITAL LETTER Z WITH CARON
	0x91: 0x2018, // LEFT SINGLE QUOTATION MARK
	0x92: 0x2019, // RIGHT SINGLE QUOTATION MARK
	0x93: 0x201C, // LEFT DOUBLE QUOTATION MARK
	0x94: 0x201D, // RIGHT DOUBLE QUOTATION MARK
	0x95: 0x2022, // BULLET
	0x96: 0x2013, // EN DASH
	0x97: 0x2014, // EM DASH
	0x98: 0x02DC, // SMALL TILDE
	0x99: 0x2122, // TRADE MARK SIGN
	0x9A: 0x0161, // LATIN SMALL LETTER S WITH CARON
	0x9B: 0x203A, // SINGLE RIGHT-POINTING ANGLE QUOTATION MARK
	0x9C: 0x0153, // LATIN SMALL LIGATURE OE
	0x9E: 0x017E, // LATIN SMALL LETTER Z WITH CARON
	0x9F: 0x0178, // LATIN CAPITAL LETTER Y WITH DIAERESIS
}
