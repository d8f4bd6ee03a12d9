package htmlparser

// DOCTYPE states and the CDATA section states. The DOCTYPE builder is a
// plain value on the tokenizer, reset whenever a new declaration starts;
// the Has* flags keep "absent" distinct from "present but empty".

func (t *Tokenizer) newDoctype() {
	t.doctype = Doctype{}
}

func (t *Tokenizer) inDoctype(c rune) {
	switch {
	case isWhitespace(c):
		t.state = beforeDoctypeNameState
	case c == '>':
		t.reconsume(c, beforeDoctypeNameState)
	case c == EOF:
		t.err(EofInDoctype)
		t.newDoctype()
		t.doctype.ForceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		t.err(MissingWhitespaceBeforeDoctypeName)
		t.reconsume(c, beforeDoctypeNameState)
	}
}

func (t *Tokenizer) inBeforeDoctypeName(c rune) {
	switch {
	case isWhitespace(c):
		// ignore
	case isASCIIUpper(c):
		t.newDoctype()
		t.doctype.HasName = true
		t.doctype.Name = string(toASCIILower(c))
		t.state = doctypeNameState
	case c == 0:
		t.err(UnexpectedNullCharacter)
		t.newDoctype()
		t.doctype.HasName = true
		t.doctype.Name = string(replacementChar)
		t.state = doctypeNameState
	case c == '>':
		t.err(MissingDoctypeName)
		t.newDoctype()
		t.doctype.ForceQuirks = true
		t.state = dataState
		t.emitDoctype()
	case c == EOF:
		t.err(EofInDoctype)
		t.newDoctype()
		t.doctype.ForceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		t.newDoctype()
		t.doctype.HasName = true
		t.doctype.Name = string(c)
		t.state = doctypeNameState
	}
}

func (t *Tokenizer) inDoctypeName(c rune) {
	switch {
	case isWhitespace(c):
		t.state = afterDoctypeNameState
	case c == '>':
		t.state = dataState
		t.emitDoctype()
	case isASCIIUpper(c):
		t.doctype.Name += string(toASCIILower(c))
	case c == 0:
		t.err(UnexpectedNullCharacter)
		t.doctype.Name += string(replacementChar)
	case c == EOF:
		t.err(EofInDoctype)
		t.doctype.ForceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		t.doctype.Name += string(c)
	}
}

func (t *Tokenizer) inAfterDoctypeName(c rune) {
	switch {
	case isWhitespace(c):
		// ignore
	case c == '>':
		t.state = dataState
		t.emitDoctype()
	case c == EOF:
		t.err(EofInDoctype)
		t.doctype.ForceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		// PUBLIC or SYSTEM keyword, checked with bounded lookahead from
		// the code point just consumed
		var buf [5]rune
		if n := t.r.PeekBuf(buf[:]); n == 5 {
			if (c == 'p' || c == 'P') && asciiEqualFold(buf[:], "UBLIC") {
				t.r.ReadBuf(buf[:])
				t.state = afterDoctypePublicKeywordState
				return
			}
			if (c == 's' || c == 'S') && asciiEqualFold(buf[:], "YSTEM") {
				t.r.ReadBuf(buf[:])
				t.state = afterDoctypeSystemKeywordState
				return
			}
		}
		t.err(InvalidCharacterSequenceAfterDoctypeName)
		t.doctype.ForceQuirks = true
		t.reconsume(c, bogusDoctypeState)
	}
}

func (t *Tokenizer) inAfterDoctypePublicKeyword(c rune) {
	switch {
	case isWhitespace(c):
		t.state = beforeDoctypePublicIdentifierState
	case c == '"':
		t.err(MissingWhitespaceAfterDoctypePublicKeyword)
		t.doctype.HasPublicID = true
		t.doctype.PublicID = ""
		t.state = doctypePublicIdentifierDoubleQuotedState
	case c == '\'':
		t.err(MissingWhitespaceAfterDoctypePublicKeyword)
		t.doctype.HasPublicID = true
		t.doctype.PublicID = ""
		t.state = doctypePublicIdentifierSingleQuotedState
	case c == '>':
		t.err(MissingDoctypePublicIdentifier)
		t.doctype.ForceQuirks = true
		t.state = dataState
		t.emitDoctype()
	case c == EOF:
		t.err(EofInDoctype)
		t.doctype.ForceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		t.err(MissingQuoteBeforeDoctypePublicIdentifier)
		t.doctype.ForceQuirks = true
		t.reconsume(c, bogusDoctypeState)
	}
}

func (t *Tokenizer) inBeforeDoctypePublicIdentifier(c rune) {
	switch {
	case isWhitespace(c):
		// ignore
	case c == '"':
		t.doctype.HasPublicID = true
		t.doctype.PublicID = ""
		t.state = doctypePublicIdentifierDoubleQuotedState
	case c == '\'':
		t.doctype.HasPublicID = true
		t.doctype.PublicID = ""
		t.state = doctypePublicIdentifierSingleQuotedState
	case c == '>':
		t.err(MissingDoctypePublicIdentifier)
		t.doctype.ForceQuirks = true
		t.state = dataState
		t.emitDoctype()
	case c == EOF:
		t.err(EofInDoctype)
		t.doctype.ForceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		t.err(MissingQuoteBeforeDoctypePublicIdentifier)
		t.doctype.ForceQuirks = true
		t.reconsume(c, bogusDoctypeState)
	}
}

func (t *Tokenizer) inDoctypePublicIdentifierQuoted(c rune, quote rune) {
	switch {
	case c == quote:
		t.state = afterDoctypePublicIdentifierState
	case c == 0:
		t.err(UnexpectedNullCharacter)
		t.doctype.PublicID += string(replacementChar)
	case c == '>':
		t.err(AbruptDoctypePublicIdentifier)
		t.doctype.ForceQuirks = true
		t.state = dataState
		t.emitDoctype()
	case c == EOF:
		t.err(EofInDoctype)
		t.doctype.ForceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		t.doctype.PublicID += string(c)
	}
}

func (t *Tokenizer) inAfterDoctypePublicIdentifier(c rune) {
	switch {
	case isWhitespace(c):
		t.state = betweenDoctypePublicAndSystemIdentifiersState
	case c == '>':
		t.state = dataState
		t.emitDoctype()
	case c == '"':
		t.err(MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		t.doctype.HasSystemID = true
		t.doctype.SystemID = ""
		t.state = doctypeSystemIdentifierDoubleQuotedState
	case c == '\'':
		t.err(MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		t.doctype.HasSystemID = true
		t.doctype.SystemID = ""
		t.state = doctypeSystemIdentifierSingleQuotedState
	case c == EOF:
		t.err(EofInDoctype)
		t.doctype.ForceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		t.err(MissingQuoteBeforeDoctypeSystemIdentifier)
		t.doctype.ForceQuirks = true
		t.reconsume(c, bogusDoctypeState)
	}
}

func (t *Tokenizer) inBetweenDoctypePublicAndSystemIdentifiers(c rune) {
	switch {
	case isWhitespace(c):
		// ignore
	case c == '>':
		t.state = dataState
		t.emitDoctype()
	case c == '"':
		t.doctype.HasSystemID = true
		t.doctype.SystemID = ""
		t.state = doctypeSystemIdentifierDoubleQuotedState
	case c == '\'':
		t.doctype.HasSystemID = true
		t.doctype.SystemID = ""
		t.state = doctypeSystemIdentifierSingleQuotedState
	case c == EOF:
		t.err(EofInDoctype)
		t.doctype.ForceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		t.err(MissingQuoteBeforeDoctypeSystemIdentifier)
		t.doctype.ForceQuirks = true
		t.reconsume(c, bogusDoctypeState)
	}
}

func (t *Tokenizer) inAfterDoctypeSystemKeyword(c rune) {
	switch {
	case isWhitespace(c):
		t.state = beforeDoctypeSystemIdentifierState
	case c == '"':
		t.err(MissingWhitespaceAfterDoctypeSystemKeyword)
		t.doctype.HasSystemID = true
		t.doctype.SystemID = ""
		t.state = doctypeSystemIdentifierDoubleQuotedState
	case c == '\'':
		t.err(MissingWhitespaceAfterDoctypeSystemKeyword)
		t.doctype.HasSystemID = true
		t.doctype.SystemID = ""
		t.state = doctypeSystemIdentifierSingleQuotedState
	case c == '>':
		t.err(MissingDoctypeSystemIdentifier)
		t.doctype.ForceQuirks = true
		t.state = dataState
		t.emitDoctype()
	case c == EOF:
		t.err(EofInDoctype)
		t.doctype.ForceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		t.err(MissingQuoteBeforeDoctypeSystemIdentifier)
		t.doctype.ForceQuirks = true
		t.reconsume(c, bogusDoctypeState)
	}
}

func (t *Tokenizer) inBeforeDoctypeSystemIdentifier(c rune) {
	switch {
	case isWhitespace(c):
		// ignore
	case c == '"':
		t.doctype.HasSystemID = true
		t.doctype.SystemID = ""
		t.state = doctypeSystemIdentifierDoubleQuotedState
	case c == '\'':
		t.doctype.HasSystemID = true
		t.doctype.SystemID = ""
		t.state = doctypeSystemIdentifierSingleQuotedState
	case c == '>':
		t.err(MissingDoctypeSystemIdentifier)
		t.doctype.ForceQuirks = true
		t.state = dataState
		t.emitDoctype()
	case c == EOF:
		t.err(EofInDoctype)
		t.doctype.ForceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		t.err(MissingQuoteBeforeDoctypeSystemIdentifier)
		t.doctype.ForceQuirks = true
		t.reconsume(c, bogusDoctypeState)
	}
}

func (t *Tokenizer) inDoctypeSystemIdentifierQuoted(c rune, quote rune) {
	switch {
	case c == quote:
		t.state = afterDoctypeSystemIdentifierState
	case c == 0:
		t.err(UnexpectedNullCharacter)
		t.doctype.SystemID += string(replacementChar)
	case c == '>':
		t.err(AbruptDoctypeSystemIdentifier)
		t.doctype.ForceQuirks = true
		t.state = dataState
		t.emitDoctype()
	case c == EOF:
		t.err(EofInDoctype)
		t.doctype.ForceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		t.doctype.SystemID += string(c)
	}
}

func (t *Tokenizer) inAfterDoctypeSystemIdentifier(c rune) {
	switch {
	case isWhitespace(c):
		// ignore
	case c == '>':
		t.state = dataState
		t.emitDoctype()
	case c == EOF:
		t.err(EofInDoctype)
		t.doctype.ForceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		// note: does not set the force-quirks flag
		t.err(UnexpectedCharacterAfterDoctypeSystemIdentifier)
		t.reconsume(c, bogusDoctypeState)
	}
}

func (t *Tokenizer) inBogusDoctype(c rune) {
	switch {
	case c == '>':
		t.state = dataState
		t.emitDoctype()
	case c == 0:
		t.err(UnexpectedNullCharacter)
	case c == EOF:
		t.emitDoctype()
		t.emitEOF()
	default:
		// ignore
	}
}

// CDATA sections pass their content through untouched; even U+0000 is
// emitted as-is here.

func (t *Tokenizer) inCDATASection(c rune) {
	switch {
	case c == ']':
		t.state = cdataSectionBracketState
	case c == EOF:
		t.err(EofInCdata)
		t.emitEOF()
	default:
		t.emitChar(c)
	}
}

func (t *Tokenizer) inCDATASectionBracket(c rune) {
	if c == ']' {
		t.state = cdataSectionEndState
		return
	}
	t.emitChar(']')
	t.reconsume(c, cdataSectionState)
}

func (t *Tokenizer) inCDATASectionEnd(c rune) {
	switch {
	case c == ']':
		t.emitChar(']')
	case c == '>':
		t.state = dataState
	default:
		t.emitChar(']')
		t.emitChar(']')
		t.reconsume(c, cdataSectionState)
	}
}
