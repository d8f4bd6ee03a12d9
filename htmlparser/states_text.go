package htmlparser

// Text-content states: Data, RCDATA, RAWTEXT, ScriptData, PLAINTEXT and
// their less-than-sign / end-tag / escape families. A U+0000 in Data is
// emitted as-is (the tree builder deals with it); in the raw text states
// it is replaced with U+FFFD. Both are unexpected-null-character errors.

func (t *Tokenizer) inData(c rune) {
	switch {
	case c == '&':
		t.startCharRef(dataState)
	case c == '<':
		t.state = tagOpenState
	case c == 0:
		t.err(UnexpectedNullCharacter)
		t.emitChar(c)
	case c == EOF:
		t.emitEOF()
	default:
		t.emitChar(c)
	}
}

func (t *Tokenizer) inRCDATA(c rune) {
	switch {
	case c == '&':
		t.startCharRef(rcdataState)
	case c == '<':
		t.state = rcdataLessThanSignState
	case c == 0:
		t.err(UnexpectedNullCharacter)
		t.emitChar(replacementChar)
	case c == EOF:
		t.emitEOF()
	default:
		t.emitChar(c)
	}
}

func (t *Tokenizer) inRAWTEXT(c rune) {
	switch {
	case c == '<':
		t.state = rawtextLessThanSignState
	case c == 0:
		t.err(UnexpectedNullCharacter)
		t.emitChar(replacementChar)
	case c == EOF:
		t.emitEOF()
	default:
		t.emitChar(c)
	}
}

func (t *Tokenizer) inScriptData(c rune) {
	switch {
	case c == '<':
		t.state = scriptDataLessThanSignState
	case c == 0:
		t.err(UnexpectedNullCharacter)
		t.emitChar(replacementChar)
	case c == EOF:
		t.emitEOF()
	default:
		t.emitChar(c)
	}
}

func (t *Tokenizer) inPlaintext(c rune) {
	switch {
	case c == 0:
		t.err(UnexpectedNullCharacter)
		t.emitChar(replacementChar)
	case c == EOF:
		t.emitEOF()
	default:
		t.emitChar(c)
	}
}

func (t *Tokenizer) inRCDATALessThanSign(c rune) {
	if c == '/' {
		t.tmpBuf = t.tmpBuf[:0]
		t.state = rcdataEndTagOpenState
		return
	}
	t.emitChar('<')
	t.reconsume(c, rcdataState)
}

func (t *Tokenizer) inRCDATAEndTagOpen(c rune) {
	if isASCIIAlpha(c) {
		t.newTag(true)
		t.reconsume(c, rcdataEndTagNameState)
		return
	}
	t.emitChar('<')
	t.emitChar('/')
	t.reconsume(c, rcdataState)
}

func (t *Tokenizer) inRCDATAEndTagName(c rune) {
	t.inRawEndTagName(c, rcdataState)
}

func (t *Tokenizer) inRAWTEXTLessThanSign(c rune) {
	if c == '/' {
		t.tmpBuf = t.tmpBuf[:0]
		t.state = rawtextEndTagOpenState
		return
	}
	t.emitChar('<')
	t.reconsume(c, rawtextState)
}

func (t *Tokenizer) inRAWTEXTEndTagOpen(c rune) {
	if isASCIIAlpha(c) {
		t.newTag(true)
		t.reconsume(c, rawtextEndTagNameState)
		return
	}
	t.emitChar('<')
	t.emitChar('/')
	t.reconsume(c, rawtextState)
}

func (t *Tokenizer) inRAWTEXTEndTagName(c rune) {
	t.inRawEndTagName(c, rawtextState)
}

// inRawEndTagName is the shared body of the RCDATA, RAWTEXT, ScriptData
// and ScriptDataEscaped end tag name states; fallback is the text state to
// resume when the end tag turns out not to be the appropriate one.
func (t *Tokenizer) inRawEndTagName(c rune, fallback state) {
	switch {
	case isWhitespace(c) && t.appropriateEndTag():
		t.state = beforeAttributeNameState
	case c == '/' && t.appropriateEndTag():
		t.state = selfClosingStartTagState
	case c == '>' && t.appropriateEndTag():
		t.state = dataState
		t.emitTag()
	case isASCIIAlpha(c):
		t.tagName = append(t.tagName, toASCIILower(c))
		t.tmpBuf = append(t.tmpBuf, c)
	default:
		t.emitChar('<')
		t.emitChar('/')
		for _, b := range t.tmpBuf {
			t.emitChar(b)
		}
		t.tmpBuf = t.tmpBuf[:0]
		t.reconsume(c, fallback)
	}
}

func (t *Tokenizer) inScriptDataLessThanSign(c rune) {
	switch {
	case c == '/':
		t.tmpBuf = t.tmpBuf[:0]
		t.state = scriptDataEndTagOpenState
	case c == '!':
		t.state = scriptDataEscapeStartState
		t.emitChar('<')
		t.emitChar('!')
	default:
		t.emitChar('<')
		t.reconsume(c, scriptDataState)
	}
}

func (t *Tokenizer) inScriptDataEndTagOpen(c rune) {
	if isASCIIAlpha(c) {
		t.newTag(true)
		t.reconsume(c, scriptDataEndTagNameState)
		return
	}
	t.emitChar('<')
	t.emitChar('/')
	t.reconsume(c, scriptDataState)
}

func (t *Tokenizer) inScriptDataEndTagName(c rune) {
	t.inRawEndTagName(c, scriptDataState)
}

func (t *Tokenizer) inScriptDataEscapeStart(c rune) {
	if c == '-' {
		t.state = scriptDataEscapeStartDashState
		t.emitChar('-')
		return
	}
	t.reconsume(c, scriptDataState)
}

func (t *Tokenizer) inScriptDataEscapeStartDash(c rune) {
	if c == '-' {
		t.state = scriptDataEscapedDashDashState
		t.emitChar('-')
		return
	}
	t.reconsume(c, scriptDataState)
}

func (t *Tokenizer) inScriptDataEscaped(c rune) {
	switch {
	case c == '-':
		t.state = scriptDataEscapedDashState
		t.emitChar('-')
	case c == '<':
		t.state = scriptDataEscapedLessThanSignState
	case c == 0:
		t.err(UnexpectedNullCharacter)
		t.emitChar(replacementChar)
	case c == EOF:
		t.err(EofInScriptHtmlCommentLikeText)
		t.emitEOF()
	default:
		t.emitChar(c)
	}
}

func (t *Tokenizer) inScriptDataEscapedDash(c rune) {
	switch {
	case c == '-':
		t.state = scriptDataEscapedDashDashState
		t.emitChar('-')
	case c == '<':
		t.state = scriptDataEscapedLessThanSignState
	case c == 0:
		t.err(UnexpectedNullCharacter)
		t.state = scriptDataEscapedState
		t.emitChar(replacementChar)
	case c == EOF:
		t.err(EofInScriptHtmlCommentLikeText)
		t.emitEOF()
	default:
		t.state = scriptDataEscapedState
		t.emitChar(c)
	}
}

func (t *Tokenizer) inScriptDataEscapedDashDash(c rune) {
	switch {
	case c == '-':
		t.emitChar('-')
	case c == '<':
		t.state = scriptDataEscapedLessThanSignState
	case c == '>':
		t.state = scriptDataState
		t.emitChar('>')
	case c == 0:
		t.err(UnexpectedNullCharacter)
		t.state = scriptDataEscapedState
		t.emitChar(replacementChar)
	case c == EOF:
		t.err(EofInScriptHtmlCommentLikeText)
		t.emitEOF()
	default:
		t.state = scriptDataEscapedState
		t.emitChar(c)
	}
}

func (t *Tokenizer) inScriptDataEscapedLessThanSign(c rune) {
	switch {
	case c == '/':
		t.tmpBuf = t.tmpBuf[:0]
		t.state = scriptDataEscapedEndTagOpenState
	case isASCIIAlpha(c):
		t.tmpBuf = t.tmpBuf[:0]
		t.emitChar('<')
		t.reconsume(c, scriptDataDoubleEscapeStartState)
	default:
		t.emitChar('<')
		t.reconsume(c, scriptDataEscapedState)
	}
}

func (t *Tokenizer) inScriptDataEscapedEndTagOpen(c rune) {
	if isASCIIAlpha(c) {
		t.newTag(true)
		t.reconsume(c, scriptDataEscapedEndTagNameState)
		return
	}
	t.emitChar('<')
	t.emitChar('/')
	t.reconsume(c, scriptDataEscapedState)
}

func (t *Tokenizer) inScriptDataEscapedEndTagName(c rune) {
	t.inRawEndTagName(c, scriptDataEscapedState)
}

func (t *Tokenizer) inScriptDataDoubleEscapeStart(c rune) {
	t.inScriptDataDoubleEscapeBoundary(c, scriptDataDoubleEscapedState, scriptDataEscapedState)
}

// inScriptDataDoubleEscapeBoundary accumulates a candidate tag word in the
// temporary buffer; when a word boundary arrives, the literal "script"
// decides between onMatch and onMiss. Shared by the double escape start
// and end states, whose target states are mirrored.
func (t *Tokenizer) inScriptDataDoubleEscapeBoundary(c rune, onMatch, onMiss state) {
	switch {
	case isWhitespace(c) || c == '/' || c == '>':
		if string(t.tmpBuf) == "script" {
			t.state = onMatch
		} else {
			t.state = onMiss
		}
		t.emitChar(c)
	case isASCIIAlpha(c):
		t.tmpBuf = append(t.tmpBuf, toASCIILower(c))
		t.emitChar(c)
	default:
		t.reconsume(c, onMiss)
	}
}

func (t *Tokenizer) inScriptDataDoubleEscaped(c rune) {
	switch {
	case c == '-':
		t.state = scriptDataDoubleEscapedDashState
		t.emitChar('-')
	case c == '<':
		t.state = scriptDataDoubleEscapedLessThanSignState
		t.emitChar('<')
	case c == 0:
		t.err(UnexpectedNullCharacter)
		t.emitChar(replacementChar)
	case c == EOF:
		t.err(EofInScriptHtmlCommentLikeText)
		t.emitEOF()
	default:
		t.emitChar(c)
	}
}

func (t *Tokenizer) inScriptDataDoubleEscapedDash(c rune) {
	switch {
	case c == '-':
		t.state = scriptDataDoubleEscapedDashDashState
		t.emitChar('-')
	case c == '<':
		t.state = scriptDataDoubleEscapedLessThanSignState
		t.emitChar('<')
	case c == 0:
		t.err(UnexpectedNullCharacter)
		t.state = scriptDataDoubleEscapedState
		t.emitChar(replacementChar)
	case c == EOF:
		t.err(EofInScriptHtmlCommentLikeText)
		t.emitEOF()
	default:
		t.state = scriptDataDoubleEscapedState
		t.emitChar(c)
	}
}

func (t *Tokenizer) inScriptDataDoubleEscapedDashDash(c rune) {
	switch {
	case c == '-':
		t.emitChar('-')
	case c == '<':
		t.state = scriptDataDoubleEscapedLessThanSignState
		t.emitChar('<')
	case c == '>':
		t.state = scriptDataState
		t.emitChar('>')
	case c == 0:
		t.err(UnexpectedNullCharacter)
		t.state = scriptDataDoubleEscapedState
		t.emitChar(replacementChar)
	case c == EOF:
		t.err(EofInScriptHtmlCommentLikeText)
		t.emitEOF()
	default:
		t.state = scriptDataDoubleEscapedState
		t.emitChar(c)
	}
}

func (t *Tokenizer) inScriptDataDoubleEscapedLessThanSign(c rune) {
	if c == '/' {
		t.tmpBuf = t.tmpBuf[:0]
		t.state = scriptDataDoubleEscapeEndState
		t.emitChar('/')
		return
	}
	t.reconsume(c, scriptDataDoubleEscapedState)
}

func (t *Tokenizer) inScriptDataDoubleEscapeEnd(c rune) {
	t.inScriptDataDoubleEscapeBoundary(c, scriptDataEscapedState, scriptDataDoubleEscapedState)
}
