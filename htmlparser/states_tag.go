package htmlparser

// Tag states: tag open/name, the attribute family, self-closing start
// tags, bogus comments and the markup declaration dispatch.

func (t *Tokenizer) inTagOpen(c rune) {
	switch {
	case c == '!':
		t.state = markupDeclarationOpenState
	case c == '/':
		t.state = endTagOpenState
	case isASCIIAlpha(c):
		t.newTag(false)
		t.reconsume(c, tagNameState)
	case c == '?':
		t.err(UnexpectedQuestionMarkInsteadOfTagName)
		t.commentData = t.commentData[:0]
		t.reconsume(c, bogusCommentState)
	case c == EOF:
		t.err(EofBeforeTagName)
		t.emitChar('<')
		t.emitEOF()
	default:
		t.err(InvalidFirstCharacterOfTagName)
		t.emitChar('<')
		t.reconsume(c, dataState)
	}
}

func (t *Tokenizer) inEndTagOpen(c rune) {
	switch {
	case isASCIIAlpha(c):
		t.newTag(true)
		t.reconsume(c, tagNameState)
	case c == '>':
		t.err(MissingEndTagName)
		t.state = dataState
	case c == EOF:
		t.err(EofBeforeTagName)
		t.emitChar('<')
		t.emitChar('/')
		t.emitEOF()
	default:
		t.err(InvalidFirstCharacterOfTagName)
		t.commentData = t.commentData[:0]
		t.reconsume(c, bogusCommentState)
	}
}

func (t *Tokenizer) inTagName(c rune) {
	switch {
	case isWhitespace(c):
		t.state = beforeAttributeNameState
	case c == '/':
		t.state = selfClosingStartTagState
	case c == '>':
		t.state = dataState
		t.emitTag()
	case isASCIIUpper(c):
		t.tagName = append(t.tagName, toASCIILower(c))
	case c == 0:
		t.err(UnexpectedNullCharacter)
		t.tagName = append(t.tagName, replacementChar)
	case c == EOF:
		t.err(EofInTag)
		t.emitEOF()
	default:
		t.tagName = append(t.tagName, c)
	}
}

func (t *Tokenizer) inBeforeAttributeName(c rune) {
	switch {
	case isWhitespace(c):
		// ignore
	case c == '/' || c == '>' || c == EOF:
		t.reconsume(c, afterAttributeNameState)
	case c == '=':
		t.err(UnexpectedEqualsSignBeforeAttributeName)
		t.newAttr()
		t.attrName = append(t.attrName, '=')
		t.state = attributeNameState
	default:
		t.newAttr()
		t.reconsume(c, attributeNameState)
	}
}

func (t *Tokenizer) inAttributeName(c rune) {
	switch {
	case isWhitespace(c) || c == '/' || c == '>' || c == EOF:
		t.completeAttrName()
		t.reconsume(c, afterAttributeNameState)
	case c == '=':
		t.completeAttrName()
		t.state = beforeAttributeValueState
	case isASCIIUpper(c):
		t.attrName = append(t.attrName, toASCIILower(c))
	case c == 0:
		t.err(UnexpectedNullCharacter)
		t.attrName = append(t.attrName, replacementChar)
	case c == '"' || c == '\'' || c == '<':
		t.err(UnexpectedCharacterInAttributeName)
		t.attrName = append(t.attrName, c)
	default:
		t.attrName = append(t.attrName, c)
	}
}

func (t *Tokenizer) inAfterAttributeName(c rune) {
	switch {
	case isWhitespace(c):
		// ignore
	case c == '/':
		t.state = selfClosingStartTagState
	case c == '=':
		t.state = beforeAttributeValueState
	case c == '>':
		t.state = dataState
		t.emitTag()
	case c == EOF:
		t.err(EofInTag)
		t.emitEOF()
	default:
		t.newAttr()
		t.reconsume(c, attributeNameState)
	}
}

func (t *Tokenizer) inBeforeAttributeValue(c rune) {
	switch {
	case isWhitespace(c):
		// ignore
	case c == '"':
		t.state = attributeValueDoubleQuotedState
	case c == '\'':
		t.state = attributeValueSingleQuotedState
	case c == '>':
		t.err(MissingAttributeValue)
		t.state = dataState
		t.emitTag()
	default:
		t.reconsume(c, attributeValueUnquotedState)
	}
}

func (t *Tokenizer) inAttributeValueDoubleQuoted(c rune) {
	switch {
	case c == '"':
		t.state = afterAttributeValueQuotedState
	case c == '&':
		t.startCharRef(attributeValueDoubleQuotedState)
	case c == 0:
		t.err(UnexpectedNullCharacter)
		t.attrValue = append(t.attrValue, replacementChar)
	case c == EOF:
		t.err(EofInTag)
		t.emitEOF()
	default:
		t.attrValue = append(t.attrValue, c)
	}
}

func (t *Tokenizer) inAttributeValueSingleQuoted(c rune) {
	switch {
	case c == '\'':
		t.state = afterAttributeValueQuotedState
	case c == '&':
		t.startCharRef(attributeValueSingleQuotedState)
	case c == 0:
		t.err(UnexpectedNullCharacter)
		t.attrValue = append(t.attrValue, replacementChar)
	case c == EOF:
		t.err(EofInTag)
		t.emitEOF()
	default:
		t.attrValue = append(t.attrValue, c)
	}
}

func (t *Tokenizer) inAttributeValueUnquoted(c rune) {
	switch {
	case isWhitespace(c):
		t.state = beforeAttributeNameState
	case c == '&':
		t.startCharRef(attributeValueUnquotedState)
	case c == '>':
		t.state = dataState
		t.emitTag()
	case c == 0:
		t.err(UnexpectedNullCharacter)
		t.attrValue = append(t.attrValue, replacementChar)
	case c == '"' || c == '\'' || c == '<' || c == '=' || c == '`':
		t.err(UnexpectedCharacterInUnquotedAttributeValue)
		t.attrValue = append(t.attrValue, c)
	case c == EOF:
		t.err(EofInTag)
		t.emitEOF()
	default:
		t.attrValue = append(t.attrValue, c)
	}
}

func (t *Tokenizer) inAfterAttributeValueQuoted(c rune) {
	switch {
	case isWhitespace(c):
		t.state = beforeAttributeNameState
	case c == '/':
		t.state = selfClosingStartTagState
	case c == '>':
		t.state = dataState
		t.emitTag()
	case c == EOF:
		t.err(EofInTag)
		t.emitEOF()
	default:
		t.err(MissingWhitespaceBetweenAttributes)
		t.reconsume(c, beforeAttributeNameState)
	}
}

func (t *Tokenizer) inSelfClosingStartTag(c rune) {
	switch {
	case c == '>':
		t.tagSelfClosing = true
		t.state = dataState
		t.emitTag()
	case c == EOF:
		t.err(EofInTag)
		t.emitEOF()
	default:
		t.err(UnexpectedSolidusInTag)
		t.reconsume(c, beforeAttributeNameState)
	}
}

func (t *Tokenizer) inBogusComment(c rune) {
	switch {
	case c == '>':
		t.state = dataState
		t.emitComment()
	case c == EOF:
		t.emitComment()
		t.emitEOF()
	case c == 0:
		t.err(UnexpectedNullCharacter)
		t.commentData = append(t.commentData, replacementChar)
	default:
		t.commentData = append(t.commentData, c)
	}
}

// inMarkupDeclarationOpen decides between comment, DOCTYPE and CDATA with
// bounded lookahead. c is the first code point after "<!"; up to six more
// are peeked to recognize the keywords without consuming past them.
func (t *Tokenizer) inMarkupDeclarationOpen(c rune) {
	switch {
	case c == '-' && t.r.Peek() == '-':
		t.r.Read()
		t.commentData = t.commentData[:0]
		t.state = commentStartState
		return
	case c == 'd' || c == 'D':
		var buf [6]rune
		if n := t.r.PeekBuf(buf[:]); n == 6 && asciiEqualFold(buf[:], "OCTYPE") {
			t.r.ReadBuf(buf[:])
			t.state = doctypeState
			return
		}
	case c == '[':
		var buf [6]rune
		if n := t.r.PeekBuf(buf[:]); n == 6 && string(buf[:]) == "CDATA[" {
			t.r.ReadBuf(buf[:])
			if t.AllowCDATA != nil && t.AllowCDATA() {
				t.state = cdataSectionState
			} else {
				t.err(CDataInHtmlContent)
				t.commentData = append(t.commentData[:0], []rune("[CDATA[")...)
				t.state = bogusCommentState
			}
			return
		}
	}
	t.err(IncorrectlyOpenedComment)
	t.commentData = t.commentData[:0]
	t.reconsume(c, bogusCommentState)
}

// asciiEqualFold reports whether the runes match the ASCII keyword
// case-insensitively.
func asciiEqualFold(got []rune, want string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, c := range got {
		if toASCIILower(c) != toASCIILower(rune(want[i])) {
			return false
		}
	}
	return true
}
