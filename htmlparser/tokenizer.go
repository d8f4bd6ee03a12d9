package htmlparser

import (
	"iter"

	"golang.org/x/net/html/atom"

	"github.com/vippsas/htmlcode/htmlparser/entity"
)

// state enumerates the tokenization states of WHATWG §13.2.5.
type state int

const (
	dataState state = iota
	rcdataState
	rawtextState
	scriptDataState
	plaintextState
	tagOpenState
	endTagOpenState
	tagNameState
	rcdataLessThanSignState
	rcdataEndTagOpenState
	rcdataEndTagNameState
	rawtextLessThanSignState
	rawtextEndTagOpenState
	rawtextEndTagNameState
	scriptDataLessThanSignState
	scriptDataEndTagOpenState
	scriptDataEndTagNameState
	scriptDataEscapeStartState
	scriptDataEscapeStartDashState
	scriptDataEscapedState
	scriptDataEscapedDashState
	scriptDataEscapedDashDashState
	scriptDataEscapedLessThanSignState
	scriptDataEscapedEndTagOpenState
	scriptDataEscapedEndTagNameState
	scriptDataDoubleEscapeStartState
	scriptDataDoubleEscapedState
	scriptDataDoubleEscapedDashState
	scriptDataDoubleEscapedDashDashState
	scriptDataDoubleEscapedLessThanSignState
	scriptDataDoubleEscapeEndState
	beforeAttributeNameState
	attributeNameState
	afterAttributeNameState
	beforeAttributeValueState
	attributeValueDoubleQuotedState
	attributeValueSingleQuotedState
	attributeValueUnquotedState
	afterAttributeValueQuotedState
	selfClosingStartTagState
	bogusCommentState
	markupDeclarationOpenState
	commentStartState
	commentStartDashState
	commentState
	commentLessThanSignState
	commentLessThanSignBangState
	commentLessThanSignBangDashState
	commentLessThanSignBangDashDashState
	commentEndDashState
	commentEndState
	commentEndBangState
	doctypeState
	beforeDoctypeNameState
	doctypeNameState
	afterDoctypeNameState
	afterDoctypePublicKeywordState
	beforeDoctypePublicIdentifierState
	doctypePublicIdentifierDoubleQuotedState
	doctypePublicIdentifierSingleQuotedState
	afterDoctypePublicIdentifierState
	betweenDoctypePublicAndSystemIdentifiersState
	afterDoctypeSystemKeywordState
	beforeDoctypeSystemIdentifierState
	doctypeSystemIdentifierDoubleQuotedState
	doctypeSystemIdentifierSingleQuotedState
	afterDoctypeSystemIdentifierState
	bogusDoctypeState
	cdataSectionState
	cdataSectionBracketState
	cdataSectionEndState
	characterReferenceState
	namedCharacterReferenceState
	ambiguousAmpersandState
	numericCharacterReferenceState
	hexadecimalCharacterReferenceStartState
	decimalCharacterReferenceStartState
	hexadecimalCharacterReferenceState
	decimalCharacterReferenceState
	numericCharacterReferenceEndState
)

// EntityTable is the named character reference dictionary consumed by the
// tokenizer. LongestPrefix finds the longest prefix of s (the text after
// '&') that is a known reference name, returning its byte length and the
// replacement text. MaxLen bounds how far the tokenizer looks ahead.
type EntityTable interface {
	MaxLen() int
	LongestPrefix(s string) (n int, replacement string, ok bool)
}

// Tokenizer is the WHATWG HTML tokenization state machine. It pulls code
// points from its Reader one at a time and produces tokens on demand; see
// Next and All. Not safe for concurrent use; independent instances are
// fully independent.
type Tokenizer struct {
	// OnError receives every parse error as it is observed. It must not
	// panic back into the machine. Nil discards errors.
	OnError func(Error)

	// AllowCDATA reports whether the adjusted current node is outside the
	// HTML namespace, gating entry into CDATA sections. Nil means HTML
	// content, where <![CDATA[ is a parse error and becomes a bogus
	// comment.
	AllowCDATA func() bool

	// Entities is the named character reference table. Defaults to the
	// entity package's built-in table.
	Entities EntityTable

	r *Reader

	state       state
	returnState state

	pending []Token
	phead   int
	eofDone bool

	// partial tag
	tagName        []rune
	tagIsEnd       bool
	tagSelfClosing bool
	attrs          []Attribute

	// partial attribute; attrDropped marks a duplicate name, in which case
	// the value is still parsed but the attribute is discarded
	haveAttr    bool
	attrName    []rune
	attrValue   []rune
	attrDropped bool

	commentData []rune
	doctype     Doctype

	tmpBuf      []rune
	charRefCode int

	lastStartTag string
}

// New returns a Tokenizer over src, in the data state.
func New(file FileRef, src []byte) *Tokenizer {
	return &Tokenizer{
		r:        NewReader(file, src),
		state:    dataState,
		Entities: entity.Default(),
	}
}

// Pos returns the position of the next code point to be consumed.
func (t *Tokenizer) Pos() Pos {
	return t.r.Pos()
}

// Next returns the next token. The final token is EOFToken; calling Next
// again after that returns EOFToken without consuming input.
func (t *Tokenizer) Next() Token {
	for {
		if t.phead < len(t.pending) {
			tok := t.pending[t.phead]
			t.phead++
			if t.phead == len(t.pending) {
				t.pending = t.pending[:0]
				t.phead = 0
			}
			return tok
		}
		if t.eofDone {
			return Token{Type: EOFToken}
		}
		c := t.r.Read()
		if c == Invalid {
			t.err(MalformedInput)
			t.emitEOF()
			continue
		}
		t.step(c)
	}
}

// All returns the token stream as a lazy sequence terminated by the EOF
// token.
func (t *Tokenizer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok := t.Next()
			if !yield(tok) || tok.Type == EOFToken {
				return
			}
		}
	}
}

// step dispatches one code point to the current state's handler. c is EOF
// at end of input.
func (t *Tokenizer) step(c rune) {
	switch t.state {
	case dataState:
		t.inData(c)
	case rcdataState:
		t.inRCDATA(c)
	case rawtextState:
		t.inRAWTEXT(c)
	case scriptDataState:
		t.inScriptData(c)
	case plaintextState:
		t.inPlaintext(c)
	case tagOpenState:
		t.inTagOpen(c)
	case endTagOpenState:
		t.inEndTagOpen(c)
	case tagNameState:
		t.inTagName(c)
	case rcdataLessThanSignState:
		t.inRCDATALessThanSign(c)
	case rcdataEndTagOpenState:
		t.inRCDATAEndTagOpen(c)
	case rcdataEndTagNameState:
		t.inRCDATAEndTagName(c)
	case rawtextLessThanSignState:
		t.inRAWTEXTLessThanSign(c)
	case rawtextEndTagOpenState:
		t.inRAWTEXTEndTagOpen(c)
	case rawtextEndTagNameState:
		t.inRAWTEXTEndTagName(c)
	case scriptDataLessThanSignState:
		t.inScriptDataLessThanSign(c)
	case scriptDataEndTagOpenState:
		t.inScriptDataEndTagOpen(c)
	case scriptDataEndTagNameState:
		t.inScriptDataEndTagName(c)
	case scriptDataEscapeStartState:
		t.inScriptDataEscapeStart(c)
	case scriptDataEscapeStartDashState:
		t.inScriptDataEscapeStartDash(c)
	case scriptDataEscapedState:
		t.inScriptDataEscaped(c)
	case scriptDataEscapedDashState:
		t.inScriptDataEscapedDash(c)
	case scriptDataEscapedDashDashState:
		t.inScriptDataEscapedDashDash(c)
	case scriptDataEscapedLessThanSignState:
		t.inScriptDataEscapedLessThanSign(c)
	case scriptDataEscapedEndTagOpenState:
		t.inScriptDataEscapedEndTagOpen(c)
	case scriptDataEscapedEndTagNameState:
		t.inScriptDataEscapedEndTagName(c)
	case scriptDataDoubleEscapeStartState:
		t.inScriptDataDoubleEscapeStart(c)
	case scriptDataDoubleEscapedState:
		t.inScriptDataDoubleEscaped(c)
	case scriptDataDoubleEscapedDashState:
		t.inScriptDataDoubleEscapedDash(c)
	case scriptDataDoubleEscapedDashDashState:
		t.inScriptDataDoubleEscapedDashDash(c)
	case scriptDataDoubleEscapedLessThanSignState:
		t.inScriptDataDoubleEscapedLessThanSign(c)
	case scriptDataDoubleEscapeEndState:
		t.inScriptDataDoubleEscapeEnd(c)
	case beforeAttributeNameState:
		t.inBeforeAttributeName(c)
	case attributeNameState:
		t.inAttributeName(c)
	case afterAttributeNameState:
		t.inAfterAttributeName(c)
	case beforeAttributeValueState:
		t.inBeforeAttributeValue(c)
	case attributeValueDoubleQuotedState:
		t.inAttributeValueDoubleQuoted(c)
	case attributeValueSingleQuotedState:
		t.inAttributeValueSingleQuoted(c)
	case attributeValueUnquotedState:
		t.inAttributeValueUnquoted(c)
	case afterAttributeValueQuotedState:
		t.inAfterAttributeValueQuoted(c)
	case selfClosingStartTagState:
		t.inSelfClosingStartTag(c)
	case bogusCommentState:
		t.inBogusComment(c)
	case markupDeclarationOpenState:
		t.inMarkupDeclarationOpen(c)
	case commentStartState:
		t.inCommentStart(c)
	case commentStartDashState:
		t.inCommentStartDash(c)
	case commentState:
		t.inComment(c)
	case commentLessThanSignState:
		t.inCommentLessThanSign(c)
	case commentLessThanSignBangState:
		t.inCommentLessThanSignBang(c)
	case commentLessThanSignBangDashState:
		t.inCommentLessThanSignBangDash(c)
	case commentLessThanSignBangDashDashState:
		t.inCommentLessThanSignBangDashDash(c)
	case commentEndDashState:
		t.inCommentEndDash(c)
	case commentEndState:
		t.inCommentEnd(c)
	case commentEndBangState:
		t.inCommentEndBang(c)
	case doctypeState:
		t.inDoctype(c)
	case beforeDoctypeNameState:
		t.inBeforeDoctypeName(c)
	case doctypeNameState:
		t.inDoctypeName(c)
	case afterDoctypeNameState:
		t.inAfterDoctypeName(c)
	case afterDoctypePublicKeywordState:
		t.inAfterDoctypePublicKeyword(c)
	case beforeDoctypePublicIdentifierState:
		t.inBeforeDoctypePublicIdentifier(c)
	case doctypePublicIdentifierDoubleQuotedState:
		t.inDoctypePublicIdentifierQuoted(c, '"')
	case doctypePublicIdentifierSingleQuotedState:
		t.inDoctypePublicIdentifierQuoted(c, '\'')
	case afterDoctypePublicIdentifierState:
		t.inAfterDoctypePublicIdentifier(c)
	case betweenDoctypePublicAndSystemIdentifiersState:
		t.inBetweenDoctypePublicAndSystemIdentifiers(c)
	case afterDoctypeSystemKeywordState:
		t.inAfterDoctypeSystemKeyword(c)
	case beforeDoctypeSystemIdentifierState:
		t.inBeforeDoctypeSystemIdentifier(c)
	case doctypeSystemIdentifierDoubleQuotedState:
		t.inDoctypeSystemIdentifierQuoted(c, '"')
	case doctypeSystemIdentifierSingleQuotedState:
		t.inDoctypeSystemIdentifierQuoted(c, '\'')
	case afterDoctypeSystemIdentifierState:
		t.inAfterDoctypeSystemIdentifier(c)
	case bogusDoctypeState:
		t.inBogusDoctype(c)
	case cdataSectionState:
		t.inCDATASection(c)
	case cdataSectionBracketState:
		t.inCDATASectionBracket(c)
	case cdataSectionEndState:
		t.inCDATASectionEnd(c)
	case characterReferenceState:
		t.inCharacterReference(c)
	case namedCharacterReferenceState:
		t.inNamedCharacterReference(c)
	case ambiguousAmpersandState:
		t.inAmbiguousAmpersand(c)
	case numericCharacterReferenceState:
		t.inNumericCharacterReference(c)
	case hexadecimalCharacterReferenceStartState:
		t.inHexadecimalCharacterReferenceStart(c)
	case decimalCharacterReferenceStartState:
		t.inDecimalCharacterReferenceStart(c)
	case hexadecimalCharacterReferenceState:
		t.inHexadecimalCharacterReference(c)
	case decimalCharacterReferenceState:
		t.inDecimalCharacterReference(c)
	case numericCharacterReferenceEndState:
		t.inNumericCharacterReferenceEnd(c)
	default:
		panic("htmlparser: no handler for state")
	}
}

// reconsume pushes c back onto the reader and re-dispatches it in s. EOF
// never advanced the reader, so there is nothing to push back for it.
func (t *Tokenizer) reconsume(c rune, s state) {
	if c != EOF {
		t.r.Backtrack()
	}
	t.state = s
}

func (t *Tokenizer) err(kind ErrorKind) {
	if t.OnError != nil {
		t.OnError(Error{Pos: t.r.Pos(), Kind: kind})
	}
}

func (t *Tokenizer) emit(tok Token) {
	t.pending = append(t.pending, tok)
}

func (t *Tokenizer) emitChar(c rune) {
	t.emit(Token{Type: CharacterToken, Char: c})
}

func (t *Tokenizer) emitEOF() {
	t.emit(Token{Type: EOFToken})
	t.eofDone = true
}

// newTag starts a fresh tag builder.
func (t *Tokenizer) newTag(endTag bool) {
	t.tagName = t.tagName[:0]
	t.tagIsEnd = endTag
	t.tagSelfClosing = false
	t.attrs = nil
	t.haveAttr = false
	t.attrName = t.attrName[:0]
	t.attrValue = t.attrValue[:0]
	t.attrDropped = false
}

// newAttr attaches any finished attribute and starts a new one.
func (t *Tokenizer) newAttr() {
	t.finishAttr()
	t.haveAttr = true
	t.attrName = t.attrName[:0]
	t.attrValue = t.attrValue[:0]
	t.attrDropped = false
}

// completeAttrName runs the duplicate check the moment the attribute's
// name is fully accumulated. The first attribute with a given name wins;
// a duplicate is reported once and its builder is marked for discard.
func (t *Tokenizer) completeAttrName() {
	name := string(t.attrName)
	for _, a := range t.attrs {
		if a.Name == name {
			t.err(DuplicateAttribute)
			t.attrDropped = true
			return
		}
	}
}

func (t *Tokenizer) finishAttr() {
	if !t.haveAttr {
		return
	}
	if !t.attrDropped {
		t.attrs = append(t.attrs, Attribute{Name: string(t.attrName), Value: string(t.attrValue)})
	}
	t.haveAttr = false
}

// emitTag finishes and emits the current tag token. End tags shed
// attributes and the self-closing flag with the corresponding parse
// errors; emitted start tags become the reference for the appropriate
// end tag check.
func (t *Tokenizer) emitTag() {
	t.finishAttr()
	name := string(t.tagName)
	tok := Token{
		Name:     name,
		DataAtom: atom.Lookup([]byte(name)),
	}
	if t.tagIsEnd {
		tok.Type = EndTagToken
		if len(t.attrs) > 0 {
			t.err(EndTagWithAttributes)
		}
		if t.tagSelfClosing {
			t.err(EndTagWithTrailingSolidus)
		}
	} else {
		tok.Type = StartTagToken
		tok.Attr = t.attrs
		tok.SelfClosing = t.tagSelfClosing
		t.lastStartTag = name
		if !t.tagSelfClosing {
			if s, ok := textElements[name]; ok {
				t.state = s
			}
		}
	}
	t.attrs = nil
	t.emit(tok)
}

// textElements maps elements whose content is consumed as text to the
// state entered after their start tag. noscript is omitted: its treatment
// depends on the scripting flag, which is a tree-construction concern.
var textElements = map[string]state{
	"title":     rcdataState,
	"textarea":  rcdataState,
	"style":     rawtextState,
	"xmp":       rawtextState,
	"iframe":    rawtextState,
	"noembed":   rawtextState,
	"noframes":  rawtextState,
	"script":    scriptDataState,
	"plaintext": plaintextState,
}

// appropriateEndTag reports whether the current end tag builder matches
// the most recently emitted start tag.
func (t *Tokenizer) appropriateEndTag() bool {
	return t.lastStartTag != "" && string(t.tagName) == t.lastStartTag
}

func (t *Tokenizer) emitComment() {
	t.emit(Token{Type: CommentToken, Data: string(t.commentData)})
}

func (t *Tokenizer) emitDoctype() {
	d := t.doctype
	t.emit(Token{Type: DoctypeToken, Doctype: &d})
}

// inAttrValueReturnState reports whether the saved return state is one of
// the attribute value states, which changes where character references
// are flushed to.
func (t *Tokenizer) inAttrValueReturnState() bool {
	switch t.returnState {
	case attributeValueDoubleQuotedState, attributeValueSingleQuotedState, attributeValueUnquotedState:
		return true
	}
	return false
}

// flushTempBuffer delivers the temporary buffer's code points to the
// current attribute value or, outside attributes, as character tokens.
func (t *Tokenizer) flushTempBuffer() {
	if t.inAttrValueReturnState() {
		t.attrValue = append(t.attrValue, t.tmpBuf...)
	} else {
		for _, c := range t.tmpBuf {
			t.emitChar(c)
		}
	}
	t.tmpBuf = t.tmpBuf[:0]
}

// replacementChar substitutes U+0000 in the contexts where the spec calls
// for replacement rather than pass-through.
const replacementChar = '�'

func isASCIIUpper(c rune) bool { return 'A' <= c && c <= 'Z' }
func isASCIILower(c rune) bool { return 'a' <= c && c <= 'z' }
func isASCIIAlpha(c rune) bool { return isASCIIUpper(c) || isASCIILower(c) }
func isASCIIDigit(c rune) bool { return '0' <= c && c <= '9' }

func isASCIIAlnum(c rune) bool { return isASCIIAlpha(c) || isASCIIDigit(c) }

func isASCIIHexDigit(c rune) bool {
	return isASCIIDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// isWhitespace matches the tokenizer's whitespace set: tab, LF, FF, space.
// CR never reaches the state machine; the reader folds it into LF.
func isWhitespace(c rune) bool {
	return c == '\t' || c == '\n' || c == '\f' || c == ' '
}

func toASCIILower(c rune) rune {
	if isASCIIUpper(c) {
		return c + 0x20
	}
	return c
}
