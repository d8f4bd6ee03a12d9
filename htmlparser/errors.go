package htmlparser

import "fmt"

// ErrorKind identifies a parse error from the WHATWG tokenization rules.
// Parse errors are recoverable: each is reported once through the error
// sink at the point of observation and tokenization continues. The single
// exception is MalformedInput (bad UTF-8 from the byte source), after
// which the stream terminates with EOF.
type ErrorKind int

const (
	AbruptClosingOfEmptyComment ErrorKind = iota + 1
	AbruptDoctypePublicIdentifier
	AbruptDoctypeSystemIdentifier
	AbsenceOfDigitsInNumericCharacterReference
	CDataInHtmlContent
	CharacterReferenceOutsideUnicodeRange
	ControlCharacterReference
	DuplicateAttribute
	EndTagWithAttributes
	EndTagWithTrailingSolidus
	EofBeforeTagName
	EofInCdata
	EofInComment
	EofInDoctype
	EofInScriptHtmlCommentLikeText
	EofInTag
	IncorrectlyClosedComment
	IncorrectlyOpenedComment
	InvalidCharacterSequenceAfterDoctypeName
	InvalidFirstCharacterOfTagName
	MissingAttributeValue
	MissingDoctypeName
	MissingDoctypePublicIdentifier
	MissingDoctypeSystemIdentifier
	MissingEndTagName
	MissingQuoteBeforeDoctypePublicIdentifier
	MissingQuoteBeforeDoctypeSystemIdentifier
	MissingSemicolonAfterCharacterReference
	MissingWhitespaceAfterDoctypePublicKeyword
	MissingWhitespaceAfterDoctypeSystemKeyword
	MissingWhitespaceBeforeDoctypeName
	MissingWhitespaceBetweenAttributes
	MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers
	NestedComment
	NoncharacterCharacterReference
	NullCharacterReference
	SurrogateCharacterReference
	UnexpectedCharacterAfterDoctypeSystemIdentifier
	UnexpectedCharacterInAttributeName
	UnexpectedCharacterInUnquotedAttributeValue
	UnexpectedEqualsSignBeforeAttributeName
	UnexpectedNullCharacter
	UnexpectedQuestionMarkInsteadOfTagName
	UnexpectedSolidusInTag
	UnknownNamedCharacterReference

	// MalformedInput is not a WHATWG error code; it reports undecodable
	// UTF-8 from the byte source and always precedes the final EOF token.
	MalformedInput
)

// errorCodes holds the spec's dashed error code strings.
var errorCodes = map[ErrorKind]string{
	AbruptClosingOfEmptyComment:                "abrupt-closing-of-empty-comment",
	AbruptDoctypePublicIdentifier:              "abrupt-doctype-public-identifier",
	AbruptDoctypeSystemIdentifier:              "abrupt-doctype-system-identifier",
	AbsenceOfDigitsInNumericCharacterReference: "absence-of-digits-in-numeric-character-reference",
	CDataInHtmlContent:                         "cdata-in-html-content",
	CharacterReferenceOutsideUnicodeRange:      "character-reference-outside-unicode-range",
	ControlCharacterReference:                  "control-character-reference",
	DuplicateAttribute:                         "duplicate-attribute",
	EndTagWithAttributes:                       "end-tag-with-attributes",
	EndTagWithTrailingSolidus:                  "end-tag-with-trailing-solidus",
	EofBeforeTagName:                           "eof-before-tag-name",
	EofInCdata:                                 "eof-in-cdata",
	EofInComment:                               "eof-in-comment",
	EofInDoctype:                               "eof-in-doctype",
	EofInScriptHtmlCommentLikeText:             "eof-in-script-html-comment-like-text",
	EofInTag:                                   "eof-in-tag",
	IncorrectlyClosedComment:                   "incorrectly-closed-comment",
	IncorrectlyOpenedComment:                   "incorrectly-opened-comment",
	InvalidCharacterSequenceAfterDoctypeName:   "invalid-character-sequence-after-doctype-name",
	InvalidFirstCharacterOfTagName:             "invalid-first-character-of-tag-name",
	MissingAttributeValue:                      "missing-attribute-value",
	MissingDoctypeName:                         "missing-doctype-name",
	MissingDoctypePublicIdentifier:             "missing-doctype-public-identifier",
	MissingDoctypeSystemIdentifier:             "missing-doctype-system-identifier",
	MissingEndTagName:                          "missing-end-tag-name",
	MissingQuoteBeforeDoctypePublicIdentifier:  "missing-quote-before-doctype-public-identifier",
	MissingQuoteBeforeDoctypeSystemIdentifier:  "missing-quote-before-doctype-system-identifier",
	MissingSemicolonAfterCharacterReference:    "missing-semicolon-after-character-reference",
	MissingWhitespaceAfterDoctypePublicKeyword: "missing-whitespace-after-doctype-public-keyword",
	MissingWhitespaceAfterDoctypeSystemKeyword: "missing-whitespace-after-doctype-system-keyword",
	MissingWhitespaceBeforeDoctypeName:         "missing-whitespace-before-doctype-name",
	MissingWhitespaceBetweenAttributes:         "missing-whitespace-between-attributes",
	MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers: "missing-whitespace-between-doctype-public-and-system-identifiers",
	NestedComment:                               "nested-comment",
	NoncharacterCharacterReference:              "noncharacter-character-reference",
	NullCharacterReference:                      "null-character-reference",
	SurrogateCharacterReference:                 "surrogate-character-reference",
	UnexpectedCharacterAfterDoctypeSystemIdentifier: "unexpected-character-after-doctype-system-identifier",
	UnexpectedCharacterInAttributeName:              "unexpected-character-in-attribute-name",
	UnexpectedCharacterInUnquotedAttributeValue:     "unexpected-character-in-unquoted-attribute-value",
	UnexpectedEqualsSignBeforeAttributeName:         "unexpected-equals-sign-before-attribute-name",
	UnexpectedNullCharacter:                         "unexpected-null-character",
	UnexpectedQuestionMarkInsteadOfTagName:          "unexpected-question-mark-instead-of-tag-name",
	UnexpectedSolidusInTag:                          "unexpected-solidus-in-tag",
	UnknownNamedCharacterReference:                  "unknown-named-character-reference",
	MalformedInput:                                  "malformed-input",
}

func (k ErrorKind) String() string {
	if s, ok := errorCodes[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// KindFromCode resolves a dashed error code string back to its ErrorKind;
// ok is false for unknown codes.
func KindFromCode(code string) (ErrorKind, bool) {
	for k, s := range errorCodes {
		if s == code {
			return k, true
		}
	}
	return 0, false
}

// Error is a single parse error with the position it was observed at.
type Error struct {
	Pos  Pos
	Kind ErrorKind
}

func (e Error) Error() string {
	return fmt.Sprintf("%s:%d:%d %s", e.Pos.File, e.Pos.Line, e.Pos.Col, e.Kind)
}
