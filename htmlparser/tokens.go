package htmlparser

import (
	"fmt"
	"strings"

	"golang.org/x/net/html/atom"
)

// TokenType represents the type of a token produced by the Tokenizer.
type TokenType int

const (
	// CharacterToken carries a single code point of text
	CharacterToken TokenType = iota + 1
	// StartTagToken is an opening tag, possibly self-closing
	StartTagToken
	// EndTagToken is a closing tag; it never carries attributes
	EndTagToken
	// CommentToken carries comment data
	CommentToken
	// DoctypeToken is a DOCTYPE declaration
	DoctypeToken
	// EOFToken terminates the stream; emitted exactly once
	EOFToken
)

func (tt TokenType) String() string {
	switch tt {
	case CharacterToken:
		return "Character"
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case CommentToken:
		return "Comment"
	case DoctypeToken:
		return "Doctype"
	case EOFToken:
		return "EOF"
	default:
		return fmt.Sprintf("TokenType(%d)", int(tt))
	}
}

// Attribute is a name/value pair on a start tag. Names are lowercased
// during tokenization and unique within a tag (the first occurrence wins).
type Attribute struct {
	Name  string
	Value string
}

// Doctype holds the pieces of a DOCTYPE declaration. The Has* flags
// distinguish an absent identifier from a present-but-empty one.
type Doctype struct {
	Name        string
	HasName     bool
	PublicID    string
	HasPublicID bool
	SystemID    string
	HasSystemID bool
	ForceQuirks bool
}

// Token is one item of the tokenizer's output stream.
//
// Which fields are meaningful depends on Type: Char for CharacterToken;
// Name, DataAtom, Attr and SelfClosing for tag tokens; Data for
// CommentToken; Doctype for DoctypeToken. DataAtom is the x/net/html/atom
// value for known tag names (zero for unknown names), so consumers can
// compare tags without string comparisons.
type Token struct {
	Type        TokenType
	Char        rune
	Name        string
	DataAtom    atom.Atom
	Attr        []Attribute
	SelfClosing bool
	Data        string
	Doctype     *Doctype
}

func (t Token) String() string {
	switch t.Type {
	case CharacterToken:
		return fmt.Sprintf("Character(%q)", t.Char)
	case StartTagToken, EndTagToken:
		var b strings.Builder
		b.WriteByte('<')
		if t.Type == EndTagToken {
			b.WriteByte('/')
		}
		b.WriteString(t.Name)
		for _, a := range t.Attr {
			fmt.Fprintf(&b, " %s=%q", a.Name, a.Value)
		}
		if t.SelfClosing {
			b.WriteByte('/')
		}
		b.WriteByte('>')
		return b.String()
	case CommentToken:
		return fmt.Sprintf("<!--%s-->", t.Data)
	case DoctypeToken:
		var b strings.Builder
		b.WriteString("<!DOCTYPE")
		if t.Doctype != nil {
			if t.Doctype.HasName {
				b.WriteByte(' ')
				b.WriteString(t.Doctype.Name)
			}
			if t.Doctype.HasPublicID {
				fmt.Fprintf(&b, " PUBLIC %q", t.Doctype.PublicID)
			}
			if t.Doctype.HasSystemID {
				fmt.Fprintf(&b, " SYSTEM %q", t.Doctype.SystemID)
			}
		}
		b.WriteByte('>')
		return b.String()
	case EOFToken:
		return "EOF"
	default:
		return fmt.Sprintf("Token(%d)", int(t.Type))
	}
}
