// Package htmlcode tokenizes HTML per the WHATWG standard. The heavy
// lifting lives in the htmlparser package; this package holds the
// high-level helpers and input preprocessing.
package htmlcode

import (
	"github.com/vippsas/htmlcode/htmlparser"
)

// Tokenize runs the tokenizer over src to completion, returning every
// token including the terminating EOF token, plus the parse errors in
// discovery order. A leading byte order mark is stripped first.
func Tokenize(file htmlparser.FileRef, src []byte) ([]htmlparser.Token, []htmlparser.Error) {
	src = StripBOM(src)
	t := htmlparser.New(file, src)
	var errs []htmlparser.Error
	t.OnError = func(e htmlparser.Error) {
		errs = append(errs, e)
	}
	var tokens []htmlparser.Token
	for tok := range t.All() {
		tokens = append(tokens, tok)
	}
	return tokens, errs
}

// TokenizeString is Tokenize over a string input.
func TokenizeString(file htmlparser.FileRef, input string) ([]htmlparser.Token, []htmlparser.Error) {
	return Tokenize(file, []byte(input))
}
