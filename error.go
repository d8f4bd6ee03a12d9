package htmlcode

import (
	"fmt"
	"strings"

	"github.com/vippsas/htmlcode/htmlparser"
)

// ParseErrors aggregates the parse errors observed while tokenizing one
// input, in discovery order.
type ParseErrors struct {
	Errors []htmlparser.Error
}

func (e ParseErrors) Error() string {
	var msg strings.Builder
	msg.WriteString("html parse errors:\n\n")
	for _, pe := range e.Errors {
		msg.WriteString(fmt.Sprintf("%s:%d:%d: %s\n", pe.Pos.File, pe.Pos.Line, pe.Pos.Col, pe.Kind))
	}
	return msg.String()
}
