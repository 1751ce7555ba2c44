package lexer

import (
	"fmt"
	"strings"
)

// Command is one flag-delimited segment of the input: a command name plus its
// argument tokens in source order. A Command with no argument tokens is valid
// (a bare node class, or a keyword whose arity check happens downstream).
type Command struct {
	Name string
	Args []string
}

// ArgString returns the argument tokens joined with single spaces, the form
// node-creation statements embed verbatim.
func (c Command) ArgString() string {
	return strings.Join(c.Args, " ")
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return fmt.Sprintf("-%s", c.Name)
	}
	return fmt.Sprintf("-%s %s", c.Name, c.ArgString())
}
