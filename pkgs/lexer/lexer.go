// Package lexer splits a raw command-line style argument string into
// flag-delimited Commands.
//
// The input grammar is a sequence of `-name [value...]` groups. Values
// containing spaces must be wrapped in braces; brace groups nest for
// multi-dimensional values and are consumed as single tokens:
//
//	-grade blackpoint {.015 .016 .109 .1}
//	-camera useMatrix true matrix {{.1 .2 .3 .4} {.5 .6 .7 .8}}
package lexer

import (
	"regexp"
	"strings"
)

// tokenPattern matches one argument token: a brace-enclosed run of digits,
// dots, whitespace and braces (a multi-component knob value, nesting included
// because the match is greedy), or else a maximal run of non-whitespace.
var tokenPattern = regexp.MustCompile(`\{[{}.0-9\s]+\}|\S+`)

// flagSeparator delimits command groups. Splitting happens on the two-byte
// space+dash sequence, so a space is prepended to catch the leading flag.
const flagSeparator = " -"

// Split converts a raw argument string into its Commands, in source order.
// Empty segments (doubled separators, leading/trailing whitespace) are
// dropped. The first token of each segment becomes the command name.
func Split(raw string) []Command {
	segments := strings.Split(" "+raw, flagSeparator)
	commands := make([]Command, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		tokens := tokenPattern.FindAllString(segment, -1)
		commands = append(commands, Command{Name: tokens[0], Args: tokens[1:]})
	}
	return commands
}
