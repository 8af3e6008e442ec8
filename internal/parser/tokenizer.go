// Package parser splits raw console input into a target name and discrete
// argument tokens.
package parser

import "strings"

// SplitCommand separates a raw command line into the target name and the
// remainder after the first space. rawArgs is empty when no space exists.
func SplitCommand(raw string) (target, rawArgs string) {
	if i := strings.IndexByte(raw, ' '); i >= 0 {
		return raw[:i], raw[i+1:]
	}
	return raw, ""
}

// SplitArguments scans rawArgs left to right and emits argument tokens.
// While verbatim mode is on, spaces lose their separator role, so a grouped
// literal like "(1, 2, 3)" stays one token.
//
//   - '(' always turns verbatim mode on, even when already on.
//   - ')' always turns it off.
//   - '"' toggles it: treated like '(' when off, like ')' when on.
//
// Delimiter characters are consumed and never appear in token text. Note
// the asymmetry between '"' and '(': in `(a"b)` the quote closes the
// verbatim mode the parenthesis opened.
func SplitArguments(rawArgs string) []string {
	var tokens []string
	var current strings.Builder
	verbatim := false

	for _, r := range rawArgs {
		switch {
		case r == '(' || (r == '"' && !verbatim):
			verbatim = true
		case r == ')' || (r == '"' && verbatim):
			verbatim = false
		case r == ' ' && !verbatim:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}
