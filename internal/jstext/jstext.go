// Package jstext holds the single string/comment-aware text scanner shared
// by the reorganizer, the verifier and the theme migrator. It deliberately
// stops short of real parsing: no tokens, no AST, just enough state to know
// whether a character sits inside a string, comment or regex literal.
package jstext

import (
	"fmt"
	"regexp"
	"strings"
)

// Options selects which literal forms the scanner recognizes.
type Options struct {
	LineComments bool // //
	Backticks    bool // template literals
	RegexLiteral bool // /re/ after an operator or opening bracket
}

// JS covers .plugin.js sources.
var JS = Options{LineComments: true, Backticks: true, RegexLiteral: true}

// CSS covers .theme.css sources: block comments and quoted strings only.
var CSS = Options{}

// Strip returns text with the interior of strings, comments and (optionally)
// regex literals blanked out with spaces. Newlines are preserved so line
// numbers in the result align with the input.
func Strip(text string, o Options) string {
	var out strings.Builder
	out.Grow(len(text))

	const (
		code = iota
		lineComment
		blockComment
		inString
	)
	state := code
	var quote byte

	// Last significant character seen in code state, for the regex literal
	// heuristic: a '/' starts a regex only after an operator or opening
	// bracket, never after an identifier, number or closing bracket.
	var lastSig byte

	blank := func(b byte) {
		if b == '\n' {
			out.WriteByte('\n')
		} else {
			out.WriteByte(' ')
		}
	}

	i := 0
	for i < len(text) {
		b := text[i]
		switch state {
		case lineComment:
			if b == '\n' {
				state = code
				out.WriteByte('\n')
			} else {
				blank(b)
			}
			i++

		case blockComment:
			if b == '*' && i+1 < len(text) && text[i+1] == '/' {
				state = code
				blank('*')
				blank('/')
				i += 2
			} else {
				blank(b)
				i++
			}

		case inString:
			if b == '\\' && i+1 < len(text) {
				blank(b)
				blank(text[i+1])
				i += 2
			} else if b == quote {
				state = code
				// A '/' right after a string closes is division.
				lastSig = quote
				blank(b)
				i++
			} else {
				blank(b)
				i++
			}

		default: // code
			switch {
			case b == '/' && i+1 < len(text) && text[i+1] == '*':
				state = blockComment
				blank('/')
				blank('*')
				i += 2
			case o.LineComments && b == '/' && i+1 < len(text) && text[i+1] == '/':
				state = lineComment
				blank('/')
				blank('/')
				i += 2
			case b == '\'' || b == '"':
				state = inString
				quote = b
				blank(b)
				i++
			case o.Backticks && b == '`':
				state = inString
				quote = '`'
				blank(b)
				i++
			case o.RegexLiteral && b == '/' && regexCanStart(lastSig):
				j := scanRegexLiteral(text, i)
				if j > i {
					for ; i < j; i++ {
						blank(text[i])
					}
					lastSig = '/'
				} else {
					out.WriteByte(b)
					lastSig = b
					i++
				}
			default:
				out.WriteByte(b)
				if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
					lastSig = b
				}
				i++
			}
		}
	}
	return out.String()
}

// regexCanStart reports whether a '/' following lastSig can open a regex
// literal rather than being a division operator.
func regexCanStart(lastSig byte) bool {
	switch lastSig {
	case 0, '(', '[', '{', ',', ';', '=', ':', '!', '&', '|', '?', '+', '-', '*', '%', '<', '>', '~', '^':
		return true
	}
	return false
}

// scanRegexLiteral returns the index just past a regex literal starting at
// text[start], or start if the slash does not close on the same line.
func scanRegexLiteral(text string, start int) int {
	inClass := false
	for i := start + 1; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case '\n':
			return start
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				return i + 1
			}
		}
	}
	return start
}

// Balance holds brace and paren deltas for a slice of text.
type Balance struct {
	Braces int
	Parens int
}

// Balanced reports whether both counts are zero.
func (b Balance) Balanced() bool {
	return b.Braces == 0 && b.Parens == 0
}

// CountBalance counts {} and () outside strings and comments.
func CountBalance(text string, o Options) Balance {
	stripped := Strip(text, o)
	var b Balance
	for i := 0; i < len(stripped); i++ {
		switch stripped[i] {
		case '{':
			b.Braces++
		case '}':
			b.Braces--
		case '(':
			b.Parens++
		case ')':
			b.Parens--
		}
	}
	return b
}

// Def is a method or function definition found in a source buffer.
type Def struct {
	Name string
	Line int // 1-based
	Kind string
}

var defPatterns = []struct {
	re   *regexp.Regexp
	kind string
}{
	// methodName(args) {
	{regexp.MustCompile(`^\s*([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\([^)]*\)\s*\{`), "method"},
	// get PROP() {
	{regexp.MustCompile(`^\s*get\s+([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\(\)\s*\{`), "getter"},
	// const f = (args) =>
	{regexp.MustCompile(`const\s+([a-zA-Z_$][a-zA-Z0-9_$]*)\s*=\s*\([^)]*\)\s*=>`), "arrow"},
	// function f(args)
	{regexp.MustCompile(`function\s+([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\([^)]*\)`), "function"},
}

// Keywords that match the method pattern but are flow control, not defs.
var notDefs = map[string]bool{
	"if": true, "for": true, "while": true, "switch": true, "catch": true,
	"return": true, "function": true,
}

// FindDefs scans stripped source for method and function definitions.
func FindDefs(text string, o Options) []Def {
	stripped := Strip(text, o)
	var defs []Def
	for i, line := range strings.Split(stripped, "\n") {
		for _, p := range defPatterns {
			m := p.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			name := m[1]
			if notDefs[name] {
				continue
			}
			defs = append(defs, Def{Name: name, Line: i + 1, Kind: p.kind})
			break
		}
	}
	return defs
}

// FindDuplicateDefs returns a warning per definition name seen more than
// once, pointing at the first and the repeated line.
func FindDuplicateDefs(text string, o Options) []string {
	firstSeen := make(map[string]int)
	var warnings []string
	for _, def := range FindDefs(text, o) {
		if first, ok := firstSeen[def.Name]; ok {
			warnings = append(warnings, fmt.Sprintf(
				"possible duplicate %s '%s' at line %d (first seen at line %d)",
				def.Kind, def.Name, def.Line, first))
		} else {
			firstSeen[def.Name] = def.Line
		}
	}
	return warnings
}

var docCommentStart = regexp.MustCompile(`^\s*/\*\*`)

// FindOrphanedDocComments returns the 1-based lines of /** doc blocks whose
// next code line is a bare closing brace, i.e. the documented definition was
// moved or deleted out from under the comment.
func FindOrphanedDocComments(text string) []int {
	lines := strings.Split(text, "\n")
	var orphans []int
	for i, line := range lines {
		if !docCommentStart.MatchString(line) {
			continue
		}
		// Skip the comment body, then look at the first code line after it.
		j := i + 1
		for j < len(lines) {
			trimmed := strings.TrimSpace(lines[j])
			if trimmed == "" || strings.HasPrefix(trimmed, "*") {
				j++
				continue
			}
			break
		}
		if j < len(lines) && strings.TrimSpace(lines[j]) == "}" {
			orphans = append(orphans, i+1)
		}
	}
	return orphans
}
