package dialect

import "strings"

// identQuoteChars are the quoting characters that may wrap identifiers
// across the supported dialects.
const identQuoteChars = "\"'`[]"

// SplitTopLevel splits a parenthesized column-definition body on commas
// that are not nested inside (...). A depth counter keeps multi-argument
// type specifications such as DECIMAL(10,2) or IDENTITY(1,1) intact as a
// single clause. Each clause is trimmed; empty fragments are dropped.
//
// Commas or parentheses inside quoted string literals (e.g. a DEFAULT
// value containing a comma) are not accounted for. Known limitation.
func SplitTopLevel(body string) []string {
	var parts []string
	var current strings.Builder
	depth := 0

	for _, ch := range body {
		switch ch {
		case '(':
			depth++
			current.WriteRune(ch)
		case ')':
			depth--
			current.WriteRune(ch)
		case ',':
			if depth == 0 {
				parts = append(parts, current.String())
				current.Reset()
			} else {
				current.WriteRune(ch)
			}
		default:
			current.WriteRune(ch)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParenBody returns the content inside the first balanced pair of
// parentheses in text, and whether such a pair was found.
func ParenBody(text string) (string, bool) {
	depth := 0
	start := -1
	for i, ch := range text {
		switch ch {
		case '(':
			if depth == 0 {
				start = i + 1
			}
			depth++
		case ')':
			depth--
			if depth == 0 && start >= 0 {
				return text[start:i], true
			}
		}
	}
	return "", false
}

// Unquote strips surrounding bracket/quote characters from an identifier.
func Unquote(name string) string {
	return strings.Trim(name, identQuoteChars)
}

// SplitStatements splits SQL text into statements on semicolons, skipping
// semicolons inside single-quoted strings ('' escapes a quote), line
// comments (-- ...) and block comments (/* ... */). Statements are trimmed
// and empty fragments dropped.
func SplitStatements(text string) []string {
	var stmts []string
	var buf strings.Builder

	for i := 0; i < len(text); i++ {
		ch := text[i]

		switch {
		case ch == '\'':
			// Copy the string literal through, honoring '' escapes.
			buf.WriteByte(ch)
			for i++; i < len(text); i++ {
				buf.WriteByte(text[i])
				if text[i] == '\'' {
					if i+1 < len(text) && text[i+1] == '\'' {
						i++
						buf.WriteByte(text[i])
						continue
					}
					break
				}
			}
		case ch == '-' && i+1 < len(text) && text[i+1] == '-':
			for i < len(text) && text[i] != '\n' {
				i++
			}
			buf.WriteByte('\n')
		case ch == '/' && i+1 < len(text) && text[i+1] == '*':
			i += 2
			for i+1 < len(text) && !(text[i] == '*' && text[i+1] == '/') {
				i++
			}
			i++ // skip the closing '/'
		case ch == ';':
			stmts = append(stmts, buf.String())
			buf.Reset()
		default:
			buf.WriteByte(ch)
		}
	}
	if buf.Len() > 0 {
		stmts = append(stmts, buf.String())
	}

	var out []string
	for _, s := range stmts {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ContainsOutsideStrings reports whether any rune of chars occurs in text
// outside of single-quoted string literals.
func ContainsOutsideStrings(text, chars string) bool {
	inString := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch == '\'' {
			inString = !inString
			continue
		}
		if !inString && strings.IndexByte(chars, ch) >= 0 {
			return true
		}
	}
	return false
}
