// SPDX-License-Identifier: GPL-2.0-or-later

package blua

import "strings"

// Assignment is one `table[Key] = { ... }` statement found in a script.
type Assignment struct {
	Key string
	// Literal is the table literal, braces included.
	Literal string
	Offset  int
}

// Decode unmarshals the assigned table into v.
func (a Assignment) Decode(v any) error {
	return Unmarshal(a.Literal, v)
}

// FindAssignments scans src for assignments of table literals to an index
// of the global named table, e.g. skincolors[SKINCOLOR_ASIMOV] = {...}.
// The rest of the script is not interpreted. Statements whose right hand
// side is not a table literal, or whose table never closes, are skipped.
func FindAssignments(src, table string) []Assignment {
	var out []Assignment
	i := 0
	for {
		i += scanCode(src[i:], table)
		if i >= len(src) {
			return out
		}
		start := i
		i += len(table)
		if start > 0 && isIdent(src[start-1]) || i < len(src) && isIdent(src[i]) {
			continue
		}

		j := i + scanSpace(src[i:])
		if j >= len(src) || src[j] != '[' {
			continue
		}
		end := strings.IndexByte(src[j:], ']')
		if end < 0 {
			return out
		}
		key := unquote(strings.TrimSpace(src[j+1 : j+end]))
		j += end + 1

		j += scanSpace(src[j:])
		if j >= len(src) || src[j] != '=' || j+1 < len(src) && src[j+1] == '=' {
			continue
		}
		j++
		j += scanSpace(src[j:])
		if j >= len(src) || src[j] != '{' {
			continue
		}
		n := tableExtent(src[j:])
		if n < 0 {
			continue
		}
		out = append(out, Assignment{Key: key, Literal: src[j : j+n], Offset: start})
		i = j + n
	}
}

// scanCode returns the offset of the next occurrence of word in s that is
// outside comments and strings, or len(s).
func scanCode(s, word string) int {
	i := 0
	for i < len(s) {
		switch c := s[i]; {
		case strings.HasPrefix(s[i:], "--"):
			i += scanSpace(s[i:])
		case c == '"' || c == '\'':
			if _, n, err := scanString(s[i:]); err == nil {
				i += n
			} else {
				return len(s)
			}
		case strings.HasPrefix(s[i:], word):
			return i
		default:
			i++
		}
	}
	return len(s)
}

// tableExtent returns the length of the brace-balanced table at the start
// of s, or -1 if it never closes. Braces in strings and comments do not
// count.
func tableExtent(s string) int {
	depth := 0
	i := 0
	for i < len(s) {
		switch c := s[i]; {
		case strings.HasPrefix(s[i:], "--"):
			i += scanSpace(s[i:])
			continue
		case c == '"' || c == '\'':
			_, n, err := scanString(s[i:])
			if err != nil {
				return -1
			}
			i += n
			continue
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
		i++
	}
	return -1
}
