package http

import (
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// invalidTextOffset returns the offset in a JSON body of the first sequence
// that does not decode to text, or -1. encoding/json replaces both ill-formed
// UTF-8 and \u escapes of unpaired UTF-16 surrogates with U+FFFD, so they have
// to be caught before binding. Other malformed JSON is left to the decoder.
func invalidTextOffset(body []byte) int {
	if !utf8.Valid(body) {
		for i := 0; i < len(body); {
			r, size := utf8.DecodeRune(body[i:])
			if r == utf8.RuneError && size <= 1 {
				return i
			}
			i += size
		}
	}

	inString := false
	for i := 0; i < len(body); i++ {
		switch c := body[i]; {
		case c == '"':
			inString = !inString
		case c == '\\' && inString:
			r, ok := escapedRune(body, i)
			if !ok {
				// \" \\ \n and friends: skip the escaped byte.
				i++
				continue
			}
			switch {
			case r >= 0xd800 && r < 0xdc00:
				low, ok := escapedRune(body, i+6)
				if !ok || utf16.DecodeRune(r, low) == utf8.RuneError {
					return i
				}
				i += 11
			case utf16.IsSurrogate(r):
				return i
			default:
				i += 5
			}
		}
	}
	return -1
}

// escapedRune decodes a \uXXXX escape starting at body[i].
func escapedRune(body []byte, i int) (rune, bool) {
	if i+6 > len(body) || body[i] != '\\' || body[i+1] != 'u' {
		return 0, false
	}
	v, err := strconv.ParseUint(string(body[i+2:i+6]), 16, 16)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}
