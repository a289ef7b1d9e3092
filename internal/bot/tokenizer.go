package bot

import "strings"

// Tokenize splits raw message text into a command token and argument tokens.
// Whitespace runs separate tokens; a double-quoted span is captured whole
// with the quotes stripped and counts as one token regardless of embedded
// spaces. No quote escaping is supported.
//
// An unterminated quote degrades to ordinary whitespace splitting of the
// orphaned content rather than raising a parse error.
func Tokenize(text string) []string {
	var tokens []string
	i := 0
	for i < len(text) {
		// Skip the whitespace run.
		if text[i] == ' ' || text[i] == '\t' || text[i] == '\n' || text[i] == '\r' {
			i++
			continue
		}

		if text[i] == '"' {
			end := strings.IndexByte(text[i+1:], '"')
			if end >= 0 {
				tokens = append(tokens, text[i+1:i+1+end])
				i += end + 2
				continue
			}
			// Dangling quote: whitespace-split whatever it would have quoted.
			tokens = append(tokens, strings.Fields(text[i+1:])...)
			return tokens
		}

		start := i
		for i < len(text) && text[i] != ' ' && text[i] != '\t' && text[i] != '\n' && text[i] != '\r' {
			i++
		}
		tokens = append(tokens, text[start:i])
	}
	return tokens
}
