// SPDX-License-Identifier: MPL-2.0

package engine

// TokenStream is a forward-only stream of string tokens. Streams must be
// fused: once Next reports false it must keep reporting false. Each parse
// call owns its stream; streams are never shared between calls.
type TokenStream interface {
	// Next returns the next token, or false when the stream is exhausted.
	Next() (string, bool)
}

type sliceStream struct {
	tokens []string
	pos    int
}

// Tokens wraps a token slice in a fused TokenStream.
func Tokens(tokens ...string) TokenStream {
	return &sliceStream{tokens: tokens}
}

func (s *sliceStream) Next() (string, bool) {
	if s.pos >= len(s.tokens) {
		return "", false
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, true
}
