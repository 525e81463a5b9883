/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package expr

import (
	"strings"
	"unicode"

	"github.com/rulego/bandmath/types"
)

// TokenType represents token type
type TokenType int

const (
	// TokenKeyword logical keyword token (and, or, not, true, false in any case)
	TokenKeyword TokenType = iota
	// TokenIdent identifier token, possibly dotted ("flags.F1")
	TokenIdent
	// TokenOperator operator token
	TokenOperator
	// TokenNumber number token
	TokenNumber
	// TokenString string token
	TokenString
	// TokenLeftParen left parenthesis token
	TokenLeftParen
	// TokenRightParen right parenthesis token
	TokenRightParen
	// TokenComma comma token
	TokenComma
)

// Token represents a token
type Token struct {
	// Type token type
	Type TokenType
	// Value token text as written
	Value string
	// Pos byte offset of the token in the source
	Pos int
}

var keywords = map[string]bool{
	"and":   true,
	"or":    true,
	"not":   true,
	"true":  true,
	"false": true,
}

var twoCharOperators = map[string]bool{
	"&&": true, "||": true, "==": true, "!=": true, "<=": true, ">=": true, "**": true,
}

const singleCharOperators = "+-*/%^<>!?:=&|~"

func syntaxError(src string, format string, args ...interface{}) error {
	return types.NewError(types.ErrSyntax, src, format, args...)
}

// Tokenize breaks an expression into tokens.
// Supports numbers, identifiers, operators, parentheses and string literals.
func Tokenize(src string) ([]Token, error) {
	if len(strings.TrimSpace(src)) == 0 {
		return nil, syntaxError(src, "empty expression")
	}

	var tokens []Token
	i := 0

	for i < len(src) {
		// Skip whitespace characters
		if unicode.IsSpace(rune(src[i])) {
			i++
			continue
		}

		// String literals, backticks are raw strings
		if src[i] == '\'' || src[i] == '"' || src[i] == '`' {
			quote := src[i]
			start := i
			i++
			for i < len(src) && src[i] != quote {
				if src[i] == '\\' && quote != '`' && i+1 < len(src) {
					i += 2
				} else {
					i++
				}
			}
			if i >= len(src) {
				return nil, syntaxError(src, "unterminated string literal at position %d", start)
			}
			i++
			tokens = append(tokens, Token{Type: TokenString, Value: src[start:i], Pos: start})
			continue
		}

		// Numbers, including a leading decimal point and an exponent
		if isDigit(src[i]) || (src[i] == '.' && i+1 < len(src) && isDigit(src[i+1])) {
			start := i
			for i < len(src) && isDigit(src[i]) {
				i++
			}
			if i < len(src) && src[i] == '.' && i+1 < len(src) && isDigit(src[i+1]) {
				i++
				for i < len(src) && isDigit(src[i]) {
					i++
				}
			}
			if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
				j := i + 1
				if j < len(src) && (src[j] == '+' || src[j] == '-') {
					j++
				}
				if j < len(src) && isDigit(src[j]) {
					i = j
					for i < len(src) && isDigit(src[i]) {
						i++
					}
				}
			}
			tokens = append(tokens, Token{Type: TokenNumber, Value: src[start:i], Pos: start})
			continue
		}

		// Multi-character operators
		if i+1 < len(src) && twoCharOperators[src[i:i+2]] {
			tokens = append(tokens, Token{Type: TokenOperator, Value: src[i : i+2], Pos: i})
			i += 2
			continue
		}

		switch src[i] {
		case '(':
			tokens = append(tokens, Token{Type: TokenLeftParen, Value: "(", Pos: i})
			i++
			continue
		case ')':
			tokens = append(tokens, Token{Type: TokenRightParen, Value: ")", Pos: i})
			i++
			continue
		case ',':
			tokens = append(tokens, Token{Type: TokenComma, Value: ",", Pos: i})
			i++
			continue
		}
		if strings.IndexByte(singleCharOperators, src[i]) >= 0 {
			tokens = append(tokens, Token{Type: TokenOperator, Value: string(src[i]), Pos: i})
			i++
			continue
		}

		// Identifiers and keywords, dots join band and flag names
		if isLetter(src[i]) || src[i] == '_' || src[i] == '$' {
			start := i
			for i < len(src) && (isLetter(src[i]) || isDigit(src[i]) || src[i] == '_' || src[i] == '.' || src[i] == '$') {
				i++
			}
			word := src[start:i]
			typ := TokenIdent
			if keywords[strings.ToLower(word)] {
				typ = TokenKeyword
			}
			tokens = append(tokens, Token{Type: typ, Value: word, Pos: start})
			continue
		}

		return nil, syntaxError(src, "unexpected character '%c' at position %d", src[i], i)
	}

	return tokens, nil
}

// Normalize lowers keywords written in upper or mixed case ("AND", "Not")
// so that the parser accepts them. String literals are left untouched and
// byte offsets are preserved.
func Normalize(src string) (string, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return "", err
	}
	if err := validateParentheses(src, tokens); err != nil {
		return "", err
	}
	buf := []byte(src)
	for _, tok := range tokens {
		if tok.Type == TokenKeyword {
			copy(buf[tok.Pos:], strings.ToLower(tok.Value))
		}
	}
	return string(buf), nil
}

// Identifiers returns the distinct symbol names referenced by src in
// first-seen order. Function names are not included.
func Identifiers(src string) ([]string, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	var names []string
	seen := make(map[string]bool)
	for i, tok := range tokens {
		if tok.Type != TokenIdent || seen[tok.Value] {
			continue
		}
		if i+1 < len(tokens) && tokens[i+1].Type == TokenLeftParen {
			continue
		}
		seen[tok.Value] = true
		names = append(names, tok.Value)
	}
	return names, nil
}

// validateParentheses checks that parentheses are balanced
func validateParentheses(src string, tokens []Token) error {
	depth := 0
	for _, tok := range tokens {
		switch tok.Type {
		case TokenLeftParen:
			depth++
		case TokenRightParen:
			depth--
			if depth < 0 {
				return syntaxError(src, "unexpected ')' at position %d", tok.Pos)
			}
		}
	}
	if depth != 0 {
		return syntaxError(src, "missing ')'")
	}
	return nil
}

// isDigit checks if character is a digit
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isLetter checks if character is a letter
func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
