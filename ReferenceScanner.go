package main

import (
	"regexp"
	"strings"
)

type ReferenceToken struct {
	Name  string
	Start int
	End   int
}

type ReferenceScanner struct {
	referenceRegex *regexp.Regexp
}

func NewReferenceScanner() *ReferenceScanner {
	return &ReferenceScanner{
		referenceRegex: regexp.MustCompile(`[A-Z]+[0-9]+`),
	}
}

// Scan returns reference tokens left to right. Matches are maximal, so `AB12` is one token.
// A letter run glued to a preceding digit is not a reference and stays in the text.
func (s *ReferenceScanner) Scan(formula string) []ReferenceToken {
	matches := s.referenceRegex.FindAllStringIndex(formula, -1)
	tokens := make([]ReferenceToken, 0, len(matches))

	for _, match := range matches {
		if match[0] > 0 && isDigit(formula[match[0]-1]) {
			continue
		}

		tokens = append(tokens, ReferenceToken{
			Name:  formula[match[0]:match[1]],
			Start: match[0],
			End:   match[1],
		})
	}

	return tokens
}

func (s *ReferenceScanner) Distinct(tokens []ReferenceToken) []string {
	seen := make(map[string]bool, len(tokens))
	names := make([]string, 0, len(tokens))

	for _, token := range tokens {
		if !seen[token.Name] {
			seen[token.Name] = true
			names = append(names, token.Name)
		}
	}

	return names
}

// Substitute rebuilds the formula span by span, every token is replaced exactly once.
// Tokens without a value are replaced by 0.
func (s *ReferenceScanner) Substitute(formula string, tokens []ReferenceToken, values map[string]float64) string {
	if len(tokens) == 0 {
		return formula
	}

	var builder strings.Builder
	builder.Grow(len(formula))

	previousEnd := 0
	for _, token := range tokens {
		builder.WriteString(formula[previousEnd:token.Start])
		builder.WriteString(FormatOperand(values[token.Name]))
		previousEnd = token.End
	}
	builder.WriteString(formula[previousEnd:])

	return builder.String()
}
