package main

import (
	"strings"
	"unicode"
)

type Canonicalizer struct{}

func NewCanonicalizer() *Canonicalizer {
	return &Canonicalizer{}
}

// Canonicalize drops every whitespace rune, whitespace is never significant in a formula
func (c *Canonicalizer) Canonicalize(formula string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, formula)
}

// NormalizeWhitespace turns every whitespace rune into a plain space
func (c *Canonicalizer) NormalizeWhitespace(formula string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, formula)
}
