package main

import (
	"errors"
	"fmt"
	"sheetCells/contracts"
	"strings"
)

var ValidationError = errors.New("formula validation failed")

var InvalidCharacterError = fmt.Errorf("%w: %s", ValidationError, "invalid character")

var IncompleteReferenceError = fmt.Errorf("%w: %s", ValidationError, "letter must be followed by a letter or a digit")

var LetterAfterDigitError = fmt.Errorf("%w: %s", ValidationError, "digit must not be followed by a letter")

// FormulaOperators are the only non-alphanumeric characters allowed in a formula
const FormulaOperators = "+-*/()"

type FormulaValidator struct {
	canonicalizer contracts.Canonicalizer
}

func NewFormulaValidator(canonicalizer contracts.Canonicalizer) *FormulaValidator {
	return &FormulaValidator{canonicalizer: canonicalizer}
}

func (v *FormulaValidator) Validate(formula string) bool {
	return v.Diagnose(formula) == nil
}

// Diagnose checks every character against the next one only. Unbalanced parentheses
// and operator runs pass here and fail later on reduction.
func (v *FormulaValidator) Diagnose(formula string) error {
	formula = v.canonicalizer.Canonicalize(formula)

	var char byte
	for index := 0; index < len(formula); index++ {
		char = formula[index]

		if !isLetter(char) && !isDigit(char) && !isOperator(char) {
			return v.fail(formula, index, InvalidCharacterError)
		}

		hasNext := index+1 < len(formula)

		if isLetter(char) && (!hasNext || !(isLetter(formula[index+1]) || isDigit(formula[index+1]))) {
			return v.fail(formula, index, IncompleteReferenceError)
		}

		if isDigit(char) && hasNext && isLetter(formula[index+1]) {
			return v.fail(formula, index, LetterAfterDigitError)
		}
	}

	return nil
}

func (v *FormulaValidator) fail(formula string, position int, reason error) error {
	return &contracts.FormulaError{
		Formula:  formula,
		Position: position,
		Err:      reason,
	}
}

func isLetter(char byte) bool {
	return char >= 'A' && char <= 'Z'
}

func isDigit(char byte) bool {
	return char >= '0' && char <= '9'
}

func isOperator(char byte) bool {
	return strings.IndexByte(FormulaOperators, char) >= 0
}
