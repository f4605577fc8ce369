package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestReferenceScanner_Scan(t *testing.T) {
	scanner := NewReferenceScanner()

	t.Run("no_references", func(t *testing.T) {
		assert.Empty(t, scanner.Scan("1+2*(3-4)"))
		assert.Empty(t, scanner.Scan(""))
	})

	t.Run("positions", func(t *testing.T) {
		assert.Equal(t, []ReferenceToken{
			{Name: "A1", Start: 0, End: 2},
			{Name: "B22", Start: 3, End: 6},
		}, scanner.Scan("A1+B22"))
	})

	t.Run("maximal_tokens", func(t *testing.T) {
		assert.Equal(t, []ReferenceToken{
			{Name: "AB1", Start: 0, End: 3},
			{Name: "A1", Start: 4, End: 6},
		}, scanner.Scan("AB1+A1"))
	})

	t.Run("letters_after_digit_are_not_reference", func(t *testing.T) {
		assert.Empty(t, scanner.Scan("12A1"))
	})

	t.Run("repeated", func(t *testing.T) {
		tokens := scanner.Scan("A1*A1+B1")
		assert.Len(t, tokens, 3)
		assert.Equal(t, []string{"A1", "B1"}, scanner.Distinct(tokens))
	})
}

func TestReferenceScanner_Substitute(t *testing.T) {
	scanner := NewReferenceScanner()

	substitute := func(formula string, values map[string]float64) string {
		return scanner.Substitute(formula, scanner.Scan(formula), values)
	}

	t.Run("without_references", func(t *testing.T) {
		assert.Equal(t, "1+2", substitute("1+2", nil))
	})

	t.Run("token_boundaries", func(t *testing.T) {
		actual := substitute("AB1+A1", map[string]float64{"AB1": 10, "A1": 1})
		assert.Equal(t, "10+1", actual)
	})

	t.Run("prefix_names", func(t *testing.T) {
		actual := substitute("A1+A12+A123", map[string]float64{"A1": 1, "A12": 12, "A123": 123})
		assert.Equal(t, "1+12+123", actual)
	})

	t.Run("every_occurrence", func(t *testing.T) {
		assert.Equal(t, "2*2", substitute("A1*A1", map[string]float64{"A1": 2}))
	})

	t.Run("negative_and_float", func(t *testing.T) {
		actual := substitute("5-A1*B1", map[string]float64{"A1": -3, "B1": 0.5})
		assert.Equal(t, "5-(-3)*0.5", actual)
	})

	t.Run("missing_value_is_zero", func(t *testing.T) {
		assert.Equal(t, "0+5", substitute("A1+5", map[string]float64{}))
	})
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "3", FormatNumber(3))
	assert.Equal(t, "3.5", FormatNumber(3.5))
	assert.Equal(t, "-2", FormatNumber(-2))
	assert.Equal(t, "0.1", FormatNumber(0.1))
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "0", FormatNumber(-1*0.0))
	assert.Equal(t, "100000000000000000000", FormatNumber(1e20))
}

func TestFormatOperand(t *testing.T) {
	assert.Equal(t, "3", FormatOperand(3))
	assert.Equal(t, "(-3)", FormatOperand(-3))
	assert.Equal(t, "100000000000000000000.0", FormatOperand(1e20))
	assert.Equal(t, "(-1000000000000000.0)", FormatOperand(-1e15))
}
