package main

import (
	"math"
	"strconv"
	"strings"
)

// integral values from this magnitude keep a fractional part so the parser reads them as floats
const largeIntegralOperand = 1e15

func FormatNumber(value float64) string {
	if value == 0 {
		// avoid "-0"
		return "0"
	}

	return strconv.FormatFloat(value, 'f', -1, 64)
}

// FormatOperand renders a value for substitution into another formula
func FormatOperand(value float64) string {
	output := FormatNumber(value)

	if math.Abs(value) >= largeIntegralOperand && !strings.Contains(output, ".") {
		output += ".0"
	}

	if value < 0 {
		return "(" + output + ")"
	}

	return output
}
