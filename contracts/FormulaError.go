package contracts

import (
	"strconv"
	"strings"
)

// FormulaError points to the cell and formula which failed validation or evaluation.
// Position is the byte offset inside the whitespace-stripped formula, -1 when unknown.
type FormulaError struct {
	CellId   string
	Formula  string
	Position int
	Err      error
}

func (e *FormulaError) Error() string {
	var builder strings.Builder

	if e.CellId != "" {
		builder.WriteString("cell ")
		builder.WriteString(e.CellId)
		builder.WriteString(" ")
	}

	if e.Formula != "" {
		builder.WriteString("formula ")
		builder.WriteString(strconv.Quote(e.Formula))
		builder.WriteString(" ")
	}

	if e.Position >= 0 {
		builder.WriteString("at position ")
		builder.WriteString(strconv.Itoa(e.Position))
		builder.WriteString(" ")
	}

	builder.WriteString("failed: ")
	if e.Err != nil {
		builder.WriteString(e.Err.Error())
	}

	return builder.String()
}

func (e *FormulaError) Unwrap() error {
	return e.Err
}
