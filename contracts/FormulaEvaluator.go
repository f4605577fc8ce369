package contracts

import "context"

// CellFormulasGetter returns stored formulas in the order of cellIds.
// A nil element means the cell is absent, which is not the same as an empty formula.
type CellFormulasGetter func(ctx context.Context, cellIds []string) ([]*string, error)

type Canonicalizer interface {
	Canonicalize(formula string) string
	NormalizeWhitespace(formula string) string
}

type FormulaValidator interface {
	Validate(formula string) bool
	Diagnose(formula string) error
}

type ArithmeticReducer interface {
	Reduce(expression string) (float64, error)
}

type FormulaEvaluator interface {
	Evaluate(ctx context.Context, formula string, getter CellFormulasGetter) (float64, error)
	EvaluateCell(ctx context.Context, cellId string, formula string, getter CellFormulasGetter) (float64, error)
}
