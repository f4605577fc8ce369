package main

import (
	"errors"
	"fmt"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"
	"math"
	"sync"
)

var EvaluationError = errors.New("evaluation failed")

var MalformedExpressionError = fmt.Errorf("%w: %s", EvaluationError, "malformed arithmetic expression")

var ForbiddenExpressionError = fmt.Errorf("%w: %s", EvaluationError, "only numbers, + - * / and parentheses are allowed")

var DivisionByZeroError = fmt.Errorf("%w: %s", EvaluationError, "division by zero or non-finite result")

type ArithmeticReducer struct {
	compilerOptions []expr.Option
	vmPool          sync.Pool
}

func NewArithmeticReducer() *ArithmeticReducer {
	return &ArithmeticReducer{
		compilerOptions: []expr.Option{
			expr.Env(map[string]any{}),
			expr.AsFloat64(),
			expr.Optimize(false),
			expr.DisableAllBuiltins(),
			expr.Patch(&IntegerToFloatPatcher{}),
		},

		vmPool: sync.Pool{
			New: func() any {
				return new(vm.VM)
			},
		},
	}
}

// Reduce evaluates a reference-free infix expression. The expression is parsed and
// checked against the arithmetic whitelist before anything is compiled.
func (r *ArithmeticReducer) Reduce(expression string) (float64, error) {
	if expression == "" {
		return 0, nil
	}

	tree, err := parser.Parse(expression)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", MalformedExpressionError, err)
	}

	visitor := &ArithmeticNodesVisitor{}
	ast.Walk(&tree.Node, visitor)
	if forbidden := visitor.Forbidden(); forbidden != nil {
		return 0, fmt.Errorf("%w: unexpected %T", ForbiddenExpressionError, forbidden)
	}

	program, err := expr.Compile(expression, r.compilerOptions...)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", MalformedExpressionError, err)
	}

	v := r.vmPool.Get().(*vm.VM)
	output, err := v.Run(program, map[string]any{})
	r.vmPool.Put(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", EvaluationError, err)
	}

	result, ok := output.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: unexpected result type %T", EvaluationError, output)
	}

	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, fmt.Errorf("%w: %s", DivisionByZeroError, expression)
	}

	return result, nil
}
