package main

import (
	"github.com/expr-lang/expr/ast"
)

// ArithmeticNodesVisitor remembers the first node which is not a number literal,
// a unary sign or one of the four arithmetic operators
type ArithmeticNodesVisitor struct {
	forbidden ast.Node
}

func (v *ArithmeticNodesVisitor) Visit(node *ast.Node) {
	if v.forbidden != nil {
		return
	}

	switch typedNode := (*node).(type) {
	case *ast.IntegerNode, *ast.FloatNode:
		return

	case *ast.UnaryNode:
		if typedNode.Operator == "-" || typedNode.Operator == "+" {
			return
		}

	case *ast.BinaryNode:
		switch typedNode.Operator {
		case "+", "-", "*", "/":
			return
		}
	}

	v.forbidden = *node
}

func (v *ArithmeticNodesVisitor) Forbidden() ast.Node {
	return v.forbidden
}

// IntegerToFloatPatcher makes every literal a float so `+ - *` never overflow int
type IntegerToFloatPatcher struct{}

func (p *IntegerToFloatPatcher) Visit(node *ast.Node) {
	if integerNode, ok := (*node).(*ast.IntegerNode); ok {
		ast.Patch(node, &ast.FloatNode{Value: float64(integerNode.Value)})
	}
}
