package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/hashicorp/go-hclog"
	"sheetCells/contracts"
)

type EvaluationMode string

const (
	// StrictMode propagates any failure of a referenced cell
	StrictMode EvaluationMode = "strict"
	// LenientMode resolves a failing referenced cell to 0
	LenientMode EvaluationMode = "lenient"
)

const DefaultMaxDepth = 1000

var CyclicReferenceError = fmt.Errorf("%w: %s", EvaluationError, "cyclic reference detected")

var MaxDepthExceededError = fmt.Errorf("%w: %s", EvaluationError, "maximum reference depth exceeded")

var LookupError = errors.New("cell lookup failed")

func ParseEvaluationMode(mode string) (EvaluationMode, error) {
	switch EvaluationMode(mode) {
	case StrictMode, LenientMode:
		return EvaluationMode(mode), nil
	case "":
		return StrictMode, nil
	}

	return "", fmt.Errorf("unknown evaluation mode `%s`, expected %s or %s", mode, StrictMode, LenientMode)
}

type FormulaEvaluator struct {
	canonicalizer contracts.Canonicalizer
	validator     contracts.FormulaValidator
	reducer       contracts.ArithmeticReducer
	scanner       *ReferenceScanner
	mode          EvaluationMode
	maxDepth      int
	logger        hclog.Logger
}

// evaluation is the state of one top-level Evaluate call.
// pending holds cells on the current resolution path, resolved holds finished ones.
type evaluation struct {
	ctx      context.Context
	getter   contracts.CellFormulasGetter
	pending  map[string]bool
	resolved map[string]float64
}

func NewFormulaEvaluator(
	canonicalizer contracts.Canonicalizer, validator contracts.FormulaValidator,
	reducer contracts.ArithmeticReducer, mode EvaluationMode, maxDepth int, logger hclog.Logger,
) *FormulaEvaluator {
	if mode == "" {
		mode = StrictMode
	}

	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &FormulaEvaluator{
		canonicalizer: canonicalizer,
		validator:     validator,
		reducer:       reducer,
		scanner:       NewReferenceScanner(),
		mode:          mode,
		maxDepth:      maxDepth,
		logger:        logger,
	}
}

func (e *FormulaEvaluator) Evaluate(ctx context.Context, formula string, getter contracts.CellFormulasGetter) (float64, error) {
	return e.EvaluateCell(ctx, "", formula, getter)
}

// EvaluateCell evaluates the formula stored in cellId, so a direct self reference is
// reported as a cycle on the first revisit. An empty cellId evaluates a detached formula.
func (e *FormulaEvaluator) EvaluateCell(ctx context.Context, cellId string, formula string, getter contracts.CellFormulasGetter) (float64, error) {
	state := &evaluation{
		ctx:      ctx,
		getter:   getter,
		pending:  map[string]bool{},
		resolved: map[string]float64{},
	}

	if cellId != "" {
		state.pending[cellId] = true
	}

	return e.evaluateFormula(state, cellId, formula, 0)
}

// evaluateFormula validates only the top-level formula, referenced formulas go straight to
// reduction. Whitespace still separates tokens, so `A1 2` never reads as `A12`.
func (e *FormulaEvaluator) evaluateFormula(state *evaluation, cellId string, formula string, depth int) (float64, error) {
	formula = e.canonicalizer.NormalizeWhitespace(formula)

	if depth > e.maxDepth {
		return 0, e.wrap(cellId, formula, MaxDepthExceededError)
	}

	canonical := e.canonicalizer.Canonicalize(formula)
	if canonical == "" {
		return 0, nil
	}

	if depth == 0 {
		if err := e.validator.Diagnose(canonical); err != nil {
			return 0, e.wrap(cellId, canonical, err)
		}
	}

	tokens := e.scanner.Scan(formula)
	values := make(map[string]float64, len(tokens))

	cellIdsToFetch := make([]string, 0, len(tokens))
	for _, referenceId := range e.scanner.Distinct(tokens) {
		if state.pending[referenceId] {
			err := &contracts.FormulaError{CellId: referenceId, Position: -1, Err: CyclicReferenceError}
			if e.mode == StrictMode {
				return 0, e.wrap(cellId, formula, err)
			}

			e.logger.Debug("cyclic reference resolved to 0", "cell", cellId, "reference", referenceId)
			values[referenceId] = 0
		} else if value, ok := state.resolved[referenceId]; ok {
			values[referenceId] = value
		} else {
			cellIdsToFetch = append(cellIdsToFetch, referenceId)
		}
	}

	if len(cellIdsToFetch) != 0 {
		err := e.resolveReferences(state, cellIdsToFetch, values, depth)
		if err != nil {
			return 0, e.wrap(cellId, formula, err)
		}
	}

	result, err := e.reducer.Reduce(e.scanner.Substitute(formula, tokens, values))
	if err != nil {
		return 0, e.wrap(cellId, formula, err)
	}

	return result, nil
}

func (e *FormulaEvaluator) resolveReferences(state *evaluation, cellIds []string, values map[string]float64, depth int) error {
	if err := state.ctx.Err(); err != nil {
		return err
	}

	formulas, err := state.getter(state.ctx, cellIds)
	if err != nil {
		if isContextError(err) {
			return err
		}

		err = fmt.Errorf("%w: %w", LookupError, err)
		if e.mode == StrictMode {
			return err
		}

		e.logger.Debug("lookup failure resolved to 0", "cells", cellIds, "error", err)
		for _, referenceId := range cellIds {
			values[referenceId] = 0
		}
		return nil
	}

	var value float64
	for index, referenceId := range cellIds {
		if resolvedValue, ok := state.resolved[referenceId]; ok {
			values[referenceId] = resolvedValue
			continue
		}

		// missing cell
		if index >= len(formulas) || formulas[index] == nil {
			values[referenceId] = 0
			state.resolved[referenceId] = 0
			continue
		}

		state.pending[referenceId] = true
		value, err = e.evaluateFormula(state, referenceId, *formulas[index], depth+1)
		delete(state.pending, referenceId)

		if err != nil {
			if e.mode == StrictMode || isContextError(err) {
				return err
			}

			e.logger.Debug("failed reference resolved to 0", "cell", referenceId, "error", err)
			value = 0
		}

		values[referenceId] = value
		state.resolved[referenceId] = value
	}

	return nil
}

// wrap attaches the cell and formula to err unless err already describes this formula
func (e *FormulaEvaluator) wrap(cellId string, formula string, err error) error {
	if formulaErr, ok := err.(*contracts.FormulaError); ok && formulaErr.CellId == "" && formulaErr.Formula == formula {
		formulaErr.CellId = cellId
		return formulaErr
	}

	return &contracts.FormulaError{
		CellId:   cellId,
		Formula:  formula,
		Position: -1,
		Err:      err,
	}
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
