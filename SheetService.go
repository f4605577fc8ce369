package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/hashicorp/go-hclog"
	"sheetCells/contracts"
	"time"
)

type SheetService struct {
	repository        contracts.CellRepository
	validator         contracts.FormulaValidator
	evaluator         contracts.FormulaEvaluator
	evaluationTimeout time.Duration
	logger            hclog.Logger
}

func NewSheetService(
	repository contracts.CellRepository, validator contracts.FormulaValidator,
	evaluator contracts.FormulaEvaluator, evaluationTimeout time.Duration, logger hclog.Logger,
) *SheetService {
	return &SheetService{
		repository:        repository,
		validator:         validator,
		evaluator:         evaluator,
		evaluationTimeout: evaluationTimeout,
		logger:            logger,
	}
}

// SetCell stores the raw formula, it is neither validated nor evaluated on write
func (s *SheetService) SetCell(ctx context.Context, cellId string, formula string) (bool, error) {
	if !contracts.CellIdRegexp.MatchString(cellId) {
		return false, fmt.Errorf("cell_id `%s`: %w", cellId, contracts.InvalidCellIdError)
	}

	return s.repository.PutFormula(ctx, cellId, formula)
}

// GetCell returns the evaluated value in the formula field.
// An invalid or failing formula is displayed as 0.
func (s *SheetService) GetCell(ctx context.Context, cellId string) (*contracts.Cell, error) {
	formula, found, err := s.repository.GetFormula(ctx, cellId)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, fmt.Errorf("%s: %w", cellId, contracts.CellNotFoundError)
	}

	return &contracts.Cell{
		Id:      cellId,
		Formula: FormatNumber(s.evaluate(ctx, cellId, formula)),
	}, nil
}

func (s *SheetService) DeleteCell(ctx context.Context, cellId string) error {
	return s.repository.DeleteCell(ctx, cellId)
}

func (s *SheetService) ListCells(ctx context.Context) ([]string, error) {
	return s.repository.ListCellIds(ctx)
}

func (s *SheetService) evaluate(ctx context.Context, cellId string, formula string) float64 {
	if !s.validator.Validate(formula) {
		s.logger.Debug("invalid formula displayed as 0", "cell", cellId, "formula", formula)
		return 0
	}

	if s.evaluationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.evaluationTimeout)
		defer cancel()
	}

	value, err := s.evaluator.EvaluateCell(ctx, cellId, formula, s.repository.GetFormulas)
	if err != nil {
		s.logger.Warn("evaluation failed, displayed as 0", "cell", cellId, "kind", errorKind(err), "error", err)
		return 0
	}

	return value
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, CyclicReferenceError):
		return "cyclic_reference"
	case errors.Is(err, MaxDepthExceededError):
		return "max_depth"
	case errors.Is(err, DivisionByZeroError):
		return "division_by_zero"
	case errors.Is(err, ForbiddenExpressionError), errors.Is(err, MalformedExpressionError):
		return "malformed"
	case errors.Is(err, ValidationError):
		return "validation"
	case errors.Is(err, LookupError):
		return "lookup"
	case isContextError(err):
		return "timeout"
	}

	return "evaluation"
}
