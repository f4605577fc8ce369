package main

import (
	"context"
	"errors"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"sheetCells/contracts"
	"sheetCells/mocks"
	"testing"
	"time"
)

func TestSheetService_SetCell(t *testing.T) {
	ctx := context.Background()

	t.Run("created", func(t *testing.T) {
		repository := mocks.NewCellRepository(t)
		repository.On("PutFormula", ctx, "A1", "B1 + 1").Return(true, nil).Once()

		service := NewSheetService(repository, nil, nil, 0, hclog.NewNullLogger())
		created, err := service.SetCell(ctx, "A1", "B1 + 1")

		assert.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("invalid_formula_is_stored", func(t *testing.T) {
		repository := mocks.NewCellRepository(t)
		repository.On("PutFormula", ctx, "Z999", "1A+").Return(false, nil).Once()

		service := NewSheetService(repository, nil, nil, 0, hclog.NewNullLogger())
		created, err := service.SetCell(ctx, "Z999", "1A+")

		assert.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("invalid_cell_id", func(t *testing.T) {
		repository := mocks.NewCellRepository(t)
		service := NewSheetService(repository, nil, nil, 0, hclog.NewNullLogger())

		for _, cellId := range []string{"", "a1", "A0", "A01", "A1000", "AA1", "1A", "A", "A1 "} {
			created, err := service.SetCell(ctx, cellId, "1")

			assert.ErrorIs(t, err, contracts.InvalidCellIdError, cellId)
			assert.False(t, created)
		}
	})

	t.Run("repository_error", func(t *testing.T) {
		expectedErr := errors.New("disk is full")
		repository := mocks.NewCellRepository(t)
		repository.On("PutFormula", ctx, "A1", "1").Return(false, expectedErr).Once()

		service := NewSheetService(repository, nil, nil, 0, hclog.NewNullLogger())
		_, err := service.SetCell(ctx, "A1", "1")

		assert.ErrorIs(t, err, expectedErr)
	})
}

func TestSheetService_GetCell(t *testing.T) {
	ctx := context.Background()

	t.Run("evaluated", func(t *testing.T) {
		repository := mocks.NewCellRepository(t)
		repository.On("GetFormula", ctx, "A1").Return("B1/2", true, nil).Once()

		validator := mocks.NewFormulaValidator(t)
		validator.On("Validate", "B1/2").Return(true).Once()

		evaluator := mocks.NewFormulaEvaluator(t)
		evaluator.On("EvaluateCell", mock.Anything, "A1", "B1/2", mock.Anything).Return(2.5, nil).Once()

		service := NewSheetService(repository, validator, evaluator, time.Second, hclog.NewNullLogger())
		cell, err := service.GetCell(ctx, "A1")

		assert.NoError(t, err)
		assert.Equal(t, &contracts.Cell{Id: "A1", Formula: "2.5"}, cell)
	})

	t.Run("not_found", func(t *testing.T) {
		repository := mocks.NewCellRepository(t)
		repository.On("GetFormula", ctx, "A1").Return("", false, nil).Once()

		service := NewSheetService(repository, nil, nil, 0, hclog.NewNullLogger())
		cell, err := service.GetCell(ctx, "A1")

		assert.ErrorIs(t, err, contracts.CellNotFoundError)
		assert.Nil(t, cell)
	})

	t.Run("repository_error", func(t *testing.T) {
		expectedErr := errors.New("connection reset")
		repository := mocks.NewCellRepository(t)
		repository.On("GetFormula", ctx, "A1").Return("", false, expectedErr).Once()

		service := NewSheetService(repository, nil, nil, 0, hclog.NewNullLogger())
		_, err := service.GetCell(ctx, "A1")

		assert.ErrorIs(t, err, expectedErr)
		assert.NotErrorIs(t, err, contracts.CellNotFoundError)
	})

	t.Run("invalid_formula_is_zero", func(t *testing.T) {
		repository := mocks.NewCellRepository(t)
		repository.On("GetFormula", ctx, "A1").Return("2A", true, nil).Once()

		validator := mocks.NewFormulaValidator(t)
		validator.On("Validate", "2A").Return(false).Once()

		evaluator := mocks.NewFormulaEvaluator(t)

		service := NewSheetService(repository, validator, evaluator, 0, hclog.NewNullLogger())
		cell, err := service.GetCell(ctx, "A1")

		assert.NoError(t, err)
		assert.Equal(t, "0", cell.Formula)
	})

	t.Run("failed_evaluation_is_zero", func(t *testing.T) {
		repository := mocks.NewCellRepository(t)
		repository.On("GetFormula", ctx, "A1").Return("1/0", true, nil).Once()

		validator := mocks.NewFormulaValidator(t)
		validator.On("Validate", "1/0").Return(true).Once()

		evaluator := mocks.NewFormulaEvaluator(t)
		evaluator.On("EvaluateCell", mock.Anything, "A1", "1/0", mock.Anything).
			Return(0.0, &contracts.FormulaError{CellId: "A1", Formula: "1/0", Position: -1, Err: DivisionByZeroError}).
			Once()

		service := NewSheetService(repository, validator, evaluator, 0, hclog.NewNullLogger())
		cell, err := service.GetCell(ctx, "A1")

		assert.NoError(t, err)
		assert.Equal(t, &contracts.Cell{Id: "A1", Formula: "0"}, cell)
	})

	t.Run("evaluation_deadline", func(t *testing.T) {
		repository := mocks.NewCellRepository(t)
		repository.On("GetFormula", ctx, "A1").Return("B1", true, nil).Once()

		validator := mocks.NewFormulaValidator(t)
		validator.On("Validate", "B1").Return(true).Once()

		evaluator := mocks.NewFormulaEvaluator(t)
		evaluator.On("EvaluateCell", mock.MatchedBy(func(ctx context.Context) bool {
			_, hasDeadline := ctx.Deadline()
			return hasDeadline
		}), "A1", "B1", mock.Anything).Return(1.0, nil).Once()

		service := NewSheetService(repository, validator, evaluator, time.Minute, hclog.NewNullLogger())
		cell, err := service.GetCell(ctx, "A1")

		assert.NoError(t, err)
		assert.Equal(t, "1", cell.Formula)
	})
}

func TestSheetService_DeleteAndList(t *testing.T) {
	ctx := context.Background()

	repository := mocks.NewCellRepository(t)
	repository.On("DeleteCell", ctx, "A1").Return(nil).Once()
	repository.On("ListCellIds", ctx).Return([]string{"B1"}, nil).Once()

	service := NewSheetService(repository, nil, nil, 0, hclog.NewNullLogger())

	assert.NoError(t, service.DeleteCell(ctx, "A1"))

	cellIds, err := service.ListCells(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"B1"}, cellIds)
}

func TestSheetService_Integration(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, mode EvaluationMode) *SheetService {
		repository, dbClose := _createTmpRepository(t)
		t.Cleanup(dbClose)

		canonicalizer := NewCanonicalizer()
		validator := NewFormulaValidator(canonicalizer)
		evaluator := NewFormulaEvaluator(canonicalizer, validator, NewArithmeticReducer(), mode, 0, hclog.NewNullLogger())

		return NewSheetService(repository, validator, evaluator, time.Second, hclog.NewNullLogger())
	}

	assertCell := func(t *testing.T, service *SheetService, cellId string, expected string) {
		cell, err := service.GetCell(ctx, cellId)
		require.NoError(t, err, cellId)
		assert.Equal(t, expected, cell.Formula, cellId)
	}

	t.Run("scenario", func(t *testing.T) {
		service := setup(t, StrictMode)

		for cellId, formula := range map[string]string{
			"A1": "1 + 2",
			"A2": "A1 * 2",
			"A3": "A2 / 4",
			"B1": "A3 - A9",
			"B2": "1A",
			"B3": "B2 + 5",
			"C1": "C1 + 1",
			"C2": "1/0",
			"C3": "",
		} {
			_, err := service.SetCell(ctx, cellId, formula)
			require.NoError(t, err)
		}

		assertCell(t, service, "A1", "3")
		assertCell(t, service, "A2", "6")
		assertCell(t, service, "A3", "1.5")
		assertCell(t, service, "B1", "1.5")
		assertCell(t, service, "B2", "0")
		assertCell(t, service, "B3", "0")
		assertCell(t, service, "C1", "0")
		assertCell(t, service, "C2", "0")
		assertCell(t, service, "C3", "0")

		_, err := service.GetCell(ctx, "D1")
		assert.ErrorIs(t, err, contracts.CellNotFoundError)

		cellIds, err := service.ListCells(ctx)
		assert.NoError(t, err)
		assert.Len(t, cellIds, 9)
	})

	t.Run("update_propagates", func(t *testing.T) {
		service := setup(t, StrictMode)

		_, err := service.SetCell(ctx, "A1", "2")
		require.NoError(t, err)
		_, err = service.SetCell(ctx, "B1", "A1 * A1")
		require.NoError(t, err)
		assertCell(t, service, "B1", "4")

		_, err = service.SetCell(ctx, "A1", "-3")
		require.NoError(t, err)
		assertCell(t, service, "B1", "9")

		require.NoError(t, service.DeleteCell(ctx, "A1"))
		assertCell(t, service, "B1", "0")
	})

	t.Run("decimal_reference", func(t *testing.T) {
		for _, mode := range []EvaluationMode{StrictMode, LenientMode} {
			service := setup(t, mode)

			_, err := service.SetCell(ctx, "A1", "1.5")
			require.NoError(t, err)
			_, err = service.SetCell(ctx, "B1", "A1*2")
			require.NoError(t, err)

			assertCell(t, service, "B1", "3")
			assertCell(t, service, "A1", "0")
		}
	})

	t.Run("lenient_mode", func(t *testing.T) {
		service := setup(t, LenientMode)

		_, err := service.SetCell(ctx, "A1", "B1 + 1")
		require.NoError(t, err)
		_, err = service.SetCell(ctx, "B1", "1/0")
		require.NoError(t, err)
		_, err = service.SetCell(ctx, "C1", "C1 + 4")
		require.NoError(t, err)

		assertCell(t, service, "A1", "1")
		assertCell(t, service, "B1", "0")
		assertCell(t, service, "C1", "4")
	})
}
