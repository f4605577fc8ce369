package main

import (
	"context"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.etcd.io/bbolt"
	"sheetCells/contracts"
	"time"
)

const boltOpenTimeout = time.Second

type ServiceContainer struct {
	Logger           hclog.Logger
	CellRepository   contracts.CellRepository
	FormulaValidator contracts.FormulaValidator
	FormulaEvaluator contracts.FormulaEvaluator
	SheetService     contracts.SheetService
	ApiController    contracts.ApiController
	Router           *gin.Engine
}

func BuildServiceContainer(ctx context.Context, config *Config, logger hclog.Logger) (container ServiceContainer, err error) {
	container.Logger = logger

	container.CellRepository, err = BuildCellRepository(ctx, config, logger.Named("repository"))
	if err != nil {
		return
	}

	canonicalizer := NewCanonicalizer()
	container.FormulaValidator = NewFormulaValidator(canonicalizer)
	container.FormulaEvaluator = NewFormulaEvaluator(
		canonicalizer, container.FormulaValidator, NewArithmeticReducer(),
		config.EvaluationMode, config.EvaluationMaxDepth, logger.Named("evaluator"),
	)
	container.SheetService = NewSheetService(
		container.CellRepository, container.FormulaValidator, container.FormulaEvaluator,
		config.EvaluationTimeout, logger.Named("sheet"),
	)
	container.ApiController = NewApiController(container.SheetService, logger.Named("api"))

	container.Router = SetupRouter(container.ApiController, logger.Named("http"))

	return
}

func BuildCellRepository(ctx context.Context, config *Config, logger hclog.Logger) (contracts.CellRepository, error) {
	switch config.Repository {
	case BoltRepository:
		db, err := bbolt.Open(config.DatabaseFilePath, 0600, &bbolt.Options{Timeout: boltOpenTimeout})
		if err != nil {
			return nil, err
		}

		repository, err := NewBoltCellRepository(db, NewCellBinarySerializer())
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return repository, nil

	case PostgresRepository:
		db, err := sqlx.ConnectContext(ctx, "postgres", config.DatabaseUrl)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		repository, err := NewPostgresCellRepository(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return repository, nil

	case FirebaseRepository:
		return NewFirebaseCellRepository(FirebaseOptions{
			BaseUrl:  config.FirebaseUrl,
			Timeout:  config.FirebaseTimeout,
			RetryMax: config.FirebaseRetryMax,
		}, logger), nil
	}

	return nil, fmt.Errorf("%w: unknown repository `%s`", ConfigError, config.Repository)
}

func (container *ServiceContainer) Close() error {
	var result *multierror.Error

	if container.CellRepository != nil {
		if err := container.CellRepository.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("close repository: %w", err))
		}
	}

	return result.ErrorOrNil()
}
