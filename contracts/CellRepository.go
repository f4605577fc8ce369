package contracts

import "context"

type CellRepository interface {
	GetFormula(ctx context.Context, cellId string) (formula string, found bool, err error)
	GetFormulas(ctx context.Context, cellIds []string) ([]*string, error)
	PutFormula(ctx context.Context, cellId string, formula string) (created bool, err error)
	DeleteCell(ctx context.Context, cellId string) error
	ListCellIds(ctx context.Context) ([]string, error)
	Close() error
}

type CellRecordSerializer interface {
	Marshal(cellId string, formula string) []byte
	Unmarshal(data []byte) (cellId string, formula string, err error)
}
