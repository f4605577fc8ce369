package contracts

import "context"

type SheetService interface {
	SetCell(ctx context.Context, cellId string, formula string) (created bool, err error)
	GetCell(ctx context.Context, cellId string) (*Cell, error)
	DeleteCell(ctx context.Context, cellId string) error
	ListCells(ctx context.Context) ([]string, error)
}
