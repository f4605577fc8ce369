package main

import (
	"context"
	"go.etcd.io/bbolt"
	"sheetCells/contracts"
)

var cellsBucketName = []byte("cells")

type BoltCellRepository struct {
	db         *bbolt.DB
	serializer contracts.CellRecordSerializer
}

func NewBoltCellRepository(db *bbolt.DB, serializer contracts.CellRecordSerializer) (*BoltCellRepository, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(cellsBucketName)
		return err
	})

	if err != nil {
		return nil, err
	}

	return &BoltCellRepository{
		db:         db,
		serializer: serializer,
	}, nil
}

func (r *BoltCellRepository) GetFormula(_ context.Context, cellId string) (formula string, found bool, err error) {
	err = r.db.View(func(tx *bbolt.Tx) error {
		byteValue := tx.Bucket(cellsBucketName).Get([]byte(cellId))
		if byteValue == nil {
			return nil
		}

		found = true
		_, formula, err = r.serializer.Unmarshal(byteValue)
		return err
	})

	return
}

func (r *BoltCellRepository) GetFormulas(_ context.Context, cellIds []string) ([]*string, error) {
	formulas := make([]*string, len(cellIds))

	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(cellsBucketName)

		var byteValue []byte
		for index, cellId := range cellIds {
			byteValue = bucket.Get([]byte(cellId))
			if byteValue == nil {
				continue
			}

			_, formula, err := r.serializer.Unmarshal(byteValue)
			if err != nil {
				return err
			}
			formulas[index] = &formula
		}

		return nil
	})

	return formulas, err
}

func (r *BoltCellRepository) PutFormula(_ context.Context, cellId string, formula string) (created bool, err error) {
	key := []byte(cellId)
	serializedData := r.serializer.Marshal(cellId, formula)

	err = r.db.Batch(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(cellsBucketName)
		created = bucket.Get(key) == nil
		return bucket.Put(key, serializedData)
	})

	return
}

func (r *BoltCellRepository) DeleteCell(_ context.Context, cellId string) error {
	return r.db.Batch(func(tx *bbolt.Tx) error {
		return tx.Bucket(cellsBucketName).Delete([]byte(cellId))
	})
}

func (r *BoltCellRepository) ListCellIds(_ context.Context) ([]string, error) {
	cellIds := make([]string, 0)

	err := r.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(cellsBucketName).Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			cellIds = append(cellIds, string(k))
		}
		return nil
	})

	return cellIds, err
}

func (r *BoltCellRepository) Close() error {
	return r.db.Close()
}
