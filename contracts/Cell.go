package contracts

import (
	"errors"
	"fmt"
	"regexp"
)

type Cell struct {
	Id      string `json:"id"`
	Formula string `json:"formula"`
}

// CellIdPattern one uppercase letter followed by 1..999 without leading zeros
const CellIdPattern = `^[A-Z][1-9][0-9]{0,2}$`

var CellIdRegexp = regexp.MustCompile(CellIdPattern)

var CellNotFoundError = errors.New("cell not found")

var InvalidCellIdError = fmt.Errorf("cell id should match %s", CellIdPattern)

var InvalidRequestError = errors.New("invalid request")
