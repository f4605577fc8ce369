package main

import (
	"errors"
	"fmt"
	json "github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
	"net/http"
	"sheetCells/contracts"
)

type ApiController struct {
	SheetService contracts.SheetService
	logger       hclog.Logger
}

type CellEndpointParams struct {
	CellId string `uri:"cell_id" binding:"required"`
}

type SetCellRequest struct {
	Id      string
	Formula string
}

func NewApiController(sheetService contracts.SheetService, logger hclog.Logger) *ApiController {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &ApiController{SheetService: sheetService, logger: logger}
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var request *SetCellRequest
	var created bool

	err := c.ShouldBindUri(&params)
	if err == nil {
		request, err = api.parseSetCellRequest(c, params.CellId)
	}

	if err == nil {
		created, err = api.SheetService.SetCell(c.Request.Context(), params.CellId, request.Formula)
	}

	if errors.Is(err, contracts.InvalidCellIdError) || errors.Is(err, contracts.InvalidRequestError) {
		api.logger.Debug("set cell rejected", "cell", params.CellId, "error", err)
		c.Status(http.StatusBadRequest)
	} else if err != nil {
		api.internalError(c, err)
	} else if created {
		c.Status(http.StatusCreated)
	} else {
		c.Status(http.StatusNoContent)
	}
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var response *contracts.Cell

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.SheetService.GetCell(c.Request.Context(), params.CellId)
	}

	if errors.Is(err, contracts.CellNotFoundError) {
		c.Status(http.StatusNotFound)
	} else if err != nil {
		api.internalError(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) DeleteCellAction(c *gin.Context) {
	params := CellEndpointParams{}

	err := c.ShouldBindUri(&params)

	if err == nil {
		err = api.SheetService.DeleteCell(c.Request.Context(), params.CellId)
	}

	if err != nil {
		api.internalError(c, err)
	} else {
		c.Status(http.StatusNoContent)
	}
}

func (api *ApiController) ListCellsAction(c *gin.Context) {
	cellIds, err := api.SheetService.ListCells(c.Request.Context())

	if err != nil {
		api.internalError(c, err)
	} else {
		if cellIds == nil {
			cellIds = []string{}
		}
		c.JSON(http.StatusOK, cellIds)
	}
}

// parseSetCellRequest accepts exactly {"id": string, "formula": string} where id matches the path
func (api *ApiController) parseSetCellRequest(c *gin.Context, urlCellId string) (*SetCellRequest, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", contracts.InvalidRequestError, err)
	}

	payload := map[string]any{}
	if err = json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", contracts.InvalidRequestError, err)
	}

	if len(payload) != 2 {
		return nil, fmt.Errorf("%w: expected exactly id and formula fields", contracts.InvalidRequestError)
	}

	cellId, ok := payload["id"].(string)
	if !ok || cellId != urlCellId {
		return nil, fmt.Errorf("%w: id should be equal to `%s`", contracts.InvalidRequestError, urlCellId)
	}

	formula, ok := payload["formula"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: formula should be a string", contracts.InvalidRequestError)
	}

	return &SetCellRequest{Id: cellId, Formula: formula}, nil
}

func (api *ApiController) internalError(c *gin.Context, err error) {
	api.logger.Error("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
