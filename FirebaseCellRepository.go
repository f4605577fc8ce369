package main

import (
	"context"
	"errors"
	"fmt"
	json "github.com/bytedance/sonic"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

var FirebaseResponseError = errors.New("unexpected firebase response")

type FirebaseOptions struct {
	// BaseUrl points to the cells collection, without the `.json` suffix
	BaseUrl  string
	Timeout  time.Duration
	RetryMax int
}

// FirebaseCellRepository stores cells as `{"formula": "..."}` documents of a Realtime Database
type FirebaseCellRepository struct {
	client  *retryablehttp.Client
	baseUrl string
}

type firebaseCellDocument struct {
	Formula string `json:"formula"`
}

func NewFirebaseCellRepository(options FirebaseOptions, logger hclog.Logger) *FirebaseCellRepository {
	client := retryablehttp.NewClient()
	client.HTTPClient.Timeout = options.Timeout
	client.RetryMax = options.RetryMax
	client.Logger = logger

	return &FirebaseCellRepository{
		client:  client,
		baseUrl: strings.TrimSuffix(options.BaseUrl, "/"),
	}
}

func (r *FirebaseCellRepository) GetFormula(ctx context.Context, cellId string) (string, bool, error) {
	body, err := r.do(ctx, http.MethodGet, r.cellUrl(cellId), nil)
	if err != nil {
		return "", false, err
	}

	formula := gjson.GetBytes(body, "formula")
	if !formula.Exists() {
		return "", false, nil
	}

	return formula.String(), true, nil
}

func (r *FirebaseCellRepository) GetFormulas(ctx context.Context, cellIds []string) ([]*string, error) {
	formulas := make([]*string, len(cellIds))

	for index, cellId := range cellIds {
		formula, found, err := r.GetFormula(ctx, cellId)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cellId, err)
		}

		if found {
			formulas[index] = &formula
		}
	}

	return formulas, nil
}

func (r *FirebaseCellRepository) PutFormula(ctx context.Context, cellId string, formula string) (created bool, err error) {
	var found bool
	_, found, err = r.GetFormula(ctx, cellId)
	if err != nil {
		return
	}

	var payload []byte
	payload, err = json.Marshal(firebaseCellDocument{Formula: formula})
	if err != nil {
		return
	}

	_, err = r.do(ctx, http.MethodPut, r.cellUrl(cellId), payload)
	return !found, err
}

func (r *FirebaseCellRepository) DeleteCell(ctx context.Context, cellId string) error {
	_, err := r.do(ctx, http.MethodDelete, r.cellUrl(cellId), nil)
	return err
}

func (r *FirebaseCellRepository) ListCellIds(ctx context.Context) ([]string, error) {
	body, err := r.do(ctx, http.MethodGet, r.baseUrl+".json?shallow=true", nil)
	if err != nil {
		return nil, err
	}

	cellIds := make([]string, 0)
	gjson.ParseBytes(body).ForEach(func(key, _ gjson.Result) bool {
		cellIds = append(cellIds, key.String())
		return true
	})

	sort.Strings(cellIds)
	return cellIds, nil
}

func (r *FirebaseCellRepository) Close() error {
	r.client.HTTPClient.CloseIdleConnections()
	return nil
}

func (r *FirebaseCellRepository) cellUrl(cellId string) string {
	return r.baseUrl + "/" + url.PathEscape(cellId) + ".json"
}

func (r *FirebaseCellRepository) do(ctx context.Context, method string, requestUrl string, payload []byte) ([]byte, error) {
	var body any
	if payload != nil {
		body = payload
	}

	request, err := retryablehttp.NewRequestWithContext(ctx, method, requestUrl, body)
	if err != nil {
		return nil, err
	}

	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := r.client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s %s: %s", FirebaseResponseError, method, requestUrl, response.Status)
	}

	return responseBody, nil
}
