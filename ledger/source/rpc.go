// Package source provides ledger entry readers backed by a rippled node and a local cache.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/anyswap/xrpl-txmodel/ledger/entity"
	"github.com/anyswap/xrpl-txmodel/ledger/object"
	"github.com/anyswap/xrpl-txmodel/ledger/validate"
	"github.com/anyswap/xrpl-txmodel/log"
	"github.com/go-resty/resty/v2"
)

const (
	defaultTimeout = 30 * time.Second

	errEntryNotFound = "entryNotFound"
)

var (
	// ErrRPCResponse is returned for http or rippled level failures
	ErrRPCResponse = errors.New("rpc response error")

	_ validate.LedgerReader = &RPCReader{}
)

// RequestBody request body
type RequestBody struct {
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

type rpcResult struct {
	Status       string          `json:"status"`
	Error        string          `json:"error"`
	ErrorCode    int             `json:"error_code"`
	ErrorMessage string          `json:"error_message"`
	Index        string          `json:"index"`
	LedgerIndex  interface{}     `json:"ledger_index"`
	Validated    bool            `json:"validated"`
	Node         json.RawMessage `json:"node"`
}

type rpcResponse struct {
	Result rpcResult `json:"result"`
}

// RPCReader looks up ledger entries with the rippled ledger_entry method
type RPCReader struct {
	endpoint   string
	ledger     string
	client     *resty.Client
	httpClient *http.Client
}

// NewRPCReader reads validated entries from endpoint.
// A zero timeout means the default of 30 seconds.
func NewRPCReader(endpoint string, timeout time.Duration) *RPCReader {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()}
	client := resty.NewWithClient(httpClient).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	return &RPCReader{
		endpoint:   endpoint,
		ledger:     "validated",
		client:     client,
		httpClient: httpClient,
	}
}

// AtLedger returns a reader pinned to a ledger index or shortcut ("validated", "current", "closed")
func (r *RPCReader) AtLedger(ledger string) *RPCReader {
	c := *r
	c.ledger = ledger
	return &c
}

// Endpoint returns the node url
func (r *RPCReader) Endpoint() string {
	return r.endpoint
}

// Close releases idle connections
func (r *RPCReader) Close() {
	r.httpClient.CloseIdleConnections()
}

// LedgerEntry impl validate.LedgerReader
func (r *RPCReader) LedgerEntry(ctx context.Context, index string) (object.Object, error) {
	node, err := r.fetchNode(ctx, index)
	if err != nil {
		return nil, err
	}
	return object.Parse(node, entity.SourceLedger)
}

func (r *RPCReader) fetchNode(ctx context.Context, index string) (entity.Record, error) {
	index = strings.ToUpper(index)
	body := &RequestBody{
		Method: "ledger_entry",
		Params: []interface{}{
			map[string]interface{}{
				"index":        index,
				"ledger_index": r.ledger,
			},
		},
	}
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(r.endpoint)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: ledger_entry %v status %v", ErrRPCResponse, index, resp.StatusCode())
	}

	var res rpcResponse
	if err = json.Unmarshal(resp.Body(), &res); err != nil {
		return nil, fmt.Errorf("%w: ledger_entry %v: %v", ErrRPCResponse, index, err)
	}
	return nodeFromResult(index, r.ledger, &res.Result)
}

func nodeFromResult(index, ledger string, result *rpcResult) (entity.Record, error) {
	switch {
	case result.Error == errEntryNotFound:
		log.Trace("ledger entry not found", "index", index, "ledger", ledger)
		return nil, fmt.Errorf("%w: %s", validate.ErrObjectNotFound, index)
	case result.Error != "":
		return nil, fmt.Errorf("%w: %s (%d) %s", ErrRPCResponse, result.Error, result.ErrorCode, result.ErrorMessage)
	case len(result.Node) == 0:
		return nil, fmt.Errorf("%w: ledger_entry %v has no node", ErrRPCResponse, index)
	}

	node, err := entity.ParseRecord(result.Node)
	if err != nil {
		return nil, err
	}
	if !node.Has("index") {
		node["index"] = index
	}
	log.Trace("fetched ledger entry", "index", index, "type", node.String("LedgerEntryType"), "ledger", result.LedgerIndex)
	return node, nil
}
