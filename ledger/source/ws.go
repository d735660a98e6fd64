package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/anyswap/xrpl-txmodel/ledger/entity"
	"github.com/anyswap/xrpl-txmodel/ledger/object"
	"github.com/anyswap/xrpl-txmodel/ledger/validate"
	"github.com/anyswap/xrpl-txmodel/log"
	"github.com/gorilla/websocket"
)

const dialTimeout = 5 * time.Second

var (
	// ErrReaderClosed is returned after Close
	ErrReaderClosed = errors.New("ledger reader closed")

	_ validate.LedgerReader = &WSReader{}
)

type wsCommand struct {
	ID          uint64 `json:"id"`
	Command     string `json:"command"`
	Index       string `json:"index"`
	LedgerIndex string `json:"ledger_index"`
}

// errors come back at the top level of a websocket response, not inside result
type wsResponse struct {
	ID           uint64    `json:"id"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	Error        string    `json:"error"`
	ErrorCode    int       `json:"error_code"`
	ErrorMessage string    `json:"error_message"`
	Result       rpcResult `json:"result"`
}

// WSReader looks up ledger entries over a rippled websocket.
// Requests are serialized on one connection, which is redialed after a failure.
type WSReader struct {
	endpoint string
	ledger   string
	timeout  time.Duration

	mu     sync.Mutex
	conn   *websocket.Conn
	nextID uint64
	closed bool
}

// DialWSReader connects to a ws:// or wss:// endpoint.
// A zero timeout means the default of 30 seconds per request.
func DialWSReader(ctx context.Context, endpoint string, timeout time.Duration) (*WSReader, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	r := &WSReader{
		endpoint: endpoint,
		ledger:   "validated",
		timeout:  timeout,
	}
	if err := r.dial(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// IsWebsocketEndpoint reports whether endpoint needs a WSReader
func IsWebsocketEndpoint(endpoint string) bool {
	lower := strings.ToLower(endpoint)
	return strings.HasPrefix(lower, "ws://") || strings.HasPrefix(lower, "wss://")
}

func (r *WSReader) dial(ctx context.Context) error {
	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: dialTimeout,
	}
	conn, _, err := dialer.DialContext(ctx, r.endpoint, nil)
	if err != nil {
		return fmt.Errorf("dial %v: %w", r.endpoint, err)
	}
	log.Debug("websocket connected", "endpoint", r.endpoint)
	r.conn = conn
	return nil
}

// Endpoint returns the node url
func (r *WSReader) Endpoint() string {
	return r.endpoint
}

// Close sends a close frame and drops the connection
func (r *WSReader) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.dropConn()
}

func (r *WSReader) dropConn() {
	if r.conn == nil {
		return
	}
	deadline := time.Now().Add(time.Second)
	_ = r.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
	_ = r.conn.Close()
	r.conn = nil
}

// LedgerEntry impl validate.LedgerReader
func (r *WSReader) LedgerEntry(ctx context.Context, index string) (object.Object, error) {
	node, err := r.fetchNode(ctx, index)
	if err != nil {
		return nil, err
	}
	return object.Parse(node, entity.SourceLedger)
}

func (r *WSReader) fetchNode(ctx context.Context, index string) (entity.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	index = strings.ToUpper(index)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, ErrReaderClosed
	}
	if r.conn == nil {
		if err := r.dial(ctx); err != nil {
			return nil, err
		}
	}

	resp, err := r.roundTrip(ctx, index)
	if err != nil {
		// a failed read leaves the connection unusable
		r.dropConn()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if d, ok := ctx.Deadline(); ok && !time.Now().Before(d) {
			return nil, context.DeadlineExceeded
		}
		return nil, fmt.Errorf("%w: ledger_entry %v: %v", ErrRPCResponse, index, err)
	}

	result := &resp.Result
	if resp.Error != "" {
		result.Error = resp.Error
		result.ErrorCode = resp.ErrorCode
		result.ErrorMessage = resp.ErrorMessage
	}
	return nodeFromResult(index, r.ledger, result)
}

func (r *WSReader) roundTrip(ctx context.Context, index string) (*wsResponse, error) {
	r.nextID++
	id := r.nextID

	deadline := time.Now().Add(r.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	conn := r.conn
	_ = conn.SetWriteDeadline(deadline)
	_ = conn.SetReadDeadline(deadline)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.SetReadDeadline(time.Now())
		case <-done:
		}
	}()

	cmd := &wsCommand{
		ID:          id,
		Command:     "ledger_entry",
		Index:       index,
		LedgerIndex: r.ledger,
	}
	if err := conn.WriteJSON(cmd); err != nil {
		return nil, err
	}
	for {
		var resp wsResponse
		if err := conn.ReadJSON(&resp); err != nil {
			return nil, err
		}
		if resp.ID != id {
			log.Trace("skip websocket message", "id", resp.ID, "type", resp.Type)
			continue
		}
		return &resp, nil
	}
}
