package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/anyswap/xrpl-txmodel/ledger/object"
	"github.com/anyswap/xrpl-txmodel/ledger/validate"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stallIndex = "0000000000000000000000000000000000000000000000000000000000000BAD"

type fakeWSRippled struct {
	*httptest.Server
	dials int32
}

func newFakeWSRippled(t *testing.T) *fakeWSRippled {
	f := &fakeWSRippled{}
	upgrader := websocket.Upgrader{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		atomic.AddInt32(&f.dials, 1)
		for {
			var cmd wsCommand
			if err := conn.ReadJSON(&cmd); err != nil {
				return
			}
			if cmd.Index == stallIndex {
				continue
			}
			// stream messages are interleaved with responses
			_ = conn.WriteJSON(map[string]interface{}{"type": "ledgerClosed", "ledger_index": 90000002})

			result := ledgerEntryResult(cmd.Index)
			resp := map[string]interface{}{"id": cmd.ID, "type": "response"}
			if _, failed := result["error"]; failed {
				for k, v := range result {
					resp[k] = v
				}
			} else {
				resp["status"] = "success"
				resp["result"] = result
			}
			if err := conn.WriteJSON(resp); err != nil {
				return
			}
		}
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeWSRippled) wsURL() string {
	return "ws" + strings.TrimPrefix(f.URL, "http")
}

func (f *fakeWSRippled) Dials() int {
	return int(atomic.LoadInt32(&f.dials))
}

func dialFake(t *testing.T, f *fakeWSRippled) *WSReader {
	r, err := DialWSReader(context.Background(), f.wsURL(), 5*time.Second)
	require.NoError(t, err)
	t.Cleanup(r.Close)
	return r
}

func TestIsWebsocketEndpoint(t *testing.T) {
	assert.True(t, IsWebsocketEndpoint("wss://xrplcluster.com"))
	assert.True(t, IsWebsocketEndpoint("WS://127.0.0.1:6006"))
	assert.False(t, IsWebsocketEndpoint("https://s1.ripple.com:51234"))
}

func TestWSReader(t *testing.T) {
	f := newFakeWSRippled(t)
	r := dialFake(t, f)
	ctx := context.Background()

	o, err := r.LedgerEntry(ctx, strings.ToLower(genesisRoot))
	require.NoError(t, err)
	root, ok := o.(*object.AccountRoot)
	require.True(t, ok)
	assert.Equal(t, genesis, root.Account().String())
	assert.Equal(t, "99999999", root.Balance().Value)

	_, err = r.LedgerEntry(ctx, checkIndex)
	assert.True(t, errors.Is(err, validate.ErrObjectNotFound))

	_, err = r.LedgerEntry(ctx, brokenIndex)
	assert.True(t, errors.Is(err, ErrRPCResponse))
	assert.Contains(t, err.Error(), "lgrNotFound")

	assert.Equal(t, 1, f.Dials())
	assert.Equal(t, uint64(3), r.nextID)
}

func TestWSReaderRedialsAfterTimeout(t *testing.T) {
	f := newFakeWSRippled(t)
	r := dialFake(t, f)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err := r.LedgerEntry(ctx, stallIndex)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	_, err = r.LedgerEntry(context.Background(), genesisRoot)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Dials())
}

func TestWSReaderClosed(t *testing.T) {
	f := newFakeWSRippled(t)
	r := dialFake(t, f)
	r.Close()

	_, err := r.LedgerEntry(context.Background(), genesisRoot)
	assert.True(t, errors.Is(err, ErrReaderClosed))
}

func TestCachedReaderOverWebsocket(t *testing.T) {
	f := newFakeWSRippled(t)
	c := NewCachedReader(openCache(t), dialFake(t, f), 0)

	for i := 0; i < 2; i++ {
		o, err := c.LedgerEntry(context.Background(), genesisRoot)
		require.NoError(t, err)
		assert.Equal(t, object.TypeAccountRoot, o.LedgerEntryType())
	}
	assert.Equal(t, uint64(1), c.next.(*WSReader).nextID)
}
