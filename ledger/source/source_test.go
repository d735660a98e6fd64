package source

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/anyswap/xrpl-txmodel/ledger/entity"
	"github.com/anyswap/xrpl-txmodel/ledger/object"
	"github.com/anyswap/xrpl-txmodel/ledger/validate"
	"github.com/anyswap/xrpl-txmodel/leveldb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// goleveldb drains its memdb pool on a ticker for up to a second after Close
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("github.com/syndtr/goleveldb/leveldb.(*DB).mpoolDrain"))
}

const (
	genesis     = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	genesisRoot = "2B6AC232AA4C4BE41BF49D2459FA4A0347E1B543A4C92FCEE0821C0201E2E9A8"
	checkIndex  = "7F640CCE9CBA5B9DEF70D455B9BFFB1C9D500A5409B7AA84275C542AC0C35AE5"
	brokenIndex = "BF656DABDD84E6128A45039F8D557C9477D4DA31F5B00868F2191F0A11FE3798"
)

func ledgerEntryResult(index string) map[string]interface{} {
	switch index {
	case genesisRoot:
		return map[string]interface{}{
			"index":        genesisRoot,
			"ledger_index": 90000001,
			"validated":    true,
			"status":       "success",
			"node": map[string]interface{}{
				"LedgerEntryType": "AccountRoot",
				"Account":         genesis,
				"Balance":         "99999999000000",
				"Sequence":        12,
				"OwnerCount":      1,
				"Flags":           131072,
				"index":           genesisRoot,
			},
		}
	case brokenIndex:
		return map[string]interface{}{
			"error":         "lgrNotFound",
			"error_code":    21,
			"error_message": "ledgerNotFound",
			"status":        "error",
		}
	default:
		return map[string]interface{}{
			"error":         "entryNotFound",
			"error_code":    21,
			"error_message": "Entry not found.",
			"status":        "error",
		}
	}
}

type fakeRippled struct {
	*httptest.Server
	hits int32
}

func newFakeRippled(t *testing.T) *fakeRippled {
	f := &fakeRippled{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&f.hits, 1)
		var req struct {
			Method string                   `json:"method"`
			Params []map[string]interface{} `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Method != "ledger_entry" || len(req.Params) != 1 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		index, _ := req.Params[0]["index"].(string)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"result": ledgerEntryResult(index)})
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeRippled) Hits() int {
	return int(atomic.LoadInt32(&f.hits))
}

func newReader(t *testing.T, f *fakeRippled) *RPCReader {
	r := NewRPCReader(f.URL, 5*time.Second)
	t.Cleanup(r.Close)
	return r
}

func openCache(t *testing.T) *leveldb.Database {
	db, err := leveldb.New(filepath.Join(t.TempDir(), "cache"), 16, 16, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRPCReader(t *testing.T) {
	f := newFakeRippled(t)
	r := newReader(t, f)
	ctx := context.Background()

	o, err := r.LedgerEntry(ctx, genesisRoot)
	require.NoError(t, err)
	root, ok := o.(*object.AccountRoot)
	require.True(t, ok)
	assert.Equal(t, genesis, root.Account().String())
	assert.Equal(t, "99999999", root.Balance().Value)
	assert.True(t, o.Binding().IsLedger())

	_, err = r.LedgerEntry(ctx, checkIndex)
	assert.True(t, errors.Is(err, validate.ErrObjectNotFound))

	_, err = r.LedgerEntry(ctx, brokenIndex)
	assert.True(t, errors.Is(err, ErrRPCResponse))
	assert.Contains(t, err.Error(), "lgrNotFound")

	assert.Equal(t, "current", r.AtLedger("current").ledger)
	assert.Equal(t, "validated", r.ledger)
}

func TestRPCReaderHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	r := NewRPCReader(srv.URL, time.Second)
	defer r.Close()

	_, err := r.LedgerEntry(context.Background(), genesisRoot)
	assert.True(t, errors.Is(err, ErrRPCResponse))
}

func TestRPCReaderCanceled(t *testing.T) {
	f := newFakeRippled(t)
	r := newReader(t, f)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.LedgerEntry(ctx, genesisRoot)
	assert.Error(t, err)
	assert.Zero(t, f.Hits())
}

func TestCachedReader(t *testing.T) {
	f := newFakeRippled(t)
	c := NewCachedReader(openCache(t), newReader(t, f), 0)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		o, err := c.LedgerEntry(ctx, genesisRoot)
		require.NoError(t, err)
		assert.Equal(t, object.TypeAccountRoot, o.LedgerEntryType())
	}
	assert.Equal(t, 1, f.Hits())

	// lower case index shares the cached entry
	o, err := c.LedgerEntry(ctx, "2b6ac232aa4c4be41bf49d2459fa4a0347e1b543a4c92fcee0821c0201e2e9a8")
	require.NoError(t, err)
	assert.True(t, o.(*object.AccountRoot).RequireDestTag())
	assert.Equal(t, 1, f.Hits())

	// misses are not cached
	for i := 0; i < 2; i++ {
		_, err = c.LedgerEntry(ctx, checkIndex)
		assert.True(t, errors.Is(err, validate.ErrObjectNotFound))
	}
	assert.Equal(t, 3, f.Hits())

	require.NoError(t, c.Invalidate(genesisRoot))
	_, err = c.LedgerEntry(ctx, genesisRoot)
	require.NoError(t, err)
	assert.Equal(t, 4, f.Hits())
}

func TestCachedReaderTTL(t *testing.T) {
	f := newFakeRippled(t)
	c := NewCachedReader(openCache(t), newReader(t, f), time.Minute)
	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }
	ctx := context.Background()

	_, err := c.LedgerEntry(ctx, genesisRoot)
	require.NoError(t, err)
	clock = clock.Add(30 * time.Second)
	_, err = c.LedgerEntry(ctx, genesisRoot)
	require.NoError(t, err)
	assert.Equal(t, 1, f.Hits())

	n, err := c.Prune()
	require.NoError(t, err)
	assert.Zero(t, n)

	clock = clock.Add(2 * time.Minute)
	n, err = c.Prune()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = c.LedgerEntry(ctx, genesisRoot)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Hits())
}

func TestCachedReaderOverMemory(t *testing.T) {
	check, err := object.Parse(entity.Record{
		"LedgerEntryType": "Check",
		"index":           checkIndex,
		"Account":         genesis,
		"Destination":     "ra5jrnrq9BxsvzGeJY5XS9inftcJWMdJUx",
		"SendMax":         "5000000",
		"Sequence":        json.Number("5"),
	}, entity.SourceLedger)
	require.NoError(t, err)

	db := openCache(t)
	mem := validate.NewMemoryReader(check)
	c := NewCachedReader(db, mem, 0)

	_, err = c.LedgerEntry(context.Background(), checkIndex)
	require.NoError(t, err)

	// served from leveldb once the memory reader forgets it
	c.next = validate.NewMemoryReader()
	o, err := c.LedgerEntry(context.Background(), checkIndex)
	require.NoError(t, err)
	cached, ok := o.(*object.Check)
	require.True(t, ok)
	assert.Equal(t, "5", cached.SendMax().Value)
	assert.Equal(t, uint32(5), cached.Sequence())

	n, err := c.Prune()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, err = c.LedgerEntry(context.Background(), checkIndex)
	assert.True(t, errors.Is(err, validate.ErrObjectNotFound))
}
