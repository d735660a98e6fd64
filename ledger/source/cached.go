package source

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anyswap/xrpl-txmodel/ledger/entity"
	"github.com/anyswap/xrpl-txmodel/ledger/object"
	"github.com/anyswap/xrpl-txmodel/ledger/validate"
	"github.com/anyswap/xrpl-txmodel/leveldb"
	"github.com/anyswap/xrpl-txmodel/log"
)

var (
	entryPrefix = []byte("entry:")

	_ validate.LedgerReader = &CachedReader{}
)

// CachedReader is a read through cache in front of another reader.
// Entries are stored as an 8 byte fetch time followed by the raw json record.
type CachedReader struct {
	db   leveldb.KeyValueStore
	next validate.LedgerReader
	ttl  time.Duration
	now  func() time.Time
}

// NewCachedReader caches entries read from next in db.
// A zero ttl keeps entries until they are pruned.
func NewCachedReader(db leveldb.KeyValueStore, next validate.LedgerReader, ttl time.Duration) *CachedReader {
	return &CachedReader{db: db, next: next, ttl: ttl, now: time.Now}
}

func entryKey(index string) []byte {
	return append(append([]byte{}, entryPrefix...), strings.ToUpper(index)...)
}

func int64ToBytes(i int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(i))
	return buf
}

func bytesToInt64(buf []byte) int64 {
	return int64(binary.BigEndian.Uint64(buf))
}

func (c *CachedReader) isStale(fetched int64) bool {
	return c.ttl > 0 && c.now().Sub(time.Unix(fetched, 0)) > c.ttl
}

// LedgerEntry impl validate.LedgerReader
func (c *CachedReader) LedgerEntry(ctx context.Context, index string) (object.Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if o, ok := c.load(index); ok {
		return o, nil
	}
	o, err := c.next.LedgerEntry(ctx, index)
	if err != nil {
		return nil, err
	}
	if err = c.store(index, o); err != nil {
		log.Warn("cache ledger entry failed", "index", index, "err", err)
	}
	return o, nil
}

func (c *CachedReader) load(index string) (object.Object, bool) {
	value, err := c.db.Get(entryKey(index))
	if err != nil {
		if !leveldb.IsNotFoundErr(err) {
			log.Warn("read ledger entry cache failed", "index", index, "err", err)
		}
		return nil, false
	}
	if len(value) < 8 || c.isStale(bytesToInt64(value[:8])) {
		return nil, false
	}
	raw, err := entity.ParseRecord(value[8:])
	if err != nil {
		log.Debug("drop corrupted cache entry", "index", index, "err", err)
		_ = c.db.Delete(entryKey(index))
		return nil, false
	}
	o, err := object.Parse(raw, entity.SourceLedger)
	if err != nil {
		log.Debug("drop undecodable cache entry", "index", index, "err", err)
		_ = c.db.Delete(entryKey(index))
		return nil, false
	}
	log.Trace("ledger entry cache hit", "index", index)
	return o, true
}

func (c *CachedReader) store(index string, o object.Object) error {
	data, err := json.Marshal(o.Binding().Raw())
	if err != nil {
		return err
	}
	return c.db.Put(entryKey(index), append(int64ToBytes(c.now().Unix()), data...))
}

// Invalidate removes one cached entry
func (c *CachedReader) Invalidate(index string) error {
	return c.db.Delete(entryKey(index))
}

// Prune deletes stale entries, or every entry when the cache has no ttl.
// It returns the number of deleted entries.
func (c *CachedReader) Prune() (int, error) {
	iter := c.db.NewIterator(entryPrefix, nil)
	defer iter.Release()

	batch := c.db.NewBatch()
	count := 0
	for iter.Next() {
		value := iter.Value()
		if c.ttl > 0 && len(value) >= 8 && !c.isStale(bytesToInt64(value[:8])) {
			continue
		}
		key := append([]byte{}, iter.Key()...)
		if err := batch.Delete(key); err != nil {
			return 0, err
		}
		count++
	}
	if err := iter.Error(); err != nil {
		return 0, fmt.Errorf("iterate ledger entry cache: %w", err)
	}
	if count == 0 {
		return 0, nil
	}
	if err := batch.Write(); err != nil {
		return 0, err
	}
	log.Debug("pruned ledger entry cache", "count", count)
	return count, nil
}
