package explain

import (
	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
	"github.com/anyswap/xrpl-txmodel/ledger/object"
	"github.com/anyswap/xrpl-txmodel/ledger/txn"
	"github.com/shopspring/decimal"
)

type assetKey struct {
	currency string
	issuer   string
}

type balanceDelta struct {
	keys   []assetKey
	deltas map[assetKey]decimal.Decimal
}

func (b *balanceDelta) add(key assetKey, d decimal.Decimal) {
	if d.IsZero() {
		return
	}
	if _, ok := b.deltas[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.deltas[key] = b.deltas[key].Add(d)
}

// BalanceChanges computes the balance increases and decreases of account caused by tx,
// from the AccountRoot and RippleState entries in its metadata.
// The fee is excluded when account sent the transaction and its root is in the metadata.
func BalanceChanges(tx txn.Transaction, account codec.Address) Mutation {
	var mutation Mutation
	meta := tx.Meta()
	if meta == nil || account == "" {
		return mutation
	}

	delta := &balanceDelta{deltas: map[assetKey]decimal.Decimal{}}
	var sawRoot bool
	for _, node := range meta.AffectedNodes {
		switch node.LedgerEntryType {
		case object.TypeAccountRoot:
			if node.Fields().String("Account") != string(account) {
				continue
			}
			if d, ok := nativeDelta(node); ok {
				sawRoot = true
				delta.add(assetKey{currency: codec.Native().Code}, d)
			}
		case object.TypeRippleState:
			if key, d, ok := trustLineDelta(node, account); ok {
				delta.add(key, d)
			}
		}
	}
	if sawRoot && account == tx.Account() {
		if fee := tx.Common().Fee(); fee != nil && fee.IsNative() {
			delta.add(assetKey{currency: codec.Native().Code}, fee.Decimal())
		}
	}

	for _, key := range delta.keys {
		d := delta.deltas[key]
		if d.IsZero() {
			continue
		}
		amount := &codec.Amount{Currency: key.currency, Issuer: key.issuer, Value: d.Abs().String()}
		if d.IsPositive() {
			mutation.Inc = append(mutation.Inc, amount)
		} else {
			mutation.Dec = append(mutation.Dec, amount)
		}
	}
	return mutation
}

// fieldChange returns the value of field after and before the transaction
func fieldChange(node *entity.AffectedNode, field string) (final, previous interface{}) {
	final = node.Fields()[field]
	if node.State == entity.CreatedNode {
		return final, nil
	}
	if prev, changed := node.Previous(field); changed {
		return final, prev
	}
	return final, final
}

func nativeDelta(node *entity.AffectedNode) (decimal.Decimal, bool) {
	final, previous := fieldChange(node, "Balance")
	after, err := codec.AmountCodec.Decode(final)
	if err != nil {
		return decimal.Zero, false
	}
	before := decimal.Zero
	if previous != nil {
		prev, err := codec.AmountCodec.Decode(previous)
		if err != nil {
			return decimal.Zero, false
		}
		before = prev.Decimal()
	}
	return after.Decimal().Sub(before), true
}

func trustLineDelta(node *entity.AffectedNode, account codec.Address) (assetKey, decimal.Decimal, bool) {
	fields := node.Fields()
	low, _ := codec.AmountCodec.Decode(fields["LowLimit"])
	high, _ := codec.AmountCodec.Decode(fields["HighLimit"])
	if low == nil || high == nil {
		return assetKey{}, decimal.Zero, false
	}

	final, previous := fieldChange(node, "Balance")
	after, err := codec.AmountCodec.Decode(final)
	if err != nil {
		return assetKey{}, decimal.Zero, false
	}
	d := after.Decimal()
	if previous != nil {
		if before, err := codec.AmountCodec.Decode(previous); err == nil {
			d = d.Sub(before.Decimal())
		}
	}

	// the balance is stored from the low account's point of view
	switch string(account) {
	case low.Issuer:
		return assetKey{currency: after.Currency, issuer: high.Issuer}, d, true
	case high.Issuer:
		return assetKey{currency: after.Currency, issuer: low.Issuer}, d.Neg(), true
	default:
		return assetKey{}, decimal.Zero, false
	}
}
