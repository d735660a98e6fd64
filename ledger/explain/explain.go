// Package explain turns decoded transactions and ledger entries into human oriented
// explanation records: a label, a localized description, the participants and the monetary
// effects, classified as immediate, potential or informational.
package explain

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/object"
	"github.com/anyswap/xrpl-txmodel/ledger/txn"
	mapset "github.com/deckarep/golang-set"
)

// Effect classifies when an amount changes hands
type Effect string

// monetary effects
const (
	ImmediateEffect Effect = "IMMEDIATE_EFFECT"
	PotentialEffect Effect = "POTENTIAL_EFFECT"
	NoEffect        Effect = "NO_EFFECT"
)

// Action is the direction of a factor seen from the viewing account
type Action string

// actions
const (
	Inc Action = "INC"
	Dec Action = "DEC"
)

// MonetaryFactor is an amount with its effect classification
type MonetaryFactor struct {
	codec.Amount
	Effect Effect `json:"effect"`
	Action Action `json:"action,omitempty"`
}

// Mutation lists balance increases and decreases (absolute values)
type Mutation struct {
	Inc []*codec.Amount `json:"inc"`
	Dec []*codec.Amount `json:"dec"`
}

// MonetaryDetails is the monetary part of an explanation
type MonetaryDetails struct {
	Mutate Mutation         `json:"mutate"`
	Factor []MonetaryFactor `json:"factor,omitempty"`

	// set for transactions applied with a tec result: nothing but the fee moved
	failed bool
}

func (d *MonetaryDetails) add(amount *codec.Amount, effect Effect, action Action) {
	if amount == nil {
		return
	}
	if d.failed {
		effect, action = NoEffect, ""
	}
	d.Factor = append(d.Factor, MonetaryFactor{Amount: *amount, Effect: effect, Action: action})
}

// Party is an address with the tag annotating it
type Party struct {
	Address codec.Address `json:"address"`
	Tag     *uint32       `json:"tag,omitempty"`
}

func party(address codec.Address, tag *uint32) *Party {
	if address == "" {
		return nil
	}
	return &Party{Address: address, Tag: tag}
}

// Participants are the roles of an explained entity; any may be nil
type Participants struct {
	Start   *Party `json:"start,omitempty"`
	Through *Party `json:"through,omitempty"`
	End     *Party `json:"end,omitempty"`
}

// Addresses lists the distinct participant addresses in role order
func (p Participants) Addresses() []codec.Address {
	seen := mapset.NewSet()
	var out []codec.Address
	for _, party := range []*Party{p.Start, p.Through, p.End} {
		if party != nil && seen.Add(party.Address) {
			out = append(out, party.Address)
		}
	}
	return out
}

// AssetType tags an AssetDetail
type AssetType string

// asset types
const (
	NFTokenAsset  AssetType = "NFToken"
	URITokenAsset AssetType = "URIToken"
)

// AssetDetail names a non fungible asset involved
type AssetDetail struct {
	Type       AssetType     `json:"type"`
	NFTokenID  string        `json:"nfTokenId,omitempty"`
	URITokenID string        `json:"uriTokenId,omitempty"`
	Owner      codec.Address `json:"owner,omitempty"`
}

// Explanation is the record handed to presentation
type Explanation struct {
	Label        string           `json:"label"`
	Description  string           `json:"description"`
	Participants Participants     `json:"participants"`
	Monetary     *MonetaryDetails `json:"monetary"`
	Assets       []AssetDetail    `json:"assets,omitempty"`
}

// Explainer is implemented per transaction or ledger entry type
type Explainer interface {
	Label() string
	Description() string
	Participants() Participants
	MonetaryDetails() *MonetaryDetails
}

// AssetExplainer is implemented by explainers of entities involving non fungible assets
type AssetExplainer interface {
	Explainer
	AssetDetails() []AssetDetail
}

// Explain collects every part of e into an Explanation
func Explain(e Explainer) *Explanation {
	x := &Explanation{
		Label:        e.Label(),
		Description:  e.Description(),
		Participants: e.Participants(),
		Monetary:     e.MonetaryDetails(),
	}
	if a, ok := e.(AssetExplainer); ok {
		x.Assets = a.AssetDetails()
	}
	return x
}

// Options parameterize explainers
type Options struct {
	// Account is the viewing account, the transaction's Account when empty
	Account   codec.Address
	Localizer Localizer
	Now       func() time.Time
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) localize(key string, params Params) string {
	if o.Localizer == nil {
		return DefaultLocalizer().T(key, params)
	}
	return o.Localizer.T(key, params)
}

// ErrTypeMismatch is returned when an entity does not have the Go type its discriminant implies
var ErrTypeMismatch = errors.New("explain: entity type does not match its discriminant")

// TxFactory builds the explainer of one transaction type
type TxFactory func(tx txn.Transaction, opts Options) (Explainer, error)

// ObjectFactory builds the explainer of one ledger entry type
type ObjectFactory func(o object.Object, opts Options) (Explainer, error)

var (
	transactions = map[string]TxFactory{}
	objects      = map[string]ObjectFactory{}
)

func registerTx[T txn.Transaction](txType string, fn func(T, Options) Explainer) {
	if _, exist := transactions[txType]; exist {
		panic("explain: duplicate transaction explainer " + txType)
	}
	transactions[txType] = func(tx txn.Transaction, opts Options) (Explainer, error) {
		t, ok := tx.(T)
		if !ok {
			return nil, fmt.Errorf("%w: %s is %T", ErrTypeMismatch, txType, tx)
		}
		return fn(t, opts), nil
	}
}

func registerObject[T object.Object](entryType string, fn func(T, Options) Explainer) {
	if _, exist := objects[entryType]; exist {
		panic("explain: duplicate ledger entry explainer " + entryType)
	}
	objects[entryType] = func(o object.Object, opts Options) (Explainer, error) {
		v, ok := o.(T)
		if !ok {
			return nil, fmt.Errorf("%w: %s is %T", ErrTypeMismatch, entryType, o)
		}
		return fn(v, opts), nil
	}
}

// ForTransaction finds the explainer factory of a transaction type
func ForTransaction(txType string) (TxFactory, bool) {
	f, ok := transactions[txType]
	return f, ok
}

// ForObject finds the explainer factory of a ledger entry type
func ForObject(entryType string) (ObjectFactory, bool) {
	f, ok := objects[entryType]
	return f, ok
}

// TransactionTypes lists the explained transaction types, sorted
func TransactionTypes() []string {
	types := make([]string, 0, len(transactions))
	for t := range transactions {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// ObjectTypes lists the explained ledger entry types, sorted
func ObjectTypes() []string {
	types := make([]string, 0, len(objects))
	for t := range objects {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func formatAmount(a *codec.Amount) string {
	if a == nil {
		return ""
	}
	if a.MPTokenIssuanceID != "" {
		return a.Value + " MPT(" + a.MPTokenIssuanceID + ")"
	}
	return a.Value + " " + codec.CurrencyDisplay(a.Currency)
}

func formatTime(t codec.Timestamp) string {
	if t == "" {
		return ""
	}
	return t.Time().UTC().Format("2006-01-02 15:04:05 MST")
}

func currencyOf(a *codec.Amount) string {
	if a == nil {
		return ""
	}
	if a.MPTokenIssuanceID != "" {
		return a.MPTokenIssuanceID
	}
	return codec.CurrencyDisplay(a.Currency)
}
